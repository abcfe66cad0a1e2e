package model

import (
	"time"

	"github.com/google/uuid"
)

// StudentModel mirrors the 'students' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type StudentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email     string    `gorm:"type:varchar(255);unique;not null"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Course    string    `gorm:"type:varchar(100);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Credentials []CredentialModel `gorm:"foreignKey:StudentID"`
}

// TableName explicitly sets the table name for GORM.
func (StudentModel) TableName() string {
	return "students"
}
