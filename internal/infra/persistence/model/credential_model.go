package model

import (
	"time"

	"github.com/google/uuid"
)

// CredentialModel mirrors the 'student_credentials' table. UUID columns track provider credentials.
type CredentialModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	StudentID    uuid.UUID `gorm:"type:uuid;not null"`
	Provider     string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_credentials_provider_provider_key"`
	ProviderKey  string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_credentials_provider_provider_key"`
	PasswordHash string    `gorm:"type:varchar(255)"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (CredentialModel) TableName() string {
	return "student_credentials"
}
