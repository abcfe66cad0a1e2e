package service

import (
	"context"
)

// Account event types published on signups and logins.
const (
	AccountEventSignup = "student.signup"
	AccountEventLogin  = "student.login"
)

// AccountEvent records a lifecycle event on a student account. Downstream
// consumers (audit trail, admin dashboards) subscribe to these instead of
// scraping request logs.
type AccountEvent struct {
	RequestID  string `json:"request_id,omitempty"` // For distributed tracing
	Type       string `json:"type"`
	StudentID  string `json:"student_id"`
	Email      string `json:"email"`
	Course     string `json:"course,omitempty"`
	OccurredAt string `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing account events to a message queue.
type EventPublisher interface {
	// PublishAccountEvent publishes an account lifecycle event for async processing.
	PublishAccountEvent(ctx context.Context, event *AccountEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
