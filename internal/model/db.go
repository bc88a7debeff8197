package model

import "time"

const (
	SubscriptionStatusPending = "PENDING"
	SubscriptionStatusActive  = "ACTIVE"
)

type Subscription struct {
	SubscriptionID string `gorm:"primaryKey;size:64;not null"`
	// gateway order id; one subscription per order
	OrderID   string `gorm:"size:64;uniqueIndex;not null"`
	PaymentID string `gorm:"size:64;index"`
	UserID    string `gorm:"size:64;index"`
	PlanID    string `gorm:"size:64"`
	Status    string `gorm:"size:32;index;not null"` // PENDING, ACTIVE
	CreatedAt time.Time
	UpdatedAt time.Time
}

const (
	VerificationOutcomeSuccess  = "SUCCESS"
	VerificationOutcomeDegraded = "DEGRADED" // authentic, details unfetchable
	VerificationOutcomeRejected = "REJECTED"
)

type VerificationEvent struct {
	EventID     string `gorm:"primaryKey;size:64;not null"`
	OrderID     string `gorm:"size:64;index;not null"`
	PaymentID   string `gorm:"size:64;not null"`
	Outcome     string `gorm:"size:32;index;not null"` // SUCCESS, DEGRADED, REJECTED
	ProcessedAt time.Time
	CreatedAt   time.Time
}
