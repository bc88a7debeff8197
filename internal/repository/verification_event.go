package repository

import (
	"context"
	"newspulse-payments/internal/model"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VerificationEventRepository interface {
	Record(ctx context.Context, orderID, paymentID, outcome string) error
}

type verificationEventRepoImpl struct {
	db *gorm.DB
}

func NewVerificationEventRepository(db *gorm.DB) VerificationEventRepository {
	return &verificationEventRepoImpl{db: db}
}

func (r *verificationEventRepoImpl) Record(ctx context.Context, orderID, paymentID, outcome string) error {
	return r.db.WithContext(ctx).Create(&model.VerificationEvent{
		EventID:     uuid.NewString(),
		OrderID:     orderID,
		PaymentID:   paymentID,
		Outcome:     outcome,
		ProcessedAt: time.Now(),
	}).Error
}
