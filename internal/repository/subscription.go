package repository

import (
	"context"
	"errors"
	"newspulse-payments/internal/model"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrSubscriptionNotFound = errors.New("subscription not found")

type SubscriptionRepository interface {
	// UpsertByOrderID inserts sub unless a subscription already exists for
	// its order id, and returns the stored row either way. This is what makes
	// repeated verification calls idempotent.
	UpsertByOrderID(ctx context.Context, sub *model.Subscription) (*model.Subscription, error)
	GetByOrderID(ctx context.Context, orderID string) (*model.Subscription, error)
	ListByStatus(ctx context.Context, status string, limit int) ([]*model.Subscription, error)
	Activate(ctx context.Context, subscriptionID string) error
}

type subscriptionRepoImpl struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepoImpl{
		db: db,
	}
}

func (r *subscriptionRepoImpl) UpsertByOrderID(ctx context.Context, sub *model.Subscription) (*model.Subscription, error) {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "order_id"}},
			DoNothing: true,
		}).
		Create(sub).
		Error
	if err != nil {
		return nil, err
	}

	// re-read so a lost insert race still returns the winning row
	return r.GetByOrderID(ctx, sub.OrderID)
}

func (r *subscriptionRepoImpl) GetByOrderID(ctx context.Context, orderID string) (*model.Subscription, error) {
	var sub model.Subscription
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		First(&sub).
		Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSubscriptionNotFound
	}
	if err != nil {
		return nil, err
	}

	return &sub, nil
}

func (r *subscriptionRepoImpl) ListByStatus(ctx context.Context, status string, limit int) ([]*model.Subscription, error) {
	var subs []*model.Subscription
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Limit(limit).
		Find(&subs).
		Error

	if err != nil {
		return nil, err
	}

	return subs, nil
}

func (r *subscriptionRepoImpl) Activate(ctx context.Context, subscriptionID string) error {
	return r.db.WithContext(ctx).
		Model(&model.Subscription{}).
		Where("subscription_id = ?", subscriptionID).
		Updates(map[string]interface{}{
			"status":     model.SubscriptionStatusActive,
			"updated_at": time.Now(),
		}).Error
}
