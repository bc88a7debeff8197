package service

import (
	"context"
	"newspulse-payments/internal/dto"
)

type PlanService interface {
	ListPlans(ctx context.Context) ([]*dto.Plan, error)
}

type planServiceImpl struct {
	plans []*dto.Plan
}

// The catalog is static; the checkout UI renders it and sends the chosen
// plan back on order creation.
func NewPlanService() PlanService {
	return &planServiceImpl{
		plans: []*dto.Plan{
			{ID: "basic", Name: "Basic Monthly", Amount: 199, Currency: "INR"},
			{ID: "pro", Name: "Pro Monthly", Amount: 499, Currency: "INR"},
			{ID: "premium", Name: "Premium Yearly", Amount: 4999, Currency: "INR"},
		},
	}
}

func (s *planServiceImpl) ListPlans(ctx context.Context) ([]*dto.Plan, error) {
	return s.plans, nil
}
