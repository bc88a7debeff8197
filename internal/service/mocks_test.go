package service

import (
	"context"

	"newspulse-payments/internal/client"
	"newspulse-payments/internal/model"
	"newspulse-payments/internal/repository"
)

// MockRazorpayClient implements client.RazorpayClient for testing
type MockRazorpayClient struct {
	Order    *client.GatewayOrder
	OrderErr error

	Payment    *client.GatewayPayment
	PaymentErr error

	CreateOrderCalls  int
	LastOrderRequest  *client.GatewayOrderRequest
	FetchPaymentCalls int
	LastPaymentID     string
}

func (m *MockRazorpayClient) CreateOrder(_ context.Context, req *client.GatewayOrderRequest) (*client.GatewayOrder, error) {
	m.CreateOrderCalls++
	m.LastOrderRequest = req
	return m.Order, m.OrderErr
}

func (m *MockRazorpayClient) FetchPayment(_ context.Context, paymentID string) (*client.GatewayPayment, error) {
	m.FetchPaymentCalls++
	m.LastPaymentID = paymentID
	return m.Payment, m.PaymentErr
}

// MockSubscriptionRepository implements repository.SubscriptionRepository
// with real upsert-by-order-id semantics backed by a map.
type MockSubscriptionRepository struct {
	ByOrderID map[string]*model.Subscription
	Err       error
}

func NewMockSubscriptionRepository() *MockSubscriptionRepository {
	return &MockSubscriptionRepository{ByOrderID: map[string]*model.Subscription{}}
}

func (m *MockSubscriptionRepository) UpsertByOrderID(_ context.Context, sub *model.Subscription) (*model.Subscription, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if existing, ok := m.ByOrderID[sub.OrderID]; ok {
		return existing, nil
	}
	m.ByOrderID[sub.OrderID] = sub
	return sub, nil
}

func (m *MockSubscriptionRepository) GetByOrderID(_ context.Context, orderID string) (*model.Subscription, error) {
	if sub, ok := m.ByOrderID[orderID]; ok {
		return sub, nil
	}
	return nil, repository.ErrSubscriptionNotFound
}

func (m *MockSubscriptionRepository) ListByStatus(_ context.Context, status string, _ int) ([]*model.Subscription, error) {
	var subs []*model.Subscription
	for _, sub := range m.ByOrderID {
		if sub.Status == status {
			subs = append(subs, sub)
		}
	}
	return subs, nil
}

func (m *MockSubscriptionRepository) Activate(_ context.Context, subscriptionID string) error {
	for _, sub := range m.ByOrderID {
		if sub.SubscriptionID == subscriptionID {
			sub.Status = model.SubscriptionStatusActive
		}
	}
	return nil
}

// MockVerificationEventRepository implements repository.VerificationEventRepository
type MockVerificationEventRepository struct {
	Outcomes []string
	Err      error
}

func (m *MockVerificationEventRepository) Record(_ context.Context, _, _, outcome string) error {
	m.Outcomes = append(m.Outcomes, outcome)
	return m.Err
}
