package service

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"newspulse-payments/internal/apperr"
	"newspulse-payments/internal/client"
	"newspulse-payments/internal/config"
	"newspulse-payments/internal/dto"
	"newspulse-payments/internal/model"
	"newspulse-payments/internal/repository"
	"newspulse-payments/internal/signature"

	"github.com/shopspring/decimal"
)

type PaymentService interface {
	CreateOrder(ctx context.Context, req *dto.CreateOrderRequest) (*dto.CreateOrderResponse, error)
	VerifyPayment(ctx context.Context, req *dto.VerifyRequest) (*dto.VerifyResponse, error)
}

type paymentServiceImpl struct {
	razorpayClient   client.RazorpayClient
	keyID            string
	keySecret        string
	subscriptionRepo repository.SubscriptionRepository
	eventRepo        repository.VerificationEventRepository
}

func NewPaymentService(
	razorpayClient client.RazorpayClient,
	razorpayCfg *config.Razorpay,
	subscriptionRepo repository.SubscriptionRepository,
	eventRepo repository.VerificationEventRepository,
) PaymentService {
	return &paymentServiceImpl{
		razorpayClient:   razorpayClient,
		keyID:            razorpayCfg.KeyID,
		keySecret:        razorpayCfg.KeySecret,
		subscriptionRepo: subscriptionRepo,
		eventRepo:        eventRepo,
	}
}

var minorUnitFactor = decimal.NewFromInt(100)

func (s *paymentServiceImpl) CreateOrder(ctx context.Context, req *dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	if req.PlanID == "" || req.Currency == "" || req.UserID == "" || req.Amount <= 0 {
		return nil, apperr.Validation("planId, amount, currency and userId are required")
	}

	now := time.Now()
	minorAmount := decimal.NewFromFloat(req.Amount).Mul(minorUnitFactor).IntPart()

	order, err := s.razorpayClient.CreateOrder(ctx, &client.GatewayOrderRequest{
		Amount:   minorAmount,
		Currency: req.Currency,
		Receipt:  "rcpt_" + strconv.FormatInt(now.Unix(), 10),
		Notes: map[string]string{
			"plan_id":    req.PlanID,
			"user_id":    req.UserID,
			"created_at": now.Format(time.RFC3339),
		},
	})
	if err != nil {
		return nil, apperr.Gateway("failed to create payment order", err)
	}

	return &dto.CreateOrderResponse{
		OrderID:  order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
		KeyID:    s.keyID,
	}, nil
}

func (s *paymentServiceImpl) VerifyPayment(ctx context.Context, req *dto.VerifyRequest) (*dto.VerifyResponse, error) {
	if req.OrderID == "" || req.PaymentID == "" || req.Signature == "" {
		return nil, apperr.Validation("razorpay_order_id, razorpay_payment_id and razorpay_signature are required")
	}

	if !signature.Verify(s.keySecret, req.OrderID, req.PaymentID, req.Signature) {
		s.recordEvent(ctx, req.OrderID, req.PaymentID, model.VerificationOutcomeRejected)
		return nil, apperr.Authenticity("Invalid signature")
	}

	// The signature is the trust boundary. Payment details are a best-effort
	// receipt: if the gateway is unreachable the purchase still succeeds and
	// the subscription stays PENDING until the reconciler confirms it.
	var details *dto.PaymentDetails
	status := model.SubscriptionStatusPending
	outcome := model.VerificationOutcomeDegraded

	payment, err := s.razorpayClient.FetchPayment(ctx, req.PaymentID)
	if err != nil {
		log.Printf("fetch payment %s after verified signature: %v", req.PaymentID, err)
	} else {
		details = normalizePayment(payment)
		status = model.SubscriptionStatusActive
		outcome = model.VerificationOutcomeSuccess
	}

	sub, err := s.subscriptionRepo.UpsertByOrderID(ctx, &model.Subscription{
		SubscriptionID: mintSubscriptionID(),
		OrderID:        req.OrderID,
		PaymentID:      req.PaymentID,
		UserID:         req.UserID,
		PlanID:         req.PlanID,
		Status:         status,
	})
	if err != nil {
		return nil, fmt.Errorf("store subscription for order %s: %w", req.OrderID, err)
	}

	s.recordEvent(ctx, req.OrderID, req.PaymentID, outcome)

	return &dto.VerifyResponse{
		Success:        true,
		Message:        "Payment verified successfully",
		SubscriptionID: sub.SubscriptionID,
		Payment:        details,
	}, nil
}

func (s *paymentServiceImpl) recordEvent(ctx context.Context, orderID, paymentID, outcome string) {
	if err := s.eventRepo.Record(ctx, orderID, paymentID, outcome); err != nil {
		// audit trail must never fail a verification call
		log.Printf("record verification event for order %s: %v", orderID, err)
	}
}

func mintSubscriptionID() string {
	return "sub_" + strconv.FormatInt(time.Now().UnixMilli(), 10)
}

func normalizePayment(p *client.GatewayPayment) *dto.PaymentDetails {
	majorAmount := decimal.NewFromInt(p.Amount).Div(minorUnitFactor).InexactFloat64()

	return &dto.PaymentDetails{
		ID:       p.ID,
		Amount:   majorAmount,
		Currency: p.Currency,
		Status:   p.Status,
		Method:   p.Method,
		Email:    p.Email,
		Contact:  p.Contact,
	}
}
