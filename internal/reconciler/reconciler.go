package reconciler

import (
	"context"
	"log"
	"time"

	"newspulse-payments/internal/client"
	"newspulse-payments/internal/model"
	"newspulse-payments/internal/repository"
)

// Reconciler finalizes subscriptions left PENDING when the payment-detail
// fetch failed during verification. The signature already proved the payment
// authentic; this loop only confirms capture with the gateway.
type Reconciler struct {
	interval         time.Duration
	batchSize        int
	razorpayClient   client.RazorpayClient
	subscriptionRepo repository.SubscriptionRepository
}

func NewReconciler(
	razorpayClient client.RazorpayClient,
	subscriptionRepo repository.SubscriptionRepository,
	interval time.Duration,
	batchSize int,
) *Reconciler {
	return &Reconciler{
		interval:         interval,
		batchSize:        batchSize,
		razorpayClient:   razorpayClient,
		subscriptionRepo: subscriptionRepo,
	}
}

func (r *Reconciler) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			r.reconcilePending(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (r *Reconciler) reconcilePending(ctx context.Context) {
	subs, err := r.subscriptionRepo.ListByStatus(ctx, model.SubscriptionStatusPending, r.batchSize)
	if err != nil {
		log.Printf("list pending subscriptions: %v", err)
		return
	}

	for _, sub := range subs {
		payment, err := r.razorpayClient.FetchPayment(ctx, sub.PaymentID)
		if err != nil {
			// still unreachable, next tick retries
			log.Printf("reconcile fetch payment %s: %v", sub.PaymentID, err)
			continue
		}

		if payment.Status != "captured" {
			continue
		}

		if err := r.subscriptionRepo.Activate(ctx, sub.SubscriptionID); err != nil {
			log.Printf("activate subscription %s: %v", sub.SubscriptionID, err)
			continue
		}
		log.Printf("subscription %s activated for order %s", sub.SubscriptionID, sub.OrderID)
	}
}
