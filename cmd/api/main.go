package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"newspulse-payments/internal/client"
	"newspulse-payments/internal/config"
	"newspulse-payments/internal/reconciler"
	"newspulse-payments/internal/repository"
	"newspulse-payments/internal/server"
	"newspulse-payments/internal/service"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	if !cfg.Razorpay.Configured() {
		log.Println("WARNING: RAZORPAY_KEY_ID / RAZORPAY_KEY_SECRET not set, order and verify calls will fail")
	}

	db := client.InitSqliteClient(cfg.DatabaseURL)
	razorpayClient := client.NewRazorpayClient(&cfg.Razorpay)

	subscriptionRepo := repository.NewSubscriptionRepository(db)
	eventRepo := repository.NewVerificationEventRepository(db)

	paymentService := service.NewPaymentService(
		razorpayClient, &cfg.Razorpay,
		subscriptionRepo,
		eventRepo,
	)
	planService := service.NewPlanService()

	reconcilerCtx, reconcilerCancel := context.WithCancel(context.Background())
	defer reconcilerCancel()

	interval, err := time.ParseDuration(cfg.Reconciler.Interval)
	if err != nil {
		log.Printf("invalid RECONCILER_INTERVAL %q, using 1m", cfg.Reconciler.Interval)
		interval = time.Minute
	}
	rec := reconciler.NewReconciler(razorpayClient, subscriptionRepo, interval, cfg.Reconciler.BatchSize)
	go rec.Run(reconcilerCtx)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	// Init HTTP server
	srv := server.NewServer(paymentService, planService, &cfg.Razorpay)

	log.Println("Starting HTTP server on", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Println("Signal received, starting graceful shutdown...")

	reconcilerCancel()

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error")
	}
}
