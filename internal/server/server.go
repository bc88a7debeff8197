package server

import (
	"newspulse-payments/internal/config"
	"newspulse-payments/internal/handler"
	"newspulse-payments/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo           *echo.Echo
	paymentHandler *handler.PaymentHandler
	planHandler    *handler.PlanHandler
	healthHandler  *handler.HealthHandler
}

func NewServer(paymentService service.PaymentService, planService service.PlanService, razorpayCfg *config.Razorpay) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:           e,
		paymentHandler: handler.NewPaymentHandler(paymentService),
		planHandler:    handler.NewPlanHandler(planService),
		healthHandler:  handler.NewHealthHandler(razorpayCfg),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", s.healthHandler.Check)
	api.GET("/plans", s.planHandler.ListPlans)

	// -------- razorpay checkout --------
	api.POST("/order", s.paymentHandler.CreateOrder)
	api.POST("/verify", s.paymentHandler.VerifyPayment)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
