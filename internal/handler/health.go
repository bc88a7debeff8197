package handler

import (
	"net/http"
	"time"

	"newspulse-payments/internal/config"
	"newspulse-payments/internal/dto"

	"github.com/labstack/echo/v4"
)

type HealthHandler struct {
	razorpayCfg *config.Razorpay
}

func NewHealthHandler(razorpayCfg *config.Razorpay) *HealthHandler {
	return &HealthHandler{
		razorpayCfg: razorpayCfg,
	}
}

// Check never fails; missing gateway credentials only flip the flag.
func (h *HealthHandler) Check(c echo.Context) error {
	return c.JSON(http.StatusOK, &dto.HealthResponse{
		Status:             "OK",
		Message:            "payment service is running",
		Timestamp:          time.Now().Format(time.RFC3339),
		RazorpayConfigured: h.razorpayCfg.Configured(),
	})
}
