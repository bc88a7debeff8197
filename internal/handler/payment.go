package handler

import (
	"log"
	"net/http"

	"newspulse-payments/internal/apperr"
	"newspulse-payments/internal/dto"
	"newspulse-payments/internal/service"

	"github.com/labstack/echo/v4"
)

type PaymentHandler struct {
	paymentService service.PaymentService
}

func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

func (h *PaymentHandler) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	result, err := h.paymentService.CreateOrder(ctx, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

func (h *PaymentHandler) VerifyPayment(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.VerifyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	result, err := h.paymentService.VerifyPayment(ctx, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// respondError maps the application error taxonomy onto the wire format.
func respondError(c echo.Context, err error) error {
	appErr, ok := apperr.As(err)
	if !ok {
		log.Printf("unhandled error: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error":   "internal server error",
			"message": "an unexpected error occurred",
		})
	}

	switch appErr.Kind {
	case apperr.KindAuthenticity:
		return c.JSON(appErr.Code, map[string]string{
			"error":   appErr.Message,
			"message": "payment verification failed",
		})
	case apperr.KindGateway:
		return c.JSON(appErr.Code, map[string]string{
			"error":   appErr.Message,
			"message": appErr.Error(),
		})
	default:
		return c.JSON(appErr.Code, map[string]string{"error": appErr.Message})
	}
}
