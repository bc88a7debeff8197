package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"newspulse-payments/internal/config"
	"newspulse-payments/internal/dto"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func healthCheck(t *testing.T, cfg *config.Razorpay) dto.HealthResponse {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, NewHealthHandler(cfg).Check(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHealth_Configured(t *testing.T) {
	resp := healthCheck(t, &config.Razorpay{KeyID: "rzp_test_key", KeySecret: "secret"})

	assert.Equal(t, "OK", resp.Status)
	assert.True(t, resp.RazorpayConfigured)
	assert.NotEmpty(t, resp.Timestamp)
}

func TestHealth_MissingCredentials(t *testing.T) {
	resp := healthCheck(t, &config.Razorpay{})

	// still healthy, only the flag flips
	assert.Equal(t, "OK", resp.Status)
	assert.False(t, resp.RazorpayConfigured)
}
