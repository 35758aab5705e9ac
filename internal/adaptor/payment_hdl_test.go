package adaptor

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// Payment endpoints refuse anonymous callers before touching the service.
func TestCaptureRequiresAuthenticatedUser(t *testing.T) {
	handler := NewPaymentHandler(nil, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/pay", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	handler.Capture(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":false`)
}

func TestRefundRequiresAuthenticatedUser(t *testing.T) {
	handler := NewPaymentHandler(nil, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/pay-back", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	handler.Refund(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
