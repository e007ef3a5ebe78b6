package usecase

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"cinenyc-booking/internal/payment"
)

func newPaymentServiceForTest(t *testing.T, body string) PaymentService {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)

	providers := &payment.Providers{
		Verifier: payment.NewVerifier(srv.URL, "sk_test_secret", zap.NewNop()),
	}
	return NewPaymentService(providers, "usd", zap.NewNop())
}

func TestVerifyTransactionSuccessful(t *testing.T) {
	svc := newPaymentServiceForTest(t, `{"status":true,"message":"ok","data":{"status":"success","amount":2400}}`)

	resp, err := svc.VerifyTransaction(context.Background(), "cine_abc")
	require.NoError(t, err)
	assert.True(t, resp.Status)
	assert.False(t, resp.UpstreamRejected)
	assert.Equal(t, "Verification successful", resp.Message)
}

func TestVerifyTransactionNotSettled(t *testing.T) {
	// The lookup resolved but the transaction did not settle. This is a
	// normal 200-class outcome, not an upstream rejection.
	svc := newPaymentServiceForTest(t, `{"status":true,"message":"ok","data":{"status":"abandoned"}}`)

	resp, err := svc.VerifyTransaction(context.Background(), "cine_abc")
	require.NoError(t, err)
	assert.False(t, resp.Status)
	assert.False(t, resp.UpstreamRejected)
	assert.Equal(t, "Transaction not successful", resp.Message)
}

func TestVerifyTransactionUpstreamRejection(t *testing.T) {
	svc := newPaymentServiceForTest(t, `{"status":false,"message":"Transaction reference not found"}`)

	resp, err := svc.VerifyTransaction(context.Background(), "cine_abc")
	require.NoError(t, err)
	assert.False(t, resp.Status)
	assert.True(t, resp.UpstreamRejected)
}

func TestVerifyTransactionRequiresReference(t *testing.T) {
	svc := newPaymentServiceForTest(t, `{}`)

	_, err := svc.VerifyTransaction(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}
