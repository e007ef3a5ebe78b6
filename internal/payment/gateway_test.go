package payment

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func verifyServer(t *testing.T, body string, code int) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer sk_test_secret", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestVerifySuccess(t *testing.T) {
	srv := verifyServer(t, `{"status":true,"message":"Verification successful","data":{"status":"success","amount":2400}}`, http.StatusOK)
	v := NewVerifier(srv.URL, "sk_test_secret", zap.NewNop())

	result, err := v.Verify(context.Background(), "cine_abc")
	require.NoError(t, err)
	assert.True(t, result.Status)
	assert.Equal(t, "success", result.Data["status"])
}

func TestVerifyUpstreamRejected(t *testing.T) {
	srv := verifyServer(t, `{"status":false,"message":"Transaction reference not found"}`, http.StatusOK)
	v := NewVerifier(srv.URL, "sk_test_secret", zap.NewNop())

	result, err := v.Verify(context.Background(), "cine_abc")
	require.NoError(t, err)
	assert.False(t, result.Status)
	assert.True(t, result.UpstreamRejected)
	assert.Equal(t, "Transaction reference not found", result.Message)
}

func TestVerifyTransactionNotSuccessful(t *testing.T) {
	// Upstream accepted the lookup but the transaction itself did not settle.
	srv := verifyServer(t, `{"status":true,"message":"ok","data":{"status":"abandoned"}}`, http.StatusOK)
	v := NewVerifier(srv.URL, "sk_test_secret", zap.NewNop())

	result, err := v.Verify(context.Background(), "cine_abc")
	require.NoError(t, err)
	assert.False(t, result.Status)
	assert.False(t, result.UpstreamRejected, "a resolved transaction is not an upstream rejection")
	assert.Equal(t, "Transaction not successful", result.Message)
}

func TestVerifyTransportError(t *testing.T) {
	srv := verifyServer(t, "", http.StatusOK)
	srv.Close()
	v := NewVerifier(srv.URL, "sk_test_secret", zap.NewNop())

	_, err := v.Verify(context.Background(), "cine_abc")
	require.Error(t, err)
}

func TestGatewayCompleteGatesOnVerification(t *testing.T) {
	srv := verifyServer(t, `{"status":true,"message":"ok","data":{"status":"success"}}`, http.StatusOK)
	v := NewVerifier(srv.URL, "sk_test_secret", zap.NewNop())
	adapter := NewGatewayAdapter(v, zap.NewNop())

	var succeeded bool
	attempt, err := adapter.Begin(context.Background(), BeginRequest{Amount: 12}, Callbacks{
		OnSuccess: func() { succeeded = true },
	})
	require.NoError(t, err)
	<-attempt.Ready()
	assert.NotEmpty(t, attempt.Reference())

	require.NoError(t, adapter.Complete(context.Background(), attempt, ""))
	assert.True(t, succeeded)
}

func TestGatewayCompleteRejectsUnverified(t *testing.T) {
	srv := verifyServer(t, `{"status":true,"message":"ok","data":{"status":"failed"}}`, http.StatusOK)
	v := NewVerifier(srv.URL, "sk_test_secret", zap.NewNop())
	adapter := NewGatewayAdapter(v, zap.NewNop())

	var succeeded bool
	attempt, err := adapter.Begin(context.Background(), BeginRequest{Amount: 12}, Callbacks{
		OnSuccess: func() { succeeded = true },
	})
	require.NoError(t, err)

	err = adapter.Complete(context.Background(), attempt, "cine_abc")
	assert.ErrorIs(t, err, ErrVerificationFailed)
	assert.False(t, succeeded, "success must never fire without verification")

	// The attempt is still live, so a retry after a verified result works.
	assert.True(t, attempt.Succeed())
}
