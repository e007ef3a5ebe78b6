package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// VerifyResult is the outcome of a server-side transaction verification.
// UpstreamRejected marks a lookup the provider refused outright (envelope
// status false); a resolved transaction that simply did not settle leaves it
// unset.
type VerifyResult struct {
	Status           bool
	UpstreamRejected bool
	Message          string
	Data             map[string]any
}

// Verifier checks a transaction reference against Paystack using the
// server-held secret key. The client-reported success status is never
// trusted on its own.
type Verifier struct {
	httpClient *http.Client
	baseURL    string
	secretKey  string
	log        *zap.Logger
}

func NewVerifier(baseURL, secretKey string, log *zap.Logger) *Verifier {
	return &Verifier{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    baseURL,
		secretKey:  secretKey,
		log:        log.With(zap.String("component", "paystack_verifier")),
	}
}

func (v *Verifier) Verify(ctx context.Context, reference string) (*VerifyResult, error) {
	url := fmt.Sprintf("%s/transaction/verify/%s", v.baseURL, reference)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build verify request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+v.secretKey)

	resp, err := v.httpClient.Do(req)
	if err != nil {
		v.log.Error("Verification request failed", zap.Error(err), zap.String("reference", reference))
		return nil, fmt.Errorf("verify transaction: %w", err)
	}
	defer resp.Body.Close()

	var payload struct {
		Status  bool           `json:"status"`
		Message string         `json:"message"`
		Data    map[string]any `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode verify response: %w", err)
	}

	if !payload.Status {
		v.log.Warn("Upstream rejected verification",
			zap.String("reference", reference),
			zap.String("message", payload.Message),
		)
		return &VerifyResult{Status: false, UpstreamRejected: true, Message: payload.Message}, nil
	}

	if status, _ := payload.Data["status"].(string); status == "success" {
		return &VerifyResult{Status: true, Data: payload.Data}, nil
	}

	return &VerifyResult{Status: false, Message: "Transaction not successful"}, nil
}

// GatewayAdapter processes payments through Paystack. Success gates on a
// second phase: the transaction reference is verified server-side before the
// success callback may fire.
type GatewayAdapter struct {
	verifier *Verifier
	log      *zap.Logger
}

func NewGatewayAdapter(verifier *Verifier, log *zap.Logger) *GatewayAdapter {
	return &GatewayAdapter{
		verifier: verifier,
		log:      log.With(zap.String("adapter", "paystack")),
	}
}

func (a *GatewayAdapter) Name() string { return "paystack" }

func (a *GatewayAdapter) Begin(ctx context.Context, req BeginRequest, cb Callbacks) (*Attempt, error) {
	attempt := newAttempt(a.Name(), req, cb, nil)

	// No provider handshake needed up front; the popup initializes with a
	// locally generated reference.
	reference := "cine_" + uuid.NewString()
	attempt.finishInit("", reference, nil)

	a.log.Info("Gateway attempt started",
		zap.String("reference", reference),
		zap.Float64("amount", req.Amount),
	)
	return attempt, nil
}

func (a *GatewayAdapter) Complete(ctx context.Context, attempt *Attempt, reference string) error {
	if reference == "" {
		reference = attempt.Reference()
	}

	result, err := a.verifier.Verify(ctx, reference)
	if err != nil {
		return err
	}
	if !result.Status {
		return fmt.Errorf("%w: %s", ErrVerificationFailed, result.Message)
	}

	if !attempt.Succeed() {
		return ErrAttemptSettled
	}

	a.log.Info("Gateway payment verified", zap.String("reference", reference))
	return nil
}
