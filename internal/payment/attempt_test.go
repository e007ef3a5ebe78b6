package payment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttemptCallbacksFireAtMostOnce(t *testing.T) {
	var successes, cancels int
	a := newAttempt("test", BeginRequest{Amount: 24}, Callbacks{
		OnSuccess: func() { successes++ },
		OnCancel:  func() { cancels++ },
	}, nil)

	assert.True(t, a.Succeed())
	assert.False(t, a.Succeed())
	assert.False(t, a.Cancel())

	assert.Equal(t, 1, successes)
	assert.Equal(t, 0, cancels)
}

func TestAttemptCancelBlocksLaterSuccess(t *testing.T) {
	var successes, cancels int
	a := newAttempt("test", BeginRequest{}, Callbacks{
		OnSuccess: func() { successes++ },
		OnCancel:  func() { cancels++ },
	}, nil)

	assert.True(t, a.Cancel())
	assert.False(t, a.Succeed())

	assert.Equal(t, 0, successes)
	assert.Equal(t, 1, cancels)
}

func TestAttemptRevokeDropsCallbacks(t *testing.T) {
	var fired bool
	ctx, cancel := context.WithCancel(context.Background())
	a := newAttempt("test", BeginRequest{}, Callbacks{
		OnSuccess: func() { fired = true },
		OnCancel:  func() { fired = true },
	}, cancel)

	a.Revoke()

	assert.False(t, a.Succeed())
	assert.False(t, a.Cancel())
	assert.False(t, fired)

	// Pending initialization is cancelled too.
	assert.ErrorIs(t, ctx.Err(), context.Canceled)

	// Revoke is safe to repeat.
	a.Revoke()
}

func TestAttemptReadiness(t *testing.T) {
	a := newAttempt("test", BeginRequest{Amount: 12, Email: "guest@example.com"}, Callbacks{}, nil)

	select {
	case <-a.Ready():
		t.Fatal("attempt ready before initialization finished")
	default:
	}

	a.finishInit("secret_123", "ref_456", nil)

	<-a.Ready()
	require.NoError(t, a.Err())
	assert.Equal(t, "secret_123", a.ClientSecret())
	assert.Equal(t, "ref_456", a.Reference())
	assert.Equal(t, "test", a.Provider())
	assert.InDelta(t, 12.0, a.Amount(), 0.001)
	assert.Equal(t, "guest@example.com", a.Email())
}
