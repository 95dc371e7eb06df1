package gateway

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManual_IdempotentByReference(t *testing.T) {
	m := NewManual()
	ctx := context.Background()

	first, err := m.InitiatePayout(ctx, PayoutRequest{Reference: "ref-1", AmountCents: 100})
	require.NoError(t, err)
	again, err := m.InitiatePayout(ctx, PayoutRequest{Reference: "ref-1", AmountCents: 100})
	require.NoError(t, err)

	assert.Equal(t, first.PayoutID, again.PayoutID)
	assert.Len(t, m.Payouts(), 1)
}

func TestManual_StatusLifecycle(t *testing.T) {
	m := NewManual()
	ctx := context.Background()

	res, err := m.InitiatePayout(ctx, PayoutRequest{Reference: "ref-1"})
	require.NoError(t, err)
	status, err := m.GetPayoutStatus(ctx, res.PayoutID)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, status)

	require.NoError(t, m.SetStatus(res.PayoutID, StatusFailed))
	status, err = m.GetPayoutStatus(ctx, res.PayoutID)
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, status)

	_, err = m.GetPayoutStatus(ctx, "missing")
	assert.Equal(t, CategoryNotFound, CategoryOf(err))
}

func TestManual_FailNext(t *testing.T) {
	m := NewManual()
	outage := NewError(CategoryProviderOutage, "initiate payout", "down", nil)
	m.FailNext(1, outage)

	_, err := m.InitiatePayout(context.Background(), PayoutRequest{Reference: "ref-1"})
	require.ErrorIs(t, err, outage)
	_, err = m.InitiatePayout(context.Background(), PayoutRequest{Reference: "ref-1"})
	require.NoError(t, err)
}
