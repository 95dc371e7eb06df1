package gateway

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Manual is an in-process provider for development and tests. Payouts are
// recorded and reported pending until SetStatus changes them.
type Manual struct {
	mu        sync.Mutex
	payouts   map[string]*manualPayout
	byRef     map[string]string
	failNext  error
	failCalls int
}

type manualPayout struct {
	req    PayoutRequest
	status PayoutStatus
}

func NewManual() *Manual {
	return &Manual{
		payouts: make(map[string]*manualPayout),
		byRef:   make(map[string]string),
	}
}

// FailNext makes the next n calls fail with err.
func (m *Manual) FailNext(n int, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failCalls = n
	m.failNext = err
}

func (m *Manual) SetStatus(payoutID string, status PayoutStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.payouts[payoutID]
	if !ok {
		return NewError(CategoryNotFound, "set status", fmt.Sprintf("unknown payout %s", payoutID), nil)
	}
	p.status = status
	return nil
}

// Payouts returns every recorded request.
func (m *Manual) Payouts() []PayoutRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]PayoutRequest, 0, len(m.payouts))
	for _, p := range m.payouts {
		out = append(out, p.req)
	}
	return out
}

func (m *Manual) InitiatePayout(_ context.Context, req PayoutRequest) (PayoutResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure(); err != nil {
		return PayoutResult{}, err
	}
	if payoutID, ok := m.byRef[req.Reference]; ok {
		return PayoutResult{PayoutID: payoutID, Status: m.payouts[payoutID].status}, nil
	}
	payoutID := "manual_" + uuid.NewString()
	m.payouts[payoutID] = &manualPayout{req: req, status: StatusPending}
	m.byRef[req.Reference] = payoutID
	return PayoutResult{PayoutID: payoutID, Status: StatusPending}, nil
}

func (m *Manual) GetPayoutStatus(_ context.Context, payoutID string) (PayoutStatus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure(); err != nil {
		return "", err
	}
	p, ok := m.payouts[payoutID]
	if !ok {
		return "", NewError(CategoryNotFound, "get payout status", fmt.Sprintf("unknown payout %s", payoutID), nil)
	}
	return p.status, nil
}

func (m *Manual) failure() error {
	if m.failCalls == 0 {
		return nil
	}
	m.failCalls--
	return m.failNext
}
