// Package store keeps the payout ledger. Lookups return sentinel.ErrNotFound
// when nothing matches; uniqueness violations return sentinel.ErrConflict.
package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"agora/internal/payout/models"
	id "agora/pkg/domain"
	"agora/pkg/platform/sentinel"
)

// InMemoryTransactions holds seller transactions, unique by checkout.
type InMemoryTransactions struct {
	mu         sync.RWMutex
	txs        map[id.SellerTransactionID]models.SellerTransaction
	byCheckout map[id.CheckoutID]id.SellerTransactionID
}

func NewInMemoryTransactions() *InMemoryTransactions {
	return &InMemoryTransactions{
		txs:        make(map[id.SellerTransactionID]models.SellerTransaction),
		byCheckout: make(map[id.CheckoutID]id.SellerTransactionID),
	}
}

func (s *InMemoryTransactions) Create(_ context.Context, t *models.SellerTransaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byCheckout[t.CheckoutID]; ok {
		return fmt.Errorf("seller transaction checkout: %w", sentinel.ErrConflict)
	}
	if _, ok := s.txs[t.ID]; ok {
		return fmt.Errorf("seller transaction id: %w", sentinel.ErrConflict)
	}
	s.txs[t.ID] = *t
	s.byCheckout[t.CheckoutID] = t.ID
	return nil
}

func (s *InMemoryTransactions) FindByCheckout(_ context.Context, checkoutID id.CheckoutID) (*models.SellerTransaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	txID, ok := s.byCheckout[checkoutID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	t := s.txs[txID]
	return &t, nil
}

func (s *InMemoryTransactions) ListByPayout(_ context.Context, payoutID string) ([]*models.SellerTransaction, error) {
	return s.filter(func(t *models.SellerTransaction) bool { return t.PayoutID == payoutID }), nil
}

// ListDuePending returns pending transactions of the territory whose retention
// has elapsed at now, oldest first.
func (s *InMemoryTransactions) ListDuePending(_ context.Context, territoryID id.TerritoryID, now time.Time) ([]*models.SellerTransaction, error) {
	return s.filter(func(t *models.SellerTransaction) bool {
		return t.TerritoryID == territoryID && t.Status == models.TransactionPending && !t.ReadyForPayoutAt.After(now)
	}), nil
}

func (s *InMemoryTransactions) ListReady(_ context.Context, territoryID id.TerritoryID) ([]*models.SellerTransaction, error) {
	return s.filter(func(t *models.SellerTransaction) bool {
		return t.TerritoryID == territoryID && t.Status == models.TransactionReadyForPayout
	}), nil
}

func (s *InMemoryTransactions) ListBySeller(_ context.Context, territoryID id.TerritoryID, sellerID id.UserID) ([]*models.SellerTransaction, error) {
	return s.filter(func(t *models.SellerTransaction) bool {
		return t.TerritoryID == territoryID && t.SellerUserID == sellerID
	}), nil
}

// MarkReady moves transactions to ReadyForPayout and clears any payout.
func (s *InMemoryTransactions) MarkReady(_ context.Context, ids []id.SellerTransactionID, now time.Time) error {
	return s.apply(ids, func(t *models.SellerTransaction) {
		t.Status = models.TransactionReadyForPayout
		t.PayoutID = ""
		t.PaidAt = nil
		t.UpdatedAt = now
	})
}

func (s *InMemoryTransactions) MarkPaid(_ context.Context, ids []id.SellerTransactionID, payoutID string, paidAt time.Time) error {
	return s.apply(ids, func(t *models.SellerTransaction) {
		t.Status = models.TransactionPaid
		t.PayoutID = payoutID
		t.PaidAt = &paidAt
		t.UpdatedAt = paidAt
	})
}

// MarkVoided takes a refunded transaction out of the payout lifecycle.
func (s *InMemoryTransactions) MarkVoided(_ context.Context, txID id.SellerTransactionID, now time.Time) error {
	return s.apply([]id.SellerTransactionID{txID}, func(t *models.SellerTransaction) {
		t.Status = models.TransactionVoided
		t.UpdatedAt = now
	})
}

func (s *InMemoryTransactions) apply(ids []id.SellerTransactionID, fn func(*models.SellerTransaction)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, txID := range ids {
		if _, ok := s.txs[txID]; !ok {
			return fmt.Errorf("seller transaction %s: %w", txID, sentinel.ErrNotFound)
		}
	}
	for _, txID := range ids {
		t := s.txs[txID]
		fn(&t)
		s.txs[txID] = t
	}
	return nil
}

func (s *InMemoryTransactions) filter(keep func(*models.SellerTransaction) bool) []*models.SellerTransaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.SellerTransaction
	for _, t := range s.txs {
		if keep(&t) {
			out = append(out, &t)
		}
	}
	sortOldestFirst(out)
	return out
}

func sortOldestFirst(txs []*models.SellerTransaction) {
	sort.Slice(txs, func(i, j int) bool {
		if !txs[i].ReadyForPayoutAt.Equal(txs[j].ReadyForPayoutAt) {
			return txs[i].ReadyForPayoutAt.Before(txs[j].ReadyForPayoutAt)
		}
		return txs[i].CreatedAt.Before(txs[j].CreatedAt)
	})
}

type sellerKey struct {
	territoryID id.TerritoryID
	sellerID    id.UserID
	currency    string
}

type platformKey struct {
	territoryID id.TerritoryID
	currency    string
}

// InMemoryBalances holds seller and platform balances.
type InMemoryBalances struct {
	mu       sync.RWMutex
	sellers  map[sellerKey]models.SellerBalance
	platform map[platformKey]models.PlatformBalance
}

func NewInMemoryBalances() *InMemoryBalances {
	return &InMemoryBalances{
		sellers:  make(map[sellerKey]models.SellerBalance),
		platform: make(map[platformKey]models.PlatformBalance),
	}
}

func (s *InMemoryBalances) FindSeller(_ context.Context, territoryID id.TerritoryID, sellerID id.UserID, currency string) (*models.SellerBalance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.sellers[sellerKey{territoryID, sellerID, currency}]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &b, nil
}

func (s *InMemoryBalances) ListSeller(_ context.Context, territoryID id.TerritoryID, sellerID id.UserID) ([]*models.SellerBalance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.SellerBalance
	for k, b := range s.sellers {
		if k.territoryID == territoryID && k.sellerID == sellerID {
			out = append(out, &b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Currency < out[j].Currency })
	return out, nil
}

func (s *InMemoryBalances) SaveSeller(_ context.Context, b *models.SellerBalance) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sellers[sellerKey{b.TerritoryID, b.SellerUserID, b.Currency}] = *b
	return nil
}

func (s *InMemoryBalances) FindPlatform(_ context.Context, territoryID id.TerritoryID, currency string) (*models.PlatformBalance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.platform[platformKey{territoryID, currency}]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &b, nil
}

func (s *InMemoryBalances) SavePlatform(_ context.Context, b *models.PlatformBalance) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.platform[platformKey{b.TerritoryID, b.Currency}] = *b
	return nil
}

// InMemoryLedger holds platform revenue and expense entries.
type InMemoryLedger struct {
	mu       sync.RWMutex
	revenue  []models.RevenueEntry
	expenses map[id.LedgerEntryID]models.ExpenseEntry
}

func NewInMemoryLedger() *InMemoryLedger {
	return &InMemoryLedger{expenses: make(map[id.LedgerEntryID]models.ExpenseEntry)}
}

func (s *InMemoryLedger) AddRevenue(_ context.Context, e *models.RevenueEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revenue = append(s.revenue, *e)
	return nil
}

func (s *InMemoryLedger) ListRevenue(_ context.Context, territoryID id.TerritoryID) ([]*models.RevenueEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.RevenueEntry
	for _, e := range s.revenue {
		if e.TerritoryID == territoryID {
			out = append(out, &e)
		}
	}
	return out, nil
}

// ReverseRevenue marks the checkout's revenue entry reversed.
func (s *InMemoryLedger) ReverseRevenue(_ context.Context, checkoutID id.CheckoutID, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	found := false
	for i := range s.revenue {
		if s.revenue[i].CheckoutID != checkoutID {
			continue
		}
		found = true
		if s.revenue[i].ReversedAt == nil {
			s.revenue[i].ReversedAt = &at
			return nil
		}
	}
	if found {
		return fmt.Errorf("revenue already reversed: %w", sentinel.ErrConflict)
	}
	return fmt.Errorf("revenue entry for checkout %s: %w", checkoutID, sentinel.ErrNotFound)
}

func (s *InMemoryLedger) AddExpense(_ context.Context, e *models.ExpenseEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.expenses[e.ID]; ok {
		return fmt.Errorf("expense entry id: %w", sentinel.ErrConflict)
	}
	s.expenses[e.ID] = *e
	return nil
}

func (s *InMemoryLedger) ListExpensesByPayout(_ context.Context, payoutID string) ([]*models.ExpenseEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.ExpenseEntry
	for _, e := range s.expenses {
		if e.PayoutID == payoutID {
			out = append(out, &e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *InMemoryLedger) ReverseExpense(_ context.Context, entryID id.LedgerEntryID, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.expenses[entryID]
	if !ok {
		return sentinel.ErrNotFound
	}
	if e.ReversedAt != nil {
		return fmt.Errorf("expense already reversed: %w", sentinel.ErrConflict)
	}
	e.ReversedAt = &at
	s.expenses[entryID] = e
	return nil
}

// InMemoryPayoutConfigs keeps payout configuration history; at most one row
// per territory is active.
type InMemoryPayoutConfigs struct {
	mu      sync.RWMutex
	configs map[id.PayoutConfigID]models.TerritoryPayoutConfig
}

func NewInMemoryPayoutConfigs() *InMemoryPayoutConfigs {
	return &InMemoryPayoutConfigs{configs: make(map[id.PayoutConfigID]models.TerritoryPayoutConfig)}
}

func (s *InMemoryPayoutConfigs) Create(_ context.Context, c *models.TerritoryPayoutConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.configs[c.ID]; ok {
		return fmt.Errorf("payout config id: %w", sentinel.ErrConflict)
	}
	if c.IsActive {
		for _, other := range s.configs {
			if other.TerritoryID == c.TerritoryID && other.IsActive {
				return fmt.Errorf("active payout config: %w", sentinel.ErrConflict)
			}
		}
	}
	s.configs[c.ID] = *c
	return nil
}

func (s *InMemoryPayoutConfigs) Update(_ context.Context, c *models.TerritoryPayoutConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.configs[c.ID]; !ok {
		return sentinel.ErrNotFound
	}
	s.configs[c.ID] = *c
	return nil
}

func (s *InMemoryPayoutConfigs) FindActive(_ context.Context, territoryID id.TerritoryID) (*models.TerritoryPayoutConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.configs {
		if c.TerritoryID == territoryID && c.IsActive {
			return &c, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

// ListActive returns every active config, optionally for one territory.
func (s *InMemoryPayoutConfigs) ListActive(_ context.Context, territoryID *id.TerritoryID) ([]*models.TerritoryPayoutConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.TerritoryPayoutConfig
	for _, c := range s.configs {
		if !c.IsActive || (territoryID != nil && c.TerritoryID != *territoryID) {
			continue
		}
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *InMemoryPayoutConfigs) ListHistory(_ context.Context, territoryID id.TerritoryID) ([]*models.TerritoryPayoutConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.TerritoryPayoutConfig
	for _, c := range s.configs {
		if c.TerritoryID == territoryID {
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}
