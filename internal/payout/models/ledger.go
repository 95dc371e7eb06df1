// Package models holds the payout ledger: seller transactions and balances,
// the platform's revenue and expense entries, and territory payout settings.
// Amounts are integer cents.
package models

import (
	"time"

	id "agora/pkg/domain"
	dErrors "agora/pkg/domain-errors"
)

type TransactionStatus string

const (
	TransactionPending        TransactionStatus = "pending"
	TransactionReadyForPayout TransactionStatus = "ready_for_payout"
	TransactionPaid           TransactionStatus = "paid"
	// TransactionVoided is a transaction whose checkout was refunded before
	// payout. It no longer counts toward any balance bucket.
	TransactionVoided TransactionStatus = "voided"
)

// SellerTransaction records what one paid checkout owes its seller. There is
// at most one per checkout.
//
// Invariants:
//   - NetCents = GrossCents - FeeCents
//   - PayoutID is set iff Status is Paid
type SellerTransaction struct {
	ID               id.SellerTransactionID `json:"id"`
	TerritoryID      id.TerritoryID         `json:"territory_id"`
	SellerUserID     id.UserID              `json:"seller_user_id"`
	StoreID          id.StoreID             `json:"store_id"`
	CheckoutID       id.CheckoutID          `json:"checkout_id"`
	GrossCents       int64                  `json:"gross_cents"`
	FeeCents         int64                  `json:"fee_cents"`
	NetCents         int64                  `json:"net_cents"`
	Currency         string                 `json:"currency"`
	Status           TransactionStatus      `json:"status"`
	ReadyForPayoutAt time.Time              `json:"ready_for_payout_at"`
	PayoutID         string                 `json:"payout_id,omitempty"`
	PaidAt           *time.Time             `json:"paid_at,omitempty"`
	CreatedAt        time.Time              `json:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"`
}

// SellerBalance splits a seller's net earnings into buckets. The buckets always
// sum to the NetCents of the seller's non-voided transactions in that currency.
type SellerBalance struct {
	TerritoryID  id.TerritoryID `json:"territory_id"`
	SellerUserID id.UserID      `json:"seller_user_id"`
	Currency     string         `json:"currency"`
	PendingCents int64          `json:"pending_cents"`
	ReadyCents   int64          `json:"ready_for_payout_cents"`
	PaidCents    int64          `json:"paid_cents"`
	LastPayoutAt *time.Time     `json:"last_payout_at,omitempty"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func NewSellerBalance(territoryID id.TerritoryID, sellerID id.UserID, currency string, now time.Time) *SellerBalance {
	return &SellerBalance{
		TerritoryID:  territoryID,
		SellerUserID: sellerID,
		Currency:     currency,
		UpdatedAt:    now,
	}
}

func (b *SellerBalance) Total() int64 {
	return b.PendingCents + b.ReadyCents + b.PaidCents
}

func (b *SellerBalance) AddPending(cents int64, now time.Time) {
	b.PendingCents += cents
	b.UpdatedAt = now
}

// Promote moves cents from Pending to ReadyForPayout.
func (b *SellerBalance) Promote(cents int64, now time.Time) error {
	if cents > b.PendingCents {
		return dErrors.Newf(dErrors.CodeInvariantViolation, "cannot promote %d cents, only %d pending", cents, b.PendingCents)
	}
	b.PendingCents -= cents
	b.ReadyCents += cents
	b.UpdatedAt = now
	return nil
}

// Pay moves cents from ReadyForPayout to Paid.
func (b *SellerBalance) Pay(cents int64, now time.Time) error {
	if cents > b.ReadyCents {
		return dErrors.Newf(dErrors.CodeInvariantViolation, "cannot pay %d cents, only %d ready", cents, b.ReadyCents)
	}
	b.ReadyCents -= cents
	b.PaidCents += cents
	b.LastPayoutAt = &now
	b.UpdatedAt = now
	return nil
}

// Revert moves cents of a failed payout from Paid back to ReadyForPayout.
func (b *SellerBalance) Revert(cents int64, now time.Time) error {
	if cents > b.PaidCents {
		return dErrors.Newf(dErrors.CodeInvariantViolation, "cannot revert %d cents, only %d paid", cents, b.PaidCents)
	}
	b.PaidCents -= cents
	b.ReadyCents += cents
	b.UpdatedAt = now
	return nil
}

// Void removes the cents of a refunded transaction from the bucket its status
// holds them in. Paid money cannot be voided.
func (b *SellerBalance) Void(status TransactionStatus, cents int64, now time.Time) error {
	var bucket *int64
	switch status {
	case TransactionPending:
		bucket = &b.PendingCents
	case TransactionReadyForPayout:
		bucket = &b.ReadyCents
	default:
		return dErrors.Newf(dErrors.CodeConflict, "cannot void a %s transaction", status)
	}
	if cents > *bucket {
		return dErrors.Newf(dErrors.CodeInvariantViolation, "cannot void %d cents, only %d %s", cents, *bucket, status)
	}
	*bucket -= cents
	b.UpdatedAt = now
	return nil
}

// PlatformBalance aggregates the platform's fee revenue and payout expenses in
// one territory and currency.
type PlatformBalance struct {
	TerritoryID   id.TerritoryID `json:"territory_id"`
	Currency      string         `json:"currency"`
	RevenueCents  int64          `json:"total_revenue_cents"`
	ExpensesCents int64          `json:"total_expenses_cents"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func NewPlatformBalance(territoryID id.TerritoryID, currency string, now time.Time) *PlatformBalance {
	return &PlatformBalance{TerritoryID: territoryID, Currency: currency, UpdatedAt: now}
}

// RevenueEntry is the platform fee earned on one checkout. A refund before
// payout reverses it.
type RevenueEntry struct {
	ID          id.LedgerEntryID `json:"id"`
	TerritoryID id.TerritoryID   `json:"territory_id"`
	CheckoutID  id.CheckoutID    `json:"checkout_id"`
	AmountCents int64            `json:"amount_cents"`
	Currency    string           `json:"currency"`
	ReversedAt  *time.Time       `json:"reversed_at,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}

func (e *RevenueEntry) IsReversed() bool {
	return e.ReversedAt != nil
}

// ExpenseEntry is money sent to a seller in one payout. A failed payout
// reverses it.
type ExpenseEntry struct {
	ID           id.LedgerEntryID `json:"id"`
	TerritoryID  id.TerritoryID   `json:"territory_id"`
	SellerUserID id.UserID        `json:"seller_user_id"`
	PayoutID     string           `json:"payout_id"`
	AmountCents  int64            `json:"amount_cents"`
	Currency     string           `json:"currency"`
	ReversedAt   *time.Time       `json:"reversed_at,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
}

func (e *ExpenseEntry) IsReversed() bool {
	return e.ReversedAt != nil
}
