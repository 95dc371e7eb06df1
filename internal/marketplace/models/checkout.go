package models

import (
	"time"

	"github.com/shopspring/decimal"

	id "agora/pkg/domain"
	dErrors "agora/pkg/domain-errors"
)

type CheckoutStatus string

const (
	CheckoutAwaitingPayment CheckoutStatus = "awaiting_payment"
	CheckoutPaid            CheckoutStatus = "paid"
	CheckoutCancelled       CheckoutStatus = "cancelled"
	CheckoutRefunded        CheckoutStatus = "refunded"
)

// Checkout is the purchasable bundle of one store from one cart checkout.
//
// Invariants:
//   - Total = ItemsSubtotal + PlatformFee
//   - AwaitingPayment -> Paid -> Refunded, or AwaitingPayment -> Cancelled
type Checkout struct {
	ID            id.CheckoutID   `json:"id"`
	TerritoryID   id.TerritoryID  `json:"territory_id"`
	BuyerUserID   id.UserID       `json:"buyer_user_id"`
	StoreID       id.StoreID      `json:"store_id"`
	Status        CheckoutStatus  `json:"status"`
	Currency      string          `json:"currency"`
	ItemsSubtotal decimal.Decimal `json:"items_subtotal"`
	PlatformFee   decimal.Decimal `json:"platform_fee"`
	Total         decimal.Decimal `json:"total"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	PaidAt        *time.Time      `json:"paid_at,omitempty"`
}

// CheckoutItem is an immutable snapshot of a cart line at checkout time.
type CheckoutItem struct {
	ID            id.CheckoutItemID `json:"id"`
	CheckoutID    id.CheckoutID     `json:"checkout_id"`
	StoreItemID   id.StoreItemID    `json:"store_item_id"`
	ItemType      ItemType          `json:"item_type"`
	TitleSnapshot string            `json:"title"`
	Quantity      int               `json:"quantity"`
	UnitPrice     decimal.Decimal   `json:"unit_price"`
	LineSubtotal  decimal.Decimal   `json:"line_subtotal"`
	Notes         string            `json:"notes,omitempty"`
}

func (c *Checkout) transition(from, to CheckoutStatus, now time.Time) error {
	if c.Status != from {
		return dErrors.Newf(dErrors.CodeConflict, "checkout is %s, expected %s", c.Status, from)
	}
	c.Status = to
	c.UpdatedAt = now
	return nil
}

func (c *Checkout) MarkPaid(now time.Time) error {
	if err := c.transition(CheckoutAwaitingPayment, CheckoutPaid, now); err != nil {
		return err
	}
	c.PaidAt = &now
	return nil
}

func (c *Checkout) Cancel(now time.Time) error {
	return c.transition(CheckoutAwaitingPayment, CheckoutCancelled, now)
}

func (c *Checkout) Refund(now time.Time) error {
	return c.transition(CheckoutPaid, CheckoutRefunded, now)
}

// CheckoutBundle is a checkout with its line snapshots.
type CheckoutBundle struct {
	Checkout *Checkout      `json:"checkout"`
	Items    []CheckoutItem `json:"items"`
}

// Inquiry is created for inquiry-only cart lines instead of a checkout line.
type Inquiry struct {
	ID          id.InquiryID   `json:"id"`
	TerritoryID id.TerritoryID `json:"territory_id"`
	StoreID     id.StoreID     `json:"store_id"`
	StoreItemID id.StoreItemID `json:"store_item_id"`
	BuyerUserID id.UserID      `json:"buyer_user_id"`
	Quantity    int            `json:"quantity"`
	Notes       string         `json:"notes,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

// CheckoutSummary aggregates one store's share of a cart checkout. A store
// selling in several currencies yields one checkout per currency.
type CheckoutSummary struct {
	StoreID       id.StoreID      `json:"store_id"`
	CheckoutIDs   []id.CheckoutID `json:"checkout_ids,omitempty"`
	ItemCount     int             `json:"item_count"`
	TotalQuantity int             `json:"total_quantity"`
	InquiryCount  int             `json:"inquiry_count"`
}

// CheckoutResult keeps purchasable checkouts apart from inquiries.
type CheckoutResult struct {
	Checkouts []CheckoutBundle  `json:"checkouts"`
	Inquiries []*Inquiry        `json:"inquiries"`
	Summaries []CheckoutSummary `json:"summaries"`
}
