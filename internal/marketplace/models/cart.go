package models

import (
	"time"

	id "agora/pkg/domain"
	dErrors "agora/pkg/domain-errors"
)

// Cart is the single open cart of a user in a territory. It has no status:
// checkout consumes its items.
type Cart struct {
	ID          id.CartID      `json:"id"`
	TerritoryID id.TerritoryID `json:"territory_id"`
	UserID      id.UserID      `json:"user_id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// CartItem is unique per (CartID, StoreItemID).
type CartItem struct {
	ID          id.CartItemID  `json:"id"`
	CartID      id.CartID      `json:"cart_id"`
	StoreItemID id.StoreItemID `json:"store_item_id"`
	Quantity    int            `json:"quantity"`
	Notes       string         `json:"notes,omitempty"`
	AddedAt     time.Time      `json:"added_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// CartView is a cart with its items, as returned to the owner.
type CartView struct {
	Cart  *Cart       `json:"cart"`
	Items []*CartItem `json:"items"`
}

const (
	maxNotesLength = 1000
	// MaxQuantity bounds a single cart line, merged quantities included.
	MaxQuantity = 10000
)

func ValidateQuantity(quantity int) error {
	if quantity < 1 {
		return dErrors.New(dErrors.CodeValidation, "quantity must be at least 1")
	}
	if quantity > MaxQuantity {
		return dErrors.Newf(dErrors.CodeValidation, "quantity must be at most %d", MaxQuantity)
	}
	return nil
}

// MergeQuantity adds more to a line's current quantity within MaxQuantity.
func MergeQuantity(current, more int) (int, error) {
	if more > MaxQuantity-current {
		return 0, dErrors.Newf(dErrors.CodeValidation, "quantity must be at most %d", MaxQuantity)
	}
	return current + more, nil
}

func ValidateNotes(notes string) error {
	if len(notes) > maxNotesLength {
		return dErrors.New(dErrors.CodeValidation, "notes must be at most 1000 characters")
	}
	return nil
}
