package handler

import (
	"strings"

	"github.com/shopspring/decimal"

	"agora/internal/marketplace/models"
	id "agora/pkg/domain"
	dErrors "agora/pkg/domain-errors"
)

type CreateStoreRequest struct {
	Name string `json:"name"`
}

func (r *CreateStoreRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return dErrors.New(dErrors.CodeValidation, "name is required")
	}
	return nil
}

type CreateItemRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	ItemType    string          `json:"item_type"`
	PricingType string          `json:"pricing_type"`
	Price       decimal.Decimal `json:"price"`
	Currency    string          `json:"currency,omitempty"`

	input models.NewItemInput
}

func (r *CreateItemRequest) Validate() error {
	itemType, err := models.ParseItemType(r.ItemType)
	if err != nil {
		return err
	}
	pricing, err := models.ParsePricingType(r.PricingType)
	if err != nil {
		return err
	}
	r.input = models.NewItemInput{
		Title:       r.Title,
		Description: r.Description,
		ItemType:    itemType,
		PricingType: pricing,
		Price:       r.Price,
		Currency:    r.Currency,
	}
	return r.input.Normalize()
}

type SetItemStatusRequest struct {
	Status string `json:"status"`

	status models.ItemStatus
}

func (r *SetItemStatusRequest) Validate() error {
	status, err := models.ParseItemStatus(r.Status)
	if err != nil {
		return err
	}
	r.status = status
	return nil
}

type AddCartItemRequest struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes,omitempty"`

	itemID id.StoreItemID
}

func (r *AddCartItemRequest) Validate() error {
	itemID, err := id.ParseStoreItemID(r.ItemID)
	if err != nil {
		return err
	}
	if err := models.ValidateQuantity(r.Quantity); err != nil {
		return err
	}
	if err := models.ValidateNotes(r.Notes); err != nil {
		return err
	}
	r.itemID = itemID
	return nil
}

// UpdateCartItemRequest leaves notes untouched when Notes is omitted.
type UpdateCartItemRequest struct {
	Quantity int     `json:"quantity"`
	Notes    *string `json:"notes,omitempty"`
}

func (r *UpdateCartItemRequest) Validate() error {
	if err := models.ValidateQuantity(r.Quantity); err != nil {
		return err
	}
	if r.Notes != nil {
		return models.ValidateNotes(*r.Notes)
	}
	return nil
}

type UpsertFeeRequest struct {
	Mode     string          `json:"fee_mode"`
	Value    decimal.Decimal `json:"fee_value"`
	Currency string          `json:"currency"`
	IsActive *bool           `json:"is_active,omitempty"`

	mode models.FeeMode
}

func (r *UpsertFeeRequest) Validate() error {
	mode, err := models.ParseFeeMode(r.Mode)
	if err != nil {
		return err
	}
	r.mode = mode
	return nil
}

// active defaults to true when the flag is omitted.
func (r *UpsertFeeRequest) active() bool {
	return r.IsActive == nil || *r.IsActive
}
