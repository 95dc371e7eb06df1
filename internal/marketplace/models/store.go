package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	id "agora/pkg/domain"
	dErrors "agora/pkg/domain-errors"
	"agora/pkg/platform/money"
)

// Store is a seller's shop inside one territory. The owner is the seller of
// every checkout made against the store.
type Store struct {
	ID          id.StoreID     `json:"id"`
	TerritoryID id.TerritoryID `json:"territory_id"`
	OwnerUserID id.UserID      `json:"owner_user_id"`
	Name        string         `json:"name"`
	CreatedAt   time.Time      `json:"created_at"`
}

type ItemType string

const (
	ItemTypeProduct ItemType = "product"
	ItemTypeService ItemType = "service"
)

func ParseItemType(s string) (ItemType, error) {
	switch t := ItemType(s); t {
	case ItemTypeProduct, ItemTypeService:
		return t, nil
	default:
		return "", dErrors.Newf(dErrors.CodeValidation, "unknown item type %q", s)
	}
}

// PricingType separates purchasable items from inquiry-only ones.
type PricingType string

const (
	PricingFixed   PricingType = "fixed"
	PricingInquiry PricingType = "inquiry"
)

func ParsePricingType(s string) (PricingType, error) {
	switch p := PricingType(s); p {
	case PricingFixed, PricingInquiry:
		return p, nil
	default:
		return "", dErrors.Newf(dErrors.CodeValidation, "unknown pricing type %q", s)
	}
}

type ItemStatus string

const (
	ItemActive   ItemStatus = "active"
	ItemArchived ItemStatus = "archived"
)

func ParseItemStatus(s string) (ItemStatus, error) {
	switch st := ItemStatus(s); st {
	case ItemActive, ItemArchived:
		return st, nil
	default:
		return "", dErrors.Newf(dErrors.CodeValidation, "unknown item status %q", s)
	}
}

type StoreItem struct {
	ID          id.StoreItemID  `json:"id"`
	StoreID     id.StoreID      `json:"store_id"`
	TerritoryID id.TerritoryID  `json:"territory_id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	ItemType    ItemType        `json:"item_type"`
	PricingType PricingType     `json:"pricing_type"`
	Price       decimal.Decimal `json:"price"`
	Currency    string          `json:"currency,omitempty"`
	Status      ItemStatus      `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (i *StoreItem) IsActive() bool {
	return i.Status == ItemActive
}

func (i *StoreItem) IsPurchasable() bool {
	return i.PricingType == PricingFixed
}

// NewItemInput is the validated shape of an item creation request.
type NewItemInput struct {
	Title       string
	Description string
	ItemType    ItemType
	PricingType PricingType
	Price       decimal.Decimal
	Currency    string
}

// Normalize validates the input in place. Fixed-price items need a positive
// price and a three-letter currency; inquiry items carry neither.
func (in *NewItemInput) Normalize() error {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return dErrors.New(dErrors.CodeValidation, "title is required")
	}
	if len(in.Title) > 200 {
		return dErrors.New(dErrors.CodeValidation, "title must be at most 200 characters")
	}
	if _, err := ParseItemType(string(in.ItemType)); err != nil {
		return err
	}
	if _, err := ParsePricingType(string(in.PricingType)); err != nil {
		return err
	}
	if in.PricingType == PricingInquiry {
		in.Price = decimal.Zero
		in.Currency = ""
		return nil
	}
	if !in.Price.IsPositive() {
		return dErrors.New(dErrors.CodeValidation, "price must be greater than zero")
	}
	currency, err := money.NormalizeCurrency(in.Currency)
	if err != nil {
		return err
	}
	if len(currency) != 3 {
		return dErrors.New(dErrors.CodeValidation, "currency must be a 3-letter code")
	}
	in.Currency = currency
	in.Price = money.Round(in.Price)
	return nil
}
