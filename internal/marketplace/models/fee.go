package models

import (
	"time"

	"github.com/shopspring/decimal"

	id "agora/pkg/domain"
	dErrors "agora/pkg/domain-errors"
	"agora/pkg/platform/money"
)

type FeeMode string

const (
	// FeeModePercentage takes Value as a fraction of the subtotal (0.05 is 5%).
	FeeModePercentage FeeMode = "percentage"
	// FeeModeFixed charges Value once per item type present in a checkout.
	FeeModeFixed FeeMode = "fixed"
)

func ParseFeeMode(s string) (FeeMode, error) {
	switch m := FeeMode(s); m {
	case FeeModePercentage, FeeModeFixed:
		return m, nil
	default:
		return "", dErrors.Newf(dErrors.CodeValidation, "unknown fee mode %q", s)
	}
}

// PlatformFeeConfig is one row of fee history for (TerritoryID, ItemType).
// At most one row per pair is active; the latest active row wins.
type PlatformFeeConfig struct {
	ID            id.FeeConfigID  `json:"id"`
	TerritoryID   id.TerritoryID  `json:"territory_id"`
	ItemType      ItemType        `json:"item_type"`
	Mode          FeeMode         `json:"fee_mode"`
	Value         decimal.Decimal `json:"fee_value"`
	Currency      string          `json:"currency"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
	CreatedBy     id.UserID       `json:"created_by"`
	DeactivatedAt *time.Time      `json:"deactivated_at,omitempty"`
}

// FeeConfigInput is a requested fee configuration.
type FeeConfigInput struct {
	TerritoryID id.TerritoryID
	ItemType    ItemType
	Mode        FeeMode
	Value       decimal.Decimal
	Currency    string
	IsActive    bool
}

// Normalize validates the input in place.
func (in *FeeConfigInput) Normalize() error {
	if in.TerritoryID.IsNil() {
		return dErrors.New(dErrors.CodeValidation, "territory id is required")
	}
	if _, err := ParseItemType(string(in.ItemType)); err != nil {
		return err
	}
	if _, err := ParseFeeMode(string(in.Mode)); err != nil {
		return err
	}
	if in.Value.IsNegative() {
		return dErrors.New(dErrors.CodeValidation, "fee value must be zero or greater")
	}
	if in.Mode == FeeModePercentage && in.Value.GreaterThan(decimal.NewFromInt(1)) {
		return dErrors.New(dErrors.CodeValidation, "percentage fee value is a fraction and must be at most 1")
	}
	currency, err := money.NormalizeCurrency(in.Currency)
	if err != nil {
		return err
	}
	in.Currency = currency
	return nil
}

// Matches reports whether the config already holds the requested values.
func (c *PlatformFeeConfig) Matches(in FeeConfigInput) bool {
	return c.Mode == in.Mode &&
		c.Value.Equal(in.Value) &&
		c.Currency == in.Currency &&
		c.IsActive == in.IsActive
}

// FeeFor computes the fee charged on a subtotal of this config's item type.
func (c *PlatformFeeConfig) FeeFor(subtotal decimal.Decimal, currency string) (decimal.Decimal, error) {
	switch c.Mode {
	case FeeModePercentage:
		return money.Round(subtotal.Mul(c.Value)), nil
	case FeeModeFixed:
		if c.Currency != currency {
			return decimal.Zero, dErrors.Newf(dErrors.CodeValidation,
				"fixed %s fee is configured in %s but the checkout is in %s", c.ItemType, c.Currency, currency)
		}
		return money.Round(c.Value), nil
	default:
		return decimal.Zero, dErrors.Newf(dErrors.CodeInvariantViolation, "unknown fee mode %q", c.Mode)
	}
}
