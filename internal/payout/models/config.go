package models

import (
	"time"

	id "agora/pkg/domain"
	dErrors "agora/pkg/domain-errors"
	"agora/pkg/platform/money"
)

type PayoutFrequency string

const (
	FrequencyDaily   PayoutFrequency = "daily"
	FrequencyWeekly  PayoutFrequency = "weekly"
	FrequencyMonthly PayoutFrequency = "monthly"
	// FrequencyManual disables automatic payouts like AutoPayoutEnabled=false.
	FrequencyManual PayoutFrequency = "manual"
)

func ParseFrequency(s string) (PayoutFrequency, error) {
	switch f := PayoutFrequency(s); f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyManual:
		return f, nil
	default:
		return "", dErrors.Newf(dErrors.CodeValidation, "unknown payout frequency %q", s)
	}
}

// TerritoryPayoutConfig is one row of payout settings history. At most one
// row per territory is active.
type TerritoryPayoutConfig struct {
	ID                id.PayoutConfigID `json:"id"`
	TerritoryID       id.TerritoryID    `json:"territory_id"`
	RetentionDays     int               `json:"retention_period_days"`
	MinimumCents      int64             `json:"minimum_payout_cents"`
	MaximumCents      *int64            `json:"maximum_payout_cents,omitempty"`
	Frequency         PayoutFrequency   `json:"frequency"`
	AutoPayoutEnabled bool              `json:"auto_payout_enabled"`
	RequiresApproval  bool              `json:"requires_approval"`
	Currency          string            `json:"currency"`
	IsActive          bool              `json:"is_active"`
	CreatedAt         time.Time         `json:"created_at"`
	CreatedBy         id.UserID         `json:"created_by"`
}

// Retention is how long a paid checkout's money is held before payout.
func (c *TerritoryPayoutConfig) Retention() time.Duration {
	return time.Duration(c.RetentionDays) * 24 * time.Hour
}

// RunsAutomatically reports whether pending payouts may be processed at all.
func (c *TerritoryPayoutConfig) RunsAutomatically() bool {
	return c.IsActive && c.AutoPayoutEnabled && c.Frequency != FrequencyManual
}

// Due reports whether a seller last paid at lastPayoutAt may be paid again at now.
func (c *TerritoryPayoutConfig) Due(lastPayoutAt *time.Time, now time.Time) bool {
	if lastPayoutAt == nil {
		return true
	}
	switch c.Frequency {
	case FrequencyDaily:
		return !now.Before(lastPayoutAt.Add(24 * time.Hour))
	case FrequencyWeekly:
		return !now.Before(lastPayoutAt.Add(7 * 24 * time.Hour))
	case FrequencyMonthly:
		return !now.Before(lastPayoutAt.AddDate(0, 1, 0))
	default:
		return false
	}
}

// Selects applies Minimum and Maximum to a seller's ready transactions,
// oldest first. It returns how many leading transactions to pay and their
// total; zero means the seller is skipped this run. An oldest transaction
// larger than Maximum is paid alone so it cannot hold the seller back.
func (c *TerritoryPayoutConfig) Selects(netCents []int64) (count int, total int64) {
	for _, n := range netCents {
		if c.MaximumCents != nil && total+n > *c.MaximumCents {
			if count == 0 {
				count, total = 1, n
			}
			break
		}
		total += n
		count++
	}
	if count == 0 || total < c.MinimumCents || total <= 0 {
		return 0, 0
	}
	return count, total
}

// PayoutConfigInput is a requested payout configuration.
type PayoutConfigInput struct {
	TerritoryID       id.TerritoryID
	RetentionDays     int
	MinimumCents      int64
	MaximumCents      *int64
	Frequency         PayoutFrequency
	AutoPayoutEnabled bool
	RequiresApproval  bool
	Currency          string
}

// Normalize validates the input in place.
func (in *PayoutConfigInput) Normalize() error {
	if in.TerritoryID.IsNil() {
		return dErrors.New(dErrors.CodeValidation, "territory id is required")
	}
	if in.RetentionDays < 0 {
		return dErrors.New(dErrors.CodeValidation, "retention period days must be zero or greater")
	}
	if in.MinimumCents < 0 {
		return dErrors.New(dErrors.CodeValidation, "minimum payout amount must be zero or greater")
	}
	if in.MaximumCents != nil && *in.MaximumCents < in.MinimumCents {
		return dErrors.New(dErrors.CodeValidation, "maximum payout amount must be at least the minimum")
	}
	if _, err := ParseFrequency(string(in.Frequency)); err != nil {
		return err
	}
	currency, err := money.NormalizeCurrency(in.Currency)
	if err != nil {
		return err
	}
	in.Currency = currency
	return nil
}

// Matches reports whether in would recreate c unchanged.
func (c *TerritoryPayoutConfig) Matches(in PayoutConfigInput) bool {
	sameMax := (c.MaximumCents == nil && in.MaximumCents == nil) ||
		(c.MaximumCents != nil && in.MaximumCents != nil && *c.MaximumCents == *in.MaximumCents)
	return c.IsActive &&
		sameMax &&
		c.RetentionDays == in.RetentionDays &&
		c.MinimumCents == in.MinimumCents &&
		c.Frequency == in.Frequency &&
		c.AutoPayoutEnabled == in.AutoPayoutEnabled &&
		c.RequiresApproval == in.RequiresApproval &&
		c.Currency == in.Currency
}
