package handler

import (
	"strings"

	"agora/internal/payout/models"
	id "agora/pkg/domain"
	dErrors "agora/pkg/domain-errors"
)

type UpsertConfigRequest struct {
	RetentionDays     int    `json:"retention_period_days"`
	MinimumCents      int64  `json:"minimum_payout_cents"`
	MaximumCents      *int64 `json:"maximum_payout_cents,omitempty"`
	Frequency         string `json:"frequency"`
	AutoPayoutEnabled *bool  `json:"auto_payout_enabled,omitempty"`
	RequiresApproval  bool   `json:"requires_approval"`
	Currency          string `json:"currency"`

	frequency models.PayoutFrequency
}

func (r *UpsertConfigRequest) Validate() error {
	freq, err := models.ParseFrequency(strings.ToLower(strings.TrimSpace(r.Frequency)))
	if err != nil {
		return err
	}
	if strings.TrimSpace(r.Currency) == "" {
		return dErrors.New(dErrors.CodeValidation, "currency is required")
	}
	r.frequency = freq
	return nil
}

// input builds the service input; auto payout defaults to on.
func (r *UpsertConfigRequest) input(territoryID id.TerritoryID) models.PayoutConfigInput {
	return models.PayoutConfigInput{
		TerritoryID:       territoryID,
		RetentionDays:     r.RetentionDays,
		MinimumCents:      r.MinimumCents,
		MaximumCents:      r.MaximumCents,
		Frequency:         r.frequency,
		AutoPayoutEnabled: r.AutoPayoutEnabled == nil || *r.AutoPayoutEnabled,
		RequiresApproval:  r.RequiresApproval,
		Currency:          r.Currency,
	}
}
