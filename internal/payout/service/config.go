package service

import (
	"context"
	"errors"

	membershipModels "agora/internal/membership/models"
	"agora/internal/payout/models"
	id "agora/pkg/domain"
	"agora/pkg/platform/pagination"
	"agora/pkg/platform/sentinel"
	"agora/pkg/platform/tx"
	"agora/pkg/requestcontext"
)

// TerritoryPayoutConfigService keeps payout configuration history: every
// change deactivates the current row and inserts a new one.
type TerritoryPayoutConfigService struct {
	configs PayoutConfigRepository
	authz   Authorizer
	tx      tx.Runner
	options
}

func NewTerritoryPayoutConfigService(configs PayoutConfigRepository, authz Authorizer, runner tx.Runner, opts ...Option) (*TerritoryPayoutConfigService, error) {
	if configs == nil {
		return nil, errors.New("payout config repository is required")
	}
	if authz == nil {
		return nil, errors.New("authorizer is required")
	}
	if runner == nil {
		return nil, errors.New("transaction runner is required")
	}
	return &TerritoryPayoutConfigService{configs: configs, authz: authz, tx: runner, options: newOptions(opts)}, nil
}

// UpsertConfig makes in the active payout configuration of its territory. The
// actor needs the financial manager capability in the territory.
func (s *TerritoryPayoutConfigService) UpsertConfig(ctx context.Context, actorID id.UserID, in models.PayoutConfigInput) (*models.TerritoryPayoutConfig, error) {
	if err := in.Normalize(); err != nil {
		return nil, err
	}
	if err := s.authz.RequireCapability(ctx, actorID, in.TerritoryID, membershipModels.CapabilityFinancialManager); err != nil {
		return nil, err
	}

	var (
		result  *models.TerritoryPayoutConfig
		changed bool
	)
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.configs.FindActive(ctx, in.TerritoryID)
		switch {
		case err == nil:
			if current.Matches(in) {
				result = current
				return nil
			}
			current.IsActive = false
			if err := s.configs.Update(ctx, current); err != nil {
				return translate(err, "payout config not found", "failed to deactivate payout config")
			}
		case !errors.Is(err, sentinel.ErrNotFound):
			return translate(err, "", "failed to load payout config")
		}

		next := &models.TerritoryPayoutConfig{
			ID:                id.NewPayoutConfigID(),
			TerritoryID:       in.TerritoryID,
			RetentionDays:     in.RetentionDays,
			MinimumCents:      in.MinimumCents,
			MaximumCents:      in.MaximumCents,
			Frequency:         in.Frequency,
			AutoPayoutEnabled: in.AutoPayoutEnabled,
			RequiresApproval:  in.RequiresApproval,
			Currency:          in.Currency,
			IsActive:          true,
			CreatedAt:         requestcontext.Now(ctx),
			CreatedBy:         actorID,
		}
		if err := s.configs.Create(ctx, next); err != nil {
			return translate(err, "", "failed to create payout config")
		}
		result, changed = next, true
		return nil
	})
	if err != nil {
		return nil, err
	}
	if changed {
		s.metrics.IncrementConfigChange()
		s.logger.InfoContext(ctx, "territory_payout_config_changed",
			"payout_config_id", result.ID,
			"territory_id", result.TerritoryID,
			"frequency", result.Frequency,
			"retention_days", result.RetentionDays,
			"auto_payout_enabled", result.AutoPayoutEnabled,
			"actor_id", actorID,
			"request_id", requestcontext.RequestID(ctx),
		)
	}
	return result, nil
}

// GetActive returns the territory's active payout configuration.
func (s *TerritoryPayoutConfigService) GetActive(ctx context.Context, territoryID id.TerritoryID) (*models.TerritoryPayoutConfig, error) {
	cfg, err := s.configs.FindActive(ctx, territoryID)
	if err != nil {
		return nil, translate(err, "payout config not found", "failed to load payout config")
	}
	return cfg, nil
}

// History returns every configuration the territory has had, oldest first.
func (s *TerritoryPayoutConfigService) History(ctx context.Context, actorID id.UserID, territoryID id.TerritoryID) ([]*models.TerritoryPayoutConfig, error) {
	if err := s.authz.RequireCapability(ctx, actorID, territoryID, membershipModels.CapabilityFinancialManager); err != nil {
		return nil, err
	}
	all, err := s.configs.ListHistory(ctx, territoryID)
	if err != nil {
		return nil, translate(err, "", "failed to list payout configs")
	}
	return all, nil
}

// ListActivePaged pages active configurations across territories.
func (s *TerritoryPayoutConfigService) ListActivePaged(ctx context.Context, page pagination.Page) (pagination.Result[*models.TerritoryPayoutConfig], error) {
	all, err := s.configs.ListActive(ctx, nil)
	if err != nil {
		return pagination.Result[*models.TerritoryPayoutConfig]{}, translate(err, "", "failed to list payout configs")
	}
	return pagination.Slice(all, page), nil
}
