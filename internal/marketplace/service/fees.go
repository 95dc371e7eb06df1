package service

import (
	"context"
	"errors"

	"agora/internal/marketplace/models"
	membershipModels "agora/internal/membership/models"
	id "agora/pkg/domain"
	"agora/pkg/platform/pagination"
	"agora/pkg/platform/sentinel"
	"agora/pkg/platform/tx"
	"agora/pkg/requestcontext"
)

// PlatformFeeService keeps fee configuration history: every change
// deactivates the current row and inserts a new one.
type PlatformFeeService struct {
	fees  FeeConfigRepository
	authz Authorizer
	tx    tx.Runner
	options
}

func NewPlatformFeeService(fees FeeConfigRepository, authz Authorizer, runner tx.Runner, opts ...Option) (*PlatformFeeService, error) {
	if fees == nil {
		return nil, errors.New("fee config repository is required")
	}
	if authz == nil {
		return nil, errors.New("authorizer is required")
	}
	if runner == nil {
		return nil, errors.New("transaction runner is required")
	}
	return &PlatformFeeService{fees: fees, authz: authz, tx: runner, options: newOptions(opts)}, nil
}

// UpsertFeeConfig records a fee configuration for (territory, item type).
// Submitting the values already active is a no-op returning the current row.
func (s *PlatformFeeService) UpsertFeeConfig(ctx context.Context, actorID id.UserID, in models.FeeConfigInput) (*models.PlatformFeeConfig, error) {
	if err := in.Normalize(); err != nil {
		return nil, err
	}
	if err := s.authz.RequireSystemPermission(ctx, actorID, membershipModels.PermissionPlatformFinance); err != nil {
		return nil, err
	}

	var (
		result  *models.PlatformFeeConfig
		changed bool
	)
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		now := requestcontext.Now(ctx)
		current, err := s.fees.FindActive(ctx, in.TerritoryID, in.ItemType)
		switch {
		case err == nil:
			if current.Matches(in) {
				result = current
				return nil
			}
			current.IsActive = false
			current.DeactivatedAt = &now
			if err := s.fees.Update(ctx, current); err != nil {
				return translate(err, "fee config not found", "failed to deactivate fee config")
			}
		case !errors.Is(err, sentinel.ErrNotFound):
			return translate(err, "", "failed to load fee config")
		}

		next := &models.PlatformFeeConfig{
			ID:          id.NewFeeConfigID(),
			TerritoryID: in.TerritoryID,
			ItemType:    in.ItemType,
			Mode:        in.Mode,
			Value:       in.Value,
			Currency:    in.Currency,
			IsActive:    in.IsActive,
			CreatedAt:   now,
			CreatedBy:   actorID,
		}
		if !in.IsActive {
			next.DeactivatedAt = &now
		}
		if err := s.fees.Create(ctx, next); err != nil {
			return translate(err, "", "failed to create fee config")
		}
		result, changed = next, true
		return nil
	})
	if err != nil {
		return nil, err
	}
	if changed {
		s.metrics.IncrementFeeConfigChange()
		s.logger.InfoContext(ctx, "platform_fee_config_changed",
			"fee_config_id", result.ID,
			"territory_id", result.TerritoryID,
			"item_type", result.ItemType,
			"fee_mode", result.Mode,
			"fee_value", result.Value.String(),
			"is_active", result.IsActive,
			"actor_id", actorID,
		)
	}
	return result, nil
}

// GetActive returns the active fee config for (territory, item type).
func (s *PlatformFeeService) GetActive(ctx context.Context, territoryID id.TerritoryID, itemType models.ItemType) (*models.PlatformFeeConfig, error) {
	cfg, err := s.fees.FindActive(ctx, territoryID, itemType)
	if err != nil {
		return nil, translate(err, "fee config not found", "failed to load fee config")
	}
	return cfg, nil
}

// ListActivePaged pages the territory's active fee configs.
func (s *PlatformFeeService) ListActivePaged(ctx context.Context, territoryID id.TerritoryID, page pagination.Page) (pagination.Result[*models.PlatformFeeConfig], error) {
	all, err := s.fees.ListActive(ctx, territoryID)
	if err != nil {
		return pagination.Result[*models.PlatformFeeConfig]{}, translate(err, "", "failed to list fee configs")
	}
	return pagination.Slice(all, page), nil
}
