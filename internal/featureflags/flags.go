// Package featureflags gates territory-scoped features. A flag with no stored
// value falls back to the configured default, and any failure denies.
package featureflags

import (
	"context"
	"errors"
	"log/slog"

	"agora/internal/membership/models"
	id "agora/pkg/domain"
	dErrors "agora/pkg/domain-errors"
)

type Flag string

const FlagMarketplace Flag = "marketplace"

// MarketplaceDisabledMessage is rendered with CodeFeatureDisabled, which
// transports map to 404 so territory existence is not revealed.
const MarketplaceDisabledMessage = "Marketplace is disabled for this territory"

func ParseFlag(s string) (Flag, error) {
	switch f := Flag(s); f {
	case FlagMarketplace:
		return f, nil
	default:
		return "", dErrors.Newf(dErrors.CodeValidation, "unknown feature flag %q", s)
	}
}

// Store persists explicit per-territory flag values.
type Store interface {
	Get(ctx context.Context, territoryID id.TerritoryID, flag Flag) (enabled bool, found bool, err error)
	Set(ctx context.Context, territoryID id.TerritoryID, flag Flag, enabled bool) error
}

// Authorizer checks that the caller may toggle flags.
type Authorizer interface {
	RequireSystemPermission(ctx context.Context, userID id.UserID, permType models.PermissionType) error
}

type Guard struct {
	store    Store
	authz    Authorizer
	defaults map[Flag]bool
	logger   *slog.Logger
}

type Option func(*Guard)

func WithLogger(logger *slog.Logger) Option {
	return func(g *Guard) {
		g.logger = logger
	}
}

// WithDefault sets the value used for territories with no stored value.
func WithDefault(flag Flag, enabled bool) Option {
	return func(g *Guard) {
		g.defaults[flag] = enabled
	}
}

func New(store Store, authz Authorizer, opts ...Option) (*Guard, error) {
	if store == nil {
		return nil, errors.New("flag store is required")
	}
	if authz == nil {
		return nil, errors.New("authorizer is required")
	}
	g := &Guard{
		store:    store,
		authz:    authz,
		defaults: map[Flag]bool{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// IsEnabled reports the effective value of flag in the territory.
func (g *Guard) IsEnabled(ctx context.Context, territoryID id.TerritoryID, flag Flag) (bool, error) {
	enabled, found, err := g.store.Get(ctx, territoryID, flag)
	if err != nil {
		return false, dErrors.Wrap(err, dErrors.CodeUnavailable, "feature flag lookup failed")
	}
	if !found {
		return g.defaults[flag], nil
	}
	return enabled, nil
}

// RequireMarketplace returns CodeFeatureDisabled unless the marketplace is
// enabled for the territory. Lookup failures also deny.
func (g *Guard) RequireMarketplace(ctx context.Context, territoryID id.TerritoryID) error {
	enabled, err := g.IsEnabled(ctx, territoryID, FlagMarketplace)
	if err != nil {
		g.logger.ErrorContext(ctx, "feature flag lookup failed, denying",
			"territory_id", territoryID,
			"flag", FlagMarketplace,
			"error", err,
		)
		return err
	}
	if !enabled {
		return dErrors.New(dErrors.CodeFeatureDisabled, MarketplaceDisabledMessage)
	}
	return nil
}

// Set stores an explicit value. Only system admins may toggle flags.
func (g *Guard) Set(ctx context.Context, actorID id.UserID, territoryID id.TerritoryID, flag Flag, enabled bool) error {
	if err := g.authz.RequireSystemPermission(ctx, actorID, models.PermissionSystemAdmin); err != nil {
		return err
	}
	if err := g.store.Set(ctx, territoryID, flag, enabled); err != nil {
		return dErrors.Wrap(err, dErrors.CodeUnavailable, "failed to store feature flag")
	}
	g.logger.InfoContext(ctx, "feature_flag_set",
		"territory_id", territoryID,
		"flag", flag,
		"enabled", enabled,
		"actor_id", actorID,
	)
	return nil
}
