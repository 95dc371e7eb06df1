// Package service moves paid checkout money through seller and platform
// ledgers and runs territory payout batches against the payout gateway.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	marketModels "agora/internal/marketplace/models"
	membershipModels "agora/internal/membership/models"
	"agora/internal/payout/metrics"
	"agora/internal/payout/models"
	id "agora/pkg/domain"
	dErrors "agora/pkg/domain-errors"
	"agora/pkg/platform/sentinel"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Authorizer

type TransactionRepository interface {
	Create(ctx context.Context, t *models.SellerTransaction) error
	FindByCheckout(ctx context.Context, checkoutID id.CheckoutID) (*models.SellerTransaction, error)
	ListByPayout(ctx context.Context, payoutID string) ([]*models.SellerTransaction, error)
	ListDuePending(ctx context.Context, territoryID id.TerritoryID, now time.Time) ([]*models.SellerTransaction, error)
	ListReady(ctx context.Context, territoryID id.TerritoryID) ([]*models.SellerTransaction, error)
	ListBySeller(ctx context.Context, territoryID id.TerritoryID, sellerID id.UserID) ([]*models.SellerTransaction, error)
	MarkReady(ctx context.Context, ids []id.SellerTransactionID, now time.Time) error
	MarkPaid(ctx context.Context, ids []id.SellerTransactionID, payoutID string, paidAt time.Time) error
	MarkVoided(ctx context.Context, txID id.SellerTransactionID, now time.Time) error
}

type BalanceRepository interface {
	FindSeller(ctx context.Context, territoryID id.TerritoryID, sellerID id.UserID, currency string) (*models.SellerBalance, error)
	ListSeller(ctx context.Context, territoryID id.TerritoryID, sellerID id.UserID) ([]*models.SellerBalance, error)
	SaveSeller(ctx context.Context, b *models.SellerBalance) error
	FindPlatform(ctx context.Context, territoryID id.TerritoryID, currency string) (*models.PlatformBalance, error)
	SavePlatform(ctx context.Context, b *models.PlatformBalance) error
}

type LedgerRepository interface {
	AddRevenue(ctx context.Context, e *models.RevenueEntry) error
	ReverseRevenue(ctx context.Context, checkoutID id.CheckoutID, at time.Time) error
	AddExpense(ctx context.Context, e *models.ExpenseEntry) error
	ListExpensesByPayout(ctx context.Context, payoutID string) ([]*models.ExpenseEntry, error)
	ReverseExpense(ctx context.Context, entryID id.LedgerEntryID, at time.Time) error
}

type PayoutConfigRepository interface {
	Create(ctx context.Context, c *models.TerritoryPayoutConfig) error
	Update(ctx context.Context, c *models.TerritoryPayoutConfig) error
	FindActive(ctx context.Context, territoryID id.TerritoryID) (*models.TerritoryPayoutConfig, error)
	ListActive(ctx context.Context, territoryID *id.TerritoryID) ([]*models.TerritoryPayoutConfig, error)
	ListHistory(ctx context.Context, territoryID id.TerritoryID) ([]*models.TerritoryPayoutConfig, error)
}

// CheckoutReader and StoreReader are the marketplace lookups a paid checkout
// needs.
type CheckoutReader interface {
	FindByID(ctx context.Context, checkoutID id.CheckoutID) (*marketModels.Checkout, error)
}

type StoreReader interface {
	FindByID(ctx context.Context, storeID id.StoreID) (*marketModels.Store, error)
}

// Authorizer is the slice of the access evaluator payouts need.
type Authorizer interface {
	RequireCapability(ctx context.Context, userID id.UserID, territoryID id.TerritoryID, capType membershipModels.CapabilityType) error
}

type options struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
}

type Option func(*options)

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

func newOptions(opts []Option) options {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// translate maps store sentinels onto domain codes. Domain errors pass through.
func translate(err error, notFoundMsg, internalMsg string) error {
	var de *dErrors.Error
	switch {
	case errors.As(err, &de):
		return err
	case notFoundMsg != "" && errors.Is(err, sentinel.ErrNotFound):
		return dErrors.New(dErrors.CodeNotFound, notFoundMsg)
	case errors.Is(err, sentinel.ErrConflict):
		return dErrors.Wrap(err, dErrors.CodeConflict, "conflicting payout state")
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, internalMsg)
	}
}
