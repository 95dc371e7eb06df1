// Package service implements the marketplace: stores and items, the cart,
// the checkout state machine and platform fee configuration.
package service

import (
	"context"
	"errors"
	"log/slog"

	"agora/internal/marketplace/metrics"
	"agora/internal/marketplace/models"
	membershipModels "agora/internal/membership/models"
	id "agora/pkg/domain"
	dErrors "agora/pkg/domain-errors"
	"agora/pkg/platform/sentinel"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks FeatureGuard,AccessRules,Authorizer,PaidCheckoutProcessor,RefundedCheckoutProcessor

type StoreRepository interface {
	Create(ctx context.Context, st *models.Store) error
	FindByID(ctx context.Context, storeID id.StoreID) (*models.Store, error)
	ListByTerritory(ctx context.Context, territoryID id.TerritoryID) ([]*models.Store, error)
}

type ItemRepository interface {
	Create(ctx context.Context, item *models.StoreItem) error
	Update(ctx context.Context, item *models.StoreItem) error
	FindByID(ctx context.Context, itemID id.StoreItemID) (*models.StoreItem, error)
	ListByStore(ctx context.Context, storeID id.StoreID) ([]*models.StoreItem, error)
}

type CartRepository interface {
	FindCart(ctx context.Context, userID id.UserID, territoryID id.TerritoryID) (*models.Cart, error)
	CreateCart(ctx context.Context, c *models.Cart) error
	UpdateCart(ctx context.Context, c *models.Cart) error
	FindItem(ctx context.Context, cartItemID id.CartItemID) (*models.CartItem, error)
	FindItemByStoreItem(ctx context.Context, cartID id.CartID, storeItemID id.StoreItemID) (*models.CartItem, error)
	AddItem(ctx context.Context, line *models.CartItem) error
	UpdateItem(ctx context.Context, line *models.CartItem) error
	RemoveItems(ctx context.Context, cartItemIDs ...id.CartItemID) error
	ListItems(ctx context.Context, cartID id.CartID) ([]*models.CartItem, error)
}

type CheckoutRepository interface {
	Create(ctx context.Context, c *models.Checkout, items []models.CheckoutItem) error
	Update(ctx context.Context, c *models.Checkout) error
	FindByID(ctx context.Context, checkoutID id.CheckoutID) (*models.Checkout, error)
	ListItems(ctx context.Context, checkoutID id.CheckoutID) ([]models.CheckoutItem, error)
	ListByBuyer(ctx context.Context, buyerID id.UserID) ([]*models.Checkout, error)
}

type InquiryRepository interface {
	Create(ctx context.Context, inq *models.Inquiry) error
	ListByStore(ctx context.Context, storeID id.StoreID) ([]*models.Inquiry, error)
}

type FeeConfigRepository interface {
	Create(ctx context.Context, c *models.PlatformFeeConfig) error
	Update(ctx context.Context, c *models.PlatformFeeConfig) error
	FindActive(ctx context.Context, territoryID id.TerritoryID, itemType models.ItemType) (*models.PlatformFeeConfig, error)
	ListActive(ctx context.Context, territoryID id.TerritoryID) ([]*models.PlatformFeeConfig, error)
}

// FeatureGuard gates every cart, checkout and store operation.
type FeatureGuard interface {
	RequireMarketplace(ctx context.Context, territoryID id.TerritoryID) error
}

// AccessRules are the membership predicates behind store and item creation.
type AccessRules interface {
	CanCreateStore(ctx context.Context, userID id.UserID, territoryID id.TerritoryID) (bool, error)
	CanCreateItem(ctx context.Context, userID id.UserID, territoryID id.TerritoryID) (bool, error)
}

// Authorizer is the slice of the access evaluator the marketplace needs.
type Authorizer interface {
	RequireSystemPermission(ctx context.Context, userID id.UserID, permType membershipModels.PermissionType) error
}

// PaidCheckoutProcessor receives checkouts once they are paid.
type PaidCheckoutProcessor interface {
	ProcessPaidCheckout(ctx context.Context, checkoutID id.CheckoutID) error
}

// RefundedCheckoutProcessor unwinds what a paid checkout booked. It runs
// before the refund is stored and its error rejects the refund.
type RefundedCheckoutProcessor interface {
	ProcessRefundedCheckout(ctx context.Context, checkoutID id.CheckoutID) error
}

type options struct {
	logger   *slog.Logger
	metrics  *metrics.Metrics
	paid     PaidCheckoutProcessor
	refunded RefundedCheckoutProcessor
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

// WithPaidCheckoutProcessor registers the hook invoked after a checkout is
// confirmed paid. Only CheckoutService uses it.
func WithPaidCheckoutProcessor(p PaidCheckoutProcessor) Option {
	return func(o *options) {
		o.paid = p
	}
}

// WithRefundedCheckoutProcessor registers the hook invoked when a paid
// checkout is refunded. Only CheckoutService uses it.
func WithRefundedCheckoutProcessor(p RefundedCheckoutProcessor) Option {
	return func(o *options) {
		o.refunded = p
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
		return dErrors.Wrap(err, dErrors.CodeConflict, "conflicting marketplace state")
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, internalMsg)
	}
}
