package service

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"agora/internal/featureflags"
	"agora/internal/marketplace/models"
	"agora/internal/marketplace/service/mocks"
	"agora/internal/marketplace/store"
	id "agora/pkg/domain"
	dErrors "agora/pkg/domain-errors"
	"agora/pkg/platform/tx"
	"agora/pkg/requestcontext"
)

// =============================================================================
// Marketplace Service Test Suite
// =============================================================================
// Real in-memory repositories and the real feature-flag guard; only the
// membership-facing ports and the payout hooks are mocked.

type MarketplaceSuite struct {
	suite.Suite
	ctx   context.Context
	clock time.Time
	logs  *bytes.Buffer

	stores    *store.InMemoryStores
	items     *store.InMemoryItems
	carts     *store.InMemoryCarts
	checkouts *store.InMemoryCheckouts
	inquiries *store.InMemoryInquiries
	fees      *store.InMemoryFeeConfigs
	flags     *featureflags.InMemoryStore

	rules    *mocks.MockAccessRules
	authz    *mocks.MockAuthorizer
	paid     *mocks.MockPaidCheckoutProcessor
	refunded *mocks.MockRefundedCheckoutProcessor

	storeService    *StoreService
	cartService     *CartService
	checkoutService *CheckoutService
	feeService      *PlatformFeeService

	territoryID id.TerritoryID
	buyer       id.UserID
	seller      id.UserID
	finance     id.UserID
}

func TestMarketplaceSuite(t *testing.T) {
	suite.Run(t, new(MarketplaceSuite))
}

func (s *MarketplaceSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.logs = &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(s.logs, nil))
	s.clock = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	s.ctx = requestcontext.WithTime(context.Background(), s.clock)

	s.stores = store.NewInMemoryStores()
	s.items = store.NewInMemoryItems()
	s.carts = store.NewInMemoryCarts()
	s.checkouts = store.NewInMemoryCheckouts()
	s.inquiries = store.NewInMemoryInquiries()
	s.fees = store.NewInMemoryFeeConfigs()
	s.flags = featureflags.NewInMemoryStore()

	s.rules = mocks.NewMockAccessRules(ctrl)
	s.authz = mocks.NewMockAuthorizer(ctrl)
	s.paid = mocks.NewMockPaidCheckoutProcessor(ctrl)
	s.refunded = mocks.NewMockRefundedCheckoutProcessor(ctrl)

	guard, err := featureflags.New(s.flags, s.authz, featureflags.WithLogger(logger))
	s.Require().NoError(err)

	runner := tx.NewInMemoryRunner()
	s.storeService, err = NewStoreService(s.stores, s.items, s.inquiries, guard, s.rules, WithLogger(logger))
	s.Require().NoError(err)
	s.cartService, err = NewCartService(s.carts, s.items, s.stores, s.checkouts, s.inquiries, s.fees, guard, runner, WithLogger(logger))
	s.Require().NoError(err)
	s.checkoutService, err = NewCheckoutService(s.checkouts, s.stores, s.authz, runner,
		WithLogger(logger),
		WithPaidCheckoutProcessor(s.paid),
		WithRefundedCheckoutProcessor(s.refunded),
	)
	s.Require().NoError(err)
	s.feeService, err = NewPlatformFeeService(s.fees, s.authz, runner, WithLogger(logger))
	s.Require().NoError(err)

	s.territoryID = id.NewTerritoryID()
	s.buyer = id.NewUserID()
	s.seller = id.NewUserID()
	s.finance = id.NewUserID()
	s.Require().NoError(s.flags.Set(s.ctx, s.territoryID, featureflags.FlagMarketplace, true))
}

func (s *MarketplaceSuite) requireCode(err error, code dErrors.Code) {
	s.Require().Error(err)
	s.Equal(code, dErrors.CodeOf(err), "unexpected error: %v", err)
}

// at advances the suite clock so cart lines keep insertion order.
func (s *MarketplaceSuite) at(offset time.Duration) context.Context {
	return requestcontext.WithTime(context.Background(), s.clock.Add(offset))
}

func (s *MarketplaceSuite) seedStore(owner id.UserID) *models.Store {
	st := &models.Store{
		ID:          id.NewStoreID(),
		TerritoryID: s.territoryID,
		OwnerUserID: owner,
		Name:        "Feira da Vila",
		CreatedAt:   s.clock,
	}
	s.Require().NoError(s.stores.Create(s.ctx, st))
	return st
}

func (s *MarketplaceSuite) seedItem(st *models.Store, itemType models.ItemType, pricing models.PricingType, price, currency string) *models.StoreItem {
	item := &models.StoreItem{
		ID:          id.NewStoreItemID(),
		StoreID:     st.ID,
		TerritoryID: st.TerritoryID,
		Title:       "item " + string(itemType),
		ItemType:    itemType,
		PricingType: pricing,
		Price:       decimal.RequireFromString(price),
		Currency:    currency,
		Status:      models.ItemActive,
		CreatedAt:   s.clock,
		UpdatedAt:   s.clock,
	}
	s.Require().NoError(s.items.Create(s.ctx, item))
	return item
}

func (s *MarketplaceSuite) seedFee(itemType models.ItemType, mode models.FeeMode, value, currency string) {
	s.Require().NoError(s.fees.Create(s.ctx, &models.PlatformFeeConfig{
		ID:          id.NewFeeConfigID(),
		TerritoryID: s.territoryID,
		ItemType:    itemType,
		Mode:        mode,
		Value:       decimal.RequireFromString(value),
		Currency:    currency,
		IsActive:    true,
		CreatedAt:   s.clock,
		CreatedBy:   s.finance,
	}))
}

// checkoutOne puts one fixed-price line in the buyer's cart and checks out.
func (s *MarketplaceSuite) checkoutOne() *models.Checkout {
	st := s.seedStore(s.seller)
	item := s.seedItem(st, models.ItemTypeProduct, models.PricingFixed, "40.00", "BRL")
	_, err := s.cartService.AddItem(s.ctx, s.buyer, s.territoryID, item.ID, 1, "")
	s.Require().NoError(err)
	res, err := s.cartService.Checkout(s.ctx, s.buyer, s.territoryID)
	s.Require().NoError(err)
	s.Require().Len(res.Checkouts, 1)
	return res.Checkouts[0].Checkout
}

func (s *MarketplaceSuite) allowFinance() {
	s.authz.EXPECT().RequireSystemPermission(gomock.Any(), s.finance, gomock.Any()).Return(nil).AnyTimes()
}

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}
