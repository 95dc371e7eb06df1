package service

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"agora/internal/featureflags"
	"agora/internal/marketplace/models"
	id "agora/pkg/domain"
	dErrors "agora/pkg/domain-errors"
)

func (s *MarketplaceSuite) TestAddItemMergesQuantity() {
	item := s.seedItem(s.seedStore(s.seller), models.ItemTypeProduct, models.PricingFixed, "10.00", "BRL")

	first, err := s.cartService.AddItem(s.ctx, s.buyer, s.territoryID, item.ID, 2, "")
	s.Require().NoError(err)
	second, err := s.cartService.AddItem(s.ctx, s.buyer, s.territoryID, item.ID, 3, "ring the bell")
	s.Require().NoError(err)

	s.Equal(first.ID, second.ID)
	view, err := s.cartService.GetCart(s.ctx, s.buyer, s.territoryID)
	s.Require().NoError(err)
	s.Require().Len(view.Items, 1)
	s.Equal(5, view.Items[0].Quantity)
	s.Equal("ring the bell", view.Items[0].Notes)
}

func (s *MarketplaceSuite) TestAddItemCapsMergedQuantity() {
	item := s.seedItem(s.seedStore(s.seller), models.ItemTypeProduct, models.PricingFixed, "10.00", "BRL")

	_, err := s.cartService.AddItem(s.ctx, s.buyer, s.territoryID, item.ID, math.MaxInt, "")
	s.requireCode(err, dErrors.CodeValidation)

	_, err = s.cartService.AddItem(s.ctx, s.buyer, s.territoryID, item.ID, models.MaxQuantity-1, "")
	s.Require().NoError(err)
	_, err = s.cartService.AddItem(s.ctx, s.buyer, s.territoryID, item.ID, 2, "")
	s.requireCode(err, dErrors.CodeValidation)

	view, err := s.cartService.GetCart(s.ctx, s.buyer, s.territoryID)
	s.Require().NoError(err)
	s.Require().Len(view.Items, 1)
	s.Equal(models.MaxQuantity-1, view.Items[0].Quantity, "a rejected merge leaves the line as it was")

	_, err = s.cartService.AddItem(s.ctx, s.buyer, s.territoryID, item.ID, 1, "")
	s.Require().NoError(err)

	result, err := s.cartService.Checkout(s.ctx, s.buyer, s.territoryID)
	s.Require().NoError(err)
	s.Require().Len(result.Checkouts, 1)
	s.True(decimal.NewFromInt(100000).Equal(result.Checkouts[0].Checkout.ItemsSubtotal))
}

func (s *MarketplaceSuite) TestAddItemRejects() {
	st := s.seedStore(s.seller)
	item := s.seedItem(st, models.ItemTypeProduct, models.PricingFixed, "10.00", "BRL")

	s.Run("zero quantity", func() {
		_, err := s.cartService.AddItem(s.ctx, s.buyer, s.territoryID, item.ID, 0, "")
		s.requireCode(err, dErrors.CodeValidation)
	})

	s.Run("missing territory", func() {
		_, err := s.cartService.AddItem(s.ctx, s.buyer, id.TerritoryID{}, item.ID, 1, "")
		s.requireCode(err, dErrors.CodeValidation)
	})

	s.Run("item of another territory", func() {
		other := id.NewTerritoryID()
		s.Require().NoError(s.flags.Set(s.ctx, other, featureflags.FlagMarketplace, true))
		_, err := s.cartService.AddItem(s.ctx, s.buyer, other, item.ID, 1, "")
		s.requireCode(err, dErrors.CodeNotFound)
	})

	s.Run("archived item", func() {
		archived := s.seedItem(st, models.ItemTypeProduct, models.PricingFixed, "10.00", "BRL")
		archived.Status = models.ItemArchived
		s.Require().NoError(s.items.Update(s.ctx, archived))
		_, err := s.cartService.AddItem(s.ctx, s.buyer, s.territoryID, archived.ID, 1, "")
		s.requireCode(err, dErrors.CodeConflict)
	})
}

func (s *MarketplaceSuite) TestMarketplaceDisabled() {
	dark := id.NewTerritoryID()

	_, err := s.cartService.AddItem(s.ctx, s.buyer, dark, id.NewStoreItemID(), 1, "")
	s.requireCode(err, dErrors.CodeFeatureDisabled)
	s.Equal(featureflags.MarketplaceDisabledMessage, dErrors.Message(err))

	_, err = s.cartService.Checkout(s.ctx, s.buyer, dark)
	s.requireCode(err, dErrors.CodeFeatureDisabled)

	s.Require().NoError(s.flags.Set(s.ctx, s.territoryID, featureflags.FlagMarketplace, false))
	_, err = s.cartService.GetCart(s.ctx, s.buyer, s.territoryID)
	s.requireCode(err, dErrors.CodeFeatureDisabled)
}

func (s *MarketplaceSuite) TestUpdateItemQuantityBoundary() {
	item := s.seedItem(s.seedStore(s.seller), models.ItemTypeProduct, models.PricingFixed, "10.00", "BRL")
	line, err := s.cartService.AddItem(s.ctx, s.buyer, s.territoryID, item.ID, 1, "keep me")
	s.Require().NoError(err)

	for _, qty := range []int{0, -1, -100} {
		_, err := s.cartService.UpdateItem(s.ctx, s.buyer, s.territoryID, line.ID, qty, nil)
		s.requireCode(err, dErrors.CodeValidation)
	}
	for _, qty := range []int{1, 7, 1000} {
		updated, err := s.cartService.UpdateItem(s.ctx, s.buyer, s.territoryID, line.ID, qty, nil)
		s.Require().NoError(err)
		s.Equal(qty, updated.Quantity)
		s.Equal("keep me", updated.Notes)
	}

	empty := ""
	updated, err := s.cartService.UpdateItem(s.ctx, s.buyer, s.territoryID, line.ID, 2, &empty)
	s.Require().NoError(err)
	s.Empty(updated.Notes)
}

func (s *MarketplaceSuite) TestUpdateItemOfAnotherCartIsHidden() {
	item := s.seedItem(s.seedStore(s.seller), models.ItemTypeProduct, models.PricingFixed, "10.00", "BRL")
	line, err := s.cartService.AddItem(s.ctx, s.buyer, s.territoryID, item.ID, 1, "")
	s.Require().NoError(err)

	stranger := id.NewUserID()
	_, err = s.cartService.AddItem(s.ctx, stranger, s.territoryID, item.ID, 1, "")
	s.Require().NoError(err)

	_, err = s.cartService.UpdateItem(s.ctx, stranger, s.territoryID, line.ID, 4, nil)
	s.requireCode(err, dErrors.CodeNotFound)
	s.requireCode(s.cartService.RemoveItem(s.ctx, stranger, s.territoryID, line.ID), dErrors.CodeNotFound)
}

func (s *MarketplaceSuite) TestRemoveAndClear() {
	st := s.seedStore(s.seller)
	a := s.seedItem(st, models.ItemTypeProduct, models.PricingFixed, "10.00", "BRL")
	b := s.seedItem(st, models.ItemTypeService, models.PricingFixed, "20.00", "BRL")
	lineA, err := s.cartService.AddItem(s.at(0), s.buyer, s.territoryID, a.ID, 1, "")
	s.Require().NoError(err)
	_, err = s.cartService.AddItem(s.at(time.Second), s.buyer, s.territoryID, b.ID, 1, "")
	s.Require().NoError(err)

	s.Require().NoError(s.cartService.RemoveItem(s.ctx, s.buyer, s.territoryID, lineA.ID))
	view, err := s.cartService.GetCart(s.ctx, s.buyer, s.territoryID)
	s.Require().NoError(err)
	s.Len(view.Items, 1)

	s.Require().NoError(s.cartService.Clear(s.ctx, s.buyer, s.territoryID))
	view, err = s.cartService.GetCart(s.ctx, s.buyer, s.territoryID)
	s.Require().NoError(err)
	s.Empty(view.Items)
}

func (s *MarketplaceSuite) TestCheckoutPercentageFeeArithmetic() {
	cases := []struct {
		name     string
		price    string
		quantity int
		subtotal string
		fee      string
		total    string
	}{
		{"five percent of one hundred", "50.00", 2, "100.00", "5.00", "105.00"},
		{"fee below half a cent rounds to zero", "0.01", 1, "0.01", "0.00", "0.01"},
		{"half a cent rounds away from zero", "0.10", 1, "0.10", "0.01", "0.11"},
		{"large subtotal", "123456.78", 3, "370370.34", "18518.52", "388888.86"},
	}
	s.seedFee(models.ItemTypeProduct, models.FeeModePercentage, "0.05", "BRL")

	for _, tc := range cases {
		s.Run(tc.name, func() {
			buyer := id.NewUserID()
			item := s.seedItem(s.seedStore(s.seller), models.ItemTypeProduct, models.PricingFixed, tc.price, "BRL")
			_, err := s.cartService.AddItem(s.ctx, buyer, s.territoryID, item.ID, tc.quantity, "")
			s.Require().NoError(err)

			res, err := s.cartService.Checkout(s.ctx, buyer, s.territoryID)
			s.Require().NoError(err)
			s.Require().Len(res.Checkouts, 1)

			c := res.Checkouts[0].Checkout
			s.True(dec(tc.subtotal).Equal(c.ItemsSubtotal), "subtotal %s", c.ItemsSubtotal)
			s.True(dec(tc.fee).Equal(c.PlatformFee), "fee %s", c.PlatformFee)
			s.True(dec(tc.total).Equal(c.Total), "total %s", c.Total)
			s.True(c.Total.Equal(c.ItemsSubtotal.Add(c.PlatformFee)))
			s.Equal(models.CheckoutAwaitingPayment, c.Status)
		})
	}
}

func (s *MarketplaceSuite) TestCheckoutFansOutPerStore() {
	bakery := s.seedStore(s.seller)
	otherSeller := id.NewUserID()
	garage := s.seedStore(otherSeller)
	bread := s.seedItem(bakery, models.ItemTypeProduct, models.PricingFixed, "8.50", "BRL")
	cake := s.seedItem(bakery, models.ItemTypeProduct, models.PricingInquiry, "0", "")
	repair := s.seedItem(garage, models.ItemTypeService, models.PricingFixed, "120.00", "BRL")

	_, err := s.cartService.AddItem(s.at(0), s.buyer, s.territoryID, bread.ID, 2, "")
	s.Require().NoError(err)
	_, err = s.cartService.AddItem(s.at(time.Second), s.buyer, s.territoryID, cake.ID, 1, "for saturday")
	s.Require().NoError(err)
	_, err = s.cartService.AddItem(s.at(2*time.Second), s.buyer, s.territoryID, repair.ID, 1, "")
	s.Require().NoError(err)

	res, err := s.cartService.Checkout(s.ctx, s.buyer, s.territoryID)
	s.Require().NoError(err)

	s.Require().Len(res.Checkouts, 2)
	s.Equal(bakery.ID, res.Checkouts[0].Checkout.StoreID)
	s.True(dec("17.00").Equal(res.Checkouts[0].Checkout.ItemsSubtotal))
	s.Equal(garage.ID, res.Checkouts[1].Checkout.StoreID)
	s.True(decimal.Zero.Equal(res.Checkouts[1].Checkout.PlatformFee), "no fee config means no fee")

	s.Require().Len(res.Inquiries, 1)
	s.Equal(cake.ID, res.Inquiries[0].StoreItemID)
	s.Equal("for saturday", res.Inquiries[0].Notes)

	s.Require().Len(res.Summaries, 2)
	s.Equal(bakery.ID, res.Summaries[0].StoreID)
	s.Equal(1, res.Summaries[0].ItemCount)
	s.Equal(2, res.Summaries[0].TotalQuantity)
	s.Equal(1, res.Summaries[0].InquiryCount)

	view, err := s.cartService.GetCart(s.ctx, s.buyer, s.territoryID)
	s.Require().NoError(err)
	s.Empty(view.Items, "every converted line leaves the cart")

	stored, err := s.inquiries.ListByStore(s.ctx, bakery.ID)
	s.Require().NoError(err)
	s.Len(stored, 1)
}

func (s *MarketplaceSuite) TestCheckoutFixedFeeOncePerItemType() {
	s.seedFee(models.ItemTypeService, models.FeeModeFixed, "2.50", "BRL")
	st := s.seedStore(s.seller)
	a := s.seedItem(st, models.ItemTypeService, models.PricingFixed, "30.00", "BRL")
	b := s.seedItem(st, models.ItemTypeService, models.PricingFixed, "20.00", "BRL")
	_, err := s.cartService.AddItem(s.at(0), s.buyer, s.territoryID, a.ID, 1, "")
	s.Require().NoError(err)
	_, err = s.cartService.AddItem(s.at(time.Second), s.buyer, s.territoryID, b.ID, 1, "")
	s.Require().NoError(err)

	res, err := s.cartService.Checkout(s.ctx, s.buyer, s.territoryID)
	s.Require().NoError(err)
	s.Require().Len(res.Checkouts, 1)
	c := res.Checkouts[0].Checkout
	s.True(dec("50.00").Equal(c.ItemsSubtotal))
	s.True(dec("2.50").Equal(c.PlatformFee))
	s.True(dec("52.50").Equal(c.Total))
	s.Len(res.Checkouts[0].Items, 2)
}

func (s *MarketplaceSuite) TestCheckoutFeeCurrencyMismatchLeavesCartUntouched() {
	s.seedFee(models.ItemTypeProduct, models.FeeModeFixed, "1.00", "USD")
	item := s.seedItem(s.seedStore(s.seller), models.ItemTypeProduct, models.PricingFixed, "10.00", "BRL")
	_, err := s.cartService.AddItem(s.ctx, s.buyer, s.territoryID, item.ID, 1, "")
	s.Require().NoError(err)

	_, err = s.cartService.Checkout(s.ctx, s.buyer, s.territoryID)
	s.requireCode(err, dErrors.CodeValidation)

	view, err := s.cartService.GetCart(s.ctx, s.buyer, s.territoryID)
	s.Require().NoError(err)
	s.Len(view.Items, 1)
	created, err := s.checkouts.ListByBuyer(s.ctx, s.buyer)
	s.Require().NoError(err)
	s.Empty(created)
}

func (s *MarketplaceSuite) TestCheckoutSkipsArchivedItems() {
	st := s.seedStore(s.seller)
	kept := s.seedItem(st, models.ItemTypeProduct, models.PricingFixed, "10.00", "BRL")
	archived := s.seedItem(st, models.ItemTypeProduct, models.PricingFixed, "12.00", "BRL")
	_, err := s.cartService.AddItem(s.at(0), s.buyer, s.territoryID, kept.ID, 1, "")
	s.Require().NoError(err)
	_, err = s.cartService.AddItem(s.at(time.Second), s.buyer, s.territoryID, archived.ID, 1, "")
	s.Require().NoError(err)

	_, err = s.storeService.SetItemStatus(s.ctx, s.seller, archived.ID, models.ItemArchived)
	s.Require().NoError(err)

	res, err := s.cartService.Checkout(s.ctx, s.buyer, s.territoryID)
	s.Require().NoError(err)
	s.Require().Len(res.Checkouts, 1)
	s.True(dec("10.00").Equal(res.Checkouts[0].Checkout.ItemsSubtotal))

	view, err := s.cartService.GetCart(s.ctx, s.buyer, s.territoryID)
	s.Require().NoError(err)
	s.Require().Len(view.Items, 1)
	s.Equal(archived.ID, view.Items[0].StoreItemID)
	s.Contains(s.logs.String(), "cart line item is not available here")
	s.Contains(s.logs.String(), archived.ID.String())
}

func (s *MarketplaceSuite) TestCheckoutLeavesStorelessLinesAndLogs() {
	orphan := s.seedItem(&models.Store{ID: id.NewStoreID(), TerritoryID: s.territoryID}, models.ItemTypeProduct, models.PricingFixed, "7.00", "BRL")
	_, err := s.cartService.AddItem(s.ctx, s.buyer, s.territoryID, orphan.ID, 1, "")
	s.Require().NoError(err)

	res, err := s.cartService.Checkout(s.ctx, s.buyer, s.territoryID)
	s.Require().NoError(err)
	s.Empty(res.Checkouts)

	view, err := s.cartService.GetCart(s.ctx, s.buyer, s.territoryID)
	s.Require().NoError(err)
	s.Len(view.Items, 1)
	s.Contains(s.logs.String(), "cart line item has no store")
	s.Contains(s.logs.String(), orphan.StoreID.String())
}

func (s *MarketplaceSuite) TestCheckoutEmptyCartIsNoOp() {
	res, err := s.cartService.Checkout(s.ctx, s.buyer, s.territoryID)
	s.Require().NoError(err)
	s.NotNil(res.Checkouts)
	s.Empty(res.Checkouts)
	s.NotNil(res.Inquiries)
	s.Empty(res.Inquiries)

	s.checkoutOne()
	res, err = s.cartService.Checkout(s.ctx, s.buyer, s.territoryID)
	s.Require().NoError(err)
	s.Empty(res.Checkouts)
	s.Empty(res.Inquiries)
}
