package service

import (
	"errors"

	"go.uber.org/mock/gomock"

	"agora/internal/marketplace/models"
	membershipModels "agora/internal/membership/models"
	id "agora/pkg/domain"
	dErrors "agora/pkg/domain-errors"
	"agora/pkg/platform/pagination"
)

func (s *MarketplaceSuite) TestConfirmPayment() {
	c := s.checkoutOne()
	s.authz.EXPECT().
		RequireSystemPermission(gomock.Any(), s.finance, membershipModels.PermissionPlatformFinance).
		Return(nil).Times(2)
	s.paid.EXPECT().ProcessPaidCheckout(gomock.Any(), c.ID).Return(nil).Times(2)

	paid, err := s.checkoutService.ConfirmPayment(s.ctx, s.finance, c.ID)
	s.Require().NoError(err)
	s.Equal(models.CheckoutPaid, paid.Status)
	s.Require().NotNil(paid.PaidAt)
	s.Equal(s.clock, *paid.PaidAt)

	s.Run("confirming again re-runs the hook without a transition", func() {
		again, err := s.checkoutService.ConfirmPayment(s.ctx, s.finance, c.ID)
		s.Require().NoError(err)
		s.Equal(models.CheckoutPaid, again.Status)
	})
}

func (s *MarketplaceSuite) TestConfirmPaymentRequiresFinance() {
	c := s.checkoutOne()
	s.authz.EXPECT().RequireSystemPermission(gomock.Any(), s.buyer, membershipModels.PermissionPlatformFinance).
		Return(dErrors.New(dErrors.CodeForbidden, "permission required"))

	_, err := s.checkoutService.ConfirmPayment(s.ctx, s.buyer, c.ID)
	s.requireCode(err, dErrors.CodeForbidden)

	stored, err := s.checkouts.FindByID(s.ctx, c.ID)
	s.Require().NoError(err)
	s.Equal(models.CheckoutAwaitingPayment, stored.Status)
}

func (s *MarketplaceSuite) TestConfirmPaymentSurfacesHookFailure() {
	c := s.checkoutOne()
	s.allowFinance()
	s.paid.EXPECT().ProcessPaidCheckout(gomock.Any(), c.ID).
		Return(dErrors.Wrap(errors.New("ledger down"), dErrors.CodeUnavailable, "ledger unavailable"))

	_, err := s.checkoutService.ConfirmPayment(s.ctx, s.finance, c.ID)
	s.requireCode(err, dErrors.CodeUnavailable)
	s.True(dErrors.IsRetryable(err))

	stored, err := s.checkouts.FindByID(s.ctx, c.ID)
	s.Require().NoError(err)
	s.Equal(models.CheckoutPaid, stored.Status, "payment stays recorded so the retry only re-runs the hook")
}

func (s *MarketplaceSuite) TestCancel() {
	s.Run("buyer cancels an unpaid checkout", func() {
		c := s.checkoutOne()
		cancelled, err := s.checkoutService.Cancel(s.ctx, s.buyer, c.ID)
		s.Require().NoError(err)
		s.Equal(models.CheckoutCancelled, cancelled.Status)
	})

	s.Run("someone else cannot see it", func() {
		c := s.checkoutOne()
		_, err := s.checkoutService.Cancel(s.ctx, id.NewUserID(), c.ID)
		s.requireCode(err, dErrors.CodeNotFound)
	})

	s.Run("paid checkouts cannot be cancelled", func() {
		c := s.checkoutOne()
		s.allowFinance()
		s.paid.EXPECT().ProcessPaidCheckout(gomock.Any(), c.ID).Return(nil)
		_, err := s.checkoutService.ConfirmPayment(s.ctx, s.finance, c.ID)
		s.Require().NoError(err)

		_, err = s.checkoutService.Cancel(s.ctx, s.buyer, c.ID)
		s.requireCode(err, dErrors.CodeConflict)
	})
}

func (s *MarketplaceSuite) TestRefund() {
	s.allowFinance()

	s.Run("unpaid checkout cannot be refunded", func() {
		c := s.checkoutOne()
		_, err := s.checkoutService.Refund(s.ctx, s.finance, c.ID)
		s.requireCode(err, dErrors.CodeConflict)
	})

	s.Run("paid checkout is refunded once", func() {
		c := s.checkoutOne()
		s.paid.EXPECT().ProcessPaidCheckout(gomock.Any(), c.ID).Return(nil)
		_, err := s.checkoutService.ConfirmPayment(s.ctx, s.finance, c.ID)
		s.Require().NoError(err)

		s.refunded.EXPECT().ProcessRefundedCheckout(gomock.Any(), c.ID).Return(nil)
		refunded, err := s.checkoutService.Refund(s.ctx, s.finance, c.ID)
		s.Require().NoError(err)
		s.Equal(models.CheckoutRefunded, refunded.Status)

		_, err = s.checkoutService.Refund(s.ctx, s.finance, c.ID)
		s.requireCode(err, dErrors.CodeConflict)
	})

	s.Run("earnings already paid out keep the checkout paid", func() {
		c := s.checkoutOne()
		s.paid.EXPECT().ProcessPaidCheckout(gomock.Any(), c.ID).Return(nil)
		_, err := s.checkoutService.ConfirmPayment(s.ctx, s.finance, c.ID)
		s.Require().NoError(err)

		s.refunded.EXPECT().ProcessRefundedCheckout(gomock.Any(), c.ID).
			Return(dErrors.New(dErrors.CodeConflict, "seller transaction was already paid out"))
		_, err = s.checkoutService.Refund(s.ctx, s.finance, c.ID)
		s.requireCode(err, dErrors.CodeConflict)

		stored, err := s.checkouts.FindByID(s.ctx, c.ID)
		s.Require().NoError(err)
		s.Equal(models.CheckoutPaid, stored.Status)
		s.Contains(s.logs.String(), "refunded checkout processing failed")
	})
}

func (s *MarketplaceSuite) TestGetVisibility() {
	c := s.checkoutOne()

	bundle, err := s.checkoutService.Get(s.ctx, s.buyer, c.ID)
	s.Require().NoError(err)
	s.Len(bundle.Items, 1)

	_, err = s.checkoutService.Get(s.ctx, s.seller, c.ID)
	s.Require().NoError(err)

	_, err = s.checkoutService.Get(s.ctx, id.NewUserID(), c.ID)
	s.requireCode(err, dErrors.CodeNotFound)

	_, err = s.checkoutService.Get(s.ctx, s.buyer, id.NewCheckoutID())
	s.requireCode(err, dErrors.CodeNotFound)
}

func (s *MarketplaceSuite) TestListByBuyerPages() {
	for i := 0; i < 3; i++ {
		s.checkoutOne()
	}
	res, err := s.checkoutService.ListByBuyer(s.ctx, s.buyer, pagination.Page{Number: 2, Size: 2})
	s.Require().NoError(err)
	s.Equal(3, res.TotalCount)
	s.Len(res.Items, 1)
}
