package service

import (
	"context"
	"errors"

	"agora/internal/marketplace/models"
	membershipModels "agora/internal/membership/models"
	id "agora/pkg/domain"
	dErrors "agora/pkg/domain-errors"
	"agora/pkg/platform/pagination"
	"agora/pkg/platform/tx"
	"agora/pkg/requestcontext"
)

// CheckoutService drives checkouts through their states:
// AwaitingPayment -> Paid -> Refunded, or AwaitingPayment -> Cancelled.
type CheckoutService struct {
	checkouts CheckoutRepository
	stores    StoreRepository
	authz     Authorizer
	tx        tx.Runner
	options
}

func NewCheckoutService(checkouts CheckoutRepository, stores StoreRepository, authz Authorizer, runner tx.Runner, opts ...Option) (*CheckoutService, error) {
	if checkouts == nil || stores == nil {
		return nil, errors.New("checkout and store repositories are required")
	}
	if authz == nil {
		return nil, errors.New("authorizer is required")
	}
	if runner == nil {
		return nil, errors.New("transaction runner is required")
	}
	return &CheckoutService{
		checkouts: checkouts,
		stores:    stores,
		authz:     authz,
		tx:        runner,
		options:   newOptions(opts),
	}, nil
}

// Get returns a checkout to its buyer or to the seller. Anyone else gets
// CodeNotFound.
func (s *CheckoutService) Get(ctx context.Context, actorID id.UserID, checkoutID id.CheckoutID) (*models.CheckoutBundle, error) {
	c, err := s.checkouts.FindByID(ctx, checkoutID)
	if err != nil {
		return nil, translate(err, "checkout not found", "failed to load checkout")
	}
	if c.BuyerUserID != actorID {
		st, err := s.stores.FindByID(ctx, c.StoreID)
		if err != nil || st.OwnerUserID != actorID {
			return nil, dErrors.New(dErrors.CodeNotFound, "checkout not found")
		}
	}
	items, err := s.checkouts.ListItems(ctx, checkoutID)
	if err != nil {
		return nil, translate(err, "checkout not found", "failed to load checkout items")
	}
	return &models.CheckoutBundle{Checkout: c, Items: items}, nil
}

// ListByBuyer pages the buyer's checkouts, newest first.
func (s *CheckoutService) ListByBuyer(ctx context.Context, buyerID id.UserID, page pagination.Page) (pagination.Result[*models.Checkout], error) {
	all, err := s.checkouts.ListByBuyer(ctx, buyerID)
	if err != nil {
		return pagination.Result[*models.Checkout]{}, translate(err, "", "failed to list checkouts")
	}
	return pagination.Slice(all, page), nil
}

// ConfirmPayment marks a checkout paid and hands it to the paid-checkout
// processor. Confirming an already paid checkout re-runs the processor, which
// is idempotent, so provider webhook retries are safe.
func (s *CheckoutService) ConfirmPayment(ctx context.Context, actorID id.UserID, checkoutID id.CheckoutID) (*models.Checkout, error) {
	if err := s.authz.RequireSystemPermission(ctx, actorID, membershipModels.PermissionPlatformFinance); err != nil {
		return nil, err
	}
	var (
		result       *models.Checkout
		transitioned bool
	)
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		c, err := s.checkouts.FindByID(ctx, checkoutID)
		if err != nil {
			return translate(err, "checkout not found", "failed to load checkout")
		}
		if c.Status == models.CheckoutPaid {
			result = c
			return nil
		}
		if err := c.MarkPaid(requestcontext.Now(ctx)); err != nil {
			return err
		}
		if err := s.checkouts.Update(ctx, c); err != nil {
			return translate(err, "checkout not found", "failed to update checkout")
		}
		result, transitioned = c, true
		return nil
	})
	if err != nil {
		return nil, err
	}
	if transitioned {
		s.metrics.IncrementTransition(string(models.CheckoutPaid))
		s.logger.InfoContext(ctx, "checkout_paid",
			"checkout_id", checkoutID,
			"store_id", result.StoreID,
			"request_id", requestcontext.RequestID(ctx),
		)
	}
	if s.paid != nil {
		if err := s.paid.ProcessPaidCheckout(ctx, checkoutID); err != nil {
			s.logger.ErrorContext(ctx, "paid checkout processing failed",
				"checkout_id", checkoutID,
				"error", err,
			)
			return nil, err
		}
	}
	return result, nil
}

// Cancel abandons an unpaid checkout. Only the buyer may cancel.
func (s *CheckoutService) Cancel(ctx context.Context, actorID id.UserID, checkoutID id.CheckoutID) (*models.Checkout, error) {
	return s.transition(ctx, checkoutID, models.CheckoutCancelled, func(c *models.Checkout) error {
		if c.BuyerUserID != actorID {
			return dErrors.New(dErrors.CodeNotFound, "checkout not found")
		}
		return c.Cancel(requestcontext.Now(ctx))
	})
}

// Refund marks a paid checkout refunded and voids its seller earnings. A
// checkout whose earnings were already paid out cannot be refunded here.
// Requires PlatformFinance.
func (s *CheckoutService) Refund(ctx context.Context, actorID id.UserID, checkoutID id.CheckoutID) (*models.Checkout, error) {
	if err := s.authz.RequireSystemPermission(ctx, actorID, membershipModels.PermissionPlatformFinance); err != nil {
		return nil, err
	}
	return s.transition(ctx, checkoutID, models.CheckoutRefunded, func(c *models.Checkout) error {
		if err := c.Refund(requestcontext.Now(ctx)); err != nil {
			return err
		}
		if s.refunded == nil {
			return nil
		}
		if err := s.refunded.ProcessRefundedCheckout(ctx, checkoutID); err != nil {
			s.logger.WarnContext(ctx, "refunded checkout processing failed",
				"checkout_id", checkoutID,
				"error", err,
			)
			return err
		}
		return nil
	})
}

func (s *CheckoutService) transition(ctx context.Context, checkoutID id.CheckoutID, to models.CheckoutStatus, apply func(*models.Checkout) error) (*models.Checkout, error) {
	var result *models.Checkout
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		c, err := s.checkouts.FindByID(ctx, checkoutID)
		if err != nil {
			return translate(err, "checkout not found", "failed to load checkout")
		}
		if err := apply(c); err != nil {
			return err
		}
		if err := s.checkouts.Update(ctx, c); err != nil {
			return translate(err, "checkout not found", "failed to update checkout")
		}
		result = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.metrics.IncrementTransition(string(to))
	s.logger.InfoContext(ctx, "checkout_"+string(to),
		"checkout_id", checkoutID,
		"request_id", requestcontext.RequestID(ctx),
	)
	return result, nil
}
