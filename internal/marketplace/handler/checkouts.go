package handler

import (
	"context"
	"net/http"

	"agora/internal/marketplace/models"
	id "agora/pkg/domain"
	"agora/pkg/platform/httputil"
)

func (h *Handler) handleListCheckouts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	page, ok := h.page(w, r)
	if !ok {
		return
	}
	res, err := h.checkouts.ListByBuyer(ctx, userID, page)
	if err != nil {
		h.fail(ctx, w, "failed to list checkouts", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) handleGetCheckout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	checkoutID, ok := pathID(w, r, "checkoutID", id.ParseCheckoutID)
	if !ok {
		return
	}
	bundle, err := h.checkouts.Get(ctx, userID, checkoutID)
	if err != nil {
		h.fail(ctx, w, "failed to load checkout", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, bundle)
}

func (h *Handler) handleConfirmPayment(w http.ResponseWriter, r *http.Request) {
	h.checkoutTransition(w, r, h.checkouts.ConfirmPayment, "failed to confirm payment")
}

func (h *Handler) handleCancelCheckout(w http.ResponseWriter, r *http.Request) {
	h.checkoutTransition(w, r, h.checkouts.Cancel, "failed to cancel checkout")
}

func (h *Handler) handleRefundCheckout(w http.ResponseWriter, r *http.Request) {
	h.checkoutTransition(w, r, h.checkouts.Refund, "failed to refund checkout")
}

func (h *Handler) checkoutTransition(
	w http.ResponseWriter,
	r *http.Request,
	action func(context.Context, id.UserID, id.CheckoutID) (*models.Checkout, error),
	failure string,
) {
	ctx := r.Context()
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	checkoutID, ok := pathID(w, r, "checkoutID", id.ParseCheckoutID)
	if !ok {
		return
	}
	c, err := action(ctx, userID, checkoutID)
	if err != nil {
		h.fail(ctx, w, failure, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, c)
}
