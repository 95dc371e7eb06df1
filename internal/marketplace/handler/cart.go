package handler

import (
	"net/http"

	id "agora/pkg/domain"
	"agora/pkg/platform/httputil"
	"agora/pkg/requestcontext"
)

func (h *Handler) handleGetCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, territoryID, ok := h.userAndTerritory(w, r)
	if !ok {
		return
	}
	view, err := h.carts.GetCart(ctx, userID, territoryID)
	if err != nil {
		h.fail(ctx, w, "failed to load cart", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, view)
}

func (h *Handler) handleClearCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, territoryID, ok := h.userAndTerritory(w, r)
	if !ok {
		return
	}
	if err := h.carts.Clear(ctx, userID, territoryID); err != nil {
		h.fail(ctx, w, "failed to clear cart", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleAddCartItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, territoryID, ok := h.userAndTerritory(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[AddCartItemRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	line, err := h.carts.AddItem(ctx, userID, territoryID, req.itemID, req.Quantity, req.Notes)
	if err != nil {
		h.fail(ctx, w, "failed to add cart item", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, line)
}

func (h *Handler) handleUpdateCartItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, territoryID, ok := h.userAndTerritory(w, r)
	if !ok {
		return
	}
	cartItemID, ok := pathID(w, r, "cartItemID", id.ParseCartItemID)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[UpdateCartItemRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	line, err := h.carts.UpdateItem(ctx, userID, territoryID, cartItemID, req.Quantity, req.Notes)
	if err != nil {
		h.fail(ctx, w, "failed to update cart item", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, line)
}

func (h *Handler) handleRemoveCartItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, territoryID, ok := h.userAndTerritory(w, r)
	if !ok {
		return
	}
	cartItemID, ok := pathID(w, r, "cartItemID", id.ParseCartItemID)
	if !ok {
		return
	}
	if err := h.carts.RemoveItem(ctx, userID, territoryID, cartItemID); err != nil {
		h.fail(ctx, w, "failed to remove cart item", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleCheckout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, territoryID, ok := h.userAndTerritory(w, r)
	if !ok {
		return
	}
	result, err := h.carts.Checkout(ctx, userID, territoryID)
	if err != nil {
		h.fail(ctx, w, "checkout failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}
