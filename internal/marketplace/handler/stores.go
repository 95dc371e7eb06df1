package handler

import (
	"net/http"

	id "agora/pkg/domain"
	"agora/pkg/platform/httputil"
	"agora/pkg/requestcontext"
)

func (h *Handler) handleCreateStore(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, territoryID, ok := h.userAndTerritory(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[CreateStoreRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	st, err := h.stores.CreateStore(ctx, userID, territoryID, req.Name)
	if err != nil {
		h.fail(ctx, w, "failed to create store", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, st)
}

func (h *Handler) handleListStores(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	territoryID, ok := pathID(w, r, "territoryID", id.ParseTerritoryID)
	if !ok {
		return
	}
	stores, err := h.stores.ListStores(ctx, territoryID)
	if err != nil {
		h.fail(ctx, w, "failed to list stores", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"stores": stores})
}

func (h *Handler) handleGetStore(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	storeID, ok := pathID(w, r, "storeID", id.ParseStoreID)
	if !ok {
		return
	}
	st, err := h.stores.GetStore(ctx, storeID)
	if err != nil {
		h.fail(ctx, w, "failed to load store", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, st)
}

func (h *Handler) handleCreateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	storeID, ok := pathID(w, r, "storeID", id.ParseStoreID)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[CreateItemRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	item, err := h.stores.CreateItem(ctx, userID, storeID, req.input)
	if err != nil {
		h.fail(ctx, w, "failed to create item", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, item)
}

func (h *Handler) handleListItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	storeID, ok := pathID(w, r, "storeID", id.ParseStoreID)
	if !ok {
		return
	}
	items, err := h.stores.ListItems(ctx, storeID)
	if err != nil {
		h.fail(ctx, w, "failed to list items", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (h *Handler) handleGetItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	itemID, ok := pathID(w, r, "itemID", id.ParseStoreItemID)
	if !ok {
		return
	}
	item, err := h.stores.GetItem(ctx, itemID)
	if err != nil {
		h.fail(ctx, w, "failed to load item", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, item)
}

func (h *Handler) handleSetItemStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	itemID, ok := pathID(w, r, "itemID", id.ParseStoreItemID)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[SetItemStatusRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	item, err := h.stores.SetItemStatus(ctx, userID, itemID, req.status)
	if err != nil {
		h.fail(ctx, w, "failed to update item status", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, item)
}

func (h *Handler) handleListInquiries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	storeID, ok := pathID(w, r, "storeID", id.ParseStoreID)
	if !ok {
		return
	}
	inquiries, err := h.stores.ListInquiries(ctx, userID, storeID)
	if err != nil {
		h.fail(ctx, w, "failed to list inquiries", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"inquiries": inquiries})
}
