package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"agora/internal/marketplace/models"
	id "agora/pkg/domain"
	"agora/pkg/platform/httputil"
	"agora/pkg/requestcontext"
)

func (h *Handler) handleListFees(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	territoryID, ok := pathID(w, r, "territoryID", id.ParseTerritoryID)
	if !ok {
		return
	}
	page, ok := h.page(w, r)
	if !ok {
		return
	}
	res, err := h.fees.ListActivePaged(ctx, territoryID, page)
	if err != nil {
		h.fail(ctx, w, "failed to list fee configs", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) handleGetFee(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	territoryID, ok := pathID(w, r, "territoryID", id.ParseTerritoryID)
	if !ok {
		return
	}
	itemType, ok := pathID(w, r, "itemType", models.ParseItemType)
	if !ok {
		return
	}
	cfg, err := h.fees.GetActive(ctx, territoryID, itemType)
	if err != nil {
		h.fail(ctx, w, "failed to load fee config", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, cfg)
}

func (h *Handler) handleUpsertFee(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, territoryID, ok := h.userAndTerritory(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[UpsertFeeRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	cfg, err := h.fees.UpsertFeeConfig(ctx, userID, models.FeeConfigInput{
		TerritoryID: territoryID,
		ItemType:    models.ItemType(chi.URLParam(r, "itemType")),
		Mode:        req.mode,
		Value:       req.Value,
		Currency:    req.Currency,
		IsActive:    req.active(),
	})
	if err != nil {
		h.fail(ctx, w, "failed to upsert fee config", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, cfg)
}
