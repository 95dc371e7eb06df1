package featureflags

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	id "agora/pkg/domain"
	dErrors "agora/pkg/domain-errors"
	"agora/pkg/platform/httputil"
	"agora/pkg/requestcontext"
)

type SetFlagRequest struct {
	Enabled *bool `json:"enabled"`
}

func (r *SetFlagRequest) Validate() error {
	if r.Enabled == nil {
		return dErrors.New(dErrors.CodeValidation, "enabled is required")
	}
	return nil
}

type Handler struct {
	guard  *Guard
	logger *slog.Logger
}

func NewHandler(guard *Guard, logger *slog.Logger) *Handler {
	return &Handler{guard: guard, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/territories/{territoryID}/features/{flag}", h.handleGet)
	r.Put("/territories/{territoryID}/features/{flag}", h.handleSet)
}

func (h *Handler) params(r *http.Request) (id.TerritoryID, Flag, error) {
	territoryID, err := id.ParseTerritoryID(chi.URLParam(r, "territoryID"))
	if err != nil {
		return id.TerritoryID{}, "", err
	}
	flag, err := ParseFlag(chi.URLParam(r, "flag"))
	if err != nil {
		return id.TerritoryID{}, "", err
	}
	return territoryID, flag, nil
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	territoryID, flag, err := h.params(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	enabled, err := h.guard.IsEnabled(ctx, territoryID, flag)
	if err != nil {
		h.fail(ctx, err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"flag": flag, "enabled": enabled})
}

func (h *Handler) handleSet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	territoryID, flag, err := h.params(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[SetFlagRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	if err := h.guard.Set(ctx, requestcontext.UserID(ctx), territoryID, flag, *req.Enabled); err != nil {
		h.fail(ctx, err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"flag": flag, "enabled": *req.Enabled})
}

func (h *Handler) fail(ctx context.Context, err error) {
	h.logger.WarnContext(ctx, "feature flag request failed",
		"request_id", requestcontext.RequestID(ctx),
		"error", err,
	)
}
