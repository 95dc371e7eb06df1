// Package handler serves payout configuration, batch runs and seller ledger
// reads over HTTP.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"agora/internal/payout/gateway"
	"agora/internal/payout/models"
	id "agora/pkg/domain"
	dErrors "agora/pkg/domain-errors"
	"agora/pkg/platform/httputil"
	"agora/pkg/platform/pagination"
	"agora/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks PayoutService,ConfigService

type PayoutService interface {
	ProcessPendingPayouts(ctx context.Context, territoryID id.TerritoryID, actorID id.UserID) (int, error)
	UpdatePayoutStatus(ctx context.Context, actorID id.UserID, payoutID string) (gateway.PayoutStatus, error)
	GetSellerBalances(ctx context.Context, actorID id.UserID, territoryID id.TerritoryID, sellerID id.UserID) ([]*models.SellerBalance, error)
	ListSellerTransactions(ctx context.Context, actorID id.UserID, territoryID id.TerritoryID, sellerID id.UserID, page pagination.Page) (pagination.Result[*models.SellerTransaction], error)
}

type ConfigService interface {
	UpsertConfig(ctx context.Context, actorID id.UserID, in models.PayoutConfigInput) (*models.TerritoryPayoutConfig, error)
	GetActive(ctx context.Context, territoryID id.TerritoryID) (*models.TerritoryPayoutConfig, error)
	History(ctx context.Context, actorID id.UserID, territoryID id.TerritoryID) ([]*models.TerritoryPayoutConfig, error)
	ListActivePaged(ctx context.Context, page pagination.Page) (pagination.Result[*models.TerritoryPayoutConfig], error)
}

// Handler serves the payout endpoints. Routes expect RequireAuth to have run.
type Handler struct {
	payouts PayoutService
	configs ConfigService
	logger  *slog.Logger
}

func New(payouts PayoutService, configs ConfigService, logger *slog.Logger) *Handler {
	return &Handler{payouts: payouts, configs: configs, logger: logger}
}

// Register registers the payout routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/territories/{territoryID}/payout-config", h.handleGetConfig)
	r.Put("/territories/{territoryID}/payout-config", h.handleUpsertConfig)
	r.Get("/territories/{territoryID}/payout-config/history", h.handleConfigHistory)
	r.Post("/territories/{territoryID}/payouts/process", h.handleProcessPayouts)
	r.Get("/territories/{territoryID}/sellers/{sellerID}/balance", h.handleSellerBalance)
	r.Get("/territories/{territoryID}/sellers/{sellerID}/transactions", h.handleSellerTransactions)
	r.Get("/payout-configs", h.handleListConfigs)
	r.Post("/payouts/{payoutID}/refresh", h.handleRefreshPayout)
}

type ProcessPayoutsResponse struct {
	Processed int `json:"processed"`
}

type PayoutStatusResponse struct {
	PayoutID string               `json:"payout_id"`
	Status   gateway.PayoutStatus `json:"status"`
}

type SellerBalancesResponse struct {
	Balances []*models.SellerBalance `json:"balances"`
}

func (h *Handler) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	territoryID, ok := pathID(w, r, "territoryID", id.ParseTerritoryID)
	if !ok {
		return
	}
	cfg, err := h.configs.GetActive(ctx, territoryID)
	if err != nil {
		h.fail(ctx, w, "failed to load payout config", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, cfg)
}

func (h *Handler) handleUpsertConfig(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, territoryID, ok := h.userAndTerritory(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[UpsertConfigRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	cfg, err := h.configs.UpsertConfig(ctx, userID, req.input(territoryID))
	if err != nil {
		h.fail(ctx, w, "failed to upsert payout config", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, cfg)
}

func (h *Handler) handleConfigHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, territoryID, ok := h.userAndTerritory(w, r)
	if !ok {
		return
	}
	history, err := h.configs.History(ctx, userID, territoryID)
	if err != nil {
		h.fail(ctx, w, "failed to list payout config history", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, history)
}

func (h *Handler) handleListConfigs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page, err := httputil.PageFromQuery(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	res, err := h.configs.ListActivePaged(ctx, page)
	if err != nil {
		h.fail(ctx, w, "failed to list payout configs", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) handleProcessPayouts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, territoryID, ok := h.userAndTerritory(w, r)
	if !ok {
		return
	}
	n, err := h.payouts.ProcessPendingPayouts(ctx, territoryID, userID)
	if err != nil {
		h.logger.WarnContext(ctx, "payout batch incomplete", "territory_id", territoryID, "processed", n)
		h.fail(ctx, w, "failed to process payouts", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, ProcessPayoutsResponse{Processed: n})
}

func (h *Handler) handleRefreshPayout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	payoutID := chi.URLParam(r, "payoutID")
	status, err := h.payouts.UpdatePayoutStatus(ctx, userID, payoutID)
	if err != nil {
		h.fail(ctx, w, "failed to refresh payout status", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, PayoutStatusResponse{PayoutID: payoutID, Status: status})
}

func (h *Handler) handleSellerBalance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, territoryID, ok := h.userAndTerritory(w, r)
	if !ok {
		return
	}
	sellerID, ok := pathID(w, r, "sellerID", id.ParseUserID)
	if !ok {
		return
	}
	balances, err := h.payouts.GetSellerBalances(ctx, userID, territoryID, sellerID)
	if err != nil {
		h.fail(ctx, w, "failed to load seller balance", err)
		return
	}
	if currency := r.URL.Query().Get("currency"); currency != "" {
		filtered := balances[:0]
		for _, b := range balances {
			if b.Currency == currency {
				filtered = append(filtered, b)
			}
		}
		balances = filtered
	}
	if balances == nil {
		balances = []*models.SellerBalance{}
	}
	httputil.WriteJSON(w, http.StatusOK, SellerBalancesResponse{Balances: balances})
}

func (h *Handler) handleSellerTransactions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, territoryID, ok := h.userAndTerritory(w, r)
	if !ok {
		return
	}
	sellerID, ok := pathID(w, r, "sellerID", id.ParseUserID)
	if !ok {
		return
	}
	page, err := httputil.PageFromQuery(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	res, err := h.payouts.ListSellerTransactions(ctx, userID, territoryID, sellerID, page)
	if err != nil {
		h.fail(ctx, w, "failed to list seller transactions", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, res)
}

func pathID[T any](w http.ResponseWriter, r *http.Request, name string, parse func(string) (T, error)) (T, bool) {
	v, err := parse(chi.URLParam(r, name))
	if err != nil {
		httputil.WriteError(w, err)
		var zero T
		return zero, false
	}
	return v, true
}

func (h *Handler) userID(w http.ResponseWriter, r *http.Request) (id.UserID, bool) {
	userID := requestcontext.UserID(r.Context())
	if userID.IsNil() {
		h.logger.ErrorContext(r.Context(), "userID missing from context despite auth middleware",
			"request_id", requestcontext.RequestID(r.Context()),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "authentication context error"))
		return id.UserID{}, false
	}
	return userID, true
}

func (h *Handler) userAndTerritory(w http.ResponseWriter, r *http.Request) (id.UserID, id.TerritoryID, bool) {
	userID, ok := h.userID(w, r)
	if !ok {
		return id.UserID{}, id.TerritoryID{}, false
	}
	territoryID, ok := pathID(w, r, "territoryID", id.ParseTerritoryID)
	if !ok {
		return id.UserID{}, id.TerritoryID{}, false
	}
	return userID, territoryID, true
}

func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	if dErrors.CodeOf(err) == dErrors.CodeInternal {
		h.logger.ErrorContext(ctx, msg, "request_id", requestcontext.RequestID(ctx), "error", err)
	} else {
		h.logger.WarnContext(ctx, msg, "request_id", requestcontext.RequestID(ctx), "error", err)
	}
	httputil.WriteError(w, err)
}
