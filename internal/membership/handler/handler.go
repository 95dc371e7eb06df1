package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"agora/internal/membership/models"
	id "agora/pkg/domain"
	dErrors "agora/pkg/domain-errors"
	"agora/pkg/platform/httputil"
	"agora/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

// Service defines the membership operations exposed over HTTP.
type Service interface {
	EnterTerritory(ctx context.Context, userID id.UserID, territoryID id.TerritoryID) (*models.Membership, error)
	ClaimResidency(ctx context.Context, userID id.UserID, territoryID id.TerritoryID) (*models.Membership, error)
	GetMembership(ctx context.Context, userID id.UserID, territoryID id.TerritoryID) (*models.Membership, error)
	ListMemberships(ctx context.Context, userID id.UserID) ([]*models.Membership, error)
	VerifyResidency(ctx context.Context, actorID id.UserID, membershipID id.MembershipID, kind models.Verification) (*models.Membership, error)
	ListCapabilities(ctx context.Context, membershipID id.MembershipID) ([]*models.Capability, error)
	GrantCapability(ctx context.Context, actorID id.UserID, membershipID id.MembershipID, capType models.CapabilityType, note string) (*models.Capability, error)
	RevokeCapability(ctx context.Context, actorID id.UserID, capabilityID id.CapabilityID) (*models.Capability, error)
	GrantSystemPermission(ctx context.Context, actorID, userID id.UserID, permType models.PermissionType) (*models.SystemPermission, error)
	RevokeSystemPermission(ctx context.Context, actorID id.UserID, permissionID id.PermissionID) (*models.SystemPermission, error)
}

// Handler serves membership, capability and permission endpoints. Routes
// expect RequireAuth to have run.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register registers the membership routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/me/memberships", h.handleListMemberships)
	r.Post("/territories/{territoryID}/enter", h.handleEnterTerritory)
	r.Post("/territories/{territoryID}/residency", h.handleClaimResidency)
	r.Get("/territories/{territoryID}/membership", h.handleGetMembership)
	r.Post("/memberships/{membershipID}/verify", h.handleVerifyResidency)
	r.Get("/memberships/{membershipID}/capabilities", h.handleListCapabilities)
	r.Post("/memberships/{membershipID}/capabilities", h.handleGrantCapability)
	r.Delete("/capabilities/{capabilityID}", h.handleRevokeCapability)
	r.Post("/users/{userID}/permissions", h.handleGrantPermission)
	r.Delete("/permissions/{permissionID}", h.handleRevokePermission)
}

func (h *Handler) handleListMemberships(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	ms, err := h.service.ListMemberships(ctx, userID)
	if err != nil {
		h.fail(ctx, w, "failed to list memberships", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"memberships": ms})
}

func (h *Handler) handleEnterTerritory(w http.ResponseWriter, r *http.Request) {
	h.territoryAction(w, r, h.service.EnterTerritory, "failed to enter territory")
}

func (h *Handler) handleClaimResidency(w http.ResponseWriter, r *http.Request) {
	h.territoryAction(w, r, h.service.ClaimResidency, "failed to claim residency")
}

func (h *Handler) handleGetMembership(w http.ResponseWriter, r *http.Request) {
	h.territoryAction(w, r, h.service.GetMembership, "failed to load membership")
}

func (h *Handler) territoryAction(
	w http.ResponseWriter,
	r *http.Request,
	action func(context.Context, id.UserID, id.TerritoryID) (*models.Membership, error),
	failure string,
) {
	ctx := r.Context()
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	territoryID, err := id.ParseTerritoryID(chi.URLParam(r, "territoryID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	m, err := action(ctx, userID, territoryID)
	if err != nil {
		h.fail(ctx, w, failure, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, m)
}

func (h *Handler) handleVerifyResidency(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actorID, ok := h.userID(w, r)
	if !ok {
		return
	}
	membershipID, err := id.ParseMembershipID(chi.URLParam(r, "membershipID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[VerifyResidencyRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	m, err := h.service.VerifyResidency(ctx, actorID, membershipID, req.kind)
	if err != nil {
		h.fail(ctx, w, "failed to verify residency", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, m)
}

func (h *Handler) handleListCapabilities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	membershipID, err := id.ParseMembershipID(chi.URLParam(r, "membershipID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	caps, err := h.service.ListCapabilities(ctx, membershipID)
	if err != nil {
		h.fail(ctx, w, "failed to list capabilities", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"capabilities": caps})
}

func (h *Handler) handleGrantCapability(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actorID, ok := h.userID(w, r)
	if !ok {
		return
	}
	membershipID, err := id.ParseMembershipID(chi.URLParam(r, "membershipID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[GrantCapabilityRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	c, err := h.service.GrantCapability(ctx, actorID, membershipID, req.capType, req.Note)
	if err != nil {
		h.fail(ctx, w, "failed to grant capability", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, c)
}

func (h *Handler) handleRevokeCapability(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actorID, ok := h.userID(w, r)
	if !ok {
		return
	}
	capabilityID, err := id.ParseCapabilityID(chi.URLParam(r, "capabilityID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	c, err := h.service.RevokeCapability(ctx, actorID, capabilityID)
	if err != nil {
		h.fail(ctx, w, "failed to revoke capability", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, c)
}

func (h *Handler) handleGrantPermission(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actorID, ok := h.userID(w, r)
	if !ok {
		return
	}
	userID, err := id.ParseUserID(chi.URLParam(r, "userID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[GrantPermissionRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	p, err := h.service.GrantSystemPermission(ctx, actorID, userID, req.permType)
	if err != nil {
		h.fail(ctx, w, "failed to grant permission", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, p)
}

func (h *Handler) handleRevokePermission(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actorID, ok := h.userID(w, r)
	if !ok {
		return
	}
	permissionID, err := id.ParsePermissionID(chi.URLParam(r, "permissionID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	p, err := h.service.RevokeSystemPermission(ctx, actorID, permissionID)
	if err != nil {
		h.fail(ctx, w, "failed to revoke permission", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) userID(w http.ResponseWriter, r *http.Request) (id.UserID, bool) {
	userID := requestcontext.UserID(r.Context())
	if userID.IsNil() {
		// RequireAuth sets the user; reaching here means the route was mounted without it.
		h.logger.ErrorContext(r.Context(), "userID missing from context despite auth middleware",
			"request_id", requestcontext.RequestID(r.Context()),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "authentication context error"))
		return id.UserID{}, false
	}
	return userID, true
}

func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	if dErrors.CodeOf(err) == dErrors.CodeInternal {
		h.logger.ErrorContext(ctx, msg,
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
	} else {
		h.logger.WarnContext(ctx, msg,
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
	}
	httputil.WriteError(w, err)
}
