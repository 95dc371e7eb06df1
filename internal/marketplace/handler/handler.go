package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"agora/internal/marketplace/models"
	id "agora/pkg/domain"
	dErrors "agora/pkg/domain-errors"
	"agora/pkg/platform/httputil"
	"agora/pkg/platform/pagination"
	"agora/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks StoreService,CartService,CheckoutService,FeeService

type StoreService interface {
	CreateStore(ctx context.Context, userID id.UserID, territoryID id.TerritoryID, name string) (*models.Store, error)
	GetStore(ctx context.Context, storeID id.StoreID) (*models.Store, error)
	ListStores(ctx context.Context, territoryID id.TerritoryID) ([]*models.Store, error)
	CreateItem(ctx context.Context, userID id.UserID, storeID id.StoreID, in models.NewItemInput) (*models.StoreItem, error)
	GetItem(ctx context.Context, itemID id.StoreItemID) (*models.StoreItem, error)
	ListItems(ctx context.Context, storeID id.StoreID) ([]*models.StoreItem, error)
	SetItemStatus(ctx context.Context, userID id.UserID, itemID id.StoreItemID, status models.ItemStatus) (*models.StoreItem, error)
	ListInquiries(ctx context.Context, userID id.UserID, storeID id.StoreID) ([]*models.Inquiry, error)
}

type CartService interface {
	AddItem(ctx context.Context, userID id.UserID, territoryID id.TerritoryID, itemID id.StoreItemID, quantity int, notes string) (*models.CartItem, error)
	UpdateItem(ctx context.Context, userID id.UserID, territoryID id.TerritoryID, cartItemID id.CartItemID, quantity int, notes *string) (*models.CartItem, error)
	RemoveItem(ctx context.Context, userID id.UserID, territoryID id.TerritoryID, cartItemID id.CartItemID) error
	GetCart(ctx context.Context, userID id.UserID, territoryID id.TerritoryID) (*models.CartView, error)
	Clear(ctx context.Context, userID id.UserID, territoryID id.TerritoryID) error
	Checkout(ctx context.Context, userID id.UserID, territoryID id.TerritoryID) (*models.CheckoutResult, error)
}

type CheckoutService interface {
	Get(ctx context.Context, actorID id.UserID, checkoutID id.CheckoutID) (*models.CheckoutBundle, error)
	ListByBuyer(ctx context.Context, buyerID id.UserID, page pagination.Page) (pagination.Result[*models.Checkout], error)
	ConfirmPayment(ctx context.Context, actorID id.UserID, checkoutID id.CheckoutID) (*models.Checkout, error)
	Cancel(ctx context.Context, actorID id.UserID, checkoutID id.CheckoutID) (*models.Checkout, error)
	Refund(ctx context.Context, actorID id.UserID, checkoutID id.CheckoutID) (*models.Checkout, error)
}

type FeeService interface {
	UpsertFeeConfig(ctx context.Context, actorID id.UserID, in models.FeeConfigInput) (*models.PlatformFeeConfig, error)
	GetActive(ctx context.Context, territoryID id.TerritoryID, itemType models.ItemType) (*models.PlatformFeeConfig, error)
	ListActivePaged(ctx context.Context, territoryID id.TerritoryID, page pagination.Page) (pagination.Result[*models.PlatformFeeConfig], error)
}

// Handler serves the marketplace endpoints. Routes expect RequireAuth to
// have run.
type Handler struct {
	stores    StoreService
	carts     CartService
	checkouts CheckoutService
	fees      FeeService
	logger    *slog.Logger
}

func New(stores StoreService, carts CartService, checkouts CheckoutService, fees FeeService, logger *slog.Logger) *Handler {
	return &Handler{
		stores:    stores,
		carts:     carts,
		checkouts: checkouts,
		fees:      fees,
		logger:    logger,
	}
}

// Register registers the marketplace routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/territories/{territoryID}/stores", h.handleCreateStore)
	r.Get("/territories/{territoryID}/stores", h.handleListStores)

	r.Get("/territories/{territoryID}/cart", h.handleGetCart)
	r.Delete("/territories/{territoryID}/cart", h.handleClearCart)
	r.Post("/territories/{territoryID}/cart/items", h.handleAddCartItem)
	r.Patch("/territories/{territoryID}/cart/items/{cartItemID}", h.handleUpdateCartItem)
	r.Delete("/territories/{territoryID}/cart/items/{cartItemID}", h.handleRemoveCartItem)
	r.Post("/territories/{territoryID}/checkout", h.handleCheckout)

	r.Get("/territories/{territoryID}/fees", h.handleListFees)
	r.Get("/territories/{territoryID}/fees/{itemType}", h.handleGetFee)
	r.Put("/territories/{territoryID}/fees/{itemType}", h.handleUpsertFee)

	r.Get("/stores/{storeID}", h.handleGetStore)
	r.Post("/stores/{storeID}/items", h.handleCreateItem)
	r.Get("/stores/{storeID}/items", h.handleListItems)
	r.Get("/stores/{storeID}/inquiries", h.handleListInquiries)
	r.Get("/items/{itemID}", h.handleGetItem)
	r.Put("/items/{itemID}/status", h.handleSetItemStatus)

	r.Get("/checkouts", h.handleListCheckouts)
	r.Get("/checkouts/{checkoutID}", h.handleGetCheckout)
	r.Post("/checkouts/{checkoutID}/confirm-payment", h.handleConfirmPayment)
	r.Post("/checkouts/{checkoutID}/cancel", h.handleCancelCheckout)
	r.Post("/checkouts/{checkoutID}/refund", h.handleRefundCheckout)
}

// pathID parses a URL parameter with the typed id parser, writing the error
// response on failure.
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

// userAndTerritory resolves the caller and the {territoryID} path parameter.
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

func (h *Handler) page(w http.ResponseWriter, r *http.Request) (pagination.Page, bool) {
	page, err := httputil.PageFromQuery(r)
	if err != nil {
		httputil.WriteError(w, err)
		return page, false
	}
	return page, true
}
