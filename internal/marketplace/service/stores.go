package service

import (
	"context"
	"errors"
	"strings"

	"agora/internal/marketplace/models"
	id "agora/pkg/domain"
	dErrors "agora/pkg/domain-errors"
	"agora/pkg/requestcontext"
)

// StoreService manages stores, their items and the inquiries they receive.
type StoreService struct {
	stores    StoreRepository
	items     ItemRepository
	inquiries InquiryRepository
	guard     FeatureGuard
	rules     AccessRules
	options
}

func NewStoreService(stores StoreRepository, items ItemRepository, inquiries InquiryRepository, guard FeatureGuard, rules AccessRules, opts ...Option) (*StoreService, error) {
	if stores == nil || items == nil || inquiries == nil {
		return nil, errors.New("store, item and inquiry repositories are required")
	}
	if guard == nil || rules == nil {
		return nil, errors.New("feature guard and access rules are required")
	}
	return &StoreService{
		stores:    stores,
		items:     items,
		inquiries: inquiries,
		guard:     guard,
		rules:     rules,
		options:   newOptions(opts),
	}, nil
}

// CreateStore opens a store for a verified resident of the territory.
func (s *StoreService) CreateStore(ctx context.Context, userID id.UserID, territoryID id.TerritoryID, name string) (*models.Store, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "store name is required")
	}
	if len(name) > 100 {
		return nil, dErrors.New(dErrors.CodeValidation, "store name must be at most 100 characters")
	}
	if err := s.guard.RequireMarketplace(ctx, territoryID); err != nil {
		return nil, err
	}
	ok, err := s.rules.CanCreateStore(ctx, userID, territoryID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, dErrors.New(dErrors.CodeForbidden, "only verified residents can create stores")
	}

	st := &models.Store{
		ID:          id.NewStoreID(),
		TerritoryID: territoryID,
		OwnerUserID: userID,
		Name:        name,
		CreatedAt:   requestcontext.Now(ctx),
	}
	if err := s.stores.Create(ctx, st); err != nil {
		return nil, translate(err, "", "failed to create store")
	}
	s.logger.InfoContext(ctx, "store_created",
		"store_id", st.ID,
		"territory_id", territoryID,
		"owner_user_id", userID,
		"request_id", requestcontext.RequestID(ctx),
	)
	return st, nil
}

func (s *StoreService) GetStore(ctx context.Context, storeID id.StoreID) (*models.Store, error) {
	st, err := s.stores.FindByID(ctx, storeID)
	if err != nil {
		return nil, translate(err, "store not found", "failed to load store")
	}
	if err := s.guard.RequireMarketplace(ctx, st.TerritoryID); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *StoreService) ListStores(ctx context.Context, territoryID id.TerritoryID) ([]*models.Store, error) {
	if err := s.guard.RequireMarketplace(ctx, territoryID); err != nil {
		return nil, err
	}
	stores, err := s.stores.ListByTerritory(ctx, territoryID)
	if err != nil {
		return nil, translate(err, "", "failed to list stores")
	}
	return stores, nil
}

// CreateItem adds an item to a store the user owns. The owner must still be a
// verified resident.
func (s *StoreService) CreateItem(ctx context.Context, userID id.UserID, storeID id.StoreID, in models.NewItemInput) (*models.StoreItem, error) {
	if err := in.Normalize(); err != nil {
		return nil, err
	}
	st, err := s.ownedStore(ctx, userID, storeID)
	if err != nil {
		return nil, err
	}
	ok, err := s.rules.CanCreateItem(ctx, userID, st.TerritoryID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, dErrors.New(dErrors.CodeForbidden, "only verified residents can create items")
	}

	now := requestcontext.Now(ctx)
	item := &models.StoreItem{
		ID:          id.NewStoreItemID(),
		StoreID:     st.ID,
		TerritoryID: st.TerritoryID,
		Title:       in.Title,
		Description: in.Description,
		ItemType:    in.ItemType,
		PricingType: in.PricingType,
		Price:       in.Price,
		Currency:    in.Currency,
		Status:      models.ItemActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, translate(err, "", "failed to create item")
	}
	return item, nil
}

func (s *StoreService) GetItem(ctx context.Context, itemID id.StoreItemID) (*models.StoreItem, error) {
	item, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, translate(err, "item not found", "failed to load item")
	}
	if err := s.guard.RequireMarketplace(ctx, item.TerritoryID); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *StoreService) ListItems(ctx context.Context, storeID id.StoreID) ([]*models.StoreItem, error) {
	if _, err := s.GetStore(ctx, storeID); err != nil {
		return nil, err
	}
	items, err := s.items.ListByStore(ctx, storeID)
	if err != nil {
		return nil, translate(err, "", "failed to list items")
	}
	return items, nil
}

// SetItemStatus activates or archives an item. Archived items stay in carts
// but are skipped at checkout.
func (s *StoreService) SetItemStatus(ctx context.Context, userID id.UserID, itemID id.StoreItemID, status models.ItemStatus) (*models.StoreItem, error) {
	if _, err := models.ParseItemStatus(string(status)); err != nil {
		return nil, err
	}
	item, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, translate(err, "item not found", "failed to load item")
	}
	if _, err := s.ownedStore(ctx, userID, item.StoreID); err != nil {
		return nil, err
	}
	if item.Status == status {
		return item, nil
	}
	item.Status = status
	item.UpdatedAt = requestcontext.Now(ctx)
	if err := s.items.Update(ctx, item); err != nil {
		return nil, translate(err, "item not found", "failed to update item")
	}
	return item, nil
}

// ListInquiries returns the inquiries received by a store the user owns.
func (s *StoreService) ListInquiries(ctx context.Context, userID id.UserID, storeID id.StoreID) ([]*models.Inquiry, error) {
	if _, err := s.ownedStore(ctx, userID, storeID); err != nil {
		return nil, err
	}
	inqs, err := s.inquiries.ListByStore(ctx, storeID)
	if err != nil {
		return nil, translate(err, "", "failed to list inquiries")
	}
	return inqs, nil
}

func (s *StoreService) ownedStore(ctx context.Context, userID id.UserID, storeID id.StoreID) (*models.Store, error) {
	st, err := s.GetStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if st.OwnerUserID != userID {
		return nil, dErrors.New(dErrors.CodeForbidden, "only the store owner can manage this store")
	}
	return st, nil
}
