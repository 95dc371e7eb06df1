// Package store keeps marketplace state. Lookups return sentinel.ErrNotFound
// when nothing matches; uniqueness violations return sentinel.ErrConflict.
// Values are copied in and out so callers only mutate state through Update.
package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"agora/internal/marketplace/models"
	id "agora/pkg/domain"
	"agora/pkg/platform/sentinel"
)

type InMemoryStores struct {
	mu     sync.RWMutex
	stores map[id.StoreID]models.Store
}

func NewInMemoryStores() *InMemoryStores {
	return &InMemoryStores{stores: make(map[id.StoreID]models.Store)}
}

func (s *InMemoryStores) Create(_ context.Context, st *models.Store) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.stores[st.ID]; ok {
		return fmt.Errorf("store id: %w", sentinel.ErrConflict)
	}
	s.stores[st.ID] = *st
	return nil
}

func (s *InMemoryStores) FindByID(_ context.Context, storeID id.StoreID) (*models.Store, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.stores[storeID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &st, nil
}

func (s *InMemoryStores) ListByTerritory(_ context.Context, territoryID id.TerritoryID) ([]*models.Store, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Store
	for _, st := range s.stores {
		if st.TerritoryID == territoryID {
			out = append(out, &st)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

type InMemoryItems struct {
	mu    sync.RWMutex
	items map[id.StoreItemID]models.StoreItem
}

func NewInMemoryItems() *InMemoryItems {
	return &InMemoryItems{items: make(map[id.StoreItemID]models.StoreItem)}
}

func (s *InMemoryItems) Create(_ context.Context, item *models.StoreItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[item.ID]; ok {
		return fmt.Errorf("store item id: %w", sentinel.ErrConflict)
	}
	s.items[item.ID] = *item
	return nil
}

func (s *InMemoryItems) Update(_ context.Context, item *models.StoreItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[item.ID]; !ok {
		return sentinel.ErrNotFound
	}
	s.items[item.ID] = *item
	return nil
}

func (s *InMemoryItems) FindByID(_ context.Context, itemID id.StoreItemID) (*models.StoreItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.items[itemID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &item, nil
}

func (s *InMemoryItems) ListByStore(_ context.Context, storeID id.StoreID) ([]*models.StoreItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.StoreItem
	for _, item := range s.items {
		if item.StoreID == storeID {
			out = append(out, &item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

type cartKey struct {
	territoryID id.TerritoryID
	userID      id.UserID
}

// InMemoryCarts holds carts and their lines. One cart per (territory, user);
// one line per (cart, store item).
type InMemoryCarts struct {
	mu    sync.RWMutex
	carts map[cartKey]models.Cart
	lines map[id.CartItemID]models.CartItem
}

func NewInMemoryCarts() *InMemoryCarts {
	return &InMemoryCarts{
		carts: make(map[cartKey]models.Cart),
		lines: make(map[id.CartItemID]models.CartItem),
	}
}

func (s *InMemoryCarts) FindCart(_ context.Context, userID id.UserID, territoryID id.TerritoryID) (*models.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.carts[cartKey{territoryID, userID}]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &c, nil
}

func (s *InMemoryCarts) CreateCart(_ context.Context, c *models.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := cartKey{c.TerritoryID, c.UserID}
	if _, ok := s.carts[key]; ok {
		return fmt.Errorf("cart for user in territory: %w", sentinel.ErrConflict)
	}
	s.carts[key] = *c
	return nil
}

func (s *InMemoryCarts) UpdateCart(_ context.Context, c *models.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := cartKey{c.TerritoryID, c.UserID}
	if _, ok := s.carts[key]; !ok {
		return sentinel.ErrNotFound
	}
	s.carts[key] = *c
	return nil
}

func (s *InMemoryCarts) FindItem(_ context.Context, cartItemID id.CartItemID) (*models.CartItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	line, ok := s.lines[cartItemID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &line, nil
}

func (s *InMemoryCarts) FindItemByStoreItem(_ context.Context, cartID id.CartID, storeItemID id.StoreItemID) (*models.CartItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, line := range s.lines {
		if line.CartID == cartID && line.StoreItemID == storeItemID {
			return &line, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryCarts) AddItem(_ context.Context, line *models.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.lines {
		if existing.CartID == line.CartID && existing.StoreItemID == line.StoreItemID {
			return fmt.Errorf("cart line for store item: %w", sentinel.ErrConflict)
		}
	}
	s.lines[line.ID] = *line
	return nil
}

func (s *InMemoryCarts) UpdateItem(_ context.Context, line *models.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.lines[line.ID]; !ok {
		return sentinel.ErrNotFound
	}
	s.lines[line.ID] = *line
	return nil
}

func (s *InMemoryCarts) RemoveItems(_ context.Context, cartItemIDs ...id.CartItemID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, lineID := range cartItemIDs {
		delete(s.lines, lineID)
	}
	return nil
}

// ListItems returns the cart's lines in the order they were added.
func (s *InMemoryCarts) ListItems(_ context.Context, cartID id.CartID) ([]*models.CartItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.CartItem
	for _, line := range s.lines {
		if line.CartID == cartID {
			out = append(out, &line)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].AddedAt.Equal(out[j].AddedAt) {
			return out[i].ID.String() < out[j].ID.String()
		}
		return out[i].AddedAt.Before(out[j].AddedAt)
	})
	return out, nil
}

type InMemoryCheckouts struct {
	mu        sync.RWMutex
	checkouts map[id.CheckoutID]models.Checkout
	items     map[id.CheckoutID][]models.CheckoutItem
}

func NewInMemoryCheckouts() *InMemoryCheckouts {
	return &InMemoryCheckouts{
		checkouts: make(map[id.CheckoutID]models.Checkout),
		items:     make(map[id.CheckoutID][]models.CheckoutItem),
	}
}

func (s *InMemoryCheckouts) Create(_ context.Context, c *models.Checkout, items []models.CheckoutItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.checkouts[c.ID]; ok {
		return fmt.Errorf("checkout id: %w", sentinel.ErrConflict)
	}
	s.checkouts[c.ID] = *c
	s.items[c.ID] = append([]models.CheckoutItem(nil), items...)
	return nil
}

func (s *InMemoryCheckouts) Update(_ context.Context, c *models.Checkout) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.checkouts[c.ID]; !ok {
		return sentinel.ErrNotFound
	}
	s.checkouts[c.ID] = *c
	return nil
}

func (s *InMemoryCheckouts) FindByID(_ context.Context, checkoutID id.CheckoutID) (*models.Checkout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.checkouts[checkoutID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &c, nil
}

func (s *InMemoryCheckouts) ListItems(_ context.Context, checkoutID id.CheckoutID) ([]models.CheckoutItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items, ok := s.items[checkoutID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return append([]models.CheckoutItem(nil), items...), nil
}

// ListByBuyer returns the buyer's checkouts, newest first.
func (s *InMemoryCheckouts) ListByBuyer(_ context.Context, buyerID id.UserID) ([]*models.Checkout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Checkout
	for _, c := range s.checkouts {
		if c.BuyerUserID == buyerID {
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type InMemoryInquiries struct {
	mu        sync.RWMutex
	inquiries map[id.InquiryID]models.Inquiry
}

func NewInMemoryInquiries() *InMemoryInquiries {
	return &InMemoryInquiries{inquiries: make(map[id.InquiryID]models.Inquiry)}
}

func (s *InMemoryInquiries) Create(_ context.Context, inq *models.Inquiry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.inquiries[inq.ID]; ok {
		return fmt.Errorf("inquiry id: %w", sentinel.ErrConflict)
	}
	s.inquiries[inq.ID] = *inq
	return nil
}

func (s *InMemoryInquiries) ListByStore(_ context.Context, storeID id.StoreID) ([]*models.Inquiry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Inquiry
	for _, inq := range s.inquiries {
		if inq.StoreID == storeID {
			out = append(out, &inq)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

type feeKey struct {
	territoryID id.TerritoryID
	itemType    models.ItemType
}

// InMemoryFeeConfigs keeps the full fee history. At most one active row per
// (territory, item type).
type InMemoryFeeConfigs struct {
	mu      sync.RWMutex
	configs map[id.FeeConfigID]models.PlatformFeeConfig
}

func NewInMemoryFeeConfigs() *InMemoryFeeConfigs {
	return &InMemoryFeeConfigs{configs: make(map[id.FeeConfigID]models.PlatformFeeConfig)}
}

func (s *InMemoryFeeConfigs) checkActive(c *models.PlatformFeeConfig) error {
	if !c.IsActive {
		return nil
	}
	key := feeKey{c.TerritoryID, c.ItemType}
	for _, existing := range s.configs {
		if existing.ID != c.ID && existing.IsActive && (feeKey{existing.TerritoryID, existing.ItemType}) == key {
			return fmt.Errorf("active fee config: %w", sentinel.ErrConflict)
		}
	}
	return nil
}

func (s *InMemoryFeeConfigs) Create(_ context.Context, c *models.PlatformFeeConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.configs[c.ID]; ok {
		return fmt.Errorf("fee config id: %w", sentinel.ErrConflict)
	}
	if err := s.checkActive(c); err != nil {
		return err
	}
	s.configs[c.ID] = *c
	return nil
}

func (s *InMemoryFeeConfigs) Update(_ context.Context, c *models.PlatformFeeConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.configs[c.ID]; !ok {
		return sentinel.ErrNotFound
	}
	if err := s.checkActive(c); err != nil {
		return err
	}
	s.configs[c.ID] = *c
	return nil
}

func (s *InMemoryFeeConfigs) FindActive(_ context.Context, territoryID id.TerritoryID, itemType models.ItemType) (*models.PlatformFeeConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.configs {
		if c.IsActive && c.TerritoryID == territoryID && c.ItemType == itemType {
			return &c, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

// ListActive returns the territory's active configs ordered by item type.
func (s *InMemoryFeeConfigs) ListActive(_ context.Context, territoryID id.TerritoryID) ([]*models.PlatformFeeConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.PlatformFeeConfig
	for _, c := range s.configs {
		if c.IsActive && c.TerritoryID == territoryID {
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemType < out[j].ItemType })
	return out, nil
}

// ListHistory returns every config row for (territory, item type), oldest first.
func (s *InMemoryFeeConfigs) ListHistory(_ context.Context, territoryID id.TerritoryID, itemType models.ItemType) ([]*models.PlatformFeeConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.PlatformFeeConfig
	for _, c := range s.configs {
		if c.TerritoryID == territoryID && c.ItemType == itemType {
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}
