package service

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"agora/internal/marketplace/models"
	id "agora/pkg/domain"
	dErrors "agora/pkg/domain-errors"
	"agora/pkg/platform/money"
	"agora/pkg/platform/sentinel"
	"agora/pkg/platform/tx"
	"agora/pkg/requestcontext"
)

// CartService owns the per-territory cart and converts it into checkouts.
type CartService struct {
	carts     CartRepository
	items     ItemRepository
	stores    StoreRepository
	checkouts CheckoutRepository
	inquiries InquiryRepository
	fees      FeeConfigRepository
	guard     FeatureGuard
	tx        tx.Runner
	options
}

func NewCartService(
	carts CartRepository,
	items ItemRepository,
	stores StoreRepository,
	checkouts CheckoutRepository,
	inquiries InquiryRepository,
	fees FeeConfigRepository,
	guard FeatureGuard,
	runner tx.Runner,
	opts ...Option,
) (*CartService, error) {
	if carts == nil || items == nil || stores == nil || checkouts == nil || inquiries == nil || fees == nil {
		return nil, errors.New("cart, item, store, checkout, inquiry and fee repositories are required")
	}
	if guard == nil {
		return nil, errors.New("feature guard is required")
	}
	if runner == nil {
		return nil, errors.New("transaction runner is required")
	}
	return &CartService{
		carts:     carts,
		items:     items,
		stores:    stores,
		checkouts: checkouts,
		inquiries: inquiries,
		fees:      fees,
		guard:     guard,
		tx:        runner,
		options:   newOptions(opts),
	}, nil
}

// AddItem puts a store item in the user's cart, merging quantity when the item
// is already there.
func (s *CartService) AddItem(ctx context.Context, userID id.UserID, territoryID id.TerritoryID, itemID id.StoreItemID, quantity int, notes string) (*models.CartItem, error) {
	if territoryID.IsNil() {
		return nil, dErrors.New(dErrors.CodeValidation, "territory id is required")
	}
	if itemID.IsNil() {
		return nil, dErrors.New(dErrors.CodeValidation, "item id is required")
	}
	if err := models.ValidateQuantity(quantity); err != nil {
		return nil, err
	}
	if err := models.ValidateNotes(notes); err != nil {
		return nil, err
	}
	if err := s.guard.RequireMarketplace(ctx, territoryID); err != nil {
		return nil, err
	}
	item, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, translate(err, "item not found", "failed to load item")
	}
	if item.TerritoryID != territoryID {
		return nil, dErrors.New(dErrors.CodeNotFound, "item not found")
	}
	if !item.IsActive() {
		return nil, dErrors.New(dErrors.CodeConflict, "item is not available")
	}

	var line *models.CartItem
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		now := requestcontext.Now(ctx)
		cart, err := s.ensureCart(ctx, userID, territoryID, now)
		if err != nil {
			return err
		}
		existing, err := s.carts.FindItemByStoreItem(ctx, cart.ID, itemID)
		switch {
		case err == nil:
			merged, err := models.MergeQuantity(existing.Quantity, quantity)
			if err != nil {
				return err
			}
			existing.Quantity = merged
			if notes != "" {
				existing.Notes = notes
			}
			existing.UpdatedAt = now
			if err := s.carts.UpdateItem(ctx, existing); err != nil {
				return translate(err, "cart item not found", "failed to update cart item")
			}
			line = existing
		case errors.Is(err, sentinel.ErrNotFound):
			line = &models.CartItem{
				ID:          id.NewCartItemID(),
				CartID:      cart.ID,
				StoreItemID: itemID,
				Quantity:    quantity,
				Notes:       notes,
				AddedAt:     now,
				UpdatedAt:   now,
			}
			if err := s.carts.AddItem(ctx, line); err != nil {
				return translate(err, "", "failed to add cart item")
			}
		default:
			return translate(err, "", "failed to load cart item")
		}
		return s.touch(ctx, cart, now)
	})
	if err != nil {
		return nil, err
	}
	s.metrics.IncrementCartOperation("add")
	return line, nil
}

// UpdateItem sets the quantity of a cart line. Notes are replaced when given.
func (s *CartService) UpdateItem(ctx context.Context, userID id.UserID, territoryID id.TerritoryID, cartItemID id.CartItemID, quantity int, notes *string) (*models.CartItem, error) {
	if err := models.ValidateQuantity(quantity); err != nil {
		return nil, err
	}
	if notes != nil {
		if err := models.ValidateNotes(*notes); err != nil {
			return nil, err
		}
	}
	if err := s.guard.RequireMarketplace(ctx, territoryID); err != nil {
		return nil, err
	}

	var line *models.CartItem
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		cart, found, err := s.ownedLine(ctx, userID, territoryID, cartItemID)
		if err != nil {
			return err
		}
		now := requestcontext.Now(ctx)
		found.Quantity = quantity
		if notes != nil {
			found.Notes = *notes
		}
		found.UpdatedAt = now
		if err := s.carts.UpdateItem(ctx, found); err != nil {
			return translate(err, "cart item not found", "failed to update cart item")
		}
		line = found
		return s.touch(ctx, cart, now)
	})
	if err != nil {
		return nil, err
	}
	s.metrics.IncrementCartOperation("update")
	return line, nil
}

func (s *CartService) RemoveItem(ctx context.Context, userID id.UserID, territoryID id.TerritoryID, cartItemID id.CartItemID) error {
	if err := s.guard.RequireMarketplace(ctx, territoryID); err != nil {
		return err
	}
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		cart, line, err := s.ownedLine(ctx, userID, territoryID, cartItemID)
		if err != nil {
			return err
		}
		if err := s.carts.RemoveItems(ctx, line.ID); err != nil {
			return translate(err, "", "failed to remove cart item")
		}
		return s.touch(ctx, cart, requestcontext.Now(ctx))
	})
	if err != nil {
		return err
	}
	s.metrics.IncrementCartOperation("remove")
	return nil
}

// GetCart returns the user's cart. A user without a cart gets an empty view.
func (s *CartService) GetCart(ctx context.Context, userID id.UserID, territoryID id.TerritoryID) (*models.CartView, error) {
	if err := s.guard.RequireMarketplace(ctx, territoryID); err != nil {
		return nil, err
	}
	cart, err := s.carts.FindCart(ctx, userID, territoryID)
	if errors.Is(err, sentinel.ErrNotFound) {
		return &models.CartView{Items: []*models.CartItem{}}, nil
	}
	if err != nil {
		return nil, translate(err, "", "failed to load cart")
	}
	lines, err := s.carts.ListItems(ctx, cart.ID)
	if err != nil {
		return nil, translate(err, "", "failed to load cart items")
	}
	if lines == nil {
		lines = []*models.CartItem{}
	}
	return &models.CartView{Cart: cart, Items: lines}, nil
}

// Clear empties the cart. Clearing a missing or empty cart is a no-op.
func (s *CartService) Clear(ctx context.Context, userID id.UserID, territoryID id.TerritoryID) error {
	if err := s.guard.RequireMarketplace(ctx, territoryID); err != nil {
		return err
	}
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		cart, err := s.carts.FindCart(ctx, userID, territoryID)
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil
		}
		if err != nil {
			return translate(err, "", "failed to load cart")
		}
		lines, err := s.carts.ListItems(ctx, cart.ID)
		if err != nil {
			return translate(err, "", "failed to load cart items")
		}
		if len(lines) == 0 {
			return nil
		}
		if err := s.carts.RemoveItems(ctx, lineIDs(lines)...); err != nil {
			return translate(err, "", "failed to clear cart")
		}
		return s.touch(ctx, cart, requestcontext.Now(ctx))
	})
	if err != nil {
		return err
	}
	s.metrics.IncrementCartOperation("clear")
	return nil
}

type groupKey struct {
	storeID  id.StoreID
	currency string
}

type checkoutGroup struct {
	key   groupKey
	lines []*models.CartItem
	items []*models.StoreItem
}

// checkoutPlan is computed from reads only, so a validation failure leaves no
// partial state behind.
type checkoutPlan struct {
	bundles   []models.CheckoutBundle
	inquiries []*models.Inquiry
	converted []id.CartItemID
	summaries []models.CheckoutSummary
}

// Checkout converts the cart into one checkout per store (and currency) plus
// inquiries for inquiry-only lines. Lines that cannot be converted stay in
// the cart. An empty or missing cart yields an empty result.
func (s *CartService) Checkout(ctx context.Context, userID id.UserID, territoryID id.TerritoryID) (*models.CheckoutResult, error) {
	if err := s.guard.RequireMarketplace(ctx, territoryID); err != nil {
		return nil, err
	}

	var plan *checkoutPlan
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		cart, err := s.carts.FindCart(ctx, userID, territoryID)
		if errors.Is(err, sentinel.ErrNotFound) {
			plan = &checkoutPlan{}
			return nil
		}
		if err != nil {
			return translate(err, "", "failed to load cart")
		}
		now := requestcontext.Now(ctx)
		plan, err = s.plan(ctx, cart, now)
		if err != nil {
			return err
		}
		return s.commit(ctx, cart, plan, now)
	})
	if err != nil {
		return nil, err
	}

	s.metrics.AddCheckouts(len(plan.bundles), len(plan.inquiries))
	for _, b := range plan.bundles {
		s.logger.InfoContext(ctx, "checkout_created",
			"checkout_id", b.Checkout.ID,
			"store_id", b.Checkout.StoreID,
			"buyer_user_id", userID,
			"total", b.Checkout.Total.StringFixed(money.Places),
			"currency", b.Checkout.Currency,
			"request_id", requestcontext.RequestID(ctx),
		)
	}
	return &models.CheckoutResult{
		Checkouts: nonNil(plan.bundles),
		Inquiries: nonNil(plan.inquiries),
		Summaries: nonNil(plan.summaries),
	}, nil
}

func (s *CartService) plan(ctx context.Context, cart *models.Cart, now time.Time) (*checkoutPlan, error) {
	lines, err := s.carts.ListItems(ctx, cart.ID)
	if err != nil {
		return nil, translate(err, "", "failed to load cart items")
	}

	plan := &checkoutPlan{}
	var (
		groups     []*checkoutGroup
		groupIndex = map[groupKey]*checkoutGroup{}
		storeOrder []id.StoreID
		summaries  = map[id.StoreID]*models.CheckoutSummary{}
	)
	summaryFor := func(storeID id.StoreID) *models.CheckoutSummary {
		sum, ok := summaries[storeID]
		if !ok {
			sum = &models.CheckoutSummary{StoreID: storeID}
			summaries[storeID] = sum
			storeOrder = append(storeOrder, storeID)
		}
		return sum
	}

	for _, line := range lines {
		item, err := s.items.FindByID(ctx, line.StoreItemID)
		if errors.Is(err, sentinel.ErrNotFound) {
			s.logger.WarnContext(ctx, "cart line references a missing item, leaving it in the cart",
				"cart_item_id", line.ID,
				"store_item_id", line.StoreItemID,
			)
			continue
		}
		if err != nil {
			return nil, translate(err, "", "failed to load item")
		}
		if !item.IsActive() || item.TerritoryID != cart.TerritoryID {
			s.logger.WarnContext(ctx, "cart line item is not available here, leaving it in the cart",
				"cart_item_id", line.ID,
				"store_item_id", line.StoreItemID,
				"item_status", item.Status,
				"item_territory_id", item.TerritoryID,
			)
			continue
		}
		if _, err := s.stores.FindByID(ctx, item.StoreID); err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				s.logger.WarnContext(ctx, "cart line item has no store, leaving it in the cart",
					"cart_item_id", line.ID,
					"store_item_id", line.StoreItemID,
					"store_id", item.StoreID,
				)
				continue
			}
			return nil, translate(err, "", "failed to load store")
		}

		if !item.IsPurchasable() {
			plan.inquiries = append(plan.inquiries, &models.Inquiry{
				ID:          id.NewInquiryID(),
				TerritoryID: cart.TerritoryID,
				StoreID:     item.StoreID,
				StoreItemID: item.ID,
				BuyerUserID: cart.UserID,
				Quantity:    line.Quantity,
				Notes:       line.Notes,
				CreatedAt:   now,
			})
			plan.converted = append(plan.converted, line.ID)
			summaryFor(item.StoreID).InquiryCount++
			continue
		}

		key := groupKey{storeID: item.StoreID, currency: item.Currency}
		g, ok := groupIndex[key]
		if !ok {
			g = &checkoutGroup{key: key}
			groupIndex[key] = g
			groups = append(groups, g)
		}
		g.lines = append(g.lines, line)
		g.items = append(g.items, item)
	}

	for _, g := range groups {
		bundle, err := s.buildCheckout(ctx, cart, g, now)
		if err != nil {
			return nil, err
		}
		plan.bundles = append(plan.bundles, bundle)
		sum := summaryFor(g.key.storeID)
		sum.CheckoutIDs = append(sum.CheckoutIDs, bundle.Checkout.ID)
		for _, line := range g.lines {
			plan.converted = append(plan.converted, line.ID)
			sum.ItemCount++
			sum.TotalQuantity += line.Quantity
		}
	}
	for _, storeID := range storeOrder {
		plan.summaries = append(plan.summaries, *summaries[storeID])
	}
	return plan, nil
}

// buildCheckout snapshots a group's lines and applies the active fee config of
// each item type present.
func (s *CartService) buildCheckout(ctx context.Context, cart *models.Cart, g *checkoutGroup, now time.Time) (models.CheckoutBundle, error) {
	checkoutID := id.NewCheckoutID()
	var (
		subtotal  = decimal.Zero
		byType    = map[models.ItemType]decimal.Decimal{}
		typeOrder []models.ItemType
		snapshots = make([]models.CheckoutItem, 0, len(g.lines))
	)
	for i, line := range g.lines {
		item := g.items[i]
		lineSubtotal := money.Round(item.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		snapshots = append(snapshots, models.CheckoutItem{
			ID:            id.NewCheckoutItemID(),
			CheckoutID:    checkoutID,
			StoreItemID:   item.ID,
			ItemType:      item.ItemType,
			TitleSnapshot: item.Title,
			Quantity:      line.Quantity,
			UnitPrice:     item.Price,
			LineSubtotal:  lineSubtotal,
			Notes:         line.Notes,
		})
		subtotal = subtotal.Add(lineSubtotal)
		if _, seen := byType[item.ItemType]; !seen {
			typeOrder = append(typeOrder, item.ItemType)
		}
		byType[item.ItemType] = byType[item.ItemType].Add(lineSubtotal)
	}

	fee := decimal.Zero
	for _, itemType := range typeOrder {
		cfg, err := s.fees.FindActive(ctx, cart.TerritoryID, itemType)
		if errors.Is(err, sentinel.ErrNotFound) {
			continue
		}
		if err != nil {
			return models.CheckoutBundle{}, translate(err, "", "failed to load fee config")
		}
		typeFee, err := cfg.FeeFor(byType[itemType], g.key.currency)
		if err != nil {
			return models.CheckoutBundle{}, err
		}
		fee = fee.Add(typeFee)
	}

	checkout := &models.Checkout{
		ID:            checkoutID,
		TerritoryID:   cart.TerritoryID,
		BuyerUserID:   cart.UserID,
		StoreID:       g.key.storeID,
		Status:        models.CheckoutAwaitingPayment,
		Currency:      g.key.currency,
		ItemsSubtotal: subtotal,
		PlatformFee:   fee,
		Total:         subtotal.Add(fee),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return models.CheckoutBundle{Checkout: checkout, Items: snapshots}, nil
}

func (s *CartService) commit(ctx context.Context, cart *models.Cart, plan *checkoutPlan, now time.Time) error {
	for _, inq := range plan.inquiries {
		if err := s.inquiries.Create(ctx, inq); err != nil {
			return translate(err, "", "failed to create inquiry")
		}
	}
	for _, b := range plan.bundles {
		if err := s.checkouts.Create(ctx, b.Checkout, b.Items); err != nil {
			return translate(err, "", "failed to create checkout")
		}
	}
	if len(plan.converted) == 0 {
		return nil
	}
	if err := s.carts.RemoveItems(ctx, plan.converted...); err != nil {
		return translate(err, "", "failed to clear converted cart items")
	}
	return s.touch(ctx, cart, now)
}

func (s *CartService) ensureCart(ctx context.Context, userID id.UserID, territoryID id.TerritoryID, now time.Time) (*models.Cart, error) {
	cart, err := s.carts.FindCart(ctx, userID, territoryID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, sentinel.ErrNotFound) {
		return nil, translate(err, "", "failed to load cart")
	}
	cart = &models.Cart{
		ID:          id.NewCartID(),
		TerritoryID: territoryID,
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.carts.CreateCart(ctx, cart); err != nil {
		return nil, translate(err, "", "failed to create cart")
	}
	return cart, nil
}

// ownedLine loads a cart line, hiding lines of other users' carts.
func (s *CartService) ownedLine(ctx context.Context, userID id.UserID, territoryID id.TerritoryID, cartItemID id.CartItemID) (*models.Cart, *models.CartItem, error) {
	cart, err := s.carts.FindCart(ctx, userID, territoryID)
	if err != nil {
		return nil, nil, translate(err, "cart item not found", "failed to load cart")
	}
	line, err := s.carts.FindItem(ctx, cartItemID)
	if err != nil {
		return nil, nil, translate(err, "cart item not found", "failed to load cart item")
	}
	if line.CartID != cart.ID {
		return nil, nil, dErrors.New(dErrors.CodeNotFound, "cart item not found")
	}
	return cart, line, nil
}

func (s *CartService) touch(ctx context.Context, cart *models.Cart, now time.Time) error {
	cart.UpdatedAt = now
	if err := s.carts.UpdateCart(ctx, cart); err != nil {
		return translate(err, "cart not found", "failed to update cart")
	}
	return nil
}

func lineIDs(lines []*models.CartItem) []id.CartItemID {
	out := make([]id.CartItemID, len(lines))
	for i, line := range lines {
		out[i] = line.ID
	}
	return out
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
