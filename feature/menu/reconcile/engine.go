package reconcile

import (
	"context"
	"fmt"

	"menu-builder/core/utils"
	"menu-builder/feature/menu/models"

	"go.uber.org/zap"
)

// SaveRequest is one full draft save: the tree in client-desired order plus
// the four change-tracking sets.
type SaveRequest struct {
	Restaurant models.RestaurantDraft `json:"restaurant"`
	Changes    models.ChangeSet       `json:"changes"`
}

// SkippedDish reports a dish that was locally recovered out of the save
// because its category reference never became durable.
type SkippedDish struct {
	ID     models.ID `json:"id"`
	Title  string    `json:"title"`
	Reason string    `json:"reason"`
}

// SaveResult is the canonical post-save state. The client must adopt it as
// its new baseline, including all resolved identifiers.
type SaveResult struct {
	Restaurant *models.Restaurant `json:"restaurant"`
	Skipped    []SkippedDish      `json:"skippedDishes,omitempty"`
}

// Engine reconciles a client draft against durable storage in six strictly
// ordered phases inside one gateway transaction: restaurant upsert,
// deletions, categories, dishes, order writing, read-back. Phase N+1 never
// starts before phase N completes; any error other than an unresolved dish
// reference rolls the whole save back.
type Engine struct {
	gw     Gateway
	logger *zap.Logger
}

// NewEngine creates an engine over the given gateway.
func NewEngine(gw Gateway, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{gw: gw, logger: logger}
}

// slugAttempts bounds suffix retries when the base slug is taken.
const slugAttempts = 5

// Save reconciles the draft for the authenticated user and returns the
// reconciled tree. Validation and conflict errors abort before or during
// phase 1; a dish with an unresolvable category reference is skipped and
// reported, everything else is all-or-nothing.
func (e *Engine) Save(ctx context.Context, userID uint, req SaveRequest) (*SaveResult, error) {
	if err := validateSave(userID, req); err != nil {
		return nil, err
	}

	resolver := NewResolver()
	result := &SaveResult{}

	err := e.gw.InTx(ctx, func(tx Tx) error {
		restaurantID, err := e.upsertRestaurant(ctx, tx, userID, req.Restaurant)
		if err != nil {
			return err
		}

		if err := e.applyDeletions(ctx, tx, restaurantID, req.Changes); err != nil {
			return err
		}

		if err := e.reconcileCategories(ctx, tx, restaurantID, req, resolver); err != nil {
			return err
		}

		skipped, err := e.reconcileDishes(ctx, tx, restaurantID, req, resolver)
		if err != nil {
			return err
		}
		result.Skipped = skipped

		if err := e.writeOrders(ctx, tx, restaurantID, req.Restaurant, resolver); err != nil {
			return err
		}

		tree, err := tx.LoadTree(ctx, restaurantID)
		if err != nil {
			return err
		}
		if tree == nil {
			return Storagef(nil, "restaurant %d vanished during save", restaurantID)
		}
		result.Restaurant = tree
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.logger.Info("draft saved",
		zap.Uint("restaurant_id", result.Restaurant.ID),
		zap.Int("categories", len(result.Restaurant.Categories)),
		zap.Int("skipped_dishes", len(result.Skipped)),
	)
	return result, nil
}

// ReorderCategories rewrites the category order for one restaurant without a
// full save and returns the refreshed tree.
func (e *Engine) ReorderCategories(ctx context.Context, userID, restaurantID uint, orderedIDs []uint) (*models.Restaurant, error) {
	var tree *models.Restaurant
	err := e.gw.InTx(ctx, func(tx Tx) error {
		if err := e.requireOwned(ctx, tx, userID, restaurantID); err != nil {
			return err
		}
		if err := tx.SetCategoryOrder(ctx, restaurantID, orderedIDs); err != nil {
			return err
		}
		var err error
		tree, err = tx.LoadTree(ctx, restaurantID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return tree, nil
}

// ReorderDishes rewrites the dish order for one category without a full save
// and returns the refreshed tree.
func (e *Engine) ReorderDishes(ctx context.Context, userID, restaurantID, categoryID uint, orderedIDs []uint) (*models.Restaurant, error) {
	var tree *models.Restaurant
	err := e.gw.InTx(ctx, func(tx Tx) error {
		if err := e.requireOwned(ctx, tx, userID, restaurantID); err != nil {
			return err
		}
		cat, err := tx.CategoryByID(ctx, restaurantID, categoryID)
		if err != nil {
			return err
		}
		if cat == nil {
			return NotFoundf("category %d", categoryID)
		}
		if err := tx.SetDishOrder(ctx, restaurantID, categoryID, orderedIDs); err != nil {
			return err
		}
		tree, err = tx.LoadTree(ctx, restaurantID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return tree, nil
}

// requireOwned fails with not-found for missing and foreign restaurants
// alike, so callers cannot probe for other users' ids.
func (e *Engine) requireOwned(ctx context.Context, tx Tx, userID, restaurantID uint) error {
	r, err := tx.RestaurantByID(ctx, restaurantID)
	if err != nil {
		return err
	}
	if r == nil || r.OwnerID != userID {
		return NotFoundf("restaurant %d", restaurantID)
	}
	return nil
}

// --- phase 1 ---

func (e *Engine) upsertRestaurant(ctx context.Context, tx Tx, userID uint, draft models.RestaurantDraft) (uint, error) {
	if durable, ok := draft.ID.Durable(); ok {
		existing, err := tx.RestaurantByID(ctx, durable)
		if err != nil {
			return 0, err
		}
		if existing == nil || existing.OwnerID != userID {
			return 0, NotFoundf("restaurant %d", durable)
		}

		slug := existing.Slug
		if existing.Name != draft.Name {
			slug, err = e.uniqueSlug(ctx, tx, draft.Name, durable)
			if err != nil {
				return 0, err
			}
		}

		existing.Name = draft.Name
		existing.Slug = slug
		existing.LogoKey = draft.LogoKey
		existing.AccentColor = draft.AccentColor
		existing.Currency = currencyOrDefault(draft.Currency)
		existing.Prompt = draft.Prompt
		existing.Phone = draft.Phone
		existing.Address = draft.Address
		if err := tx.UpdateRestaurant(ctx, existing); err != nil {
			return 0, err
		}
		return durable, nil
	}

	// Temporary or absent id: first save of this restaurant.
	slug, err := e.uniqueSlug(ctx, tx, draft.Name, 0)
	if err != nil {
		return 0, err
	}
	r := &models.Restaurant{
		OwnerID:     userID,
		Name:        draft.Name,
		Slug:        slug,
		LogoKey:     draft.LogoKey,
		AccentColor: draft.AccentColor,
		Currency:    currencyOrDefault(draft.Currency),
		Prompt:      draft.Prompt,
		Phone:       draft.Phone,
		Address:     draft.Address,
	}
	if err := tx.InsertRestaurant(ctx, r); err != nil {
		return 0, err
	}
	return r.ID, nil
}

// uniqueSlug derives a slug from name and re-checks uniqueness, retrying
// with random suffixes before giving up with a conflict.
func (e *Engine) uniqueSlug(ctx context.Context, tx Tx, name string, excludeID uint) (string, error) {
	base := utils.Slugify(name)
	candidate := base
	for i := 0; i < slugAttempts; i++ {
		taken, err := tx.SlugTaken(ctx, candidate, excludeID)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = utils.SlugWithSuffix(base)
	}
	return "", Conflictf("slug %q already in use", base)
}

// --- phase 2 ---

func (e *Engine) applyDeletions(ctx context.Context, tx Tx, restaurantID uint, changes models.ChangeSet) error {
	// Explicitly listed dishes go first so the operation does not depend on
	// the category cascade for them.
	if err := tx.DeleteDishes(ctx, restaurantID, changes.DeletedDishes); err != nil {
		return err
	}
	return tx.DeleteCategories(ctx, restaurantID, changes.DeletedCategories)
}

// --- phase 3 ---

func (e *Engine) reconcileCategories(ctx context.Context, tx Tx, restaurantID uint, req SaveRequest, resolver *Resolver) error {
	deleted := toSet(req.Changes.DeletedCategories)

	for pos, cat := range req.Restaurant.Categories {
		if !req.Changes.ContainsCategory(cat.ID) {
			continue
		}
		if durable, ok := cat.ID.Durable(); ok && deleted[durable] {
			// A delete always wins over a pending update.
			continue
		}

		if token, ok := cat.ID.Temp(); ok {
			existing, err := tx.CategoryByName(ctx, restaurantID, cat.Name)
			if err != nil {
				return err
			}
			if existing != nil {
				// Dedup: the client re-derived a category that already
				// exists; alias it instead of inserting a duplicate.
				resolver.Bind(token, existing.ID)
				continue
			}
			newCat := &models.Category{RestaurantID: restaurantID, Name: cat.Name, Order: pos}
			if err := tx.InsertCategory(ctx, newCat); err != nil {
				return err
			}
			resolver.Bind(token, newCat.ID)
			continue
		}

		durable, _ := cat.ID.Durable()
		row, err := tx.CategoryByID(ctx, restaurantID, durable)
		if err != nil {
			return err
		}
		if row == nil {
			return NotFoundf("category %d", durable)
		}
		if row.Name != cat.Name {
			other, err := tx.CategoryByName(ctx, restaurantID, cat.Name)
			if err != nil {
				return err
			}
			if other != nil && other.ID != durable {
				return Conflictf("category %q already exists", cat.Name)
			}
		}
		row.Name = cat.Name
		if err := tx.UpdateCategory(ctx, row); err != nil {
			return err
		}
	}
	return nil
}

// --- phase 4 ---

func (e *Engine) reconcileDishes(ctx context.Context, tx Tx, restaurantID uint, req SaveRequest, resolver *Resolver) ([]SkippedDish, error) {
	deleted := toSet(req.Changes.DeletedDishes)
	var skipped []SkippedDish

	for _, cat := range req.Restaurant.Categories {
		parentID, parentOK := resolver.Resolve(cat.ID)

		for pos, dish := range cat.Dishes {
			if !req.Changes.ContainsDish(dish.ID) {
				continue
			}
			if durable, ok := dish.ID.Durable(); ok && deleted[durable] {
				continue
			}

			if !parentOK {
				// Never write a dish with a still-temporary category
				// reference: skip it and keep the rest of the save going.
				skipped = append(skipped, SkippedDish{
					ID:     dish.ID,
					Title:  dish.Title,
					Reason: fmt.Sprintf("category %s could not be resolved", cat.ID),
				})
				e.logger.Warn("dish skipped: unresolved category reference",
					zap.String("dish_id", dish.ID.String()),
					zap.String("category_id", cat.ID.String()),
				)
				continue
			}

			price, err := utils.NormalizePrice(dish.Price)
			if err != nil {
				return nil, Validationf("dish %q: %v", dish.Title, err)
			}

			if token, ok := dish.ID.Temp(); ok {
				newDish := &models.Dish{
					CategoryID:  parentID,
					Title:       dish.Title,
					Description: dish.Description,
					Price:       price,
					ImageKey:    dish.ImageKey,
					Order:       pos,
				}
				if err := tx.InsertDish(ctx, newDish); err != nil {
					return nil, err
				}
				resolver.Bind(token, newDish.ID)
				continue
			}

			durable, _ := dish.ID.Durable()
			row, err := tx.DishByID(ctx, restaurantID, durable)
			if err != nil {
				return nil, err
			}
			if row == nil {
				return nil, NotFoundf("dish %d", durable)
			}
			row.CategoryID = parentID // a dish may have moved categories
			row.Title = dish.Title
			row.Description = dish.Description
			row.Price = price
			row.ImageKey = dish.ImageKey
			if err := tx.UpdateDish(ctx, row); err != nil {
				return nil, err
			}
		}
	}
	return skipped, nil
}

// --- phase 5 ---

func (e *Engine) writeOrders(ctx context.Context, tx Tx, restaurantID uint, draft models.RestaurantDraft, resolver *Resolver) error {
	catIDs := make([]models.ID, 0, len(draft.Categories))
	for _, cat := range draft.Categories {
		catIDs = append(catIDs, cat.ID)
	}
	if err := tx.SetCategoryOrder(ctx, restaurantID, resolver.ResolveList(catIDs)); err != nil {
		return err
	}

	for _, cat := range draft.Categories {
		parentID, ok := resolver.Resolve(cat.ID)
		if !ok {
			continue
		}
		dishIDs := make([]models.ID, 0, len(cat.Dishes))
		for _, dish := range cat.Dishes {
			dishIDs = append(dishIDs, dish.ID)
		}
		if err := tx.SetDishOrder(ctx, restaurantID, parentID, resolver.ResolveList(dishIDs)); err != nil {
			return err
		}
	}
	return nil
}

// --- validation ---

func validateSave(userID uint, req SaveRequest) error {
	if userID == 0 {
		return Validationf("missing caller identity")
	}
	if req.Restaurant.Name == "" {
		return Validationf("restaurant name is required")
	}
	// Temporary tokens must be unique across the whole tree: the resolver
	// keys bindings by token, so a reused token would alias two entities.
	seenTokens := make(map[string]bool)
	for _, cat := range req.Restaurant.Categories {
		if cat.ID.IsZero() {
			return Validationf("category %q has no identifier", cat.Name)
		}
		if token, ok := cat.ID.Temp(); ok {
			if seenTokens[token] {
				return Validationf("temporary id %q used more than once", token)
			}
			seenTokens[token] = true
		}
		if req.Changes.ContainsCategory(cat.ID) && cat.Name == "" {
			return Validationf("category name is required")
		}
		for _, dish := range cat.Dishes {
			if dish.ID.IsZero() {
				return Validationf("dish %q has no identifier", dish.Title)
			}
			if token, ok := dish.ID.Temp(); ok {
				if seenTokens[token] {
					return Validationf("temporary id %q used more than once", token)
				}
				seenTokens[token] = true
			}
			if !req.Changes.ContainsDish(dish.ID) {
				continue
			}
			if dish.Title == "" {
				return Validationf("dish title is required")
			}
			if _, err := utils.NormalizePrice(dish.Price); err != nil {
				return Validationf("dish %q: %v", dish.Title, err)
			}
		}
	}
	return nil
}

func currencyOrDefault(c string) string {
	if c == "" {
		return "USD"
	}
	return c
}

func toSet(ids []uint) map[uint]bool {
	set := make(map[uint]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
