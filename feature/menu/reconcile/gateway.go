package reconcile

import (
	"context"

	"menu-builder/feature/menu/models"
)

// Gateway is the transactional boundary the engine drives. One save runs
// inside exactly one InTx call: either every phase commits or none do.
type Gateway interface {
	// InTx runs fn inside a transaction, committing when fn returns nil and
	// rolling back otherwise.
	InTx(ctx context.Context, fn func(tx Tx) error) error
}

// Tx exposes the store primitives available inside one transaction, scoped
// so that a save can never touch another restaurant's rows.
//
// Lookup methods return (nil, nil) when no row matches; errors are reserved
// for store failures.
type Tx interface {
	// RestaurantByID fetches a restaurant regardless of owner; the engine
	// performs the ownership check so it can distinguish the error kind.
	RestaurantByID(ctx context.Context, id uint) (*models.Restaurant, error)
	// SlugTaken reports whether a different restaurant already uses slug.
	SlugTaken(ctx context.Context, slug string, excludeID uint) (bool, error)
	InsertRestaurant(ctx context.Context, r *models.Restaurant) error
	UpdateRestaurant(ctx context.Context, r *models.Restaurant) error

	// CategoryByName is the dedup matcher lookup: exact, case-sensitive name
	// match among the restaurant's live categories.
	CategoryByName(ctx context.Context, restaurantID uint, name string) (*models.Category, error)
	CategoryByID(ctx context.Context, restaurantID, id uint) (*models.Category, error)
	InsertCategory(ctx context.Context, c *models.Category) error
	UpdateCategory(ctx context.Context, c *models.Category) error
	// DeleteCategories removes the categories and all their dishes. Cascade
	// is this method's contract, never an assumption about the store schema.
	DeleteCategories(ctx context.Context, restaurantID uint, ids []uint) error

	DishByID(ctx context.Context, restaurantID, id uint) (*models.Dish, error)
	InsertDish(ctx context.Context, d *models.Dish) error
	UpdateDish(ctx context.Context, d *models.Dish) error
	DeleteDishes(ctx context.Context, restaurantID uint, ids []uint) error

	// SetCategoryOrder rewrites the order column for the restaurant's
	// categories in one pass; position in orderedIDs is the new order value.
	SetCategoryOrder(ctx context.Context, restaurantID uint, orderedIDs []uint) error
	// SetDishOrder does the same for one category's dishes.
	SetDishOrder(ctx context.Context, restaurantID, categoryID uint, orderedIDs []uint) error

	// LoadTree re-reads the full restaurant tree ordered by the order column.
	LoadTree(ctx context.Context, restaurantID uint) (*models.Restaurant, error)
}
