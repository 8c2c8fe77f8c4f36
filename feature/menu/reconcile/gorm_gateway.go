package reconcile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"menu-builder/feature/menu/models"

	"gorm.io/gorm"
)

// GormGateway implements Gateway on a GORM connection (MySQL in production,
// SQLite in tests).
type GormGateway struct {
	db *gorm.DB
}

// NewGormGateway wraps a connected *gorm.DB.
func NewGormGateway(db *gorm.DB) *GormGateway {
	return &GormGateway{db: db}
}

// InTx runs fn in one transaction.
func (g *GormGateway) InTx(ctx context.Context, fn func(tx Tx) error) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTx{db: tx})
	})
}

type gormTx struct {
	db *gorm.DB
}

func (t *gormTx) RestaurantByID(ctx context.Context, id uint) (*models.Restaurant, error) {
	var r models.Restaurant
	err := t.db.WithContext(ctx).First(&r, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("restaurant lookup: %w", err)
	}
	return &r, nil
}

func (t *gormTx) SlugTaken(ctx context.Context, slug string, excludeID uint) (bool, error) {
	var count int64
	err := t.db.WithContext(ctx).Model(&models.Restaurant{}).
		Where("slug = ? AND id <> ?", slug, excludeID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("slug check: %w", err)
	}
	return count > 0, nil
}

func (t *gormTx) InsertRestaurant(ctx context.Context, r *models.Restaurant) error {
	if err := t.db.WithContext(ctx).Create(r).Error; err != nil {
		return fmt.Errorf("restaurant insert: %w", err)
	}
	return nil
}

func (t *gormTx) UpdateRestaurant(ctx context.Context, r *models.Restaurant) error {
	err := t.db.WithContext(ctx).Model(&models.Restaurant{}).
		Where("id = ?", r.ID).
		Updates(map[string]any{
			"name":         r.Name,
			"slug":         r.Slug,
			"logo_key":     r.LogoKey,
			"accent_color": r.AccentColor,
			"currency":     r.Currency,
			"prompt":       r.Prompt,
			"phone":        r.Phone,
			"address":      r.Address,
		}).Error
	if err != nil {
		return fmt.Errorf("restaurant update: %w", err)
	}
	return nil
}

func (t *gormTx) CategoryByName(ctx context.Context, restaurantID uint, name string) (*models.Category, error) {
	var c models.Category
	// Exact binary match: the dedup contract is case- and whitespace-sensitive,
	// so MySQL's default collation must not fold the comparison.
	query := "restaurant_id = ? AND name = ?"
	if t.db.Dialector.Name() == "mysql" {
		query = "restaurant_id = ? AND BINARY name = ?"
	}
	err := t.db.WithContext(ctx).Where(query, restaurantID, name).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("category name lookup: %w", err)
	}
	return &c, nil
}

func (t *gormTx) CategoryByID(ctx context.Context, restaurantID, id uint) (*models.Category, error) {
	var c models.Category
	err := t.db.WithContext(ctx).
		Where("restaurant_id = ? AND id = ?", restaurantID, id).
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("category lookup: %w", err)
	}
	return &c, nil
}

func (t *gormTx) InsertCategory(ctx context.Context, c *models.Category) error {
	if err := t.db.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("category insert: %w", err)
	}
	return nil
}

func (t *gormTx) UpdateCategory(ctx context.Context, c *models.Category) error {
	err := t.db.WithContext(ctx).Model(&models.Category{}).
		Where("id = ? AND restaurant_id = ?", c.ID, c.RestaurantID).
		Update("name", c.Name).Error
	if err != nil {
		return fmt.Errorf("category update: %w", err)
	}
	return nil
}

func (t *gormTx) DeleteCategories(ctx context.Context, restaurantID uint, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	// Children first: cascade is this gateway's contract, not the schema's.
	err := t.db.WithContext(ctx).
		Where("category_id IN (SELECT id FROM categories WHERE restaurant_id = ? AND id IN ?)", restaurantID, ids).
		Delete(&models.Dish{}).Error
	if err != nil {
		return fmt.Errorf("category dish cascade: %w", err)
	}
	err = t.db.WithContext(ctx).
		Where("restaurant_id = ? AND id IN ?", restaurantID, ids).
		Delete(&models.Category{}).Error
	if err != nil {
		return fmt.Errorf("category delete: %w", err)
	}
	return nil
}

func (t *gormTx) DishByID(ctx context.Context, restaurantID, id uint) (*models.Dish, error) {
	var d models.Dish
	err := t.db.WithContext(ctx).
		Where("id = ? AND category_id IN (SELECT id FROM categories WHERE restaurant_id = ?)", id, restaurantID).
		First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("dish lookup: %w", err)
	}
	return &d, nil
}

func (t *gormTx) InsertDish(ctx context.Context, d *models.Dish) error {
	if err := t.db.WithContext(ctx).Create(d).Error; err != nil {
		return fmt.Errorf("dish insert: %w", err)
	}
	return nil
}

func (t *gormTx) UpdateDish(ctx context.Context, d *models.Dish) error {
	err := t.db.WithContext(ctx).Model(&models.Dish{}).
		Where("id = ?", d.ID).
		Updates(map[string]any{
			"category_id": d.CategoryID,
			"title":       d.Title,
			"description": d.Description,
			"price":       d.Price,
			"image_key":   d.ImageKey,
		}).Error
	if err != nil {
		return fmt.Errorf("dish update: %w", err)
	}
	return nil
}

func (t *gormTx) DeleteDishes(ctx context.Context, restaurantID uint, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	err := t.db.WithContext(ctx).
		Where("id IN ? AND category_id IN (SELECT id FROM categories WHERE restaurant_id = ?)", ids, restaurantID).
		Delete(&models.Dish{}).Error
	if err != nil {
		return fmt.Errorf("dish delete: %w", err)
	}
	return nil
}

func (t *gormTx) SetCategoryOrder(ctx context.Context, restaurantID uint, orderedIDs []uint) error {
	return t.writeOrder(ctx, "categories", "restaurant_id", restaurantID, orderedIDs)
}

func (t *gormTx) SetDishOrder(ctx context.Context, restaurantID, categoryID uint, orderedIDs []uint) error {
	// The category must belong to the restaurant; a mismatched scope writes nothing.
	cat, err := t.CategoryByID(ctx, restaurantID, categoryID)
	if err != nil {
		return err
	}
	if cat == nil {
		return nil
	}
	return t.writeOrder(ctx, "dishes", "category_id", categoryID, orderedIDs)
}

// writeOrder rewrites the order column of one sibling group in a single
// statement: position in orderedIDs becomes the zero-based order value.
// Backtick quoting is accepted by both MySQL and SQLite.
func (t *gormTx) writeOrder(ctx context.Context, table, scopeColumn string, scopeID uint, orderedIDs []uint) error {
	if len(orderedIDs) == 0 {
		return nil
	}

	var b strings.Builder
	args := make([]any, 0, len(orderedIDs)*2+2)
	fmt.Fprintf(&b, "UPDATE %s SET `order` = CASE id", table)
	for pos, id := range orderedIDs {
		b.WriteString(" WHEN ? THEN ?")
		args = append(args, id, pos)
	}
	fmt.Fprintf(&b, " END WHERE %s = ? AND id IN ?", scopeColumn)
	args = append(args, scopeID, orderedIDs)

	if err := t.db.WithContext(ctx).Exec(b.String(), args...).Error; err != nil {
		return fmt.Errorf("%s order write: %w", table, err)
	}
	return nil
}

func (t *gormTx) LoadTree(ctx context.Context, restaurantID uint) (*models.Restaurant, error) {
	var r models.Restaurant
	err := t.db.WithContext(ctx).
		Preload("Categories", func(db *gorm.DB) *gorm.DB {
			return db.Order("`order` ASC, id ASC")
		}).
		Preload("Categories.Dishes", func(db *gorm.DB) *gorm.DB {
			return db.Order("`order` ASC, id ASC")
		}).
		First(&r, restaurantID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("tree read-back: %w", err)
	}
	return &r, nil
}
