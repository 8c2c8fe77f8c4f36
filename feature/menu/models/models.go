package models

import "time"

// Restaurant is the root of a menu tree. Owned by exactly one user account;
// created on first save and never hard-deleted by the save flow.
type Restaurant struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	OwnerID     uint   `gorm:"index;not null" json:"ownerId"`
	Name        string `gorm:"size:120;not null" json:"name"`
	Slug        string `gorm:"size:140;uniqueIndex;not null" json:"slug"`
	LogoKey     string `gorm:"size:255" json:"logoKey,omitempty"`
	AccentColor string `gorm:"size:16" json:"accentColor,omitempty"`
	Currency    string `gorm:"size:8;default:USD" json:"currency"`
	Prompt      string `gorm:"type:text" json:"prompt,omitempty"`
	Phone       string `gorm:"size:40" json:"phone,omitempty"`
	Address     string `gorm:"size:255" json:"address,omitempty"`

	Categories []Category `gorm:"constraint:OnDelete:CASCADE" json:"categories"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Category is a named group of dishes within one restaurant.
// (restaurant, name) uniqueness is enforced at write time by the dedup
// matcher, not by a DB constraint. Order is a zero-based dense sequence per
// restaurant with intended-order semantics only.
type Category struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	RestaurantID uint   `gorm:"index;not null" json:"restaurantId"`
	Name         string `gorm:"size:120;not null" json:"name"`
	Order        int    `gorm:"column:order;not null;default:0" json:"order"`

	Dishes []Dish `gorm:"constraint:OnDelete:CASCADE" json:"dishes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Dish is a single menu item. Price is stored as text to avoid floating
// point rounding. Duplicate titles within a category are permitted.
type Dish struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	CategoryID  uint   `gorm:"index;not null" json:"categoryId"`
	Title       string `gorm:"size:160;not null" json:"title"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	Price       string `gorm:"size:32;not null" json:"price"`
	ImageKey    string `gorm:"size:255" json:"imageKey,omitempty"`
	Order       int    `gorm:"column:order;not null;default:0" json:"order"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// All returns every model that participates in schema migration.
func All() []any {
	return []any{&Restaurant{}, &Category{}, &Dish{}}
}
