package models

import (
	"strings"

	"github.com/google/uuid"
)

// RestaurantDraft is the client-held restaurant with its full category tree
// in client-desired order. The ID is zero or temporary for a restaurant not
// yet persisted.
type RestaurantDraft struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	LogoKey     string `json:"logoKey,omitempty"`
	AccentColor string `json:"accentColor,omitempty"`
	Currency    string `json:"currency,omitempty"`
	Prompt      string `json:"prompt,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`

	Categories []CategoryDraft `json:"categories"`
}

// CategoryDraft is one category in the draft tree; slice position among its
// siblings is the desired display order.
type CategoryDraft struct {
	ID     ID          `json:"id"`
	Name   string      `json:"name"`
	Dishes []DishDraft `json:"dishes"`
}

// DishDraft is one dish in the draft tree.
type DishDraft struct {
	ID          ID     `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price"`
	ImageKey    string `json:"imageKey,omitempty"`
}

// ChangeSet carries the four change-tracking sets for one edit session.
// Deleted sets hold durable identifiers only; deleting a never-persisted
// entity is a pure client-side no-op.
type ChangeSet struct {
	ChangedCategories []ID   `json:"changedCategories"`
	ChangedDishes     []ID   `json:"changedDishes"`
	DeletedCategories []uint `json:"deletedCategories"`
	DeletedDishes     []uint `json:"deletedDishes"`
}

// ContainsCategory reports whether the category id is marked changed.
func (c ChangeSet) ContainsCategory(id ID) bool { return containsID(c.ChangedCategories, id) }

// ContainsDish reports whether the dish id is marked changed.
func (c ChangeSet) ContainsDish(id ID) bool { return containsID(c.ChangedDishes, id) }

func containsID(ids []ID, id ID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// Draft is the editable in-memory tree plus its change tracking. It models
// the client edit session: adding assigns a temporary id and marks the entity
// changed; editing marks it changed; deleting removes it from the tree and,
// for durable entities, records the deletion (a delete always wins over a
// pending update). Deleting a category does not enumerate its dishes; the
// save derives dish deletions transitively.
type Draft struct {
	Restaurant RestaurantDraft
	Changes    ChangeSet
}

// NewDraft starts an edit session from a persisted tree (or a zero
// Restaurant for a brand new menu).
func NewDraft(r Restaurant) *Draft {
	d := &Draft{}
	if r.ID != 0 {
		d.Restaurant.ID = DurableID(r.ID)
	}
	d.Restaurant.Name = r.Name
	d.Restaurant.LogoKey = r.LogoKey
	d.Restaurant.AccentColor = r.AccentColor
	d.Restaurant.Currency = r.Currency
	d.Restaurant.Prompt = r.Prompt
	d.Restaurant.Phone = r.Phone
	d.Restaurant.Address = r.Address
	for _, cat := range r.Categories {
		cd := CategoryDraft{ID: DurableID(cat.ID), Name: cat.Name}
		for _, dish := range cat.Dishes {
			cd.Dishes = append(cd.Dishes, DishDraft{
				ID:          DurableID(dish.ID),
				Title:       dish.Title,
				Description: dish.Description,
				Price:       dish.Price,
				ImageKey:    dish.ImageKey,
			})
		}
		d.Restaurant.Categories = append(d.Restaurant.Categories, cd)
	}
	return d
}

// AddCategory appends a new category with a fresh temporary id and marks it changed.
func (d *Draft) AddCategory(name string) ID {
	id := newTempID()
	d.Restaurant.Categories = append(d.Restaurant.Categories, CategoryDraft{ID: id, Name: name})
	d.Changes.ChangedCategories = append(d.Changes.ChangedCategories, id)
	return id
}

// AddDish appends a new dish under the given category and marks it changed.
// Returns the zero ID if the category is not in the tree.
func (d *Draft) AddDish(categoryID ID, dish DishDraft) ID {
	for i := range d.Restaurant.Categories {
		if d.Restaurant.Categories[i].ID != categoryID {
			continue
		}
		dish.ID = newTempID()
		d.Restaurant.Categories[i].Dishes = append(d.Restaurant.Categories[i].Dishes, dish)
		d.Changes.ChangedDishes = append(d.Changes.ChangedDishes, dish.ID)
		return dish.ID
	}
	return ID{}
}

// EditCategory renames a category in place and marks it changed.
func (d *Draft) EditCategory(id ID, name string) bool {
	for i := range d.Restaurant.Categories {
		if d.Restaurant.Categories[i].ID == id {
			d.Restaurant.Categories[i].Name = name
			d.markCategoryChanged(id)
			return true
		}
	}
	return false
}

// EditDish mutates a dish's fields in place and marks it changed.
// The dish keeps its identity and position.
func (d *Draft) EditDish(id ID, mutate func(*DishDraft)) bool {
	for i := range d.Restaurant.Categories {
		dishes := d.Restaurant.Categories[i].Dishes
		for j := range dishes {
			if dishes[j].ID == id {
				mutate(&dishes[j])
				dishes[j].ID = id // identity is not editable
				d.markDishChanged(id)
				return true
			}
		}
	}
	return false
}

// DeleteCategory removes a category (and its subtree) from the draft.
// A durable id moves into the deleted set and out of the changed set; its
// dishes are not enumerated, the save cascades them.
func (d *Draft) DeleteCategory(id ID) bool {
	for i := range d.Restaurant.Categories {
		if d.Restaurant.Categories[i].ID != id {
			continue
		}
		d.Restaurant.Categories = append(d.Restaurant.Categories[:i], d.Restaurant.Categories[i+1:]...)
		d.Changes.ChangedCategories = removeID(d.Changes.ChangedCategories, id)
		if durable, ok := id.Durable(); ok {
			d.Changes.DeletedCategories = append(d.Changes.DeletedCategories, durable)
		}
		return true
	}
	return false
}

// DeleteDish removes a dish from the draft. A durable id moves into the
// deleted set and out of the changed set.
func (d *Draft) DeleteDish(id ID) bool {
	for i := range d.Restaurant.Categories {
		dishes := d.Restaurant.Categories[i].Dishes
		for j := range dishes {
			if dishes[j].ID != id {
				continue
			}
			d.Restaurant.Categories[i].Dishes = append(dishes[:j], dishes[j+1:]...)
			d.Changes.ChangedDishes = removeID(d.Changes.ChangedDishes, id)
			if durable, ok := id.Durable(); ok {
				d.Changes.DeletedDishes = append(d.Changes.DeletedDishes, durable)
			}
			return true
		}
	}
	return false
}

// MoveCategory repositions a category among its siblings.
func (d *Draft) MoveCategory(id ID, toIndex int) bool {
	cats := d.Restaurant.Categories
	for i := range cats {
		if cats[i].ID != id {
			continue
		}
		if toIndex < 0 || toIndex >= len(cats) {
			return false
		}
		moved := cats[i]
		cats = append(cats[:i], cats[i+1:]...)
		cats = append(cats[:toIndex], append([]CategoryDraft{moved}, cats[toIndex:]...)...)
		d.Restaurant.Categories = cats
		return true
	}
	return false
}

func (d *Draft) markCategoryChanged(id ID) {
	if !containsID(d.Changes.ChangedCategories, id) {
		d.Changes.ChangedCategories = append(d.Changes.ChangedCategories, id)
	}
}

func (d *Draft) markDishChanged(id ID) {
	if !containsID(d.Changes.ChangedDishes, id) {
		d.Changes.ChangedDishes = append(d.Changes.ChangedDishes, id)
	}
}

func removeID(ids []ID, id ID) []ID {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

func newTempID() ID {
	return TempID(strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
}
