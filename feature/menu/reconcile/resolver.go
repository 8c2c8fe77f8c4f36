package reconcile

import "menu-builder/feature/menu/models"

// Resolver maps temporary identifiers to durable ones as inserts happen
// during a save. Durable ids pass through unchanged, so every reference and
// ordering entry can be funneled through Resolve exactly once.
type Resolver struct {
	ids map[string]uint
}

// NewResolver creates an empty resolver for one save.
func NewResolver() *Resolver {
	return &Resolver{ids: make(map[string]uint)}
}

// Bind records the durable id assigned to a temporary token.
func (r *Resolver) Bind(token string, durable uint) {
	r.ids[token] = durable
}

// Resolve returns the durable identifier for id. Durable ids are returned
// as-is; temporary ids are looked up. ok is false for an unmapped temporary
// id or a zero id — the caller must not write a reference in that case.
func (r *Resolver) Resolve(id models.ID) (uint, bool) {
	if durable, ok := id.Durable(); ok {
		return durable, true
	}
	if token, ok := id.Temp(); ok {
		durable, ok := r.ids[token]
		return durable, ok
	}
	return 0, false
}

// ResolveList maps an ordered id list to durable ids, dropping entries that
// do not resolve. Used by the order writer, where a skipped entity simply
// does not occupy a position.
func (r *Resolver) ResolveList(ids []models.ID) []uint {
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if durable, ok := r.Resolve(id); ok {
			out = append(out, durable)
		}
	}
	return out
}
