package menu

import (
	"context"
	"time"

	"menu-builder/feature/menu/models"
	"menu-builder/feature/menu/reconcile"

	"go.uber.org/zap"
)

// DefaultCacheTTL is how long a read-back tree is served from memory.
const DefaultCacheTTL = 30 * time.Second

// Service exposes the menu operations: full draft save, standalone sibling
// reordering, and cached tree reads.
type Service struct {
	engine *reconcile.Engine
	gw     reconcile.Gateway
	logger *zap.Logger
	cache  *treeCache
}

// NewService creates a menu service over the given gateway.
func NewService(gw reconcile.Gateway, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		engine: reconcile.NewEngine(gw, logger),
		gw:     gw,
		logger: logger,
		cache:  newTreeCache(DefaultCacheTTL),
	}
}

// Save reconciles a full draft for the caller and returns the canonical
// post-save tree plus any skipped dishes.
func (s *Service) Save(ctx context.Context, userID uint, req reconcile.SaveRequest) (*reconcile.SaveResult, error) {
	result, err := s.engine.Save(ctx, userID, req)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(result.Restaurant.ID)
	return result, nil
}

// ReorderCategories rewrites category order for one restaurant.
func (s *Service) ReorderCategories(ctx context.Context, userID, restaurantID uint, orderedIDs []uint) (*models.Restaurant, error) {
	tree, err := s.engine.ReorderCategories(ctx, userID, restaurantID, orderedIDs)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(restaurantID)
	return tree, nil
}

// ReorderDishes rewrites dish order for one category.
func (s *Service) ReorderDishes(ctx context.Context, userID, restaurantID, categoryID uint, orderedIDs []uint) (*models.Restaurant, error) {
	tree, err := s.engine.ReorderDishes(ctx, userID, restaurantID, categoryID, orderedIDs)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(restaurantID)
	return tree, nil
}

// Menu returns the caller's restaurant tree in display order, from cache
// when fresh. Ownership is checked against the returned tree so a cache hit
// cannot leak another user's menu.
func (s *Service) Menu(ctx context.Context, userID, restaurantID uint) (*models.Restaurant, error) {
	tree, err := s.cache.Get(restaurantID, func() (*models.Restaurant, error) {
		var tree *models.Restaurant
		err := s.gw.InTx(ctx, func(tx reconcile.Tx) error {
			var err error
			tree, err = tx.LoadTree(ctx, restaurantID)
			return err
		})
		if err != nil {
			return nil, err
		}
		return tree, nil
	})
	if err != nil {
		return nil, err
	}
	if tree == nil || tree.OwnerID != userID {
		return nil, reconcile.NotFoundf("restaurant %d", restaurantID)
	}
	return tree, nil
}
