package menu

import (
	"menu-builder/core/loader"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"menu-builder/feature/menu/reconcile"
)

// Feature wires the menu service into the application.
type Feature struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewFeature creates the menu feature.
func NewFeature(db *gorm.DB, logger *zap.Logger) *Feature {
	return &Feature{db: db, logger: logger}
}

// Name implements loader.Feature.
func (f *Feature) Name() string { return "menu" }

// IsEnabled implements loader.Feature. The menu feature requires a database.
func (f *Feature) IsEnabled() bool { return f.db != nil }

// Load implements loader.Feature.
func (f *Feature) Load(app fiber.Router) error {
	gw := reconcile.NewGormGateway(f.db)
	service := NewService(gw, f.logger)
	handler := NewHandler(service, f.logger)
	handler.RegisterRoutes(app)
	return nil
}

var _ loader.Feature = (*Feature)(nil)
