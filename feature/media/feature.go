package media

import (
	"context"
	"time"

	"menu-builder/core/loader"
	"menu-builder/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature wires media storage into the application.
type Feature struct {
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewFeature creates the media feature.
func NewFeature(client storage.Client, bucket string, logger *zap.Logger) *Feature {
	return &Feature{client: client, bucket: bucket, logger: logger}
}

// Name implements loader.Feature.
func (f *Feature) Name() string { return "media" }

// IsEnabled implements loader.Feature. Media requires a storage client.
func (f *Feature) IsEnabled() bool { return f.client != nil }

// Load implements loader.Feature.
func (f *Feature) Load(app fiber.Router) error {
	service := NewService(f.client, f.bucket, f.logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := service.EnsureBucket(ctx); err != nil {
		return err
	}

	NewHandler(service).RegisterRoutes(app)
	return nil
}

var _ loader.Feature = (*Feature)(nil)
