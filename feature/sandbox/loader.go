package sandbox

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	store   *Store
	handler *Handler
}

// NewFeature creates the sandbox feature backed by db.
func NewFeature(db *gorm.DB, logger *zap.Logger) *Feature {
	store := NewStore(db)
	svc := NewService(store, logger)
	return &Feature{store: store, handler: NewHandler(svc, logger)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "sandbox"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load migrates the store and registers the routes.
func (f *Feature) Load(app fiber.Router) error {
	if err := f.store.Migrate(); err != nil {
		return err
	}
	f.handler.RegisterRoutes(app)
	return nil
}
