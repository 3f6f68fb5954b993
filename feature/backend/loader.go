package backend

import (
	"flatacuties/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the backend feature.
func NewFeature(db *gorm.DB, images storage.Client, bucket string, cfg Config, logger *zap.Logger) *Feature {
	svc := NewService(NewRepository(db), images, bucket, cfg, logger)
	return &Feature{service: svc, handler: NewHandler(svc, logger)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "backend"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service returns the feature's service.
func (f *Feature) Service() *Service {
	return f.service
}
