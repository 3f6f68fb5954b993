package characters

import (
	"flatacuties/core/notify"
	"flatacuties/feature/characters/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the session feature around an engine.
func NewFeature(engine *reconcile.Engine, recorder *notify.Recorder, logger *zap.Logger) *Feature {
	svc := NewService(engine, recorder, logger)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "characters"
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

// Service returns the feature's session service.
func (f *Feature) Service() *Service {
	return f.service
}
