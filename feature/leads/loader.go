package leads

import (
	"github.com/stevetowers08/leadflow-sub006/core/identity"
	"github.com/stevetowers08/leadflow-sub006/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Leads feature. client may be nil when upload
// archiving is disabled; defaultActor is used when a request names no actor.
func NewFeature(db *gorm.DB, client storage.Client, bucket string, defaultActor string, logger *zap.Logger) *Feature {
	svc := NewService(NewStore(db), identity.FromContext(), client, bucket, logger)
	h := NewHandler(svc, defaultActor)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "leads"
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
