package leads

import (
	"context"
	"io"

	"github.com/stevetowers08/leadflow-sub006/core/identity"
	"github.com/stevetowers08/leadflow-sub006/core/logger"
	"github.com/stevetowers08/leadflow-sub006/feature/leads/importer"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for lead imports.
type Handler struct {
	service      *Service
	defaultActor string
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, defaultActor string) *Handler {
	return &Handler{service: service, defaultActor: defaultActor}
}

// RegisterRoutes registers the leads routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/leads")
	group.Post("/import", h.HandleImport)
}

// HandleImport imports leads from an uploaded delimited-text file.
// @Summary Import Leads
// @Description Upload a .csv file of leads; rows are validated, deduplicated and committed in batches. The response details every rejected or skipped row.
// @Tags leads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file (max 10 MB)"
// @Param keep_duplicates query bool false "Import rows even when a matching lead already exists"
// @Param X-Actor-ID header string false "Actor recorded as owner of created records"
// @Success 200 {object} importer.Result "Import Result"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /leads/import [post]
func (h *Handler) HandleImport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "missing file upload, expected multipart field 'file'",
		})
	}
	if fileHeader.Size > MaxUploadSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "file exceeds the 10 MB upload limit",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		l.Error("Failed to open upload", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		l.Error("Failed to read upload", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var ctx context.Context = c.Context()
	if actor := c.Get("X-Actor-ID", h.defaultActor); actor != "" {
		ctx = identity.WithActor(ctx, actor)
	}

	opts := importer.Options{
		KeepDuplicates: c.QueryBool("keep_duplicates"),
	}

	result, err := h.service.Import(ctx, fileHeader.Filename, content, opts)
	if err != nil {
		l.Warn("Import rejected", zap.String("file", fileHeader.Filename), zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	l.Info("Import finished",
		zap.String("file", fileHeader.Filename),
		zap.Int("created", result.Created),
		zap.Int("failed", result.Failed),
		zap.Int("skipped", result.Skipped),
	)
	return c.JSON(result)
}
