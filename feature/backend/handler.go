package backend

import (
	"errors"
	"strconv"

	"flatacuties/core/logger"
	"flatacuties/core/utils"
	"flatacuties/feature/characters/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the backend.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the backend routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/characters")
	group.Get("/", h.HandleList)
	group.Get("/:id", h.HandleGet)
	group.Patch("/:id", h.HandlePatch)
	group.Post("/", h.HandleCreate)

	app.Get("/images/*", h.HandleGetImage)
	app.Put("/images/*", h.HandlePutImage)
}

func errorBody(err error) fiber.Map {
	return fiber.Map{"error": err.Error()}
}

// writeError maps service errors to status codes. Unknown errors are logged as 500.
func (h *Handler) writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrImageNotFound), errors.Is(err, ErrImagesDisabled):
		// json-server answers unknown ids with an empty object
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{})
	case errors.Is(err, ErrReadOnly):
		return c.Status(fiber.StatusForbidden).JSON(errorBody(err))
	case errors.Is(err, models.ErrInvalidCandidate):
		return c.Status(fiber.StatusBadRequest).JSON(errorBody(err))
	}
	logger.WithRayID(h.logger, c).Error("Backend request failed", zap.String("path", c.Path()), zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(errorBody(err))
}

func (h *Handler) parseID(c *fiber.Ctx) (int, bool) {
	id, err := strconv.Atoi(c.Params("id"))
	return id, err == nil
}

// HandleList returns the whole collection.
func (h *Handler) HandleList(c *fiber.Ctx) error {
	records, err := h.service.List(c.Context())
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(records)
}

// HandleGet returns one character.
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	id, ok := h.parseID(c)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{})
	}
	rec, err := h.service.Get(c.Context(), id)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(rec)
}

// HandlePatch updates the vote count of one character.
func (h *Handler) HandlePatch(c *fiber.Ctx) error {
	if h.service.ReadOnly() {
		return h.writeError(c, ErrReadOnly)
	}
	id, ok := h.parseID(c)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{})
	}

	var body struct {
		Votes any `json:"votes"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorBody(err))
	}
	if body.Votes == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "votes is required"})
	}

	rec, err := h.service.UpdateVotes(c.Context(), id, utils.ToVotes(body.Votes))
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(rec)
}

// HandleCreate adds a character.
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	if h.service.ReadOnly() {
		return h.writeError(c, ErrReadOnly)
	}

	var body models.Character
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorBody(err))
	}
	candidate, err := models.Candidate{Name: body.Name, Image: body.Image}.Validate()
	if err != nil {
		return h.writeError(c, err)
	}

	rec := candidate.Record(0)
	rec.Votes = body.Votes
	created, err := h.service.Create(c.Context(), rec)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleGetImage streams an image from object storage.
func (h *Handler) HandleGetImage(c *fiber.Ctx) error {
	obj, info, err := h.service.Image(c.Context(), c.Params("*"))
	if err != nil {
		return h.writeError(c, err)
	}

	if info.ContentType != "" {
		c.Set(fiber.HeaderContentType, info.ContentType)
	}
	// fasthttp closes obj once the body is written
	return c.SendStream(obj, int(info.Size))
}

// HandlePutImage uploads the request body as an image.
func (h *Handler) HandlePutImage(c *fiber.Ctx) error {
	key, err := h.service.PutImage(c.Context(), c.Params("*"), c.Get(fiber.HeaderContentType), c.Body())
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"key": key})
}
