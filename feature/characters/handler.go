package characters

import (
	"errors"
	"strconv"

	"flatacuties/core/logger"
	"flatacuties/feature/characters/models"
	"flatacuties/feature/characters/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// VoteResponse is returned by the vote endpoints.
type VoteResponse struct {
	ID    int `json:"id"`
	Votes int `json:"votes"`
}

// CreateResponse is returned by the create endpoint.
type CreateResponse struct {
	Character models.Character `json:"character"`
	Confirmed bool             `json:"confirmed"`
}

// Handler handles HTTP requests for the session.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the session routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/session")
	group.Get("/characters", h.HandleList)
	group.Post("/characters", h.HandleCreate)
	group.Post("/characters/refresh", h.HandleRefresh)
	group.Get("/current", h.HandleCurrent)
	group.Put("/current/:id", h.HandleSelect)
	group.Post("/current/votes", h.HandleVote)
	group.Delete("/current/votes", h.HandleReset)
	group.Get("/status", h.HandleStatus)
}

// HandleList returns the cached characters.
// @Summary List Characters
// @Description Returns the session's cached characters in order.
// @Tags session
// @Produce json
// @Success 200 {array} models.Character
// @Router /session/characters [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	return c.JSON(h.service.List())
}

// HandleRefresh reloads the characters from the remote.
// @Summary Refresh Characters
// @Description Replaces the cache with the remote collection and selects the first character.
// @Tags session
// @Produce json
// @Success 200 {array} models.Character
// @Failure 502 {object} map[string]string "Remote unavailable"
// @Router /session/characters/refresh [post]
func (h *Handler) HandleRefresh(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	if err := h.service.Refresh(c.UserContext()); err != nil {
		l.Error("Refresh failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(h.service.List())
}

// HandleCreate adds a character.
// @Summary Create Character
// @Description Creates a character. If the remote is read-only or unreachable the character is kept locally.
// @Tags session
// @Accept json
// @Produce json
// @Param character body models.Candidate true "New character"
// @Success 201 {object} CreateResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /session/characters [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	var candidate models.Candidate
	if err := c.BodyParser(&candidate); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	res, err := h.service.Create(c.UserContext(), candidate)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCandidate) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(CreateResponse{Character: res.Character, Confirmed: res.Confirmed})
}

// HandleCurrent returns the current selection.
// @Summary Current Character
// @Tags session
// @Produce json
// @Success 200 {object} models.Character
// @Failure 404 {object} map[string]string "Nothing selected"
// @Router /session/current [get]
func (h *Handler) HandleCurrent(c *fiber.Ctx) error {
	cur, ok := h.service.Current()
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no character selected"})
	}
	return c.JSON(cur)
}

// HandleSelect makes a character current.
// @Summary Select Character
// @Tags session
// @Produce json
// @Param id path int true "Character ID"
// @Success 200 {object} models.Character
// @Failure 400 {object} map[string]string "Invalid id"
// @Failure 502 {object} map[string]string "Lookup failed"
// @Router /session/current/{id} [put]
func (h *Handler) HandleSelect(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	rec, err := h.service.Select(c.UserContext(), id)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(rec)
}

// HandleVote adds a vote to the current selection.
// @Summary Vote
// @Description Adds one vote immediately; persistence happens in the background.
// @Tags session
// @Produce json
// @Success 202 {object} VoteResponse
// @Failure 409 {object} map[string]string "Nothing selected"
// @Router /session/current/votes [post]
func (h *Handler) HandleVote(c *fiber.Ctx) error {
	vote, err := h.service.Vote(c.UserContext())
	return h.voteResponse(c, vote, err)
}

// HandleReset resets the current selection's votes.
// @Summary Reset Votes
// @Description Sets the votes to zero immediately; persistence happens in the background.
// @Tags session
// @Produce json
// @Success 202 {object} VoteResponse
// @Failure 409 {object} map[string]string "Nothing selected"
// @Router /session/current/votes [delete]
func (h *Handler) HandleReset(c *fiber.Ctx) error {
	vote, err := h.service.Reset(c.UserContext())
	return h.voteResponse(c, vote, err)
}

func (h *Handler) voteResponse(c *fiber.Ctx, vote *reconcile.Vote, err error) error {
	if err != nil {
		if reconcile.IsNoSelection(err) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusAccepted).JSON(VoteResponse{ID: vote.ID, Votes: vote.Votes})
}

// HandleStatus returns the latest status notification.
// @Summary Status
// @Tags session
// @Produce json
// @Success 200 {object} notify.Notification
// @Success 204 "No status yet"
// @Router /session/status [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	n, ok := h.service.Status()
	if !ok {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(n)
}
