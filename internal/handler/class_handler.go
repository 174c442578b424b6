package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/alhafizh-api/internal/dto"
	"github.com/noah-isme/alhafizh-api/internal/service"
	"github.com/noah-isme/alhafizh-api/internal/utils"
)

// ClassHandler wires class endpoints.
type ClassHandler struct {
	service service.TrackerService
	logger  zerolog.Logger
}

// NewClassHandler constructs the handler.
func NewClassHandler(service service.TrackerService, logger zerolog.Logger) *ClassHandler {
	return &ClassHandler{
		service: service,
		logger:  logger.With().Str("component", "class_handler").Logger(),
	}
}

// Register attaches class routes to the router group.
func (h *ClassHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("", h.create)
	router.Get("/:id", h.get)
	router.Put("/:id", h.update)
	router.Delete("/:id", h.delete)
}

func (h *ClassHandler) list(c *fiber.Ctx) error {
	return utils.SendSuccess(c, "classes retrieved", h.service.ListClasses(requestContext(c)))
}

func (h *ClassHandler) get(c *fiber.Ctx) error {
	class, err := h.service.GetClass(requestContext(c), c.Params("id"))
	if err != nil {
		return h.fail(c, err, "failed to fetch class")
	}
	return utils.SendSuccess(c, "class retrieved", class)
}

func (h *ClassHandler) create(c *fiber.Ctx) error {
	var payload dto.ClassCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	class, err := h.service.CreateClass(requestContext(c), payload)
	if err != nil {
		return h.fail(c, err, "failed to create class")
	}
	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "class created", class)
}

func (h *ClassHandler) update(c *fiber.Ctx) error {
	var payload dto.ClassUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	class, err := h.service.UpdateClass(requestContext(c), c.Params("id"), payload)
	if err != nil {
		return h.fail(c, err, "failed to update class")
	}
	return utils.SendSuccess(c, "class updated", class)
}

// delete asks for confirmation; the class is removed once it is confirmed.
func (h *ClassHandler) delete(c *fiber.Ctx) error {
	pending, err := h.service.RequestDeleteClass(requestContext(c), c.Params("id"))
	if err != nil {
		return h.fail(c, err, "failed to delete class")
	}
	return utils.SendSuccessWithStatus(c, fiber.StatusAccepted, "confirmation required", pending)
}

func (h *ClassHandler) fail(c *fiber.Ctx, err error, message string) error {
	switch {
	case errors.Is(err, service.ErrClassNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "class not found")
	case isValidationError(err):
		return sendValidationError(c, err)
	default:
		requestLogger(h.logger, c).Error().Err(err).Msg(message)
		return utils.SendError(c, fiber.StatusInternalServerError, message)
	}
}
