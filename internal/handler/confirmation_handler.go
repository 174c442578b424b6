package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/alhafizh-api/internal/service"
	"github.com/noah-isme/alhafizh-api/internal/utils"
)

// ConfirmationHandler resolves pending destructive actions.
type ConfirmationHandler struct {
	service service.ConfirmationService
	logger  zerolog.Logger
}

// NewConfirmationHandler constructs the handler.
func NewConfirmationHandler(service service.ConfirmationService, logger zerolog.Logger) *ConfirmationHandler {
	return &ConfirmationHandler{
		service: service,
		logger:  logger.With().Str("component", "confirmation_handler").Logger(),
	}
}

// Register attaches confirmation routes to the router group.
func (h *ConfirmationHandler) Register(router fiber.Router) {
	router.Get("", h.pending)
	router.Post("/:id", h.confirm)
	router.Delete("/:id", h.cancel)
}

func (h *ConfirmationHandler) pending(c *fiber.Ctx) error {
	pending, ok := h.service.Pending(requestContext(c))
	if !ok {
		return utils.SendError(c, fiber.StatusNotFound, "no pending confirmation")
	}
	return utils.SendSuccess(c, "confirmation pending", pending)
}

func (h *ConfirmationHandler) confirm(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.Confirm(requestContext(c), id); err != nil {
		switch {
		case errors.Is(err, service.ErrConfirmationNotFound):
			return utils.SendError(c, fiber.StatusNotFound, "confirmation not found")
		case errors.Is(err, service.ErrClassNotFound), errors.Is(err, service.ErrStudentNotFound):
			return utils.SendError(c, fiber.StatusNotFound, err.Error())
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to commit confirmed action")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to commit confirmed action")
		}
	}
	return utils.SendSuccess(c, "action confirmed", fiber.Map{"id": id})
}

func (h *ConfirmationHandler) cancel(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.Cancel(requestContext(c), id); err != nil {
		if errors.Is(err, service.ErrConfirmationNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "confirmation not found")
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to cancel confirmation")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to cancel confirmation")
	}
	return utils.SendSuccess(c, "action cancelled", fiber.Map{"id": id})
}
