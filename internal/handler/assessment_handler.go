package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/noah-isme/alhafizh-api/internal/service"
	"github.com/noah-isme/alhafizh-api/internal/utils"
)

// AssessmentHandler wires bulk assessment endpoints.
type AssessmentHandler struct {
	service service.TrackerService
}

// NewAssessmentHandler constructs the handler.
func NewAssessmentHandler(service service.TrackerService) *AssessmentHandler {
	return &AssessmentHandler{service: service}
}

// Register attaches assessment routes to the router group.
func (h *AssessmentHandler) Register(router fiber.Router) {
	router.Delete("", h.reset)
}

func (h *AssessmentHandler) reset(c *fiber.Ctx) error {
	pending := h.service.RequestResetAssessments(requestContext(c))
	return utils.SendSuccessWithStatus(c, fiber.StatusAccepted, "confirmation required", pending)
}
