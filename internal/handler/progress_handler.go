package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/noah-isme/alhafizh-api/internal/service"
	"github.com/noah-isme/alhafizh-api/internal/utils"
)

// ProgressHandler exposes the dashboard statistics and progress rollups.
type ProgressHandler struct {
	service service.TrackerService
}

// NewProgressHandler constructs the handler.
func NewProgressHandler(service service.TrackerService) *ProgressHandler {
	return &ProgressHandler{service: service}
}

// Register attaches progress routes to the router group.
func (h *ProgressHandler) Register(router fiber.Router) {
	router.Get("/classes/:id", h.classProgress)
	router.Get("/students/:id", h.studentProgress)
}

// Dashboard serves the system-wide statistics.
func (h *ProgressHandler) Dashboard(c *fiber.Ctx) error {
	return utils.SendSuccess(c, "dashboard retrieved", h.service.Dashboard(requestContext(c)))
}

func (h *ProgressHandler) classProgress(c *fiber.Ctx) error {
	progress, err := h.service.ClassProgress(requestContext(c), c.Params("id"))
	if err != nil {
		if errors.Is(err, service.ErrClassNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "class not found")
		}
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to compute class progress")
	}
	return utils.SendSuccess(c, "class progress retrieved", progress)
}

func (h *ProgressHandler) studentProgress(c *fiber.Ctx) error {
	progress, err := h.service.StudentProgress(requestContext(c), c.Params("id"))
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "student not found")
		}
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to compute student progress")
	}
	return utils.SendSuccess(c, "student progress retrieved", progress)
}
