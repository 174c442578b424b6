package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/alhafizh-api/internal/service"
	"github.com/noah-isme/alhafizh-api/internal/utils"
)

// ChapterHandler serves the chapter catalog and fetched chapter content.
type ChapterHandler struct {
	service service.ContentService
	logger  zerolog.Logger
}

// NewChapterHandler constructs the handler.
func NewChapterHandler(service service.ContentService, logger zerolog.Logger) *ChapterHandler {
	return &ChapterHandler{
		service: service,
		logger:  logger.With().Str("component", "chapter_handler").Logger(),
	}
}

// Register attaches chapter routes to the router group.
func (h *ChapterHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/:number", h.detail)
}

func (h *ChapterHandler) list(c *fiber.Ctx) error {
	return utils.SendSuccess(c, "chapters retrieved", h.service.Chapters(requestContext(c)))
}

func (h *ChapterHandler) detail(c *fiber.Ctx) error {
	number, err := parseIntParam(c, "number")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid chapter number")
	}
	from, err := parseQueryInt(c, "from")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid from")
	}
	to, err := parseQueryInt(c, "to")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid to")
	}

	detail, err := h.service.ChapterDetail(requestContext(c), number, from, to)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownChapter):
			return utils.SendError(c, fiber.StatusNotFound, "chapter not found")
		case errors.Is(err, service.ErrChapterUnavailable):
			return utils.SendError(c, fiber.StatusServiceUnavailable, "chapter content unavailable")
		default:
			requestLogger(h.logger, c).Error().Err(err).Int("chapter", number).Msg("failed to fetch chapter")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to fetch chapter")
		}
	}
	return utils.SendSuccess(c, "chapter retrieved", detail)
}
