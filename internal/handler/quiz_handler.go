package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/alhafizh-api/internal/service"
	"github.com/noah-isme/alhafizh-api/internal/utils"
)

// QuizHandler serves random verse-continuation prompts.
type QuizHandler struct {
	service service.QuizService
	logger  zerolog.Logger
}

// NewQuizHandler constructs the handler.
func NewQuizHandler(service service.QuizService, logger zerolog.Logger) *QuizHandler {
	return &QuizHandler{
		service: service,
		logger:  logger.With().Str("component", "quiz_handler").Logger(),
	}
}

// Register attaches quiz routes to the router group.
func (h *QuizHandler) Register(router fiber.Router) {
	router.Get("/random", h.random)
}

func (h *QuizHandler) random(c *fiber.Ctx) error {
	from, err := parseQueryInt(c, "from")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid from")
	}
	to, err := parseQueryInt(c, "to")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid to")
	}

	quiz, err := h.service.Random(requestContext(c), from, to)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrQuizRangeEmpty):
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrChapterUnavailable), errors.Is(err, service.ErrQuizTooShort):
			return utils.SendError(c, fiber.StatusServiceUnavailable, err.Error())
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to draw quiz")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to draw quiz")
		}
	}
	return utils.SendSuccess(c, "quiz drawn", quiz)
}
