package service

import (
	"context"
	"errors"
	"math/rand/v2"

	"github.com/rs/zerolog"

	"github.com/noah-isme/alhafizh-api/internal/catalog"
	"github.com/noah-isme/alhafizh-api/internal/dto"
	"github.com/noah-isme/alhafizh-api/internal/models"
)

var (
	// ErrQuizRangeEmpty indicates no catalog chapter lies in the requested range.
	ErrQuizRangeEmpty = errors.New("no chapters in the selected range")
	// ErrQuizTooShort indicates the drawn chapter has no verse to continue from.
	ErrQuizTooShort = errors.New("chapter has too few verses for a quiz")
)

// QuizService draws random continuation prompts.
type QuizService interface {
	Random(ctx context.Context, from, to int) (dto.QuizResponse, error)
}

type quizService struct {
	source ContentSource
	logger zerolog.Logger
	intN   func(n int) int
}

// NewQuizService constructs the quiz service.
func NewQuizService(source ContentSource, logger zerolog.Logger) QuizService {
	return &quizService{
		source: source,
		logger: logger.With().Str("component", "quiz_service").Logger(),
		intN:   rand.IntN,
	}
}

// Random picks a chapter in the range and a verse that has at least one
// following verse. Zero bounds default to the Juz Amma range.
func (s *quizService) Random(ctx context.Context, from, to int) (dto.QuizResponse, error) {
	if from == 0 {
		from = models.DefaultRangeTo
	}
	if to == 0 {
		to = models.DefaultRangeFrom
	}

	candidates := catalog.TargetChapters(from, to)
	if len(candidates) == 0 {
		return dto.QuizResponse{}, ErrQuizRangeEmpty
	}

	chapter := candidates[s.intN(len(candidates))]
	detail := s.source.FetchChapterDetail(ctx, chapter.Number)
	if detail == nil {
		return dto.QuizResponse{}, ErrChapterUnavailable
	}
	if len(detail.Verses) < 2 {
		return dto.QuizResponse{}, ErrQuizTooShort
	}

	idx := s.intN(len(detail.Verses) - 1)
	s.logger.Debug().Int("chapter", chapter.Number).Int("verse", detail.Verses[idx].Number).Msg("quiz drawn")

	return dto.QuizResponse{
		Chapter: dto.NewChapterSummary(chapter),
		Prompt:  detail.Verses[idx],
		Answer:  append(detail.Verses[:0:0], detail.Verses[idx+1:]...),
	}, nil
}
