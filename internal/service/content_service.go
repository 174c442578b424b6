package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/noah-isme/alhafizh-api/internal/catalog"
	"github.com/noah-isme/alhafizh-api/internal/dto"
	"github.com/noah-isme/alhafizh-api/pkg/equran"
)

// ErrChapterUnavailable indicates the remote content could not be fetched.
var ErrChapterUnavailable = errors.New("chapter content unavailable")

// Chapters without a leading basmalah header.
const (
	chapterOpening    = 1
	chapterRepentance = 9
)

// ContentSource fetches chapter text and audio. It returns nil when the content
// is unavailable.
type ContentSource interface {
	FetchChapterDetail(ctx context.Context, number int) *equran.ChapterDetail
}

// ContentService exposes the reference catalog and fetched chapter content.
type ContentService interface {
	Chapters(ctx context.Context) []dto.ChapterSummary
	ChapterDetail(ctx context.Context, number, fromVerse, toVerse int) (dto.ChapterDetailResponse, error)
}

type contentService struct {
	source ContentSource
	logger zerolog.Logger
}

// NewContentService constructs the content service.
func NewContentService(source ContentSource, logger zerolog.Logger) ContentService {
	return &contentService{
		source: source,
		logger: logger.With().Str("component", "content_service").Logger(),
	}
}

func (s *contentService) Chapters(_ context.Context) []dto.ChapterSummary {
	chapters := catalog.All()
	out := make([]dto.ChapterSummary, 0, len(chapters))
	for _, chapter := range chapters {
		out = append(out, dto.NewChapterSummary(chapter))
	}
	return out
}

// ChapterDetail fetches a chapter and narrows it to the inclusive verse window.
// Zero bounds select the whole chapter.
func (s *contentService) ChapterDetail(ctx context.Context, number, fromVerse, toVerse int) (dto.ChapterDetailResponse, error) {
	if _, ok := catalog.Lookup(number); !ok {
		return dto.ChapterDetailResponse{}, ErrUnknownChapter
	}

	detail := s.source.FetchChapterDetail(ctx, number)
	if detail == nil {
		s.logger.Warn().Int("chapter", number).Msg("chapter content unavailable")
		return dto.ChapterDetailResponse{}, ErrChapterUnavailable
	}

	from, to := verseWindow(len(detail.Verses), fromVerse, toVerse)
	narrowed := *detail
	narrowed.Verses = detail.VersesBetween(from, to)

	return dto.ChapterDetailResponse{
		Chapter:      narrowed,
		FromVerse:    from,
		ToVerse:      to,
		ShowBasmalah: showBasmalah(number, from),
	}, nil
}

func verseWindow(total, from, to int) (int, int) {
	if from <= 0 {
		from = 1
	}
	if from > total {
		from = total
	}
	if to <= 0 || to > total {
		to = total
	}
	if from > to {
		from, to = to, from
	}
	if from < 1 {
		from = 1
	}
	return from, to
}

func showBasmalah(chapter, fromVerse int) bool {
	return chapter != chapterOpening && chapter != chapterRepentance && fromVerse == 1
}
