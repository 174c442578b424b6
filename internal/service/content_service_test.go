package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/alhafizh-api/pkg/equran"
)

type stubContentSource struct {
	details map[int]*equran.ChapterDetail
	calls   []int
}

func (s *stubContentSource) FetchChapterDetail(_ context.Context, number int) *equran.ChapterDetail {
	s.calls = append(s.calls, number)
	return s.details[number]
}

func chapterWithVerses(number, verses int) *equran.ChapterDetail {
	detail := &equran.ChapterDetail{Number: number, VerseCount: verses}
	for i := 1; i <= verses; i++ {
		detail.Verses = append(detail.Verses, equran.Verse{Number: i})
	}
	return detail
}

func TestContentChaptersListsCatalog(t *testing.T) {
	svc := NewContentService(&stubContentSource{}, testLogger())

	chapters := svc.Chapters(context.Background())
	require.Len(t, chapters, 114)
	require.Equal(t, 1, chapters[0].Number)
	require.Equal(t, "An-Nas", chapters[113].LatinName)
}

func TestContentChapterDetailWindow(t *testing.T) {
	source := &stubContentSource{details: map[int]*equran.ChapterDetail{
		112: chapterWithVerses(112, 4),
		9:   chapterWithVerses(9, 129),
	}}
	svc := NewContentService(source, testLogger())
	ctx := context.Background()

	whole, err := svc.ChapterDetail(ctx, 112, 0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, whole.FromVerse)
	require.Equal(t, 4, whole.ToVerse)
	require.Len(t, whole.Chapter.Verses, 4)
	require.True(t, whole.ShowBasmalah)

	window, err := svc.ChapterDetail(ctx, 112, 3, 2)
	require.NoError(t, err)
	require.Equal(t, 2, window.FromVerse)
	require.Equal(t, 3, window.ToVerse)
	require.Len(t, window.Chapter.Verses, 2)
	require.False(t, window.ShowBasmalah)
	require.Len(t, source.details[112].Verses, 4)

	pastEnd, err := svc.ChapterDetail(ctx, 112, 300, 0)
	require.NoError(t, err)
	require.Equal(t, 4, pastEnd.FromVerse)
	require.Equal(t, 4, pastEnd.ToVerse)
	require.Len(t, pastEnd.Chapter.Verses, 1)

	repentance, err := svc.ChapterDetail(ctx, 9, 1, 5)
	require.NoError(t, err)
	require.False(t, repentance.ShowBasmalah)
}

func TestContentChapterDetailErrors(t *testing.T) {
	svc := NewContentService(&stubContentSource{}, testLogger())

	_, err := svc.ChapterDetail(context.Background(), 115, 0, 0)
	require.ErrorIs(t, err, ErrUnknownChapter)

	_, err = svc.ChapterDetail(context.Background(), 1, 0, 0)
	require.ErrorIs(t, err, ErrChapterUnavailable)
}
