package dto

import (
	"github.com/noah-isme/alhafizh-api/internal/catalog"
	"github.com/noah-isme/alhafizh-api/pkg/equran"
)

// ChapterSummary serializes a reference catalog entry.
type ChapterSummary struct {
	Number     int    `json:"number"`
	Name       string `json:"name"`
	LatinName  string `json:"latin_name"`
	VerseCount int    `json:"verse_count"`
	Place      string `json:"place"`
}

// NewChapterSummary converts a catalog entry into a DTO.
func NewChapterSummary(chapter catalog.Chapter) ChapterSummary {
	return ChapterSummary{
		Number:     chapter.Number,
		Name:       chapter.Name,
		LatinName:  chapter.LatinName,
		VerseCount: chapter.VerseCount,
		Place:      chapter.Place,
	}
}

// ChapterDetailResponse is a fetched chapter narrowed to a verse window.
type ChapterDetailResponse struct {
	Chapter      equran.ChapterDetail `json:"chapter"`
	FromVerse    int                  `json:"from_verse"`
	ToVerse      int                  `json:"to_verse"`
	ShowBasmalah bool                 `json:"show_basmalah"`
}

// QuizResponse is a random continuation prompt: recite what follows Prompt.
type QuizResponse struct {
	Chapter ChapterSummary `json:"chapter"`
	Prompt  equran.Verse   `json:"prompt"`
	Answer  []equran.Verse `json:"answer"`
}
