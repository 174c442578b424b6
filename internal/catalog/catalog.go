// Package catalog holds the read-only reference table of the 114 chapters.
package catalog

import (
	"sort"
	"strings"
)

// Revelation places as reported by the content API.
const (
	PlaceMakkah  = "Mekah"
	PlaceMadinah = "Madinah"
)

// Count is the number of chapters in the catalog.
const Count = 114

// Chapter is the static metadata of one chapter (surat).
type Chapter struct {
	Number     int    `json:"number"`
	Name       string `json:"name"`
	LatinName  string `json:"latin_name"`
	VerseCount int    `json:"verse_count"`
	Place      string `json:"place"`
}

// All returns the catalog ordered by ascending chapter number.
func All() []Chapter {
	return append([]Chapter(nil), chapters...)
}

// Lookup returns the chapter with the given number.
func Lookup(number int) (Chapter, bool) {
	if number < 1 || number > len(chapters) {
		return Chapter{}, false
	}
	return chapters[number-1], true
}

// ByLatinName finds a chapter by its display name, ignoring case.
func ByLatinName(name string) (Chapter, bool) {
	needle := strings.TrimSpace(name)
	for _, chapter := range chapters {
		if strings.EqualFold(chapter.LatinName, needle) {
			return chapter, true
		}
	}
	return Chapter{}, false
}

// TargetChapters returns the chapters whose number lies in the inclusive
// range, last chapter first. The bounds may be given in either order.
func TargetChapters(from, to int) []Chapter {
	if from > to {
		from, to = to, from
	}

	out := make([]Chapter, 0)
	for _, chapter := range chapters {
		if chapter.Number >= from && chapter.Number <= to {
			out = append(out, chapter)
		}
	}
	sortDescending(out)
	return out
}

func sortDescending(list []Chapter) {
	sort.Slice(list, func(i, j int) bool { return list[i].Number > list[j].Number })
}
