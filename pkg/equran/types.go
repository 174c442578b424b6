package equran

import (
	"bytes"
	"encoding/json"
)

// ChapterDetail is the full content of one chapter as served by the API.
type ChapterDetail struct {
	Number      int               `json:"number"`
	Name        string            `json:"name"`
	LatinName   string            `json:"latin_name"`
	VerseCount  int               `json:"verse_count"`
	Place       string            `json:"place"`
	Meaning     string            `json:"meaning"`
	Description string            `json:"description"`
	FullAudio   map[string]string `json:"full_audio"`
	Verses      []Verse           `json:"verses"`
	Previous    *ChapterLink      `json:"previous"`
	Next        *ChapterLink      `json:"next"`
}

// Verse is a single verse with its text and per-reciter audio.
type Verse struct {
	Number          int               `json:"number"`
	Arabic          string            `json:"arabic"`
	Transliteration string            `json:"transliteration"`
	Translation     string            `json:"translation"`
	Audio           map[string]string `json:"audio"`
}

// ChapterLink points at an adjacent chapter.
type ChapterLink struct {
	Number     int    `json:"number"`
	LatinName  string `json:"latin_name"`
	VerseCount int    `json:"verse_count"`
}

// VersesBetween returns the verses numbered from..to inclusive.
func (d ChapterDetail) VersesBetween(from, to int) []Verse {
	if from > to {
		from, to = to, from
	}
	out := make([]Verse, 0, len(d.Verses))
	for _, verse := range d.Verses {
		if verse.Number >= from && verse.Number <= to {
			out = append(out, verse)
		}
	}
	return out
}

// envelope is the API response wrapper.
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type wireChapter struct {
	Nomor            int               `json:"nomor"`
	Nama             string            `json:"nama"`
	NamaLatin        string            `json:"namaLatin"`
	JumlahAyat       int               `json:"jumlahAyat"`
	TempatTurun      string            `json:"tempatTurun"`
	Arti             string            `json:"arti"`
	Deskripsi        string            `json:"deskripsi"`
	AudioFull        map[string]string `json:"audioFull"`
	Ayat             []wireVerse       `json:"ayat"`
	SuratSelanjutnya wireLink          `json:"suratSelanjutnya"`
	SuratSebelumnya  wireLink          `json:"suratSebelumnya"`
}

type wireVerse struct {
	NomorAyat     int               `json:"nomorAyat"`
	TeksArab      string            `json:"teksArab"`
	TeksLatin     string            `json:"teksLatin"`
	TeksIndonesia string            `json:"teksIndonesia"`
	Audio         map[string]string `json:"audio"`
}

// wireLink decodes either a chapter object or the literal false.
type wireLink struct {
	link *ChapterLink
}

func (l *wireLink) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("false")) || bytes.Equal(trimmed, []byte("null")) {
		l.link = nil
		return nil
	}

	var raw struct {
		Nomor      int    `json:"nomor"`
		NamaLatin  string `json:"namaLatin"`
		JumlahAyat int    `json:"jumlahAyat"`
	}
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return err
	}

	l.link = &ChapterLink{Number: raw.Nomor, LatinName: raw.NamaLatin, VerseCount: raw.JumlahAyat}
	return nil
}

func (w wireChapter) toDetail() ChapterDetail {
	verses := make([]Verse, 0, len(w.Ayat))
	for _, ayat := range w.Ayat {
		verses = append(verses, Verse{
			Number:          ayat.NomorAyat,
			Arabic:          ayat.TeksArab,
			Transliteration: ayat.TeksLatin,
			Translation:     ayat.TeksIndonesia,
			Audio:           ayat.Audio,
		})
	}

	return ChapterDetail{
		Number:      w.Nomor,
		Name:        w.Nama,
		LatinName:   w.NamaLatin,
		VerseCount:  w.JumlahAyat,
		Place:       w.TempatTurun,
		Meaning:     w.Arti,
		Description: w.Deskripsi,
		FullAudio:   w.AudioFull,
		Verses:      verses,
		Previous:    w.SuratSebelumnya.link,
		Next:        w.SuratSelanjutnya.link,
	}
}
