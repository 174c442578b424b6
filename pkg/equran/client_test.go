package equran

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

const nasPayload = `{
  "code": 200,
  "message": "Data retrieved successfully",
  "data": {
    "nomor": 114,
    "nama": "الناس",
    "namaLatin": "An-Nas",
    "jumlahAyat": 6,
    "tempatTurun": "Mekah",
    "arti": "Manusia",
    "deskripsi": "Surat An-Nas terdiri atas 6 ayat.",
    "audioFull": {"01": "https://cdn.example/114.mp3"},
    "ayat": [
      {"nomorAyat": 1, "teksArab": "قُلْ", "teksLatin": "qul", "teksIndonesia": "Katakanlah", "audio": {"01": "https://cdn.example/114001.mp3"}},
      {"nomorAyat": 2, "teksArab": "مَلِكِ", "teksLatin": "malikin-nas", "teksIndonesia": "Raja manusia", "audio": {}}
    ],
    "suratSelanjutnya": false,
    "suratSebelumnya": {"nomor": 113, "nama": "الفلق", "namaLatin": "Al-Falaq", "jumlahAyat": 5}
  }
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(Config{BaseURL: server.URL, Timeout: time.Second, Logger: zerolog.Nop()})
}

func TestFetchChapterDetailDecodesPayload(t *testing.T) {
	var hits atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		require.Equal(t, "/surat/114", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(nasPayload))
	})

	detail := client.FetchChapterDetail(context.Background(), 114)
	require.NotNil(t, detail)
	require.Equal(t, "An-Nas", detail.LatinName)
	require.Equal(t, 6, detail.VerseCount)
	require.Len(t, detail.Verses, 2)
	require.Equal(t, "Katakanlah", detail.Verses[0].Translation)
	require.Nil(t, detail.Next)
	require.NotNil(t, detail.Previous)
	require.Equal(t, 113, detail.Previous.Number)

	again := client.FetchChapterDetail(context.Background(), 114)
	require.NotNil(t, again)
	require.Equal(t, int32(1), hits.Load())
}

func TestFetchChapterDetailReturnsNilOnFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	require.Nil(t, client.FetchChapterDetail(context.Background(), 1))
}

func TestFetchChapterDetailRejectsNonOKEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"code": 404, "message": "not found", "data": null}`))
	})

	require.Nil(t, client.FetchChapterDetail(context.Background(), 1))
}

func TestFetchChapterDetailRejectsOutOfRange(t *testing.T) {
	var hits atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
	})

	require.Nil(t, client.FetchChapterDetail(context.Background(), 0))
	require.Nil(t, client.FetchChapterDetail(context.Background(), 115))
	require.Zero(t, hits.Load())
}

func TestVersesBetween(t *testing.T) {
	detail := ChapterDetail{Verses: []Verse{{Number: 1}, {Number: 2}, {Number: 3}, {Number: 4}}}

	window := detail.VersesBetween(3, 2)
	require.Len(t, window, 2)
	require.Equal(t, 2, window[0].Number)
	require.Equal(t, 3, window[1].Number)
}
