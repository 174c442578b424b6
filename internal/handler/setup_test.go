package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/alhafizh-api/internal/catalog"
	"github.com/noah-isme/alhafizh-api/internal/config"
	"github.com/noah-isme/alhafizh-api/internal/database"
	"github.com/noah-isme/alhafizh-api/internal/handler"
	"github.com/noah-isme/alhafizh-api/internal/middleware"
	"github.com/noah-isme/alhafizh-api/internal/models"
	"github.com/noah-isme/alhafizh-api/internal/repository"
	"github.com/noah-isme/alhafizh-api/internal/router"
	"github.com/noah-isme/alhafizh-api/internal/service"
	"github.com/noah-isme/alhafizh-api/pkg/equran"
)

type envOptions struct {
	importMaxBytes int
	importLimiter  fiber.Handler
	quranDown      bool
}

type testEnv struct {
	app           *fiber.App
	tracker       service.TrackerService
	notifications service.NotificationService
	confirmations service.ConfirmationService
	quranHits     *atomic.Int32
}

type envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Details map[string]string `json:"details"`
}

func newTestEnv(t *testing.T) *testEnv {
	return newTestEnvWith(t, envOptions{})
}

func newTestEnvWith(t *testing.T, opts envOptions) *testEnv {
	t.Helper()
	logger := zerolog.Nop()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := database.ConnectSQLite(dsn)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.KVEntry{}))

	notifications := service.NewNotificationService(service.NotificationConfig{TTL: time.Minute}, logger)
	t.Cleanup(notifications.Close)
	confirmations := service.NewConfirmationService(time.Minute, logger)

	stateRepo := repository.NewStateRepository(repository.NewGormKVRepository(db), logger)
	tracker := service.NewTrackerService(stateRepo, notifications, confirmations, validator.New(validator.WithRequiredStructEnabled()), logger)
	tracker.Load(context.Background())

	hits := &atomic.Int32{}
	quran := httptest.NewServer(fakeQuranAPI(hits, opts.quranDown))
	t.Cleanup(quran.Close)
	client := equran.NewClient(equran.Config{BaseURL: quran.URL, Timeout: time.Second, Logger: logger})

	cfg := config.Config{AppName: "Al-Hafizh Test", AppEnv: "test", StorageDriver: config.StorageSQLite}

	app := fiber.New()
	middleware.Register(app, middleware.Config{DisableAccessLog: true})
	router.Register(app, cfg, router.Dependencies{
		ClassHandler:        handler.NewClassHandler(tracker, logger),
		StudentHandler:      handler.NewStudentHandler(tracker, logger),
		AssessmentHandler:   handler.NewAssessmentHandler(tracker),
		ConfirmationHandler: handler.NewConfirmationHandler(confirmations, logger),
		ProgressHandler:     handler.NewProgressHandler(tracker),
		DataHandler:         handler.NewDataHandler(tracker, logger, opts.importMaxBytes, opts.importLimiter),
		ChapterHandler:      handler.NewChapterHandler(service.NewContentService(client, logger), logger),
		QuizHandler:         handler.NewQuizHandler(service.NewQuizService(client, logger), logger),
		NotificationHandler: handler.NewNotificationHandler(notifications, logger, time.Second),
	})

	return &testEnv{
		app:           app,
		tracker:       tracker,
		notifications: notifications,
		confirmations: confirmations,
		quranHits:     hits,
	}
}

// fakeQuranAPI serves generated chapter payloads in the equran.id wire format.
func fakeQuranAPI(hits *atomic.Int32, down bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if down {
			w.WriteHeader(http.StatusBadGateway)
			return
		}

		number, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/surat/"))
		chapter, ok := catalog.Lookup(number)
		if err != nil || !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		verses := make([]map[string]interface{}, 0, chapter.VerseCount)
		for i := 1; i <= chapter.VerseCount; i++ {
			verses = append(verses, map[string]interface{}{
				"nomorAyat":     i,
				"teksArab":      fmt.Sprintf("arab-%d-%d", number, i),
				"teksLatin":     fmt.Sprintf("latin-%d-%d", number, i),
				"teksIndonesia": fmt.Sprintf("arti-%d-%d", number, i),
				"audio":         map[string]string{"01": fmt.Sprintf("https://cdn.test/%03d%03d.mp3", number, i)},
			})
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"code":    200,
			"message": "Data retrieved successfully",
			"data": map[string]interface{}{
				"nomor":            chapter.Number,
				"nama":             chapter.Name,
				"namaLatin":        chapter.LatinName,
				"jumlahAyat":       chapter.VerseCount,
				"tempatTurun":      chapter.Place,
				"arti":             "arti",
				"deskripsi":        "deskripsi",
				"audioFull":        map[string]string{"01": "https://cdn.test/full.mp3"},
				"ayat":             verses,
				"suratSelanjutnya": false,
				"suratSebelumnya":  false,
			},
		})
	}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeEnvelope(t *testing.T, resp *http.Response, target interface{}) envelope {
	t.Helper()
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	if target != nil && len(env.Data) > 0 {
		require.NoError(t, json.Unmarshal(env.Data, target))
	}
	return env
}

func fullGrades(grade string) map[string]string {
	return map[string]string{
		"fluency":          grade,
		"articulation":     grade,
		"recitation_rules": grade,
		"elongation":       grade,
	}
}

func startFiberServer(t *testing.T, app *fiber.App) (string, func()) {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	go func() {
		_ = app.Listener(listener)
	}()

	time.Sleep(50 * time.Millisecond)

	shutdown := func() {
		_ = app.Shutdown()
		_ = listener.Close()
	}

	return "http://" + listener.Addr().String(), shutdown
}
