package handler_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/alhafizh-api/internal/dto"
)

func TestClassHandlerListReturnsSeedClass(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodGet, "/api/v1/classes", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var classes []dto.ClassResponse
	payload := decodeEnvelope(t, resp, &classes)
	require.True(t, payload.Success)
	require.Len(t, classes, 1)
	require.Equal(t, "juz-amma-pagi", classes[0].ID)
	require.Equal(t, 2, classes[0].StudentCount)
	require.Equal(t, 37, classes[0].ChapterCount)
}

func TestClassHandlerCreateAndUpdate(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/api/v1/classes", map[string]interface{}{
		"name":         "<b>Kelas Sore</b>",
		"target_range": map[string]int{"from": 5, "to": 1},
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created dto.ClassResponse
	decodeEnvelope(t, resp, &created)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "Kelas Sore", created.Name)
	require.Equal(t, 1, created.TargetRange.From)
	require.Equal(t, 5, created.TargetRange.To)
	require.Equal(t, 5, created.ChapterCount)
	require.Zero(t, created.StudentCount)

	resp = env.do(t, http.MethodPut, "/api/v1/classes/"+created.ID, map[string]interface{}{
		"name": "Kelas Sore Baru",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated dto.ClassResponse
	decodeEnvelope(t, resp, &updated)
	require.Equal(t, "Kelas Sore Baru", updated.Name)
	require.Equal(t, 5, updated.ChapterCount)

	resp = env.do(t, http.MethodGet, "/api/v1/classes/"+created.ID, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestClassHandlerCreateDefaultsToJuzAmma(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/api/v1/classes", map[string]interface{}{"name": "Kelas Malam"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created dto.ClassResponse
	decodeEnvelope(t, resp, &created)
	require.Equal(t, 78, created.TargetRange.From)
	require.Equal(t, 114, created.TargetRange.To)
}

func TestClassHandlerCreateValidation(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/api/v1/classes", map[string]interface{}{"name": ""})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	payload := decodeEnvelope(t, resp, nil)
	require.False(t, payload.Success)
	require.Contains(t, payload.Details, "ClassCreateRequest.Name")

	resp = env.do(t, http.MethodPost, "/api/v1/classes", map[string]interface{}{
		"name":         "Kelas",
		"target_range": map[string]int{"from": 0, "to": 200},
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = env.do(t, http.MethodPost, "/api/v1/classes", map[string]interface{}{"name": "<script></script>"})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	notifications := env.notifications.List(t.Context())
	require.NotEmpty(t, notifications)
	require.True(t, notifications[len(notifications)-1].IsError)
}

func TestClassHandlerUnknownID(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodGet, "/api/v1/classes/missing", nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = env.do(t, http.MethodPut, "/api/v1/classes/missing", map[string]interface{}{"name": "X"})
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = env.do(t, http.MethodDelete, "/api/v1/classes/missing", nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestClassHandlerRejectsMalformedBody(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/api/v1/classes", "not-an-object")
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
