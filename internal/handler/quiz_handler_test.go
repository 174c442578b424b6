package handler_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/alhafizh-api/internal/dto"
)

func TestQuizRandomWithinSingleChapter(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodGet, "/api/v1/quiz/random?from=114&to=114", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var quiz dto.QuizResponse
	decodeEnvelope(t, resp, &quiz)
	require.Equal(t, 114, quiz.Chapter.Number)
	require.NotEmpty(t, quiz.Answer)
	require.Equal(t, quiz.Prompt.Number+1, quiz.Answer[0].Number)
	require.Equal(t, 6, quiz.Answer[len(quiz.Answer)-1].Number)
}

func TestQuizRandomDefaultsToJuzAmma(t *testing.T) {
	env := newTestEnv(t)

	var quiz dto.QuizResponse
	decodeEnvelope(t, env.do(t, http.MethodGet, "/api/v1/quiz/random", nil), &quiz)
	require.GreaterOrEqual(t, quiz.Chapter.Number, 78)
	require.LessOrEqual(t, quiz.Chapter.Number, 114)
}

func TestQuizRandomErrors(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodGet, "/api/v1/quiz/random?from=200&to=300", nil)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/api/v1/quiz/random?from=abc", nil)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	down := newTestEnvWith(t, envOptions{quranDown: true})
	resp = down.do(t, http.MethodGet, "/api/v1/quiz/random", nil)
	require.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}
