package handler_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/alhafizh-api/internal/dto"
)

func studentNames(students []dto.StudentResponse) []string {
	names := make([]string, 0, len(students))
	for _, student := range students {
		names = append(names, student.Name)
	}
	return names
}

func TestStudentHandlerListSorts(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/api/v1/students", map[string]interface{}{
		"name":     "budi santoso",
		"class_id": "juz-amma-pagi",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var students []dto.StudentResponse
	decodeEnvelope(t, env.do(t, http.MethodGet, "/api/v1/students", nil), &students)
	require.Equal(t, []string{"Ahmad Abdullah", "budi santoso", "Fatimah Az-Zahra"}, studentNames(students))

	decodeEnvelope(t, env.do(t, http.MethodGet, "/api/v1/students?sort=most", nil), &students)
	require.Equal(t, "Ahmad Abdullah", students[0].Name)

	decodeEnvelope(t, env.do(t, http.MethodGet, "/api/v1/students?sort=least", nil), &students)
	require.Equal(t, "budi santoso", students[0].Name)

	resp = env.do(t, http.MethodGet, "/api/v1/students?sort=oldest", nil)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestStudentHandlerListFiltersByClass(t *testing.T) {
	env := newTestEnv(t)

	var students []dto.StudentResponse
	decodeEnvelope(t, env.do(t, http.MethodGet, "/api/v1/students?class_id=missing", nil), &students)
	require.Empty(t, students)

	decodeEnvelope(t, env.do(t, http.MethodGet, "/api/v1/students?class_id=juz-amma-pagi", nil), &students)
	require.Len(t, students, 2)
}

func TestStudentHandlerCreateRequiresKnownClass(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/api/v1/students", map[string]interface{}{
		"name":     "Umar",
		"class_id": "missing",
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = env.do(t, http.MethodPost, "/api/v1/students", map[string]interface{}{"name": "Umar"})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestStudentHandlerUpdateAndGet(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodPut, "/api/v1/students/santri-002", map[string]interface{}{"name": "Fatimah"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var student dto.StudentResponse
	decodeEnvelope(t, env.do(t, http.MethodGet, "/api/v1/students/santri-002", nil), &student)
	require.Equal(t, "Fatimah", student.Name)
	require.Equal(t, "juz-amma-pagi", student.ClassID)
	require.Len(t, student.Assessments, 1)

	resp = env.do(t, http.MethodGet, "/api/v1/students/missing", nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestStudentHandlerRecordAssessment(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/api/v1/students/santri-002/assessments", map[string]interface{}{
		"chapter_number":  113,
		"criteria_grades": fullGrades("A"),
		"notes":           "Lancar sekali",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var student dto.StudentResponse
	decodeEnvelope(t, resp, &student)
	require.Equal(t, 2, student.MemorizedCount)
	require.Len(t, student.Assessments, 2)

	recorded := student.Assessments[1]
	require.Equal(t, "Al-Falaq", recorded.ChapterName)
	require.Equal(t, 95, recorded.Score)
	require.Equal(t, "Lancar sekali", recorded.Notes)

	// Re-assessing the same chapter replaces the earlier record.
	resp = env.do(t, http.MethodPost, "/api/v1/students/santri-002/assessments", map[string]interface{}{
		"chapter_name":    "al-falaq",
		"criteria_grades": fullGrades("D"),
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decodeEnvelope(t, resp, &student)
	require.Len(t, student.Assessments, 2)
	require.Equal(t, 1, student.MemorizedCount)
}

func TestStudentHandlerRecordAssessmentValidation(t *testing.T) {
	env := newTestEnv(t)

	incomplete := fullGrades("B")
	delete(incomplete, "elongation")

	cases := []struct {
		name    string
		payload map[string]interface{}
		status  int
	}{
		{
			name:    "missing chapter",
			payload: map[string]interface{}{"criteria_grades": fullGrades("A")},
			status:  fiber.StatusBadRequest,
		},
		{
			name:    "unknown chapter",
			payload: map[string]interface{}{"chapter_name": "Bukan Surat", "criteria_grades": fullGrades("A")},
			status:  fiber.StatusBadRequest,
		},
		{
			name:    "incomplete criteria",
			payload: map[string]interface{}{"chapter_number": 112, "criteria_grades": incomplete},
			status:  fiber.StatusBadRequest,
		},
		{
			name:    "invalid grade",
			payload: map[string]interface{}{"chapter_number": 112, "criteria_grades": fullGrades("E")},
			status:  fiber.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := env.do(t, http.MethodPost, "/api/v1/students/santri-001/assessments", tc.payload)
			require.Equal(t, tc.status, resp.StatusCode)
		})
	}

	resp := env.do(t, http.MethodPost, "/api/v1/students/missing/assessments", map[string]interface{}{
		"chapter_number":  112,
		"criteria_grades": fullGrades("A"),
	})
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
