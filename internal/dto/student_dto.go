package dto

import (
	"time"

	"github.com/noah-isme/alhafizh-api/internal/models"
)

// Student listing orders.
const (
	StudentSortName  = "name"
	StudentSortMost  = "most"
	StudentSortLeast = "least"
)

// StudentCreateRequest captures the payload for a new student.
type StudentCreateRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=120"`
	ClassID string `json:"class_id" validate:"required"`
}

// StudentUpdateRequest captures partial updates merged into an existing student.
type StudentUpdateRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=120"`
	ClassID *string `json:"class_id" validate:"omitempty,min=1"`
}

// StudentListRequest defines filters for listing students.
type StudentListRequest struct {
	ClassID string
	Sort    string `validate:"omitempty,oneof=name most least"`
}

// AssessmentResponse serializes one recorded assessment.
type AssessmentResponse struct {
	ChapterName      string            `json:"chapter_name"`
	Score            int               `json:"score"`
	RepetitionStatus string            `json:"repetition_status"`
	RecordedAt       time.Time         `json:"recorded_at"`
	Notes            string            `json:"notes"`
	CriteriaGrades   map[string]string `json:"criteria_grades"`
}

// StudentResponse serializes a student with its assessments.
type StudentResponse struct {
	ID             string               `json:"id"`
	Name           string               `json:"name"`
	ClassID        string               `json:"class_id"`
	MemorizedCount int                  `json:"memorized_count"`
	Assessments    []AssessmentResponse `json:"assessments"`
}

// NewAssessmentResponse converts an assessment into a DTO.
func NewAssessmentResponse(assessment models.Assessment) AssessmentResponse {
	grades := make(map[string]string, len(assessment.CriteriaGrades))
	for criterion, grade := range assessment.CriteriaGrades {
		grades[string(criterion)] = string(grade)
	}

	return AssessmentResponse{
		ChapterName:      assessment.ChapterName,
		Score:            assessment.Score,
		RepetitionStatus: string(assessment.RepetitionStatus),
		RecordedAt:       assessment.RecordedAt,
		Notes:            assessment.Notes,
		CriteriaGrades:   grades,
	}
}

// NewStudentResponse converts a student model into a DTO.
func NewStudentResponse(student models.Student) StudentResponse {
	assessments := make([]AssessmentResponse, 0, len(student.Assessments))
	for _, assessment := range student.Assessments {
		assessments = append(assessments, NewAssessmentResponse(assessment))
	}

	return StudentResponse{
		ID:             student.ID,
		Name:           student.Name,
		ClassID:        student.ClassID,
		MemorizedCount: student.MemorizedCount(),
		Assessments:    assessments,
	}
}

// NewStudentResponseSlice converts a list of students.
func NewStudentResponseSlice(students []models.Student) []StudentResponse {
	out := make([]StudentResponse, 0, len(students))
	for _, student := range students {
		out = append(out, NewStudentResponse(student))
	}
	return out
}
