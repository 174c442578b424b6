package dto

import "github.com/noah-isme/alhafizh-api/internal/models"

// AssessmentRequest records the grading of one chapter for a student. Either
// ChapterNumber or ChapterName selects the chapter; the number wins when both
// are given.
type AssessmentRequest struct {
	ChapterNumber  int               `json:"chapter_number" validate:"omitempty,min=1,max=114"`
	ChapterName    string            `json:"chapter_name" validate:"omitempty,max=64"`
	CriteriaGrades map[string]string `json:"criteria_grades" validate:"required,dive,keys,oneof=fluency articulation recitation_rules elongation,endkeys,oneof=A B C D"`
	Notes          string            `json:"notes" validate:"omitempty,max=2000"`
}

// Grades converts the raw criteria map into typed grades.
func (r AssessmentRequest) Grades() map[models.Criterion]models.Grade {
	grades := make(map[models.Criterion]models.Grade, len(r.CriteriaGrades))
	for criterion, grade := range r.CriteriaGrades {
		grades[models.Criterion(criterion)] = models.Grade(grade)
	}
	return grades
}
