package repository

import (
	"time"

	"github.com/noah-isme/alhafizh-api/internal/grading"
	"github.com/noah-isme/alhafizh-api/internal/models"
)

// Identifiers of the built-in first-run records.
const (
	SeedClassID    = "juz-amma-pagi"
	SeedStudentOne = "santri-001"
	SeedStudentTwo = "santri-002"
)

// DefaultState returns the data written on first run: one Juz Amma class and
// two example students with example assessments.
func DefaultState(now time.Time) State {
	return State{
		Classes: []models.Class{
			{
				ID:          SeedClassID,
				Name:        "Kelas Juz Amma Pagi",
				TargetRange: models.DefaultTargetRange(),
			},
		},
		Students: []models.Student{
			{
				ID:      SeedStudentOne,
				Name:    "Ahmad Abdullah",
				ClassID: SeedClassID,
				Assessments: []models.Assessment{
					seedAssessment("An-Nas", "Sangat Baik", now, "A", "A", "A", "A"),
					seedAssessment("Al-Falaq", "Baik", now, "A", "B", "A", "A"),
				},
			},
			{
				ID:      SeedStudentTwo,
				Name:    "Fatimah Az-Zahra",
				ClassID: SeedClassID,
				Assessments: []models.Assessment{
					seedAssessment("An-Nas", "Perlu latihan di mad", now, "A", "A", "B", "B"),
				},
			},
		},
	}
}

func seedAssessment(chapter, notes string, now time.Time, fluency, articulation, recitation, elongation models.Grade) models.Assessment {
	grades := map[models.Criterion]models.Grade{
		models.CriterionFluency:      fluency,
		models.CriterionArticulation: articulation,
		models.CriterionRecitation:   recitation,
		models.CriterionElongation:   elongation,
	}
	result, err := grading.Evaluate(grades)
	if err != nil {
		panic(err)
	}

	return models.Assessment{
		ChapterName:      chapter,
		Score:            result.Score,
		RepetitionStatus: result.Status,
		RecordedAt:       now.UTC(),
		Notes:            notes,
		CriteriaGrades:   grades,
	}
}
