// Package grading turns per-criterion letter grades into a score and a
// repetition status.
package grading

import (
	"errors"
	"fmt"
	"math"

	"github.com/noah-isme/alhafizh-api/internal/models"
)

var (
	// ErrIncompleteCriteria indicates that at least one criterion has no grade.
	ErrIncompleteCriteria = errors.New("all assessment criteria must be graded")
	// ErrInvalidGrade indicates a grade outside A-D or an unknown criterion.
	ErrInvalidGrade = errors.New("invalid assessment grade")
)

var gradeValues = map[models.Grade]int{
	models.GradeA: 95,
	models.GradeB: 85,
	models.GradeC: 75,
	models.GradeD: 65,
}

// repeatGrade forces a repeat whenever any criterion receives it.
const repeatGrade = models.GradeD

// Result is the outcome of grading one assessment.
type Result struct {
	Score  int
	Status models.RepetitionStatus
}

// Value returns the numeric value of a letter grade.
func Value(grade models.Grade) (int, bool) {
	value, ok := gradeValues[grade]
	return value, ok
}

// Validate checks that every fixed criterion carries a known grade and that
// no unknown criterion is present.
func Validate(grades map[models.Criterion]models.Grade) error {
	for _, criterion := range models.Criteria {
		grade, ok := grades[criterion]
		if !ok || grade == "" {
			return fmt.Errorf("%w: missing %s", ErrIncompleteCriteria, criterion)
		}
		if _, ok := Value(grade); !ok {
			return fmt.Errorf("%w: %s=%q", ErrInvalidGrade, criterion, grade)
		}
	}

	if len(grades) != len(models.Criteria) {
		for criterion := range grades {
			if !isCriterion(criterion) {
				return fmt.Errorf("%w: unknown criterion %q", ErrInvalidGrade, criterion)
			}
		}
	}

	return nil
}

// Evaluate computes the rounded mean score and the repetition status.
func Evaluate(grades map[models.Criterion]models.Grade) (Result, error) {
	if err := Validate(grades); err != nil {
		return Result{}, err
	}

	total := 0
	status := models.RepetitionComplete
	for _, criterion := range models.Criteria {
		grade := grades[criterion]
		value, _ := Value(grade)
		total += value
		if grade == repeatGrade {
			status = models.RepetitionNeedsRepeat
		}
	}

	mean := float64(total) / float64(len(models.Criteria))
	return Result{
		Score:  int(math.Floor(mean + 0.5)),
		Status: status,
	}, nil
}

func isCriterion(candidate models.Criterion) bool {
	for _, criterion := range models.Criteria {
		if criterion == candidate {
			return true
		}
	}
	return false
}
