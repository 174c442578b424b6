package models

import "time"

// RepetitionStatus tells whether an assessed chapter counts as mastered.
type RepetitionStatus string

const (
	RepetitionComplete    RepetitionStatus = "complete"
	RepetitionNeedsRepeat RepetitionStatus = "needs_repeat"
)

// Criterion identifies one of the fixed assessment criteria.
type Criterion string

const (
	CriterionFluency      Criterion = "fluency"
	CriterionArticulation Criterion = "articulation"
	CriterionRecitation   Criterion = "recitation_rules"
	CriterionElongation   Criterion = "elongation"
)

// Criteria lists every criterion an assessment must grade, in display order.
var Criteria = []Criterion{
	CriterionFluency,
	CriterionArticulation,
	CriterionRecitation,
	CriterionElongation,
}

// Grade is a letter grade given per criterion.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
)

// Student is a learner tracked within one class (santri).
type Student struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	ClassID     string       `json:"class_id"`
	Assessments []Assessment `json:"assessments"`
}

// Assessment is one graded evaluation of a memorized chapter (hafalan).
type Assessment struct {
	ChapterName      string              `json:"chapter_name"`
	Score            int                 `json:"score"`
	RepetitionStatus RepetitionStatus    `json:"repetition_status"`
	RecordedAt       time.Time           `json:"recorded_at"`
	Notes            string              `json:"notes"`
	CriteriaGrades   map[Criterion]Grade `json:"criteria_grades"`
}

// Completed reports whether the assessment counts towards mastered chapters.
func (a Assessment) Completed() bool {
	return a.RepetitionStatus == RepetitionComplete
}

// MemorizedCount returns the number of assessments with status complete.
func (s Student) MemorizedCount() int {
	count := 0
	for _, assessment := range s.Assessments {
		if assessment.Completed() {
			count++
		}
	}
	return count
}

// HasCompleted reports whether the student mastered the named chapter.
func (s Student) HasCompleted(chapterName string) bool {
	for _, assessment := range s.Assessments {
		if assessment.ChapterName == chapterName && assessment.Completed() {
			return true
		}
	}
	return false
}

// Clone returns a deep copy safe to hand outside the tracker.
func (s Student) Clone() Student {
	out := s
	out.Assessments = make([]Assessment, len(s.Assessments))
	for i, assessment := range s.Assessments {
		out.Assessments[i] = assessment.Clone()
	}
	return out
}

// Clone returns a deep copy of the assessment.
func (a Assessment) Clone() Assessment {
	out := a
	if a.CriteriaGrades != nil {
		out.CriteriaGrades = make(map[Criterion]Grade, len(a.CriteriaGrades))
		for k, v := range a.CriteriaGrades {
			out.CriteriaGrades[k] = v
		}
	}
	return out
}

// CloneStudents deep-copies a student collection.
func CloneStudents(students []Student) []Student {
	out := make([]Student, len(students))
	for i, student := range students {
		out[i] = student.Clone()
	}
	return out
}

// CloneClasses copies a class collection.
func CloneClasses(classes []Class) []Class {
	return append([]Class(nil), classes...)
}
