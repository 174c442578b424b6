package models

// Chapter numbers accepted in a class target range.
const (
	MinChapter = 1
	MaxChapter = 114
)

// Default target range used for seeded and imported classes (Juz Amma).
const (
	DefaultRangeFrom = 78
	DefaultRangeTo   = 114
)

// TargetRange is the inclusive chapter interval a class memorizes.
type TargetRange struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Normalize returns the range with From <= To.
func (r TargetRange) Normalize() TargetRange {
	if r.From > r.To {
		return TargetRange{From: r.To, To: r.From}
	}
	return r
}

// Class is a cohort of students sharing a memorization target (kelas).
type Class struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	TargetRange TargetRange `json:"target_range"`
}

// DefaultTargetRange returns the range assigned to classes created implicitly.
func DefaultTargetRange() TargetRange {
	return TargetRange{From: DefaultRangeFrom, To: DefaultRangeTo}
}
