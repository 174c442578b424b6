package dto

// Quote is a motivational passage shown on the dashboard.
type Quote struct {
	Arabic      string `json:"arabic"`
	Translation string `json:"translation"`
	Source      string `json:"source"`
}

// DashboardResponse aggregates the system-wide statistics.
type DashboardResponse struct {
	TotalStudents   int   `json:"total_students"`
	TotalClasses    int   `json:"total_classes"`
	TotalMastered   int   `json:"total_mastered"`
	AverageProgress int   `json:"average_progress"`
	Quote           Quote `json:"quote"`
}

// ChapterProgress is the completion of one chapter across a class.
type ChapterProgress struct {
	Number     int     `json:"number"`
	Name       string  `json:"name"`
	Completed  int     `json:"completed"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// ClassProgressResponse lists chapter completion for a class, last chapter first.
type ClassProgressResponse struct {
	ClassID   string            `json:"class_id"`
	ClassName string            `json:"class_name"`
	Students  int               `json:"students"`
	Chapters  []ChapterProgress `json:"chapters"`
}

// StudentProgressResponse summarizes one student's progress against the class target.
type StudentProgressResponse struct {
	StudentID       string               `json:"student_id"`
	StudentName     string               `json:"student_name"`
	ClassID         string               `json:"class_id"`
	ClassName       string               `json:"class_name"`
	TargetChapters  int                  `json:"target_chapters"`
	MemorizedCount  int                  `json:"memorized_count"`
	ProgressPercent float64              `json:"progress_percent"`
	Assessments     []AssessmentResponse `json:"assessments"`
}
