package dto

// ImportResponse reports the outcome of a CSV import.
type ImportResponse struct {
	NewStudents int `json:"new_students"`
	NewClasses  int `json:"new_classes"`
	Skipped     int `json:"skipped"`
}

// ExportResult is a rendered CSV document.
type ExportResult struct {
	Filename string
	Content  []byte
}
