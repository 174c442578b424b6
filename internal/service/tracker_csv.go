package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/noah-isme/alhafizh-api/internal/dto"
	"github.com/noah-isme/alhafizh-api/internal/models"
)

var (
	// ErrImportEmpty indicates the CSV has no record lines after the header.
	ErrImportEmpty = errors.New("csv is empty or header-only")
	// ErrImportMissingColumns indicates a required header column is absent.
	ErrImportMissingColumns = errors.New(`csv header must contain "Nama Santri" and "Nama Kelas"`)
)

const (
	msgImportEmpty   = "File CSV kosong atau hanya berisi header."
	msgImportColumns = `Header CSV harus mengandung "Nama Santri" dan "Nama Kelas".`

	exportHeader       = "Nama Santri,Nama Kelas"
	exportMissingClass = "Tanpa Kelas"
	exportDateLayout   = "2006-01-02"
)

var (
	studentColumns = []string{"nama santri", "student name"}
	classColumns   = []string{"nama kelas", "class name"}
)

// importPlan is the result of merging CSV rows into copies of the collections.
type importPlan struct {
	classes  []models.Class
	students []models.Student
	result   dto.ImportResponse
}

// utf8BOM is written by spreadsheet tools ahead of the header row.
const utf8BOM = "\ufeff"

func (s *trackerService) ImportCSV(ctx context.Context, raw string) (dto.ImportResponse, error) {
	ctx, span := s.tracer.Start(ctx, "tracker.import_csv")
	defer span.End()

	header, records, err := splitImport(strings.TrimPrefix(raw, utf8BOM))
	if err != nil {
		return dto.ImportResponse{}, s.reject(ctx, span, err, msgImportEmpty)
	}

	studentIdx, classIdx, err := importColumns(header)
	if err != nil {
		return dto.ImportResponse{}, s.reject(ctx, span, err, msgImportColumns)
	}

	s.mu.Lock()
	plan := mergeImport(s.classes, s.students, records, studentIdx, classIdx, s.newID, s.cleanText)
	s.classes = plan.classes
	s.students = plan.students
	s.persistLocked(ctx, "import_csv")
	s.mu.Unlock()

	span.SetAttributes(
		attribute.Int("tracker.import.new_students", plan.result.NewStudents),
		attribute.Int("tracker.import.new_classes", plan.result.NewClasses),
		attribute.Int("tracker.import.skipped", plan.result.Skipped),
	)

	s.notify(ctx, importSummary(plan.result), false)
	return plan.result, nil
}

func (s *trackerService) ExportCSV(_ context.Context) dto.ExportResult {
	s.mu.Lock()
	content := renderExport(s.classes, s.students)
	s.mu.Unlock()

	return dto.ExportResult{
		Filename: fmt.Sprintf("data_santri_%s.csv", s.now().UTC().Format(exportDateLayout)),
		Content:  content,
	}
}

// splitImport returns the header line and record lines, dropping blank lines.
func splitImport(raw string) (string, []string, error) {
	lines := make([]string, 0)
	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}

	if len(lines) < 2 {
		return "", nil, ErrImportEmpty
	}
	return lines[0], lines[1:], nil
}

func importColumns(header string) (int, int, error) {
	fields := strings.Split(header, ",")
	for i, field := range fields {
		fields[i] = strings.ToLower(strings.TrimSpace(strings.ReplaceAll(field, `"`, "")))
	}

	studentIdx := columnIndex(fields, studentColumns)
	classIdx := columnIndex(fields, classColumns)
	if studentIdx < 0 || classIdx < 0 {
		return -1, -1, ErrImportMissingColumns
	}
	return studentIdx, classIdx, nil
}

func columnIndex(fields []string, names []string) int {
	for _, name := range names {
		for i, field := range fields {
			if field == name {
				return i
			}
		}
	}
	return -1
}

// mergeImport adds unseen classes and students from the records. Existing
// records are never modified.
func mergeImport(classes []models.Class, students []models.Student, records []string, studentIdx, classIdx int, newID func() string, clean func(string) string) importPlan {
	plan := importPlan{
		classes:  models.CloneClasses(classes),
		students: models.CloneStudents(students),
	}

	for _, record := range records {
		values := strings.Split(record, ",")
		studentName := clean(importField(values, studentIdx))
		className := clean(importField(values, classIdx))
		if studentName == "" || className == "" {
			plan.result.Skipped++
			continue
		}

		classID := ""
		for _, class := range plan.classes {
			if strings.EqualFold(class.Name, className) {
				classID = class.ID
				break
			}
		}
		if classID == "" {
			classID = newID()
			plan.classes = append(plan.classes, models.Class{
				ID:          classID,
				Name:        className,
				TargetRange: models.DefaultTargetRange(),
			})
			plan.result.NewClasses++
		}

		duplicate := false
		for _, student := range plan.students {
			if student.ClassID == classID && strings.EqualFold(student.Name, studentName) {
				duplicate = true
				break
			}
		}
		if duplicate {
			plan.result.Skipped++
			continue
		}

		plan.students = append(plan.students, models.Student{
			ID:          newID(),
			Name:        studentName,
			ClassID:     classID,
			Assessments: []models.Assessment{},
		})
		plan.result.NewStudents++
	}

	return plan
}

func importField(values []string, idx int) string {
	if idx >= len(values) {
		return ""
	}
	return strings.TrimSpace(strings.ReplaceAll(values[idx], `"`, ""))
}

func importSummary(result dto.ImportResponse) string {
	message := fmt.Sprintf("Impor selesai. Ditambahkan: %d santri & %d kelas baru.", result.NewStudents, result.NewClasses)
	if result.Skipped > 0 {
		message += fmt.Sprintf(" %d data dilewati (duplikat/tidak valid).", result.Skipped)
	}
	return message
}

// renderExport writes one quoted row per student with CRLF line endings.
func renderExport(classes []models.Class, students []models.Student) []byte {
	names := make(map[string]string, len(classes))
	for _, class := range classes {
		names[class.ID] = class.Name
	}

	var b strings.Builder
	b.WriteString(exportHeader)
	b.WriteString("\r\n")
	for _, student := range students {
		className, ok := names[student.ClassID]
		if !ok {
			className = exportMissingClass
		}
		fmt.Fprintf(&b, "\"%s\",\"%s\"\r\n", student.Name, className)
	}
	return []byte(b.String())
}
