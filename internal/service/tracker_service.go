package service

import (
	"context"
	"errors"
	"html"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/noah-isme/alhafizh-api/internal/catalog"
	"github.com/noah-isme/alhafizh-api/internal/dto"
	"github.com/noah-isme/alhafizh-api/internal/grading"
	"github.com/noah-isme/alhafizh-api/internal/models"
	"github.com/noah-isme/alhafizh-api/internal/observability"
	"github.com/noah-isme/alhafizh-api/internal/repository"
)

var (
	// ErrClassNotFound indicates the class id does not exist.
	ErrClassNotFound = errors.New("class not found")
	// ErrStudentNotFound indicates the student id does not exist.
	ErrStudentNotFound = errors.New("student not found")
	// ErrUnknownClass indicates a student references a class that does not exist.
	ErrUnknownClass = errors.New("class does not exist")
	// ErrNameRequired indicates a name was blank after sanitization.
	ErrNameRequired = errors.New("name is required")
	// ErrChapterRequired indicates no target chapter was selected for an assessment.
	ErrChapterRequired = errors.New("a target chapter must be selected")
	// ErrUnknownChapter indicates the selected chapter is not in the catalog.
	ErrUnknownChapter = errors.New("chapter is not in the catalog")
)

const (
	msgClassCreated       = "Kelas baru berhasil ditambahkan!"
	msgClassUpdated       = "Kelas berhasil diperbarui!"
	msgClassDeleted       = "Kelas dan santri di dalamnya berhasil dihapus."
	msgStudentCreated     = "Santri baru berhasil ditambahkan!"
	msgStudentUpdated     = "Data santri berhasil diperbarui!"
	msgStudentDeleted     = "Santri berhasil dihapus."
	msgAssessmentSaved    = "Penilaian berhasil disimpan!"
	msgAssessmentsReset   = "Semua data hafalan berhasil direset."
	msgReloaded           = "Data berhasil dimuat ulang!"
	msgSelectChapter      = "Pilih santri dan surat terlebih dahulu."
	msgIncompleteCriteria = "Mohon isi semua kriteria penilaian."
	msgInvalidInput       = "Mohon lengkapi data yang diperlukan."

	confirmDeleteClassTitle   = "Hapus Kelas?"
	confirmDeleteClassBody    = "Menghapus kelas juga akan menghapus semua santri di dalamnya. Anda yakin?"
	confirmDeleteStudentTitle = "Hapus Santri?"
	confirmDeleteStudentBody  = "Anda yakin ingin menghapus santri ini? Semua data hafalannya akan hilang."
	confirmResetTitle         = "Reset Semua Data Hafalan?"
	confirmResetBody          = "Tindakan ini akan menghapus semua progres dan riwayat penilaian untuk SEMUA santri. Data nama santri akan tetap ada."
)

// Notifier pushes a transient user-visible message.
type Notifier interface {
	Push(ctx context.Context, message string, isError bool) (dto.NotificationResponse, error)
}

// Confirmer gates destructive actions behind an explicit confirm step.
type Confirmer interface {
	Request(ctx context.Context, title, body string, commit CommitFunc) dto.ConfirmationResponse
}

// TrackerService owns the class and student collections and every operation on them.
type TrackerService interface {
	Load(ctx context.Context)
	Reload(ctx context.Context)

	ListClasses(ctx context.Context) []dto.ClassResponse
	GetClass(ctx context.Context, id string) (dto.ClassResponse, error)
	CreateClass(ctx context.Context, payload dto.ClassCreateRequest) (dto.ClassResponse, error)
	UpdateClass(ctx context.Context, id string, payload dto.ClassUpdateRequest) (dto.ClassResponse, error)
	DeleteClass(ctx context.Context, id string) error
	RequestDeleteClass(ctx context.Context, id string) (dto.ConfirmationResponse, error)

	ListStudents(ctx context.Context, req dto.StudentListRequest) ([]dto.StudentResponse, error)
	GetStudent(ctx context.Context, id string) (dto.StudentResponse, error)
	CreateStudent(ctx context.Context, payload dto.StudentCreateRequest) (dto.StudentResponse, error)
	UpdateStudent(ctx context.Context, id string, payload dto.StudentUpdateRequest) (dto.StudentResponse, error)
	DeleteStudent(ctx context.Context, id string) error
	RequestDeleteStudent(ctx context.Context, id string) (dto.ConfirmationResponse, error)

	RecordAssessment(ctx context.Context, studentID string, payload dto.AssessmentRequest) (dto.StudentResponse, error)
	ResetAllAssessments(ctx context.Context) error
	RequestResetAssessments(ctx context.Context) dto.ConfirmationResponse

	ImportCSV(ctx context.Context, raw string) (dto.ImportResponse, error)
	ExportCSV(ctx context.Context) dto.ExportResult

	Dashboard(ctx context.Context) dto.DashboardResponse
	ClassProgress(ctx context.Context, classID string) (dto.ClassProgressResponse, error)
	StudentProgress(ctx context.Context, studentID string) (dto.StudentProgressResponse, error)
}

type trackerService struct {
	repo          repository.StateRepository
	notifier      Notifier
	confirmations Confirmer
	validator     *validator.Validate
	logger        zerolog.Logger
	tracer        trace.Tracer
	sanitizer     *bluemonday.Policy
	now           func() time.Time
	newID         func() string

	mu       sync.Mutex
	classes  []models.Class
	students []models.Student
}

// NewTrackerService constructs the tracker over the persistent store. Call Load
// before serving requests.
func NewTrackerService(repo repository.StateRepository, notifier Notifier, confirmations Confirmer, validate *validator.Validate, logger zerolog.Logger) TrackerService {
	return &trackerService{
		repo:          repo,
		notifier:      notifier,
		confirmations: confirmations,
		validator:     validate,
		logger:        logger.With().Str("component", "tracker_service").Logger(),
		tracer:        otel.Tracer("github.com/noah-isme/alhafizh-api/internal/service/tracker"),
		sanitizer:     bluemonday.StrictPolicy(),
		now:           time.Now,
		newID:         uuid.NewString,
		classes:       []models.Class{},
		students:      []models.Student{},
	}
}

func (s *trackerService) Load(ctx context.Context) {
	state := s.repo.Load(ctx)

	s.mu.Lock()
	s.classes = state.Classes
	s.students = state.Students
	s.mu.Unlock()

	s.logger.Info().Int("classes", len(state.Classes)).Int("students", len(state.Students)).Msg("tracker state loaded")
}

func (s *trackerService) Reload(ctx context.Context) {
	s.Load(ctx)
	s.notify(ctx, msgReloaded, false)
}

func (s *trackerService) ListClasses(_ context.Context) []dto.ClassResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]dto.ClassResponse, 0, len(s.classes))
	for _, class := range s.classes {
		out = append(out, dto.NewClassResponse(class, s.countStudentsLocked(class.ID)))
	}
	return out
}

func (s *trackerService) GetClass(_ context.Context, id string) (dto.ClassResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.classIndexLocked(id)
	if idx < 0 {
		return dto.ClassResponse{}, ErrClassNotFound
	}
	class := s.classes[idx]
	return dto.NewClassResponse(class, s.countStudentsLocked(class.ID)), nil
}

func (s *trackerService) CreateClass(ctx context.Context, payload dto.ClassCreateRequest) (dto.ClassResponse, error) {
	ctx, span := s.tracer.Start(ctx, "tracker.create_class")
	defer span.End()

	if err := s.validator.Struct(payload); err != nil {
		return dto.ClassResponse{}, s.reject(ctx, span, err, msgInvalidInput)
	}

	name := s.cleanText(payload.Name)
	if name == "" {
		return dto.ClassResponse{}, s.reject(ctx, span, ErrNameRequired, msgInvalidInput)
	}

	target := models.DefaultTargetRange()
	if payload.TargetRange != nil {
		target = payload.TargetRange.ToModel()
	}

	class := models.Class{ID: s.newID(), Name: name, TargetRange: target.Normalize()}
	span.SetAttributes(attribute.String("tracker.class_id", class.ID))

	s.mu.Lock()
	s.classes = append(s.classes, class)
	s.persistLocked(ctx, "create_class")
	response := dto.NewClassResponse(class, 0)
	s.mu.Unlock()

	s.notify(ctx, msgClassCreated, false)
	return response, nil
}

func (s *trackerService) UpdateClass(ctx context.Context, id string, payload dto.ClassUpdateRequest) (dto.ClassResponse, error) {
	ctx, span := s.tracer.Start(ctx, "tracker.update_class", trace.WithAttributes(attribute.String("tracker.class_id", id)))
	defer span.End()

	if err := s.validator.Struct(payload); err != nil {
		return dto.ClassResponse{}, s.reject(ctx, span, err, msgInvalidInput)
	}

	var name string
	if payload.Name != nil {
		name = s.cleanText(*payload.Name)
		if name == "" {
			return dto.ClassResponse{}, s.reject(ctx, span, ErrNameRequired, msgInvalidInput)
		}
	}

	s.mu.Lock()
	idx := s.classIndexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return dto.ClassResponse{}, s.fail(span, ErrClassNotFound)
	}

	class := s.classes[idx]
	if payload.Name != nil {
		class.Name = name
	}
	if payload.TargetRange != nil {
		class.TargetRange = payload.TargetRange.ToModel()
	}
	class.TargetRange = class.TargetRange.Normalize()
	s.classes[idx] = class

	s.persistLocked(ctx, "update_class")
	response := dto.NewClassResponse(class, s.countStudentsLocked(class.ID))
	s.mu.Unlock()

	s.notify(ctx, msgClassUpdated, false)
	return response, nil
}

func (s *trackerService) DeleteClass(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "tracker.delete_class", trace.WithAttributes(attribute.String("tracker.class_id", id)))
	defer span.End()

	s.mu.Lock()
	idx := s.classIndexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return s.fail(span, ErrClassNotFound)
	}

	s.classes = append(s.classes[:idx:idx], s.classes[idx+1:]...)
	remaining := make([]models.Student, 0, len(s.students))
	removed := 0
	for _, student := range s.students {
		if student.ClassID == id {
			removed++
			continue
		}
		remaining = append(remaining, student)
	}
	s.students = remaining
	s.persistLocked(ctx, "delete_class")
	s.mu.Unlock()

	span.SetAttributes(attribute.Int("tracker.students_removed", removed))
	s.notify(ctx, msgClassDeleted, false)
	return nil
}

func (s *trackerService) RequestDeleteClass(ctx context.Context, id string) (dto.ConfirmationResponse, error) {
	if _, err := s.GetClass(ctx, id); err != nil {
		return dto.ConfirmationResponse{}, err
	}

	return s.confirmations.Request(ctx, confirmDeleteClassTitle, confirmDeleteClassBody, func(ctx context.Context) error {
		return s.DeleteClass(ctx, id)
	}), nil
}

func (s *trackerService) ListStudents(_ context.Context, req dto.StudentListRequest) ([]dto.StudentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	s.mu.Lock()
	filtered := make([]models.Student, 0, len(s.students))
	for _, student := range s.students {
		if req.ClassID != "" && student.ClassID != req.ClassID {
			continue
		}
		filtered = append(filtered, student.Clone())
	}
	s.mu.Unlock()

	sortStudents(filtered, req.Sort)
	return dto.NewStudentResponseSlice(filtered), nil
}

func (s *trackerService) GetStudent(_ context.Context, id string) (dto.StudentResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.studentIndexLocked(id)
	if idx < 0 {
		return dto.StudentResponse{}, ErrStudentNotFound
	}
	return dto.NewStudentResponse(s.students[idx].Clone()), nil
}

func (s *trackerService) CreateStudent(ctx context.Context, payload dto.StudentCreateRequest) (dto.StudentResponse, error) {
	ctx, span := s.tracer.Start(ctx, "tracker.create_student")
	defer span.End()

	if err := s.validator.Struct(payload); err != nil {
		return dto.StudentResponse{}, s.reject(ctx, span, err, msgInvalidInput)
	}

	name := s.cleanText(payload.Name)
	if name == "" {
		return dto.StudentResponse{}, s.reject(ctx, span, ErrNameRequired, msgInvalidInput)
	}

	s.mu.Lock()
	if s.classIndexLocked(payload.ClassID) < 0 {
		s.mu.Unlock()
		return dto.StudentResponse{}, s.reject(ctx, span, ErrUnknownClass, msgInvalidInput)
	}

	student := models.Student{
		ID:          s.newID(),
		Name:        name,
		ClassID:     payload.ClassID,
		Assessments: []models.Assessment{},
	}
	span.SetAttributes(attribute.String("tracker.student_id", student.ID))

	s.students = append(s.students, student)
	s.persistLocked(ctx, "create_student")
	s.mu.Unlock()

	s.notify(ctx, msgStudentCreated, false)
	return dto.NewStudentResponse(student), nil
}

func (s *trackerService) UpdateStudent(ctx context.Context, id string, payload dto.StudentUpdateRequest) (dto.StudentResponse, error) {
	ctx, span := s.tracer.Start(ctx, "tracker.update_student", trace.WithAttributes(attribute.String("tracker.student_id", id)))
	defer span.End()

	if err := s.validator.Struct(payload); err != nil {
		return dto.StudentResponse{}, s.reject(ctx, span, err, msgInvalidInput)
	}

	var name string
	if payload.Name != nil {
		name = s.cleanText(*payload.Name)
		if name == "" {
			return dto.StudentResponse{}, s.reject(ctx, span, ErrNameRequired, msgInvalidInput)
		}
	}

	s.mu.Lock()
	idx := s.studentIndexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return dto.StudentResponse{}, s.fail(span, ErrStudentNotFound)
	}
	if payload.ClassID != nil && s.classIndexLocked(*payload.ClassID) < 0 {
		s.mu.Unlock()
		return dto.StudentResponse{}, s.reject(ctx, span, ErrUnknownClass, msgInvalidInput)
	}

	student := &s.students[idx]
	if payload.Name != nil {
		student.Name = name
	}
	if payload.ClassID != nil {
		student.ClassID = *payload.ClassID
	}

	s.persistLocked(ctx, "update_student")
	response := dto.NewStudentResponse(student.Clone())
	s.mu.Unlock()

	s.notify(ctx, msgStudentUpdated, false)
	return response, nil
}

func (s *trackerService) DeleteStudent(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "tracker.delete_student", trace.WithAttributes(attribute.String("tracker.student_id", id)))
	defer span.End()

	s.mu.Lock()
	idx := s.studentIndexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return s.fail(span, ErrStudentNotFound)
	}

	s.students = append(s.students[:idx:idx], s.students[idx+1:]...)
	s.persistLocked(ctx, "delete_student")
	s.mu.Unlock()

	s.notify(ctx, msgStudentDeleted, false)
	return nil
}

func (s *trackerService) RequestDeleteStudent(ctx context.Context, id string) (dto.ConfirmationResponse, error) {
	if _, err := s.GetStudent(ctx, id); err != nil {
		return dto.ConfirmationResponse{}, err
	}

	return s.confirmations.Request(ctx, confirmDeleteStudentTitle, confirmDeleteStudentBody, func(ctx context.Context) error {
		return s.DeleteStudent(ctx, id)
	}), nil
}

func (s *trackerService) RecordAssessment(ctx context.Context, studentID string, payload dto.AssessmentRequest) (dto.StudentResponse, error) {
	ctx, span := s.tracer.Start(ctx, "tracker.record_assessment", trace.WithAttributes(attribute.String("tracker.student_id", studentID)))
	defer span.End()

	chapter, err := resolveChapter(payload)
	if err != nil {
		return dto.StudentResponse{}, s.reject(ctx, span, err, msgSelectChapter)
	}
	span.SetAttributes(attribute.String("tracker.chapter", chapter.LatinName))

	if err := s.validator.Struct(payload); err != nil {
		return dto.StudentResponse{}, s.reject(ctx, span, err, msgIncompleteCriteria)
	}

	grades := payload.Grades()
	result, err := grading.Evaluate(grades)
	if err != nil {
		return dto.StudentResponse{}, s.reject(ctx, span, err, msgIncompleteCriteria)
	}

	s.mu.Lock()
	idx := s.studentIndexLocked(studentID)
	if idx < 0 {
		s.mu.Unlock()
		return dto.StudentResponse{}, s.fail(span, ErrStudentNotFound)
	}

	assessment := models.Assessment{
		ChapterName:      chapter.LatinName,
		Score:            result.Score,
		RepetitionStatus: result.Status,
		RecordedAt:       s.now().UTC(),
		Notes:            s.cleanText(payload.Notes),
		CriteriaGrades:   grades,
	}

	student := &s.students[idx]
	replaced := false
	for i := range student.Assessments {
		if student.Assessments[i].ChapterName == assessment.ChapterName {
			student.Assessments[i] = assessment
			replaced = true
			break
		}
	}
	if !replaced {
		student.Assessments = append(student.Assessments, assessment)
	}

	span.SetAttributes(
		attribute.Int("tracker.score", result.Score),
		attribute.String("tracker.status", string(result.Status)),
		attribute.Bool("tracker.replaced", replaced),
	)

	s.persistLocked(ctx, "record_assessment")
	response := dto.NewStudentResponse(student.Clone())
	s.mu.Unlock()

	s.notify(ctx, msgAssessmentSaved, false)
	return response, nil
}

func (s *trackerService) ResetAllAssessments(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "tracker.reset_assessments")
	defer span.End()

	s.mu.Lock()
	for i := range s.students {
		s.students[i].Assessments = []models.Assessment{}
	}
	s.persistLocked(ctx, "reset_assessments")
	s.mu.Unlock()

	s.notify(ctx, msgAssessmentsReset, false)
	return nil
}

func (s *trackerService) RequestResetAssessments(ctx context.Context) dto.ConfirmationResponse {
	return s.confirmations.Request(ctx, confirmResetTitle, confirmResetBody, s.ResetAllAssessments)
}

// persistLocked flushes both collections. Store failures are logged and counted;
// the in-memory state stays authoritative.
func (s *trackerService) persistLocked(ctx context.Context, operation string) {
	observability.TrackerMutations().WithLabelValues(operation).Inc()

	state := repository.State{Classes: s.classes, Students: s.students}
	if err := s.repo.Save(ctx, state); err != nil {
		observability.PersistFailures().Inc()
		s.logger.Error().Err(err).Str("operation", operation).Msg("failed to save data to store")
	}
}

func (s *trackerService) notify(ctx context.Context, message string, isError bool) {
	if s.notifier == nil {
		return
	}
	if _, err := s.notifier.Push(ctx, message, isError); err != nil {
		s.logger.Warn().Err(err).Msg("failed to push notification")
	}
}

// reject records a validation failure, tells the user, and returns err.
func (s *trackerService) reject(ctx context.Context, span trace.Span, err error, message string) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, "validation_failed")
	s.notify(ctx, message, true)
	return err
}

func (s *trackerService) fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

func (s *trackerService) cleanText(value string) string {
	return strings.TrimSpace(html.UnescapeString(s.sanitizer.Sanitize(value)))
}

func (s *trackerService) classIndexLocked(id string) int {
	for i, class := range s.classes {
		if class.ID == id {
			return i
		}
	}
	return -1
}

func (s *trackerService) studentIndexLocked(id string) int {
	for i, student := range s.students {
		if student.ID == id {
			return i
		}
	}
	return -1
}

func (s *trackerService) countStudentsLocked(classID string) int {
	count := 0
	for _, student := range s.students {
		if student.ClassID == classID {
			count++
		}
	}
	return count
}

func (s *trackerService) findClassLocked(id string) (models.Class, bool) {
	idx := s.classIndexLocked(id)
	if idx < 0 {
		return models.Class{}, false
	}
	return s.classes[idx], true
}

func resolveChapter(payload dto.AssessmentRequest) (catalog.Chapter, error) {
	if payload.ChapterNumber != 0 {
		chapter, ok := catalog.Lookup(payload.ChapterNumber)
		if !ok {
			return catalog.Chapter{}, ErrUnknownChapter
		}
		return chapter, nil
	}

	name := strings.TrimSpace(payload.ChapterName)
	if name == "" {
		return catalog.Chapter{}, ErrChapterRequired
	}

	chapter, ok := catalog.ByLatinName(name)
	if !ok {
		return catalog.Chapter{}, ErrUnknownChapter
	}
	return chapter, nil
}

// sortStudents orders students alphabetically (Indonesian collation) or by
// assessment count.
func sortStudents(students []models.Student, order string) {
	switch order {
	case dto.StudentSortMost:
		sort.SliceStable(students, func(i, j int) bool {
			return len(students[i].Assessments) > len(students[j].Assessments)
		})
	case dto.StudentSortLeast:
		sort.SliceStable(students, func(i, j int) bool {
			return len(students[i].Assessments) < len(students[j].Assessments)
		})
	default:
		collator := collate.New(language.Indonesian, collate.IgnoreCase)
		sort.SliceStable(students, func(i, j int) bool {
			return collator.CompareString(students[i].Name, students[j].Name) < 0
		})
	}
}
