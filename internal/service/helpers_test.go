package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/noah-isme/alhafizh-api/internal/dto"
	"github.com/noah-isme/alhafizh-api/internal/models"
	"github.com/noah-isme/alhafizh-api/internal/repository"
)

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

type memoryStateRepo struct {
	mu      sync.Mutex
	state   repository.State
	saves   int
	saveErr error
}

func (m *memoryStateRepo) Load(context.Context) repository.State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return repository.State{
		Classes:  models.CloneClasses(m.state.Classes),
		Students: models.CloneStudents(m.state.Students),
	}
}

func (m *memoryStateRepo) Save(_ context.Context, state repository.State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.state = repository.State{
		Classes:  models.CloneClasses(state.Classes),
		Students: models.CloneStudents(state.Students),
	}
	return nil
}

func (m *memoryStateRepo) snapshot() (repository.State, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return repository.State{
		Classes:  models.CloneClasses(m.state.Classes),
		Students: models.CloneStudents(m.state.Students),
	}, m.saves
}

type pushedMessage struct {
	message string
	isError bool
}

type recordingNotifier struct {
	mu       sync.Mutex
	messages []pushedMessage
}

func (r *recordingNotifier) Push(_ context.Context, message string, isError bool) (dto.NotificationResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, pushedMessage{message: message, isError: isError})
	return dto.NotificationResponse{ID: fmt.Sprintf("n-%d", len(r.messages)), Message: message, IsError: isError}, nil
}

func (r *recordingNotifier) last() pushedMessage {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.messages) == 0 {
		return pushedMessage{}
	}
	return r.messages[len(r.messages)-1]
}

func sequentialIDs(prefix string) func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

var fixedNow = time.Date(2024, time.March, 10, 8, 30, 0, 0, time.UTC)

type trackerFixture struct {
	svc           *trackerService
	repo          *memoryStateRepo
	notifier      *recordingNotifier
	confirmations ConfirmationService
}

func newTrackerFixture(t *testing.T, state repository.State) trackerFixture {
	t.Helper()

	repo := &memoryStateRepo{state: state}
	notifier := &recordingNotifier{}
	confirmations := NewConfirmationService(time.Minute, testLogger())
	validate := validator.New(validator.WithRequiredStructEnabled())

	svc := NewTrackerService(repo, notifier, confirmations, validate, testLogger()).(*trackerService)
	svc.now = func() time.Time { return fixedNow }
	svc.newID = sequentialIDs("id")
	svc.Load(context.Background())

	return trackerFixture{svc: svc, repo: repo, notifier: notifier, confirmations: confirmations}
}

func fullGrades(fluency, articulation, recitation, elongation string) map[string]string {
	return map[string]string{
		"fluency":          fluency,
		"articulation":     articulation,
		"recitation_rules": recitation,
		"elongation":       elongation,
	}
}

func juzAmmaState() repository.State {
	return repository.State{
		Classes: []models.Class{
			{ID: "k1", Name: "Juz Amma", TargetRange: models.TargetRange{From: 78, To: 114}},
		},
		Students: []models.Student{
			{ID: "s1", Name: "Ali", ClassID: "k1", Assessments: []models.Assessment{}},
		},
	}
}
