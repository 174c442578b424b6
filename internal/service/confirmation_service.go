package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/noah-isme/alhafizh-api/internal/dto"
	"github.com/noah-isme/alhafizh-api/internal/observability"
)

// DefaultConfirmationTTL bounds how long a destructive action may wait for confirmation.
const DefaultConfirmationTTL = 2 * time.Minute

// ErrConfirmationNotFound indicates there is no pending confirmation with the given id.
var ErrConfirmationNotFound = errors.New("confirmation not found")

// CommitFunc performs a confirmed destructive action.
type CommitFunc func(ctx context.Context) error

// ConfirmationService holds at most one destructive action awaiting an explicit confirm.
// A new request replaces the pending one.
type ConfirmationService interface {
	Request(ctx context.Context, title, body string, commit CommitFunc) dto.ConfirmationResponse
	Pending(ctx context.Context) (dto.ConfirmationResponse, bool)
	Confirm(ctx context.Context, id string) error
	Cancel(ctx context.Context, id string) error
}

type pendingConfirmation struct {
	response dto.ConfirmationResponse
	commit   CommitFunc
	timer    *time.Timer
}

type confirmationService struct {
	ttl    time.Duration
	logger zerolog.Logger
	now    func() time.Time
	newID  func() string

	mu      sync.Mutex
	pending *pendingConfirmation
}

// NewConfirmationService constructs the confirm-then-commit gate.
func NewConfirmationService(ttl time.Duration, logger zerolog.Logger) ConfirmationService {
	if ttl <= 0 {
		ttl = DefaultConfirmationTTL
	}

	return &confirmationService{
		ttl:    ttl,
		logger: logger.With().Str("component", "confirmation_service").Logger(),
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

func (s *confirmationService) Request(_ context.Context, title, body string, commit CommitFunc) dto.ConfirmationResponse {
	response := dto.ConfirmationResponse{
		ID:        s.newID(),
		Title:     title,
		Body:      body,
		ExpiresAt: s.now().UTC().Add(s.ttl),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending != nil {
		s.pending.timer.Stop()
		observability.Confirmations().WithLabelValues("replaced").Inc()
	}

	id := response.ID
	s.pending = &pendingConfirmation{
		response: response,
		commit:   commit,
		timer:    time.AfterFunc(s.ttl, func() { s.expire(id) }),
	}

	return response
}

func (s *confirmationService) Pending(_ context.Context) (dto.ConfirmationResponse, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending == nil {
		return dto.ConfirmationResponse{}, false
	}
	return s.pending.response, true
}

func (s *confirmationService) Confirm(ctx context.Context, id string) error {
	pending, ok := s.take(id)
	if !ok {
		return ErrConfirmationNotFound
	}

	observability.Confirmations().WithLabelValues("confirmed").Inc()
	s.logger.Info().Str("confirmation_id", id).Str("title", pending.response.Title).Msg("confirmation accepted")

	return pending.commit(ctx)
}

func (s *confirmationService) Cancel(_ context.Context, id string) error {
	if _, ok := s.take(id); !ok {
		return ErrConfirmationNotFound
	}

	observability.Confirmations().WithLabelValues("cancelled").Inc()
	return nil
}

// take removes and returns the pending confirmation when its id matches.
func (s *confirmationService) take(id string) (*pendingConfirmation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending == nil || s.pending.response.ID != id {
		return nil, false
	}

	pending := s.pending
	pending.timer.Stop()
	s.pending = nil
	return pending, true
}

func (s *confirmationService) expire(id string) {
	if _, ok := s.take(id); ok {
		observability.Confirmations().WithLabelValues("expired").Inc()
		s.logger.Debug().Str("confirmation_id", id).Msg("confirmation expired")
	}
}
