package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/noah-isme/alhafizh-api/internal/models"
)

// Storage keys holding the two entity collections.
const (
	KeyClasses  = "classes"
	KeyStudents = "students"
)

// State is the full set of collections owned by the tracker.
type State struct {
	Classes  []models.Class
	Students []models.Student
}

// StateRepository loads and flushes the tracker collections.
type StateRepository interface {
	// Load returns the stored collections, seeding absent keys with defaults.
	// Read failures are logged and answered with defaults.
	Load(ctx context.Context) State
	// Save writes both collections in one operation.
	Save(ctx context.Context, state State) error
}

type stateRepository struct {
	kv     KVRepository
	logger zerolog.Logger
	now    func() time.Time
}

// NewStateRepository builds the persistent store over a key-value repository.
func NewStateRepository(kv KVRepository, logger zerolog.Logger) StateRepository {
	return &stateRepository{
		kv:     kv,
		logger: logger.With().Str("component", "state_repository").Logger(),
		now:    time.Now,
	}
}

func (r *stateRepository) Load(ctx context.Context) State {
	defaults := DefaultState(r.now())
	state := State{}
	seed := map[string][]byte{}

	rawClasses, err := r.kv.Get(ctx, KeyClasses)
	switch {
	case errors.Is(err, ErrKeyNotFound):
		state.Classes = defaults.Classes
		seed[KeyClasses] = mustMarshal(defaults.Classes)
	case err != nil:
		r.logger.Error().Err(err).Msg("failed to load data from store")
		return defaults
	default:
		if err := json.Unmarshal(rawClasses, &state.Classes); err != nil {
			r.logger.Error().Err(err).Str("key", KeyClasses).Msg("stored data is corrupt, using defaults")
			return defaults
		}
	}

	rawStudents, err := r.kv.Get(ctx, KeyStudents)
	switch {
	case errors.Is(err, ErrKeyNotFound):
		state.Students = defaults.Students
		seed[KeyStudents] = mustMarshal(defaults.Students)
	case err != nil:
		r.logger.Error().Err(err).Msg("failed to load data from store")
		return defaults
	default:
		if err := json.Unmarshal(rawStudents, &state.Students); err != nil {
			r.logger.Error().Err(err).Str("key", KeyStudents).Msg("stored data is corrupt, using defaults")
			return defaults
		}
	}

	if len(seed) > 0 {
		if err := r.kv.PutMany(ctx, seed); err != nil {
			r.logger.Error().Err(err).Msg("failed to write seed data")
		} else {
			r.logger.Info().Int("keys", len(seed)).Msg("seeded default data")
		}
	}

	return normalizeState(state)
}

func (r *stateRepository) Save(ctx context.Context, state State) error {
	state = normalizeState(state)

	classes, err := json.Marshal(state.Classes)
	if err != nil {
		return fmt.Errorf("encode classes: %w", err)
	}
	students, err := json.Marshal(state.Students)
	if err != nil {
		return fmt.Errorf("encode students: %w", err)
	}

	return r.kv.PutMany(ctx, map[string][]byte{
		KeyClasses:  classes,
		KeyStudents: students,
	})
}

// normalizeState replaces nil collections with empty ones so they encode as [].
func normalizeState(state State) State {
	if state.Classes == nil {
		state.Classes = []models.Class{}
	}
	if state.Students == nil {
		state.Students = []models.Student{}
	}
	for i := range state.Students {
		if state.Students[i].Assessments == nil {
			state.Students[i].Assessments = []models.Assessment{}
		}
	}
	return state
}

func mustMarshal(value interface{}) []byte {
	payload, err := json.Marshal(value)
	if err != nil {
		panic(err)
	}
	return payload
}
