package session

import (
	"context"
	"sync"

	"github.com/KirkDiggler/solution-quest/internal/entities/quest"
	"github.com/KirkDiggler/solution-quest/internal/errors"
)

const (
	errSessionNil = "session is required"
	errIDEmpty    = "session ID is required"
)

// InMemoryRepository implements Repository using a map guarded by a RWMutex
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*quest.Session
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]*quest.Session),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Create stores a new session
func (r *InMemoryRepository) Create(_ context.Context, input *CreateInput) (*CreateOutput, error) {
	if input == nil || input.Session == nil {
		return nil, errors.InvalidArgument(errSessionNil)
	}
	if input.Session.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Session.ID]; exists {
		return nil, errors.AlreadyExistsf("session %s already exists", input.Session.ID)
	}

	r.store[input.Session.ID] = input.Session.Clone()

	return &CreateOutput{Session: input.Session.Clone()}, nil
}

// Get retrieves a session by ID
func (r *InMemoryRepository) Get(_ context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	s, exists := r.store[input.ID]
	if !exists {
		return nil, errors.NotFoundf("session %s not found", input.ID)
	}

	return &GetOutput{Session: s.Clone()}, nil
}

// Update replaces a stored session
func (r *InMemoryRepository) Update(_ context.Context, input *UpdateInput) (*UpdateOutput, error) {
	if input == nil || input.Session == nil {
		return nil, errors.InvalidArgument(errSessionNil)
	}
	if input.Session.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Session.ID]; !exists {
		return nil, errors.NotFoundf("session %s not found", input.Session.ID)
	}

	r.store[input.Session.ID] = input.Session.Clone()

	return &UpdateOutput{Session: input.Session.Clone()}, nil
}
