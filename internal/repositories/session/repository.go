// Package session defines per-process storage for quest sessions
package session

//go:generate mockgen -destination=mock/mock_repository.go -package=sessionmock github.com/KirkDiggler/solution-quest/internal/repositories/session Repository

import (
	"context"

	"github.com/KirkDiggler/solution-quest/internal/entities/quest"
)

// Repository stores quest sessions. Implementations hand out copies so callers
// never share a session value with the store.
type Repository interface {
	// Create stores a new session
	// Returns errors.InvalidArgument for a nil session or empty ID
	// Returns errors.AlreadyExists if the ID is taken
	Create(ctx context.Context, input *CreateInput) (*CreateOutput, error)

	// Get retrieves a session by ID
	// Returns errors.NotFound if the session doesn't exist
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Update replaces a stored session
	// Returns errors.NotFound if the session doesn't exist
	Update(ctx context.Context, input *UpdateInput) (*UpdateOutput, error)
}

// CreateInput defines the input for creating a session
type CreateInput struct {
	Session *quest.Session
}

// CreateOutput defines the output for creating a session
type CreateOutput struct {
	Session *quest.Session
}

// GetInput defines the input for getting a session
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a session
type GetOutput struct {
	Session *quest.Session
}

// UpdateInput defines the input for updating a session
type UpdateInput struct {
	Session *quest.Session
}

// UpdateOutput defines the output for updating a session
type UpdateOutput struct {
	Session *quest.Session
}
