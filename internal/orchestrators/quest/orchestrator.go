// Package quest implements the quest session orchestrator. It owns the state
// machine and delegates every rule to the engine.
package quest

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/solution-quest/internal/engine"
	"github.com/KirkDiggler/solution-quest/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/solution-quest/internal/entities/quest"
	"github.com/KirkDiggler/solution-quest/internal/errors"
	"github.com/KirkDiggler/solution-quest/internal/pkg/clock"
	"github.com/KirkDiggler/solution-quest/internal/pkg/idgen"
	"github.com/KirkDiggler/solution-quest/internal/repositories/content"
	"github.com/KirkDiggler/solution-quest/internal/repositories/session"
	questsvc "github.com/KirkDiggler/solution-quest/internal/services/quest"
)

// Config holds the dependencies for the quest orchestrator
type Config struct {
	Engine      engine.Engine
	ContentRepo content.Repository
	SessionRepo session.Repository
	EventBus    events.EventBus
	IDGenerator idgen.Generator
	// Clock defaults to the wall clock
	Clock clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.ContentRepo == nil {
		vb.RequiredField("ContentRepo")
	}
	if c.SessionRepo == nil {
		vb.RequiredField("SessionRepo")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

// Orchestrator implements questsvc.Service
type Orchestrator struct {
	engine      engine.Engine
	contentRepo content.Repository
	sessionRepo session.Repository
	eventBus    events.EventBus
	idGen       idgen.Generator
	clock       clock.Clock

	// mu serializes read-modify-write of sessions. It is never held while
	// content loads.
	mu sync.Mutex
}

var _ questsvc.Service = (*Orchestrator)(nil)

// New creates a new quest orchestrator with the provided dependencies
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	return &Orchestrator{
		engine:      cfg.Engine,
		contentRepo: cfg.ContentRepo,
		sessionRepo: cfg.SessionRepo,
		eventBus:    cfg.EventBus,
		idGen:       cfg.IDGenerator,
		clock:       clk,
	}, nil
}

// ListCharacterOptions returns the questionnaire option table
func (o *Orchestrator) ListCharacterOptions(
	ctx context.Context,
	_ *questsvc.ListCharacterOptionsInput,
) (*questsvc.ListCharacterOptionsOutput, error) {
	out, err := o.contentRepo.LoadCharacterOptions(ctx, &content.LoadCharacterOptionsInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load character options")
	}

	return &questsvc.ListCharacterOptionsOutput{Options: out.Options}, nil
}

// GetSession returns a snapshot of a session
func (o *Orchestrator) GetSession(ctx context.Context, input *questsvc.GetSessionInput) (*questsvc.GetSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.sessionRepo.Get(ctx, &session.GetInput{ID: input.SessionID})
	if err != nil {
		return nil, err
	}

	return &questsvc.GetSessionOutput{Session: out.Session}, nil
}

// ResetSession returns a session to character creation. Any draw still
// loading for the old generation is discarded when it completes.
func (o *Orchestrator) ResetSession(
	ctx context.Context,
	input *questsvc.ResetSessionInput,
) (*questsvc.ResetSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	sess, err := o.update(ctx, input.SessionID, func(s *quest.Session) error {
		s.Reset(o.clock.Now())
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Session reset",
		"session_id", sess.ID,
		"generation", sess.Generation,
	)
	o.publish(ctx, questsvc.EventSessionReset, sess)

	return &questsvc.ResetSessionOutput{Session: sess}, nil
}

// update loads a session under the lock, applies fn and stores the result.
// Nothing is stored when fn fails.
func (o *Orchestrator) update(
	ctx context.Context,
	id string,
	fn func(*quest.Session) error,
) (*quest.Session, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	out, err := o.sessionRepo.Get(ctx, &session.GetInput{ID: id})
	if err != nil {
		return nil, err
	}

	sess := out.Session
	if err := fn(sess); err != nil {
		return nil, err
	}
	sess.UpdatedAt = o.clock.Now()

	if _, err := o.sessionRepo.Update(ctx, &session.UpdateInput{Session: sess}); err != nil {
		return nil, errors.Wrap(err, "failed to save session")
	}

	return sess.Clone(), nil
}

func (o *Orchestrator) publish(ctx context.Context, eventType string, sess *quest.Session) {
	event := events.NewGameEvent(eventType, rpgtoolkit.WrapSession(sess.Clone()), nil)
	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.Warn("Failed to publish quest event",
			"event_type", eventType,
			"session_id", sess.ID,
			"error", err,
		)
	}
}

// requirePhase fails with a message naming the step the session is missing
func requirePhase(s *quest.Session, want quest.Phase) error {
	if s.Phase == want {
		return nil
	}

	if want == quest.PhaseEnded {
		return errors.FailedPrecondition("quest has not ended").
			WithMeta("session_id", s.ID).
			WithMeta("phase", string(s.Phase))
	}

	var missing string
	switch s.Phase {
	case quest.PhaseCharacterCreation:
		missing = "character has not been created"
	case quest.PhaseCourseSelection:
		missing = "course type has not been selected"
	case quest.PhaseAwaitingEvent:
		missing = "next event has not been drawn"
	case quest.PhaseRouteTransition:
		missing = "route transition has not been chosen"
	case quest.PhaseEnded:
		missing = "quest has already ended"
	default:
		missing = "session is not ready"
	}
	return errors.FailedPrecondition(missing).
		WithMeta("session_id", s.ID).
		WithMeta("phase", string(s.Phase)).
		WithMeta("required_phase", string(want))
}
