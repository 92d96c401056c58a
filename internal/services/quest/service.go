// Package quest defines the engine-facing API of a quest session: character
// creation, event draws, option choices, route transitions and the ending.
package quest

//go:generate mockgen -destination=mock/mock_service.go -package=questmock github.com/KirkDiggler/solution-quest/internal/services/quest Service

import (
	"context"

	"github.com/KirkDiggler/solution-quest/internal/entities/quest"
)

// Service drives one session through the quest state machine. Every method
// works on a session ID and returns copies of the session state.
type Service interface {
	// Character creation
	ListCharacterOptions(ctx context.Context, input *ListCharacterOptionsInput) (*ListCharacterOptionsOutput, error)
	InitializeSession(ctx context.Context, input *InitializeSessionInput) (*InitializeSessionOutput, error)
	SelectCourseType(ctx context.Context, input *SelectCourseTypeInput) (*SelectCourseTypeOutput, error)

	// Events
	GetCurrentEvent(ctx context.Context, input *GetCurrentEventInput) (*GetCurrentEventOutput, error)
	ChooseOption(ctx context.Context, input *ChooseOptionInput) (*ChooseOptionOutput, error)
	DrawEvent(ctx context.Context, input *DrawEventInput) (*DrawEventOutput, error)

	// Route transitions
	ListTransitions(ctx context.Context, input *ListTransitionsInput) (*ListTransitionsOutput, error)
	ChooseTransition(ctx context.Context, input *ChooseTransitionInput) (*ChooseTransitionOutput, error)

	// Ending and lifecycle
	GetCurrentEnding(ctx context.Context, input *GetCurrentEndingInput) (*GetCurrentEndingOutput, error)
	ResetSession(ctx context.Context, input *ResetSessionInput) (*ResetSessionOutput, error)
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)
}

// Outcome says what follows an answered event
type Outcome string

// Outcomes of ChooseOption
const (
	// OutcomeNextEvent means the next event of the route was drawn
	OutcomeNextEvent Outcome = "next_event"
	// OutcomeRouteTransition means the route is over and destinations are offered
	OutcomeRouteTransition Outcome = "route_transition"
	// OutcomeEnded means the quest finished and an ending was resolved
	OutcomeEnded Outcome = "ended"
)

// SessionUpdate is the result of answering an event
type SessionUpdate struct {
	Session *quest.Session
	// Effect is the effect string of the chosen option, applied or not
	Effect  string
	Outcome Outcome
}

// ListCharacterOptionsInput defines the request for the character option table
type ListCharacterOptionsInput struct{}

// ListCharacterOptionsOutput contains every questionnaire option with its modifier
type ListCharacterOptionsOutput struct {
	Options []quest.CharacterOption
}

// InitializeSessionInput defines the request for creating a character.
// An empty SessionID creates a new session; an existing ID must be waiting
// for character creation.
type InitializeSessionInput struct {
	SessionID  string
	Character  *quest.Character
	CourseType quest.CourseType
}

// InitializeSessionOutput contains the started session and the character card
type InitializeSessionOutput struct {
	Session *quest.Session
	Card    quest.CharacterCard
	// Modifiers lists the stat modifiers applied at creation
	Modifiers []string
}

// SelectCourseTypeInput defines the request for choosing a student's course
type SelectCourseTypeInput struct {
	SessionID  string
	CourseType quest.CourseType
}

// SelectCourseTypeOutput contains the session with its first event drawn
type SelectCourseTypeOutput struct {
	Session *quest.Session
}

// GetCurrentEventInput defines the request for the event being shown
type GetCurrentEventInput struct {
	SessionID string
}

// GetCurrentEventOutput contains the event and its position in the route
type GetCurrentEventOutput struct {
	Event *quest.EventRecord
	// Position is 1-based, Total is the route budget
	Position int
	Total    int
	Route    quest.Route
}

// ChooseOptionInput defines the request for answering the current event
type ChooseOptionInput struct {
	SessionID   string
	OptionIndex int
}

// ChooseOptionOutput contains the session after the answer
type ChooseOptionOutput struct {
	SessionUpdate
}

// DrawEventInput defines the request for retrying a failed draw
type DrawEventInput struct {
	SessionID string
}

// DrawEventOutput contains the session with a current event
type DrawEventOutput struct {
	Session *quest.Session
}

// ListTransitionsInput defines the request for the offered destinations
type ListTransitionsInput struct {
	SessionID string
}

// ListTransitionsOutput contains the destinations in display order
type ListTransitionsOutput struct {
	Route        quest.Route
	Destinations []quest.Destination
}

// ChooseTransitionInput defines the request for leaving the current route
type ChooseTransitionInput struct {
	SessionID   string
	Destination quest.Destination
}

// ChooseTransitionOutput contains the session on its new route, or ended
type ChooseTransitionOutput struct {
	Session *quest.Session
	Ended   bool
}

// GetCurrentEndingInput defines the request for the resolved ending
type GetCurrentEndingInput struct {
	SessionID string
}

// GetCurrentEndingOutput contains the ending with the state it was resolved from
type GetCurrentEndingOutput struct {
	Ending    *quest.EndingRecord
	Stats     quest.Stats
	Route     quest.Route
	RoutePath []string
}

// ResetSessionInput defines the request for restarting a session
type ResetSessionInput struct {
	SessionID string
}

// ResetSessionOutput contains the session back in character creation
type ResetSessionOutput struct {
	Session *quest.Session
}

// GetSessionInput defines the request for a session snapshot
type GetSessionInput struct {
	SessionID string
}

// GetSessionOutput contains the session snapshot
type GetSessionOutput struct {
	Session *quest.Session
}
