package quest

import (
	"maps"
	"slices"
	"time"
)

// EventsPerRoute is the number of events drawn on each route
const EventsPerRoute = 7

// Phase is the state of the quest state machine
type Phase string

// Phases
const (
	PhaseCharacterCreation Phase = "character_creation"
	PhaseCourseSelection   Phase = "course_selection"
	PhaseEvent             Phase = "event"
	PhaseAwaitingEvent     Phase = "awaiting_event"
	PhaseRouteTransition   Phase = "route_transition"
	PhaseEnded             Phase = "ended"
)

// HistoryEntry records one answered event
type HistoryEntry struct {
	Event       EventRecord `json:"event" yaml:"event"`
	ChosenIndex int         `json:"chosen_index" yaml:"chosen_index"`
	Effect      string      `json:"effect" yaml:"effect"`
	StatsAfter  Stats       `json:"stats_after" yaml:"stats_after"`
	Route       Route       `json:"route" yaml:"route"`
	ChosenAt    time.Time   `json:"chosen_at" yaml:"chosen_at"`
}

// Session is the full state of one player's quest
type Session struct {
	ID           string          `json:"id"`
	Generation   int64           `json:"generation"`
	Phase        Phase           `json:"phase"`
	Character    *Character      `json:"character,omitempty"`
	Stats        Stats           `json:"stats"`
	CurrentRoute Route           `json:"current_route"`
	RoutePath    []string        `json:"route_path"`
	EventCount   int             `json:"event_count"`
	LocallyUsed  map[string]bool `json:"locally_used"`
	GloballyUsed map[string]bool `json:"globally_used"`
	CourseType   CourseType      `json:"course_type,omitempty"`
	CurrentEvent *EventRecord    `json:"current_event,omitempty"`
	History      []HistoryEntry  `json:"history"`
	Ending       *EndingRecord   `json:"ending,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// NewSession returns a session waiting for character creation
func NewSession(id string, now time.Time) *Session {
	return &Session{
		ID:           id,
		Phase:        PhaseCharacterCreation,
		Stats:        BaseStats(),
		LocallyUsed:  make(map[string]bool),
		GloballyUsed: make(map[string]bool),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Reset returns every field to its initial value and bumps the generation
func (s *Session) Reset(now time.Time) {
	generation := s.Generation + 1
	createdAt := s.CreatedAt
	*s = *NewSession(s.ID, now)
	s.Generation = generation
	s.CreatedAt = createdAt
}

// Progress returns the 1-based position of the current event within the route
// and the route budget, e.g. 3 of 7.
func (s *Session) Progress() (int, int) {
	return s.EventCount + 1, EventsPerRoute
}

// Clone returns a deep copy safe to hand to callers
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}

	c := *s
	if s.Character != nil {
		ch := *s.Character
		c.Character = &ch
	}
	if s.CurrentEvent != nil {
		ev := cloneEvent(*s.CurrentEvent)
		c.CurrentEvent = &ev
	}
	if s.Ending != nil {
		end := *s.Ending
		c.Ending = &end
	}
	c.RoutePath = slices.Clone(s.RoutePath)
	c.LocallyUsed = maps.Clone(s.LocallyUsed)
	c.GloballyUsed = maps.Clone(s.GloballyUsed)
	if c.LocallyUsed == nil {
		c.LocallyUsed = make(map[string]bool)
	}
	if c.GloballyUsed == nil {
		c.GloballyUsed = make(map[string]bool)
	}
	c.History = make([]HistoryEntry, len(s.History))
	for i, h := range s.History {
		h.Event = cloneEvent(h.Event)
		c.History[i] = h
	}

	return &c
}

func cloneEvent(e EventRecord) EventRecord {
	e.Tags = slices.Clone(e.Tags)
	return e
}
