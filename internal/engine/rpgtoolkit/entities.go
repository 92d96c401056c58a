package rpgtoolkit

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/solution-quest/internal/entities/quest"
)

// SessionEntity wraps quest.Session to implement core.Entity interface
type SessionEntity struct {
	*quest.Session
}

// GetID returns the session's ID
func (s *SessionEntity) GetID() string {
	return s.ID
}

// GetType returns the entity type for rpg-toolkit
func (s *SessionEntity) GetType() string {
	return "quest_session"
}

// WrapSession converts a quest.Session to an entity usable as an event source
func WrapSession(session *quest.Session) *SessionEntity {
	return &SessionEntity{Session: session}
}

// Compile-time check that our entity wrapper implements core.Entity
var _ core.Entity = (*SessionEntity)(nil)
