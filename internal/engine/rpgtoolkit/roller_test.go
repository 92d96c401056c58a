package rpgtoolkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/solution-quest/internal/entities/quest"
	"github.com/KirkDiggler/solution-quest/internal/errors"
)

func TestSeededRollerIsReproducible(t *testing.T) {
	a := NewSeededRoller(42)
	b := NewSeededRoller(42)

	first, err := a.RollN(20, 6)
	require.NoError(t, err)
	second, err := b.RollN(20, 6)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	for _, v := range first {
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 6)
	}
}

func TestSeededRollerRejectsBadSizes(t *testing.T) {
	r := NewSeededRoller(1)

	_, err := r.Roll(0)
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = r.RollN(0, 6)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestSessionEntity(t *testing.T) {
	session := &quest.Session{ID: "quest_1"}

	entity := WrapSession(session)

	assert.Equal(t, "quest_1", entity.GetID())
	assert.Equal(t, "quest_session", entity.GetType())
	assert.Equal(t, session, entity.Session)
}
