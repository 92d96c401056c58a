package idgen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/solution-quest/internal/pkg/idgen"
)

func TestUUIDGenerator(t *testing.T) {
	gen := idgen.NewUUID("quest")

	first := gen.Generate()
	second := gen.Generate()

	assert.True(t, strings.HasPrefix(first, "quest_"))
	assert.Len(t, first, len("quest_")+36)
	assert.NotEqual(t, first, second)
}

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("quest")
	assert.Equal(t, "quest_1", gen.Generate())
	assert.Equal(t, "quest_2", gen.Generate())

	bare := idgen.NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}
