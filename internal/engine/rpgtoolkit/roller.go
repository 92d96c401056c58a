package rpgtoolkit

import (
	"math/rand/v2"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/solution-quest/internal/errors"
)

// SeededRoller is a reproducible dice.Roller. Two rollers built from the same
// seed produce the same sequence, which makes simulation runs repeatable.
type SeededRoller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeededRoller creates a roller from a seed
func NewSeededRoller(seed uint64) *SeededRoller {
	return &SeededRoller{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Roll returns a value in [1, size]
func (r *SeededRoller) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, errors.InvalidArgumentf("die size must be positive, got %d", size)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.rng.IntN(size) + 1, nil
}

// RollN rolls count dice of the given size
func (r *SeededRoller) RollN(count, size int) ([]int, error) {
	if count <= 0 {
		return nil, errors.InvalidArgumentf("dice count must be positive, got %d", count)
	}

	results := make([]int, count)
	for i := range results {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		results[i] = v
	}
	return results, nil
}

var _ dice.Roller = (*SeededRoller)(nil)
