package builders

import (
	"github.com/KirkDiggler/solution-quest/internal/entities/quest"
)

// EndingBuilder provides a fluent interface for building test EndingRecord instances
type EndingBuilder struct {
	ending quest.EndingRecord
}

// NewEndingBuilder creates a builder for an ending available on every route
func NewEndingBuilder(id string) *EndingBuilder {
	return &EndingBuilder{
		ending: quest.EndingRecord{
			ID:          id,
			Title:       "Ending " + id,
			Description: "The journey ends",
			StatType:    "Harmonious",
			Route:       quest.EndingRouteAll,
			Priority:    1,
			CTA:         "Talk to us",
		},
	}
}

// WithCondition sets the stat condition text
func (b *EndingBuilder) WithCondition(condition string) *EndingBuilder {
	b.ending.StatCondition = condition
	return b
}

// WithStatType sets the stat type
func (b *EndingBuilder) WithStatType(statType string) *EndingBuilder {
	b.ending.StatType = statType
	return b
}

// WithRoute restricts the ending to a route
func (b *EndingBuilder) WithRoute(route quest.Route) *EndingBuilder {
	b.ending.Route = string(route)
	return b
}

// WithPriority sets the priority; lower numbers are checked first
func (b *EndingBuilder) WithPriority(priority int) *EndingBuilder {
	b.ending.Priority = priority
	return b
}

// Build returns the built ending
func (b *EndingBuilder) Build() quest.EndingRecord {
	return b.ending
}
