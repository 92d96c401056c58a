// Package engine defines the quest rules: stat effects, event selection,
// route transitions and ending resolution.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/solution-quest/internal/engine Engine

import (
	"context"

	"github.com/KirkDiggler/solution-quest/internal/entities/quest"
)

// Engine provides the quest rules. Implementations hold no session state.
type Engine interface {
	// Stat model
	ApplyEffect(stats quest.Stats, effect string) quest.Stats
	CalculateInitialStats(
		ctx context.Context,
		input *CalculateInitialStatsInput,
	) (*CalculateInitialStatsOutput, error)

	// Event selection
	PlanDraw(ctx context.Context, input *PlanDrawInput) (*PlanDrawOutput, error)
	SelectEvent(ctx context.Context, input *SelectEventInput) (*SelectEventOutput, error)

	// Route state machine
	ListDestinations(ctx context.Context, input *ListDestinationsInput) (*ListDestinationsOutput, error)
	ResolveDestination(ctx context.Context, input *ResolveDestinationInput) (*ResolveDestinationOutput, error)

	// Endings
	ResolveEnding(ctx context.Context, input *ResolveEndingInput) (*ResolveEndingOutput, error)
	EvaluateCondition(condition string, stats quest.Stats) bool
}
