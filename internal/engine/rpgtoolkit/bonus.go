package rpgtoolkit

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/solution-quest/internal/engine"
	"github.com/KirkDiggler/solution-quest/internal/entities/quest"
	"github.com/KirkDiggler/solution-quest/internal/errors"
)

// CalculateInitialStats sums the stat modifiers of the character's selected
// options onto the base stats and clamps once at the end.
func (a *Adapter) CalculateInitialStats(
	_ context.Context,
	input *engine.CalculateInitialStatsInput,
) (*engine.CalculateInitialStatsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	stats := quest.BaseStats()
	var modifiers []string

	for _, opt := range input.Character.SelectedOptions(input.Options) {
		if opt.StatModifier == "" {
			continue
		}

		axis, delta, ok := parseEffect(opt.StatModifier)
		if !ok {
			slog.Debug("Ignoring malformed stat modifier",
				"option_type", opt.Type,
				"option_id", opt.ID,
				"modifier", opt.StatModifier)
			continue
		}

		stats = addToAxis(stats, axis, delta)
		modifiers = append(modifiers, opt.StatModifier)
	}

	return &engine.CalculateInitialStatsOutput{
		Stats:     clamp(stats),
		Modifiers: modifiers,
	}, nil
}
