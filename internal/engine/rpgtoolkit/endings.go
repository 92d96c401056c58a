package rpgtoolkit

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"github.com/KirkDiggler/solution-quest/internal/engine"
	"github.com/KirkDiggler/solution-quest/internal/entities/quest"
	"github.com/KirkDiggler/solution-quest/internal/errors"
)

type conditionRule struct {
	phrases []string
	holds   func(k, c, l int) bool
}

// conditionRules are checked in order. The first rule whose phrases all occur
// in the condition text decides the result.
var conditionRules = []conditionRule{
	{
		phrases: []string{"Knowledge >= Courage", "Knowledge >= Luck"},
		holds:   func(k, c, l int) bool { return k >= c && k >= l },
	},
	{
		phrases: []string{"Courage >= Knowledge", "Courage >= Luck"},
		holds:   func(k, c, l int) bool { return c >= k && c >= l },
	},
	{
		phrases: []string{"Luck >= Knowledge", "Luck >= Courage"},
		holds:   func(k, c, l int) bool { return l >= k && l >= c },
	},
	{
		phrases: []string{"Balanced"},
		holds:   func(k, c, l int) bool { return max(k, c, l)-min(k, c, l) <= 1 },
	},
	{
		phrases: []string{"Knowledge > Courage + 1", "Knowledge > Luck + 1"},
		holds:   func(k, c, l int) bool { return k > c+1 && k > l+1 },
	},
	{
		phrases: []string{"Courage > Knowledge + 1", "Courage > Luck + 1"},
		holds:   func(k, c, l int) bool { return c > k+1 && c > l+1 },
	},
	{
		phrases: []string{"Luck > Knowledge + 1", "Luck > Courage + 1"},
		holds:   func(k, c, l int) bool { return l > k+1 && l > c+1 },
	},
	{
		phrases: []string{"Knowledge >= 4"},
		holds:   func(k, _, _ int) bool { return k >= 4 },
	},
	{
		phrases: []string{"Courage >= 4"},
		holds:   func(_, c, _ int) bool { return c >= 4 },
	},
	{
		phrases: []string{"Luck >= 4"},
		holds:   func(_, _, l int) bool { return l >= 4 },
	},
}

// EvaluateCondition reports whether stats satisfy an ending's stat condition.
// Unrecognised conditions never hold.
func (a *Adapter) EvaluateCondition(condition string, stats quest.Stats) bool {
	for _, rule := range conditionRules {
		if containsAll(condition, rule.phrases) {
			return rule.holds(stats.Knowledge, stats.Courage, stats.Luck)
		}
	}
	return false
}

func containsAll(s string, phrases []string) bool {
	for _, p := range phrases {
		if !strings.Contains(s, p) {
			return false
		}
	}
	return true
}

// ResolveEnding picks the lowest-priority ending on the route whose condition
// holds. Without a match it falls back to the first route ending, then to the
// first ending overall.
func (a *Adapter) ResolveEnding(_ context.Context, input *engine.ResolveEndingInput) (*engine.ResolveEndingOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if len(input.Endings) == 0 {
		return nil, errors.NotFound("no endings available").
			WithMeta("route", string(input.Route))
	}

	var onRoute []quest.EndingRecord
	for _, e := range input.Endings {
		if e.Route == quest.EndingRouteAll || e.Route == string(input.Route) {
			onRoute = append(onRoute, e)
		}
	}

	slices.SortStableFunc(onRoute, func(x, y quest.EndingRecord) int {
		return cmp.Compare(x.Priority, y.Priority)
	})

	for _, e := range onRoute {
		if a.EvaluateCondition(e.StatCondition, input.Stats) {
			return &engine.ResolveEndingOutput{Ending: e, Matched: true}, nil
		}
	}

	if len(onRoute) > 0 {
		return &engine.ResolveEndingOutput{Ending: onRoute[0]}, nil
	}
	return &engine.ResolveEndingOutput{Ending: input.Endings[0]}, nil
}
