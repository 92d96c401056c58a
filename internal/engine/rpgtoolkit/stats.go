package rpgtoolkit

import (
	"regexp"
	"strconv"

	"github.com/KirkDiggler/solution-quest/internal/entities/quest"
)

var effectPattern = regexp.MustCompile(`^([KCL])([+-])(\d+)$`)

// maxDelta moves any axis from one bound to the other. Larger magnitudes
// saturate to it.
const maxDelta = quest.StatMax - quest.StatMin

// parseEffect splits an effect such as "K+2" into its axis and signed delta.
// The delta is capped at maxDelta in both directions.
func parseEffect(effect string) (quest.Axis, int, bool) {
	matches := effectPattern.FindStringSubmatch(effect)
	if matches == nil {
		return 0, 0, false
	}

	// the pattern only admits digits, so a parse error is an out of range value
	magnitude, err := strconv.Atoi(matches[3])
	if err != nil || magnitude > maxDelta {
		magnitude = maxDelta
	}
	if matches[2] == "-" {
		magnitude = -magnitude
	}

	return quest.Axis(matches[1][0]), magnitude, true
}

// addToAxis adds delta to one axis without clamping
func addToAxis(stats quest.Stats, axis quest.Axis, delta int) quest.Stats {
	switch axis {
	case quest.AxisKnowledge:
		stats.Knowledge += delta
	case quest.AxisCourage:
		stats.Courage += delta
	case quest.AxisLuck:
		stats.Luck += delta
	}
	return stats
}

func clamp(stats quest.Stats) quest.Stats {
	return quest.Stats{
		Knowledge: clampValue(stats.Knowledge),
		Courage:   clampValue(stats.Courage),
		Luck:      clampValue(stats.Luck),
	}
}

func clampValue(v int) int {
	return max(quest.StatMin, min(quest.StatMax, v))
}

// ApplyEffect applies an effect string and clamps the result to the stat bounds.
// Strings that are not exactly <K|C|L><+|-><digits> leave stats unchanged.
func (a *Adapter) ApplyEffect(stats quest.Stats, effect string) quest.Stats {
	axis, delta, ok := parseEffect(effect)
	if !ok {
		return stats
	}
	return clamp(addToAxis(stats, axis, delta))
}
