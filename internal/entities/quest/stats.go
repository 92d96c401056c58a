package quest

// Stat bounds. Every axis stays within [StatMin, StatMax] after any mutation.
const (
	StatMin = 1
	StatMax = 6
)

// Stats are the three bounded attributes accumulated during a quest
type Stats struct {
	Knowledge int `json:"knowledge" yaml:"knowledge"`
	Courage   int `json:"courage" yaml:"courage"`
	Luck      int `json:"luck" yaml:"luck"`
}

// BaseStats returns the starting stats of a new session
func BaseStats() Stats {
	return Stats{Knowledge: StatMin, Courage: StatMin, Luck: StatMin}
}

// Axis identifies one of the three stats in an effect string
type Axis byte

// Stat axes as written in effect strings
const (
	AxisKnowledge Axis = 'K'
	AxisCourage   Axis = 'C'
	AxisLuck      Axis = 'L'
)

// String returns the stat name for the axis
func (a Axis) String() string {
	switch a {
	case AxisKnowledge:
		return "Knowledge"
	case AxisCourage:
		return "Courage"
	case AxisLuck:
		return "Luck"
	default:
		return "Unknown"
	}
}
