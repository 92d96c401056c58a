package engine

import (
	"github.com/KirkDiggler/solution-quest/internal/entities/quest"
)

// DedupScope says which used-id set a drawn event is recorded in
type DedupScope string

// Dedup scopes
const (
	// DedupGlobal ids are never drawn again for the rest of the session
	DedupGlobal DedupScope = "global"
	// DedupLocal ids are excluded until the next route transition
	DedupLocal DedupScope = "local"
	// DedupNone draws ignore both sets
	DedupNone DedupScope = "none"
)

// CalculateInitialStatsInput contains the character and option table
type CalculateInitialStatsInput struct {
	Character *quest.Character
	Options   []quest.CharacterOption
}

// CalculateInitialStatsOutput contains the starting stats
type CalculateInitialStatsOutput struct {
	Stats quest.Stats
	// Modifiers lists the stat modifiers that were summed, in option order
	Modifiers []string
}

// PlanDrawInput identifies the position within a route
type PlanDrawInput struct {
	Route      quest.Route
	EventCount int
}

// PlanDrawOutput says where the next event comes from
type PlanDrawOutput struct {
	Bucket quest.BucketID
	// Exclude is the used-id set candidates are filtered against
	Exclude DedupScope
	// Record is the used-id set the drawn id is added to
	Record    DedupScope
	LocalOnly bool
	// PreferCourse narrows candidates to the session's course type when at
	// least one of them matches; otherwise every candidate stays eligible
	PreferCourse bool
}

// SelectEventInput contains the session position and the loaded bucket
type SelectEventInput struct {
	Route        quest.Route
	EventCount   int
	CourseType   quest.CourseType
	LocallyUsed  map[string]bool
	GloballyUsed map[string]bool
	Pool         []quest.EventRecord
}

// SelectEventOutput contains the drawn event
type SelectEventOutput struct {
	Event      quest.EventRecord
	Record     DedupScope
	Candidates int
}

// ListDestinationsInput contains the route being left
type ListDestinationsInput struct {
	Route      quest.Route
	CourseType quest.CourseType
}

// ListDestinationsOutput contains the offered destinations in display order
type ListDestinationsOutput struct {
	Destinations []quest.Destination
}

// ResolveDestinationInput contains the chosen destination
type ResolveDestinationInput struct {
	Route       quest.Route
	CourseType  quest.CourseType
	Destination quest.Destination
}

// ResolveDestinationOutput describes the route that follows
type ResolveDestinationOutput struct {
	Ends       bool
	Route      quest.Route
	CourseType quest.CourseType
	// PathLabel is appended to the session's route path, e.g. STU-VET
	PathLabel string
}

// ResolveEndingInput contains the final state and all ending records
type ResolveEndingInput struct {
	Stats   quest.Stats
	Route   quest.Route
	Endings []quest.EndingRecord
}

// ResolveEndingOutput contains the selected ending
type ResolveEndingOutput struct {
	Ending quest.EndingRecord
	// Matched is false when the ending came from a fallback
	Matched bool
}
