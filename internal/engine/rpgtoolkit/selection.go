package rpgtoolkit

import (
	"context"
	"strings"

	"github.com/KirkDiggler/solution-quest/internal/engine"
	"github.com/KirkDiggler/solution-quest/internal/entities/quest"
	"github.com/KirkDiggler/solution-quest/internal/errors"
)

// Draw stages within a route
const (
	commonStageEnd = 2 // events 0 and 1 come from the common bucket
	funStage       = 2
	localStage     = quest.EventsPerRoute - 1
)

// PlanDraw maps a position within a route to the bucket and dedup rules
// of the next draw.
func (a *Adapter) PlanDraw(_ context.Context, input *engine.PlanDrawInput) (*engine.PlanDrawOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return planDraw(input.Route, input.EventCount)
}

func planDraw(route quest.Route, eventCount int) (*engine.PlanDrawOutput, error) {
	switch {
	case eventCount < 0:
		return nil, errors.InvalidArgumentf("event count %d is negative", eventCount)
	case eventCount < commonStageEnd:
		return &engine.PlanDrawOutput{
			Bucket:  quest.BucketCommon,
			Exclude: engine.DedupGlobal,
			Record:  engine.DedupGlobal,
		}, nil
	case eventCount == funStage:
		return &engine.PlanDrawOutput{
			Bucket:  quest.BucketFun,
			Exclude: engine.DedupGlobal,
			Record:  engine.DedupGlobal,
		}, nil
	case eventCount < localStage:
		return &engine.PlanDrawOutput{
			Bucket:       route.Bucket(),
			Exclude:      engine.DedupLocal,
			Record:       engine.DedupLocal,
			PreferCourse: true,
		}, nil
	case eventCount == localStage:
		return &engine.PlanDrawOutput{
			Bucket:       route.Bucket(),
			Exclude:      engine.DedupNone,
			Record:       engine.DedupLocal,
			LocalOnly:    true,
			PreferCourse: true,
		}, nil
	default:
		return nil, errors.FailedPreconditionf("route %s already drew %d events", route, eventCount).
			WithMeta("route", string(route)).
			WithMeta("event_count", eventCount)
	}
}

// SelectEvent filters the pool by the draw plan and picks one candidate
// uniformly with the dice roller. An empty candidate set is a
// ResourceExhausted fault and nothing is drawn.
func (a *Adapter) SelectEvent(_ context.Context, input *engine.SelectEventInput) (*engine.SelectEventOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	plan, err := planDraw(input.Route, input.EventCount)
	if err != nil {
		return nil, err
	}

	var exclude map[string]bool
	switch plan.Exclude {
	case engine.DedupGlobal:
		exclude = input.GloballyUsed
	case engine.DedupLocal:
		exclude = input.LocallyUsed
	}

	candidates := make([]quest.EventRecord, 0, len(input.Pool))
	for _, ev := range input.Pool {
		if exclude[ev.ID] {
			continue
		}
		if plan.LocalOnly && !ev.IsLocal() {
			continue
		}
		candidates = append(candidates, ev)
	}

	if plan.PreferCourse {
		candidates = preferCourse(candidates, input.CourseType)
	}

	if len(candidates) == 0 {
		return nil, errors.ResourceExhausted("no content available").
			WithMeta("bucket", string(plan.Bucket)).
			WithMeta("event_count", input.EventCount).
			WithMeta("route", string(input.Route))
	}

	idx, err := a.pick(len(candidates))
	if err != nil {
		return nil, err
	}

	return &engine.SelectEventOutput{
		Event:      candidates[idx],
		Record:     plan.Record,
		Candidates: len(candidates),
	}, nil
}

// pick returns an index in [0, n) using a single die of n sides
func (a *Adapter) pick(n int) (int, error) {
	if n == 1 {
		return 0, nil
	}

	roll, err := a.diceRoller.Roll(n)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll for event")
	}
	if roll < 1 || roll > n {
		return 0, errors.Internalf("roll %d outside 1..%d", roll, n)
	}

	return roll - 1, nil
}

// preferCourse keeps the events matching the course, or all of them when
// none match
func preferCourse(candidates []quest.EventRecord, course quest.CourseType) []quest.EventRecord {
	matching := make([]quest.EventRecord, 0, len(candidates))
	for _, ev := range candidates {
		if matchesCourse(ev.CourseType, course) {
			matching = append(matching, ev)
		}
	}
	if len(matching) == 0 {
		return candidates
	}
	return matching
}

func matchesCourse(eventCourse string, course quest.CourseType) bool {
	if eventCourse == "" || strings.EqualFold(eventCourse, quest.CourseTypeAll) {
		return true
	}
	return strings.EqualFold(eventCourse, string(course))
}
