package rpgtoolkit

import (
	"context"
	"slices"

	"github.com/KirkDiggler/solution-quest/internal/engine"
	"github.com/KirkDiggler/solution-quest/internal/entities/quest"
	"github.com/KirkDiggler/solution-quest/internal/errors"
)

func destinationsFor(route quest.Route, course quest.CourseType) []quest.Destination {
	switch route {
	case quest.RouteOffshore:
		return []quest.Destination{quest.DestinationStudent, quest.DestinationWorkingHoliday, quest.DestinationEnd}
	case quest.RouteStudent:
		if course == quest.CourseTypeELICOS {
			return []quest.Destination{quest.DestinationStudentVET, quest.DestinationStudentHE, quest.DestinationEnd}
		}
		return []quest.Destination{quest.DestinationGraduate, quest.DestinationEnd}
	case quest.RouteWorkingHoliday:
		return []quest.Destination{quest.DestinationStudent, quest.DestinationEnd}
	default:
		return []quest.Destination{quest.DestinationEnd}
	}
}

// ListDestinations returns the destinations offered when leaving a route
func (a *Adapter) ListDestinations(
	_ context.Context,
	input *engine.ListDestinationsInput,
) (*engine.ListDestinationsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return &engine.ListDestinationsOutput{
		Destinations: destinationsFor(input.Route, input.CourseType),
	}, nil
}

// ResolveDestination validates a destination against the offered set and
// describes the route that follows it.
func (a *Adapter) ResolveDestination(
	_ context.Context,
	input *engine.ResolveDestinationInput,
) (*engine.ResolveDestinationOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if !slices.Contains(destinationsFor(input.Route, input.CourseType), input.Destination) {
		return nil, errors.InvalidArgumentf("destination %q is not offered from route %s", input.Destination, input.Route).
			WithMeta("route", string(input.Route)).
			WithMeta("destination", string(input.Destination))
	}

	switch input.Destination {
	case quest.DestinationStudent:
		return &engine.ResolveDestinationOutput{Route: quest.RouteStudent, PathLabel: string(quest.RouteStudent)}, nil
	case quest.DestinationStudentVET:
		return &engine.ResolveDestinationOutput{
			Route:      quest.RouteStudent,
			CourseType: quest.CourseTypeVET,
			PathLabel:  "STU-VET",
		}, nil
	case quest.DestinationStudentHE:
		return &engine.ResolveDestinationOutput{
			Route:      quest.RouteStudent,
			CourseType: quest.CourseTypeHE,
			PathLabel:  "STU-HE",
		}, nil
	case quest.DestinationWorkingHoliday:
		return &engine.ResolveDestinationOutput{
			Route:     quest.RouteWorkingHoliday,
			PathLabel: string(quest.RouteWorkingHoliday),
		}, nil
	case quest.DestinationGraduate:
		return &engine.ResolveDestinationOutput{Route: quest.RouteGraduate, PathLabel: string(quest.RouteGraduate)}, nil
	default:
		return &engine.ResolveDestinationOutput{Ends: true, Route: input.Route, CourseType: input.CourseType}, nil
	}
}
