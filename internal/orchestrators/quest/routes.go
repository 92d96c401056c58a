package quest

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/solution-quest/internal/engine"
	"github.com/KirkDiggler/solution-quest/internal/entities/quest"
	"github.com/KirkDiggler/solution-quest/internal/errors"
	"github.com/KirkDiggler/solution-quest/internal/repositories/content"
	"github.com/KirkDiggler/solution-quest/internal/repositories/session"
	questsvc "github.com/KirkDiggler/solution-quest/internal/services/quest"
)

// ListTransitions returns the destinations offered at the end of a route
func (o *Orchestrator) ListTransitions(
	ctx context.Context,
	input *questsvc.ListTransitionsInput,
) (*questsvc.ListTransitionsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.sessionRepo.Get(ctx, &session.GetInput{ID: input.SessionID})
	if err != nil {
		return nil, err
	}

	sess := out.Session
	if err := requirePhase(sess, quest.PhaseRouteTransition); err != nil {
		return nil, err
	}

	destinations, err := o.engine.ListDestinations(ctx, &engine.ListDestinationsInput{
		Route:      sess.CurrentRoute,
		CourseType: sess.CourseType,
	})
	if err != nil {
		return nil, err
	}

	return &questsvc.ListTransitionsOutput{
		Route:        sess.CurrentRoute,
		Destinations: destinations.Destinations,
	}, nil
}

// ChooseTransition moves the session onto a new route and draws its first
// event, or resolves the ending when End is chosen
func (o *Orchestrator) ChooseTransition(
	ctx context.Context,
	input *questsvc.ChooseTransitionInput,
) (*questsvc.ChooseTransitionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	current, err := o.sessionRepo.Get(ctx, &session.GetInput{ID: input.SessionID})
	if err != nil {
		return nil, err
	}
	if err := requirePhase(current.Session, quest.PhaseRouteTransition); err != nil {
		return nil, err
	}

	next, err := o.engine.ResolveDestination(ctx, &engine.ResolveDestinationInput{
		Route:       current.Session.CurrentRoute,
		CourseType:  current.Session.CourseType,
		Destination: input.Destination,
	})
	if err != nil {
		return nil, err
	}

	if next.Ends {
		ended, err := o.finish(ctx, current.Session)
		if err != nil {
			return nil, err
		}
		return &questsvc.ChooseTransitionOutput{Session: ended, Ended: true}, nil
	}

	from := current.Session.CurrentRoute
	sess, err := o.update(ctx, input.SessionID, func(s *quest.Session) error {
		if s.Generation != current.Session.Generation {
			return errors.Aborted("session changed while choosing a transition").
				WithMeta("session_id", s.ID)
		}
		if err := requirePhase(s, quest.PhaseRouteTransition); err != nil {
			return err
		}

		s.CurrentRoute = next.Route
		s.CourseType = next.CourseType
		s.RoutePath = append(s.RoutePath, next.PathLabel)
		s.EventCount = 0
		s.LocallyUsed = make(map[string]bool)
		s.CurrentEvent = nil
		s.Generation++
		s.Phase = quest.PhaseAwaitingEvent
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Route transitioned",
		"session_id", sess.ID,
		"from", from,
		"to", sess.CurrentRoute,
		"course_type", sess.CourseType,
		"route_path", sess.RoutePath,
	)
	o.publish(ctx, questsvc.EventRouteTransitioned, sess)

	drawn, err := o.drawEvent(ctx, sess)
	if err != nil {
		return nil, err
	}

	return &questsvc.ChooseTransitionOutput{Session: drawn}, nil
}

// finish resolves the ending for a session in route transition. On failure
// the session stays in route transition so End can be chosen again.
func (o *Orchestrator) finish(ctx context.Context, pending *quest.Session) (*quest.Session, error) {
	endings, err := o.contentRepo.LoadEndings(ctx, &content.LoadEndingsInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load endings").
			WithMeta("session_id", pending.ID)
	}

	resolved, err := o.engine.ResolveEnding(ctx, &engine.ResolveEndingInput{
		Stats:   pending.Stats,
		Route:   pending.CurrentRoute,
		Endings: endings.Endings,
	})
	if err != nil {
		return nil, err
	}

	sess, err := o.update(ctx, pending.ID, func(s *quest.Session) error {
		if s.Generation != pending.Generation || s.Phase != quest.PhaseRouteTransition {
			slog.Info("Stale ending discarded",
				"session_id", s.ID,
				"generation", pending.Generation,
				"current_generation", s.Generation,
			)
			return errors.Aborted("session changed while endings were loading").
				WithMeta("session_id", s.ID)
		}

		ending := resolved.Ending
		s.Ending = &ending
		s.CurrentEvent = nil
		s.Phase = quest.PhaseEnded
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Ending resolved",
		"session_id", sess.ID,
		"ending_id", sess.Ending.ID,
		"matched", resolved.Matched,
		"route", sess.CurrentRoute,
		"route_path", sess.RoutePath,
	)
	o.publish(ctx, questsvc.EventEndingResolved, sess)

	return sess, nil
}

// GetCurrentEnding returns the ending of a finished quest
func (o *Orchestrator) GetCurrentEnding(
	ctx context.Context,
	input *questsvc.GetCurrentEndingInput,
) (*questsvc.GetCurrentEndingOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.sessionRepo.Get(ctx, &session.GetInput{ID: input.SessionID})
	if err != nil {
		return nil, err
	}

	sess := out.Session
	if err := requirePhase(sess, quest.PhaseEnded); err != nil {
		return nil, err
	}
	if sess.Ending == nil {
		return nil, errors.Internalf("session %s ended without an ending", sess.ID)
	}

	return &questsvc.GetCurrentEndingOutput{
		Ending:    sess.Ending,
		Stats:     sess.Stats,
		Route:     sess.CurrentRoute,
		RoutePath: sess.RoutePath,
	}, nil
}
