package quest

import (
	"context"
	"log/slog"
	"slices"

	"github.com/KirkDiggler/solution-quest/internal/engine"
	"github.com/KirkDiggler/solution-quest/internal/entities/quest"
	"github.com/KirkDiggler/solution-quest/internal/errors"
	"github.com/KirkDiggler/solution-quest/internal/repositories/content"
	"github.com/KirkDiggler/solution-quest/internal/repositories/session"
	questsvc "github.com/KirkDiggler/solution-quest/internal/services/quest"
)

// GetCurrentEvent returns the event waiting for an answer
func (o *Orchestrator) GetCurrentEvent(
	ctx context.Context,
	input *questsvc.GetCurrentEventInput,
) (*questsvc.GetCurrentEventOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.sessionRepo.Get(ctx, &session.GetInput{ID: input.SessionID})
	if err != nil {
		return nil, err
	}

	sess := out.Session
	if err := requirePhase(sess, quest.PhaseEvent); err != nil {
		return nil, err
	}
	if sess.CurrentEvent == nil {
		return nil, errors.Internalf("session %s has no current event", sess.ID)
	}

	position, total := sess.Progress()

	return &questsvc.GetCurrentEventOutput{
		Event:    sess.CurrentEvent,
		Position: position,
		Total:    total,
		Route:    sess.CurrentRoute,
	}, nil
}

// ChooseOption applies the chosen option's effect and moves the session on:
// to the next event, to the route transition, or straight to the ending when
// the route offers nothing but End.
func (o *Orchestrator) ChooseOption(
	ctx context.Context,
	input *questsvc.ChooseOptionInput,
) (*questsvc.ChooseOptionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var effect string
	sess, err := o.update(ctx, input.SessionID, func(s *quest.Session) error {
		if err := requirePhase(s, quest.PhaseEvent); err != nil {
			return err
		}
		if s.CurrentEvent == nil {
			return errors.Internalf("session %s has no current event", s.ID)
		}

		event := *s.CurrentEvent
		if input.OptionIndex < 0 || input.OptionIndex >= len(event.Options) {
			vb := errors.NewValidationBuilder()
			errors.ValidateRange("optionIndex", input.OptionIndex, 0, len(event.Options)-1, vb)
			return vb.Build()
		}

		effect = event.Options[input.OptionIndex].Effect
		s.Stats = o.engine.ApplyEffect(s.Stats, effect)
		s.History = append(s.History, quest.HistoryEntry{
			Event:       event,
			ChosenIndex: input.OptionIndex,
			Effect:      effect,
			StatsAfter:  s.Stats,
			Route:       s.CurrentRoute,
			ChosenAt:    o.clock.Now(),
		})
		s.EventCount++
		s.CurrentEvent = nil

		if event.IsLocal() || s.EventCount >= quest.EventsPerRoute {
			s.Phase = quest.PhaseRouteTransition
		} else {
			s.Phase = quest.PhaseAwaitingEvent
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Option chosen",
		"session_id", sess.ID,
		"event_count", sess.EventCount,
		"effect", effect,
		"knowledge", sess.Stats.Knowledge,
		"courage", sess.Stats.Courage,
		"luck", sess.Stats.Luck,
	)
	o.publish(ctx, questsvc.EventOptionChosen, sess)

	output := &questsvc.ChooseOptionOutput{
		SessionUpdate: questsvc.SessionUpdate{Session: sess, Effect: effect},
	}

	if sess.Phase == quest.PhaseAwaitingEvent {
		drawn, err := o.drawEvent(ctx, sess)
		if err != nil {
			return nil, err
		}
		output.Session = drawn
		output.Outcome = questsvc.OutcomeNextEvent
		return output, nil
	}

	destinations, err := o.engine.ListDestinations(ctx, &engine.ListDestinationsInput{
		Route:      sess.CurrentRoute,
		CourseType: sess.CourseType,
	})
	if err != nil {
		return nil, err
	}

	if !slices.ContainsFunc(destinations.Destinations, func(d quest.Destination) bool {
		return d != quest.DestinationEnd
	}) {
		ended, err := o.finish(ctx, sess)
		if err != nil {
			return nil, err
		}
		output.Session = ended
		output.Outcome = questsvc.OutcomeEnded
		return output, nil
	}

	output.Outcome = questsvc.OutcomeRouteTransition
	return output, nil
}

// DrawEvent retries the draw of a session left waiting by a load fault or
// content exhaustion
func (o *Orchestrator) DrawEvent(ctx context.Context, input *questsvc.DrawEventInput) (*questsvc.DrawEventOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.sessionRepo.Get(ctx, &session.GetInput{ID: input.SessionID})
	if err != nil {
		return nil, err
	}
	if err := requirePhase(out.Session, quest.PhaseAwaitingEvent); err != nil {
		return nil, err
	}

	drawn, err := o.drawEvent(ctx, out.Session)
	if err != nil {
		return nil, err
	}

	return &questsvc.DrawEventOutput{Session: drawn}, nil
}

// drawEvent loads the bucket for the session's next position, then selects
// and records an event. The bucket load happens outside the lock; if the
// session moved on in the meantime the result is discarded as Aborted.
func (o *Orchestrator) drawEvent(ctx context.Context, pending *quest.Session) (*quest.Session, error) {
	plan, err := o.engine.PlanDraw(ctx, &engine.PlanDrawInput{
		Route:      pending.CurrentRoute,
		EventCount: pending.EventCount,
	})
	if err != nil {
		return nil, err
	}

	loaded, err := o.contentRepo.LoadEvents(ctx, &content.LoadEventsInput{Bucket: plan.Bucket})
	if err != nil {
		slog.Warn("Event load failed",
			"session_id", pending.ID,
			"bucket", plan.Bucket,
			"error", err,
		)
		return nil, errors.Wrap(err, "failed to load events").
			WithMeta("session_id", pending.ID)
	}

	var selected *engine.SelectEventOutput
	sess, err := o.update(ctx, pending.ID, func(s *quest.Session) error {
		if s.Generation != pending.Generation ||
			s.Phase != quest.PhaseAwaitingEvent ||
			s.EventCount != pending.EventCount {
			slog.Info("Stale event load discarded",
				"session_id", s.ID,
				"generation", pending.Generation,
				"current_generation", s.Generation,
				"phase", s.Phase,
			)
			return errors.Aborted("session changed while events were loading").
				WithMeta("session_id", s.ID)
		}

		out, err := o.engine.SelectEvent(ctx, &engine.SelectEventInput{
			Route:        s.CurrentRoute,
			EventCount:   s.EventCount,
			CourseType:   s.CourseType,
			LocallyUsed:  s.LocallyUsed,
			GloballyUsed: s.GloballyUsed,
			Pool:         loaded.Events,
		})
		if err != nil {
			return err
		}

		switch out.Record {
		case engine.DedupGlobal:
			s.GloballyUsed[out.Event.ID] = true
		case engine.DedupLocal:
			s.LocallyUsed[out.Event.ID] = true
		}

		event := out.Event
		s.CurrentEvent = &event
		s.Phase = quest.PhaseEvent
		selected = out
		return nil
	})
	if err != nil {
		if errors.IsResourceExhausted(err) {
			slog.Warn("Content exhausted",
				"session_id", pending.ID,
				"bucket", plan.Bucket,
				"event_count", pending.EventCount,
			)
		}
		return nil, err
	}

	slog.Info("Event drawn",
		"session_id", sess.ID,
		"event_id", selected.Event.ID,
		"bucket", plan.Bucket,
		"event_count", sess.EventCount,
		"candidates", selected.Candidates,
	)

	return sess, nil
}
