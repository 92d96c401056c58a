// Package simulation auto-plays quest sessions with random answers and
// collects the route paths, final stats and endings they reach.
package simulation

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/solution-quest/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/solution-quest/internal/entities/quest"
	"github.com/KirkDiggler/solution-quest/internal/errors"
	questsvc "github.com/KirkDiggler/solution-quest/internal/services/quest"
)

// maxSteps bounds one run. The route graph is acyclic so a finished run
// needs far fewer.
const maxSteps = 200

var journalEvents = []string{
	questsvc.EventSessionInitialized,
	questsvc.EventOptionChosen,
	questsvc.EventRouteTransitioned,
	questsvc.EventEndingResolved,
}

// Config contains the dependencies of a Runner
type Config struct {
	Service questsvc.Service
	// EventBus is the bus the service publishes on; runs record a journal from it
	EventBus events.EventBus
	// Roller picks characters, answers and destinations
	Roller dice.Roller
}

// Validate validates the Config
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Service == nil {
		vb.RequiredField("Service")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	return vb.Build()
}

// Runner plays sessions to completion
type Runner struct {
	svc    questsvc.Service
	bus    events.EventBus
	roller dice.Roller

	mu       sync.Mutex
	journals map[string][]string
}

// New creates a Runner
func New(cfg *Config) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Runner{
		svc:      cfg.Service,
		bus:      cfg.EventBus,
		roller:   cfg.Roller,
		journals: make(map[string][]string),
	}, nil
}

// RunInput defines a batch of simulated sessions
type RunInput struct {
	Runs int
}

// Run plays input.Runs sessions one after another. A session that fails is
// recorded with its error and the batch continues; cancellation stops it.
func (r *Runner) Run(ctx context.Context, input *RunInput) (*Report, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRange("runs", input.Runs, 1, 100000, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	subscriptions := make([]string, 0, len(journalEvents))
	for _, eventType := range journalEvents {
		subscriptions = append(subscriptions, r.bus.SubscribeFunc(eventType, 0, r.record))
	}
	defer func() {
		for _, id := range subscriptions {
			if err := r.bus.Unsubscribe(id); err != nil {
				slog.Debug("Failed to unsubscribe journal", "subscription_id", id, "error", err)
			}
		}
	}()

	out, err := r.svc.ListCharacterOptions(ctx, &questsvc.ListCharacterOptionsInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load character options")
	}

	report := &Report{Endings: make(map[string]int)}
	for i := 0; i < input.Runs; i++ {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "simulation canceled")
		}

		run, err := r.play(ctx, out.Options)
		if errors.IsCanceled(err) {
			return nil, err
		}
		if err != nil {
			slog.Warn("Simulated session failed", "run", i+1, "error", err)
			run.Error = err.Error()
			report.Failed++
		} else {
			report.Endings[run.EndingID]++
		}
		run.Journal = r.takeJournal(run.SessionID)
		report.Runs = append(report.Runs, run)
	}

	slog.Info("Simulation finished",
		"runs", len(report.Runs),
		"failed", report.Failed,
	)

	return report, nil
}

// play runs one session. The returned Run carries whatever was reached
// before an error.
func (r *Runner) play(ctx context.Context, options []quest.CharacterOption) (Run, error) {
	character, err := r.randomCharacter()
	if err != nil {
		return Run{}, err
	}

	input := &questsvc.InitializeSessionInput{Character: character}
	if character.Status == quest.StatusStudent {
		if input.CourseType, err = r.randomCourse(); err != nil {
			return Run{}, err
		}
	}

	started, err := r.svc.InitializeSession(ctx, input)
	if err != nil {
		return Run{Character: character}, err
	}

	run := Run{
		SessionID: started.Session.ID,
		Character: character,
		Card:      started.Card,
	}
	session := started.Session

	for step := 0; step < maxSteps; step++ {
		run.capture(session)

		switch session.Phase {
		case quest.PhaseEnded:
			ending, err := r.svc.GetCurrentEnding(ctx, &questsvc.GetCurrentEndingInput{SessionID: session.ID})
			if err != nil {
				return run, err
			}
			run.EndingID = ending.Ending.ID
			run.EndingTitle = ending.Ending.Title
			run.StatType = ending.Ending.StatType
			return run, nil

		case quest.PhaseCourseSelection:
			course, err := r.randomCourse()
			if err != nil {
				return run, err
			}
			out, err := r.svc.SelectCourseType(ctx, &questsvc.SelectCourseTypeInput{SessionID: session.ID, CourseType: course})
			if err != nil {
				return run, err
			}
			session = out.Session

		case quest.PhaseEvent:
			index, err := r.pick(len(session.CurrentEvent.Options))
			if err != nil {
				return run, err
			}
			out, err := r.svc.ChooseOption(ctx, &questsvc.ChooseOptionInput{SessionID: session.ID, OptionIndex: index})
			if err != nil {
				return run, err
			}
			session = out.Session

		case quest.PhaseAwaitingEvent:
			out, err := r.svc.DrawEvent(ctx, &questsvc.DrawEventInput{SessionID: session.ID})
			if err != nil {
				return run, err
			}
			session = out.Session

		case quest.PhaseRouteTransition:
			list, err := r.svc.ListTransitions(ctx, &questsvc.ListTransitionsInput{SessionID: session.ID})
			if err != nil {
				return run, err
			}
			index, err := r.pick(len(list.Destinations))
			if err != nil {
				return run, err
			}
			out, err := r.svc.ChooseTransition(ctx, &questsvc.ChooseTransitionInput{
				SessionID:   session.ID,
				Destination: list.Destinations[index],
			})
			if err != nil {
				return run, err
			}
			session = out.Session

		default:
			return run, errors.Internalf("unexpected phase %s", session.Phase)
		}
	}

	return run, errors.Internalf("session %s did not finish in %d steps", session.ID, maxSteps)
}

// pick returns a uniform index in [0, n)
func (r *Runner) pick(n int) (int, error) {
	if n <= 0 {
		return 0, errors.FailedPrecondition("nothing to choose from")
	}
	roll, err := r.roller.Roll(n)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll")
	}
	return roll - 1, nil
}

func (r *Runner) pickString(values []string) (string, error) {
	i, err := r.pick(len(values))
	if err != nil {
		return "", err
	}
	return values[i], nil
}

func (r *Runner) randomCourse() (quest.CourseType, error) {
	courses := []quest.CourseType{quest.CourseTypeELICOS, quest.CourseTypeVET, quest.CourseTypeHE}
	i, err := r.pick(len(courses))
	if err != nil {
		return quest.CourseTypeUnset, err
	}
	return courses[i], nil
}

func (r *Runner) randomCharacter() (*quest.Character, error) {
	c := &quest.Character{Name: "Sim", Level: quest.DefaultLevel}

	var err error
	if c.Title, err = r.pickString(quest.Titles); err != nil {
		return nil, err
	}
	if c.Species, err = r.pickString(quest.Species); err != nil {
		return nil, err
	}

	years, err := r.pick(len(quest.WorkExperience))
	if err != nil {
		return nil, err
	}
	c.WorkExperience = quest.WorkExperience[years]

	if c.WorkExperience > 0 {
		related, err := r.pick(2)
		if err != nil {
			return nil, err
		}
		c.WorkRelated = related == 0
	}
	if c.AsksGuild() {
		if c.Guild, err = r.pickString(quest.Guilds); err != nil {
			return nil, err
		}
	}
	if c.Status, err = r.pickString(quest.Statuses); err != nil {
		return nil, err
	}
	if c.EnglishLevel, err = r.pickString(quest.EnglishLevels); err != nil {
		return nil, err
	}

	return c, nil
}

func (r *Runner) record(_ context.Context, e events.Event) error {
	entity, ok := e.Source().(*rpgtoolkit.SessionEntity)
	if !ok {
		return nil
	}

	line := e.Type()
	switch e.Type() {
	case questsvc.EventOptionChosen:
		if n := len(entity.History); n > 0 {
			last := entity.History[n-1]
			line = last.Event.ID + " -> " + last.Effect
		}
	case questsvc.EventRouteTransitioned:
		line = "route " + string(entity.CurrentRoute)
	case questsvc.EventEndingResolved:
		if entity.Ending != nil {
			line = "ending " + entity.Ending.ID
		}
	case questsvc.EventSessionInitialized:
		line = "start " + string(entity.CurrentRoute)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.journals[entity.ID] = append(r.journals[entity.ID], line)
	return nil
}

func (r *Runner) takeJournal(sessionID string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	journal := r.journals[sessionID]
	delete(r.journals, sessionID)
	return journal
}
