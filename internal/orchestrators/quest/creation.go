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

// InitializeSession validates the character, computes the starting stats and
// puts the session on the route matching the character's status. Students
// without a course wait in course selection; everyone else gets a first event.
func (o *Orchestrator) InitializeSession(
	ctx context.Context,
	input *questsvc.InitializeSessionInput,
) (*questsvc.InitializeSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Character == nil {
		vb := errors.NewValidationBuilder()
		vb.RequiredField("character")
		return nil, vb.Build()
	}

	character := *input.Character
	if character.Level == 0 {
		character.Level = quest.DefaultLevel
	}
	if err := character.Validate(); err != nil {
		return nil, err
	}
	if !character.AsksGuild() {
		character.Guild = ""
	}

	course := input.CourseType
	if course != quest.CourseTypeUnset && !validCourse(course) {
		return nil, courseError(course)
	}
	if character.StartingRoute() != quest.RouteStudent {
		course = quest.CourseTypeUnset
	}

	options, err := o.contentRepo.LoadCharacterOptions(ctx, &content.LoadCharacterOptionsInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load character options")
	}

	stats, err := o.engine.CalculateInitialStats(ctx, &engine.CalculateInitialStatsInput{
		Character: &character,
		Options:   options.Options,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to calculate initial stats")
	}

	start := func(s *quest.Session) {
		ch := character
		s.Character = &ch
		s.Stats = stats.Stats
		s.CurrentRoute = character.StartingRoute()
		s.RoutePath = []string{string(s.CurrentRoute)}
		s.CourseType = course
		s.EventCount = 0
		s.CurrentEvent = nil
		s.Phase = quest.PhaseAwaitingEvent
		if s.CurrentRoute == quest.RouteStudent && course == quest.CourseTypeUnset {
			s.Phase = quest.PhaseCourseSelection
		}
	}

	var sess *quest.Session
	if input.SessionID == "" {
		sess, err = o.create(ctx, start)
	} else {
		sess, err = o.update(ctx, input.SessionID, func(s *quest.Session) error {
			if err := requirePhase(s, quest.PhaseCharacterCreation); err != nil {
				return errors.FailedPrecondition("session already has a character; reset it first").
					WithMeta("session_id", s.ID)
			}
			start(s)
			return nil
		})
	}
	if err != nil {
		return nil, err
	}

	slog.Info("Session initialized",
		"session_id", sess.ID,
		"route", sess.CurrentRoute,
		"course_type", sess.CourseType,
		"knowledge", sess.Stats.Knowledge,
		"courage", sess.Stats.Courage,
		"luck", sess.Stats.Luck,
	)
	o.publish(ctx, questsvc.EventSessionInitialized, sess)

	output := &questsvc.InitializeSessionOutput{
		Session:   sess,
		Card:      quest.NewCharacterCard(sess.Character, options.Options),
		Modifiers: stats.Modifiers,
	}

	if sess.Phase == quest.PhaseAwaitingEvent {
		drawn, err := o.drawEvent(ctx, sess)
		if err != nil {
			return nil, err
		}
		output.Session = drawn
	}

	return output, nil
}

func (o *Orchestrator) create(ctx context.Context, start func(*quest.Session)) (*quest.Session, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	sess := quest.NewSession(o.idGen.Generate(), o.clock.Now())
	start(sess)

	if _, err := o.sessionRepo.Create(ctx, &session.CreateInput{Session: sess}); err != nil {
		return nil, errors.Wrap(err, "failed to create session")
	}

	return sess.Clone(), nil
}

// SelectCourseType sets a student's course and draws the first event
func (o *Orchestrator) SelectCourseType(
	ctx context.Context,
	input *questsvc.SelectCourseTypeInput,
) (*questsvc.SelectCourseTypeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !validCourse(input.CourseType) {
		return nil, courseError(input.CourseType)
	}

	sess, err := o.update(ctx, input.SessionID, func(s *quest.Session) error {
		if err := requirePhase(s, quest.PhaseCourseSelection); err != nil {
			return err
		}
		s.CourseType = input.CourseType
		s.Phase = quest.PhaseAwaitingEvent
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Course type selected",
		"session_id", sess.ID,
		"course_type", sess.CourseType,
	)

	drawn, err := o.drawEvent(ctx, sess)
	if err != nil {
		return nil, err
	}

	return &questsvc.SelectCourseTypeOutput{Session: drawn}, nil
}

func validCourse(c quest.CourseType) bool {
	parsed, ok := quest.ParseCourseType(string(c))
	return ok && parsed == c
}

func courseError(c quest.CourseType) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("courseType", string(c), []string{
		string(quest.CourseTypeELICOS),
		string(quest.CourseTypeVET),
		string(quest.CourseTypeHE),
	}, vb)
	return vb.Build()
}
