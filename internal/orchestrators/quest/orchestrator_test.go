package quest_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/solution-quest/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/solution-quest/internal/entities/quest"
	"github.com/KirkDiggler/solution-quest/internal/errors"
	questorch "github.com/KirkDiggler/solution-quest/internal/orchestrators/quest"
	"github.com/KirkDiggler/solution-quest/internal/pkg/clock"
	"github.com/KirkDiggler/solution-quest/internal/pkg/idgen"
	"github.com/KirkDiggler/solution-quest/internal/repositories/content"
	contentmock "github.com/KirkDiggler/solution-quest/internal/repositories/content/mock"
	"github.com/KirkDiggler/solution-quest/internal/repositories/session"
	questsvc "github.com/KirkDiggler/solution-quest/internal/services/quest"
	"github.com/KirkDiggler/solution-quest/internal/testutils"
	"github.com/KirkDiggler/solution-quest/internal/testutils/builders"
	"github.com/KirkDiggler/solution-quest/internal/testutils/mocks"
)

// firstRoller always rolls 1, so every draw takes the first candidate
type firstRoller struct{}

func (firstRoller) Roll(_ int) (int, error) { return 1, nil }
func (firstRoller) RollN(count, _ int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i] = 1
	}
	return out, nil
}

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockContent *contentmock.MockRepository
	content     *testutils.TestContent
	sessionRepo *session.InMemoryRepository
	bus         events.EventBus
	orch        *questorch.Orchestrator
	ctx         context.Context

	mu        sync.Mutex
	published []string
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockContent = contentmock.NewMockRepository(s.ctrl)
	s.content = testutils.CreateTestContent()
	s.sessionRepo = session.NewInMemory()
	s.bus = events.NewBus()
	s.ctx = context.Background()
	s.published = nil

	for _, eventType := range []string{
		questsvc.EventSessionInitialized,
		questsvc.EventOptionChosen,
		questsvc.EventRouteTransitioned,
		questsvc.EventEndingResolved,
		questsvc.EventSessionReset,
	} {
		s.bus.SubscribeFunc(eventType, 0, func(_ context.Context, e events.Event) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.published = append(s.published, e.Type())
			return nil
		})
	}

	adapter, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{DiceRoller: firstRoller{}})
	s.Require().NoError(err)

	orch, err := questorch.New(&questorch.Config{
		Engine:      adapter,
		ContentRepo: s.mockContent,
		SessionRepo: s.sessionRepo,
		EventBus:    s.bus,
		IDGenerator: idgen.NewSequential("quest"),
		Clock:       &clock.Fixed{At: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)},
	})
	s.Require().NoError(err)
	s.orch = orch
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) start(character *quest.Character) *quest.Session {
	out, err := s.orch.InitializeSession(s.ctx, &questsvc.InitializeSessionInput{Character: character})
	s.Require().NoError(err)
	return out.Session
}

// answer picks the first option n times and returns the last update
func (s *OrchestratorTestSuite) answer(id string, n int) *questsvc.ChooseOptionOutput {
	var out *questsvc.ChooseOptionOutput
	for i := range n {
		var err error
		out, err = s.orch.ChooseOption(s.ctx, &questsvc.ChooseOptionInput{SessionID: id})
		s.Require().NoError(err, "choice %d", i+1)
	}
	return out
}

func historyIDs(sess *quest.Session) []string {
	ids := make([]string, len(sess.History))
	for i, h := range sess.History {
		ids[i] = h.Event.ID
	}
	return ids
}

func (s *OrchestratorTestSuite) TestNewValidatesConfig() {
	_, err := questorch.New(&questorch.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = questorch.New(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestGraduateEndToEnd() {
	mocks.ExpectContent(s.mockContent, s.content)

	sess := s.start(builders.NewCharacterBuilder().
		WithTitle("phd").
		WithSpecies("science").
		WithEnglishLevel("excellent").
		WithStatus(quest.StatusGraduate).
		Build())

	s.Equal(quest.Stats{Knowledge: 6, Courage: 1, Luck: 1}, sess.Stats)
	s.Equal(quest.RouteGraduate, sess.CurrentRoute)
	s.Equal([]string{"GRA"}, sess.RoutePath)
	s.Equal(quest.PhaseEvent, sess.Phase)

	current, err := s.orch.GetCurrentEvent(s.ctx, &questsvc.GetCurrentEventInput{SessionID: sess.ID})
	s.Require().NoError(err)
	s.Equal("C01", current.Event.ID)
	s.Equal(1, current.Position)
	s.Equal(quest.EventsPerRoute, current.Total)

	for i := 1; i < quest.EventsPerRoute; i++ {
		out := s.answer(sess.ID, 1)
		s.Equal(questsvc.OutcomeNextEvent, out.Outcome)
	}
	last := s.answer(sess.ID, 1)

	s.Equal(questsvc.OutcomeEnded, last.Outcome)
	s.Equal(quest.PhaseEnded, last.Session.Phase)
	s.Equal(quest.Stats{Knowledge: 6, Courage: 1, Luck: 1}, last.Session.Stats)
	s.Equal([]string{"C01", "C02", "F01", "G01", "G02", "G03", "GL1"}, historyIDs(last.Session))
	s.Equal(map[string]bool{"C01": true, "C02": true, "F01": true}, last.Session.GloballyUsed)
	s.Equal(map[string]bool{"G01": true, "G02": true, "G03": true, "GL1": true}, last.Session.LocallyUsed)

	ending, err := s.orch.GetCurrentEnding(s.ctx, &questsvc.GetCurrentEndingInput{SessionID: sess.ID})
	s.Require().NoError(err)
	s.Equal("E01", ending.Ending.ID)
	s.Equal(quest.RouteGraduate, ending.Route)

	_, err = s.orch.ListTransitions(s.ctx, &questsvc.ListTransitionsInput{SessionID: sess.ID})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestEffectsApplyAndClamp() {
	s.content.Events[quest.BucketCommon][0] = builders.NewEventBuilder("C01").
		WithEffects("C+9", "K-1", "bogus").Build()
	mocks.ExpectContent(s.mockContent, s.content)

	sess := s.start(builders.NewCharacterBuilder().Build())
	s.Equal(quest.BaseStats(), sess.Stats)

	out := s.answer(sess.ID, 1)
	s.Equal("C+9", out.Effect)
	s.Equal(quest.Stats{Knowledge: 1, Courage: 6, Luck: 1}, out.Session.Stats)
	s.Equal(quest.Stats{Knowledge: 1, Courage: 6, Luck: 1}, out.Session.History[0].StatsAfter)
}

func (s *OrchestratorTestSuite) TestInvalidOptionIndexChangesNothing() {
	mocks.ExpectContent(s.mockContent, s.content)
	sess := s.start(builders.NewCharacterBuilder().Build())

	for _, idx := range []int{-1, 3} {
		_, err := s.orch.ChooseOption(s.ctx, &questsvc.ChooseOptionInput{SessionID: sess.ID, OptionIndex: idx})
		s.True(errors.IsInvalidArgument(err), "index %d", idx)
	}

	got, err := s.orch.GetSession(s.ctx, &questsvc.GetSessionInput{SessionID: sess.ID})
	s.Require().NoError(err)
	s.Equal(0, got.Session.EventCount)
	s.Empty(got.Session.History)
	s.Equal(quest.PhaseEvent, got.Session.Phase)
}

func (s *OrchestratorTestSuite) TestOffshoreJourneyAcrossRoutes() {
	mocks.ExpectContent(s.mockContent, s.content)
	sess := s.start(builders.NewCharacterBuilder().Build())
	s.Equal(quest.RouteOffshore, sess.CurrentRoute)

	out := s.answer(sess.ID, quest.EventsPerRoute)
	s.Equal(questsvc.OutcomeRouteTransition, out.Outcome)
	s.Equal(quest.PhaseRouteTransition, out.Session.Phase)

	offered, err := s.orch.ListTransitions(s.ctx, &questsvc.ListTransitionsInput{SessionID: sess.ID})
	s.Require().NoError(err)
	s.Equal([]quest.Destination{
		quest.DestinationStudent,
		quest.DestinationWorkingHoliday,
		quest.DestinationEnd,
	}, offered.Destinations)

	moved, err := s.orch.ChooseTransition(s.ctx, &questsvc.ChooseTransitionInput{
		SessionID:   sess.ID,
		Destination: quest.DestinationWorkingHoliday,
	})
	s.Require().NoError(err)
	s.False(moved.Ended)

	whv := moved.Session
	s.Equal(quest.RouteWorkingHoliday, whv.CurrentRoute)
	s.Equal([]string{"OVS", "WHV"}, whv.RoutePath)
	s.Equal(0, whv.EventCount)
	s.Equal(int64(1), whv.Generation)
	s.Empty(whv.LocallyUsed, "local dedup resets on transition")
	s.Equal("C03", whv.CurrentEvent.ID, "globally used events are never drawn again")

	out = s.answer(sess.ID, quest.EventsPerRoute)
	s.Equal(questsvc.OutcomeRouteTransition, out.Outcome)
	s.Equal([]string{"C03", "C04", "F02", "W01", "W02", "W03", "WL1"}, historyIDs(out.Session)[7:])

	offered, err = s.orch.ListTransitions(s.ctx, &questsvc.ListTransitionsInput{SessionID: sess.ID})
	s.Require().NoError(err)
	s.Equal([]quest.Destination{quest.DestinationStudent, quest.DestinationEnd}, offered.Destinations)

	moved, err = s.orch.ChooseTransition(s.ctx, &questsvc.ChooseTransitionInput{
		SessionID:   sess.ID,
		Destination: quest.DestinationStudent,
	})
	s.Require().NoError(err)
	s.Equal([]string{"OVS", "WHV", "STU"}, moved.Session.RoutePath)
	s.Equal(quest.CourseTypeUnset, moved.Session.CourseType)

	s.answer(sess.ID, quest.EventsPerRoute)
	offered, err = s.orch.ListTransitions(s.ctx, &questsvc.ListTransitionsInput{SessionID: sess.ID})
	s.Require().NoError(err)
	s.Equal([]quest.Destination{quest.DestinationGraduate, quest.DestinationEnd}, offered.Destinations)

	ended, err := s.orch.ChooseTransition(s.ctx, &questsvc.ChooseTransitionInput{
		SessionID:   sess.ID,
		Destination: quest.DestinationEnd,
	})
	s.Require().NoError(err)
	s.True(ended.Ended)
	s.Equal(quest.PhaseEnded, ended.Session.Phase)
	s.Equal("E02", ended.Session.Ending.ID, "1/1/1 is balanced")
	s.Len(ended.Session.History, 3*quest.EventsPerRoute)
}

func (s *OrchestratorTestSuite) TestDestinationNotOffered() {
	mocks.ExpectContent(s.mockContent, s.content)
	sess := s.start(builders.NewCharacterBuilder().WithStatus(quest.StatusWHV).Build())
	s.answer(sess.ID, quest.EventsPerRoute)

	_, err := s.orch.ChooseTransition(s.ctx, &questsvc.ChooseTransitionInput{
		SessionID:   sess.ID,
		Destination: quest.DestinationGraduate,
	})
	s.True(errors.IsInvalidArgument(err))

	got, err := s.orch.GetSession(s.ctx, &questsvc.GetSessionInput{SessionID: sess.ID})
	s.Require().NoError(err)
	s.Equal(quest.PhaseRouteTransition, got.Session.Phase)
	s.Equal(int64(0), got.Session.Generation)
}

func (s *OrchestratorTestSuite) TestLocalEventEndsRouteEarly() {
	s.content.Events[quest.BucketOffshore] = []quest.EventRecord{
		builders.NewEventBuilder("OL1").AsLocal().Build(),
	}
	mocks.ExpectContent(s.mockContent, s.content)

	sess := s.start(builders.NewCharacterBuilder().Build())
	out := s.answer(sess.ID, 4)

	s.Equal(questsvc.OutcomeRouteTransition, out.Outcome)
	s.Equal(4, out.Session.EventCount)
	s.Equal("OL1", out.Session.History[3].Event.ID)
}

func (s *OrchestratorTestSuite) TestStudentCourseSelectionAndFilter() {
	s.content.Events[quest.BucketStudent] = []quest.EventRecord{
		builders.NewEventBuilder("H01").WithCourseType("HE").Build(),
		builders.NewEventBuilder("S01").Build(),
		builders.NewEventBuilder("V01").WithCourseType("VET").Build(),
		builders.NewEventBuilder("S02").Build(),
		builders.NewEventBuilder("HL1").WithCourseType("HE").AsLocal().Build(),
		builders.NewEventBuilder("SL1").AsLocal().Build(),
	}
	mocks.ExpectContent(s.mockContent, s.content)

	sess := s.start(builders.NewCharacterBuilder().WithStatus(quest.StatusStudent).Build())
	s.Equal(quest.PhaseCourseSelection, sess.Phase)
	s.Nil(sess.CurrentEvent)

	_, err := s.orch.GetCurrentEvent(s.ctx, &questsvc.GetCurrentEventInput{SessionID: sess.ID})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
	s.Contains(err.Error(), "course type has not been selected")

	_, err = s.orch.SelectCourseType(s.ctx, &questsvc.SelectCourseTypeInput{SessionID: sess.ID, CourseType: "MBA"})
	s.True(errors.IsInvalidArgument(err))

	selected, err := s.orch.SelectCourseType(s.ctx, &questsvc.SelectCourseTypeInput{
		SessionID:  sess.ID,
		CourseType: quest.CourseTypeVET,
	})
	s.Require().NoError(err)
	s.Equal(quest.PhaseEvent, selected.Session.Phase)

	out := s.answer(sess.ID, quest.EventsPerRoute)
	s.Equal([]string{"S01", "V01", "S02", "SL1"}, historyIDs(out.Session)[3:])

	offered, err := s.orch.ListTransitions(s.ctx, &questsvc.ListTransitionsInput{SessionID: sess.ID})
	s.Require().NoError(err)
	s.Equal([]quest.Destination{quest.DestinationGraduate, quest.DestinationEnd}, offered.Destinations)
}

func (s *OrchestratorTestSuite) TestELICOSContinuesToVET() {
	mocks.ExpectContent(s.mockContent, s.content)

	out, err := s.orch.InitializeSession(s.ctx, &questsvc.InitializeSessionInput{
		Character:  builders.NewCharacterBuilder().WithStatus(quest.StatusStudent).Build(),
		CourseType: quest.CourseTypeELICOS,
	})
	s.Require().NoError(err)
	s.Equal(quest.PhaseEvent, out.Session.Phase)

	s.answer(out.Session.ID, quest.EventsPerRoute)

	offered, err := s.orch.ListTransitions(s.ctx, &questsvc.ListTransitionsInput{SessionID: out.Session.ID})
	s.Require().NoError(err)
	s.Equal([]quest.Destination{
		quest.DestinationStudentVET,
		quest.DestinationStudentHE,
		quest.DestinationEnd,
	}, offered.Destinations)

	moved, err := s.orch.ChooseTransition(s.ctx, &questsvc.ChooseTransitionInput{
		SessionID:   out.Session.ID,
		Destination: quest.DestinationStudentVET,
	})
	s.Require().NoError(err)
	s.Equal(quest.CourseTypeVET, moved.Session.CourseType)
	s.Equal([]string{"STU", "STU-VET"}, moved.Session.RoutePath)

	// local dedup resets on a same route transition so All events draw again
	done := s.answer(out.Session.ID, quest.EventsPerRoute)
	ids := historyIDs(done.Session)
	s.Require().Len(ids, 2*quest.EventsPerRoute)
	s.Contains(ids[:quest.EventsPerRoute], "S01")
	s.Contains(ids[quest.EventsPerRoute:], "S01")
	s.NotEqual(ids[:3], ids[quest.EventsPerRoute:quest.EventsPerRoute+3])
}

func (s *OrchestratorTestSuite) TestExhaustionLeavesSessionWaiting() {
	s.content.Events[quest.BucketCommon] = testutils.CreateTestEvents("C", 2)
	mocks.ExpectContent(s.mockContent, s.content)

	sess := s.start(builders.NewCharacterBuilder().Build())
	s.answer(sess.ID, quest.EventsPerRoute)

	_, err := s.orch.ChooseTransition(s.ctx, &questsvc.ChooseTransitionInput{
		SessionID:   sess.ID,
		Destination: quest.DestinationWorkingHoliday,
	})
	s.Require().Error(err)
	s.True(errors.IsResourceExhausted(err))
	s.Equal(string(quest.BucketCommon), errors.GetMeta(err)["bucket"])
	s.Equal(0, errors.GetMeta(err)["event_count"])
	s.Equal(string(quest.RouteWorkingHoliday), errors.GetMeta(err)["route"])

	got, err := s.orch.GetSession(s.ctx, &questsvc.GetSessionInput{SessionID: sess.ID})
	s.Require().NoError(err)
	s.Equal(quest.PhaseAwaitingEvent, got.Session.Phase)
	s.Equal(quest.RouteWorkingHoliday, got.Session.CurrentRoute)
	s.Equal(0, got.Session.EventCount)
	s.Len(got.Session.History, quest.EventsPerRoute)

	// New content makes the retry succeed
	s.content.Events[quest.BucketCommon] = append(s.content.Events[quest.BucketCommon],
		builders.NewEventBuilder("C99").Build())

	drawn, err := s.orch.DrawEvent(s.ctx, &questsvc.DrawEventInput{SessionID: sess.ID})
	s.Require().NoError(err)
	s.Equal("C99", drawn.Session.CurrentEvent.ID)
	s.Equal(quest.PhaseEvent, drawn.Session.Phase)
}

func (s *OrchestratorTestSuite) TestLoadFailureKeepsChoice() {
	mocks.ExpectCharacterOptions(s.mockContent, s.content)
	common := &content.LoadEventsOutput{Events: s.content.Events[quest.BucketCommon]}
	gomock.InOrder(
		s.mockContent.EXPECT().LoadEvents(gomock.Any(), gomock.Any()).Return(common, nil),
		s.mockContent.EXPECT().LoadEvents(gomock.Any(), gomock.Any()).
			Return(nil, errors.Unavailable("content offline").WithMeta("dataset", "events_common")),
		s.mockContent.EXPECT().LoadEvents(gomock.Any(), gomock.Any()).Return(common, nil),
	)

	sess := s.start(builders.NewCharacterBuilder().Build())

	_, err := s.orch.ChooseOption(s.ctx, &questsvc.ChooseOptionInput{SessionID: sess.ID})
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
	s.Equal("events_common", errors.GetMeta(err)["dataset"])

	got, err := s.orch.GetSession(s.ctx, &questsvc.GetSessionInput{SessionID: sess.ID})
	s.Require().NoError(err)
	s.Equal(quest.PhaseAwaitingEvent, got.Session.Phase)
	s.Equal(1, got.Session.EventCount)
	s.Len(got.Session.History, 1)

	_, err = s.orch.ChooseOption(s.ctx, &questsvc.ChooseOptionInput{SessionID: sess.ID})
	s.True(errors.IsFailedPrecondition(err))

	drawn, err := s.orch.DrawEvent(s.ctx, &questsvc.DrawEventInput{SessionID: sess.ID})
	s.Require().NoError(err)
	s.Equal("C02", drawn.Session.CurrentEvent.ID)
}

func (s *OrchestratorTestSuite) TestStaleLoadIsAborted() {
	mocks.ExpectCharacterOptions(s.mockContent, s.content)
	common := &content.LoadEventsOutput{Events: s.content.Events[quest.BucketCommon]}

	var sessionID string
	gomock.InOrder(
		s.mockContent.EXPECT().LoadEvents(gomock.Any(), gomock.Any()).Return(common, nil),
		s.mockContent.EXPECT().LoadEvents(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ *content.LoadEventsInput) (*content.LoadEventsOutput, error) {
				// The player restarts while the bucket is loading
				_, err := s.orch.ResetSession(ctx, &questsvc.ResetSessionInput{SessionID: sessionID})
				s.Require().NoError(err)
				return common, nil
			}),
	)

	sess := s.start(builders.NewCharacterBuilder().Build())
	sessionID = sess.ID

	_, err := s.orch.ChooseOption(s.ctx, &questsvc.ChooseOptionInput{SessionID: sess.ID})
	s.Require().Error(err)
	s.True(errors.IsAborted(err))

	got, err := s.orch.GetSession(s.ctx, &questsvc.GetSessionInput{SessionID: sess.ID})
	s.Require().NoError(err)
	s.Equal(quest.PhaseCharacterCreation, got.Session.Phase)
	s.Equal(int64(1), got.Session.Generation)
	s.Nil(got.Session.CurrentEvent)
	s.Empty(got.Session.History)
	s.Empty(got.Session.GloballyUsed)
}

func (s *OrchestratorTestSuite) TestMissingEndingsKeepTransition() {
	s.content.Endings = nil
	mocks.ExpectEvents(s.mockContent, s.content)
	mocks.ExpectCharacterOptions(s.mockContent, s.content)
	gomock.InOrder(
		s.mockContent.EXPECT().LoadEndings(gomock.Any(), gomock.Any()).
			Return(&content.LoadEndingsOutput{}, nil),
		s.mockContent.EXPECT().LoadEndings(gomock.Any(), gomock.Any()).
			Return(&content.LoadEndingsOutput{Endings: testutils.CreateTestContent().Endings}, nil),
	)

	sess := s.start(builders.NewCharacterBuilder().WithStatus(quest.StatusGraduate).Build())
	for range quest.EventsPerRoute - 1 {
		s.answer(sess.ID, 1)
	}

	_, err := s.orch.ChooseOption(s.ctx, &questsvc.ChooseOptionInput{SessionID: sess.ID})
	s.True(errors.IsNotFound(err))

	got, err := s.orch.GetSession(s.ctx, &questsvc.GetSessionInput{SessionID: sess.ID})
	s.Require().NoError(err)
	s.Equal(quest.PhaseRouteTransition, got.Session.Phase)
	s.Equal(quest.EventsPerRoute, got.Session.EventCount)

	ended, err := s.orch.ChooseTransition(s.ctx, &questsvc.ChooseTransitionInput{
		SessionID:   sess.ID,
		Destination: quest.DestinationEnd,
	})
	s.Require().NoError(err)
	s.True(ended.Ended)
	s.Equal("E02", ended.Session.Ending.ID)
}

func (s *OrchestratorTestSuite) TestResetAndReinitialize() {
	mocks.ExpectContent(s.mockContent, s.content)
	sess := s.start(builders.NewCharacterBuilder().Build())
	s.answer(sess.ID, 2)

	_, err := s.orch.InitializeSession(s.ctx, &questsvc.InitializeSessionInput{
		SessionID: sess.ID,
		Character: builders.NewCharacterBuilder().Build(),
	})
	s.True(errors.IsFailedPrecondition(err))

	reset, err := s.orch.ResetSession(s.ctx, &questsvc.ResetSessionInput{SessionID: sess.ID})
	s.Require().NoError(err)
	s.Equal(quest.PhaseCharacterCreation, reset.Session.Phase)
	s.Equal(quest.BaseStats(), reset.Session.Stats)
	s.Empty(reset.Session.GloballyUsed)
	s.Empty(reset.Session.RoutePath)
	s.Nil(reset.Session.Character)

	again, err := s.orch.InitializeSession(s.ctx, &questsvc.InitializeSessionInput{
		SessionID: sess.ID,
		Character: builders.NewCharacterBuilder().WithStatus(quest.StatusWHV).Build(),
	})
	s.Require().NoError(err)
	s.Equal(sess.ID, again.Session.ID)
	s.Equal(quest.RouteWorkingHoliday, again.Session.CurrentRoute)
	s.Equal("C01", again.Session.CurrentEvent.ID)
}

func (s *OrchestratorTestSuite) TestCharacterCreation() {
	mocks.ExpectContent(s.mockContent, s.content)

	s.Run("invalid answers are rejected", func() {
		_, err := s.orch.InitializeSession(s.ctx, &questsvc.InitializeSessionInput{
			Character: builders.NewCharacterBuilder().WithName("").WithTitle("wizard").Build(),
		})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
		fields := errors.GetMeta(err)["validation_errors"]
		s.NotNil(fields)
	})

	s.Run("missing character", func() {
		_, err := s.orch.InitializeSession(s.ctx, &questsvc.InitializeSessionInput{})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("level defaults and card is built", func() {
		out, err := s.orch.InitializeSession(s.ctx, &questsvc.InitializeSessionInput{
			Character: builders.NewCharacterBuilder().WithLevel(0).WithTitle("bachelor").
				WithWork(2, false, "retail").Build(),
		})
		s.Require().NoError(err)
		s.Equal(quest.DefaultLevel, out.Session.Character.Level)
		s.Equal("retail", out.Session.Character.Guild)
		s.Equal([]string{"K+2"}, out.Modifiers)
		s.Equal("Bronze Adventurer", out.Card.Rank)
		s.Contains(out.Card.Archetypes, "Bachelor: Apprentice")
	})

	s.Run("guild is dropped for related work", func() {
		out, err := s.orch.InitializeSession(s.ctx, &questsvc.InitializeSessionInput{
			Character: builders.NewCharacterBuilder().WithWork(3, true, "retail").Build(),
		})
		s.Require().NoError(err)
		s.Empty(out.Session.Character.Guild)
	})
}

func (s *OrchestratorTestSuite) TestUnknownSession() {
	_, err := s.orch.GetSession(s.ctx, &questsvc.GetSessionInput{SessionID: "quest_404"})
	s.True(errors.IsNotFound(err))

	_, err = s.orch.ChooseOption(s.ctx, &questsvc.ChooseOptionInput{SessionID: "quest_404"})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestPhaseGuards() {
	mocks.ExpectContent(s.mockContent, s.content)
	sess := s.start(builders.NewCharacterBuilder().Build())

	_, err := s.orch.GetCurrentEnding(s.ctx, &questsvc.GetCurrentEndingInput{SessionID: sess.ID})
	s.True(errors.IsFailedPrecondition(err))

	_, err = s.orch.ChooseTransition(s.ctx, &questsvc.ChooseTransitionInput{
		SessionID:   sess.ID,
		Destination: quest.DestinationEnd,
	})
	s.True(errors.IsFailedPrecondition(err))

	_, err = s.orch.DrawEvent(s.ctx, &questsvc.DrawEventInput{SessionID: sess.ID})
	s.True(errors.IsFailedPrecondition(err))

	_, err = s.orch.SelectCourseType(s.ctx, &questsvc.SelectCourseTypeInput{
		SessionID:  sess.ID,
		CourseType: quest.CourseTypeHE,
	})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestEventsArePublished() {
	mocks.ExpectContent(s.mockContent, s.content)

	sess := s.start(builders.NewCharacterBuilder().WithStatus(quest.StatusGraduate).Build())
	s.answer(sess.ID, quest.EventsPerRoute)
	_, err := s.orch.ResetSession(s.ctx, &questsvc.ResetSessionInput{SessionID: sess.ID})
	s.Require().NoError(err)

	s.mu.Lock()
	defer s.mu.Unlock()

	expected := []string{questsvc.EventSessionInitialized}
	for range quest.EventsPerRoute {
		expected = append(expected, questsvc.EventOptionChosen)
	}
	expected = append(expected, questsvc.EventEndingResolved, questsvc.EventSessionReset)
	s.Equal(expected, s.published)
}

func (s *OrchestratorTestSuite) TestListCharacterOptions() {
	mocks.ExpectCharacterOptions(s.mockContent, s.content)

	out, err := s.orch.ListCharacterOptions(s.ctx, &questsvc.ListCharacterOptionsInput{})
	s.Require().NoError(err)
	s.Equal(s.content.Options, out.Options)
}
