package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/solution-quest/internal/entities/quest"
	"github.com/KirkDiggler/solution-quest/internal/errors"
	questsvc "github.com/KirkDiggler/solution-quest/internal/services/quest"
	questmock "github.com/KirkDiggler/solution-quest/internal/services/quest/mock"
	"github.com/KirkDiggler/solution-quest/internal/testutils"
	"github.com/KirkDiggler/solution-quest/internal/testutils/builders"
)

var testTime = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

type ModelTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	mockSvc *questmock.MockService
	ctx     context.Context
	model   Model
}

func (s *ModelTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockSvc = questmock.NewMockService(s.ctrl)
	s.ctx = context.Background()
	s.model = New(s.ctx, s.mockSvc)
}

func (s *ModelTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ModelTestSuite) send(msg tea.Msg) tea.Cmd {
	next, cmd := s.model.Update(msg)
	s.model = next.(Model)
	return cmd
}

func (s *ModelTestSuite) press(key string) tea.Cmd {
	switch key {
	case "enter":
		return s.send(tea.KeyMsg{Type: tea.KeyEnter})
	case "down":
		return s.send(tea.KeyMsg{Type: tea.KeyDown})
	case "up":
		return s.send(tea.KeyMsg{Type: tea.KeyUp})
	}
	return s.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

// run executes a command and feeds its message back into the model
func (s *ModelTestSuite) run(cmd tea.Cmd) tea.Cmd {
	s.Require().NotNil(cmd)
	return s.send(cmd())
}

func (s *ModelTestSuite) eventSession(phase quest.Phase) *quest.Session {
	session := quest.NewSession("quest_1", testTime)
	session.Phase = phase
	session.CurrentRoute = quest.RouteOffshore
	session.RoutePath = []string{"OVS"}
	event := builders.NewEventBuilder("C01").WithTitle("Visa interview").Build()
	session.CurrentEvent = &event
	return session
}

func (s *ModelTestSuite) loadOptions() {
	s.mockSvc.EXPECT().
		ListCharacterOptions(s.ctx, &questsvc.ListCharacterOptionsInput{}).
		Return(&questsvc.ListCharacterOptionsOutput{Options: testutils.CreateTestCharacterOptions()}, nil)

	s.run(s.model.loadOptions())
	s.Require().Equal(screenQuestion, s.model.screen)
}

func (s *ModelTestSuite) TestQuestionnaireStartsSession() {
	s.loadOptions()

	s.press("Mia")
	s.press("enter")
	s.press("enter")
	s.press("3") // bachelor
	s.press("3") // it
	s.press("1") // no experience
	s.press("down")
	s.press("enter") // student
	s.press("3")     // strong

	s.Require().Equal(screenLoading, s.model.screen)

	s.mockSvc.EXPECT().
		InitializeSession(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *questsvc.InitializeSessionInput) (*questsvc.InitializeSessionOutput, error) {
			s.Empty(input.SessionID)
			s.Equal("Mia", input.Character.Name)
			s.Equal(quest.DefaultLevel, input.Character.Level)
			s.Equal("bachelor", input.Character.Title)
			s.Equal("it", input.Character.Species)
			s.Equal(quest.StatusStudent, input.Character.Status)
			s.Equal("strong", input.Character.EnglishLevel)

			session := quest.NewSession("quest_1", testTime)
			session.Phase = quest.PhaseCourseSelection
			session.CurrentRoute = quest.RouteStudent
			return &questsvc.InitializeSessionOutput{
				Session: session,
				Card:    quest.CharacterCard{Name: "Mia", Rank: "Bronze Adventurer"},
			}, nil
		})

	s.run(s.model.initialize(s.model.form.result()))

	s.Equal(screenCourse, s.model.screen)
	s.Require().NotNil(s.model.card)
	s.Equal("Bronze Adventurer", s.model.card.Rank)
	s.Contains(s.model.View(), "Choose your course")
}

func (s *ModelTestSuite) TestQuestionnaireRejectsBlankName() {
	s.loadOptions()

	cmd := s.press("enter")

	s.Nil(cmd)
	s.Equal(screenQuestion, s.model.screen)
	s.Contains(s.model.View(), "a name is required")
}

func (s *ModelTestSuite) TestCourseSelection() {
	session := quest.NewSession("quest_1", testTime)
	session.Phase = quest.PhaseCourseSelection
	s.send(sessionMsg{session: session})
	s.Require().Equal(screenCourse, s.model.screen)

	cmd := s.press("2")
	s.Require().NotNil(cmd)

	s.mockSvc.EXPECT().
		SelectCourseType(s.ctx, &questsvc.SelectCourseTypeInput{SessionID: "quest_1", CourseType: quest.CourseTypeVET}).
		Return(&questsvc.SelectCourseTypeOutput{Session: s.eventSession(quest.PhaseEvent)}, nil)

	s.run(cmd)

	s.Equal(screenEvent, s.model.screen)
	s.Contains(s.model.View(), "Visa interview")
	s.Contains(s.model.View(), "Event 1 of 7")
}

func (s *ModelTestSuite) TestChooseOptionWithCursor() {
	s.send(sessionMsg{session: s.eventSession(quest.PhaseEvent)})

	s.press("down")
	s.press("down")
	cmd := s.press("enter")

	next := s.eventSession(quest.PhaseEvent)
	next.EventCount = 1
	s.mockSvc.EXPECT().
		ChooseOption(s.ctx, &questsvc.ChooseOptionInput{SessionID: "quest_1", OptionIndex: 2}).
		Return(&questsvc.ChooseOptionOutput{SessionUpdate: questsvc.SessionUpdate{
			Session: next,
			Effect:  "K+1",
			Outcome: questsvc.OutcomeNextEvent,
		}}, nil)

	s.run(cmd)

	s.Equal(screenEvent, s.model.screen)
	s.Equal("K+1", s.model.lastEffect)
	s.Contains(s.model.View(), "Event 2 of 7")
}

func (s *ModelTestSuite) TestRouteTransitionListsDestinations() {
	session := s.eventSession(quest.PhaseRouteTransition)
	session.CurrentEvent = nil

	s.mockSvc.EXPECT().
		ListTransitions(s.ctx, &questsvc.ListTransitionsInput{SessionID: "quest_1"}).
		Return(&questsvc.ListTransitionsOutput{
			Route:        quest.RouteOffshore,
			Destinations: []quest.Destination{quest.DestinationStudent, quest.DestinationWorkingHoliday, quest.DestinationEnd},
		}, nil)

	cmd := s.send(sessionMsg{session: session})
	s.Equal(screenLoading, s.model.screen)
	s.run(cmd)

	s.Require().Equal(screenTransition, s.model.screen)
	s.Contains(s.model.View(), quest.DestinationWorkingHoliday.Label())

	cmd = s.press("2")

	whv := s.eventSession(quest.PhaseEvent)
	whv.CurrentRoute = quest.RouteWorkingHoliday
	whv.RoutePath = []string{"OVS", "WHV"}
	s.mockSvc.EXPECT().
		ChooseTransition(s.ctx, &questsvc.ChooseTransitionInput{SessionID: "quest_1", Destination: quest.DestinationWorkingHoliday}).
		Return(&questsvc.ChooseTransitionOutput{Session: whv}, nil)

	s.run(cmd)

	s.Equal(screenEvent, s.model.screen)
	s.Contains(s.model.View(), "OVS > WHV")
}

func (s *ModelTestSuite) TestAwaitingEventDrawsAgain() {
	s.mockSvc.EXPECT().
		DrawEvent(s.ctx, &questsvc.DrawEventInput{SessionID: "quest_1"}).
		Return(&questsvc.DrawEventOutput{Session: s.eventSession(quest.PhaseEvent)}, nil)

	cmd := s.send(sessionMsg{session: s.eventSession(quest.PhaseAwaitingEvent)})
	s.run(cmd)

	s.Equal(screenEvent, s.model.screen)
}

func (s *ModelTestSuite) TestEndingAndRestart() {
	session := s.eventSession(quest.PhaseEnded)
	session.CurrentEvent = nil
	ending := builders.NewEndingBuilder("E01").WithStatType("Strategic").Build()
	ending.CTA = "Book a consultation"
	session.Ending = &ending
	session.RoutePath = []string{"OVS", "STU"}

	s.send(sessionMsg{session: session})

	s.Require().Equal(screenEnded, s.model.screen)
	view := s.model.View()
	s.Contains(view, "ending_strategic.png")
	s.Contains(view, "Book a consultation")
	s.Contains(view, "OVS > STU")

	s.model.options = testutils.CreateTestCharacterOptions()

	reset := quest.NewSession("quest_1", testTime)
	s.mockSvc.EXPECT().
		ResetSession(s.ctx, &questsvc.ResetSessionInput{SessionID: "quest_1"}).
		Return(&questsvc.ResetSessionOutput{Session: reset}, nil)

	s.run(s.press("r"))

	s.Equal(screenQuestion, s.model.screen)
	s.Require().NotNil(s.model.session)
	s.Equal("quest_1", s.model.session.ID)
}

func (s *ModelTestSuite) TestErrorScreenRetriesFromSession() {
	s.send(sessionMsg{session: s.eventSession(quest.PhaseEvent)})

	s.mockSvc.EXPECT().
		ChooseOption(s.ctx, gomock.Any()).
		Return(nil, errors.Unavailable("content source is down"))

	s.run(s.press("1"))

	s.Require().Equal(screenError, s.model.screen)
	s.Contains(s.model.View(), "content source is down")
	s.Contains(s.model.View(), "r: retry")

	s.mockSvc.EXPECT().
		GetSession(s.ctx, &questsvc.GetSessionInput{SessionID: "quest_1"}).
		Return(&questsvc.GetSessionOutput{Session: s.eventSession(quest.PhaseEvent)}, nil)

	s.run(s.press("r"))

	s.Equal(screenEvent, s.model.screen)
}

func (s *ModelTestSuite) TestErrorScreenWithoutRetryOffersNewGame() {
	s.model.options = testutils.CreateTestCharacterOptions()
	s.send(sessionMsg{session: s.eventSession(quest.PhaseEvent)})

	s.mockSvc.EXPECT().
		ChooseOption(s.ctx, gomock.Any()).
		Return(nil, errors.ResourceExhausted("no events left"))

	s.run(s.press("1"))

	s.Require().Equal(screenError, s.model.screen)
	s.NotContains(s.model.View(), "r: retry")
	s.Contains(s.model.View(), "n: new game")

	s.Nil(s.press("r"))
	s.Equal(screenError, s.model.screen)

	s.mockSvc.EXPECT().
		ResetSession(s.ctx, &questsvc.ResetSessionInput{SessionID: "quest_1"}).
		Return(&questsvc.ResetSessionOutput{Session: quest.NewSession("quest_1", testTime)}, nil)

	s.run(s.press("n"))

	s.Equal(screenQuestion, s.model.screen)
}

func (s *ModelTestSuite) TestQuitKeys() {
	cmd := s.send(tea.KeyMsg{Type: tea.KeyCtrlC})
	s.Require().NotNil(cmd)
	s.IsType(tea.QuitMsg{}, cmd())
}

func TestModelSuite(t *testing.T) {
	suite.Run(t, new(ModelTestSuite))
}
