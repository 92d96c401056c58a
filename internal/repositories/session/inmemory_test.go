package session_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/solution-quest/internal/entities/quest"
	"github.com/KirkDiggler/solution-quest/internal/errors"
	"github.com/KirkDiggler/solution-quest/internal/repositories/session"
)

type InMemoryTestSuite struct {
	suite.Suite
	repo *session.InMemoryRepository
	ctx  context.Context
	now  time.Time
}

func TestInMemorySuite(t *testing.T) {
	suite.Run(t, new(InMemoryTestSuite))
}

func (s *InMemoryTestSuite) SetupTest() {
	s.repo = session.NewInMemory()
	s.ctx = context.Background()
	s.now = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
}

func (s *InMemoryTestSuite) create(id string) *quest.Session {
	sess := quest.NewSession(id, s.now)
	_, err := s.repo.Create(s.ctx, &session.CreateInput{Session: sess})
	s.Require().NoError(err)
	return sess
}

func (s *InMemoryTestSuite) TestCreate() {
	testCases := []struct {
		name    string
		input   *session.CreateInput
		errCode errors.Code
	}{
		{name: "nil input", input: nil, errCode: errors.CodeInvalidArgument},
		{name: "nil session", input: &session.CreateInput{}, errCode: errors.CodeInvalidArgument},
		{
			name:    "empty id",
			input:   &session.CreateInput{Session: quest.NewSession("", s.now)},
			errCode: errors.CodeInvalidArgument,
		},
		{name: "valid", input: &session.CreateInput{Session: quest.NewSession("quest_1", s.now)}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := s.repo.Create(s.ctx, tc.input)
			if tc.errCode != "" {
				s.Require().Error(err)
				s.Equal(tc.errCode, errors.GetCode(err))
				return
			}
			s.Require().NoError(err)
			s.Equal("quest_1", out.Session.ID)
		})
	}
}

func (s *InMemoryTestSuite) TestCreateDuplicate() {
	s.create("quest_1")

	_, err := s.repo.Create(s.ctx, &session.CreateInput{Session: quest.NewSession("quest_1", s.now)})
	s.True(errors.IsAlreadyExists(err))
}

func (s *InMemoryTestSuite) TestGetReturnsCopy() {
	s.create("quest_1")

	first, err := s.repo.Get(s.ctx, &session.GetInput{ID: "quest_1"})
	s.Require().NoError(err)
	first.Session.Stats.Knowledge = 6
	first.Session.GloballyUsed["C01"] = true
	first.Session.RoutePath = append(first.Session.RoutePath, "OVS")

	second, err := s.repo.Get(s.ctx, &session.GetInput{ID: "quest_1"})
	s.Require().NoError(err)
	s.Equal(1, second.Session.Stats.Knowledge)
	s.Empty(second.Session.GloballyUsed)
	s.Empty(second.Session.RoutePath)
}

func (s *InMemoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, &session.GetInput{ID: "nope"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Get(s.ctx, &session.GetInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *InMemoryTestSuite) TestUpdate() {
	sess := s.create("quest_1")
	sess.Phase = quest.PhaseEvent
	sess.EventCount = 3

	_, err := s.repo.Update(s.ctx, &session.UpdateInput{Session: sess})
	s.Require().NoError(err)

	// Later changes to the caller's value are not visible
	sess.EventCount = 5

	out, err := s.repo.Get(s.ctx, &session.GetInput{ID: "quest_1"})
	s.Require().NoError(err)
	s.Equal(quest.PhaseEvent, out.Session.Phase)
	s.Equal(3, out.Session.EventCount)
}

func (s *InMemoryTestSuite) TestUpdateMissing() {
	_, err := s.repo.Update(s.ctx, &session.UpdateInput{Session: quest.NewSession("ghost", s.now)})
	s.True(errors.IsNotFound(err))
}

func (s *InMemoryTestSuite) TestConcurrentAccess() {
	sess := s.create("quest_1")

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			c := sess.Clone()
			c.EventCount = i % quest.EventsPerRoute
			_, err := s.repo.Update(s.ctx, &session.UpdateInput{Session: c})
			s.NoError(err)
		}()
		go func() {
			defer wg.Done()
			_, err := s.repo.Get(s.ctx, &session.GetInput{ID: "quest_1"})
			s.NoError(err)
		}()
	}
	wg.Wait()
}
