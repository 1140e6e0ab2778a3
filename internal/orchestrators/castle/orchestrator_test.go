package castle_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-cli/internal/encounters"
	encountermock "github.com/KirkDiggler/rpg-cli/internal/encounters/mock"
	"github.com/KirkDiggler/rpg-cli/internal/entities"
	"github.com/KirkDiggler/rpg-cli/internal/errors"
	"github.com/KirkDiggler/rpg-cli/internal/orchestrators/castle"
	"github.com/KirkDiggler/rpg-cli/internal/pkg/clock"
	consolemock "github.com/KirkDiggler/rpg-cli/internal/pkg/console/mock"
	"github.com/KirkDiggler/rpg-cli/internal/pkg/idgen"
	rngmock "github.com/KirkDiggler/rpg-cli/internal/pkg/rng/mock"
	"github.com/KirkDiggler/rpg-cli/internal/repositories/journal"
	journalmock "github.com/KirkDiggler/rpg-cli/internal/repositories/journal/mock"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	console *consolemock.MockConsole
	roller  *rngmock.MockRoller
	journal *journal.InMemoryRepository
	clock   clock.Clock
	ctx     context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.console = consolemock.NewMockConsole(s.ctrl)
	s.roller = rngmock.NewMockRoller(s.ctrl)
	s.journal = journal.NewInMemory()
	s.clock = &clock.Fixed{T: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	s.ctx = context.Background()
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) newOrchestrator(rooms []*entities.Room) castle.Service {
	svc, err := castle.NewOrchestrator(&castle.Config{
		Console:     s.console,
		Roller:      s.roller,
		Journal:     s.journal,
		IDGenerator: idgen.NewSequential("test"),
		Clock:       s.clock,
		Rooms:       rooms,
	})
	s.Require().NoError(err)
	return svc
}

// allowNarration lets any flavor-text Print through; prompts stay explicit.
func (s *OrchestratorTestSuite) allowNarration() {
	s.console.EXPECT().Print(gomock.Any()).AnyTimes()
	s.console.EXPECT().Print(gomock.Any(), gomock.Any()).AnyTimes()
}

func (s *OrchestratorTestSuite) endingRoom(id, name string) *entities.Room {
	enc := encountermock.NewMockEncounter(s.ctrl)
	enc.EXPECT().Run(gomock.Any()).Return(encounters.OutcomeEnd, nil).AnyTimes()
	return entities.NewRoom(id, name, enc)
}

func (s *OrchestratorTestSuite) expectDoorPrompt(doorCount, chosen int) {
	s.roller.EXPECT().IntN(3).Return(doorCount - 2)
	s.console.EXPECT().
		PromptInt(
			gomock.Any(),
			1, doorCount,
			gomock.Any(),
		).
		Return(chosen, nil)
}

func (s *OrchestratorTestSuite) TestPlayGame_TreasureOnlyCastleEndsAfterOneVisit() {
	s.allowNarration()

	room := s.endingRoom("room_treasure", "Treasure Room")
	s.expectDoorPrompt(2, 1)
	s.roller.EXPECT().IntN(1).Return(0)
	s.console.EXPECT().
		Prompt("Would you like to explore a different castle? (y/n): ").
		Return("n", nil)

	svc := s.newOrchestrator([]*entities.Room{room})
	out, err := svc.PlayGame(s.ctx, &castle.PlayGameInput{})

	s.Require().NoError(err)
	s.Assert().Equal(1, out.CastlesExplored)
	s.Assert().Equal(1, out.RoomsVisited)

	// Session test_1 holds exactly the one visit.
	list, err := s.journal.ListSession(s.ctx, &journal.ListSessionInput{SessionID: "test_1"})
	s.Require().NoError(err)
	s.Require().Len(list.Records, 1)
	s.Assert().Equal("room_treasure", list.Records[0].SubjectID)
	s.Assert().Equal(encounters.OutcomeEnd, list.Records[0].Outcome)
}

func (s *OrchestratorTestSuite) TestPlayGame_ContinueThenEnd() {
	s.allowNarration()

	flavor := encountermock.NewMockEncounter(s.ctrl)
	flavor.EXPECT().Run(gomock.Any()).Return(encounters.OutcomeContinue, nil)
	rooms := []*entities.Room{
		entities.NewRoom("room_library", "Library", flavor),
		s.endingRoom("room_treasure", "Treasure Room"),
	}

	gomock.InOrder(
		s.roller.EXPECT().IntN(3).Return(0),
		s.roller.EXPECT().IntN(2).Return(0), // draw the library first
		s.roller.EXPECT().IntN(3).Return(0),
		s.roller.EXPECT().IntN(1).Return(0), // only the treasure room remains
	)
	s.console.EXPECT().
		PromptInt(gomock.Any(), 1, 2, gomock.Any()).
		Return(1, nil).
		Times(2)
	s.console.EXPECT().
		Prompt("Would you like to explore a different castle? (y/n): ").
		Return("n", nil)

	svc := s.newOrchestrator(rooms)
	out, err := svc.PlayGame(s.ctx, &castle.PlayGameInput{})

	s.Require().NoError(err)
	s.Assert().Equal(1, out.CastlesExplored)
	s.Assert().Equal(2, out.RoomsVisited)
}

func (s *OrchestratorTestSuite) TestPlayGame_ReplayAcceptsYPrefix() {
	s.allowNarration()

	room := s.endingRoom("room_treasure", "Treasure Room")
	s.roller.EXPECT().IntN(3).Return(0).Times(2)
	s.roller.EXPECT().IntN(1).Return(0).Times(2)
	s.console.EXPECT().
		PromptInt(gomock.Any(), 1, 2, gomock.Any()).
		Return(1, nil).
		Times(2)
	gomock.InOrder(
		s.console.EXPECT().
			Prompt("Would you like to explore a different castle? (y/n): ").
			Return("YES, absolutely", nil),
		s.console.EXPECT().
			Prompt("Would you like to explore a different castle? (y/n): ").
			Return("no", nil),
	)

	svc := s.newOrchestrator([]*entities.Room{room})
	out, err := svc.PlayGame(s.ctx, &castle.PlayGameInput{})

	s.Require().NoError(err)
	s.Assert().Equal(2, out.CastlesExplored)
	s.Assert().Equal(2, out.RoomsVisited)

	// The replay ran under a fresh session.
	first, err := s.journal.ListSession(s.ctx, &journal.ListSessionInput{SessionID: "test_1"})
	s.Require().NoError(err)
	s.Assert().Len(first.Records, 1)

	second, err := s.journal.ListSession(s.ctx, &journal.ListSessionInput{SessionID: "test_3"})
	s.Require().NoError(err)
	s.Assert().Len(second.Records, 1)
}

func (s *OrchestratorTestSuite) TestVisitNextRoom_EmptyCastle() {
	s.allowNarration()

	s.expectDoorPrompt(4, 3)

	svc := s.newOrchestrator([]*entities.Room{})
	out, err := svc.VisitNextRoom(s.ctx, &castle.VisitNextRoomInput{})

	s.Require().NoError(err)
	s.Assert().Equal(encounters.OutcomeEnd, out.Outcome)
	s.Assert().Empty(out.RoomName)
	s.Assert().Equal(3, out.Door)
}

func (s *OrchestratorTestSuite) TestVisitNextRoom_RecordsVisit() {
	s.allowNarration()

	repo := journalmock.NewMockRepository(s.ctrl)
	flavor := encountermock.NewMockEncounter(s.ctrl)
	flavor.EXPECT().Run(gomock.Any()).Return(encounters.OutcomeContinue, nil)
	room := entities.NewRoom("room_armory", "Armory", flavor)

	s.expectDoorPrompt(2, 2)
	s.roller.EXPECT().IntN(1).Return(0)
	repo.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *journal.AppendInput) (*journal.AppendOutput, error) {
			s.Assert().Equal("test_2", input.VisitID)
			s.Assert().Equal("test_1", input.SessionID)
			s.Assert().Equal("room_armory", input.Subject.GetID())
			s.Assert().Equal(encounters.OutcomeContinue, input.Outcome)
			s.Assert().Equal(s.clock.Now(), input.VisitedAt)
			return &journal.AppendOutput{}, nil
		})

	svc, err := castle.NewOrchestrator(&castle.Config{
		Console:     s.console,
		Roller:      s.roller,
		Journal:     repo,
		IDGenerator: idgen.NewSequential("test"),
		Clock:       s.clock,
		Rooms:       []*entities.Room{room},
	})
	s.Require().NoError(err)

	out, err := svc.VisitNextRoom(s.ctx, &castle.VisitNextRoomInput{})
	s.Require().NoError(err)
	s.Assert().Equal("Armory", out.RoomName)
	s.Assert().Equal(2, out.Door)
	s.Assert().Equal(encounters.OutcomeContinue, out.Outcome)
}

func (s *OrchestratorTestSuite) TestResetCastle() {
	s.console.EXPECT().Print("Castle rooms have been reset.\n")

	svc := s.newOrchestrator([]*entities.Room{})
	_, err := svc.ResetCastle(s.ctx, &castle.ResetCastleInput{})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TestNilInputsRejected() {
	svc := s.newOrchestrator([]*entities.Room{})

	_, err := svc.VisitNextRoom(s.ctx, nil)
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = svc.ResetCastle(s.ctx, nil)
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = svc.PlayGame(s.ctx, nil)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestNewOrchestrator_Validation() {
	_, err := castle.NewOrchestrator(&castle.Config{})

	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "Console: is required")
	s.Assert().Contains(err.Error(), "Roller: is required")
	s.Assert().Contains(err.Error(), "Journal: is required")
	s.Assert().Contains(err.Error(), "IDGenerator: is required")
	s.Assert().Contains(err.Error(), "Clock: is required")
}
