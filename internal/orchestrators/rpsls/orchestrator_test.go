package rpsls_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-cli/internal/errors"
	"github.com/KirkDiggler/rpg-cli/internal/orchestrators/rpsls"
	consolemock "github.com/KirkDiggler/rpg-cli/internal/pkg/console/mock"
	rngmock "github.com/KirkDiggler/rpg-cli/internal/pkg/rng/mock"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	console *consolemock.MockConsole
	roller  *rngmock.MockRoller
	svc     rpsls.Service
	ctx     context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.console = consolemock.NewMockConsole(s.ctrl)
	s.roller = rngmock.NewMockRoller(s.ctrl)
	s.ctx = context.Background()

	svc, err := rpsls.NewOrchestrator(&rpsls.Config{
		Console: s.console,
		Roller:  s.roller,
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// allowNarration lets any flavor-text Print through; prompts stay explicit.
func (s *OrchestratorTestSuite) allowNarration() {
	s.console.EXPECT().Print(gomock.Any()).AnyTimes()
	s.console.EXPECT().Print(gomock.Any(), gomock.Any()).AnyTimes()
	s.console.EXPECT().Print(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
}

func (s *OrchestratorTestSuite) expectChoicePrompt(chosen int) {
	s.console.EXPECT().
		PromptInt("Enter number (1-5): ", 1, 5, "Invalid input. Please try again.").
		Return(chosen, nil)
}

func (s *OrchestratorTestSuite) TestPlayRound_UserWins() {
	s.allowNarration()

	s.expectChoicePrompt(1)             // rock
	s.roller.EXPECT().IntN(5).Return(2) // scissors

	out, err := s.svc.PlayRound(s.ctx, &rpsls.PlayRoundInput{})

	s.Require().NoError(err)
	s.Assert().Equal(rpsls.ChoiceRock, out.User)
	s.Assert().Equal(rpsls.ChoiceScissors, out.Computer)
	s.Assert().Equal(rpsls.ResultWin, out.Result)
	s.Assert().Equal("Rock crushes scissors", out.Reason)
}

func (s *OrchestratorTestSuite) TestPlayRound_UserLoses() {
	s.allowNarration()

	s.expectChoicePrompt(3)             // scissors
	s.roller.EXPECT().IntN(5).Return(4) // spock

	out, err := s.svc.PlayRound(s.ctx, &rpsls.PlayRoundInput{})

	s.Require().NoError(err)
	s.Assert().Equal(rpsls.ResultLose, out.Result)
	s.Assert().Equal("Spock smashes scissors", out.Reason)
}

func (s *OrchestratorTestSuite) TestPlayRound_Tie() {
	s.allowNarration()

	s.expectChoicePrompt(4)             // lizard
	s.roller.EXPECT().IntN(5).Return(3) // lizard

	out, err := s.svc.PlayRound(s.ctx, &rpsls.PlayRoundInput{})

	s.Require().NoError(err)
	s.Assert().Equal(rpsls.ResultTie, out.Result)
	s.Assert().Equal("It's a tie!", out.Reason)
}

func (s *OrchestratorTestSuite) TestPlayRound_ReadFailure() {
	s.allowNarration()

	s.console.EXPECT().
		PromptInt("Enter number (1-5): ", 1, 5, "Invalid input. Please try again.").
		Return(0, errors.Internal("input stream closed"))

	_, err := s.svc.PlayRound(s.ctx, &rpsls.PlayRoundInput{})

	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "failed to read choice")
}

func (s *OrchestratorTestSuite) TestPlay_OnlyExactYContinues() {
	s.allowNarration()

	// Two rounds: "Y" continues, "yes" does not.
	s.expectChoicePrompt(1)
	s.expectChoicePrompt(2)
	gomock.InOrder(
		s.roller.EXPECT().IntN(5).Return(2), // rock vs scissors, win
		s.roller.EXPECT().IntN(5).Return(1), // paper vs paper, tie
	)
	gomock.InOrder(
		s.console.EXPECT().Prompt("Play again? (y/n): ").Return("Y", nil),
		s.console.EXPECT().Prompt("Play again? (y/n): ").Return("yes", nil),
	)

	out, err := s.svc.Play(s.ctx, &rpsls.PlayInput{})

	s.Require().NoError(err)
	s.Assert().Equal(2, out.RoundsPlayed)
	s.Assert().Equal(1, out.Wins)
	s.Assert().Equal(0, out.Losses)
	s.Assert().Equal(1, out.Ties)
}

func (s *OrchestratorTestSuite) TestPlay_ReplayReadFailure() {
	s.allowNarration()

	s.expectChoicePrompt(1)
	s.roller.EXPECT().IntN(5).Return(0)
	s.console.EXPECT().
		Prompt("Play again? (y/n): ").
		Return("", errors.Internal("input stream closed"))

	_, err := s.svc.Play(s.ctx, &rpsls.PlayInput{})

	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "failed to read replay choice")
}

func (s *OrchestratorTestSuite) TestNilInputsRejected() {
	_, err := s.svc.PlayRound(s.ctx, nil)
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.svc.Play(s.ctx, nil)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestNewOrchestrator_Validation() {
	_, err := rpsls.NewOrchestrator(&rpsls.Config{})

	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "Console: is required")
	s.Assert().Contains(err.Error(), "Roller: is required")
}
