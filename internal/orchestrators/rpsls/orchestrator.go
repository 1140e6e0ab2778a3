// Package rpsls implements the Rock Paper Scissors Lizard Spock match
// orchestrator.
package rpsls

//go:generate mockgen -destination=mock/mock_service.go -package=rpslsmock github.com/KirkDiggler/rpg-cli/internal/orchestrators/rpsls Service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-cli/internal/errors"
	"github.com/KirkDiggler/rpg-cli/internal/pkg/console"
	"github.com/KirkDiggler/rpg-cli/internal/pkg/rng"
)

// Service defines the interface for RPSLS match operations
type Service interface {
	// PlayRound plays a single round against the computer
	PlayRound(ctx context.Context, input *PlayRoundInput) (*PlayRoundOutput, error)

	// Play runs rounds until the player declines another
	Play(ctx context.Context, input *PlayInput) (*PlayOutput, error)
}

// Config holds the dependencies for the RPSLS orchestrator
type Config struct {
	Console console.Console
	Roller  rng.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Console == nil {
		vb.RequiredField("Console")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}

	return vb.Build()
}

type orchestrator struct {
	console console.Console
	roller  rng.Roller
}

// NewOrchestrator creates a new RPSLS orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		console: cfg.Console,
		roller:  cfg.Roller,
	}, nil
}

// PlayRound prompts for the user's choice, draws the computer's, and
// reports the result
func (o *orchestrator) PlayRound(ctx context.Context, input *PlayRoundInput) (*PlayRoundOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.console.Print("Choose one:\n")
	for i, choice := range Choices {
		o.console.Print("%d. %s\n", i+1, choice.Title())
	}

	idx, err := o.console.PromptInt("Enter number (1-5): ", 1, len(Choices), "Invalid input. Please try again.")
	if err != nil {
		return nil, errors.Wrap(err, "failed to read choice")
	}

	user := Choices[idx-1]
	computer := Choices[o.roller.IntN(len(Choices))]

	o.console.Print("\nYou chose: %s\n", user.Title())
	o.console.Print("Computer chose: %s\n", computer.Title())

	result, reason, err := DetermineWinner(user, computer)
	if err != nil {
		return nil, err
	}

	o.console.Print("%s\n", reason)
	switch result {
	case ResultWin:
		o.console.Print("You win!\n\n")
	case ResultLose:
		o.console.Print("You lose!\n\n")
	default:
		o.console.Print("It's a tie!\n\n")
	}

	slog.Debug("round played",
		"user", string(user),
		"computer", string(computer),
		"result", result.String(),
	)

	return &PlayRoundOutput{
		User:     user,
		Computer: computer,
		Result:   result,
		Reason:   reason,
	}, nil
}

// Play loops rounds until the player declines. Only an answer of exactly
// y (after trimming and lowercasing) continues, stricter than the castle
// game's prefix match.
func (o *orchestrator) Play(ctx context.Context, input *PlayInput) (*PlayOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.console.Print("Welcome to Rock Paper Scissors Lizard Spock!\n")

	out := &PlayOutput{}
	for {
		round, err := o.PlayRound(ctx, &PlayRoundInput{})
		if err != nil {
			return nil, err
		}

		out.RoundsPlayed++
		switch round.Result {
		case ResultWin:
			out.Wins++
		case ResultLose:
			out.Losses++
		case ResultTie:
			out.Ties++
		}

		again, err := o.console.Prompt("Play again? (y/n): ")
		if err != nil {
			return nil, errors.Wrap(err, "failed to read replay choice")
		}
		if strings.ToLower(again) != "y" {
			o.console.Print("Thanks for playing!\n")
			return out, nil
		}
	}
}
