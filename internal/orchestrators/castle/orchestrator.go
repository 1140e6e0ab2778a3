// Package castle implements the castle exploration orchestrator: door
// prompts, room selection, encounters, and the outer game loop.
package castle

//go:generate mockgen -destination=mock/mock_service.go -package=castlemock github.com/KirkDiggler/rpg-cli/internal/orchestrators/castle Service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-cli/internal/encounters"
	"github.com/KirkDiggler/rpg-cli/internal/entities"
	"github.com/KirkDiggler/rpg-cli/internal/errors"
	"github.com/KirkDiggler/rpg-cli/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-cli/internal/pkg/console"
	"github.com/KirkDiggler/rpg-cli/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-cli/internal/pkg/rng"
	"github.com/KirkDiggler/rpg-cli/internal/pkg/selector"
	"github.com/KirkDiggler/rpg-cli/internal/repositories/journal"
)

// Door counts are cosmetic: the corridor offers 2 to 4 doors and the
// choice never affects which room comes next.
const (
	minDoors = 2
	maxDoors = 4
)

// Service defines the interface for castle exploration operations
type Service interface {
	// VisitNextRoom plays one corridor-and-room step and reports the outcome
	VisitNextRoom(ctx context.Context, input *VisitNextRoomInput) (*VisitNextRoomOutput, error)

	// ResetCastle makes every room available again
	ResetCastle(ctx context.Context, input *ResetCastleInput) (*ResetCastleOutput, error)

	// PlayGame runs explorations until the player declines another castle
	PlayGame(ctx context.Context, input *PlayGameInput) (*PlayGameOutput, error)
}

// Config holds the dependencies for the castle orchestrator
type Config struct {
	Console     console.Console
	Roller      rng.Roller
	Journal     journal.Repository
	IDGenerator idgen.Generator
	Clock       clock.Clock

	// Rooms overrides the castle layout. nil builds the standard
	// eight-room castle; an explicit empty slice builds an empty one.
	Rooms []*entities.Room
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
	if c.Journal == nil {
		vb.RequiredField("Journal")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type orchestrator struct {
	console console.Console
	roller  rng.Roller
	journal journal.Repository
	idGen   idgen.Generator
	clock   clock.Clock

	roomSelector *selector.Selector[*entities.Room]
	sessionID    string
}

// NewOrchestrator creates a new castle orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	rooms := cfg.Rooms
	if rooms == nil {
		var err error
		rooms, err = standardRooms(cfg.Console, cfg.Roller)
		if err != nil {
			return nil, errors.Wrap(err, "failed to build castle")
		}
	}

	return &orchestrator{
		console:      cfg.Console,
		roller:       cfg.Roller,
		journal:      cfg.Journal,
		idGen:        cfg.IDGenerator,
		clock:        cfg.Clock,
		roomSelector: selector.New(cfg.Roller, rooms...),
		sessionID:    cfg.IDGenerator.Generate(),
	}, nil
}

// VisitNextRoom runs the door prompt, draws a room, and plays its encounter
func (o *orchestrator) VisitNextRoom(ctx context.Context, input *VisitNextRoomInput) (*VisitNextRoomOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	doors := minDoors + o.roller.IntN(maxDoors-minDoors+1)
	o.console.Print("\nYou approach a corridor with %d closed doors.\n", doors)

	door, err := o.console.PromptInt(
		fmt.Sprintf("Select a door (1-%d): ", doors),
		1, doors,
		fmt.Sprintf("Invalid selection. Enter a number between 1 and %d.", doors),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read door choice")
	}
	o.console.Print("You open door %d...\n\n", door)

	room, ok := o.roomSelector.Pull()
	if !ok {
		o.console.Print("No rooms available.\n")
		return &VisitNextRoomOutput{Door: door, Outcome: encounters.OutcomeEnd}, nil
	}

	o.console.Print("You find yourself in the %s.\n", room.Name)
	outcome, err := room.Visit(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "encounter in %s failed", room.Name)
	}

	if _, err := o.journal.Append(ctx, &journal.AppendInput{
		VisitID:   o.idGen.Generate(),
		SessionID: o.sessionID,
		Subject:   room,
		Outcome:   outcome,
		VisitedAt: o.clock.Now(),
	}); err != nil {
		return nil, errors.Wrap(err, "failed to record visit")
	}

	slog.Debug("room visited",
		"session_id", o.sessionID,
		"room_id", room.ID,
		"outcome", outcome.String(),
	)

	return &VisitNextRoomOutput{
		RoomName: room.Name,
		Door:     door,
		Outcome:  outcome,
	}, nil
}

// ResetCastle makes every room available again
func (o *orchestrator) ResetCastle(ctx context.Context, input *ResetCastleInput) (*ResetCastleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.roomSelector.Reset()
	o.console.Print("Castle rooms have been reset.\n")

	return &ResetCastleOutput{}, nil
}

// PlayGame loops room visits until an encounter ends the game, then offers
// a fresh castle; any answer starting with y (case-insensitive) accepts
func (o *orchestrator) PlayGame(ctx context.Context, input *PlayGameInput) (*PlayGameOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.console.Print("Welcome to the castle exploration game!\n")
	o.console.Print("Objective: Navigate the castle rooms and search for the treasure.\n\n")

	out := &PlayGameOutput{}
	for {
		visit, err := o.VisitNextRoom(ctx, &VisitNextRoomInput{})
		if err != nil {
			return nil, err
		}
		if visit.RoomName != "" {
			out.RoomsVisited++
		}
		if visit.Outcome != encounters.OutcomeEnd {
			continue
		}

		out.CastlesExplored++
		o.summarizeSession(ctx)

		if _, err := o.ResetCastle(ctx, &ResetCastleInput{}); err != nil {
			return nil, err
		}
		o.console.Print("Game Over\n")

		again, err := o.console.Prompt("Would you like to explore a different castle? (y/n): ")
		if err != nil {
			return nil, errors.Wrap(err, "failed to read replay choice")
		}
		if !strings.HasPrefix(strings.ToLower(again), "y") {
			o.console.Print("Thanks for playing!\n")
			return out, nil
		}

		o.sessionID = o.idGen.Generate()
		o.console.Print("Starting a new exploration...\n\n")
	}
}

// summarizeSession reports how many rooms the ended exploration covered
func (o *orchestrator) summarizeSession(ctx context.Context) {
	list, err := o.journal.ListSession(ctx, &journal.ListSessionInput{
		SessionID: o.sessionID,
	})
	if err != nil {
		// An empty castle records no visits; nothing to report.
		if !errors.IsNotFound(err) {
			slog.Warn("failed to summarize session",
				"session_id", o.sessionID,
				"error", err,
			)
		}
		return
	}

	o.console.Print("You explored %d rooms in this castle.\n", len(list.Records))
	slog.Info("exploration finished",
		"session_id", o.sessionID,
		"rooms_visited", len(list.Records),
	)
}
