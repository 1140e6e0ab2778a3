package encounters

import (
	"context"
	"slices"

	"github.com/KirkDiggler/rpg-cli/internal/errors"
	"github.com/KirkDiggler/rpg-cli/internal/pkg/console"
	"github.com/KirkDiggler/rpg-cli/internal/pkg/rng"
)

// spellbook lists the duel spells in menu order.
var spellbook = []string{
	"Fireball",
	"Ice Shard",
	"Wind Gust",
	"Lightning Bolt",
	"Earthquake",
}

// spellBeats maps each spell to the spells it defeats. The table is
// asymmetric on purpose; it is not a relabeled RPSLS table.
var spellBeats = map[string][]string{
	"Fireball":       {"Ice Shard", "Lightning Bolt"},
	"Ice Shard":      {"Wind Gust", "Earthquake"},
	"Wind Gust":      {"Lightning Bolt", "Fireball"},
	"Lightning Bolt": {"Earthquake", "Ice Shard"},
	"Earthquake":     {"Fireball", "Wind Gust"},
}

// SpellDuel is the Red Wizard's spell battle. Winning banishes the wizard
// and exploration continues; losing banishes the player and ends the game.
type SpellDuel struct {
	console console.Console
	roller  rng.Roller
}

// SpellDuelConfig holds the dependencies for a spell duel encounter
type SpellDuelConfig struct {
	Console console.Console
	Roller  rng.Roller
}

// Validate ensures all required dependencies are provided
func (c *SpellDuelConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Console == nil {
		vb.RequiredField("Console")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}

	return vb.Build()
}

// NewSpellDuel creates a spell duel encounter
func NewSpellDuel(cfg *SpellDuelConfig) (*SpellDuel, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &SpellDuel{
		console: cfg.Console,
		roller:  cfg.Roller,
	}, nil
}

// Run plays the duel. A clash (both cast the same spell) restarts the
// choice loop with no outcome; the duel only ends on a decisive cast.
func (e *SpellDuel) Run(ctx context.Context) (Outcome, error) {
	e.console.Print("A Red Wizard blocks your path and challenges you to a spell battle!\n")
	e.console.Print("Cast the correct spell to vanquish the wizard; if he wins, you are banished from this castle.\n")

	for {
		if err := ctx.Err(); err != nil {
			return OutcomeUnspecified, errors.Wrap(err, "duel canceled")
		}

		e.console.Print("\nChoose a spell:\n")
		for i, spell := range spellbook {
			e.console.Print("  %d. %s\n", i+1, spell)
		}

		idx, err := e.console.PromptInt("Enter number (1-5): ", 1, len(spellbook), "Invalid selection. Try again.")
		if err != nil {
			return OutcomeUnspecified, errors.Wrap(err, "failed to read spell choice")
		}

		player := spellbook[idx-1]
		wizard := spellbook[e.roller.IntN(len(spellbook))]
		e.console.Print("You cast %s. The Red Wizard casts %s.\n", player, wizard)

		if player == wizard {
			e.console.Print("The spells clash evenly — the duel continues.\n")
			continue
		}

		if slices.Contains(spellBeats[player], wizard) {
			e.console.Print("Your spell overwhelms the Red Wizard — he is vanquished from this castle!\n")
			return OutcomeContinue, nil
		}

		e.console.Print("The Red Wizard's spell overpowers you — you are banished from this castle.\n")
		return OutcomeEnd, nil
	}
}
