package encounters

import (
	"context"

	"github.com/KirkDiggler/rpg-cli/internal/errors"
	"github.com/KirkDiggler/rpg-cli/internal/pkg/console"
)

// Treasure is the win condition: finding it ends the game in victory.
type Treasure struct {
	console console.Console
}

// TreasureConfig holds the dependencies for a treasure encounter
type TreasureConfig struct {
	Console console.Console
}

// Validate ensures all required dependencies are provided
func (c *TreasureConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Console == nil {
		vb.RequiredField("Console")
	}

	return vb.Build()
}

// NewTreasure creates a treasure encounter
func NewTreasure(cfg *TreasureConfig) (*Treasure, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Treasure{console: cfg.Console}, nil
}

// Run awards the treasure and ends the game
func (e *Treasure) Run(_ context.Context) (Outcome, error) {
	e.console.Print("As you enter, a chest gleams in the torchlight — you've found the treasure!\n")
	e.console.Print("Congratulations, you have won the game.\n")
	return OutcomeEnd, nil
}
