package encounters

import (
	"context"

	"github.com/KirkDiggler/rpg-cli/internal/errors"
	"github.com/KirkDiggler/rpg-cli/internal/pkg/console"
)

// Default is flavor-text room content: it describes the room through the
// shared sense/clue generator and lets exploration continue.
type Default struct {
	console   console.Console
	generator *SenseClueGenerator
}

// DefaultConfig holds the dependencies for a default encounter
type DefaultConfig struct {
	Console console.Console
	// Generator is shared across all default encounters in a castle
	Generator *SenseClueGenerator
}

// Validate ensures all required dependencies are provided
func (c *DefaultConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Console == nil {
		vb.RequiredField("Console")
	}
	if c.Generator == nil {
		vb.RequiredField("Generator")
	}

	return vb.Build()
}

// NewDefault creates a default encounter
func NewDefault(cfg *DefaultConfig) (*Default, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Default{
		console:   cfg.Console,
		generator: cfg.Generator,
	}, nil
}

// Run prints a combined sense and clue sentence and continues exploration
func (e *Default) Run(_ context.Context) (Outcome, error) {
	e.console.Print("%s\n", e.generator.SenseClue())
	return OutcomeContinue, nil
}
