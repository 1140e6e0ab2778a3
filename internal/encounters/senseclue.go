package encounters

import (
	"github.com/KirkDiggler/rpg-cli/internal/errors"
	"github.com/KirkDiggler/rpg-cli/internal/pkg/rng"
	"github.com/KirkDiggler/rpg-cli/internal/pkg/selector"
)

// SenseClueGenerator combines a sensory impression with a clue sentence.
// One instance is shared by every default encounter in a castle so that
// sentence variety is tracked across the whole exploration, not per room.
type SenseClueGenerator struct {
	clues  *selector.Selector[string]
	senses *selector.Selector[string]
}

// SenseClueConfig holds the dependencies for the generator
type SenseClueConfig struct {
	Roller rng.Roller
}

// Validate ensures all required dependencies are provided
func (c *SenseClueConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}

	return vb.Build()
}

// NewSenseClueGenerator creates a generator over the standard sentence pools
func NewSenseClueGenerator(cfg *SenseClueConfig) (*SenseClueGenerator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &SenseClueGenerator{
		clues:  selector.New(cfg.Roller, defaultClues...),
		senses: selector.New(cfg.Roller, defaultSenses...),
	}, nil
}

// newSenseClueGeneratorFromPools builds a generator over arbitrary pools,
// used by tests to exercise the empty-pool fallbacks
func newSenseClueGeneratorFromPools(roller rng.Roller, clues, senses []string) *SenseClueGenerator {
	return &SenseClueGenerator{
		clues:  selector.New(roller, clues...),
		senses: selector.New(roller, senses...),
	}
}

// SenseClue draws one sensory sentence and one clue and combines them.
// If either pool is empty the other sentence stands alone; two empty pools
// yield an empty string.
func (g *SenseClueGenerator) SenseClue() string {
	clue, hasClue := g.clues.Pull()
	sense, hasSense := g.senses.Pull()

	switch {
	case hasClue && hasSense:
		return sense + " " + clue
	case hasClue:
		return clue
	default:
		return sense
	}
}
