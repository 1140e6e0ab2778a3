// Package encounters defines the room content of the castle game: each
// encounter plays out against the console and reports whether exploration
// continues or the game is over.
package encounters

import "context"

//go:generate mockgen -destination=mock/mock_encounter.go -package=encountermock github.com/KirkDiggler/rpg-cli/internal/encounters Encounter

// Outcome signals how the game should proceed after an encounter
type Outcome int

// Outcome values
const (
	OutcomeUnspecified Outcome = iota
	OutcomeContinue
	OutcomeEnd
)

// String returns the string representation of the outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeContinue:
		return "CONTINUE"
	case OutcomeEnd:
		return "END"
	default:
		return "UNSPECIFIED"
	}
}

// Encounter is a unit of room content. Run plays the encounter against the
// player, blocking on console input where the variant is interactive.
type Encounter interface {
	Run(ctx context.Context) (Outcome, error)
}
