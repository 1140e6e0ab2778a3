// Package rng provides the uniform random source used by selectors and
// computer opponents. The production implementation rolls rpg-toolkit dice;
// tests substitute a mock or scripted roller for deterministic outcomes.
package rng

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

//go:generate mockgen -destination=mock/mock.go -package=rngmock github.com/KirkDiggler/rpg-cli/internal/pkg/rng Roller

// Roller draws uniform random integers
type Roller interface {
	// IntN returns a uniform random int in [0, n). n must be >= 1.
	IntN(n int) int
}

// Dice implements Roller by rolling a single n-sided die via rpg-toolkit
type Dice struct{}

// NewDice creates a dice-backed roller
func NewDice() *Dice {
	return &Dice{}
}

// IntN rolls 1dN and shifts the result into [0, n)
func (d *Dice) IntN(n int) int {
	if n < 1 {
		panic(fmt.Sprintf("rng: IntN called with n=%d", n))
	}

	roll, err := dice.NewRoll(1, n)
	if err != nil {
		// NewRoll only rejects non-positive count/size, which the guard
		// above excludes
		panic(fmt.Sprintf("rng: dice roll failed: %v", err))
	}

	return roll.GetValue() - 1
}
