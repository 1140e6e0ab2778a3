// Package entities provides core data structures for rpg-cli.
package entities

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-cli/internal/encounters"
)

// Room pairs a name with the encounter waiting inside it
type Room struct {
	ID        string
	Name      string
	Encounter encounters.Encounter
}

// NewRoom creates a room
func NewRoom(id, name string, encounter encounters.Encounter) *Room {
	return &Room{
		ID:        id,
		Name:      name,
		Encounter: encounter,
	}
}

// Visit runs the room's encounter and returns its outcome
func (r *Room) Visit(ctx context.Context) (encounters.Outcome, error) {
	return r.Encounter.Run(ctx)
}

// GetID returns the room's ID
func (r *Room) GetID() string {
	return r.ID
}

// GetType returns the entity type for rpg-toolkit
func (r *Room) GetType() string {
	return "room"
}

// Compile-time check that Room implements core.Entity
var _ core.Entity = (*Room)(nil)
