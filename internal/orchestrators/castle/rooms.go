package castle

import (
	"github.com/KirkDiggler/rpg-cli/internal/encounters"
	"github.com/KirkDiggler/rpg-cli/internal/entities"
	"github.com/KirkDiggler/rpg-cli/internal/pkg/console"
	"github.com/KirkDiggler/rpg-cli/internal/pkg/rng"
)

// standardRooms builds the eight-room castle: six flavor rooms sharing one
// sense/clue generator, the treasure room, and the Red Wizard's lair.
func standardRooms(cons console.Console, roller rng.Roller) ([]*entities.Room, error) {
	generator, err := encounters.NewSenseClueGenerator(&encounters.SenseClueConfig{
		Roller: roller,
	})
	if err != nil {
		return nil, err
	}

	flavorRooms := []struct {
		id   string
		name string
	}{
		{id: "room_great_hall", name: "Great Hall"},
		{id: "room_armory", name: "Armory"},
		{id: "room_north_tower", name: "North Tower"},
		{id: "room_library", name: "Library"},
		{id: "room_courtyard", name: "Courtyard"},
		{id: "room_throne_room", name: "Throne Room"},
	}

	rooms := make([]*entities.Room, 0, len(flavorRooms)+2)
	for _, r := range flavorRooms {
		enc, err := encounters.NewDefault(&encounters.DefaultConfig{
			Console:   cons,
			Generator: generator,
		})
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, entities.NewRoom(r.id, r.name, enc))
	}

	treasure, err := encounters.NewTreasure(&encounters.TreasureConfig{Console: cons})
	if err != nil {
		return nil, err
	}
	rooms = append(rooms, entities.NewRoom("room_treasure", "Treasure Room", treasure))

	duel, err := encounters.NewSpellDuel(&encounters.SpellDuelConfig{
		Console: cons,
		Roller:  roller,
	})
	if err != nil {
		return nil, err
	}
	rooms = append(rooms, entities.NewRoom("room_red_wizard_lair", "The Red Wizard's Lair", duel))

	return rooms, nil
}
