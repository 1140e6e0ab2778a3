package castle

import (
	"github.com/KirkDiggler/rpg-cli/internal/encounters"
)

// VisitNextRoomInput defines the request for visiting the next room
type VisitNextRoomInput struct{}

// VisitNextRoomOutput defines the response for visiting the next room
type VisitNextRoomOutput struct {
	// RoomName is empty when the castle had no rooms left to offer
	RoomName string
	Door     int
	Outcome  encounters.Outcome
}

// ResetCastleInput defines the request for resetting the castle
type ResetCastleInput struct{}

// ResetCastleOutput defines the response for resetting the castle
type ResetCastleOutput struct{}

// PlayGameInput defines the request for running the full game loop
type PlayGameInput struct{}

// PlayGameOutput defines the response for running the full game loop
type PlayGameOutput struct {
	CastlesExplored int
	RoomsVisited    int
}
