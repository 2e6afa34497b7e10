package model

// PlayerID uniquely identifies a player (an actor's seat in one room)
type PlayerID string

// Seat numbers within a room. Seat 1 is the room creator and always
// takes the opening turn.
const (
	Seat1 = 1
	Seat2 = 2
)

// MaxPlayersPerRoom bounds seating; battleship is strictly two-handed.
const MaxPlayersPerRoom = 2

// Player represents one actor's seat in one room.
//
// Invariants: at most two players per room, seat numbers unique within a
// room, at most one player per (room, actor) pair.
type Player struct {
	ID      PlayerID
	RoomID  RoomID
	ActorID ActorID
	Seat    int

	// Ready is set once the seat is taken
	Ready bool
	// FleetPlaced is set once the player's full fleet has been accepted
	FleetPlaced bool
}
