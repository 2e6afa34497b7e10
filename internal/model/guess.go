package model

import "time"

// GuessID uniquely identifies a guess
type GuessID string

// GuessResult classifies the outcome of an attack
type GuessResult string

const (
	ResultMiss GuessResult = "miss"
	ResultHit  GuessResult = "hit"
	ResultSunk GuessResult = "sunk"
)

// Guess is one attack event. Guesses are append-only; a given
// (room, attacker, target) triple occurs at most once.
type Guess struct {
	ID         GuessID
	RoomID     RoomID
	AttackerID PlayerID
	DefenderID PlayerID
	Target     Coord
	Result     GuessResult

	// HitShipID is set when a ship occupies the target cell
	HitShipID *ShipID

	CreatedAt time.Time
}
