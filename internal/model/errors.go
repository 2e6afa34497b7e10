package model

import "errors"

// Common errors used across the application. All are terminal and
// user-visible: the caller must correct the request rather than retry it.
var (
	// Identity errors
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrUnauthorized     = errors.New("player does not belong to actor")
	ErrActorNotFound    = errors.New("actor not found")

	// Room errors
	ErrRoomNotFound  = errors.New("room not found")
	ErrInvalidPhase  = errors.New("operation not valid in current room phase")
	ErrRoomFull      = errors.New("room is full")
	ErrAlreadyJoined = errors.New("actor already has a seat in this room")

	// Player errors
	ErrPlayerNotFound = errors.New("player not found")

	// Fleet placement errors
	ErrAlreadyPlaced = errors.New("fleet has already been placed")
	ErrInvalidFleet  = errors.New("fleet violates bounds, length, or overlap rules")

	// Attack errors
	ErrNotYourTurn       = errors.New("not this player's turn")
	ErrInvalidCoordinate = errors.New("coordinate is outside the board")
	ErrDuplicateGuess    = errors.New("cell already guessed by this attacker")
	ErrShipNotFound      = errors.New("ship not found")
)
