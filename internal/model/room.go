package model

import "time"

// RoomID uniquely identifies a room (one match)
type RoomID string

// InviteCode is a human-readable code for joining rooms
type InviteCode string

// RoomPhase represents the lifecycle phase of a room.
// Phases only ever move forward: waiting -> placing_ships -> active -> finished.
type RoomPhase string

const (
	PhaseWaiting  RoomPhase = "waiting"       // One seat filled, waiting for an opponent
	PhasePlacing  RoomPhase = "placing_ships" // Both seated, fleets being placed
	PhaseActive   RoomPhase = "active"        // Exchange of attacks under way
	PhaseFinished RoomPhase = "finished"      // One fleet fully sunk
)

// Room represents a single battleship match.
//
// Invariants: TurnPlayerID is non-nil iff Phase is active; WinnerActorID is
// non-nil iff Phase is finished.
type Room struct {
	ID         RoomID
	Phase      RoomPhase
	InviteCode InviteCode

	// TurnPlayerID is the player currently permitted to attack
	TurnPlayerID *PlayerID
	// WinnerActorID is the actor who sank the opposing fleet
	WinnerActorID *ActorID

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PhaseAtLeast reports whether the room has reached the given phase
func (r *Room) PhaseAtLeast(p RoomPhase) bool {
	return phaseOrder(r.Phase) >= phaseOrder(p)
}

func phaseOrder(p RoomPhase) int {
	switch p {
	case PhaseWaiting:
		return 0
	case PhasePlacing:
		return 1
	case PhaseActive:
		return 2
	case PhaseFinished:
		return 3
	default:
		return -1
	}
}
