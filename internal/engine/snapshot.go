package engine

import (
	"github.com/ahoy-games/broadside/internal/model"
)

// Snapshot is an immutable view of one room's consistency domain: the room
// row plus its players, ships, and guess history. Decision functions read a
// snapshot and nothing else, so the same decision can be evaluated
// speculatively on a client projection and authoritatively inside a
// transaction with identical results.
type Snapshot struct {
	Room    model.Room
	Players []model.Player
	Ships   []model.Ship
	Guesses []model.Guess
}

// Clone returns a deep copy of the snapshot
func (s *Snapshot) Clone() *Snapshot {
	out := &Snapshot{
		Room:    s.Room,
		Players: make([]model.Player, len(s.Players)),
		Ships:   make([]model.Ship, len(s.Ships)),
		Guesses: make([]model.Guess, len(s.Guesses)),
	}
	copy(out.Players, s.Players)
	copy(out.Ships, s.Ships)
	copy(out.Guesses, s.Guesses)
	return out
}

// PlayerByID returns the player with the given ID, or nil
func (s *Snapshot) PlayerByID(id model.PlayerID) *model.Player {
	for i := range s.Players {
		if s.Players[i].ID == id {
			return &s.Players[i]
		}
	}
	return nil
}

// PlayerByActor returns the player seated by the given actor, or nil
func (s *Snapshot) PlayerByActor(actorID model.ActorID) *model.Player {
	for i := range s.Players {
		if s.Players[i].ActorID == actorID {
			return &s.Players[i]
		}
	}
	return nil
}

// PlayerBySeat returns the player in the given seat, or nil
func (s *Snapshot) PlayerBySeat(seat int) *model.Player {
	for i := range s.Players {
		if s.Players[i].Seat == seat {
			return &s.Players[i]
		}
	}
	return nil
}

// Opponent returns the other seated player, or nil if the room is not full
func (s *Snapshot) Opponent(id model.PlayerID) *model.Player {
	for i := range s.Players {
		if s.Players[i].ID != id {
			return &s.Players[i]
		}
	}
	return nil
}

// FleetOf returns the ships owned by the given player
func (s *Snapshot) FleetOf(id model.PlayerID) []model.Ship {
	var fleet []model.Ship
	for _, ship := range s.Ships {
		if ship.PlayerID == id {
			fleet = append(fleet, ship)
		}
	}
	return fleet
}

// ShipByID returns the ship with the given ID, or nil
func (s *Snapshot) ShipByID(id model.ShipID) *model.Ship {
	for i := range s.Ships {
		if s.Ships[i].ID == id {
			return &s.Ships[i]
		}
	}
	return nil
}

// GuessAt returns the attacker's prior guess at the target cell, or nil
func (s *Snapshot) GuessAt(attackerID model.PlayerID, target model.Coord) *model.Guess {
	for i := range s.Guesses {
		g := &s.Guesses[i]
		if g.AttackerID == attackerID && g.Target == target {
			return g
		}
	}
	return nil
}

// HitCount returns how many recorded guesses have struck the given ship
func (s *Snapshot) HitCount(shipID model.ShipID) int {
	n := 0
	for i := range s.Guesses {
		if s.Guesses[i].HitShipID != nil && *s.Guesses[i].HitShipID == shipID {
			n++
		}
	}
	return n
}
