package engine

import (
	"github.com/ahoy-games/broadside/internal/model"
)

// AttackDecision is the write set produced by a resolved attack: the guess
// row, the ship to mark sunk (if any), and the room's turn/phase outcome.
type AttackDecision struct {
	Guess        model.Guess
	SunkShipID   *model.ShipID
	Phase        model.RoomPhase
	TurnPlayerID *model.PlayerID
	WinnerID     *model.ActorID
}

// DecideAttack resolves one coordinate guess by the player holding the
// turn. Preconditions are checked in order with the first failure winning:
// room phase, turn ownership, grid bounds, then duplicate guess. The guess
// timestamp is stamped by the commit path; nothing time- or random-derived
// participates in the resolution.
func DecideAttack(snap *Snapshot, attackerID model.PlayerID, target model.Coord, guessID model.GuessID) (*AttackDecision, error) {
	attacker := snap.PlayerByID(attackerID)
	if attacker == nil {
		return nil, model.ErrPlayerNotFound
	}
	if snap.Room.Phase != model.PhaseActive {
		return nil, model.ErrInvalidPhase
	}
	if snap.Room.TurnPlayerID == nil || *snap.Room.TurnPlayerID != attackerID {
		return nil, model.ErrNotYourTurn
	}
	if !target.InBounds() {
		return nil, model.ErrInvalidCoordinate
	}
	if snap.GuessAt(attackerID, target) != nil {
		return nil, model.ErrDuplicateGuess
	}

	defender := snap.Opponent(attackerID)
	if defender == nil {
		return nil, model.ErrPlayerNotFound
	}

	decision := &AttackDecision{
		Guess: model.Guess{
			ID:         guessID,
			RoomID:     snap.Room.ID,
			AttackerID: attackerID,
			DefenderID: defender.ID,
			Target:     target,
			Result:     model.ResultMiss,
		},
		Phase: model.PhaseActive,
	}

	hitShip := findShipAt(snap.FleetOf(defender.ID), target)
	if hitShip == nil {
		// Miss: turn flips to the defender
		id := defender.ID
		decision.TurnPlayerID = &id
		return decision, nil
	}

	shipID := hitShip.ID
	decision.Guess.HitShipID = &shipID

	if snap.HitCount(shipID)+1 >= hitShip.CatalogLength() {
		decision.Guess.Result = model.ResultSunk
		decision.SunkShipID = &shipID

		if fleetDestroyed(snap.FleetOf(defender.ID), shipID) {
			// Last ship down: match over, attacker wins, turn cleared
			decision.Phase = model.PhaseFinished
			winner := attacker.ActorID
			decision.WinnerID = &winner
			decision.TurnPlayerID = nil
			return decision, nil
		}
	} else {
		decision.Guess.Result = model.ResultHit
	}

	// Hit or sink with fleet remaining: attacker keeps the turn
	id := attackerID
	decision.TurnPlayerID = &id
	return decision, nil
}

// findShipAt returns the ship occupying the target cell, or nil. Fleets
// occupy disjoint cells, so at most one ship matches.
func findShipAt(fleet []model.Ship, target model.Coord) *model.Ship {
	for i := range fleet {
		if fleet[i].Segment.Contains(target) {
			return &fleet[i]
		}
	}
	return nil
}

// fleetDestroyed reports whether every ship in the fleet is sunk, treating
// justSunk as already down.
func fleetDestroyed(fleet []model.Ship, justSunk model.ShipID) bool {
	for _, ship := range fleet {
		if !ship.Sunk && ship.ID != justSunk {
			return false
		}
	}
	return true
}
