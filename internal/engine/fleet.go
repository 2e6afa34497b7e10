package engine

import (
	"github.com/ahoy-games/broadside/internal/model"
)

// FleetDecision is the write set produced by a successful fleet placement:
// the full set of ship rows, the updated player row, and - when this was
// the second fleet in - the transition to the active phase with seat 1
// taking the opening turn.
type FleetDecision struct {
	Player       model.Player
	Ships        []model.Ship
	Phase        model.RoomPhase
	TurnPlayerID *model.PlayerID
}

// DecideFleet validates a complete fleet submission for one player. The
// submission is atomic: the first structural violation rejects the whole
// fleet and nothing is written. shipIDs supplies one pre-generated ID per
// spec, in order.
func DecideFleet(snap *Snapshot, playerID model.PlayerID, specs []model.ShipSpec, shipIDs []model.ShipID) (*FleetDecision, error) {
	player := snap.PlayerByID(playerID)
	if player == nil {
		return nil, model.ErrPlayerNotFound
	}
	if snap.Room.Phase != model.PhasePlacing {
		return nil, model.ErrInvalidPhase
	}
	if player.FleetPlaced {
		return nil, model.ErrAlreadyPlaced
	}
	if err := ValidateFleet(specs); err != nil {
		return nil, err
	}
	if len(shipIDs) != len(specs) {
		return nil, model.ErrInvalidFleet
	}

	ships := make([]model.Ship, len(specs))
	for i, spec := range specs {
		ships[i] = model.Ship{
			ID:       shipIDs[i],
			PlayerID: playerID,
			Kind:     spec.Kind,
			Segment:  spec.Segment,
		}
	}

	updated := *player
	updated.FleetPlaced = true

	decision := &FleetDecision{
		Player: updated,
		Ships:  ships,
		Phase:  snap.Room.Phase,
	}

	// Second fleet in: the match starts and seat 1 opens
	if opponent := snap.Opponent(playerID); opponent != nil && opponent.FleetPlaced {
		decision.Phase = model.PhaseActive
		opener := snap.PlayerBySeat(model.Seat1)
		if opener != nil {
			id := opener.ID
			decision.TurnPlayerID = &id
		}
	}

	return decision, nil
}

// ValidateFleet checks the structural legality of a full fleet submission:
// exactly one ship per catalog kind, every segment axis-aligned and in
// bounds, every length matching the catalog, and no two ships sharing a
// cell. Partial fleets are rejected because partial validation cannot
// guarantee non-overlap with an unknown remainder.
func ValidateFleet(specs []model.ShipSpec) error {
	if len(specs) != model.FleetSize {
		return model.ErrInvalidFleet
	}

	seenKinds := make(map[model.ShipKind]bool, len(specs))
	occupied := make(map[model.Coord]bool)

	for _, spec := range specs {
		wantLen, ok := model.FleetCatalog[spec.Kind]
		if !ok || seenKinds[spec.Kind] {
			return model.ErrInvalidFleet
		}
		seenKinds[spec.Kind] = true

		seg := spec.Segment
		if !seg.IsAxisAligned() || !seg.InBounds() || seg.Length() != wantLen {
			return model.ErrInvalidFleet
		}

		for _, cell := range seg.Cells() {
			if occupied[cell] {
				return model.ErrInvalidFleet
			}
			occupied[cell] = true
		}
	}

	return nil
}
