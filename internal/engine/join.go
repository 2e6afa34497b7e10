package engine

import (
	"github.com/ahoy-games/broadside/internal/model"
)

// JoinDecision is the write set produced by a successful join: a new seat-2
// player and the room's transition into fleet placement.
type JoinDecision struct {
	Player model.Player
	Phase  model.RoomPhase
}

// DecideJoin evaluates an actor taking seat 2 in a waiting room. The caller
// supplies the ID the new player row will receive; IDs never influence the
// decision itself.
func DecideJoin(snap *Snapshot, actorID model.ActorID, playerID model.PlayerID) (*JoinDecision, error) {
	if snap.PlayerByActor(actorID) != nil {
		return nil, model.ErrAlreadyJoined
	}
	if snap.Room.Phase != model.PhaseWaiting {
		return nil, model.ErrInvalidPhase
	}
	if len(snap.Players) >= model.MaxPlayersPerRoom {
		return nil, model.ErrRoomFull
	}

	return &JoinDecision{
		Player: model.Player{
			ID:      playerID,
			RoomID:  snap.Room.ID,
			ActorID: actorID,
			Seat:    model.Seat2,
			Ready:   true,
		},
		Phase: model.PhasePlacing,
	}, nil
}
