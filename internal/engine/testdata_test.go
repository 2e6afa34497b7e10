package engine

import (
	"fmt"
	"time"

	"github.com/ahoy-games/broadside/internal/model"
)

// standardSpecs is a legal fleet: one ship per catalog kind, laid out on
// consecutive rows from the top-left.
func standardSpecs() []model.ShipSpec {
	return []model.ShipSpec{
		{Kind: model.KindCarrier, Segment: seg(0, 0, 4, 0)},
		{Kind: model.KindBattleship, Segment: seg(0, 1, 3, 1)},
		{Kind: model.KindCruiser, Segment: seg(0, 2, 2, 2)},
		{Kind: model.KindSubmarine, Segment: seg(0, 3, 2, 3)},
		{Kind: model.KindDestroyer, Segment: seg(0, 4, 1, 4)},
	}
}

func seg(x1, y1, x2, y2 int) model.Segment {
	return model.Segment{
		Start: model.Coord{X: x1, Y: y1},
		End:   model.Coord{X: x2, Y: y2},
	}
}

func shipIDs(prefix string, n int) []model.ShipID {
	ids := make([]model.ShipID, n)
	for i := range ids {
		ids[i] = model.ShipID(fmt.Sprintf("%s-%d", prefix, i))
	}
	return ids
}

// waitingSnapshot is a freshly created room with only the opener seated
func waitingSnapshot() *Snapshot {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	return &Snapshot{
		Room: model.Room{
			ID:         "room-1",
			Phase:      model.PhaseWaiting,
			InviteCode: "ABC234",
			CreatedAt:  now,
			UpdatedAt:  now,
		},
		Players: []model.Player{
			{ID: "pl-1", RoomID: "room-1", ActorID: "a-1", Seat: model.Seat1, Ready: true},
		},
	}
}

// placingSnapshot has both seats filled and no fleets yet
func placingSnapshot() *Snapshot {
	snap := waitingSnapshot()
	snap.Room.Phase = model.PhasePlacing
	snap.Players = append(snap.Players, model.Player{
		ID: "pl-2", RoomID: "room-1", ActorID: "a-2", Seat: model.Seat2, Ready: true,
	})
	return snap
}

// activeSnapshot has both fleets placed and seat 1 holding the turn
func activeSnapshot() *Snapshot {
	snap := placingSnapshot()
	snap.Room.Phase = model.PhaseActive
	turn := model.PlayerID("pl-1")
	snap.Room.TurnPlayerID = &turn

	for i := range snap.Players {
		snap.Players[i].FleetPlaced = true
	}
	for i, spec := range standardSpecs() {
		snap.Ships = append(snap.Ships, model.Ship{
			ID:       model.ShipID(fmt.Sprintf("s1-%d", i)),
			PlayerID: "pl-1",
			Kind:     spec.Kind,
			Segment:  spec.Segment,
		})
	}
	for i, spec := range standardSpecs() {
		snap.Ships = append(snap.Ships, model.Ship{
			ID:       model.ShipID(fmt.Sprintf("s2-%d", i)),
			PlayerID: "pl-2",
			Kind:     spec.Kind,
			Segment:  spec.Segment,
		})
	}
	return snap
}
