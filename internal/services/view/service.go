package view

import (
	"context"

	"github.com/ahoy-games/broadside/internal/model"
	"github.com/ahoy-games/broadside/internal/services/rooms"
)

// Service builds per-actor projections of a room. The write side never
// filters; visibility is applied here: an actor always sees their own fleet
// in full, but an opponent's ship positions are revealed only once sunk.
// Everything else about the opponent's fleet is conveyed through the
// accumulated guess history.
type Service struct {
	rooms *rooms.Controller
}

// New creates a new view Service
func New(rooms *rooms.Controller) *Service {
	return &Service{rooms: rooms}
}

// RoomView is what one actor is allowed to see of a room
type RoomView struct {
	Room     RoomSummary
	Me       *SeatView
	Opponent *OpponentView

	// MyGuesses are shots I fired at the opponent; TheirGuesses are
	// shots fired at me.
	MyGuesses    []GuessView
	TheirGuesses []GuessView
}

// RoomSummary is the shared, unfiltered portion of a room
type RoomSummary struct {
	ID            model.RoomID
	InviteCode    model.InviteCode
	Phase         model.RoomPhase
	TurnPlayerID  *model.PlayerID
	WinnerActorID *model.ActorID
}

// SeatView is the viewer's own seat, fleet included
type SeatView struct {
	PlayerID    model.PlayerID
	Seat        int
	Ready       bool
	FleetPlaced bool
	Ships       []ShipView
}

// OpponentView is the opposing seat with unsunk placement withheld
type OpponentView struct {
	PlayerID    model.PlayerID
	Seat        int
	Ready       bool
	FleetPlaced bool
	SunkShips   []ShipView
}

// ShipView is a ship as exposed to the viewer
type ShipView struct {
	ID      model.ShipID
	Kind    model.ShipKind
	Segment model.Segment
	Sunk    bool
}

// GuessView is one attack event as exposed to the viewer
type GuessView struct {
	Target    model.Coord
	Result    model.GuessResult
	HitShipID *model.ShipID
}

// RoomView assembles the projection of a room for the given actor
func (s *Service) RoomView(ctx context.Context, actorID model.ActorID, roomID model.RoomID) (*RoomView, error) {
	snap, err := s.rooms.Snapshot(ctx, roomID)
	if err != nil {
		return nil, err
	}

	out := &RoomView{
		Room: RoomSummary{
			ID:            snap.Room.ID,
			InviteCode:    snap.Room.InviteCode,
			Phase:         snap.Room.Phase,
			TurnPlayerID:  snap.Room.TurnPlayerID,
			WinnerActorID: snap.Room.WinnerActorID,
		},
	}

	me := snap.PlayerByActor(actorID)
	if me != nil {
		seat := &SeatView{
			PlayerID:    me.ID,
			Seat:        me.Seat,
			Ready:       me.Ready,
			FleetPlaced: me.FleetPlaced,
		}
		for _, ship := range snap.FleetOf(me.ID) {
			seat.Ships = append(seat.Ships, shipView(ship))
		}
		out.Me = seat
	}

	var opponent *model.Player
	if me != nil {
		opponent = snap.Opponent(me.ID)
	}
	if opponent != nil {
		opp := &OpponentView{
			PlayerID:    opponent.ID,
			Seat:        opponent.Seat,
			Ready:       opponent.Ready,
			FleetPlaced: opponent.FleetPlaced,
		}
		// Only sunk ships reveal their placement
		for _, ship := range snap.FleetOf(opponent.ID) {
			if ship.Sunk {
				opp.SunkShips = append(opp.SunkShips, shipView(ship))
			}
		}
		out.Opponent = opp

		for _, guess := range snap.Guesses {
			gv := GuessView{
				Target:    guess.Target,
				Result:    guess.Result,
				HitShipID: guess.HitShipID,
			}
			switch guess.AttackerID {
			case me.ID:
				out.MyGuesses = append(out.MyGuesses, gv)
			case opponent.ID:
				out.TheirGuesses = append(out.TheirGuesses, gv)
			}
		}
	}

	return out, nil
}

func shipView(ship model.Ship) ShipView {
	return ShipView{
		ID:      ship.ID,
		Kind:    ship.Kind,
		Segment: ship.Segment,
		Sunk:    ship.Sunk,
	}
}
