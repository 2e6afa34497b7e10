package response

import (
	"github.com/ahoy-games/broadside/internal/model"
	"github.com/ahoy-games/broadside/internal/services/auth"
	"github.com/ahoy-games/broadside/internal/services/view"
)

// Actor represents an actor in API responses
type Actor struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	IsGuest     bool   `json:"is_guest"`
}

// ActorFromModel converts a model.Actor to a response Actor
func ActorFromModel(a *model.Actor) Actor {
	return Actor{
		ID:          string(a.ID),
		DisplayName: a.DisplayName,
		IsGuest:     a.IsGuest,
	}
}

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	Actor        Actor  `json:"actor"`
	SessionToken string `json:"session_token"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		Actor:        ActorFromModel(&s.Actor),
		SessionToken: s.Token,
	}
}

// Coord is a board coordinate in API responses
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// CoordFromModel converts model.Coord
func CoordFromModel(c model.Coord) Coord {
	return Coord{X: c.X, Y: c.Y}
}

// Segment is a ship's placement span
type Segment struct {
	Start Coord `json:"start"`
	End   Coord `json:"end"`
}

// SegmentFromModel converts model.Segment
func SegmentFromModel(s model.Segment) Segment {
	return Segment{Start: CoordFromModel(s.Start), End: CoordFromModel(s.End)}
}

// Room represents a room in API responses
type Room struct {
	ID            string  `json:"id"`
	InviteCode    string  `json:"invite_code"`
	Phase         string  `json:"phase"`
	TurnPlayerID  *string `json:"turn_player_id"`
	WinnerActorID *string `json:"winner_actor_id,omitempty"`
}

// RoomFromModel converts model.Room
func RoomFromModel(r *model.Room) Room {
	out := Room{
		ID:         string(r.ID),
		InviteCode: string(r.InviteCode),
		Phase:      string(r.Phase),
	}
	if r.TurnPlayerID != nil {
		id := string(*r.TurnPlayerID)
		out.TurnPlayerID = &id
	}
	if r.WinnerActorID != nil {
		id := string(*r.WinnerActorID)
		out.WinnerActorID = &id
	}
	return out
}

// Player represents a seat in API responses
type Player struct {
	ID          string `json:"id"`
	RoomID      string `json:"room_id"`
	ActorID     string `json:"actor_id"`
	Seat        int    `json:"seat"`
	Ready       bool   `json:"ready"`
	FleetPlaced bool   `json:"fleet_placed"`
}

// PlayerFromModel converts model.Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:          string(p.ID),
		RoomID:      string(p.RoomID),
		ActorID:     string(p.ActorID),
		Seat:        p.Seat,
		Ready:       p.Ready,
		FleetPlaced: p.FleetPlaced,
	}
}

// CreateRoomResponse is the response for room creation
type CreateRoomResponse struct {
	Room   Room   `json:"room"`
	Player Player `json:"player"`
}

// JoinRoomResponse is the response for joining a room
type JoinRoomResponse struct {
	Player Player `json:"player"`
}

// RoomList is the response for listing open rooms
type RoomList struct {
	Rooms []Room `json:"rooms"`
}

// RoomListFromModel converts a slice of rooms
func RoomListFromModel(rooms []*model.Room) RoomList {
	out := RoomList{Rooms: make([]Room, len(rooms))}
	for i, r := range rooms {
		out.Rooms[i] = RoomFromModel(r)
	}
	return out
}

// Guess represents one resolved attack
type Guess struct {
	ID        string  `json:"id,omitempty"`
	Target    Coord   `json:"target"`
	Result    string  `json:"result"`
	HitShipID *string `json:"hit_ship_id,omitempty"`
}

// GuessFromModel converts model.Guess
func GuessFromModel(g *model.Guess) Guess {
	out := Guess{
		ID:     string(g.ID),
		Target: CoordFromModel(g.Target),
		Result: string(g.Result),
	}
	if g.HitShipID != nil {
		id := string(*g.HitShipID)
		out.HitShipID = &id
	}
	return out
}

// Ship represents a ship as exposed to the viewer
type Ship struct {
	ID      string  `json:"id"`
	Kind    string  `json:"kind"`
	Segment Segment `json:"segment"`
	Sunk    bool    `json:"sunk"`
}

func shipFromView(s view.ShipView) Ship {
	return Ship{
		ID:      string(s.ID),
		Kind:    string(s.Kind),
		Segment: SegmentFromModel(s.Segment),
		Sunk:    s.Sunk,
	}
}

// SeatView is the viewer's own seat
type SeatView struct {
	PlayerID    string `json:"player_id"`
	Seat        int    `json:"seat"`
	Ready       bool   `json:"ready"`
	FleetPlaced bool   `json:"fleet_placed"`
	Ships       []Ship `json:"ships"`
}

// OpponentView is the opposing seat with unsunk placement withheld
type OpponentView struct {
	PlayerID    string `json:"player_id"`
	Seat        int    `json:"seat"`
	Ready       bool   `json:"ready"`
	FleetPlaced bool   `json:"fleet_placed"`
	SunkShips   []Ship `json:"sunk_ships"`
}

// RoomView is the per-actor projection of a room
type RoomView struct {
	Room         Room          `json:"room"`
	Me           *SeatView     `json:"me,omitempty"`
	Opponent     *OpponentView `json:"opponent,omitempty"`
	MyGuesses    []Guess       `json:"my_guesses"`
	TheirGuesses []Guess       `json:"their_guesses"`
}

// RoomViewFromService converts a view.RoomView
func RoomViewFromService(v *view.RoomView) RoomView {
	out := RoomView{
		Room: Room{
			ID:         string(v.Room.ID),
			InviteCode: string(v.Room.InviteCode),
			Phase:      string(v.Room.Phase),
		},
		MyGuesses:    guessesFromView(v.MyGuesses),
		TheirGuesses: guessesFromView(v.TheirGuesses),
	}
	if v.Room.TurnPlayerID != nil {
		id := string(*v.Room.TurnPlayerID)
		out.Room.TurnPlayerID = &id
	}
	if v.Room.WinnerActorID != nil {
		id := string(*v.Room.WinnerActorID)
		out.Room.WinnerActorID = &id
	}
	if v.Me != nil {
		me := SeatView{
			PlayerID:    string(v.Me.PlayerID),
			Seat:        v.Me.Seat,
			Ready:       v.Me.Ready,
			FleetPlaced: v.Me.FleetPlaced,
			Ships:       make([]Ship, 0, len(v.Me.Ships)),
		}
		for _, s := range v.Me.Ships {
			me.Ships = append(me.Ships, shipFromView(s))
		}
		out.Me = &me
	}
	if v.Opponent != nil {
		opp := OpponentView{
			PlayerID:    string(v.Opponent.PlayerID),
			Seat:        v.Opponent.Seat,
			Ready:       v.Opponent.Ready,
			FleetPlaced: v.Opponent.FleetPlaced,
			SunkShips:   make([]Ship, 0, len(v.Opponent.SunkShips)),
		}
		for _, s := range v.Opponent.SunkShips {
			opp.SunkShips = append(opp.SunkShips, shipFromView(s))
		}
		out.Opponent = &opp
	}
	return out
}

func guessesFromView(guesses []view.GuessView) []Guess {
	out := make([]Guess, 0, len(guesses))
	for _, g := range guesses {
		gv := Guess{
			Target: CoordFromModel(g.Target),
			Result: string(g.Result),
		}
		if g.HitShipID != nil {
			id := string(*g.HitShipID)
			gv.HitShipID = &id
		}
		out = append(out, gv)
	}
	return out
}
