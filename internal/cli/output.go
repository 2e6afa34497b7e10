package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

const boardSize = 10

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Actor:
		o.printActor(v)
	case AuthResult:
		o.printAuthResult(v)
	case Room:
		o.printRoom(v)
	case RoomList:
		o.printRoomList(v)
	case CreateRoomResult:
		o.printCreateRoomResult(v)
	case JoinRoomResult:
		o.printJoinRoomResult(v)
	case Guess:
		o.printGuess(v)
	case RoomView:
		o.printRoomView(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Actor response type (matches API)
type Actor struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	IsGuest     bool   `json:"is_guest"`
}

// AuthResult combines actor and token
type AuthResult struct {
	Actor        Actor  `json:"actor"`
	SessionToken string `json:"session_token"`
}

// Coord response type
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Segment response type
type Segment struct {
	Start Coord `json:"start"`
	End   Coord `json:"end"`
}

// Room response type
type Room struct {
	ID            string  `json:"id"`
	InviteCode    string  `json:"invite_code"`
	Phase         string  `json:"phase"`
	TurnPlayerID  *string `json:"turn_player_id"`
	WinnerActorID *string `json:"winner_actor_id,omitempty"`
}

// RoomList response type
type RoomList struct {
	Rooms []Room `json:"rooms"`
}

// Player response type
type Player struct {
	ID          string `json:"id"`
	RoomID      string `json:"room_id"`
	ActorID     string `json:"actor_id"`
	Seat        int    `json:"seat"`
	Ready       bool   `json:"ready"`
	FleetPlaced bool   `json:"fleet_placed"`
}

// CreateRoomResult response type
type CreateRoomResult struct {
	Room   Room   `json:"room"`
	Player Player `json:"player"`
}

// JoinRoomResult response type
type JoinRoomResult struct {
	Player Player `json:"player"`
}

// Guess response type
type Guess struct {
	ID        string  `json:"id,omitempty"`
	Target    Coord   `json:"target"`
	Result    string  `json:"result"`
	HitShipID *string `json:"hit_ship_id,omitempty"`
}

// Ship response type
type Ship struct {
	ID      string  `json:"id"`
	Kind    string  `json:"kind"`
	Segment Segment `json:"segment"`
	Sunk    bool    `json:"sunk"`
}

// SeatView response type
type SeatView struct {
	PlayerID    string `json:"player_id"`
	Seat        int    `json:"seat"`
	Ready       bool   `json:"ready"`
	FleetPlaced bool   `json:"fleet_placed"`
	Ships       []Ship `json:"ships"`
}

// OpponentView response type
type OpponentView struct {
	PlayerID    string `json:"player_id"`
	Seat        int    `json:"seat"`
	Ready       bool   `json:"ready"`
	FleetPlaced bool   `json:"fleet_placed"`
	SunkShips   []Ship `json:"sunk_ships"`
}

// RoomView response type
type RoomView struct {
	Room         Room          `json:"room"`
	Me           *SeatView     `json:"me,omitempty"`
	Opponent     *OpponentView `json:"opponent,omitempty"`
	MyGuesses    []Guess       `json:"my_guesses"`
	TheirGuesses []Guess       `json:"their_guesses"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printActor(a Actor) {
	guestStr := "no"
	if a.IsGuest {
		guestStr = "yes"
	}
	fmt.Printf("Actor: %s (%s)\n", a.DisplayName, a.ID)
	fmt.Printf("Guest: %s\n", guestStr)
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printActor(a.Actor)
	fmt.Printf("Token: %s\n", a.SessionToken)
}

func (o *Output) printRoom(r Room) {
	fmt.Printf("Room: %s\n", r.ID)
	fmt.Printf("Invite Code: %s\n", r.InviteCode)
	fmt.Printf("Phase: %s\n", r.Phase)
	if r.TurnPlayerID != nil {
		fmt.Printf("Turn: %s\n", *r.TurnPlayerID)
	}
	if r.WinnerActorID != nil {
		fmt.Printf("Winner: %s\n", *r.WinnerActorID)
	}
}

func (o *Output) printRoomList(l RoomList) {
	if len(l.Rooms) == 0 {
		fmt.Println("No open rooms")
		return
	}
	fmt.Printf("Open rooms (%d):\n", len(l.Rooms))
	for _, r := range l.Rooms {
		fmt.Printf("  - %s (invite: %s)\n", r.ID, r.InviteCode)
	}
}

func (o *Output) printCreateRoomResult(r CreateRoomResult) {
	o.printRoom(r.Room)
	fmt.Printf("Your player ID: %s (seat %d)\n", r.Player.ID, r.Player.Seat)
}

func (o *Output) printJoinRoomResult(r JoinRoomResult) {
	fmt.Printf("Joined room %s\n", r.Player.RoomID)
	fmt.Printf("Your player ID: %s (seat %d)\n", r.Player.ID, r.Player.Seat)
}

func (o *Output) printGuess(g Guess) {
	fmt.Printf("Fired at (%d,%d): %s\n", g.Target.X, g.Target.Y, g.Result)
	if g.HitShipID != nil {
		fmt.Printf("Hit ship: %s\n", *g.HitShipID)
	}
}

func (o *Output) printRoomView(v RoomView) {
	o.printRoom(v.Room)

	if v.Me != nil {
		fmt.Printf("\nYour fleet (seat %d):\n", v.Me.Seat)
		o.printOwnBoard(v.Me.Ships, v.TheirGuesses)
		for _, s := range v.Me.Ships {
			status := ""
			if s.Sunk {
				status = " [sunk]"
			}
			fmt.Printf("  - %s (%d,%d)-(%d,%d)%s\n",
				s.Kind, s.Segment.Start.X, s.Segment.Start.Y, s.Segment.End.X, s.Segment.End.Y, status)
		}
	}

	if v.Opponent != nil {
		fmt.Printf("\nTracking board (opponent seat %d):\n", v.Opponent.Seat)
		o.printTrackingBoard(v.MyGuesses)
		if len(v.Opponent.SunkShips) > 0 {
			fmt.Println("Sunk enemy ships:")
			for _, s := range v.Opponent.SunkShips {
				fmt.Printf("  - %s (%d,%d)-(%d,%d)\n",
					s.Kind, s.Segment.Start.X, s.Segment.Start.Y, s.Segment.End.X, s.Segment.End.Y)
			}
		}
	}
}

// printOwnBoard renders the viewer's own grid: ship cells as '#',
// incoming hits as 'x' and incoming misses as 'o'
func (o *Output) printOwnBoard(ships []Ship, incoming []Guess) {
	var grid [boardSize][boardSize]rune
	for _, s := range ships {
		for _, c := range segmentCells(s.Segment) {
			grid[c.Y][c.X] = '#'
		}
	}
	for _, g := range incoming {
		switch g.Result {
		case "miss":
			grid[g.Target.Y][g.Target.X] = 'o'
		default:
			grid[g.Target.Y][g.Target.X] = 'x'
		}
	}
	printGrid(&grid)
}

// printTrackingBoard renders shots fired at the opponent: 'o' for
// misses, 'x' for hits, 'X' when the shot sank a ship
func (o *Output) printTrackingBoard(fired []Guess) {
	var grid [boardSize][boardSize]rune
	for _, g := range fired {
		switch g.Result {
		case "miss":
			grid[g.Target.Y][g.Target.X] = 'o'
		case "sunk":
			grid[g.Target.Y][g.Target.X] = 'X'
		default:
			grid[g.Target.Y][g.Target.X] = 'x'
		}
	}
	printGrid(&grid)
}

func printGrid(grid *[boardSize][boardSize]rune) {
	// Column headers
	fmt.Print("    ")
	for x := 0; x < boardSize; x++ {
		fmt.Printf(" %d ", x)
	}
	fmt.Println()

	fmt.Print("   +")
	for x := 0; x < boardSize; x++ {
		fmt.Print("---")
	}
	fmt.Println("+")

	for y := 0; y < boardSize; y++ {
		fmt.Printf(" %d |", y)
		for x := 0; x < boardSize; x++ {
			cell := grid[y][x]
			if cell == 0 {
				fmt.Print(" . ")
			} else {
				fmt.Printf(" %c ", cell)
			}
		}
		fmt.Println("|")
	}

	fmt.Print("   +")
	for x := 0; x < boardSize; x++ {
		fmt.Print("---")
	}
	fmt.Println("+")
}

// segmentCells enumerates the cells a segment covers
func segmentCells(s Segment) []Coord {
	dx := sign(s.End.X - s.Start.X)
	dy := sign(s.End.Y - s.Start.Y)

	cells := []Coord{s.Start}
	cur := s.Start
	for cur != s.End {
		cur.X += dx
		cur.Y += dy
		cells = append(cells, cur)
	}
	return cells
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
