package request

// CreateGuestRequest is the request body for creating a guest actor
type CreateGuestRequest struct {
	DisplayName string `json:"display_name"`
}

// RegisterRequest is the request body for registering an actor
type RegisterRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Coord is a board coordinate in request bodies
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ShipPlacement is one ship in a fleet submission
type ShipPlacement struct {
	Kind  string `json:"kind"`
	Start Coord  `json:"start"`
	End   Coord  `json:"end"`
}

// PlaceFleetRequest is the request body for submitting a fleet
type PlaceFleetRequest struct {
	Ships []ShipPlacement `json:"ships"`
}

// AttackRequest is the request body for firing at a cell
type AttackRequest struct {
	X int `json:"x"`
	Y int `json:"y"`
}
