package model

// ShipID uniquely identifies a placed ship
type ShipID string

// ShipKind names a vessel in the fixed fleet catalog
type ShipKind string

const (
	KindCarrier    ShipKind = "carrier"
	KindBattleship ShipKind = "battleship"
	KindCruiser    ShipKind = "cruiser"
	KindSubmarine  ShipKind = "submarine"
	KindDestroyer  ShipKind = "destroyer"
)

// FleetCatalog maps each ship kind to its required length in cells.
// A complete fleet has exactly one ship of each kind.
var FleetCatalog = map[ShipKind]int{
	KindCarrier:    5,
	KindBattleship: 4,
	KindCruiser:    3,
	KindSubmarine:  3,
	KindDestroyer:  2,
}

// FleetSize is the number of ships in a complete fleet
const FleetSize = 5

// Ship is one placed vessel owned by a player. Only the Sunk flag mutates
// after placement.
type Ship struct {
	ID       ShipID
	PlayerID PlayerID
	Kind     ShipKind
	Segment  Segment
	Sunk     bool
}

// CatalogLength returns the required cell count for the ship's kind,
// or 0 for an unknown kind.
func (s *Ship) CatalogLength() int {
	return FleetCatalog[s.Kind]
}

// ShipSpec is a ship as submitted by a player during fleet placement,
// before the server has assigned it an ID.
type ShipSpec struct {
	Kind    ShipKind `json:"kind"`
	Segment Segment  `json:"segment"`
}
