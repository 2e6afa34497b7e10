package memory

import (
	"sort"

	"github.com/ahoy-games/broadside/internal/model"
)

// Map iteration order is random; listings sort so callers see stable
// results across reads.

func sortPlayersBySeat(players []*model.Player) {
	sort.Slice(players, func(i, j int) bool {
		return players[i].Seat < players[j].Seat
	})
}

func sortShipsByID(ships []*model.Ship) {
	sort.Slice(ships, func(i, j int) bool {
		return ships[i].ID < ships[j].ID
	})
}
