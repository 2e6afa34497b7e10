package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordInBounds(t *testing.T) {
	assert.True(t, Coord{X: 0, Y: 0}.InBounds())
	assert.True(t, Coord{X: BoardSize - 1, Y: BoardSize - 1}.InBounds())
	assert.False(t, Coord{X: -1, Y: 0}.InBounds())
	assert.False(t, Coord{X: 0, Y: -1}.InBounds())
	assert.False(t, Coord{X: BoardSize, Y: 0}.InBounds())
	assert.False(t, Coord{X: 0, Y: BoardSize}.InBounds())
}

func TestSegmentIsAxisAligned(t *testing.T) {
	horizontal := Segment{Start: Coord{X: 0, Y: 3}, End: Coord{X: 4, Y: 3}}
	vertical := Segment{Start: Coord{X: 2, Y: 1}, End: Coord{X: 2, Y: 4}}
	diagonal := Segment{Start: Coord{X: 0, Y: 0}, End: Coord{X: 3, Y: 3}}

	assert.True(t, horizontal.IsAxisAligned())
	assert.True(t, vertical.IsAxisAligned())
	assert.False(t, diagonal.IsAxisAligned())
}

func TestSegmentLength(t *testing.T) {
	assert.Equal(t, 5, Segment{Start: Coord{X: 0, Y: 0}, End: Coord{X: 4, Y: 0}}.Length())
	assert.Equal(t, 3, Segment{Start: Coord{X: 7, Y: 2}, End: Coord{X: 7, Y: 4}}.Length())
	assert.Equal(t, 1, Segment{Start: Coord{X: 5, Y: 5}, End: Coord{X: 5, Y: 5}}.Length())

	// Reversed endpoints measure the same
	assert.Equal(t, 4, Segment{Start: Coord{X: 3, Y: 6}, End: Coord{X: 0, Y: 6}}.Length())
}

func TestSegmentContains(t *testing.T) {
	seg := Segment{Start: Coord{X: 2, Y: 5}, End: Coord{X: 5, Y: 5}}

	assert.True(t, seg.Contains(Coord{X: 2, Y: 5}))
	assert.True(t, seg.Contains(Coord{X: 4, Y: 5}))
	assert.True(t, seg.Contains(Coord{X: 5, Y: 5}))
	assert.False(t, seg.Contains(Coord{X: 6, Y: 5}))
	assert.False(t, seg.Contains(Coord{X: 3, Y: 4}))
}

func TestSegmentCells(t *testing.T) {
	seg := Segment{Start: Coord{X: 1, Y: 1}, End: Coord{X: 1, Y: 3}}
	assert.Equal(t, []Coord{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 1, Y: 3}}, seg.Cells())

	// Reversed segments enumerate end to start
	rev := Segment{Start: Coord{X: 3, Y: 0}, End: Coord{X: 1, Y: 0}}
	assert.Equal(t, []Coord{{X: 3, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 0}}, rev.Cells())
}

func TestSegmentOverlaps(t *testing.T) {
	a := Segment{Start: Coord{X: 0, Y: 0}, End: Coord{X: 4, Y: 0}}
	crossing := Segment{Start: Coord{X: 2, Y: 0}, End: Coord{X: 2, Y: 3}}
	clear := Segment{Start: Coord{X: 0, Y: 1}, End: Coord{X: 4, Y: 1}}

	assert.True(t, a.Overlaps(crossing))
	assert.True(t, crossing.Overlaps(a))
	assert.False(t, a.Overlaps(clear))
}

func TestFleetCatalogTotals(t *testing.T) {
	assert.Len(t, FleetCatalog, FleetSize)

	total := 0
	for _, length := range FleetCatalog {
		total += length
	}
	assert.Equal(t, 17, total)
}
