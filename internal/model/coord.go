package model

// BoardSize is the dimension of the square grid every room plays on.
const BoardSize = 10

// Coord identifies a cell on the grid
type Coord struct {
	X int `json:"x"` // 0-indexed column
	Y int `json:"y"` // 0-indexed row
}

// InBounds returns true if the coordinate lies on the board
func (c Coord) InBounds() bool {
	return c.X >= 0 && c.X < BoardSize && c.Y >= 0 && c.Y < BoardSize
}

// Segment is an axis-aligned run of cells from Start to End inclusive.
// Ships always occupy a single row or a single column.
type Segment struct {
	Start Coord `json:"start"`
	End   Coord `json:"end"`
}

// IsAxisAligned returns true if the segment varies along at most one axis
func (s Segment) IsAxisAligned() bool {
	return s.Start.X == s.End.X || s.Start.Y == s.End.Y
}

// InBounds returns true if both endpoints lie on the board
func (s Segment) InBounds() bool {
	return s.Start.InBounds() && s.End.InBounds()
}

// Length returns the number of cells the segment covers (Chebyshev span + 1
// along the varying axis). Only meaningful for axis-aligned segments.
func (s Segment) Length() int {
	dx := abs(s.End.X - s.Start.X)
	dy := abs(s.End.Y - s.Start.Y)
	if dx > dy {
		return dx + 1
	}
	return dy + 1
}

// Contains returns true if the coordinate lies on the segment.
// Because segments are axis-aligned this is a rectangle containment test
// that degenerates to 1-D containment on the varying axis.
func (s Segment) Contains(c Coord) bool {
	return c.X >= min(s.Start.X, s.End.X) && c.X <= max(s.Start.X, s.End.X) &&
		c.Y >= min(s.Start.Y, s.End.Y) && c.Y <= max(s.Start.Y, s.End.Y)
}

// Cells enumerates every cell the segment covers, start to end
func (s Segment) Cells() []Coord {
	length := s.Length()
	cells := make([]Coord, 0, length)
	stepX := sign(s.End.X - s.Start.X)
	stepY := sign(s.End.Y - s.Start.Y)
	for i := 0; i < length; i++ {
		cells = append(cells, Coord{X: s.Start.X + i*stepX, Y: s.Start.Y + i*stepY})
	}
	return cells
}

// Overlaps returns true if the two segments share at least one cell
func (s Segment) Overlaps(other Segment) bool {
	for _, c := range s.Cells() {
		if other.Contains(c) {
			return true
		}
	}
	return false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}
