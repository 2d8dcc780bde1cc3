package game

import "fmt"

type GridKind int

const (
	GridSquare GridKind = iota + 1
	GridHex
)

func (g GridKind) String() string {
	switch g {
	case GridSquare:
		return "square"
	case GridHex:
		return "hex"
	default:
		return fmt.Sprintf("GridKind(%d)", int(g))
	}
}

// ParseGridKind maps "square" / "hex" to a GridKind.
func ParseGridKind(s string) (GridKind, error) {
	switch s {
	case "square":
		return GridSquare, nil
	case "hex", "hexagonal":
		return GridHex, nil
	}
	return 0, fmt.Errorf("%w: unknown grid kind %q", ErrInvalidConfig, s)
}

type Cell struct {
	X, Y int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

func (c Cell) InBounds() bool {
	return c.X >= 0 && c.Y >= 0 && c.X < BoardSize && c.Y < BoardSize
}

func (c Cell) add(d Cell) Cell {
	return Cell{X: c.X + d.X, Y: c.Y + d.Y}
}

var squareDirections = []Cell{
	{X: 1, Y: 0},
	{X: -1, Y: 0},
	{X: 0, Y: 1},
	{X: 0, Y: -1},
}

// Hex edges are indexed 0..5 clockwise from the top; the offsets depend on row parity.
var (
	hexOddRowDirections = []Cell{
		{X: 0, Y: -1},
		{X: 1, Y: 0},
		{X: 0, Y: 1},
		{X: -1, Y: 1},
		{X: -1, Y: 0},
		{X: -1, Y: -1},
	}
	hexEvenRowDirections = []Cell{
		{X: 1, Y: -1},
		{X: 1, Y: 0},
		{X: 1, Y: 1},
		{X: 0, Y: 1},
		{X: -1, Y: 0},
		{X: 0, Y: -1},
	}
)

func (g GridKind) directions(c Cell) []Cell {
	if g == GridHex {
		if c.Y%2 != 0 {
			return hexOddRowDirections
		}
		return hexEvenRowDirections
	}
	return squareDirections
}

// Neighbours returns the adjacent cells of c. For hex grids the slice is in edge order.
// Cells off the board are included; they are simply never occupied.
func (g GridKind) Neighbours(c Cell) []Cell {
	dirs := g.directions(c)
	out := make([]Cell, len(dirs))
	for i, d := range dirs {
		out[i] = c.add(d)
	}
	return out
}

func (g GridKind) Adjacent(a, b Cell) bool {
	_, ok := g.EdgeTowards(a, b)
	return ok
}

// EdgeTowards returns the index of the edge of a that touches b.
func (g GridKind) EdgeTowards(a, b Cell) (int, bool) {
	for i, d := range g.directions(a) {
		if a.add(d) == b {
			return i, true
		}
	}
	return 0, false
}

// edgeRuns[r][side] lists the three hex edges carrying biome A (side 0) or B (side 1).
var edgeRuns = [7][2][3]int{
	1: {{2, 3, 4}, {5, 0, 1}},
	2: {{3, 4, 5}, {0, 1, 2}},
	3: {{4, 5, 0}, {1, 2, 3}},
	4: {{5, 0, 1}, {2, 3, 4}},
	5: {{0, 1, 2}, {3, 4, 5}},
	6: {{1, 2, 3}, {4, 5, 0}},
}

// EdgeRun returns the edges of one side of a two-biome hex tile at the given orientation.
func EdgeRun(rotation, side int) [3]int {
	if rotation < 1 || rotation > 6 || side < 0 || side > 1 {
		panic(fmt.Sprintf("edge run out of range: rotation=%d side=%d", rotation, side))
	}
	return edgeRuns[rotation][side]
}

func edgeInRun(rotation, side, edge int) bool {
	for _, e := range EdgeRun(rotation, side) {
		if e == edge {
			return true
		}
	}
	return false
}

// axial converts an offset hex cell to axial (q, r).
func axial(c Cell) (int, int) {
	return c.X - (c.Y+1)>>1, c.Y
}

func fromAxial(q, r int) Cell {
	return Cell{X: q + (r+1)>>1, Y: r}
}

// Between returns the cells strictly between a and b when both lie on a common
// straight line of the grid: rows and columns on square grids, the three hex
// axes on hex grids. Adjacent cells share a line with nothing between them.
func (g GridKind) Between(a, b Cell) ([]Cell, bool) {
	if g != GridHex {
		return Aligned(a, b)
	}
	if a == b {
		return nil, false
	}
	aq, ar := axial(a)
	bq, br := axial(b)
	dq, dr := bq-aq, br-ar
	if dq != 0 && dr != 0 && dq != -dr {
		return nil, false
	}
	n := max(abs(dq), abs(dr))
	sq, sr := sign(dq), sign(dr)
	out := make([]Cell, 0, n-1)
	for k := 1; k < n; k++ {
		out = append(out, fromAxial(aq+k*sq, ar+k*sr))
	}
	return out, true
}

// Aligned returns the cells strictly between a and b when they share a row
// (same y) or a column (same x) of board coordinates, whatever the grid kind.
func Aligned(a, b Cell) ([]Cell, bool) {
	if a == b {
		return nil, false
	}
	dx, dy := b.X-a.X, b.Y-a.Y
	if dx != 0 && dy != 0 {
		return nil, false
	}
	n := max(abs(dx), abs(dy))
	step := Cell{X: sign(dx), Y: sign(dy)}
	out := make([]Cell, 0, n-1)
	cur := a
	for k := 1; k < n; k++ {
		cur = cur.add(step)
		out = append(out, cur)
	}
	return out, true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// cellSet is a visited bitset over the playable board.
type cellSet struct {
	bits [(BoardSize*BoardSize + 63) / 64]uint64
}

func (s *cellSet) Has(c Cell) bool {
	if !c.InBounds() {
		return false
	}
	i := c.Y*BoardSize + c.X
	return s.bits[i/64]&(1<<(i%64)) != 0
}

func (s *cellSet) Add(c Cell) {
	if !c.InBounds() {
		return
	}
	i := c.Y*BoardSize + c.X
	s.bits[i/64] |= 1 << (i % 64)
}
