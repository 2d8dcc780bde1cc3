package game

type elkRule int

const (
	elkDiagonal elkRule = iota + 1
	elkShapes
	elkGroups
	elkCrowded
)

// Groups larger than the shape and group tables score nothing.
var (
	elkShapePoints   = sizeTable{0, 2, 5, 9, 13}
	elkGroupPoints   = sizeTable{0, 2, 4, 7, 10, 14, 18, 23, 28}
	elkCrowdedPoints = sizeTable{0, 2, 5, 8, 12, 16, 21}
)

// Offsets of the diagonal link used by elkDiagonal; the set is closed under negation.
var elkDiagonalLinks = []Cell{
	{X: 1, Y: 1},
	{X: -1, Y: -1},
	{X: -1, Y: 0},
	{X: 1, Y: 0},
}

// Formations tried from each anchor, largest first. Offsets are relative to
// the anchor, which is the formation's first cell in row-major order.
var elkFormations = [][]Cell{
	{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}},
	{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}},
	{{X: 0, Y: 0}, {X: 1, Y: 0}},
	{{X: 0, Y: 0}},
}

type elkScorer struct {
	rule elkRule
	grid GridKind
}

func (s elkScorer) Name() string {
	return cardName(CardElk, int(s.rule))
}

func (s elkScorer) Score(p *Player) int {
	b := p.Board
	total := 0
	switch s.rule {
	case elkDiagonal:
		diagonal := func(c Cell) []Cell {
			out := make([]Cell, len(elkDiagonalLinks))
			for i, d := range elkDiagonalLinks {
				out[i] = c.add(d)
			}
			return out
		}
		for _, g := range groupsOf(b.WildlifeCells(Elk), diagonal) {
			total += elkShapePoints.exact(len(g))
		}
	case elkShapes:
		for _, size := range s.formations(b) {
			total += elkShapePoints.exact(size)
		}
	case elkGroups:
		for _, g := range animalGroups(s.grid, b, Elk) {
			total += elkGroupPoints.exact(len(g))
		}
	case elkCrowded:
		for _, c := range b.WildlifeCells(Elk) {
			total += elkCrowdedPoints.points(neighbourAnimals(s.grid, b, c)[Elk])
		}
	}
	return total
}

// formations greedily covers the elk with the fixed formations, anchoring at
// each unused elk in row-major order. It returns the size of each formation.
func (s elkScorer) formations(b *Board) []int {
	elk := b.WildlifeCells(Elk)
	var free, used cellSet
	for _, c := range elk {
		free.Add(c)
	}

	var sizes []int
	for _, anchor := range elk {
		if used.Has(anchor) {
			continue
		}
		for _, shape := range elkFormations {
			fits := true
			for _, d := range shape {
				c := anchor.add(d)
				if !free.Has(c) || used.Has(c) {
					fits = false
					break
				}
			}
			if !fits {
				continue
			}
			for _, d := range shape {
				used.Add(anchor.add(d))
			}
			sizes = append(sizes, len(shape))
			break
		}
	}
	return sizes
}
