package game

type buzzardRule int

const (
	buzzardLone buzzardRule = iota + 1
	buzzardSightLines
	buzzardPairs
	buzzardSpecies
)

var buzzardPoints = sizeTable{0, 2, 5, 8, 11, 14, 18, 22, 26}

const buzzardPairPoints = 3

// sightReach selects which lines a buzzard can see along.
type sightReach int

const (
	rowsAndColumns sightReach = iota + 1
	withDiagonals             // rows, columns and the hex diagonals
)

type buzzardScorer struct {
	rule buzzardRule
	grid GridKind
}

func (s buzzardScorer) Name() string {
	return cardName(CardBuzzard, int(s.rule))
}

func (s buzzardScorer) Score(p *Player) int {
	b := p.Board
	switch s.rule {
	case buzzardLone:
		lone := 0
		for _, c := range b.WildlifeCells(Buzzard) {
			if neighbourAnimals(s.grid, b, c)[Buzzard] == 0 {
				lone++
			}
		}
		return buzzardPoints.points(lone)
	case buzzardSightLines:
		return buzzardPoints.points(len(s.sightLines(b, rowsAndColumns)))
	case buzzardPairs:
		return buzzardPairPoints * len(s.sightLines(b, withDiagonals))
	case buzzardSpecies:
		var seen [AnimalCount]bool
		distinct := 0
		for _, between := range s.sightLines(b, withDiagonals) {
			for _, c := range between {
				a, ok := b.AnimalAt(c)
				if !ok || seen[a] {
					continue
				}
				seen[a] = true
				distinct++
			}
		}
		return distinct
	}
	return 0
}

// sightLines returns, for every pair of buzzards sharing a clear line within
// reach, the cells between them. A line is clear when no buzzard sits between
// the pair; empty cells do not block. Adjacent buzzards do not form a line.
func (s buzzardScorer) sightLines(b *Board, reach sightReach) [][]Cell {
	buzzards := b.WildlifeCells(Buzzard)
	var lines [][]Cell
	for i, from := range buzzards {
		for _, to := range buzzards[i+1:] {
			between, ok := s.lineBetween(from, to, reach)
			if !ok || len(between) == 0 {
				continue
			}
			blocked := false
			for _, c := range between {
				if a, ok := b.AnimalAt(c); ok && a == Buzzard {
					blocked = true
					break
				}
			}
			if !blocked {
				lines = append(lines, between)
			}
		}
	}
	return lines
}

func (s buzzardScorer) lineBetween(from, to Cell, reach sightReach) ([]Cell, bool) {
	if between, ok := Aligned(from, to); ok {
		return between, true
	}
	if reach == withDiagonals && s.grid == GridHex {
		return s.grid.Between(from, to)
	}
	return nil, false
}
