package game

type salmonRule int

const (
	salmonLong salmonRule = iota + 1
	salmonMedium
	salmonMinThree
	salmonNeighbours
)

var salmonRunPoints = map[salmonRule]sizeTable{
	salmonLong:     {0, 2, 5, 8, 12, 16, 20, 25},
	salmonMedium:   {0, 2, 4, 9, 11, 17},
	salmonMinThree: {0, 0, 0, 10, 12, 15},
}

type salmonScorer struct {
	rule salmonRule
	grid GridKind
}

func (s salmonScorer) Name() string {
	return cardName(CardSalmon, int(s.rule))
}

func (s salmonScorer) Score(p *Player) int {
	total := 0
	for _, run := range s.runs(p.Board) {
		if s.rule == salmonNeighbours {
			total += len(run) + s.adjacentTokens(p.Board, run) + 1
			continue
		}
		total += salmonRunPoints[s.rule].points(len(run))
	}
	return total
}

// runs returns the salmon groups without branches: no member touches more
// than two other salmon.
func (s salmonScorer) runs(b *Board) [][]Cell {
	var out [][]Cell
	for _, g := range animalGroups(s.grid, b, Salmon) {
		branched := false
		for _, c := range g {
			if neighbourAnimals(s.grid, b, c)[Salmon] > 2 {
				branched = true
				break
			}
		}
		if !branched {
			out = append(out, g)
		}
	}
	return out
}

// adjacentTokens counts the distinct non-salmon token cells touching run.
func (s salmonScorer) adjacentTokens(b *Board, run []Cell) int {
	var seen cellSet
	n := 0
	for _, c := range run {
		for _, nb := range s.grid.Neighbours(c) {
			a, ok := b.AnimalAt(nb)
			if !ok || a == Salmon || seen.Has(nb) {
				continue
			}
			seen.Add(nb)
			n++
		}
	}
	return n
}
