package game

var (
	familyPoints       = sizeTable{0, 2, 5, 9}
	intermediatePoints = sizeTable{0, 0, 5, 8, 12}
)

// familyScorer scores every same-species group on the board.
type familyScorer struct {
	grid GridKind
}

func (s familyScorer) Name() string {
	return CardFamily.String()
}

func (s familyScorer) Score(p *Player) int {
	return scoreAllGroups(s.grid, p.Board, familyPoints)
}

// intermediateScorer is familyScorer for groups of two or more.
type intermediateScorer struct {
	grid GridKind
}

func (s intermediateScorer) Name() string {
	return CardIntermediate.String()
}

func (s intermediateScorer) Score(p *Player) int {
	return scoreAllGroups(s.grid, p.Board, intermediatePoints)
}

func scoreAllGroups(grid GridKind, b *Board, table sizeTable) int {
	total := 0
	for _, a := range AllAnimals {
		for _, g := range animalGroups(grid, b, a) {
			total += table.points(len(g))
		}
	}
	return total
}
