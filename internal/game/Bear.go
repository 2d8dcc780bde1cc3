package game

type bearRule int

const (
	bearGroupSize bearRule = iota + 1 // every group by size
	bearTriples                       // groups of exactly three
	bearMixed                         // groups of one, two and three with a set bonus
	bearLarge                         // groups of two, three and four
)

var bearGroupPoints = sizeTable{0, 4, 11, 19, 20}

const bearSetBonus = 3

type bearScorer struct {
	rule bearRule
	grid GridKind
}

func (s bearScorer) Name() string {
	return cardName(CardBear, int(s.rule))
}

func (s bearScorer) Score(p *Player) int {
	var bySize [5]int
	total := 0
	for _, g := range animalGroups(s.grid, p.Board, Bear) {
		if s.rule == bearGroupSize {
			total += bearGroupPoints.points(len(g))
		}
		if len(g) < len(bySize) {
			bySize[len(g)]++
		}
	}

	switch s.rule {
	case bearTriples:
		return 10 * bySize[3]
	case bearMixed:
		total = 2*bySize[1] + 5*bySize[2] + 8*bySize[3]
		if bySize[1] > 0 && bySize[2] > 0 && bySize[3] > 0 {
			total += bearSetBonus
		}
	case bearLarge:
		total = 5*bySize[2] + 8*bySize[3] + 13*bySize[4]
	}
	return total
}
