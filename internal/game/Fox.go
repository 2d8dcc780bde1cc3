package game

type foxRule int

const (
	foxDistinct foxRule = iota + 1
	foxPairs
	foxMajority
	foxLonePairs
)

var (
	foxPairPoints     = sizeTable{0, 3, 5, 7}
	foxLonePairPoints = sizeTable{0, 5, 7, 9, 11}
)

const foxMajorityCap = 6

type foxScorer struct {
	rule foxRule
	grid GridKind
}

func (s foxScorer) Name() string {
	return cardName(CardFox, int(s.rule))
}

func (s foxScorer) Score(p *Player) int {
	foxes := p.Board.WildlifeCells(Fox)
	lone := s.rule == foxLonePairs && len(foxes) == 1

	total := 0
	for _, c := range foxes {
		counts := neighbourAnimals(s.grid, p.Board, c)
		switch s.rule {
		case foxDistinct:
			distinct := 1
			for _, a := range AllAnimals {
				if a != Fox && counts[a] > 0 {
					distinct++
				}
			}
			total += distinct
		case foxPairs, foxLonePairs:
			pairs := 0
			for _, a := range AllAnimals {
				if a != Fox {
					pairs += counts[a] / 2
				}
			}
			if lone {
				total += foxLonePairPoints.points(pairs)
			} else {
				total += foxPairPoints.points(pairs)
			}
		case foxMajority:
			best := 0
			for _, a := range AllAnimals {
				if a != Fox {
					best = max(best, counts[a])
				}
			}
			total += min(best, foxMajorityCap)
		}
	}
	return total
}
