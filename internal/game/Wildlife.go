package game

import "fmt"

// WildlifeScorer scores one wildlife card against a player's board.
type WildlifeScorer interface {
	Name() string
	Score(p *Player) int
}

type CardKind int

const (
	CardFox CardKind = iota + 1
	CardSalmon
	CardBear
	CardElk
	CardBuzzard
	CardFamily
	CardIntermediate
)

// Fixed patterns of the aggregate cards.
const (
	FamilyPattern       = 5
	IntermediatePattern = 6
)

func (k CardKind) String() string {
	switch k {
	case CardFox:
		return "Fox"
	case CardSalmon:
		return "Salmon"
	case CardBear:
		return "Bear"
	case CardElk:
		return "Elk"
	case CardBuzzard:
		return "Buzzard"
	case CardFamily:
		return "Family"
	case CardIntermediate:
		return "Intermediate"
	default:
		return fmt.Sprintf("CardKind(%d)", int(k))
	}
}

// NewScorer builds the scorer for a card. Species cards take a pattern in
// 1..4; Family needs FamilyPattern and Intermediate needs IntermediatePattern.
func NewScorer(kind CardKind, pattern int, grid GridKind) (WildlifeScorer, error) {
	if grid != GridSquare && grid != GridHex {
		return nil, fmt.Errorf("%w: unknown grid kind %d", ErrInvalidConfig, grid)
	}

	switch kind {
	case CardFamily:
		if pattern != FamilyPattern {
			return nil, fmt.Errorf("%w: family scoring uses pattern %d, got %d", ErrInvalidConfig, FamilyPattern, pattern)
		}
		return familyScorer{grid: grid}, nil
	case CardIntermediate:
		if pattern != IntermediatePattern {
			return nil, fmt.Errorf("%w: intermediate scoring uses pattern %d, got %d", ErrInvalidConfig, IntermediatePattern, pattern)
		}
		return intermediateScorer{grid: grid}, nil
	}

	if pattern < 1 || pattern > 4 {
		return nil, fmt.Errorf("%w: %v pattern must be 1..4, got %d", ErrInvalidConfig, kind, pattern)
	}
	switch kind {
	case CardBear:
		return bearScorer{rule: bearRule(pattern), grid: grid}, nil
	case CardSalmon:
		return salmonScorer{rule: salmonRule(pattern), grid: grid}, nil
	case CardFox:
		return foxScorer{rule: foxRule(pattern), grid: grid}, nil
	case CardElk:
		return elkScorer{rule: elkRule(pattern), grid: grid}, nil
	case CardBuzzard:
		return buzzardScorer{rule: buzzardRule(pattern), grid: grid}, nil
	default:
		return nil, fmt.Errorf("%w: unknown card %v", ErrInvalidConfig, kind)
	}
}

func cardName(kind CardKind, pattern int) string {
	return fmt.Sprintf("%v %d", kind, pattern)
}
