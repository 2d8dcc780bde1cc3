package game

import "fmt"

const (
	BoardSize          = 50
	TokensPerSpecies   = 20
	OfferSize          = 4
	DefaultTurnCount   = 20
	TilesPerPlayer     = 20
	ExtraDeckTiles     = 3
	MinPlayers         = 2
	MaxPlayers         = 4
	CardNatureTokens   = 5
	maxOverpopulations = 32
)

// Seed cells and orientations of the three start tiles every habitat begins with.
var (
	SeedCells     = [3]Cell{{X: 25, Y: 24}, {X: 25, Y: 25}, {X: 26, Y: 25}}
	SeedRotations = [3]int{1, 2, 3}
)

type ScoringMode string

const (
	ModeFamily       ScoringMode = "family"
	ModeIntermediate ScoringMode = "intermediate"
	ModeCards        ScoringMode = "cards"
)

// CardPatterns selects the sub-rule (1..4) of each species card in ModeCards.
type CardPatterns struct {
	Fox     int
	Salmon  int
	Bear    int
	Elk     int
	Buzzard int
}

type GameConfig struct {
	PlayerNames []string
	Mode        ScoringMode
	Grid        GridKind
	Cards       CardPatterns
	Turns       int
	Seed        int64

	// Optional deck file paths. Empty means the embedded decks.
	HabitatDeckPath string
	StartDeckPath   string
}

func (c GameConfig) Validate() error {
	if len(c.PlayerNames) < MinPlayers || len(c.PlayerNames) > MaxPlayers {
		return fmt.Errorf("%w: player count must be between %d and %d, got %d",
			ErrInvalidConfig, MinPlayers, MaxPlayers, len(c.PlayerNames))
	}

	seen := make(map[string]bool, len(c.PlayerNames))
	for _, name := range c.PlayerNames {
		if name == "" {
			return fmt.Errorf("%w: empty player name", ErrInvalidConfig)
		}
		if seen[name] {
			return fmt.Errorf("%w: duplicate player name %q", ErrInvalidConfig, name)
		}
		seen[name] = true
	}

	switch c.Grid {
	case GridSquare, GridHex:
	default:
		return fmt.Errorf("%w: unknown grid kind %d", ErrInvalidConfig, c.Grid)
	}

	if c.Turns < 0 {
		return fmt.Errorf("%w: negative turn count %d", ErrInvalidConfig, c.Turns)
	}

	_, err := c.Scorers()
	return err
}

// Scorers builds the wildlife scorers the configured mode plays with.
func (c GameConfig) Scorers() ([]WildlifeScorer, error) {
	switch c.Mode {
	case ModeFamily:
		s, err := NewScorer(CardFamily, FamilyPattern, c.Grid)
		if err != nil {
			return nil, err
		}
		return []WildlifeScorer{s}, nil
	case ModeIntermediate:
		s, err := NewScorer(CardIntermediate, IntermediatePattern, c.Grid)
		if err != nil {
			return nil, err
		}
		return []WildlifeScorer{s}, nil
	case ModeCards:
		order := []struct {
			kind    CardKind
			pattern int
		}{
			{CardFox, c.Cards.Fox},
			{CardSalmon, c.Cards.Salmon},
			{CardBear, c.Cards.Bear},
			{CardElk, c.Cards.Elk},
			{CardBuzzard, c.Cards.Buzzard},
		}
		scorers := make([]WildlifeScorer, 0, len(order))
		for _, card := range order {
			s, err := NewScorer(card.kind, card.pattern, c.Grid)
			if err != nil {
				return nil, err
			}
			scorers = append(scorers, s)
		}
		return scorers, nil
	default:
		return nil, fmt.Errorf("%w: unknown scoring mode %q", ErrInvalidConfig, c.Mode)
	}
}

// StartingNatureTokens is the nature token count every player begins with.
func (c GameConfig) StartingNatureTokens() int {
	if c.Mode == ModeCards {
		return CardNatureTokens
	}
	return 0
}

func (c GameConfig) turnCount() int {
	if c.Turns == 0 {
		return DefaultTurnCount
	}
	return c.Turns
}

// DeckSize is the number of habitat tiles drawn into a game's deck.
func (c GameConfig) DeckSize() int {
	return TilesPerPlayer*len(c.PlayerNames) + ExtraDeckTiles
}
