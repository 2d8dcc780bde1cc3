package game

import "fmt"

type Player struct {
	Name         string
	Score        int
	NatureTokens int
	Board        *Board

	// BiomePoints holds the largest region size per biome after scoring.
	BiomePoints [BiomeCount]int
}

func NewPlayer(name string, grid GridKind, natureTokens int) *Player {
	return &Player{
		Name:         name,
		NatureTokens: natureTokens,
		Board:        NewBoard(grid),
	}
}

// PlaceAnimal puts a wildlife token on the player's board and awards a
// nature token for a single-biome tile.
func (p *Player) PlaceAnimal(c Cell, a Animal) error {
	single, err := p.Board.PlaceAnimal(c, a)
	if err != nil {
		return err
	}
	if single {
		p.NatureTokens++
	}
	return nil
}

func (p *Player) spendNatureToken() error {
	if p.NatureTokens <= 0 {
		return fmt.Errorf("%w: %s has no nature tokens", ErrInvalidMove, p.Name)
	}
	p.NatureTokens--
	return nil
}

// BiomeTotal is the sum of the recorded region sizes.
func (p *Player) BiomeTotal() int {
	total := 0
	for _, pts := range p.BiomePoints {
		total += pts
	}
	return total
}
