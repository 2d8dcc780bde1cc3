package game

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/charmbracelet/log"
)

// Offer is one tile/animal pair of the offer row.
type Offer struct {
	Tile   Tile
	Animal Animal
}

// Supply holds the shared draw state: the remaining habitat deck, the token
// bag and the four-slot offer row.
type Supply struct {
	Row  [OfferSize]Offer
	Pool *TokenPool

	deck   []Tile
	rng    *rand.Rand
	logger *log.Logger
}

func newSupply(deck []Tile, pool *TokenPool, rng *rand.Rand, logger *log.Logger) (*Supply, error) {
	s := &Supply{
		Pool:   pool,
		deck:   deck,
		rng:    rng,
		logger: logger,
	}
	for i := range s.Row {
		if err := s.refill(i, i); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// DeckLeft is the number of habitat tiles not yet dealt.
func (s *Supply) DeckLeft() int {
	return len(s.deck)
}

func (s *Supply) drawTile() (Tile, error) {
	if len(s.deck) == 0 {
		return Tile{}, ErrDeckExhausted
	}
	t := s.deck[0]
	s.deck = s.deck[1:]
	return t, nil
}

// refill deals a fresh tile into tileSlot and a fresh animal into animalSlot.
func (s *Supply) refill(tileSlot, animalSlot int) error {
	a, err := s.Pool.Draw(s.rng)
	if err != nil {
		return err
	}
	s.Row[animalSlot].Animal = a

	t, err := s.drawTile()
	if err != nil {
		return err
	}
	s.Row[tileSlot].Tile = t
	return nil
}

// redrawAnimals returns the animals of the given slots to the bag and draws replacements.
func (s *Supply) redrawAnimals(slots []int) error {
	for _, slot := range slots {
		s.Pool.Return(s.Row[slot].Animal)
	}
	for _, slot := range slots {
		a, err := s.Pool.Draw(s.rng)
		if err != nil {
			return err
		}
		s.Row[slot].Animal = a
	}
	return nil
}

// crowd returns the most frequent animal on the row and the slots holding it.
func (s *Supply) crowd() (Animal, []int) {
	var bySpecies [AnimalCount][]int
	for i, o := range s.Row {
		bySpecies[o.Animal] = append(bySpecies[o.Animal], i)
	}
	best := AllAnimals[0]
	for _, a := range AllAnimals {
		if len(bySpecies[a]) > len(bySpecies[best]) {
			best = a
		}
	}
	return best, bySpecies[best]
}

// resolveOverpopulation redraws a row of four identical animals outright and
// asks the chooser whether to redraw three identical ones. It stops once the
// row is settled, the bag holds nothing but the crowded species, or after a
// bounded number of attempts.
func (s *Supply) resolveOverpopulation(ctx context.Context, chooser Chooser) error {
	for range maxOverpopulations {
		species, slots := s.crowd()
		if len(slots) < 3 || s.Pool.OnlyHolds(species) {
			return nil
		}

		if len(slots) == 3 {
			redraw, err := chooser.ChooseRedraw(ctx, species)
			if err != nil {
				return fmt.Errorf("choose redraw: %w", err)
			}
			if !redraw {
				return nil
			}
		}

		s.logger.Debug("overpopulation", "species", species, "count", len(slots))
		if err := s.redrawAnimals(slots); err != nil {
			return err
		}
	}
	s.logger.Warn("overpopulation unresolved", "attempts", maxOverpopulations)
	return nil
}
