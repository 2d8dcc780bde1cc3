package main

import (
	"context"
	"math/rand/v2"

	"github.com/Mshel/cascadia/internal/game"
)

// autopilot plays uniformly random legal moves for every seat.
type autopilot struct {
	rng *rand.Rand
}

func newAutopilot(seed int64) *autopilot {
	// #nosec G404
	return &autopilot{rng: rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))}
}

func (a *autopilot) Choose(_ context.Context, view game.TurnView) (game.Move, error) {
	m := game.Move{
		TileIndex: a.rng.IntN(game.OfferSize),
		Rotation:  1 + a.rng.IntN(6),
	}
	m.AnimalIndex = m.TileIndex
	if view.NatureTokens > 0 && a.rng.IntN(4) == 0 {
		m.AnimalIndex = (m.TileIndex + 1 + a.rng.IntN(game.OfferSize-1)) % game.OfferSize
		m.SpendNatureToken = true
	}

	frontier := view.Board.Frontier()
	m.Cell = frontier[a.rng.IntN(len(frontier))]

	tile := view.Offers[m.TileIndex].Tile
	animal := view.Offers[m.AnimalIndex].Animal
	var targets []game.Cell
	if tile.Supports(animal) {
		targets = append(targets, m.Cell)
	}
	for _, c := range view.Board.EmptySlots() {
		if view.Board.CanPlaceAnimal(c, animal) == nil {
			targets = append(targets, c)
		}
	}
	if len(targets) > 0 {
		m.PlaceAnimal = true
		m.AnimalCell = targets[a.rng.IntN(len(targets))]
	}
	return m, nil
}

func (a *autopilot) ChooseRedraw(context.Context, game.Animal) (bool, error) {
	return a.rng.IntN(2) == 0, nil
}

func (a *autopilot) ChooseTokensToDiscard(context.Context, game.TurnView) ([]int, error) {
	if a.rng.IntN(8) != 0 {
		return nil, nil
	}
	var slots []int
	for i := range game.OfferSize {
		if a.rng.IntN(2) == 0 {
			slots = append(slots, i)
		}
	}
	return slots, nil
}
