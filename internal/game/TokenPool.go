package game

import (
	"fmt"
	"math/rand/v2"
)

// TokenPool is the bag of wildlife tokens not on the offer row and not on any board.
type TokenPool struct {
	bag [AnimalCount]int
}

func NewTokenPool() *TokenPool {
	p := &TokenPool{}
	for _, a := range AllAnimals {
		p.bag[a] = TokensPerSpecies
	}
	return p
}

func (p *TokenPool) Remaining(a Animal) int {
	return p.bag[a]
}

// Species returns the number of species that still have tokens in the bag.
func (p *TokenPool) Species() int {
	n := 0
	for _, count := range p.bag {
		if count > 0 {
			n++
		}
	}
	return n
}

// OnlyHolds reports whether every token left in the bag is of species a.
// An empty bag holds only a.
func (p *TokenPool) OnlyHolds(a Animal) bool {
	for _, other := range AllAnimals {
		if other != a && p.bag[other] > 0 {
			return false
		}
	}
	return true
}

// Draw takes one token of a species picked uniformly among those left in the bag.
func (p *TokenPool) Draw(rng *rand.Rand) (Animal, error) {
	var available []Animal
	for _, a := range AllAnimals {
		if p.bag[a] > 0 {
			available = append(available, a)
		}
	}
	if len(available) == 0 {
		return 0, ErrSupplyExhausted
	}
	a := available[rng.IntN(len(available))]
	p.bag[a]--
	return a, nil
}

// Return puts a token back in the bag.
func (p *TokenPool) Return(a Animal) {
	if p.bag[a] >= TokensPerSpecies {
		panic(fmt.Sprintf("token pool overflow for %v", a))
	}
	p.bag[a]++
}
