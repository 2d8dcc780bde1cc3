package game

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

type Biome int

const (
	Forest Biome = iota
	Meadow
	Mountain
	River
	Swamp
)

const BiomeCount = 5

var AllBiomes = [BiomeCount]Biome{Forest, Meadow, Mountain, River, Swamp}

var biomeNames = [BiomeCount]string{"FOREST", "MEADOW", "MOUNTAIN", "RIVER", "SWAMP"}

func (b Biome) Valid() bool {
	return b >= 0 && int(b) < BiomeCount
}

func (b Biome) String() string {
	if !b.Valid() {
		return fmt.Sprintf("Biome(%d)", int(b))
	}
	return biomeNames[b]
}

// Short is the two letter lowercase abbreviation used in tile text.
func (b Biome) Short() string {
	if !b.Valid() {
		return "??"
	}
	return strings.ToLower(biomeNames[b][:2])
}

func ParseBiome(s string) (Biome, error) {
	for i, name := range biomeNames {
		if strings.EqualFold(s, name) {
			return Biome(i), nil
		}
	}
	return 0, unknownToken("biome", s, biomeNames[:])
}

type Animal int

const (
	Bear Animal = iota
	Salmon
	Fox
	Elk
	Buzzard
)

const AnimalCount = 5

var AllAnimals = [AnimalCount]Animal{Bear, Salmon, Fox, Elk, Buzzard}

var animalNames = [AnimalCount]string{"BEAR", "SALMON", "FOX", "ELK", "BUZZARD"}

func (a Animal) Valid() bool {
	return a >= 0 && int(a) < AnimalCount
}

func (a Animal) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Animal(%d)", int(a))
	}
	return animalNames[a]
}

func (a Animal) Short() string {
	if !a.Valid() {
		return "??"
	}
	return strings.ToLower(animalNames[a][:2])
}

func ParseAnimal(s string) (Animal, error) {
	for i, name := range animalNames {
		if strings.EqualFold(s, name) {
			return Animal(i), nil
		}
	}
	return 0, unknownToken("animal", s, animalNames[:])
}

func unknownToken(kind, token string, names []string) error {
	if suggestion, ok := closestName(token, names); ok {
		return fmt.Errorf("%w: unknown %s %q (did you mean %s?)", ErrInvalidDeck, kind, token, suggestion)
	}
	return fmt.Errorf("%w: unknown %s %q", ErrInvalidDeck, kind, token)
}

func closestName(token string, names []string) (string, bool) {
	compare := strings.ToUpper(token)
	best := ""
	bestDist := -1
	for _, name := range names {
		dist := levenshtein.ComputeDistance(compare, name)
		if dist > levenshteinLimit(len(name)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best = name
			bestDist = dist
		}
	}
	return best, bestDist >= 0
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
