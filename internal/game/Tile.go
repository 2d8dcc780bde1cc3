package game

import (
	"fmt"
	"strings"
)

// Tile is an immutable habitat tile blueprint: one or two biomes and one or
// two candidate animals.
type Tile struct {
	biomes   [2]Biome
	nBiomes  int
	animals  [2]Animal
	nAnimals int
}

func NewTile(biomes []Biome, animals []Animal) (Tile, error) {
	var t Tile
	if len(biomes) < 1 || len(biomes) > 2 {
		return t, fmt.Errorf("%w: tile needs 1 or 2 biomes, got %d", ErrInvalidDeck, len(biomes))
	}
	if len(animals) < 1 || len(animals) > 2 {
		return t, fmt.Errorf("%w: tile needs 1 or 2 animals, got %d", ErrInvalidDeck, len(animals))
	}
	for _, b := range biomes {
		if !b.Valid() {
			return t, fmt.Errorf("%w: %v", ErrInvalidDeck, b)
		}
	}
	for _, a := range animals {
		if !a.Valid() {
			return t, fmt.Errorf("%w: %v", ErrInvalidDeck, a)
		}
	}
	t.nBiomes = copy(t.biomes[:], biomes)
	t.nAnimals = copy(t.animals[:], animals)
	return t, nil
}

// MustTile is NewTile for literals known to be valid.
func MustTile(biomes []Biome, animals []Animal) Tile {
	t, err := NewTile(biomes, animals)
	if err != nil {
		panic(err)
	}
	return t
}

func (t Tile) Biomes() []Biome {
	return append([]Biome(nil), t.biomes[:t.nBiomes]...)
}

func (t Tile) Animals() []Animal {
	return append([]Animal(nil), t.animals[:t.nAnimals]...)
}

// Biome returns the i-th biome: 0 is side A, 1 is side B.
func (t Tile) Biome(i int) Biome {
	if i < 0 || i >= t.nBiomes {
		panic(fmt.Sprintf("biome index %d out of range for %v", i, t))
	}
	return t.biomes[i]
}

// SingleBiome reports whether the whole tile is one biome. A two-biome tile
// naming the same biome twice counts as single.
func (t Tile) SingleBiome() bool {
	return t.nBiomes == 1 || t.biomes[0] == t.biomes[1]
}

func (t Tile) HasBiome(b Biome) bool {
	for _, tb := range t.biomes[:t.nBiomes] {
		if tb == b {
			return true
		}
	}
	return false
}

func (t Tile) Supports(a Animal) bool {
	for _, ta := range t.animals[:t.nAnimals] {
		if ta == a {
			return true
		}
	}
	return false
}

func (t Tile) IsZero() bool {
	return t.nBiomes == 0
}

// String renders the short log form, e.g. "|fo ri / be sa/".
func (t Tile) String() string {
	var sb strings.Builder
	sb.WriteString("|")
	for i, b := range t.biomes[:t.nBiomes] {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(b.Short())
	}
	sb.WriteString(" / ")
	for i, a := range t.animals[:t.nAnimals] {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(a.Short())
	}
	sb.WriteString("/")
	return sb.String()
}

// FormatTile writes a blueprint in deck-file form: "FOREST RIVER | BEAR SALMON".
func FormatTile(t Tile) string {
	parts := make([]string, 0, t.nBiomes+t.nAnimals+1)
	for _, b := range t.biomes[:t.nBiomes] {
		parts = append(parts, b.String())
	}
	parts = append(parts, "|")
	for _, a := range t.animals[:t.nAnimals] {
		parts = append(parts, a.String())
	}
	return strings.Join(parts, " ")
}

// ParseTile reads one deck-file line.
func ParseTile(line string) (Tile, error) {
	left, right, ok := strings.Cut(line, "|")
	if !ok {
		return Tile{}, fmt.Errorf("%w: missing '|' in %q", ErrInvalidDeck, line)
	}
	if strings.Contains(right, "|") {
		return Tile{}, fmt.Errorf("%w: more than one '|' in %q", ErrInvalidDeck, line)
	}

	var biomes []Biome
	for _, field := range strings.Fields(left) {
		b, err := ParseBiome(field)
		if err != nil {
			return Tile{}, err
		}
		biomes = append(biomes, b)
	}
	var animals []Animal
	for _, field := range strings.Fields(right) {
		a, err := ParseAnimal(field)
		if err != nil {
			return Tile{}, err
		}
		animals = append(animals, a)
	}
	return NewTile(biomes, animals)
}

// PlacedTile is a blueprint bound to a board cell. Rotation is meaningful
// only for two-biome tiles on a hex grid.
type PlacedTile struct {
	Tile     Tile
	Rotation int

	animal    Animal
	hasAnimal bool
}

// Wildlife returns the token on the tile, if any.
func (p *PlacedTile) Wildlife() (Animal, bool) {
	return p.animal, p.hasAnimal
}

func (p *PlacedTile) HasWildlife(a Animal) bool {
	return p.hasAnimal && p.animal == a
}

func (p *PlacedTile) setWildlife(a Animal) error {
	if p.hasAnimal {
		return fmt.Errorf("%w: tile already holds %v", ErrInvalidAnimalAssignment, p.animal)
	}
	if !p.Tile.Supports(a) {
		return fmt.Errorf("%w: %v not allowed on %v", ErrInvalidAnimalAssignment, a, p.Tile)
	}
	p.animal = a
	p.hasAnimal = true
	return nil
}
