package game

import (
	"cmp"
	"fmt"
	"slices"
)

// Board is one player's sparse habitat: cell -> placed tile.
type Board struct {
	grid  GridKind
	tiles map[Cell]*PlacedTile
}

func NewBoard(grid GridKind) *Board {
	return &Board{
		grid:  grid,
		tiles: make(map[Cell]*PlacedTile),
	}
}

func (b *Board) Grid() GridKind {
	return b.grid
}

func (b *Board) Len() int {
	return len(b.tiles)
}

// Get returns the tile at c. ok is false for an empty cell.
func (b *Board) Get(c Cell) (*PlacedTile, bool) {
	t, ok := b.tiles[c]
	return t, ok
}

// HasNeighbour reports whether any neighbour of c is occupied.
func (b *Board) HasNeighbour(c Cell) bool {
	for _, n := range b.grid.Neighbours(c) {
		if _, ok := b.tiles[n]; ok {
			return true
		}
	}
	return false
}

// CanPlace checks a placement without performing it.
func (b *Board) CanPlace(c Cell, tile Tile, rotation int) error {
	if err := b.checkCell(c, tile, rotation); err != nil {
		return err
	}
	if !b.HasNeighbour(c) {
		return fmt.Errorf("%w: %v has no neighbouring tile", ErrInvalidPlacement, c)
	}
	return nil
}

// Place puts tile on c with an empty wildlife slot. The cell must be free
// and touch an existing tile.
func (b *Board) Place(c Cell, tile Tile, rotation int) error {
	if err := b.CanPlace(c, tile, rotation); err != nil {
		return err
	}
	b.tiles[c] = &PlacedTile{Tile: tile, Rotation: rotation}
	return nil
}

// Seed places the three start tiles. It bypasses the neighbour rule and may
// only run on an empty board.
func (b *Board) Seed(start [3]Tile) error {
	if len(b.tiles) != 0 {
		return fmt.Errorf("%w: board already seeded", ErrInvalidPlacement)
	}
	for i, tile := range start {
		if err := b.checkCell(SeedCells[i], tile, SeedRotations[i]); err != nil {
			return err
		}
		b.tiles[SeedCells[i]] = &PlacedTile{Tile: tile, Rotation: SeedRotations[i]}
	}
	return nil
}

func (b *Board) checkCell(c Cell, tile Tile, rotation int) error {
	if !c.InBounds() {
		return fmt.Errorf("%w: %v is off the board", ErrInvalidPlacement, c)
	}
	if _, ok := b.tiles[c]; ok {
		return fmt.Errorf("%w: %v is occupied", ErrInvalidPlacement, c)
	}
	if tile.IsZero() {
		return fmt.Errorf("%w: empty tile", ErrInvalidPlacement)
	}
	if rotation < 0 || rotation > 6 {
		return fmt.Errorf("%w: rotation %d out of range", ErrInvalidPlacement, rotation)
	}
	if b.grid == GridHex && !tile.SingleBiome() && rotation == 0 {
		return fmt.Errorf("%w: two-biome tile %v needs a rotation 1..6", ErrInvalidPlacement, tile)
	}
	return nil
}

// CanPlaceAnimal checks a wildlife assignment without performing it.
func (b *Board) CanPlaceAnimal(c Cell, a Animal) error {
	t, ok := b.tiles[c]
	if !ok {
		return fmt.Errorf("%w: no tile at %v", ErrInvalidAnimalAssignment, c)
	}
	if t.hasAnimal {
		return fmt.Errorf("%w: tile at %v already holds %v", ErrInvalidAnimalAssignment, c, t.animal)
	}
	if !t.Tile.Supports(a) {
		return fmt.Errorf("%w: %v not allowed on %v", ErrInvalidAnimalAssignment, a, t.Tile)
	}
	return nil
}

// PlaceAnimal fills the wildlife slot at c. The returned flag reports a
// single-biome tile, which earns the owner a nature token.
func (b *Board) PlaceAnimal(c Cell, a Animal) (bool, error) {
	t, ok := b.tiles[c]
	if !ok {
		return false, fmt.Errorf("%w: no tile at %v", ErrInvalidAnimalAssignment, c)
	}
	if err := t.setWildlife(a); err != nil {
		return false, fmt.Errorf("at %v: %w", c, err)
	}
	return t.Tile.SingleBiome(), nil
}

// Cells returns the occupied cells ordered by row, then column.
func (b *Board) Cells() []Cell {
	cells := make([]Cell, 0, len(b.tiles))
	for c := range b.tiles {
		cells = append(cells, c)
	}
	slices.SortFunc(cells, compareCells)
	return cells
}

// WildlifeCells returns the cells holding a, ordered by row, then column.
func (b *Board) WildlifeCells(a Animal) []Cell {
	var cells []Cell
	for c, t := range b.tiles {
		if t.HasWildlife(a) {
			cells = append(cells, c)
		}
	}
	slices.SortFunc(cells, compareCells)
	return cells
}

// AnimalAt returns the token on c, if c is occupied and holds one.
func (b *Board) AnimalAt(c Cell) (Animal, bool) {
	t, ok := b.tiles[c]
	if !ok {
		return 0, false
	}
	return t.Wildlife()
}

// Frontier returns the free in-bounds cells adjacent to the habitat.
func (b *Board) Frontier() []Cell {
	var seen cellSet
	var out []Cell
	for _, c := range b.Cells() {
		for _, n := range b.grid.Neighbours(c) {
			if !n.InBounds() || seen.Has(n) {
				continue
			}
			seen.Add(n)
			if _, ok := b.tiles[n]; !ok {
				out = append(out, n)
			}
		}
	}
	slices.SortFunc(out, compareCells)
	return out
}

// EmptySlots returns occupied cells whose wildlife slot is free.
func (b *Board) EmptySlots() []Cell {
	var out []Cell
	for _, c := range b.Cells() {
		if !b.tiles[c].hasAnimal {
			out = append(out, c)
		}
	}
	return out
}

func compareCells(a, b Cell) int {
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.X, b.X)
}
