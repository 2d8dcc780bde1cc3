package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// testBoard builds a board with one forest tile per cell carrying the given
// token, skipping the neighbour rule.
func testBoard(t *testing.T, grid GridKind, animals map[Cell]Animal) *Board {
	t.Helper()
	b := NewBoard(grid)
	for c, a := range animals {
		pt := &PlacedTile{Tile: MustTile([]Biome{Forest}, []Animal{a})}
		require.NoError(t, pt.setWildlife(a))
		b.tiles[c] = pt
	}
	return b
}

// putTile places a tile without the neighbour rule.
func putTile(t *testing.T, b *Board, c Cell, tile Tile, rotation int) {
	t.Helper()
	require.NoError(t, b.checkCell(c, tile, rotation))
	b.tiles[c] = &PlacedTile{Tile: tile, Rotation: rotation}
}

func single(b Biome, animals ...Animal) Tile {
	if len(animals) == 0 {
		animals = []Animal{Bear}
	}
	return MustTile([]Biome{b}, animals)
}

func dual(a, b Biome) Tile {
	return MustTile([]Biome{a, b}, []Animal{Bear})
}

func scoreWith(t *testing.T, kind CardKind, pattern int, b *Board) int {
	t.Helper()
	s, err := NewScorer(kind, pattern, b.Grid())
	require.NoError(t, err)
	return s.Score(&Player{Name: "test", Board: b})
}
