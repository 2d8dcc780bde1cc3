package game

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBiomeRegionsSeedOnly(t *testing.T) {
	b := NewBoard(GridSquare)
	require.NoError(t, b.Seed([3]Tile{single(Forest), single(Forest), single(River)}))

	regions := BiomeRegions(b)
	assert.Equal(t, 2, regions[Forest])
	assert.Equal(t, 1, regions[River])
	assert.Equal(t, 0, regions[Meadow])
}

func TestBiomeRegionsHexTwoBiomeTile(t *testing.T) {
	b := NewBoard(GridHex)
	center := Cell{X: 10, Y: 10}
	putTile(t, b, center, dual(Forest, River), 1)

	// Rotation 1 puts forest on edges 2, 3 and 4.
	neighbours := GridHex.Neighbours(center)
	for _, e := range EdgeRun(1, 0) {
		putTile(t, b, neighbours[e], single(Forest), 0)
	}

	regions := BiomeRegions(b)
	assert.Equal(t, 4, regions[Forest])
	assert.Equal(t, 1, regions[River])

	// A forest tile on the river side touches the tile but not its forest.
	putTile(t, b, neighbours[0], single(Forest), 0)
	regions = BiomeRegions(b)
	assert.Equal(t, 4, regions[Forest])
	assert.Equal(t, 1, regions[River])
}

func TestBiomeRegionsHexTwoBiomeChain(t *testing.T) {
	b := NewBoard(GridHex)
	a := Cell{X: 10, Y: 10}
	east := Cell{X: 11, Y: 10}

	// Rotation 6 puts forest on edges 1, 2 and 3 of a, so edge 1 faces east.
	putTile(t, b, a, dual(Forest, River), 6)
	// Rotation 3 puts forest on edges 4, 5 and 0 of east, so edge 4 faces a.
	putTile(t, b, east, dual(Forest, River), 3)
	assert.Equal(t, 2, BiomeRegions(b)[Forest])
	assert.Equal(t, 1, BiomeRegions(b)[River])

	// Rotation 5 turns east's forest away from a.
	b2 := NewBoard(GridHex)
	putTile(t, b2, a, dual(Forest, River), 6)
	putTile(t, b2, east, dual(Forest, River), 5)
	assert.Equal(t, 1, BiomeRegions(b2)[Forest])
}

func TestBiomeRegionsSameBiomeTwiceIsSingle(t *testing.T) {
	b := NewBoard(GridHex)
	center := Cell{X: 10, Y: 10}
	putTile(t, b, center, dual(Meadow, Meadow), 1)
	for _, n := range GridHex.Neighbours(center) {
		putTile(t, b, n, single(Meadow), 0)
	}
	assert.Equal(t, 7, BiomeRegions(b)[Meadow])
}

// referenceRegions is a plain map-based BFS over four neighbours.
func referenceRegions(tiles map[Cell]Biome) [BiomeCount]int {
	var out [BiomeCount]int
	seen := map[Cell]bool{}
	for start, biome := range tiles {
		if seen[start] {
			continue
		}
		seen[start] = true
		size := 0
		q := []Cell{start}
		for len(q) > 0 {
			c := q[0]
			q = q[1:]
			size++
			for _, d := range []Cell{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}} {
				n := Cell{X: c.X + d.X, Y: c.Y + d.Y}
				if b, ok := tiles[n]; ok && b == biome && !seen[n] {
					seen[n] = true
					q = append(q, n)
				}
			}
		}
		out[biome] = max(out[biome], size)
	}
	return out
}

func TestBiomeRegionsMatchReferenceOnSquare(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for round := 0; round < 50; round++ {
		tiles := map[Cell]Biome{}
		b := NewBoard(GridSquare)
		for i := 0; i < 60; i++ {
			c := Cell{X: rng.IntN(12), Y: rng.IntN(12)}
			if _, ok := tiles[c]; ok {
				continue
			}
			biome := AllBiomes[rng.IntN(BiomeCount)]
			tiles[c] = biome
			putTile(t, b, c, single(biome), 0)
		}
		require.Equal(t, referenceRegions(tiles), BiomeRegions(b), "round %d", round)
	}
}

func TestBiomeRegionsInsertionOrderInvariant(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	type placed struct {
		cell     Cell
		tile     Tile
		rotation int
	}
	var tiles []placed
	used := map[Cell]bool{}
	for i := 0; i < 80; i++ {
		c := Cell{X: rng.IntN(10), Y: rng.IntN(10)}
		if used[c] {
			continue
		}
		used[c] = true
		a := AllBiomes[rng.IntN(BiomeCount)]
		if rng.IntN(2) == 0 {
			tiles = append(tiles, placed{c, single(a), 0})
			continue
		}
		tiles = append(tiles, placed{c, dual(a, AllBiomes[rng.IntN(BiomeCount)]), 1 + rng.IntN(6)})
	}

	forward := NewBoard(GridHex)
	for _, p := range tiles {
		putTile(t, forward, p.cell, p.tile, p.rotation)
	}
	backward := NewBoard(GridHex)
	for i := len(tiles) - 1; i >= 0; i-- {
		putTile(t, backward, tiles[i].cell, tiles[i].tile, tiles[i].rotation)
	}
	assert.Equal(t, BiomeRegions(forward), BiomeRegions(backward))
}

func TestScoreBiomesIdempotent(t *testing.T) {
	p := NewPlayer("ana", GridHex, 0)
	require.NoError(t, p.Board.Seed([3]Tile{single(Forest), dual(Forest, Swamp), single(Swamp)}))
	require.NoError(t, p.Board.Place(Cell{X: 24, Y: 24}, single(Forest), 0))

	ScoreBiomes(p)
	first := p.BiomePoints
	cells := p.Board.Cells()

	ScoreBiomes(p)
	assert.Equal(t, first, p.BiomePoints)
	assert.Equal(t, cells, p.Board.Cells())
	assert.Zero(t, p.Score)
}
