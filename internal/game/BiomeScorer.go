package game

// ScoreBiomes records the largest region of every biome on the player's
// board in p.BiomePoints. It does not touch p.Score.
func ScoreBiomes(p *Player) {
	p.BiomePoints = BiomeRegions(p.Board)
}

// BiomeRegions returns the size of the largest connected region per biome.
func BiomeRegions(b *Board) [BiomeCount]int {
	var out [BiomeCount]int
	cells := b.Cells()
	for _, biome := range AllBiomes {
		var visited cellSet
		for _, c := range cells {
			if visited.Has(c) {
				continue
			}
			t, _ := b.Get(c)
			if !contributes(b.grid, t, biome) {
				continue
			}
			out[biome] = max(out[biome], regionSize(b, c, biome, &visited))
		}
	}
	return out
}

func contributes(grid GridKind, t *PlacedTile, biome Biome) bool {
	if grid == GridSquare {
		return t.Tile.Biome(0) == biome
	}
	return t.Tile.HasBiome(biome)
}

type biomeStep struct {
	cell   Cell
	from   Cell
	seeded bool
}

// regionSize walks the region of biome that contains seed. On hex grids a
// two-biome tile is entered only across an edge of biome's run and is left
// only through that run.
func regionSize(b *Board, seed Cell, biome Biome, visited *cellSet) int {
	q := []biomeStep{{cell: seed, from: seed, seeded: true}}
	size := 0

	for len(q) > 0 {
		step := q[0]
		q = q[1:]
		if visited.Has(step.cell) {
			continue
		}
		t, ok := b.Get(step.cell)
		if !ok || !contributes(b.grid, t, biome) {
			continue
		}

		neighbours := b.grid.Neighbours(step.cell)
		if b.grid == GridSquare || t.Tile.SingleBiome() {
			visited.Add(step.cell)
			size++
			for _, n := range neighbours {
				q = append(q, biomeStep{cell: n, from: step.cell})
			}
			continue
		}

		side := 0
		if t.Tile.Biome(1) == biome {
			side = 1
		}
		if !step.seeded {
			edge, _ := b.grid.EdgeTowards(step.cell, step.from)
			if !edgeInRun(t.Rotation, side, edge) {
				continue
			}
		}
		visited.Add(step.cell)
		size++
		for _, e := range EdgeRun(t.Rotation, side) {
			q = append(q, biomeStep{cell: neighbours[e], from: step.cell})
		}
	}
	return size
}
