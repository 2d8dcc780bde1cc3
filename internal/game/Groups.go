package game

// groupsOf splits cells into connected groups, where next yields the cells a
// cell links to. Groups and their members come out in the order of cells.
func groupsOf(cells []Cell, next func(Cell) []Cell) [][]Cell {
	var members, visited cellSet
	for _, c := range cells {
		members.Add(c)
	}

	var groups [][]Cell
	for _, seed := range cells {
		if visited.Has(seed) {
			continue
		}
		visited.Add(seed)
		q := []Cell{seed}
		var group []Cell
		for len(q) > 0 {
			c := q[0]
			q = q[1:]
			group = append(group, c)

			for _, n := range next(c) {
				if !members.Has(n) || visited.Has(n) {
					continue
				}
				visited.Add(n)
				q = append(q, n)
			}
		}
		groups = append(groups, group)
	}
	return groups
}

// animalGroups returns the groups of adjacent a tokens on b.
func animalGroups(grid GridKind, b *Board, a Animal) [][]Cell {
	return groupsOf(b.WildlifeCells(a), grid.Neighbours)
}

// neighbourAnimals counts the tokens on the cells around c.
func neighbourAnimals(grid GridKind, b *Board, c Cell) [AnimalCount]int {
	var counts [AnimalCount]int
	for _, n := range grid.Neighbours(c) {
		if a, ok := b.AnimalAt(n); ok {
			counts[a]++
		}
	}
	return counts
}

// sizeTable maps a count to points. points caps counts past the end at the
// last entry; exact scores them 0.
type sizeTable []int

func (t sizeTable) points(n int) int {
	if n <= 0 || len(t) == 0 {
		return 0
	}
	if n >= len(t) {
		return t[len(t)-1]
	}
	return t[n]
}

func (t sizeTable) exact(n int) int {
	if n <= 0 || n >= len(t) {
		return 0
	}
	return t[n]
}
