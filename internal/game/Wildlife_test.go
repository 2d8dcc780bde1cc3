package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(y int, xs ...int) []Cell {
	cells := make([]Cell, len(xs))
	for i, x := range xs {
		cells[i] = Cell{X: x, Y: y}
	}
	return cells
}

func tokens(a Animal, cells ...[]Cell) map[Cell]Animal {
	m := map[Cell]Animal{}
	for _, group := range cells {
		for _, c := range group {
			m[c] = a
		}
	}
	return m
}

func merge(maps ...map[Cell]Animal) map[Cell]Animal {
	out := map[Cell]Animal{}
	for _, m := range maps {
		for c, a := range m {
			out[c] = a
		}
	}
	return out
}

type patternCase struct {
	name    string
	grid    GridKind
	animals map[Cell]Animal
	want    [4]int // patterns 1..4
}

func runPatterns(t *testing.T, kind CardKind, tests []patternCase) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testBoard(t, tt.grid, tt.animals)
			for i, want := range tt.want {
				assert.Equal(t, want, scoreWith(t, kind, i+1, b), "%v pattern %d", kind, i+1)
			}
		})
	}
}

func TestBearScorer(t *testing.T) {
	runPatterns(t, CardBear, []patternCase{
		{"empty", GridSquare, nil, [4]int{0, 0, 0, 0}},
		{"hex pair", GridHex, tokens(Bear, row(10, 10, 11)), [4]int{11, 0, 5, 5}},
		{"triple", GridSquare, tokens(Bear, row(1, 1, 2, 3)), [4]int{19, 10, 8, 8}},
		{
			"one of each size",
			GridSquare,
			tokens(Bear, row(1, 1), row(1, 5, 6), row(1, 10, 11, 12)),
			[4]int{34, 10, 18, 13},
		},
		{"five in a row", GridSquare, tokens(Bear, row(1, 1, 2, 3, 4, 5)), [4]int{20, 0, 0, 0}},
		{"quad", GridSquare, tokens(Bear, row(1, 1, 2, 3, 4)), [4]int{20, 0, 0, 13}},
	})
}

func TestSalmonScorer(t *testing.T) {
	runPatterns(t, CardSalmon, []patternCase{
		{"straight four", GridSquare, tokens(Salmon, row(1, 1, 2, 3, 4)), [4]int{12, 11, 12, 5}},
		{"pair", GridSquare, tokens(Salmon, row(1, 1, 2)), [4]int{5, 4, 0, 3}},
		{
			"branched",
			GridSquare,
			tokens(Salmon, row(1, 1, 2, 3), row(0, 2), row(2, 2)),
			[4]int{0, 0, 0, 0},
		},
		{
			"pair with neighbours",
			GridSquare,
			merge(
				tokens(Salmon, row(1, 1, 2)),
				tokens(Bear, row(2, 1)),
				tokens(Fox, row(1, 3)),
			),
			[4]int{5, 4, 0, 5},
		},
		{"long run caps", GridSquare, tokens(Salmon, row(1, 1, 2, 3, 4, 5, 6, 7, 8, 9)), [4]int{25, 17, 15, 10}},
	})
}

func TestFoxScorer(t *testing.T) {
	runPatterns(t, CardFox, []patternCase{
		{
			"distinct neighbours",
			GridSquare,
			map[Cell]Animal{
				{X: 5, Y: 5}: Fox,
				{X: 6, Y: 5}: Bear,
				{X: 4, Y: 5}: Salmon,
				{X: 5, Y: 6}: Elk,
			},
			[4]int{4, 0, 1, 0},
		},
		{
			"two pairs",
			GridSquare,
			map[Cell]Animal{
				{X: 5, Y: 5}: Fox,
				{X: 6, Y: 5}: Bear,
				{X: 4, Y: 5}: Bear,
				{X: 5, Y: 6}: Elk,
				{X: 5, Y: 4}: Elk,
			},
			[4]int{3, 5, 2, 7},
		},
		{
			"two foxes fall back to pairs",
			GridSquare,
			map[Cell]Animal{
				{X: 5, Y: 5}:   Fox,
				{X: 6, Y: 5}:   Bear,
				{X: 4, Y: 5}:   Bear,
				{X: 10, Y: 10}: Fox,
				{X: 11, Y: 10}: Elk,
				{X: 9, Y: 10}:  Elk,
			},
			[4]int{4, 6, 4, 6},
		},
		{
			"fox next to fox",
			GridSquare,
			tokens(Fox, row(1, 1, 2)),
			[4]int{2, 0, 0, 0},
		},
	})
}

func TestElkScorer(t *testing.T) {
	runPatterns(t, CardElk, []patternCase{
		{"single", GridSquare, tokens(Elk, row(1, 1)), [4]int{2, 2, 2, 0}},
		{"row of three", GridSquare, tokens(Elk, row(1, 1, 2, 3)), [4]int{9, 7, 7, 9}},
		{"column of two", GridSquare, tokens(Elk, row(1, 1), row(2, 1)), [4]int{4, 4, 4, 4}},
		{
			"diagonal pair",
			GridSquare,
			tokens(Elk, []Cell{{X: 1, Y: 1}, {X: 2, Y: 2}}),
			[4]int{5, 4, 4, 0},
		},
		{"row of four", GridSquare, tokens(Elk, row(1, 1, 2, 3, 4)), [4]int{13, 10, 10, 14}},
		{"row of five", GridSquare, tokens(Elk, row(1, 1, 2, 3, 4, 5)), [4]int{0, 12, 14, 19}},
		{"row of nine", GridSquare, tokens(Elk, row(1, 1, 2, 3, 4, 5, 6, 7, 8, 9)), [4]int{0, 22, 0, 39}},
		{
			"hook of four",
			GridSquare,
			tokens(Elk, row(1, 1, 2, 3), row(2, 3)),
			[4]int{13, 13, 10, 14},
		},
		{
			"corner of three",
			GridSquare,
			tokens(Elk, row(1, 1), row(2, 1, 2)),
			[4]int{9, 9, 7, 9},
		},
		{
			"hex triangle",
			GridHex,
			tokens(Elk, []Cell{{X: 10, Y: 10}, {X: 11, Y: 11}, {X: 10, Y: 11}}),
			[4]int{9, 9, 7, 15},
		},
	})
}

func TestBuzzardScorer(t *testing.T) {
	runPatterns(t, CardBuzzard, []patternCase{
		{"lone buzzard", GridSquare, tokens(Buzzard, row(1, 1)), [4]int{2, 0, 0, 0}},
		{"adjacent pair", GridHex, tokens(Buzzard, row(10, 10, 11)), [4]int{0, 0, 0, 0}},
		{
			"hex sight line over a bear",
			GridHex,
			merge(tokens(Buzzard, row(10, 10, 12)), tokens(Bear, row(10, 11))),
			[4]int{5, 2, 3, 1},
		},
		{"hex sight line over empty cell", GridHex, tokens(Buzzard, row(10, 10, 12)), [4]int{5, 2, 3, 0}},
		{
			"blocked line",
			GridHex,
			tokens(Buzzard, row(10, 10, 12, 14)),
			[4]int{8, 5, 6, 0},
		},
		{
			"square column over two species",
			GridSquare,
			map[Cell]Animal{
				{X: 3, Y: 1}: Buzzard,
				{X: 3, Y: 2}: Elk,
				{X: 3, Y: 3}: Fox,
				{X: 3, Y: 4}: Buzzard,
			},
			[4]int{5, 2, 3, 2},
		},
		{
			"hex column",
			GridHex,
			merge(tokens(Buzzard, []Cell{{X: 5, Y: 4}, {X: 5, Y: 6}}), tokens(Bear, []Cell{{X: 5, Y: 5}})),
			[4]int{5, 2, 3, 1},
		},
		{
			"hex diagonal only with reach",
			GridHex,
			merge(tokens(Buzzard, []Cell{{X: 5, Y: 4}, {X: 6, Y: 6}}), tokens(Bear, []Cell{{X: 5, Y: 5}})),
			[4]int{5, 0, 3, 0},
		},
		{
			"hex diagonal over an elk",
			GridHex,
			merge(tokens(Buzzard, []Cell{{X: 5, Y: 4}, {X: 6, Y: 6}}), tokens(Elk, []Cell{{X: 6, Y: 5}})),
			[4]int{5, 0, 3, 1},
		},
		{"square diagonal is no line", GridSquare, tokens(Buzzard, []Cell{{X: 1, Y: 1}, {X: 3, Y: 3}}), [4]int{5, 0, 0, 0}},
	})
}

func TestFamilyAndIntermediate(t *testing.T) {
	triangle := testBoard(t, GridHex, tokens(Elk, []Cell{{X: 10, Y: 10}, {X: 11, Y: 11}, {X: 10, Y: 11}}))
	assert.Equal(t, 9, scoreWith(t, CardFamily, FamilyPattern, triangle))
	assert.Equal(t, 8, scoreWith(t, CardIntermediate, IntermediatePattern, triangle))

	mixed := testBoard(t, GridSquare, merge(
		tokens(Bear, row(1, 1)),
		tokens(Salmon, row(5, 5, 6)),
		tokens(Elk, row(1, 10, 11, 12)),
	))
	assert.Equal(t, 16, scoreWith(t, CardFamily, FamilyPattern, mixed))
	assert.Equal(t, 13, scoreWith(t, CardIntermediate, IntermediatePattern, mixed))

	big := testBoard(t, GridSquare, tokens(Fox, row(1, 1, 2, 3, 4, 5)))
	assert.Equal(t, 9, scoreWith(t, CardFamily, FamilyPattern, big))
	assert.Equal(t, 12, scoreWith(t, CardIntermediate, IntermediatePattern, big))
}

func TestNewScorer(t *testing.T) {
	tests := []struct {
		name    string
		kind    CardKind
		pattern int
		grid    GridKind
		wantErr bool
	}{
		{"bear 1", CardBear, 1, GridHex, false},
		{"buzzard 4", CardBuzzard, 4, GridSquare, false},
		{"pattern zero", CardFox, 0, GridHex, true},
		{"pattern five on species", CardElk, 5, GridHex, true},
		{"family", CardFamily, FamilyPattern, GridHex, false},
		{"family with wrong pattern", CardFamily, IntermediatePattern, GridHex, true},
		{"intermediate", CardIntermediate, IntermediatePattern, GridSquare, false},
		{"intermediate with species pattern", CardIntermediate, 2, GridSquare, true},
		{"unknown grid", CardBear, 1, GridKind(9), true},
		{"unknown card", CardKind(42), 1, GridHex, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewScorer(tt.kind, tt.pattern, tt.grid)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, s.Name())
		})
	}
}

func TestSizeTable(t *testing.T) {
	table := sizeTable{0, 2, 5, 9}
	assert.Equal(t, 0, table.points(0))
	assert.Equal(t, 5, table.points(2))
	assert.Equal(t, 9, table.points(3))
	assert.Equal(t, 9, table.points(12))

	assert.Equal(t, 9, table.exact(3))
	assert.Equal(t, 0, table.exact(4))
	assert.Equal(t, 0, table.exact(0))
}
