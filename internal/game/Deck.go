package game

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"
)

//go:embed decks/HabitatCards.txt decks/StartHabitatCards.txt
var deckFiles embed.FS

const (
	habitatDeckFile = "decks/HabitatCards.txt"
	startDeckFile   = "decks/StartHabitatCards.txt"

	squareTilesPerSpecies = 3
	squareExtraTiles      = 2
	squareStartTriples    = 5
)

// LoadDeck reads one tile per line in "BIOME [BIOME] | ANIMAL [ANIMAL]" form.
// Blank lines and lines starting with '#' are skipped.
func LoadDeck(r io.Reader) ([]Tile, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanLines)

	var tiles []Tile
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		t, err := ParseTile(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		tiles = append(tiles, t)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(tiles) == 0 {
		return nil, fmt.Errorf("%w: no tiles", ErrInvalidDeck)
	}
	return tiles, nil
}

// LoadStartTiles reads a start deck: consecutive tiles grouped by three.
func LoadStartTiles(r io.Reader) ([][3]Tile, error) {
	tiles, err := LoadDeck(r)
	if err != nil {
		return nil, err
	}
	if len(tiles)%3 != 0 {
		return nil, fmt.Errorf("%w: start deck holds %d tiles, not a multiple of 3", ErrInvalidDeck, len(tiles))
	}
	triples := make([][3]Tile, 0, len(tiles)/3)
	for i := 0; i < len(tiles); i += 3 {
		triples = append(triples, [3]Tile{tiles[i], tiles[i+1], tiles[i+2]})
	}
	return triples, nil
}

func openDeck(path, embedded string) (io.ReadCloser, error) {
	if path != "" {
		return os.Open(path)
	}
	return deckFiles.Open(embedded)
}

// HabitatDeck loads the habitat deck from path, or the built-in hex deck when path is empty.
func HabitatDeck(path string) ([]Tile, error) {
	f, err := openDeck(path, habitatDeckFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadDeck(f)
}

// StartTiles loads the start deck from path, or the built-in one when path is empty.
func StartTiles(path string) ([][3]Tile, error) {
	f, err := openDeck(path, startDeckFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadStartTiles(f)
}

// GenerateSquareDeck builds the single-biome deck of the square variant: per
// biome, three tiles for each species paired with a different species, plus
// two extra random tiles.
func GenerateSquareDeck(rng *rand.Rand) []Tile {
	var deck []Tile
	for _, b := range AllBiomes {
		for _, a := range AllAnimals {
			for range squareTilesPerSpecies {
				deck = append(deck, squareTile(rng, b, a))
			}
		}
		for range squareExtraTiles {
			deck = append(deck, squareTile(rng, b, AllAnimals[rng.IntN(AnimalCount)]))
		}
	}
	return deck
}

func squareTile(rng *rand.Rand, b Biome, first Animal) Tile {
	second := AllAnimals[rng.IntN(AnimalCount-1)]
	if second >= first {
		second++
	}
	return MustTile([]Biome{b}, []Animal{first, second})
}

// GenerateSquareStartTiles builds random start triples for the square variant.
func GenerateSquareStartTiles(rng *rand.Rand) [][3]Tile {
	triples := make([][3]Tile, squareStartTriples)
	for i := range triples {
		for j := range triples[i] {
			b := AllBiomes[rng.IntN(BiomeCount)]
			triples[i][j] = squareTile(rng, b, AllAnimals[rng.IntN(AnimalCount)])
		}
	}
	return triples
}

// drawDeck shuffles a copy of full and keeps n tiles.
func drawDeck(full []Tile, n int, rng *rand.Rand) ([]Tile, error) {
	if n > len(full) {
		return nil, fmt.Errorf("%w: need %d tiles, deck holds %d", ErrInvalidDeck, n, len(full))
	}
	deck := append([]Tile(nil), full...)
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return deck[:n], nil
}
