package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/charmbracelet/log"
)

// Move is one turn's decision.
type Move struct {
	TileIndex   int
	AnimalIndex int
	Cell        Cell
	Rotation    int

	// PlaceAnimal is false when the player returns the animal to the bag.
	PlaceAnimal bool
	AnimalCell  Cell

	// SpendNatureToken pays for taking tile and animal from different slots.
	SpendNatureToken bool
}

// TurnView is what a Chooser sees. Board and Offers must not be modified.
type TurnView struct {
	Turn         int
	Player       string
	NatureTokens int
	Board        *Board
	Offers       [OfferSize]Offer
}

// Chooser supplies the player decisions the engine needs.
type Chooser interface {
	Choose(ctx context.Context, view TurnView) (Move, error)
	ChooseRedraw(ctx context.Context, species Animal) (bool, error)
	// ChooseTokensToDiscard returns offer slots whose animals the player pays
	// one nature token to redraw. An empty result skips the action.
	ChooseTokensToDiscard(ctx context.Context, view TurnView) ([]int, error)
}

type Option func(*GameManager)

func WithLogger(l *log.Logger) Option {
	return func(gm *GameManager) {
		gm.logger = l
	}
}

type GameManager struct {
	Config  GameConfig
	Players []*Player
	Scorers []WildlifeScorer
	Supply  *Supply

	chooser Chooser
	logger  *log.Logger

	turn    int
	current int
	over    bool
}

// NewGameManager validates cfg, deals the deck and seeds every habitat.
func NewGameManager(cfg GameConfig, chooser Chooser, opts ...Option) (*GameManager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	scorers, err := cfg.Scorers()
	if err != nil {
		return nil, err
	}

	gm := &GameManager{
		Config:  cfg,
		Scorers: scorers,
		chooser: chooser,
		logger:  log.Default(),
	}
	for _, opt := range opts {
		opt(gm)
	}

	rng := seededRNG(cfg.Seed)
	full, starts, err := loadDecks(cfg, rng)
	if err != nil {
		return nil, err
	}
	if len(starts) < len(cfg.PlayerNames) {
		return nil, fmt.Errorf("%w: %d start triples for %d players", ErrInvalidDeck, len(starts), len(cfg.PlayerNames))
	}
	deck, err := drawDeck(full, cfg.DeckSize(), rng)
	if err != nil {
		return nil, err
	}
	rng.Shuffle(len(starts), func(i, j int) {
		starts[i], starts[j] = starts[j], starts[i]
	})

	for i, name := range cfg.PlayerNames {
		p := NewPlayer(name, cfg.Grid, cfg.StartingNatureTokens())
		if err := p.Board.Seed(starts[i]); err != nil {
			return nil, err
		}
		gm.Players = append(gm.Players, p)
	}

	gm.Supply, err = newSupply(deck, NewTokenPool(), rng, gm.logger)
	if err != nil {
		return nil, err
	}

	gm.logger.Info("game set up",
		"mode", cfg.Mode,
		"grid", cfg.Grid,
		"players", len(gm.Players),
		"deck", len(deck),
		"seed", cfg.Seed,
	)
	return gm, nil
}

// loadDecks returns the full habitat deck and the start triples. Square games
// without deck files use generated decks.
func loadDecks(cfg GameConfig, rng *rand.Rand) ([]Tile, [][3]Tile, error) {
	if cfg.Grid == GridSquare && cfg.HabitatDeckPath == "" && cfg.StartDeckPath == "" {
		return GenerateSquareDeck(rng), GenerateSquareStartTiles(rng), nil
	}
	full, err := HabitatDeck(cfg.HabitatDeckPath)
	if err != nil {
		return nil, nil, fmt.Errorf("habitat deck: %w", err)
	}
	starts, err := StartTiles(cfg.StartDeckPath)
	if err != nil {
		return nil, nil, fmt.Errorf("start deck: %w", err)
	}
	return full, starts, nil
}

// Over reports whether the game has ended.
func (gm *GameManager) Over() bool {
	return gm.over
}

// Current is the player whose turn is next.
func (gm *GameManager) Current() *Player {
	return gm.Players[gm.current]
}

func (gm *GameManager) view() TurnView {
	p := gm.Current()
	return TurnView{
		Turn:         gm.turn + 1,
		Player:       p.Name,
		NatureTokens: p.NatureTokens,
		Board:        p.Board,
		Offers:       gm.Supply.Row,
	}
}

// PlayTurn runs one turn for the current player: overpopulation, any number
// of nature-token redraws while tokens last, then the chosen placement.
func (gm *GameManager) PlayTurn(ctx context.Context) error {
	if gm.over {
		return fmt.Errorf("%w: game is over", ErrInvalidMove)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	p := gm.Current()

	if err := gm.Supply.resolveOverpopulation(ctx, gm.chooser); err != nil {
		return err
	}

	for p.NatureTokens > 0 {
		discarded, err := gm.discardOffered(ctx, p)
		if err != nil {
			return err
		}
		if !discarded {
			break
		}
		if err := gm.Supply.resolveOverpopulation(ctx, gm.chooser); err != nil {
			return err
		}
	}

	move, err := gm.chooser.Choose(ctx, gm.view())
	if err != nil {
		return fmt.Errorf("choose move: %w", err)
	}
	if err := gm.validateMove(p, move); err != nil {
		return err
	}
	if err := gm.commit(p, move); err != nil {
		return err
	}

	gm.advance()
	return nil
}

// discardOffered asks for one nature-token redraw and reports whether the
// player took it.
func (gm *GameManager) discardOffered(ctx context.Context, p *Player) (bool, error) {
	slots, err := gm.chooser.ChooseTokensToDiscard(ctx, gm.view())
	if err != nil {
		return false, fmt.Errorf("choose discard: %w", err)
	}
	if len(slots) == 0 {
		return false, nil
	}

	seen := make(map[int]bool, len(slots))
	for _, slot := range slots {
		if slot < 0 || slot >= OfferSize || seen[slot] {
			return false, fmt.Errorf("%w: bad discard slot %d", ErrInvalidMove, slot)
		}
		seen[slot] = true
	}
	if err := p.spendNatureToken(); err != nil {
		return false, err
	}
	gm.logger.Info("nature token spent", "player", p.Name, "action", "redraw", "slots", slots)
	return true, gm.Supply.redrawAnimals(slots)
}

// validateMove checks a move in full before anything changes.
func (gm *GameManager) validateMove(p *Player, m Move) error {
	if m.TileIndex < 0 || m.TileIndex >= OfferSize || m.AnimalIndex < 0 || m.AnimalIndex >= OfferSize {
		return fmt.Errorf("%w: offer index out of range (tile %d, animal %d)", ErrInvalidMove, m.TileIndex, m.AnimalIndex)
	}
	if m.TileIndex != m.AnimalIndex && !m.SpendNatureToken {
		return fmt.Errorf("%w: split pick needs a nature token", ErrInvalidMove)
	}
	if m.SpendNatureToken {
		if m.TileIndex == m.AnimalIndex {
			return fmt.Errorf("%w: nature token spent on a matching pick", ErrInvalidMove)
		}
		if p.NatureTokens <= 0 {
			return fmt.Errorf("%w: %s has no nature tokens", ErrInvalidMove, p.Name)
		}
	}

	tile := gm.Supply.Row[m.TileIndex].Tile
	if err := p.Board.CanPlace(m.Cell, tile, m.Rotation); err != nil {
		return err
	}
	if !m.PlaceAnimal {
		return nil
	}

	animal := gm.Supply.Row[m.AnimalIndex].Animal
	if m.AnimalCell == m.Cell {
		if !tile.Supports(animal) {
			return fmt.Errorf("%w: %v not allowed on %v", ErrInvalidAnimalAssignment, animal, tile)
		}
		return nil
	}
	return p.Board.CanPlaceAnimal(m.AnimalCell, animal)
}

func (gm *GameManager) commit(p *Player, m Move) error {
	offer := Offer{
		Tile:   gm.Supply.Row[m.TileIndex].Tile,
		Animal: gm.Supply.Row[m.AnimalIndex].Animal,
	}
	if m.SpendNatureToken {
		if err := p.spendNatureToken(); err != nil {
			return err
		}
		gm.logger.Info("nature token spent", "player", p.Name, "action", "split pick")
	}

	if err := p.Board.Place(m.Cell, offer.Tile, m.Rotation); err != nil {
		return err
	}
	if m.PlaceAnimal {
		if err := p.PlaceAnimal(m.AnimalCell, offer.Animal); err != nil {
			return err
		}
	} else {
		gm.Supply.Pool.Return(offer.Animal)
	}

	gm.logger.Info("turn",
		"turn", gm.turn+1,
		"player", p.Name,
		"cell", m.Cell,
		"tile", offer.Tile,
		"animal", offer.Animal,
		"placed", m.PlaceAnimal,
	)

	if err := gm.Supply.refill(m.TileIndex, m.AnimalIndex); err != nil {
		if errors.Is(err, ErrDeckExhausted) || errors.Is(err, ErrSupplyExhausted) {
			gm.logger.Info("supply exhausted", "turn", gm.turn+1, "reason", err)
			gm.over = true
			return nil
		}
		return err
	}
	return nil
}

func (gm *GameManager) advance() {
	gm.current++
	if gm.current < len(gm.Players) {
		return
	}
	gm.current = 0
	gm.turn++
	if gm.turn >= gm.Config.turnCount() {
		gm.over = true
	}
}

// Run plays turns until the game is over and returns the final tally.
func (gm *GameManager) Run(ctx context.Context) (Result, error) {
	for !gm.over {
		if err := gm.PlayTurn(ctx); err != nil {
			return Result{}, err
		}
	}
	return gm.Finish(), nil
}

// Finish scores every player.
func (gm *GameManager) Finish() Result {
	gm.over = true
	res := Tally(gm.Players, gm.Scorers)
	for _, st := range res.Standings {
		gm.logger.Info("final score",
			"player", st.Player.Name,
			"biomes", st.Biomes,
			"wildlife", st.WildlifeTotal(),
			"majority", st.Majority,
			"nature", st.NatureTokens,
			"total", st.Total,
		)
	}
	gm.logger.Info("winners", "names", res.WinnerNames())
	return res
}
