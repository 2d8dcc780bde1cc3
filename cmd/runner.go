package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/Mshel/cascadia/internal/game"
	"github.com/Mshel/cascadia/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Error("game failed", "error", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("cascadia", flag.ContinueOnError)
	players := fs.Int("players", 2, "number of players (2-4)")
	names := fs.String("names", "", "comma separated player names")
	mode := fs.String("mode", string(game.ModeCards), "scoring mode: family, intermediate or cards")
	grid := fs.String("grid", "hex", "grid kind: hex or square")
	cards := fs.String("cards", "1,1,1,1,1", "card patterns for fox,salmon,bear,elk,buzzard")
	seed := fs.Int64("seed", 0, "random seed (0 picks one from the clock)")
	turns := fs.Int("turns", game.DefaultTurnCount, "turns per player")
	deckDir := fs.String("deck-dir", os.Getenv("CASCADIA_DECK_DIR"), "directory holding HabitatCards.txt and StartHabitatCards.txt")
	useTUI := fs.Bool("tui", false, "show the scoreboard in an interactive viewer")
	debug := fs.Bool("debug", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	cfg, err := buildConfig(*players, *names, *mode, *grid, *cards, *seed, *turns, *deckDir)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gm, err := game.NewGameManager(cfg, newAutopilot(cfg.Seed))
	if err != nil {
		return err
	}
	res, err := gm.Run(ctx)
	if err != nil {
		return err
	}

	if *useTUI {
		_, err := tea.NewProgram(ui.NewScoreboardModel(res), tea.WithAltScreen()).Run()
		return err
	}
	fmt.Println(ui.RenderScoreboard(res))
	return nil
}

func buildConfig(players int, names, mode, grid, cards string, seed int64, turns int, deckDir string) (game.GameConfig, error) {
	cfg := game.GameConfig{
		Mode:  game.ScoringMode(mode),
		Turns: turns,
		Seed:  seed,
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	g, err := game.ParseGridKind(grid)
	if err != nil {
		return cfg, err
	}
	cfg.Grid = g

	if names != "" {
		for _, n := range strings.Split(names, ",") {
			cfg.PlayerNames = append(cfg.PlayerNames, strings.TrimSpace(n))
		}
	} else {
		for i := 1; i <= players; i++ {
			cfg.PlayerNames = append(cfg.PlayerNames, fmt.Sprintf("Player %d", i))
		}
	}

	if cfg.Mode == game.ModeCards {
		cfg.Cards, err = parseCards(cards)
		if err != nil {
			return cfg, err
		}
	}

	if deckDir != "" {
		cfg.HabitatDeckPath = filepath.Join(deckDir, "HabitatCards.txt")
		cfg.StartDeckPath = filepath.Join(deckDir, "StartHabitatCards.txt")
	}

	return cfg, cfg.Validate()
}

func parseCards(s string) (game.CardPatterns, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 5 {
		return game.CardPatterns{}, fmt.Errorf("%w: -cards needs 5 patterns, got %q", game.ErrInvalidConfig, s)
	}
	var patterns [5]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return game.CardPatterns{}, fmt.Errorf("%w: bad card pattern %q", game.ErrInvalidConfig, p)
		}
		patterns[i] = n
	}
	return game.CardPatterns{
		Fox:     patterns[0],
		Salmon:  patterns[1],
		Bear:    patterns[2],
		Elk:     patterns[3],
		Buzzard: patterns[4],
	}, nil
}
