package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() GameConfig {
	return GameConfig{
		PlayerNames: []string{"ana", "bo"},
		Mode:        ModeCards,
		Grid:        GridHex,
		Cards:       CardPatterns{Fox: 1, Salmon: 2, Bear: 3, Elk: 4, Buzzard: 1},
		Seed:        7,
	}
}

func TestGameConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*GameConfig)
		wantErr bool
	}{
		{"valid cards", func(*GameConfig) {}, false},
		{"valid family square", func(c *GameConfig) { c.Mode = ModeFamily; c.Grid = GridSquare }, false},
		{"valid intermediate four players", func(c *GameConfig) {
			c.Mode = ModeIntermediate
			c.PlayerNames = []string{"a", "b", "c", "d"}
		}, false},
		{"one player", func(c *GameConfig) { c.PlayerNames = []string{"solo"} }, true},
		{"five players", func(c *GameConfig) { c.PlayerNames = []string{"a", "b", "c", "d", "e"} }, true},
		{"duplicate names", func(c *GameConfig) { c.PlayerNames = []string{"ana", "ana"} }, true},
		{"empty name", func(c *GameConfig) { c.PlayerNames = []string{"ana", ""} }, true},
		{"unknown mode", func(c *GameConfig) { c.Mode = "solo" }, true},
		{"unknown grid", func(c *GameConfig) { c.Grid = 0 }, true},
		{"negative turns", func(c *GameConfig) { c.Turns = -1 }, true},
		{"card pattern zero", func(c *GameConfig) { c.Cards.Elk = 0 }, true},
		{"card pattern too high", func(c *GameConfig) { c.Cards.Fox = 5 }, true},
		{"patterns ignored outside cards mode", func(c *GameConfig) { c.Mode = ModeFamily; c.Cards = CardPatterns{} }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestGameConfigScorers(t *testing.T) {
	cfg := validConfig()
	scorers, err := cfg.Scorers()
	require.NoError(t, err)

	names := make([]string, len(scorers))
	for i, s := range scorers {
		names[i] = s.Name()
	}
	assert.Equal(t, []string{"Fox 1", "Salmon 2", "Bear 3", "Elk 4", "Buzzard 1"}, names)

	cfg.Mode = ModeFamily
	scorers, err = cfg.Scorers()
	require.NoError(t, err)
	require.Len(t, scorers, 1)
	assert.Equal(t, "Family", scorers[0].Name())
}

func TestGameConfigDefaults(t *testing.T) {
	cfg := validConfig()
	assert.Equal(t, DefaultTurnCount, cfg.turnCount())
	assert.Equal(t, 43, cfg.DeckSize())
	assert.Equal(t, CardNatureTokens, cfg.StartingNatureTokens())

	cfg.Mode = ModeIntermediate
	cfg.Turns = 5
	assert.Equal(t, 5, cfg.turnCount())
	assert.Zero(t, cfg.StartingNatureTokens())
}
