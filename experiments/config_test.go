package experiments

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("parses a full config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bench.yaml")
		data := `
games: 6
agents:
  - id: 1
    kind: minimax
    depth: 4
  - id: 2
    kind: mcts
    simulations: 500
    exploration: 1.0
    seed: 42
  - id: 3
    kind: random
matchups:
  - [1, 2]
  - [2, 3]
`
		require.NoError(t, os.WriteFile(path, []byte(data), 0644))

		cfg, err := LoadConfig(path)

		require.NoError(t, err)
		require.Equal(t, 6, cfg.Games)
		require.Len(t, cfg.Agents, 3)
		require.Equal(t, "mcts", cfg.Agents[1].Kind)
		require.Equal(t, 500, cfg.Agents[1].Simulations)
		require.Equal(t, [][2]int{{1, 2}, {2, 3}}, cfg.Matchups)
	})

	t.Run("defaults the game count", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bench.yaml")
		data := `
agents:
  - id: 1
    kind: random
matchups:
  - [1, 1]
`
		require.NoError(t, os.WriteFile(path, []byte(data), 0644))

		cfg, err := LoadConfig(path)

		require.NoError(t, err)
		require.Equal(t, DefaultGames, cfg.Games)
	})

	t.Run("rejects matchups naming unknown agents", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bench.yaml")
		data := `
agents:
  - id: 1
    kind: random
matchups:
  - [1, 9]
`
		require.NoError(t, os.WriteFile(path, []byte(data), 0644))

		_, err := LoadConfig(path)
		require.Error(t, err)
	})

	t.Run("rejects duplicate agent ids", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bench.yaml")
		data := `
agents:
  - id: 1
    kind: random
  - id: 1
    kind: mcts
matchups: []
`
		require.NoError(t, os.WriteFile(path, []byte(data), 0644))

		_, err := LoadConfig(path)
		require.Error(t, err)
	})

	t.Run("missing file errors", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.validate())
	require.NotEmpty(t, cfg.Matchups)
}

func TestBuildAgent(t *testing.T) {
	cfg := DefaultConfig()
	for _, a := range cfg.Agents {
		built, err := BuildAgent(a)
		require.NoError(t, err, "agent %d (%s)", a.ID, a.Kind)
		require.NotNil(t, built)
	}

	t.Run("unknown kind errors", func(t *testing.T) {
		_, err := BuildAgent(cfg.Agents[0])
		require.NoError(t, err)

		bad := cfg.Agents[0]
		bad.Kind = "alphazero"
		_, err = BuildAgent(bad)
		require.Error(t, err)
	})
}
