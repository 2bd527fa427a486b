package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/georgehyde-dot/dynamic-pathfinding/internal/config"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := config.Parse(nil, 1)
	require.NoError(t, err)
	require.Equal(t, 20, cfg.GridSize)
	require.Equal(t, config.AStar, cfg.Algorithm)
	require.Equal(t, "simulation_results.csv", cfg.OutputFile)
}

func TestParseUnknownAlgorithm(t *testing.T) {
	_, err := config.Parse([]string{"--algorithm", "bogus"}, 1)
	require.ErrorIs(t, err, config.ErrAlgorithmUnknown)
}

func TestParseRejectsInvertedWallRange(t *testing.T) {
	_, err := config.Parse([]string{"--min-walls", "40", "--max-walls", "10"}, 1)
	require.ErrorIs(t, err, config.ErrConfigInvalid)
}

func TestParseBatchModeRequiresPositiveSimulationCount(t *testing.T) {
	_, err := config.Parse([]string{"--batch-mode", "--num-simulations", "0"}, 1)
	require.ErrorIs(t, err, config.ErrConfigInvalid)
}
