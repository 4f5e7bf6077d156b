package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	for input, want := range map[string]Mode{
		"global": ModeGlobal,
		"NW":     ModeGlobal,
		"prefix": ModePrefix,
		"shw":    ModePrefix,
		" infix": ModeInfix,
		"HW":     ModeInfix,
	} {
		mode, err := ParseMode(input)
		require.NoError(t, err, "input %q", input)
		require.Equal(t, want, mode, "input %q", input)
	}

	_, err := ParseMode("sideways")
	require.Error(t, err)
}

func TestParseTask(t *testing.T) {
	for input, want := range map[string]Task{
		"distance":  TaskDistance,
		"locations": TaskLocations,
		"loc":       TaskLocations,
		"Path":      TaskPath,
	} {
		task, err := ParseTask(input)
		require.NoError(t, err, "input %q", input)
		require.Equal(t, want, task, "input %q", input)
	}

	_, err := ParseTask("everything")
	require.Error(t, err)
}

func TestParseEqualityPair(t *testing.T) {
	pair, err := ParseEqualityPair("A=N")
	require.NoError(t, err)
	require.Equal(t, EqualityPair{First: 'A', Second: 'N'}, pair)

	for _, bad := range []string{"", "A", "AN", "A=NX", "=N", "A=N=X"} {
		_, err := ParseEqualityPair(bad)
		require.Error(t, err, "input %q", bad)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.Equal(t, -1, cfg.K)
	require.Equal(t, ModeGlobal, cfg.Mode)
	require.Equal(t, TaskDistance, cfg.Task)
	require.Empty(t, cfg.Equalities)
}

func TestAlignResultFound(t *testing.T) {
	require.True(t, AlignResult{EditDistance: 0}.Found())
	require.False(t, AlignResult{EditDistance: -1}.Found())
}
