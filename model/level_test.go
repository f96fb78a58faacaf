package model

import (
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"testing"
)

// TestLevel_RanksAndKeys verifies the documented rank and key of each level.
func TestLevel_RanksAndKeys(t *testing.T) {
	want := []struct {
		level Level
		rank  int
		key   string
	}{
		{Master, 0, "master"},
		{Debug, 10, "debug"},
		{Info, 20, "info"},
		{Warning, 30, "warning"},
		{Error, 40, "error"},
		{Critical, 50, "critical"},
	}
	for _, w := range want {
		require.Equal(t, w.rank, w.level.Rank())
		require.Equal(t, w.key, w.level.Key())
	}
	require.Equal(t, "WARNING", Warning.Name())
}

// TestParseLevel_Valid maps names to levels regardless of case.
func TestParseLevel_Valid(t *testing.T) {
	cases := map[string]Level{
		"debug":    Debug,
		"INFO":     Info,
		"Warning":  Warning,
		"error":    Error,
		"CRITICAL": Critical,
		"master":   Master,
	}
	for name, want := range cases {
		got, err := ParseLevel(name)
		require.NoError(t, err, name)
		require.Equal(t, want, got, name)
	}
}

// TestParseLevel_Invalid fails with ErrInvalidLevel.
func TestParseLevel_Invalid(t *testing.T) {
	for _, name := range []string{"", "invalid", "warn", "fatal"} {
		_, err := ParseLevel(name)
		require.ErrorIs(t, err, ErrInvalidLevel, name)
	}
}

// TestLevels_Ordered returns levels by ascending rank and a private copy.
func TestLevels_Ordered(t *testing.T) {
	ls := Levels()
	require.Len(t, ls, 6)
	for i := 1; i < len(ls); i++ {
		require.Less(t, ls[i-1].Rank(), ls[i].Rank())
	}

	ls[0] = Critical
	require.Equal(t, Master, Levels()[0])
}

// TestLevel_Zap round-trips record levels through zap severities.
func TestLevel_Zap(t *testing.T) {
	for _, l := range []Level{Debug, Info, Warning, Error, Critical} {
		got, ok := LevelFromZap(l.Zap())
		require.True(t, ok)
		require.Equal(t, l, got)
	}

	require.Equal(t, zapcore.InvalidLevel, Master.Zap())
	_, ok := LevelFromZap(zapcore.InvalidLevel)
	require.False(t, ok)

	got, ok := LevelFromZap(zapcore.FatalLevel)
	require.True(t, ok)
	require.Equal(t, Critical, got)
}
