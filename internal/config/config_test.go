package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, int64(0), cfg.Seed)
	assert.Equal(t, 1, cfg.Difficulty)
	assert.Equal(t, 1.0, cfg.SpeedModifier)
	assert.False(t, cfg.Cheats)
	assert.Equal(t, 100*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, 2*time.Second, cfg.EventInterval)
	assert.Equal(t, "textquest.log", cfg.LogOutput)
	assert.False(t, cfg.TelemetryEnabled)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TEXTQUEST_SEED", "42")
	t.Setenv("TEXTQUEST_DIFFICULTY", "2")
	t.Setenv("TEXTQUEST_SPEED_MODIFIER", "1.5")
	t.Setenv("TEXTQUEST_CHEATS", "true")
	t.Setenv("TEXTQUEST_TICK_INTERVAL", "50ms")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 2, cfg.Difficulty)
	assert.Equal(t, 1.5, cfg.SpeedModifier)
	assert.True(t, cfg.Cheats)
	assert.Equal(t, 50*time.Millisecond, cfg.TickInterval)
}

func TestLoadRejectsOutOfRange(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"TEXTQUEST_DIFFICULTY", "3"},
		{"TEXTQUEST_DIFFICULTY", "-1"},
		{"TEXTQUEST_SPEED_MODIFIER", "0"},
		{"TEXTQUEST_SPEED_MODIFIER", "0.01"},
		{"TEXTQUEST_SPEED_MODIFIER", "1e-10"},
		{"TEXTQUEST_SPEED_MODIFIER", "11"},
		{"TEXTQUEST_TICK_INTERVAL", "0s"},
		{"TEXTQUEST_SEED", "not-a-number"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestSpeedModifierBounds(t *testing.T) {
	for _, v := range []string{"0.1", "10"} {
		t.Run(v, func(t *testing.T) {
			t.Setenv("TEXTQUEST_SPEED_MODIFIER", v)
			_, err := Load()
			assert.NoError(t, err)
		})
	}
}
