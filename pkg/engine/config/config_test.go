package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown logic", func(c *Config) { c.SMLogic = "casual" }},
		{"unknown keysanity", func(c *Config) { c.Keysanity = "some" }},
		{"unknown placement rule", func(c *Config) { c.PlacementRule = "nowhere" }},
		{"too many crystals", func(c *Config) { c.GanonCrystals = 7 }},
		{"zero attempts", func(c *Config) { c.MaxAttempts = 0 }},
		{"multiworld alone", func(c *Config) { c.Multiworld = true; c.Players = []string{"solo"} }},
		{"players without multiworld", func(c *Config) { c.Players = []string{"a", "b"} }},
		{"duplicate players", func(c *Config) { c.Multiworld = true; c.Players = []string{"Ann", "ann"} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, IsConfigurationError(err), "Validate() = %v, want *ConfigurationError", err)
		})
	}
}

func TestTricksAreIndependentToggles(t *testing.T) {
	cfg := Default()
	cfg.Logic.InfiniteBombJump = true
	assert.Equal(t, Normal, cfg.SMLogic)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "smz3.yaml")
	body := "seed: hello\nsmLogic: hard\nkeysanity: both\nlogic:\n  infiniteBombJump: true\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	t.Setenv("SMZ3_MAX_ATTEMPTS", "5")
	t.Setenv("SMZ3_LOGIC_PREVENT_SCREW_ATTACK_SOFT_LOCK", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", cfg.Seed)
	assert.Equal(t, Hard, cfg.SMLogic)
	assert.Equal(t, Normal, cfg.Z3Logic)
	assert.True(t, cfg.SMKeysanity())
	assert.True(t, cfg.Z3Keysanity())
	assert.True(t, cfg.Logic.InfiniteBombJump)
	assert.True(t, cfg.Logic.PreventScrewAttackSoftLock)
	assert.Equal(t, 5, cfg.MaxAttempts)
	assert.Equal(t, 4, cfg.GanonCrystals)
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: [unterminated"), 0o600))
	_, err := Load(path)
	assert.True(t, IsConfigurationError(err))
}

func TestSeedValue(t *testing.T) {
	cfg := Default()

	cfg.Seed = "12345"
	n, s, err := cfg.SeedValue()
	require.NoError(t, err)
	assert.Equal(t, int64(12345), n)
	assert.Equal(t, "12345", s)

	cfg.Seed = "test"
	a, _, err := cfg.SeedValue()
	require.NoError(t, err)
	b, _, _ := cfg.SeedValue()
	assert.Equal(t, a, b)
	// FNV-1a 64 of "test"
	assert.Equal(t, int64(-439409999022904539), a)

	cfg.Seed = ""
	r, rs, err := cfg.SeedValue()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, r, int64(0))
	assert.NotEmpty(t, rs)
}

func TestKeysanityModes(t *testing.T) {
	cfg := Default()
	assert.False(t, cfg.SMKeysanity())
	assert.False(t, cfg.Z3Keysanity())
	cfg.Keysanity = KeysanityZelda
	assert.False(t, cfg.SMKeysanity())
	assert.True(t, cfg.Z3Keysanity())
	assert.Equal(t, []string{"Player"}, cfg.PlayerNames())
}
