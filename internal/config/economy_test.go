package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	t.Run("base rates sum to one", func(t *testing.T) {
		total := 0.0
		for _, r := range RarityOrder {
			total += cfg.BaseRates[r]
		}
		assert.InDelta(t, 1.0, total, 1e-9)
	})

	t.Run("zones are sequential", func(t *testing.T) {
		for i, z := range cfg.Zones {
			assert.Equal(t, i+1, z.ID)
		}
	})

	t.Run("catalog lookups", func(t *testing.T) {
		z, ok := cfg.ZoneByID(6)
		require.True(t, ok)
		assert.Equal(t, 220, z.RequiredPower)

		_, ok = cfg.ZoneByID(7)
		assert.False(t, ok)

		assert.Equal(t, RarityLegendary, cfg.CharacterRarity("dragon"))
		assert.Equal(t, RarityCommon, cfg.CharacterRarity("nobody"))
	})
}

func TestValidate(t *testing.T) {
	t.Run("negative rate rejected", func(t *testing.T) {
		cfg := Default()
		cfg.BaseRates[RarityRare] = -0.1
		assert.Error(t, cfg.Validate())
	})

	t.Run("gapped zone ids rejected", func(t *testing.T) {
		cfg := Default()
		cfg.Zones[2].ID = 9
		assert.Error(t, cfg.Validate())
	})

	t.Run("pity below min rejected", func(t *testing.T) {
		cfg := Default()
		cfg.PityDefault = 10
		assert.Error(t, cfg.Validate())
	})
}

func TestOverlay(t *testing.T) {
	t.Run("scalar override keeps other defaults", func(t *testing.T) {
		cfg, err := Overlay([]byte("daily_goal: 5\ncoin_cap: 500\n"))
		require.NoError(t, err)
		assert.Equal(t, 5, cfg.DailyGoal)
		assert.Equal(t, 500, cfg.CoinCap)
		assert.Equal(t, Default().PityDefault, cfg.PityDefault)
		assert.Len(t, cfg.Zones, 6)
	})

	t.Run("map override merges keys", func(t *testing.T) {
		cfg, err := Overlay([]byte("rarity_idle_bonus:\n  legendary: 0.12\n"))
		require.NoError(t, err)
		assert.Equal(t, 0.12, cfg.RarityIdleBonus[RarityLegendary])
		assert.Equal(t, 0.05, cfg.RarityIdleBonus[RarityCommon])
	})

	t.Run("invalid overlay rejected", func(t *testing.T) {
		_, err := Overlay([]byte("max_idle_minutes: -5\n"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml rejected", func(t *testing.T) {
		_, err := Overlay([]byte("daily_goal: notanumber"))
		assert.Error(t, err)
	})
}
