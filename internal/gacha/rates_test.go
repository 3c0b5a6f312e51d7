package gacha

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskquest/internal/config"
)

func tableSum(t RateTable) float64 {
	total := 0.0
	for _, w := range t {
		total += w
	}
	return total
}

func baseRates() RateTable {
	return RateTable(config.Default().BaseRates)
}

func TestNormalize(t *testing.T) {
	t.Run("arbitrary weights sum to one", func(t *testing.T) {
		got := Normalize(RateTable{
			config.RarityCommon: 3,
			config.RarityRare:   1,
			config.RarityEpic:   0.5,
		})
		assert.InDelta(t, 1.0, tableSum(got), 1e-9)
		assert.InDelta(t, 3.0/4.5, got[config.RarityCommon], 1e-9)
	})

	t.Run("zero table returned unchanged", func(t *testing.T) {
		got := Normalize(RateTable{config.RarityCommon: 0, config.RarityRare: 0})
		assert.Equal(t, 0.0, got[config.RarityCommon])
		assert.Equal(t, 0.0, got[config.RarityRare])
	})

	t.Run("negative weights treated as zero", func(t *testing.T) {
		got := Normalize(RateTable{config.RarityCommon: -1, config.RarityRare: 1})
		assert.Equal(t, 0.0, got[config.RarityCommon])
		assert.InDelta(t, 1.0, got[config.RarityRare], 1e-9)
	})
}

func TestApplyRareBonus(t *testing.T) {
	t.Run("stays on the simplex for any bonus up to the clamp", func(t *testing.T) {
		for _, bonus := range []float64{0, 0.01, 0.04, 0.10, 0.15} {
			got := ApplyRareBonus(baseRates(), bonus)
			assert.InDelta(t, 1.0, tableSum(got), 1e-9, "bonus %v", bonus)
		}
	})

	t.Run("rare share grows monotonically with bonus", func(t *testing.T) {
		prev := -1.0
		for _, bonus := range []float64{0, 0.02, 0.04, 0.08, 0.15} {
			share := ApplyRareBonus(baseRates(), bonus)[config.RarityRare]
			require.Greater(t, share, prev, "bonus %v", bonus)
			prev = share
		}
	})

	t.Run("bonus absorbed proportionally from other tiers", func(t *testing.T) {
		base := baseRates()
		got := ApplyRareBonus(base, 0.04)
		assert.Greater(t, got[config.RarityRare], base[config.RarityRare])
		assert.Less(t, got[config.RarityCommon], base[config.RarityCommon])
		assert.Less(t, got[config.RarityLegendary], base[config.RarityLegendary])
	})

	t.Run("negative bonus is a no-op", func(t *testing.T) {
		got := ApplyRareBonus(baseRates(), -0.5)
		assert.InDelta(t, baseRates()[config.RarityRare], got[config.RarityRare], 1e-9)
	})
}
