package idle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"taskquest/internal/config"
	"taskquest/internal/player"
)

func TestTeamMultiplier(t *testing.T) {
	cfg := config.Default()

	t.Run("empty team is identity", func(t *testing.T) {
		assert.Equal(t, 1.0, TeamMultiplier(nil, nil, cfg))
		assert.Equal(t, 1.0, TeamMultiplier([]string{}, map[string]int{}, cfg))
	})

	t.Run("single character at stage one", func(t *testing.T) {
		// dragon is legendary: +0.10 per stage
		got := TeamMultiplier([]string{"dragon"}, nil, cfg)
		assert.InDelta(t, 1.10, got, 1e-9)
	})

	t.Run("stage scales the contribution", func(t *testing.T) {
		got := TeamMultiplier([]string{"dragon"}, map[string]int{"dragon": 3}, cfg)
		assert.InDelta(t, 1.30, got, 1e-9)
	})

	t.Run("contributions average, not sum", func(t *testing.T) {
		solo := TeamMultiplier([]string{"dragon"}, nil, cfg)
		// padding the team with commons dilutes instead of stacking
		crowd := TeamMultiplier([]string{"dragon", "scout", "miner", "archer"}, nil, cfg)
		assert.Less(t, crowd, solo)
		assert.Greater(t, crowd, 1.0)
	})

	t.Run("unknown characters count as common", func(t *testing.T) {
		got := TeamMultiplier([]string{"mystery"}, nil, cfg)
		assert.InDelta(t, 1.05, got, 1e-9)
	})
}

func TestTeamPowerScore(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, 0, TeamPowerScore(nil, nil, cfg))
	// legendary weight 30 * stage 2 + common weight 5 * stage 1
	got := TeamPowerScore([]string{"dragon", "scout"}, map[string]int{"dragon": 2}, cfg)
	assert.Equal(t, 65, got)
}

func TestSettle(t *testing.T) {
	now := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)

	t.Run("first tick records anchor only", func(t *testing.T) {
		res := Settle(Input{Now: now, LastTickAt: nil, Energy: 120, BaseCpm: 5, Multiplier: 3})
		assert.Equal(t, 0, res.CoinsEarned)
		assert.Equal(t, 120.0, res.NewEnergy)
		assert.Equal(t, now, res.NewLastTickAt)
	})

	t.Run("elapsed time clamps at 180 minutes", func(t *testing.T) {
		last := now.Add(-300 * time.Minute)
		res := Settle(Input{Now: now, LastTickAt: &last, Energy: 1000, BaseCpm: 1, Multiplier: 1})
		assert.Equal(t, 180.0, res.MinutesUsed)
		assert.Equal(t, 180, res.CoinsEarned)
		assert.Equal(t, 820.0, res.NewEnergy)
	})

	t.Run("energy limits usable minutes", func(t *testing.T) {
		last := now.Add(-60 * time.Minute)
		res := Settle(Input{Now: now, LastTickAt: &last, Energy: 20, BaseCpm: 2, Multiplier: 1})
		assert.Equal(t, 20.0, res.MinutesUsed)
		assert.Equal(t, 40, res.CoinsEarned)
		assert.Equal(t, 0.0, res.NewEnergy)
	})

	t.Run("zero energy still moves the anchor", func(t *testing.T) {
		last := now.Add(-60 * time.Minute)
		res := Settle(Input{Now: now, LastTickAt: &last, Energy: 0, BaseCpm: 2, Multiplier: 1})
		assert.Equal(t, 0, res.CoinsEarned)
		assert.Equal(t, now, res.NewLastTickAt)
	})

	t.Run("strongest boost multiplies, floor applies", func(t *testing.T) {
		last := now.Add(-10 * time.Minute)
		boosts := []player.Boost{
			{ID: "weak", ExpiresAt: now.Add(time.Hour), CoinMultiplier: 1.5},
			{ID: "strong", ExpiresAt: now.Add(time.Hour), CoinMultiplier: 2},
			{ID: "gone", ExpiresAt: now.Add(-time.Hour), CoinMultiplier: 10},
		}
		res := Settle(Input{Now: now, LastTickAt: &last, Energy: 100, BaseCpm: 1.3, Multiplier: 1, ActiveBoosts: boosts})
		// floor(10 * 1.3 * 2) = 26
		assert.Equal(t, 26, res.CoinsEarned)
	})

	t.Run("clock skew never earns negative", func(t *testing.T) {
		last := now.Add(30 * time.Minute)
		res := Settle(Input{Now: now, LastTickAt: &last, Energy: 50, BaseCpm: 2, Multiplier: 1})
		assert.Equal(t, 0, res.CoinsEarned)
		assert.Equal(t, 50.0, res.NewEnergy)
	})

	t.Run("zero multiplier treated as identity", func(t *testing.T) {
		last := now.Add(-5 * time.Minute)
		res := Settle(Input{Now: now, LastTickAt: &last, Energy: 50, BaseCpm: 2})
		assert.Equal(t, 10, res.CoinsEarned)
	})
}
