package event

import (
	"math"
	"time"

	"taskquest/internal/config"
	"taskquest/internal/datekey"
	"taskquest/internal/player"
)

// One-per-day gates. Each compares a persisted "last used" day key
// against today's key; they reset by value on the next calendar day, no
// cleanup required.

// CanClaimEventBonus reports whether the daily event bonus is still
// unclaimed today.
func CanClaimEventBonus(p player.Player, today datekey.Key) bool {
	return p.LastEventClaim != today
}

// CanUseGachaDiscount reports whether the first-pack discount is still
// available today.
func CanUseGachaDiscount(p player.Player, today datekey.Key) bool {
	return p.LastGachaDiscount != today
}

// CanUseFreeIdleClaim reports whether today's free idle claim is unused.
func CanUseFreeIdleClaim(p player.Player, today datekey.Key) bool {
	return p.LastFreeIdleClaim != today
}

// ClaimReward is the daily event bonus in one of four shapes. Exactly
// one shape is populated; the others stay zero.
type ClaimReward struct {
	Coins         int
	Dust          int
	Energy        float64
	ExtendBoostID string
	ExtendBy      time.Duration
}

// DailyClaimReward computes today's claim by the daily event's theme.
// Callers must gate with CanClaimEventBonus first; this function only
// computes the reward. A themed event never yields a zero or negative
// reward: the boost theme falls back to flat coins when no coin boost is
// active, and the energy theme clamps to cap headroom but the default
// coin shape bottoms out at 1.
func DailyClaimReward(cfg config.Economy, events []Event, p player.Player, now time.Time) ClaimReward {
	daily := Event{}
	for _, ev := range events {
		if ev.Kind == KindDaily {
			daily = ev
			break
		}
	}
	bundle := Stack(events)

	switch daily.Theme {
	case ThemeGacha:
		return ClaimReward{Dust: cfg.Claim.DustAmount}

	case ThemeBoost:
		for _, b := range p.Boosts {
			if b.Active(now) && b.CoinMultiplier > 1 {
				return ClaimReward{
					ExtendBoostID: b.ID,
					ExtendBy:      time.Duration(cfg.Claim.BoostExtendMin) * time.Minute,
				}
			}
		}
		return ClaimReward{Coins: cfg.Claim.BoostFallback}

	case ThemeEnergy:
		headroom := float64(p.EffectiveEnergyCap(now, bundle.EnergyCapBonus)) - p.Energy
		if headroom < 0 {
			headroom = 0
		}
		grant := math.Min(headroom, cfg.Claim.EnergyGrantMax)
		return ClaimReward{Energy: grant}

	default:
		coins := int(math.Floor(float64(cfg.Claim.CoinBase) * bundle.TaskCoinMultiplier))
		if coins < 1 {
			coins = 1
		}
		return ClaimReward{Coins: coins}
	}
}

// EventEconomy is the day's balance adjustments derived from the
// stacked event bundle.
type EventEconomy struct {
	Bundle             Bundle
	CoinsPerMinuteMult float64
	EnergyCapBonus     int
	BoostPriceMult     float64
}

// EconomyWithEvents stacks the day's active events over the static
// balance table.
func EconomyWithEvents(cfg config.Economy, key datekey.Key) EventEconomy {
	b := Stack(ActiveEvents(key))
	return EventEconomy{
		Bundle:             b,
		CoinsPerMinuteMult: b.IdleCpmMultiplier,
		EnergyCapBonus:     b.EnergyCapBonus,
		BoostPriceMult:     b.BoostPriceMultiplier,
	}
}
