package shop

import (
	"math"
	"time"

	"taskquest/internal/config"
	"taskquest/internal/event"
	"taskquest/internal/player"
)

// BoostPrice is the catalog price under today's event bundle, floored,
// never below 1 coin. Unknown ids return ok = false.
func BoostPrice(cfg config.Economy, boostID string, bundle event.Bundle) (int, bool) {
	def, ok := cfg.BoostByID(boostID)
	if !ok {
		return 0, false
	}
	mult := bundle.BoostPriceMultiplier
	if mult <= 0 {
		mult = 1
	}
	price := int(math.Floor(float64(def.Price) * mult))
	if price < 1 {
		price = 1
	}
	return price, true
}

// CanBuyBoost reports whether the player affords the boost today.
func CanBuyBoost(cfg config.Economy, p player.Player, boostID string, bundle event.Bundle) bool {
	price, ok := BoostPrice(cfg, boostID, bundle)
	return ok && p.Coins >= price
}

// ApplyBoostPurchase deducts the price and grants the boost. Timed
// boosts are appended with an expiry of now plus the catalog duration
// scaled by the talent duration multiplier; instant boosts apply on the
// spot (energy top-up clamped to the effective cap) and are never
// stored. Unknown ids return the input unchanged. Callers gate with
// CanBuyBoost first; an unaffordable purchase also passes through.
func ApplyBoostPurchase(cfg config.Economy, p player.Player, boostID string, now time.Time, durationMult float64, bundle event.Bundle) player.Player {
	def, ok := cfg.BoostByID(boostID)
	if !ok {
		return p
	}
	price, _ := BoostPrice(cfg, boostID, bundle)
	if p.Coins < price {
		return p
	}
	p.Coins -= price

	if def.Instant {
		eff := float64(p.EffectiveEnergyCap(now, bundle.EnergyCapBonus))
		p.Energy = math.Min(p.Energy+def.InstantEnergy, eff)
		return p
	}

	if durationMult <= 0 {
		durationMult = 1
	}
	dur := time.Duration(float64(def.DurationMin)*durationMult) * time.Minute
	boosts := make([]player.Boost, len(p.Boosts), len(p.Boosts)+1)
	copy(boosts, p.Boosts)
	p.Boosts = append(boosts, player.Boost{
		ID:             def.ID,
		ExpiresAt:      now.Add(dur),
		CoinMultiplier: def.CoinMultiplier,
		EnergyCapBonus: def.EnergyCapBonus,
	})
	return p
}
