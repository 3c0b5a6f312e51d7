package progression

import (
	"taskquest/internal/config"
	"taskquest/internal/player"
)

// CanPrestige reports prestige eligibility: final zone reached and a
// high enough power score. A zone argument of 0 falls back to the
// player's current zone.
func CanPrestige(cfg config.Economy, p player.Player, powerScore, zone int) bool {
	if zone <= 0 {
		zone = p.CurrentZone
	}
	return zone >= cfg.PrestigeMinZone && powerScore >= cfg.PrestigeMinPower
}

// EssenceGain is the essence earned for prestiging at a given power
// score: floor(power / divisor), zero below the divisor.
func EssenceGain(cfg config.Economy, powerScore int) int {
	if powerScore < 0 || cfg.EssenceDivisor <= 0 {
		return 0
	}
	return powerScore / cfg.EssenceDivisor
}

// GlobalMultiplier converts cumulative essence into the permanent
// income multiplier, never below 1.0.
func GlobalMultiplier(cfg config.Economy, essence int) float64 {
	if essence < 0 {
		return 1
	}
	return 1 + float64(essence)*cfg.EssenceMultStep
}

// ApplyPrestige performs the asymmetric reset: the economy restarts
// (coins, zones, income base, zone progress) while identity and
// collection progress (XP, level, streak, roster, team, reward history,
// daily goal, energy cap) carry over untouched. Energy refills to the
// cap, essence accumulates, and the global multiplier is recomputed
// from the new total.
func ApplyPrestige(cfg config.Economy, p player.Player, essenceGain int) player.Player {
	if essenceGain < 0 {
		essenceGain = 0
	}
	p.Coins = 0
	p.CurrentZone = 1
	p.ZoneUnlockedMax = 1
	p.ZoneProgress = map[int]player.ZoneProgress{}
	p.CoinsPerMinuteBase = 1
	p.Energy = float64(p.EnergyCap)
	p.PrestigeCount++
	p.Essence += essenceGain
	p.GlobalMultiplier = GlobalMultiplier(cfg, p.Essence)
	return p
}
