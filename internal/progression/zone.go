package progression

import (
	"taskquest/internal/config"
	"taskquest/internal/player"
)

// CanUnlockZone reports whether the player may unlock zoneID right now.
// Zones unlock strictly in sequence: the id must be exactly one past
// ZoneUnlockedMax, the power score must meet the zone's requirement and
// the player must afford the cost. Unknown ids are simply false, so
// callers can probe without pre-validating.
func CanUnlockZone(cfg config.Economy, p player.Player, powerScore, zoneID int) bool {
	z, ok := cfg.ZoneByID(zoneID)
	if !ok {
		return false
	}
	if zoneID <= p.ZoneUnlockedMax {
		return false
	}
	if zoneID != p.ZoneUnlockedMax+1 {
		return false
	}
	if powerScore < z.RequiredPower {
		return false
	}
	return p.Coins >= z.UnlockCostCoins
}

// ApplyZoneUnlock returns the player after unlocking zoneID: cost
// deducted (floored at zero), ZoneUnlockedMax raised, CurrentZone moved
// there, and the zone's permanent income bonus added. Every other field
// passes through unchanged. Callers gate with CanUnlockZone first;
// unknown ids return the input untouched.
func ApplyZoneUnlock(cfg config.Economy, p player.Player, zoneID int) player.Player {
	z, ok := cfg.ZoneByID(zoneID)
	if !ok {
		return p
	}
	p.Coins -= z.UnlockCostCoins
	if p.Coins < 0 {
		p.Coins = 0
	}
	p.ZoneUnlockedMax = zoneID
	p.CurrentZone = zoneID
	p.CoinsPerMinuteBase += z.CoinsPerMinuteBonus
	return p
}
