package progression

import (
	"taskquest/internal/config"
	"taskquest/internal/player"
)

// LevelForXP maps total experience onto a level using the config
// thresholds. Level 1 is the floor.
func LevelForXP(cfg config.Economy, xp int) int {
	level := 1
	for _, need := range cfg.XPLevels {
		if xp < need {
			break
		}
		level++
	}
	return level
}

// GrantXP adds experience and recomputes the level. Levels only rise;
// a shrunken threshold table can never demote a player.
func GrantXP(cfg config.Economy, p player.Player, amount int) player.Player {
	if amount < 0 {
		amount = 0
	}
	p.XP += amount
	if lvl := LevelForXP(cfg, p.XP); lvl > p.Level {
		p.Level = lvl
	}
	return p
}
