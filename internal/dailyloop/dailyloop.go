package dailyloop

import (
	"taskquest/internal/config"
	"taskquest/internal/datekey"
	"taskquest/internal/player"
)

// Status is the compound daily objective: task goal, one idle claim and
// one gacha pull, all on the same local day.
type Status struct {
	TaskGoalMet bool
	IdleClaimed bool
	GachaPulled bool
	AllDone     bool
}

// GetStatus evaluates the three conditions against today's key.
func GetStatus(p player.Player, todayDoneTasks int, today datekey.Key) Status {
	goal := p.DailyGoal
	if goal <= 0 {
		goal = 3
	}
	s := Status{
		TaskGoalMet: todayDoneTasks >= goal,
		IdleClaimed: p.LastIdleClaim == today,
		GachaPulled: p.LastGachaPull == today,
	}
	s.AllDone = s.TaskGoalMet && s.IdleClaimed && s.GachaPulled
	return s
}

// Claimed reports whether today's loop reward was already taken.
func Claimed(p player.Player, today datekey.Key) bool {
	return p.DailyLoopClaimed == today
}

// ApplyReward grants the one-time daily loop reward and stamps today's
// key. It does not re-check idempotency: callers must gate with Claimed
// first and treat this as apply-once.
func ApplyReward(cfg config.Economy, p player.Player, today datekey.Key) player.Player {
	p.Coins = player.ClampCoins(p.Coins+cfg.DailyLoopCoins, cfg)
	p.Essence += cfg.DailyLoopEssence
	p.DailyLoopClaimed = today
	return p
}
