package game

import (
	"math"
	"time"

	"taskquest/internal/config"
	"taskquest/internal/dailyloop"
	"taskquest/internal/datekey"
	"taskquest/internal/event"
	"taskquest/internal/gacha"
	"taskquest/internal/idle"
	"taskquest/internal/player"
	"taskquest/internal/progression"
	"taskquest/internal/shop"
	"taskquest/internal/talent"
)

// Engine composes the pure rule packages into player-level operations.
// It owns the only two ambient dependencies, the clock and the random
// source, and injects them at this seam; everything below it is a pure
// function. Operations take a player snapshot and return a new one, so
// the caller decides when and how to persist (and must store the
// returned idle tick anchor atomically before settling again).
type Engine struct {
	Cfg   config.Economy
	Clock Clock
	RNG   gacha.RandomSource
	Loc   *time.Location
}

// New returns an engine wired to the real clock and the default RNG.
func New(cfg config.Economy) Engine {
	return Engine{Cfg: cfg, Clock: RealClock{}, RNG: gacha.DefaultRNG(), Loc: time.Local}
}

func (e Engine) now() time.Time {
	if e.Clock == nil {
		return time.Now()
	}
	return e.Clock.Now()
}

func (e Engine) today() datekey.Key {
	return datekey.At(e.now(), e.Loc)
}

// TaskReward reports what one completed task paid out.
type TaskReward struct {
	Coins     int
	XP        int
	NewStreak int
}

const (
	taskCoinBase = 5
	taskXP       = 3
)

// CompleteTask settles one finished task: coins scaled by the day's
// task multiplier and the global prestige multiplier, an XP grant, and
// streak bookkeeping keyed on local days. Completing again on the same
// day extends the count toward the daily goal but not the streak.
func (e Engine) CompleteTask(p player.Player) (player.Player, TaskReward) {
	p = player.Normalize(p, e.Cfg)
	today := e.today()
	bundle := event.Stack(event.ActiveEvents(today))

	coins := int(math.Floor(taskCoinBase * bundle.TaskCoinMultiplier * p.GlobalMultiplier))
	if coins < 1 {
		coins = 1
	}
	p.Coins = player.ClampCoins(p.Coins+coins, e.Cfg)
	p = progression.GrantXP(e.Cfg, p, taskXP)

	if p.LastTaskDate != today {
		if p.LastTaskDate == today.AddDays(-1) && p.Streak > 0 {
			p.Streak++
		} else {
			p.Streak = 1
		}
		p.TasksDoneToday = 0
		p.LastTaskDate = today
	}
	p.TasksDoneToday++

	return p, TaskReward{Coins: coins, XP: taskXP, NewStreak: p.Streak}
}

// SettleIdle converts time since the last tick into coins, burning one
// energy per earned minute. The returned player carries the new tick
// anchor even when nothing was earned.
func (e Engine) SettleIdle(p player.Player) (player.Player, idle.Result) {
	p = player.Normalize(p, e.Cfg)
	now := e.now()
	today := e.today()
	bundle := event.Stack(event.ActiveEvents(today))
	bonuses := talent.Aggregate(p.Talents)

	mult := idle.TeamMultiplier(p.ActiveTeam, p.CharacterStages, e.Cfg) *
		bundle.IdleCpmMultiplier *
		bonuses.IdleCoinMultiplier *
		p.GlobalMultiplier

	res := idle.Settle(idle.Input{
		Now:          now,
		LastTickAt:   p.LastIdleTickAt,
		Energy:       p.Energy,
		BaseCpm:      p.CoinsPerMinuteBase,
		Multiplier:   mult,
		ActiveBoosts: p.Boosts,
		MaxMinutes:   e.Cfg.MaxIdleMinutes,
	})

	p.Coins = player.ClampCoins(p.Coins+res.CoinsEarned, e.Cfg)
	p.Energy = res.NewEnergy
	anchor := res.NewLastTickAt
	p.LastIdleTickAt = &anchor
	if res.CoinsEarned > 0 {
		p.LastIdleClaim = today
	}
	return p, res
}

// PullGacha rolls one pull under today's rare bonus (events + talents),
// advancing or resetting the pity counter and stamping the daily-loop
// pull marker.
func (e Engine) PullGacha(p player.Player) (player.Player, gacha.Outcome) {
	p = player.Normalize(p, e.Cfg)
	today := e.today()
	bundle := event.Stack(event.ActiveEvents(today))
	bonuses := talent.Aggregate(p.Talents)

	rates := gacha.ApplyRareBonus(gacha.RateTable(e.Cfg.BaseRates), bundle.GachaRareBonus+bonuses.GachaRareBonus)
	threshold := gacha.EffectivePityWith(e.Cfg.PityDefault, e.Cfg.PityMin, bonuses.PityReduction)

	out := gacha.Roll(rates, p.PityCount, threshold, e.RNG)
	p.PityCount = out.NewPityCount
	p.LastGachaPull = today
	return p, out
}

// UnlockZone attempts to unlock the next zone with the supplied power
// score. ok is false (player unchanged) when the gate refuses.
func (e Engine) UnlockZone(p player.Player, powerScore, zoneID int) (player.Player, bool) {
	p = player.Normalize(p, e.Cfg)
	if !progression.CanUnlockZone(e.Cfg, p, powerScore, zoneID) {
		return p, false
	}
	return progression.ApplyZoneUnlock(e.Cfg, p, zoneID), true
}

// Prestige resets the economy for essence when eligible. ok is false
// (player unchanged) otherwise.
func (e Engine) Prestige(p player.Player, powerScore int) (player.Player, bool) {
	p = player.Normalize(p, e.Cfg)
	if !progression.CanPrestige(e.Cfg, p, powerScore, 0) {
		return p, false
	}
	return progression.ApplyPrestige(e.Cfg, p, progression.EssenceGain(e.Cfg, powerScore)), true
}

// ClaimDailyLoop grants the compound daily objective reward once per
// day. ok is false when the loop is incomplete or already claimed.
func (e Engine) ClaimDailyLoop(p player.Player) (player.Player, bool) {
	p = player.Normalize(p, e.Cfg)
	today := e.today()
	if dailyloop.Claimed(p, today) {
		return p, false
	}
	// TasksDoneToday is only reset lazily by CompleteTask; a counter
	// stamped with an older day counts for nothing today.
	done := p.TasksDoneToday
	if p.LastTaskDate != today {
		done = 0
	}
	if !dailyloop.GetStatus(p, done, today).AllDone {
		return p, false
	}
	return dailyloop.ApplyReward(e.Cfg, p, today), true
}

// ClaimEventBonus grants today's themed daily event reward once per
// day. ok is false once already claimed today.
func (e Engine) ClaimEventBonus(p player.Player) (player.Player, event.ClaimReward, bool) {
	p = player.Normalize(p, e.Cfg)
	now := e.now()
	today := e.today()
	if !event.CanClaimEventBonus(p, today) {
		return p, event.ClaimReward{}, false
	}

	events := event.ActiveEvents(today)
	reward := event.DailyClaimReward(e.Cfg, events, p, now)

	p.Coins = player.ClampCoins(p.Coins+reward.Coins, e.Cfg)
	p.Dust += reward.Dust
	p.Energy += reward.Energy
	if reward.ExtendBoostID != "" {
		boosts := make([]player.Boost, len(p.Boosts))
		copy(boosts, p.Boosts)
		for i := range boosts {
			if boosts[i].ID == reward.ExtendBoostID && boosts[i].Active(now) {
				boosts[i].ExpiresAt = boosts[i].ExpiresAt.Add(reward.ExtendBy)
				break
			}
		}
		p.Boosts = boosts
	}
	p.LastEventClaim = today
	return p, reward, true
}

// BuyBoost purchases a catalog boost at today's event price, scaling
// timed durations by the power-branch talent bonus. ok is false when
// the id is unknown or coins are short.
func (e Engine) BuyBoost(p player.Player, boostID string) (player.Player, bool) {
	p = player.Normalize(p, e.Cfg)
	now := e.now()
	today := e.today()
	bundle := event.Stack(event.ActiveEvents(today))
	if !shop.CanBuyBoost(e.Cfg, p, boostID, bundle) {
		return p, false
	}
	bonuses := talent.Aggregate(p.Talents)
	return shop.ApplyBoostPurchase(e.Cfg, p, boostID, now, bonuses.BoostDurationMultiplier, bundle), true
}
