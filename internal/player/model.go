package player

import (
	"time"

	"taskquest/internal/config"
	"taskquest/internal/datekey"
)

// TalentPoints holds invested points per branch.
type TalentPoints struct {
	Idle  int `json:"idle"`
	Gacha int `json:"gacha"`
	Power int `json:"power"`
}

// ZoneProgress tracks per-zone claimed quest rewards.
type ZoneProgress struct {
	ClaimedRewards map[string]bool `json:"claimed_rewards"`
}

// Player is the aggregate the caller persists as a single row. Engine
// functions take it by value and return a new snapshot; nothing mutates
// a caller's copy.
type Player struct {
	Coins              int     `json:"coins"`
	Energy             float64 `json:"energy"`
	EnergyCap          int     `json:"energy_cap"`
	XP                 int     `json:"xp"`
	Level              int     `json:"level"`
	Streak             int     `json:"streak"`
	Essence            int     `json:"essence"`
	Dust               int     `json:"dust"`
	PrestigeCount      int     `json:"prestige_count"`
	CurrentZone        int     `json:"current_zone"`
	ZoneUnlockedMax    int     `json:"zone_unlocked_max"`
	CoinsPerMinuteBase float64 `json:"coins_per_minute_base"`
	GlobalMultiplier   float64 `json:"global_multiplier"`
	PityCount          int     `json:"pity_count"`

	ZoneProgress map[int]ZoneProgress `json:"zone_progress"`
	Talents      TalentPoints         `json:"talents"`
	Boosts       []Boost              `json:"boosts"`

	UnlockedCharacters []string       `json:"unlocked_characters"`
	ActiveTeam         []string       `json:"active_team"`
	CharacterStages    map[string]int `json:"character_stages"`
	RewardsUnlocked    []string       `json:"rewards_unlocked"`
	DailyGoal          int            `json:"daily_goal"`
	TasksDoneToday     int            `json:"tasks_done_today"`

	// One-claim-per-day locks, compared by value against today's key.
	DailyLoopClaimed  datekey.Key `json:"daily_loop_claimed"`
	LastEventClaim    datekey.Key `json:"last_event_claim"`
	LastGachaDiscount datekey.Key `json:"last_gacha_discount"`
	LastFreeIdleClaim datekey.Key `json:"last_free_idle_claim"`
	LastIdleClaim     datekey.Key `json:"last_idle_claim"`
	LastGachaPull     datekey.Key `json:"last_gacha_pull"`
	LastTaskDate      datekey.Key `json:"last_task_date"`

	LastIdleTickAt *time.Time `json:"last_idle_tick_at"`
}

// Normalize applies defaults to a possibly sparse record in one boundary
// step so internal functions never branch on missing fields.
func Normalize(p Player, cfg config.Economy) Player {
	if p.EnergyCap <= 0 {
		p.EnergyCap = cfg.BaseEnergyCap
	}
	if p.Energy < 0 {
		p.Energy = 0
	}
	if p.Coins < 0 {
		p.Coins = 0
	}
	if p.Level <= 0 {
		p.Level = 1
	}
	if p.CurrentZone <= 0 {
		p.CurrentZone = 1
	}
	if p.ZoneUnlockedMax <= 0 {
		p.ZoneUnlockedMax = 1
	}
	if p.CoinsPerMinuteBase <= 0 {
		p.CoinsPerMinuteBase = cfg.BaseCoinsPerMinute
	}
	if p.GlobalMultiplier < 1 {
		p.GlobalMultiplier = 1
	}
	if p.DailyGoal <= 0 {
		p.DailyGoal = cfg.DailyGoal
	}
	if p.PityCount < 0 {
		p.PityCount = 0
	}
	if p.ZoneProgress == nil {
		p.ZoneProgress = map[int]ZoneProgress{}
	}
	if p.CharacterStages == nil {
		p.CharacterStages = map[string]int{}
	}
	if p.Boosts == nil {
		p.Boosts = []Boost{}
	}
	if p.UnlockedCharacters == nil {
		p.UnlockedCharacters = []string{}
	}
	if p.ActiveTeam == nil {
		p.ActiveTeam = []string{}
	}
	if p.RewardsUnlocked == nil {
		p.RewardsUnlocked = []string{}
	}
	return p
}

// ClampCoins bounds a coin total to [0, cap].
func ClampCoins(coins int, cfg config.Economy) int {
	if coins < 0 {
		return 0
	}
	if coins > cfg.CoinCap {
		return cfg.CoinCap
	}
	return coins
}

// EffectiveEnergyCap is the base cap plus active boost bonuses plus any
// event bonus the caller has already stacked.
func (p Player) EffectiveEnergyCap(now time.Time, eventBonus int) int {
	eff := p.EnergyCap + eventBonus
	for _, b := range p.Boosts {
		if b.Active(now) {
			eff += b.EnergyCapBonus
		}
	}
	return eff
}
