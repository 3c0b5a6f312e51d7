package config

import "fmt"

// Rarity tiers for gacha results and characters.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// RarityOrder lists tiers from least to most rare. Rate tables iterate
// in this order so cumulative scans are deterministic.
var RarityOrder = []Rarity{
	RarityCommon,
	RarityUncommon,
	RarityRare,
	RarityEpic,
	RarityLegendary,
}

// Zone is a static progression tier. Zones unlock strictly in id order.
type Zone struct {
	ID                  int     `yaml:"id"`
	RequiredPower       int     `yaml:"required_power"`
	UnlockCostCoins     int     `yaml:"unlock_cost_coins"`
	CoinsPerMinuteBonus float64 `yaml:"coins_per_minute_bonus"`
}

// BoostDef is a purchasable boost. Instant boosts apply on purchase and
// are never stored on the player.
type BoostDef struct {
	ID             string  `yaml:"id"`
	Price          int     `yaml:"price"`
	DurationMin    int     `yaml:"duration_min"`
	CoinMultiplier float64 `yaml:"coin_multiplier"`
	EnergyCapBonus int     `yaml:"energy_cap_bonus"`
	Instant        bool    `yaml:"instant"`
	InstantEnergy  float64 `yaml:"instant_energy"`
}

// Character is a static roster entry; rarity drives idle bonus and power.
type Character struct {
	ID     string `yaml:"id"`
	Rarity Rarity `yaml:"rarity"`
}

// ClaimTuning holds the daily event-claim reward shapes.
type ClaimTuning struct {
	DustAmount     int     `yaml:"dust_amount"`
	BoostExtendMin int     `yaml:"boost_extend_min"`
	BoostFallback  int     `yaml:"boost_fallback_coins"`
	EnergyGrantMax float64 `yaml:"energy_grant_max"`
	CoinBase       int     `yaml:"coin_base"`
}

// Economy is the full static balance table. It is immutable input to
// every other package; nothing in the engine mutates it.
type Economy struct {
	CoinCap            int     `yaml:"coin_cap"`
	BaseEnergyCap      int     `yaml:"base_energy_cap"`
	BaseCoinsPerMinute float64 `yaml:"base_coins_per_minute"`
	MaxIdleMinutes     float64 `yaml:"max_idle_minutes"`

	BaseRates   map[Rarity]float64 `yaml:"base_rates"`
	PityDefault int                `yaml:"pity_default"`
	PityMin     int                `yaml:"pity_min"`

	// XPLevels[i] is the total XP required to reach level i+2.
	XPLevels []int `yaml:"xp_levels"`

	DailyGoal        int `yaml:"daily_goal"`
	DailyLoopCoins   int `yaml:"daily_loop_coins"`
	DailyLoopEssence int `yaml:"daily_loop_essence"`

	PrestigeMinZone  int     `yaml:"prestige_min_zone"`
	PrestigeMinPower int     `yaml:"prestige_min_power"`
	EssenceDivisor   int     `yaml:"essence_divisor"`
	EssenceMultStep  float64 `yaml:"essence_mult_step"`

	Zones      []Zone      `yaml:"zones"`
	Boosts     []BoostDef  `yaml:"boosts"`
	Characters []Character `yaml:"characters"`

	// Per-tier idle bonus per evolution stage, by rarity.
	RarityIdleBonus map[Rarity]float64 `yaml:"rarity_idle_bonus"`
	// Power contribution per evolution stage, by rarity.
	RarityPowerWeight map[Rarity]int `yaml:"rarity_power_weight"`

	Claim ClaimTuning `yaml:"claim"`
}

// Default returns the shipped balance configuration.
func Default() Economy {
	return Economy{
		CoinCap:            1_000_000_000,
		BaseEnergyCap:      100,
		BaseCoinsPerMinute: 1,
		MaxIdleMinutes:     180,

		BaseRates: map[Rarity]float64{
			RarityCommon:    0.60,
			RarityUncommon:  0.25,
			RarityRare:      0.10,
			RarityEpic:      0.04,
			RarityLegendary: 0.01,
		},
		PityDefault: 30,
		PityMin:     20,

		XPLevels: []int{10, 30, 70, 150, 310, 630, 1270, 2550, 5110},

		DailyGoal:        3,
		DailyLoopCoins:   50,
		DailyLoopEssence: 1,

		PrestigeMinZone:  6,
		PrestigeMinPower: 250,
		EssenceDivisor:   50,
		EssenceMultStep:  0.02,

		Zones: []Zone{
			{ID: 1, RequiredPower: 0, UnlockCostCoins: 0, CoinsPerMinuteBonus: 0},
			{ID: 2, RequiredPower: 20, UnlockCostCoins: 200, CoinsPerMinuteBonus: 0.5},
			{ID: 3, RequiredPower: 50, UnlockCostCoins: 800, CoinsPerMinuteBonus: 1},
			{ID: 4, RequiredPower: 100, UnlockCostCoins: 2500, CoinsPerMinuteBonus: 1.5},
			{ID: 5, RequiredPower: 160, UnlockCostCoins: 6000, CoinsPerMinuteBonus: 2},
			{ID: 6, RequiredPower: 220, UnlockCostCoins: 15000, CoinsPerMinuteBonus: 3},
		},

		Boosts: []BoostDef{
			{ID: "double_coins_30", Price: 100, DurationMin: 30, CoinMultiplier: 2},
			{ID: "coins_90", Price: 220, DurationMin: 90, CoinMultiplier: 1.5},
			{ID: "energy_tank_60", Price: 150, DurationMin: 60, EnergyCapBonus: 30},
			{ID: "energy_refill", Price: 80, Instant: true, InstantEnergy: 50},
		},

		Characters: []Character{
			{ID: "scout", Rarity: RarityCommon},
			{ID: "miner", Rarity: RarityCommon},
			{ID: "archer", Rarity: RarityUncommon},
			{ID: "alchemist", Rarity: RarityUncommon},
			{ID: "knight", Rarity: RarityRare},
			{ID: "oracle", Rarity: RarityRare},
			{ID: "warlord", Rarity: RarityEpic},
			{ID: "dragon", Rarity: RarityLegendary},
		},

		RarityIdleBonus: map[Rarity]float64{
			RarityCommon:    0.05,
			RarityUncommon:  0.06,
			RarityRare:      0.07,
			RarityEpic:      0.08,
			RarityLegendary: 0.10,
		},
		RarityPowerWeight: map[Rarity]int{
			RarityCommon:    5,
			RarityUncommon:  8,
			RarityRare:      12,
			RarityEpic:      18,
			RarityLegendary: 30,
		},

		Claim: ClaimTuning{
			DustAmount:     20,
			BoostExtendMin: 15,
			BoostFallback:  25,
			EnergyGrantMax: 30,
			CoinBase:       20,
		},
	}
}

// ZoneByID looks up a catalog zone. Unknown ids return ok = false.
func (e Economy) ZoneByID(id int) (Zone, bool) {
	for _, z := range e.Zones {
		if z.ID == id {
			return z, true
		}
	}
	return Zone{}, false
}

// BoostByID looks up a catalog boost definition.
func (e Economy) BoostByID(id string) (BoostDef, bool) {
	for _, b := range e.Boosts {
		if b.ID == id {
			return b, true
		}
	}
	return BoostDef{}, false
}

// CharacterRarity returns the rarity for a roster id, defaulting unknown
// ids to common so callers can probe without pre-validating.
func (e Economy) CharacterRarity(id string) Rarity {
	for _, c := range e.Characters {
		if c.ID == id {
			return c.Rarity
		}
	}
	return RarityCommon
}

// Validate checks the table for configuration mistakes that would break
// engine invariants.
func (e Economy) Validate() error {
	total := 0.0
	for _, r := range RarityOrder {
		w := e.BaseRates[r]
		if w < 0 {
			return fmt.Errorf("base rate for %s is negative", r)
		}
		total += w
	}
	if total <= 0 {
		return fmt.Errorf("base rates sum to zero")
	}
	if e.PityMin <= 0 || e.PityDefault < e.PityMin {
		return fmt.Errorf("pity thresholds invalid: default %d, min %d", e.PityDefault, e.PityMin)
	}
	for i, z := range e.Zones {
		if z.ID != i+1 {
			return fmt.Errorf("zone ids must be sequential from 1, got %d at index %d", z.ID, i)
		}
	}
	if e.MaxIdleMinutes <= 0 {
		return fmt.Errorf("max idle minutes must be positive")
	}
	return nil
}
