package event

import (
	"taskquest/internal/datekey"
)

// Kind separates the two rotation tracks.
type Kind string

const (
	KindDaily  Kind = "daily"
	KindWeekly Kind = "weekly"
)

// Theme selects the daily claim reward shape.
type Theme string

const (
	ThemeDefault Theme = "default"
	ThemeGacha   Theme = "gacha"
	ThemeBoost   Theme = "boost"
	ThemeEnergy  Theme = "energy"
)

// Modifiers is the closed set of per-event economy knobs. A zero field
// means "absent"; Stack substitutes the identity value.
type Modifiers struct {
	TaskCoinMultiplier      float64
	IdleCpmMultiplier       float64
	GachaRareBonus          float64
	GachaFirstPackDiscount  float64
	BoostPriceMultiplier    float64
	EnergyCapBonus          int
	FreeIdleClaimOncePerDay bool
}

// Event is a static catalog entry. Selection is a pure function of a
// date key; entries themselves are never mutated.
type Event struct {
	ID    string
	Name  string
	Kind  Kind
	Theme Theme
	Mods  Modifiers
}

// dailyCatalog is indexed by local day of week, Sunday = 0.
var dailyCatalog = [7]Event{
	{ID: "rest_sunday", Name: "Day of Rest", Kind: KindDaily, Theme: ThemeEnergy,
		Mods: Modifiers{EnergyCapBonus: 20}},
	{ID: "grind_monday", Name: "Grind Monday", Kind: KindDaily,
		Mods: Modifiers{TaskCoinMultiplier: 1.25}},
	{ID: "gacha_tuesday", Name: "Gacha Tuesday", Kind: KindDaily, Theme: ThemeGacha,
		Mods: Modifiers{GachaRareBonus: 0.02}},
	{ID: "boost_wednesday", Name: "Boost Bazaar", Kind: KindDaily, Theme: ThemeBoost,
		Mods: Modifiers{BoostPriceMultiplier: 0.80}},
	{ID: "idle_thursday", Name: "Idle Thursday", Kind: KindDaily,
		Mods: Modifiers{IdleCpmMultiplier: 1.25}},
	{ID: "discount_friday", Name: "First-Pack Friday", Kind: KindDaily,
		Mods: Modifiers{GachaFirstPackDiscount: 0.30}},
	{ID: "free_saturday", Name: "Free-Claim Saturday", Kind: KindDaily,
		Mods: Modifiers{FreeIdleClaimOncePerDay: true}},
}

// weeklyCatalog rotates on the epoch-week index modulo 4.
var weeklyCatalog = [4]Event{
	{ID: "task_week", Name: "Week of Deeds", Kind: KindWeekly,
		Mods: Modifiers{TaskCoinMultiplier: 1.50}},
	{ID: "idle_week", Name: "Lazy Week", Kind: KindWeekly,
		Mods: Modifiers{IdleCpmMultiplier: 1.50, EnergyCapBonus: 10}},
	{ID: "master_week", Name: "Master's Week", Kind: KindWeekly,
		Mods: Modifiers{GachaRareBonus: 0.02, BoostPriceMultiplier: 0.90}},
	{ID: "thrift_week", Name: "Thrift Week", Kind: KindWeekly,
		Mods: Modifiers{BoostPriceMultiplier: 0.70, GachaFirstPackDiscount: 0.20}},
}

// DailyEvent returns the daily event for a day key. Always defined and
// referentially stable for the same key.
func DailyEvent(key datekey.Key) Event {
	return dailyCatalog[int(key.Weekday())]
}

// WeeklyEvent returns the weekly event for a day key. The rotation never
// resets; it simply advances every seven days.
func WeeklyEvent(key datekey.Key) Event {
	idx := key.WeekIndex() % 4
	if idx < 0 {
		idx += 4
	}
	return weeklyCatalog[idx]
}

// ActiveEvents returns the daily then weekly event for a day key.
func ActiveEvents(key datekey.Key) []Event {
	return []Event{DailyEvent(key), WeeklyEvent(key)}
}
