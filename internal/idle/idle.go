package idle

import (
	"math"
	"time"

	"taskquest/internal/config"
	"taskquest/internal/player"
)

// DefaultMaxMinutes caps how much offline time a single settlement can
// credit.
const DefaultMaxMinutes = 180

// TeamMultiplier converts the active team into an idle income
// multiplier. Each character contributes its rarity's per-stage bonus
// times its evolution stage (stage 1 when unspecified, unknown rarity
// counts as common). The team's contributions are averaged, not summed,
// so a large roster cannot trivialize the multiplier. An empty team is
// the identity 1.0.
func TeamMultiplier(teamIDs []string, stages map[string]int, cfg config.Economy) float64 {
	if len(teamIDs) == 0 {
		return 1.0
	}
	total := 0.0
	for _, id := range teamIDs {
		stage := stages[id]
		if stage < 1 {
			stage = 1
		}
		bonus := cfg.RarityIdleBonus[cfg.CharacterRarity(id)]
		total += bonus * float64(stage)
	}
	return 1.0 + total/float64(len(teamIDs))
}

// TeamPowerScore is a reference aggregation of team combat strength:
// rarity weight times evolution stage, summed. Progression gates take
// the score as a parameter; callers may compute it however they like.
func TeamPowerScore(teamIDs []string, stages map[string]int, cfg config.Economy) int {
	score := 0
	for _, id := range teamIDs {
		stage := stages[id]
		if stage < 1 {
			stage = 1
		}
		score += cfg.RarityPowerWeight[cfg.CharacterRarity(id)] * stage
	}
	return score
}

// Input is one idle settlement request. Multiplier is the combined
// team/event/global multiplier the caller has already assembled;
// ActiveBoosts may contain expired entries, they are filtered here.
type Input struct {
	Now          time.Time
	LastTickAt   *time.Time
	Energy       float64
	BaseCpm      float64
	Multiplier   float64
	ActiveBoosts []player.Boost
	MaxMinutes   float64
}

// Result is the settlement outcome. NewLastTickAt is always Now, even
// for zero earnings, so re-ticking with no energy never double-counts.
type Result struct {
	CoinsEarned   int
	MinutesUsed   float64
	NewEnergy     float64
	NewLastTickAt time.Time
}

// Settle converts elapsed wall-clock time and available energy into
// coins. Each earned minute burns one unit of energy. A nil LastTickAt
// is the first-ever tick: nothing is backfilled, the anchor is simply
// recorded.
func Settle(in Input) Result {
	out := Result{NewEnergy: in.Energy, NewLastTickAt: in.Now}
	if in.LastTickAt == nil {
		return out
	}

	maxMin := in.MaxMinutes
	if maxMin <= 0 {
		maxMin = DefaultMaxMinutes
	}
	elapsed := in.Now.Sub(*in.LastTickAt).Minutes()
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > maxMin {
		elapsed = maxMin
	}

	usable := math.Min(elapsed, math.Max(in.Energy, 0))

	mult := in.Multiplier
	if mult <= 0 {
		mult = 1
	}
	mult *= player.BestCoinMultiplier(in.ActiveBoosts, in.Now)

	out.CoinsEarned = int(math.Floor(usable * in.BaseCpm * mult))
	out.MinutesUsed = usable
	out.NewEnergy = in.Energy - usable
	return out
}
