package talent

import "taskquest/internal/player"

// MaxPoints caps each branch.
const MaxPoints = 20

// Milestone thresholds, shared by all branches.
const (
	milestoneMinor = 5
	milestoneMid   = 10
	milestoneMajor = 15
)

// Per-point scaling.
const (
	idleCoinPerPoint   = 0.03
	idleCapPerPoint    = 2
	idleRegenPerPoint  = 0.05
	gachaRarePerPoint  = 0.005
	powerMultPerPoint  = 0.04
	boostDurPerPoint   = 0.02
	evolveDiscPerPoint = 0.01
	evolveDiscMax      = 0.25
)

// Bonuses is the full bundle a talent spread grants: continuous
// per-point scaling plus discrete milestone flags layered on top.
type Bonuses struct {
	IdleCoinMultiplier      float64
	EnergyCapBonus          int
	EnergyRegenPerMinute    float64
	GachaRareBonus          float64
	PityReduction           int
	PowerMultiplier         float64
	BoostDurationMultiplier float64
	EvolutionCostDiscount   float64

	Milestones Milestones
}

// Milestones are the fixed-threshold flags per branch.
type Milestones struct {
	IdleOfflineBank  bool // idle >= 5: offline earnings bank up
	IdleSwiftRegen   bool // idle >= 10: energy regen ticks twice as often
	IdleAutoClaim    bool // idle >= 15: idle claim without visiting
	GachaDustRefund  bool // gacha >= 5: duplicates refund dust
	GachaBonusPull   bool // gacha >= 10: every tenth pull is free
	GachaPityCarry   bool // gacha >= 15: pity carries across banners
	PowerExtraSlot   bool // power >= 5: one extra team slot
	PowerStageKeeper bool // power >= 10: evolution stages survive prestige
	PowerCheapEvolve bool // power >= 15: evolution discount doubles
}

// Aggregate converts invested points into the bonus bundle. Points are
// clamped to [0, MaxPoints] per branch; negative input counts as zero.
func Aggregate(pts player.TalentPoints) Bonuses {
	idle := clampPoints(pts.Idle)
	gacha := clampPoints(pts.Gacha)
	power := clampPoints(pts.Power)

	b := Bonuses{
		IdleCoinMultiplier:      1 + float64(idle)*idleCoinPerPoint,
		EnergyCapBonus:          idle * idleCapPerPoint,
		EnergyRegenPerMinute:    float64(idle) * idleRegenPerPoint,
		GachaRareBonus:          float64(gacha) * gachaRarePerPoint,
		PityReduction:           gacha / 2,
		PowerMultiplier:         1 + float64(power)*powerMultPerPoint,
		BoostDurationMultiplier: 1 + float64(power)*boostDurPerPoint,
		EvolutionCostDiscount:   float64(power) * evolveDiscPerPoint,
		Milestones: Milestones{
			IdleOfflineBank:  idle >= milestoneMinor,
			IdleSwiftRegen:   idle >= milestoneMid,
			IdleAutoClaim:    idle >= milestoneMajor,
			GachaDustRefund:  gacha >= milestoneMinor,
			GachaBonusPull:   gacha >= milestoneMid,
			GachaPityCarry:   gacha >= milestoneMajor,
			PowerExtraSlot:   power >= milestoneMinor,
			PowerStageKeeper: power >= milestoneMid,
			PowerCheapEvolve: power >= milestoneMajor,
		},
	}
	if b.EvolutionCostDiscount > evolveDiscMax {
		b.EvolutionCostDiscount = evolveDiscMax
	}
	if b.Milestones.PowerCheapEvolve {
		b.EvolutionCostDiscount *= 2
		if b.EvolutionCostDiscount > 2*evolveDiscMax {
			b.EvolutionCostDiscount = 2 * evolveDiscMax
		}
	}
	return b
}

func clampPoints(n int) int {
	if n < 0 {
		return 0
	}
	if n > MaxPoints {
		return MaxPoints
	}
	return n
}

// NextPointCost is the essence price of the next point in a branch
// holding current points. The curve is monotonically non-decreasing.
func NextPointCost(current int) int {
	if current < 0 {
		current = 0
	}
	return 1 + current/5
}

// CanAdvance reports whether a branch at current points can buy its
// next point with the given essence.
func CanAdvance(essence, current int) bool {
	return current < MaxPoints && essence >= NextPointCost(current)
}

// Advance buys one point: it returns the new point total and remaining
// essence. ok is false (inputs unchanged) when the branch is capped or
// essence is short.
func Advance(essence, current int) (points, remaining int, ok bool) {
	if !CanAdvance(essence, current) {
		return current, essence, false
	}
	return current + 1, essence - NextPointCost(current), true
}
