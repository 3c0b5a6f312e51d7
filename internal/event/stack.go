package event

// Stacking clamps. Two stacked events can never push the economy past
// these ceilings.
const (
	maxCoinMultiplier  = 2.0
	maxRareBonus       = 0.15
	maxEnergyCapBonus  = 50
	minBoostPriceMult  = 0.50
	maxFirstPackRebate = 0.50
)

// Bundle is the fully-populated effective modifier set for a day. Every
// field carries its identity value when no event contributes to it.
type Bundle struct {
	TaskCoinMultiplier      float64
	IdleCpmMultiplier       float64
	GachaRareBonus          float64
	GachaFirstPackDiscount  float64
	BoostPriceMultiplier    float64
	EnergyCapBonus          int
	FreeIdleClaimOncePerDay bool
}

// Identity returns the neutral bundle.
func Identity() Bundle {
	return Bundle{
		TaskCoinMultiplier:   1,
		IdleCpmMultiplier:    1,
		BoostPriceMultiplier: 1,
	}
}

// Stack combines the modifiers of all active events into one bundle.
// Multiplicative fields multiply, additive fields sum, discounts take
// the best value; everything is clamped so stacking stays bounded.
func Stack(events []Event) Bundle {
	b := Identity()
	for _, ev := range events {
		m := ev.Mods
		if m.TaskCoinMultiplier > 0 {
			b.TaskCoinMultiplier *= m.TaskCoinMultiplier
		}
		if m.IdleCpmMultiplier > 0 {
			b.IdleCpmMultiplier *= m.IdleCpmMultiplier
		}
		b.GachaRareBonus += m.GachaRareBonus
		b.EnergyCapBonus += m.EnergyCapBonus
		if m.BoostPriceMultiplier > 0 && m.BoostPriceMultiplier < b.BoostPriceMultiplier {
			b.BoostPriceMultiplier = m.BoostPriceMultiplier
		}
		if m.GachaFirstPackDiscount > b.GachaFirstPackDiscount {
			b.GachaFirstPackDiscount = m.GachaFirstPackDiscount
		}
		if m.FreeIdleClaimOncePerDay {
			b.FreeIdleClaimOncePerDay = true
		}
	}

	if b.TaskCoinMultiplier > maxCoinMultiplier {
		b.TaskCoinMultiplier = maxCoinMultiplier
	}
	if b.IdleCpmMultiplier > maxCoinMultiplier {
		b.IdleCpmMultiplier = maxCoinMultiplier
	}
	if b.GachaRareBonus > maxRareBonus {
		b.GachaRareBonus = maxRareBonus
	}
	if b.GachaRareBonus < 0 {
		b.GachaRareBonus = 0
	}
	if b.EnergyCapBonus > maxEnergyCapBonus {
		b.EnergyCapBonus = maxEnergyCapBonus
	}
	if b.EnergyCapBonus < 0 {
		b.EnergyCapBonus = 0
	}
	if b.BoostPriceMultiplier < minBoostPriceMult {
		b.BoostPriceMultiplier = minBoostPriceMult
	}
	if b.GachaFirstPackDiscount > maxFirstPackRebate {
		b.GachaFirstPackDiscount = maxFirstPackRebate
	}
	return b
}
