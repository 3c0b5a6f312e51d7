package gacha

import "taskquest/internal/config"

// Pity thresholds: a talent reduction shortens the guarantee window but
// can never eliminate it.
const (
	PityDefault = 30
	PityMin     = 20
)

// EffectivePity returns the pull count at which a rare-or-better result
// is guaranteed under the shipped thresholds. Negative reductions are
// treated as zero.
func EffectivePity(reduction int) int {
	return EffectivePityWith(PityDefault, PityMin, reduction)
}

// EffectivePityWith is EffectivePity under tuned thresholds, for
// callers carrying a balance overlay. Non-positive thresholds fall back
// to the shipped values.
func EffectivePityWith(pityDefault, pityMin, reduction int) int {
	if pityDefault <= 0 {
		pityDefault = PityDefault
	}
	if pityMin <= 0 {
		pityMin = PityMin
	}
	if reduction < 0 {
		reduction = 0
	}
	t := pityDefault - reduction
	if t < pityMin {
		t = pityMin
	}
	return t
}

// rareOrBetter is the pity sub-table membership.
func rareOrBetter(r config.Rarity) bool {
	switch r {
	case config.RarityRare, config.RarityEpic, config.RarityLegendary:
		return true
	}
	return false
}

// Outcome is one resolved pull.
type Outcome struct {
	Rarity       config.Rarity
	Pity         bool
	NewPityCount int
}

// Roll draws one rarity from the table using a single uniform sample.
// When the incoming pull would reach the pity threshold the draw is
// restricted to the renormalized {rare, epic, legendary} sub-table, so
// the result is guaranteed rare-or-better. Floating-point rounding at
// the tail of the cumulative scan falls back to the least-rare tier of
// the drawn table instead of failing. The returned pity count is 0 for
// a rare-or-better result, otherwise pityCount + 1.
func Roll(rates RateTable, pityCount, threshold int, rng RandomSource) Outcome {
	if rng == nil {
		rng = DefaultRNG()
	}

	table := Normalize(rates)
	pity := threshold > 0 && pityCount+1 >= threshold
	if pity {
		sub := make(RateTable, 3)
		for r, w := range table {
			if rareOrBetter(r) && w > 0 {
				sub[r] = w
			}
		}
		if len(sub) == 0 {
			// degenerate table with no rare-or-better weight; the
			// guarantee still has to hold
			sub[config.RarityRare] = 1
		}
		table = Normalize(sub)
	}

	rarity := scan(table, rng.Float64())

	out := Outcome{Rarity: rarity, Pity: pity}
	if rareOrBetter(rarity) {
		out.NewPityCount = 0
	} else {
		out.NewPityCount = pityCount + 1
	}
	return out
}

// scan walks the cumulative distribution in fixed rarity order.
func scan(table RateTable, sample float64) config.Rarity {
	fallback := config.RarityCommon
	seen := false
	acc := 0.0
	for _, r := range config.RarityOrder {
		w, ok := table[r]
		if !ok || w <= 0 {
			continue
		}
		if !seen {
			fallback = r
			seen = true
		}
		acc += w
		if sample < acc {
			return r
		}
	}
	// tail rounding: land on the least-rare populated tier
	return fallback
}
