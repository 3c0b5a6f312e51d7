package gacha

import "taskquest/internal/config"

// RateTable maps rarity to draw probability. At every observable
// boundary the values sum to 1.0 within floating-point tolerance.
type RateTable map[config.Rarity]float64

// Normalize rescales a non-negative weight table so it sums to exactly
// 1.0. A zero-total table is returned unchanged rather than divided by
// zero.
func Normalize(rates RateTable) RateTable {
	total := 0.0
	for _, w := range rates {
		if w > 0 {
			total += w
		}
	}
	out := make(RateTable, len(rates))
	if total <= 0 {
		for r, w := range rates {
			out[r] = w
		}
		return out
	}
	for r, w := range rates {
		if w < 0 {
			w = 0
		}
		out[r] = w / total
	}
	return out
}

// ApplyRareBonus adds bonus weight to the rare tier and renormalizes,
// so the increase is absorbed proportionally from every other tier and
// the table never leaves the simplex. Negative bonuses are ignored.
func ApplyRareBonus(rates RateTable, bonus float64) RateTable {
	if bonus < 0 {
		bonus = 0
	}
	out := make(RateTable, len(rates))
	for r, w := range rates {
		out[r] = w
	}
	out[config.RarityRare] += bonus
	return Normalize(out)
}
