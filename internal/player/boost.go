package player

import "time"

// Boost is a time-bounded modifier bought with coins. Instant boosts are
// applied at purchase and never persisted; timed boosts are filtered out
// of the active view once expired, never mutated in place.
type Boost struct {
	ID             string    `json:"id"`
	ExpiresAt      time.Time `json:"expires_at"`
	Instant        bool      `json:"instant,omitempty"`
	CoinMultiplier float64   `json:"coin_multiplier,omitempty"`
	EnergyCapBonus int       `json:"energy_cap_bonus,omitempty"`
}

// Active reports whether the boost still applies at now.
func (b Boost) Active(now time.Time) bool {
	return !b.Instant && now.Before(b.ExpiresAt)
}

// ActiveBoosts returns the still-live subset of boosts.
func ActiveBoosts(boosts []Boost, now time.Time) []Boost {
	out := make([]Boost, 0, len(boosts))
	for _, b := range boosts {
		if b.Active(now) {
			out = append(out, b)
		}
	}
	return out
}

// BestCoinMultiplier returns the strongest active coin multiplier,
// never below 1.
func BestCoinMultiplier(boosts []Boost, now time.Time) float64 {
	best := 1.0
	for _, b := range boosts {
		if b.Active(now) && b.CoinMultiplier > best {
			best = b.CoinMultiplier
		}
	}
	return best
}
