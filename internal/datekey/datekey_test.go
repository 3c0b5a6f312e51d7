package datekey

import (
	"testing"
	"time"
)

func TestAt(t *testing.T) {
	utc := time.UTC

	t.Run("formats local calendar day", func(t *testing.T) {
		ts := time.Date(2024, 3, 5, 23, 30, 0, 0, utc)
		if got := At(ts, utc); got != Key("2024-03-05") {
			t.Errorf("expected 2024-03-05, got %s", got)
		}
	})

	t.Run("same instant differs across zones", func(t *testing.T) {
		tokyo, err := time.LoadLocation("Asia/Tokyo")
		if err != nil {
			t.Skip("tzdata unavailable")
		}
		ts := time.Date(2024, 3, 5, 23, 30, 0, 0, utc)
		if got := At(ts, tokyo); got != Key("2024-03-06") {
			t.Errorf("expected 2024-03-06 in Tokyo, got %s", got)
		}
	})
}

func TestWeekday(t *testing.T) {
	// 2024-03-03 was a Sunday
	cases := map[Key]time.Weekday{
		"2024-03-03": time.Sunday,
		"2024-03-04": time.Monday,
		"2024-03-09": time.Saturday,
	}
	for k, want := range cases {
		if got := k.Weekday(); got != want {
			t.Errorf("%s: expected %v, got %v", k, want, got)
		}
	}
}

func TestWeekIndex(t *testing.T) {
	t.Run("advances every seven days", func(t *testing.T) {
		base := Key("2024-03-03")
		if base.AddDays(7).WeekIndex() != base.WeekIndex()+1 {
			t.Error("expected week index to advance by one after seven days")
		}
	})

	t.Run("stable within a week", func(t *testing.T) {
		// Thursday-anchored epoch weeks: walk a full rotation
		start := Key("2024-02-29") // a Thursday
		idx := start.WeekIndex()
		for d := 1; d < 7; d++ {
			if got := start.AddDays(d).WeekIndex(); got != idx {
				t.Errorf("day +%d: expected index %d, got %d", d, idx, got)
			}
		}
	})

	t.Run("invalid key is zero", func(t *testing.T) {
		if Key("").WeekIndex() != 0 {
			t.Error("expected zero week index for empty key")
		}
	})
}

func TestOrdering(t *testing.T) {
	a, b := Key("2024-03-05"), Key("2024-03-06")
	if !a.Before(b) || !b.After(a) {
		t.Error("expected string order to match date order")
	}
	if a.AddDays(1) != b {
		t.Errorf("expected AddDays(1) to yield %s, got %s", b, a.AddDays(1))
	}
	if b.AddDays(-1) != a {
		t.Errorf("expected AddDays(-1) to yield %s, got %s", a, b.AddDays(-1))
	}
}
