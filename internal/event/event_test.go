package event

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"taskquest/internal/datekey"
)

func TestDailyEvent(t *testing.T) {
	t.Run("indexed by day of week", func(t *testing.T) {
		// 2024-03-03 was a Sunday
		assert.Equal(t, "rest_sunday", DailyEvent("2024-03-03").ID)
		assert.Equal(t, "grind_monday", DailyEvent("2024-03-04").ID)
		assert.Equal(t, "gacha_tuesday", DailyEvent("2024-03-05").ID)
		assert.Equal(t, "free_saturday", DailyEvent("2024-03-09").ID)
	})

	t.Run("referentially stable for the same key", func(t *testing.T) {
		key := datekey.Key("2024-03-05")
		assert.Equal(t, DailyEvent(key), DailyEvent(key))
	})
}

func TestWeeklyEvent(t *testing.T) {
	t.Run("rotates every seven days", func(t *testing.T) {
		key := datekey.Key("2024-02-29") // Thursday: start of an epoch week
		first := WeeklyEvent(key)
		for d := 1; d < 7; d++ {
			assert.Equal(t, first.ID, WeeklyEvent(key.AddDays(d)).ID, "day +%d", d)
		}
		assert.NotEqual(t, first.ID, WeeklyEvent(key.AddDays(7)).ID)
	})

	t.Run("full cycle returns to start", func(t *testing.T) {
		key := datekey.Key("2024-02-29")
		assert.Equal(t, WeeklyEvent(key).ID, WeeklyEvent(key.AddDays(28)).ID)
	})
}

func TestActiveEvents(t *testing.T) {
	events := ActiveEvents("2024-03-05")
	assert.Len(t, events, 2)
	assert.Equal(t, KindDaily, events[0].Kind)
	assert.Equal(t, KindWeekly, events[1].Kind)
}
