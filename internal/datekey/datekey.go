package datekey

import "time"

// Key is a local-calendar day key in the form "2006-01-02".
// Keys compare by value: string order is date order, and "already done
// today" checks are plain equality against today's key. The zero Key
// means "never".
type Key string

const layout = "2006-01-02"

const msPerWeek = 7 * 24 * 60 * 60 * 1000

// At returns the day key for t in the given location.
// A nil location means the system local zone.
func At(t time.Time, loc *time.Location) Key {
	if loc == nil {
		loc = time.Local
	}
	return Key(t.In(loc).Format(layout))
}

// Valid reports whether k parses as a calendar day.
func (k Key) Valid() bool {
	_, err := time.Parse(layout, string(k))
	return err == nil
}

// Noon returns the key's day at 12:00 UTC. Anchoring on noon keeps
// week-index arithmetic stable across DST shifts. Invalid keys return
// the zero time.
func (k Key) Noon() time.Time {
	t, err := time.Parse(layout, string(k))
	if err != nil {
		return time.Time{}
	}
	return t.Add(12 * time.Hour)
}

// Weekday returns the day of week (Sunday = 0).
func (k Key) Weekday() time.Weekday {
	return k.Noon().Weekday()
}

// WeekIndex returns the epoch-week number of the key's day. It never
// resets, so a rotation taken modulo its catalog size rotates every
// seven days with no boundary special-casing.
func (k Key) WeekIndex() int {
	ms := k.Noon().UnixMilli()
	if ms < 0 {
		return 0
	}
	return int(ms / msPerWeek)
}

// AddDays returns the key n days later (n may be negative).
func (k Key) AddDays(n int) Key {
	return Key(k.Noon().AddDate(0, 0, n).Format(layout))
}

// Before reports whether k is an earlier day than other.
func (k Key) Before(other Key) bool { return string(k) < string(other) }

// After reports whether k is a later day than other.
func (k Key) After(other Key) bool { return string(k) > string(other) }
