package audio

import "time"

// Throttle lets at most one event through per Interval.
type Throttle struct {
	Interval time.Duration
	last     time.Time
}

func (t *Throttle) Allow(now time.Time) bool {
	if !t.last.IsZero() && now.Sub(t.last) < t.Interval {
		return false
	}
	t.last = now
	return true
}
