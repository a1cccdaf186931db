package sim

import "time"

// Interval is a fixed-interval timer driven by the frame loop rather than a
// goroutine, so its callbacks run in tick order with input and drawing.
type Interval struct {
	Every   time.Duration
	elapsed time.Duration
}

// Advance adds dt and returns how many times the interval fired.
func (iv *Interval) Advance(dt time.Duration) int {
	if iv.Every <= 0 {
		return 0
	}
	iv.elapsed += dt
	n := int(iv.elapsed / iv.Every)
	iv.elapsed -= time.Duration(n) * iv.Every
	return n
}

// Reset drops any partially elapsed interval.
func (iv *Interval) Reset() { iv.elapsed = 0 }
