package game

import "time"

// FrameClock blocks until a full tick interval has passed since the previous
// call. A tick that already ran long is not made up for.
type FrameClock struct {
	last  time.Time
	now   func() time.Time
	sleep func(time.Duration)
}

func NewFrameClock() *FrameClock {
	return &FrameClock{now: time.Now, sleep: time.Sleep}
}

func (c *FrameClock) WaitForNextTick(ticksPerSecond int) {
	interval := time.Second / time.Duration(ticksPerSecond)
	if !c.last.IsZero() {
		if remaining := interval - c.now().Sub(c.last); remaining > 0 {
			c.sleep(remaining)
		}
	}
	c.last = c.now()
}
