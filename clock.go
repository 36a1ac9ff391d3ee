package chariot

import "time"

// Clock paces a frame loop at a fixed target rate. Tick sleeps away whatever
// is left of the current frame and counts it.
//
// A new Clock starts paused; pauses nest, so every Pause needs a matching
// Unpause. While paused Tick returns immediately without counting.
type Clock struct {
	targetFPS int
	frameDur  time.Duration

	last   time.Time
	total  time.Duration
	frames int
	pauses int

	now   func() time.Time
	sleep func(time.Duration)
}

// NewClock returns a paused clock targeting fps frames per second.
// Values below 1 are treated as 1.
func NewClock(fps int) *Clock {
	fps = max(fps, 1)
	return &Clock{
		targetFPS: fps,
		frameDur:  time.Second / time.Duration(fps),
		pauses:    1,
		now:       time.Now,
		sleep:     time.Sleep,
	}
}

// Tick waits until the current frame's time is used up and advances the
// frame counter.
func (c *Clock) Tick() {
	if c.pauses > 0 {
		return
	}
	if elapsed := c.now().Sub(c.last); elapsed < c.frameDur {
		c.sleep(c.frameDur - elapsed)
	}
	t := c.now()
	c.total += t.Sub(c.last)
	c.last = t
	c.frames++
}

// Pause stops the clock.
func (c *Clock) Pause() {
	c.pauses++
}

// Unpause undoes one Pause. The frame timer restarts when the last pause is
// lifted so paused time is not counted.
func (c *Clock) Unpause() {
	if c.pauses == 0 {
		return
	}
	c.pauses--
	if c.pauses == 0 {
		c.last = c.now()
	}
}

// Paused reports whether the clock is paused.
func (c *Clock) Paused() bool { return c.pauses > 0 }

// Frame returns the number of frames ticked so far.
func (c *Clock) Frame() int { return c.frames }

// TargetFPS returns the configured frame rate.
func (c *Clock) TargetFPS() int { return c.targetFPS }

// AverageFPS returns frames per second measured over all unpaused time.
func (c *Clock) AverageFPS() float64 {
	if c.total <= 0 {
		return 0
	}
	return float64(c.frames) / c.total.Seconds()
}
