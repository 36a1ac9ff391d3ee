package chariot

import (
	"math"
	"testing"
	"time"
)

// fakeClock returns a Clock driven by a manual time source. Sleeping advances
// the fake time.
func fakeClock(fps int) (*Clock, *time.Time, *[]time.Duration) {
	now := time.Unix(1000, 0)
	var slept []time.Duration
	c := NewClock(fps)
	c.now = func() time.Time { return now }
	c.sleep = func(d time.Duration) {
		slept = append(slept, d)
		now = now.Add(d)
	}
	return c, &now, &slept
}

func TestClockStartsPaused(t *testing.T) {
	c, _, slept := fakeClock(10)
	if !c.Paused() {
		t.Fatal("new clock should be paused")
	}
	c.Tick()
	if c.Frame() != 0 || len(*slept) != 0 {
		t.Error("Tick while paused should do nothing")
	}
}

func TestClockTickSleepsRemainder(t *testing.T) {
	c, now, slept := fakeClock(10)
	c.Unpause()

	*now = now.Add(30 * time.Millisecond)
	c.Tick()
	if len(*slept) != 1 || (*slept)[0] != 70*time.Millisecond {
		t.Errorf("slept %v, want [70ms]", *slept)
	}
	if c.Frame() != 1 {
		t.Errorf("Frame = %d, want 1", c.Frame())
	}

	// A slow frame does not sleep.
	*now = now.Add(250 * time.Millisecond)
	c.Tick()
	if len(*slept) != 1 {
		t.Errorf("slow frame slept: %v", *slept)
	}
}

func TestClockAverageFPS(t *testing.T) {
	c, _, _ := fakeClock(20)
	if c.AverageFPS() != 0 {
		t.Error("AverageFPS before any frame should be 0")
	}
	c.Unpause()
	for range 40 {
		c.Tick()
	}
	if got := c.AverageFPS(); math.Abs(got-20) > 1e-9 {
		t.Errorf("AverageFPS = %v, want 20", got)
	}
}

func TestClockPauseNesting(t *testing.T) {
	c, now, _ := fakeClock(10)
	c.Unpause()
	c.Pause()
	c.Pause()
	c.Unpause()
	if !c.Paused() {
		t.Error("one Unpause should not lift two Pauses")
	}

	*now = now.Add(time.Hour)
	c.Unpause()
	if c.Paused() {
		t.Error("clock should run after matching Unpause")
	}
	c.Tick()
	if got := c.AverageFPS(); math.Abs(got-10) > 1e-9 {
		t.Errorf("paused time leaked into AverageFPS: %v", got)
	}

	c.Unpause()
	c.Unpause()
	if c.Paused() {
		t.Error("extra Unpause should be a no-op")
	}
}

func TestNewClockClampsFPS(t *testing.T) {
	if got := NewClock(0).TargetFPS(); got != 1 {
		t.Errorf("TargetFPS = %d, want 1", got)
	}
}
