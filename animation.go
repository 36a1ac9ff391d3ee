package chariot

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// OffsetTween slides a window from its current offset to a target offset.
// Create one with TweenOffset and call Update(dt) each frame; the offset is
// written back rounded to whole cells.
//
// There is no global animation manager; callers drive Update themselves.
type OffsetTween[C comparable] struct {
	x, y   *gween.Tween
	target Window[C]
	Done   bool
}

// TweenOffset creates a tween that moves w to the offset to over duration
// seconds using the easing function fn.
func TweenOffset[C comparable](w Window[C], to Point, duration float32, fn ease.TweenFunc) *OffsetTween[C] {
	from := w.Offset()
	return &OffsetTween[C]{
		x:      gween.New(float32(from.X), float32(to.X), duration, fn),
		y:      gween.New(float32(from.Y), float32(to.Y), duration, fn),
		target: w,
	}
}

// Update advances the tween by dt seconds and applies the new offset.
// It reports whether the tween has finished.
func (t *OffsetTween[C]) Update(dt float32) bool {
	if t.Done {
		return true
	}
	x, xDone := t.x.Update(dt)
	y, yDone := t.y.Update(dt)
	t.target.SetOffset(Point{
		X: int(math.Round(float64(x))),
		Y: int(math.Round(float64(y))),
	})
	t.Done = xDone && yDone
	return t.Done
}

// Reset rewinds the tween to its start offset.
func (t *OffsetTween[C]) Reset() {
	t.x.Reset()
	t.y.Reset()
	t.Done = false
}
