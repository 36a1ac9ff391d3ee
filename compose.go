package chariot

import (
	"fmt"
	"time"
)

// composeStats counts the work done by one Recompute pass.
type composeStats struct {
	windows int
	cells   int
}

// Recompute rebuilds the composed buffer of w and of every visible window
// below it. Each window starts from its own cells; children are then drawn in
// sibling order, so the last visible sibling wins where children overlap.
// Points a child maps outside its parent are dropped.
//
// The whole subtree is recomposed on every call.
func (w Window[C]) Recompute() {
	n := w.use("Recompute")
	var stats composeStats
	var t0 time.Time
	if globalDebug {
		t0 = time.Now()
	}
	n.compose(&stats)
	if globalDebug {
		Logger().Debug("chariot: recompute",
			"window", n.id,
			"windows", stats.windows,
			"cells", stats.cells,
			"elapsed", time.Since(t0))
	}
}

func (n *node[C]) compose(stats *composeStats) {
	if n.composing {
		panic(fmt.Sprintf("chariot: window %q reached twice while composing; the tree has a cycle", n.id))
	}
	n.composing = true
	defer func() { n.composing = false }()

	stats.windows++
	n.data.CopyFrom(n.self)
	for _, c := range n.children {
		if c.hidden {
			continue
		}
		c.compose(stats)
		stats.cells += n.blitChild(c)
	}
}

// blitChild copies the composed cells of c into n.data at c's offset and
// returns the number of cells written.
func (n *node[C]) blitChild(c *node[C]) int {
	// Destination rectangle of c in n's coordinates, clipped to n.
	dst, ok := c.span.Sub(c.span.Min).Add(c.offset).Intersection(n.span)
	if !ok {
		return 0
	}
	shift := c.span.Min.Sub(c.offset)
	written := 0
	for q := range dst.Points() {
		if cell, ok := c.data.Get(q.Add(shift)); ok {
			n.data.Set(q, cell)
			written++
		}
	}
	return written
}
