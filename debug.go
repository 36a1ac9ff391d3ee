package chariot

import (
	"fmt"
	"io"
	"strings"
)

// globalDebug enables tree-shape warnings and recompute stats. Window
// operations have no owning scene to ask, so the flag is package-wide.
var globalDebug bool

// SetDebugMode enables or disables debug mode. When enabled, deep trees and
// crowded windows are reported as warnings and every Recompute logs its
// stats at debug level through Logger.
func SetDebugMode(enabled bool) {
	globalDebug = enabled
}

// debugMaxTreeDepth is the depth above which attaching warns.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth[C comparable](n *node[C]) {
	depth := 0
	for p := n; p != nil; p = p.parent.Value() {
		depth++
	}
	if depth > debugMaxTreeDepth {
		Logger().Warn("chariot: tree depth exceeds threshold",
			"window", n.id, "depth", depth, "threshold", debugMaxTreeDepth)
	}
}

// debugMaxChildCount is the child count above which attaching warns.
const debugMaxChildCount = 1000

func debugCheckChildCount[C comparable](n *node[C]) {
	if len(n.children) > debugMaxChildCount {
		Logger().Warn("chariot: window has many children",
			"window", n.id, "children", len(n.children), "threshold", debugMaxChildCount)
	}
}

// DumpTree writes one line per window of the subtree: id, size, span and
// offset, indented two spaces per level. Hidden windows are marked.
func (w Window[C]) DumpTree(out io.Writer) error {
	var err error
	w.Walk(func(win Window[C], depth int) bool {
		if err != nil {
			return false
		}
		n := win.n
		hidden := ""
		if n.hidden {
			hidden = " hidden"
		}
		_, err = fmt.Fprintf(out, "%s%s %v %v @ %v%s\n",
			strings.Repeat(" ", 2*depth), n.id, n.size, n.span, n.offset, hidden)
		return err == nil
	})
	return err
}

// Dump writes the composed buffer row by row, formatting each cell with %v.
func (w Window[C]) Dump(out io.Writer) error {
	n := w.use("Dump")
	var b strings.Builder
	for y := n.span.Min.Y; y < n.span.Max.Y; y++ {
		b.Reset()
		for x := n.span.Min.X; x < n.span.Max.X; x++ {
			c, _ := n.data.Get(Point{x, y})
			fmt.Fprintf(&b, "%v", c)
		}
		b.WriteByte('\n')
		if _, err := io.WriteString(out, b.String()); err != nil {
			return err
		}
	}
	return nil
}
