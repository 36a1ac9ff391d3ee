package chariot

import (
	"fmt"
	"weak"
)

// node is a single surface of the window tree. It is never handed out
// directly; all access goes through a Window handle.
type node[C comparable] struct {
	id string

	// Hierarchy. Children are owned; the parent is only looked up.
	parent   weak.Pointer[node[C]]
	children []*node[C]

	offset Point // origin inside the parent's local coordinates
	size   Point
	span   Rect // (origin, origin+size), node-local

	hidden bool // hides the whole subtree from the parent's composition
	def    C

	self *Grid[C] // own cells, no children
	data *Grid[C] // self merged with visible descendants

	composing bool
}

func newNode[C comparable](id string, span Rect, def C) *node[C] {
	return &node[C]{
		id:   id,
		size: span.Size(),
		span: span,
		def:  def,
		self: NewGrid(span, def),
		data: NewGrid(span, def),
	}
}

// Window is a handle to a node of the window tree. Handles are cheap values;
// copies refer to the same node and compare equal with Equal.
//
// The zero Window refers to nothing and panics on use.
type Window[C comparable] struct {
	n *node[C]
}

// NewWindow creates a standalone window covering span, with every cell set to
// the zero value of C.
func NewWindow[C comparable](id string, span Rect) Window[C] {
	var zero C
	return Window[C]{n: newNode(id, span, zero)}
}

// NewWindowFilled creates a standalone window covering span whose default cell
// is def. Both buffers start filled with def.
func NewWindowFilled[C comparable](id string, span Rect, def C) Window[C] {
	return Window[C]{n: newNode(id, span, def)}
}

// use returns the node for an operation, panicking on the zero handle or
// while the node is being composed. Every handle operation goes through it,
// so reads such as ID or Span are refused during composition too.
func (w Window[C]) use(op string) *node[C] {
	if w.n == nil {
		panic("chariot: " + op + " on zero Window")
	}
	if w.n.composing {
		panic(fmt.Sprintf("chariot: %s on window %q while it is being composed", op, w.n.id))
	}
	return w.n
}

// IsZero reports whether w refers to no window.
func (w Window[C]) IsZero() bool { return w.n == nil }

// Equal reports whether w and o refer to the same window.
func (w Window[C]) Equal(o Window[C]) bool { return w.n == o.n }

// --- Tree manipulation ---

// AddChild creates a window covering span, attaches it at offset as the
// topmost child of w and returns it. The child does not have to fit inside w;
// whatever falls outside is clipped when composing.
func (w Window[C]) AddChild(id string, offset Point, span Rect) Window[C] {
	n := w.use("AddChild")
	var zero C
	child := newNode(id, span, zero)
	n.adopt(child, offset)
	return Window[C]{n: child}
}

// Attach makes the orphan child the topmost child of w at offset.
// Panics if child is zero, already has a parent, or is an ancestor of w.
func (w Window[C]) Attach(child Window[C], offset Point) {
	n := w.use("Attach")
	if child.n == nil {
		panic("chariot: cannot attach zero Window")
	}
	c := child.use("Attach")
	if p := c.parent.Value(); p != nil {
		panic(fmt.Sprintf("chariot: window %q already has parent %q; detach it first", c.id, p.id))
	}
	if isAncestor(c, n) {
		panic("chariot: attaching window would create a cycle")
	}
	n.adopt(c, offset)
}

func (n *node[C]) adopt(child *node[C], offset Point) {
	child.offset = offset
	child.parent = weak.Make(n)
	n.children = append(n.children, child)
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
}

// Detach removes w from its parent's children. w keeps its own subtree.
// No-op for orphans.
func (w Window[C]) Detach() {
	n := w.use("Detach")
	p := n.parent.Value()
	if p == nil {
		return
	}
	if p.composing {
		panic(fmt.Sprintf("chariot: Detach from window %q while it is being composed", p.id))
	}
	p.removeChildByPtr(n)
	n.parent = weak.Pointer[node[C]]{}
}

// Destroy detaches w, then severs every link in its subtree so that each
// descendant ends up parentless and childless. Every node's composed buffer is
// reset to its own cells. Handles held elsewhere stay usable.
func (w Window[C]) Destroy() {
	w.Detach()
	w.n.demolish()
}

func (n *node[C]) demolish() {
	if n.composing {
		panic(fmt.Sprintf("chariot: Destroy reached window %q while it is being composed", n.id))
	}
	n.parent = weak.Pointer[node[C]]{}
	for i, child := range n.children {
		child.demolish()
		n.children[i] = nil
	}
	n.children = nil
	n.data.CopyFrom(n.self)
}

// Lower moves w to the bottom of its siblings. No-op for orphans.
func (w Window[C]) Lower() {
	w.moveTo(func(int) int { return 0 })
}

// Raise moves w to the top of its siblings. No-op for orphans.
func (w Window[C]) Raise() {
	w.moveTo(func(count int) int { return count - 1 })
}

func (w Window[C]) moveTo(target func(count int) int) {
	n := w.use("reorder")
	p := n.parent.Value()
	if p == nil {
		return
	}
	old := p.indexOf(n)
	if old < 0 {
		return
	}
	index := target(len(p.children))
	if old == index {
		return
	}
	// Shift the siblings in between to fill the gap and open the target slot.
	if old < index {
		copy(p.children[old:], p.children[old+1:index+1])
	} else {
		copy(p.children[index+1:], p.children[index:old])
	}
	p.children[index] = n
}

// --- Hierarchy queries ---

// Parent returns the window w is attached to.
func (w Window[C]) Parent() (Window[C], bool) {
	p := w.use("Parent").parent.Value()
	if p == nil {
		return Window[C]{}, false
	}
	return Window[C]{n: p}, true
}

// IsOrphan reports whether w has no parent.
func (w Window[C]) IsOrphan() bool {
	return w.use("IsOrphan").parent.Value() == nil
}

// Children returns handles to the children of w, bottom to top.
func (w Window[C]) Children() []Window[C] {
	n := w.use("Children")
	out := make([]Window[C], len(n.children))
	for i, c := range n.children {
		out[i] = Window[C]{n: c}
	}
	return out
}

// NumChildren returns the number of children.
func (w Window[C]) NumChildren() int { return len(w.use("NumChildren").children) }

// ChildAt returns the child at index, 0 being the bottom-most.
func (w Window[C]) ChildAt(index int) Window[C] {
	n := w.use("ChildAt")
	if index < 0 || index >= len(n.children) {
		panic("chariot: child index out of range")
	}
	return Window[C]{n: n.children[index]}
}

// Root walks the parent chain to the top.
func (w Window[C]) Root() Window[C] {
	n := w.use("Root")
	for p := n.parent.Value(); p != nil; p = p.parent.Value() {
		n = p
	}
	return Window[C]{n: n}
}

// IsAncestorOf reports whether w is o or appears on o's parent chain.
func (w Window[C]) IsAncestorOf(o Window[C]) bool {
	w.use("IsAncestorOf")
	return isAncestor(w.n, o.use("IsAncestorOf"))
}

// FindByID searches the subtree depth-first, w included, and returns the
// first window with the given id. Ids are not required to be unique.
func (w Window[C]) FindByID(id string) (Window[C], bool) {
	if n := w.use("FindByID").find(id); n != nil {
		return Window[C]{n: n}, true
	}
	return Window[C]{}, false
}

func (n *node[C]) find(id string) *node[C] {
	if n.id == id {
		return n
	}
	for _, c := range n.children {
		if hit := c.find(id); hit != nil {
			return hit
		}
	}
	return nil
}

// Walk visits w and its descendants depth-first in sibling order. depth is 0
// for w. Returning false from fn skips the visited window's children.
func (w Window[C]) Walk(fn func(win Window[C], depth int) bool) {
	w.use("Walk").walk(0, fn)
}

func (n *node[C]) walk(depth int, fn func(Window[C], int) bool) {
	if !fn(Window[C]{n: n}, depth) {
		return
	}
	for _, c := range n.children {
		c.walk(depth+1, fn)
	}
}

// Select returns the window under p, given in w's local coordinates, along
// with p translated into that window's coordinates. The deepest visible
// descendant wins, and among overlapping siblings the topmost one. When no
// child covers p, w itself is returned. The boolean is false when p lies
// outside w.
func (w Window[C]) Select(p Point) (Window[C], Point, bool) {
	n, lp := w.use("Select").selectAt(p)
	if n == nil {
		return Window[C]{}, Point{}, false
	}
	return Window[C]{n: n}, lp, true
}

func (n *node[C]) selectAt(p Point) (*node[C], Point) {
	if !n.span.Contains(p) {
		return nil, Point{}
	}
	for i := len(n.children) - 1; i >= 0; i-- {
		c := n.children[i]
		if c.hidden {
			continue
		}
		if hit, lp := c.selectAt(p.Sub(c.offset).Add(c.span.Min)); hit != nil {
			return hit, lp
		}
	}
	return n, p
}

// ToParent maps a point in w's coordinates into its parent's coordinates.
func (w Window[C]) ToParent(p Point) Point {
	n := w.use("ToParent")
	return n.offset.Add(p.Sub(n.span.Min))
}

// ToRoot maps a point in w's coordinates into the coordinates of its root.
func (w Window[C]) ToRoot(p Point) Point {
	n := w.use("ToRoot")
	for par := n.parent.Value(); par != nil; par = par.parent.Value() {
		p = n.offset.Add(p.Sub(n.span.Min))
		n = par
	}
	return p
}

// --- Properties ---

// ID returns the window's id.
func (w Window[C]) ID() string { return w.use("ID").id }

// Offset returns the window's origin in its parent's coordinates.
func (w Window[C]) Offset() Point { return w.use("Offset").offset }

// SetOffset moves the window inside its parent.
func (w Window[C]) SetOffset(offset Point) { w.use("SetOffset").offset = offset }

// Size returns the window's dimensions.
func (w Window[C]) Size() Point { return w.use("Size").size }

// Span returns the window's local addressable region.
func (w Window[C]) Span() Rect { return w.use("Span").span }

// Default returns the cell used for regions exposed by Resize.
func (w Window[C]) Default() C { return w.use("Default").def }

// SetDefault changes the cell used for regions exposed by Resize.
func (w Window[C]) SetDefault(c C) { w.use("SetDefault").def = c }

// Hidden reports whether the window is excluded from its parent's composition.
func (w Window[C]) Hidden() bool { return w.use("Hidden").hidden }

// SetHidden hides or shows the window together with its whole subtree.
func (w Window[C]) SetHidden(hidden bool) { w.use("SetHidden").hidden = hidden }

// Resize changes the window's size keeping its origin. Cells inside both the
// old and new span are kept; newly exposed cells get the default cell.
// Negative components are clamped to zero, leaving an empty window at the
// same origin.
func (w Window[C]) Resize(size Point) {
	n := w.use("Resize")
	size = Point{max(size.X, 0), max(size.Y, 0)}
	if size == n.size {
		return
	}
	span := Rect{Min: n.span.Min, Max: n.span.Min.Add(size)}
	self := NewGrid(span, n.def)
	self.Blit(n.self, n.span)
	n.self = self
	n.data = self.Clone()
	n.span = span
	n.size = span.Size()
}

// --- Cells ---

// Set writes c into the window's own buffer and reports whether p is inside.
func (w Window[C]) Set(p Point, c C) bool { return w.use("Set").self.Set(p, c) }

// Get reads the window's own buffer.
func (w Window[C]) Get(p Point) (C, bool) { return w.use("Get").self.Get(p) }

// DataAt reads the composed buffer produced by the last Recompute.
func (w Window[C]) DataAt(p Point) (C, bool) { return w.use("DataAt").data.Get(p) }

// Fill sets every cell of the window's own buffer to c.
func (w Window[C]) Fill(c C) { w.use("Fill").self.Fill(c) }

// FillRect sets the cells of r, clipped to the window, to c and returns how
// many cells were written.
func (w Window[C]) FillRect(r Rect, c C) int { return w.use("FillRect").self.FillRect(r, c) }

// --- Helpers ---

// isAncestor reports whether candidate is node or one of its ancestors.
func isAncestor[C comparable](candidate, n *node[C]) bool {
	for p := n; p != nil; p = p.parent.Value() {
		if p == candidate {
			return true
		}
	}
	return false
}

func (n *node[C]) indexOf(child *node[C]) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}

// removeChildByPtr removes child from n.children without clearing its parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *node[C]) removeChildByPtr(child *node[C]) {
	i := n.indexOf(child)
	if i < 0 {
		return
	}
	copy(n.children[i:], n.children[i+1:])
	n.children[len(n.children)-1] = nil
	n.children = n.children[:len(n.children)-1]
}
