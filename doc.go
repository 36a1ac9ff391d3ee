// Package chariot is a retained-mode 2D cell-grid compositor.
//
// A program builds a tree of rectangular windows. Each window owns a dense
// buffer of cells; [Window.Recompute] merges every visible window into its
// parent bottom-to-top, and a renderer samples the root's composed buffer
// with [Window.DataAt].
//
// # Quick start
//
//	root := chariot.NewWindowFilled("screen", chariot.RectOfSize(chariot.Pt(80, 24)), '.')
//	panel := root.AddChild("panel", chariot.Pt(2, 2), chariot.RectOfSize(chariot.Pt(20, 6)))
//	panel.Fill('#')
//
//	root.Recompute()
//	c, _ := root.DataAt(chariot.Pt(3, 3)) // '#'
//
// # Window tree
//
// Windows are reached only through [Window] handles. A parent owns its
// children; a child refers to its parent through a weak pointer, so it never
// keeps the parent alive. A window has at most one parent: [Window.Attach]
// panics on a window that is still attached elsewhere, so [Window.Detach] it
// first. Children later in the list draw over earlier ones; [Window.Raise]
// and [Window.Lower] move a window to the top or bottom of its siblings.
//
// Each window addresses its buffers in its own coordinates (its span,
// usually starting at the origin). A child's offset places the origin of its
// span inside the parent's coordinates; cells a child maps outside its parent
// are clipped.
//
// # Cells
//
// The cell type only needs to be comparable. Its zero value is the default
// cell. [Glyph] is a ready-made terminal cell with [Color] foreground and
// background.
//
// # Rendering
//
// Renderer packages read a Window[Glyph]: termrender (tcell), textrender
// (lipgloss), imagerender (x/image) and ebitenrender (Ebitengine). The ecs
// package draws [donburi] entities into a window.
//
// # Threading
//
// A window tree is single-threaded. Touching a window while it is being
// composed panics.
//
// [donburi]: https://github.com/yohamta/donburi
package chariot
