// Package ebitenrender shows a composed Window[chariot.Glyph] in an
// [Ebitengine] window.
//
// The simplest entry point is [Run]:
//
//	root := chariot.NewWindowFilled("screen", chariot.RectOfSize(chariot.Pt(80, 24)), blank)
//	// ... add windows ...
//	ebitenrender.Run(ebitenrender.NewGame(root), ebitenrender.RunConfig{
//		Title: "My Game", Scale: 2,
//	})
//
// [Ebitengine]: https://ebitengine.org
package ebitenrender

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/chariot"
	"github.com/phanxgames/chariot/imagerender"
)

// RunConfig holds optional configuration for Run.
type RunConfig struct {
	// Title sets the window title.
	Title string
	// Scale enlarges each pixel of the cell grid. Values below 1 mean 1.
	Scale int
	// ShowFPS overlays the current FPS and TPS in the top-left corner.
	ShowFPS bool
	// TPS sets the update rate. 0 keeps Ebitengine's default of 60.
	TPS int
}

// Game is an ebiten.Game that recomposes and draws a window tree every frame.
type Game struct {
	root   chariot.Window[chariot.Glyph]
	raster *imagerender.Rasterizer

	pixels *image.RGBA
	frame  *ebiten.Image

	// ShowFPS overlays the current FPS and TPS.
	ShowFPS bool

	// OnUpdate runs once per tick with the tick duration in seconds.
	// Returning an error stops the game.
	OnUpdate func(dt float64) error

	// OnSelect is called for a left click with the window drawn under the
	// cursor and the clicked point inside it.
	OnSelect func(w chariot.Window[chariot.Glyph], p chariot.Point)

	// ScreenshotDir receives PNGs queued with Screenshot.
	ScreenshotDir string

	script      *Script
	injected    []image.Point
	screenshots []string
}

// NewGame returns a game drawing root with the 7x13 basic font.
func NewGame(root chariot.Window[chariot.Glyph]) *Game {
	return &Game{root: root, raster: imagerender.New(), ScreenshotDir: "screenshots"}
}

// Root returns the window tree being drawn.
func (g *Game) Root() chariot.Window[chariot.Glyph] { return g.root }

// Update implements ebiten.Game.
func (g *Game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	if g.OnUpdate != nil {
		if err := g.OnUpdate(dt); err != nil {
			return err
		}
	}
	if g.script != nil {
		g.script.step(g)
	}
	if g.processInjected() {
		return nil
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.click(ebiten.CursorPosition())
	}
	return nil
}

func (g *Game) click(px, py int) {
	if g.OnSelect == nil {
		return
	}
	if w, p, ok := g.CellAt(px, py); ok {
		g.OnSelect(w, p)
	}
}

// CellAt resolves a pixel position in layout coordinates to the window drawn
// there and the point inside it.
func (g *Game) CellAt(px, py int) (chariot.Window[chariot.Glyph], chariot.Point, bool) {
	if px < 0 || py < 0 {
		return chariot.Window[chariot.Glyph]{}, chariot.Point{}, false
	}
	p := chariot.Pt(px/g.raster.CellW, py/g.raster.CellH).Add(g.root.Span().Min)
	return g.root.Select(p)
}

// Draw implements ebiten.Game. It recomposes the tree, rasterizes the root
// and copies the pixels to the screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.root.Recompute()

	bounds := g.raster.Bounds(g.root)
	if g.pixels == nil || g.pixels.Bounds() != bounds {
		g.pixels = image.NewRGBA(bounds)
		if g.frame != nil {
			g.frame.Deallocate()
		}
		g.frame = ebiten.NewImage(bounds.Dx(), bounds.Dy())
	} else {
		clear(g.pixels.Pix)
	}
	g.raster.Draw(g.pixels, g.root)
	g.flushScreenshots()
	g.frame.WritePixels(g.pixels.Pix)
	screen.DrawImage(g.frame, nil)

	if g.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

// Layout implements ebiten.Game. The logical screen is exactly the size of
// the rasterized root.
func (g *Game) Layout(_, _ int) (int, int) {
	b := g.raster.Bounds(g.root)
	return b.Dx(), b.Dy()
}

// Run opens a window sized to the root and runs g until the window is closed
// or OnUpdate returns an error.
func Run(g *Game, cfg RunConfig) error {
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	scale := max(cfg.Scale, 1)
	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(w*scale, h*scale)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	g.ShowFPS = g.ShowFPS || cfg.ShowFPS
	chariot.Logger().Debug("ebitenrender: run", "title", cfg.Title, "width", w*scale, "height", h*scale)
	return ebiten.RunGame(g)
}
