package ebitenrender

import (
	"encoding/json"
	"fmt"
	"image"

	"github.com/phanxgames/chariot"
	"github.com/phanxgames/chariot/imagerender"
)

// scriptStep is a single action in a script.
type scriptStep struct {
	Action string `json:"action"`
	Label  string `json:"label,omitempty"`
	X      int    `json:"x,omitempty"`
	Y      int    `json:"y,omitempty"`
	Frames int    `json:"frames,omitempty"`
}

type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script plays back clicks, waits and screenshots across frames for
// automated visual checks. Attach it with Game.SetScript.
//
//	{"steps": [
//		{"action": "screenshot", "label": "initial"},
//		{"action": "click", "x": 100, "y": 40},
//		{"action": "wait", "frames": 3},
//		{"action": "screenshot", "label": "after-click"}
//	]}
//
// Click coordinates are layout pixels, the same space as CellAt.
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON script.
func LoadScript(data []byte) (*Script, error) {
	var file scriptFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(file.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range file.Steps {
		switch st.Action {
		case "click", "screenshot", "wait":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: file.Steps}, nil
}

// Done reports whether every step has run.
func (s *Script) Done() bool { return s.done }

// SetScript attaches s to the game. Its steps run from Update, one per frame
// unless a wait is pending.
func (g *Game) SetScript(s *Script) { g.script = s }

// InjectClick queues a left click at layout pixel (x, y). Queued clicks are
// handled one per Update in place of real mouse input.
func (g *Game) InjectClick(x, y int) {
	g.injected = append(g.injected, image.Pt(x, y))
}

// Screenshot queues a PNG of the next drawn frame, written to ScreenshotDir.
func (g *Game) Screenshot(label string) {
	g.screenshots = append(g.screenshots, label)
}

// step advances the script by one frame.
func (s *Script) step(g *Game) {
	if s.done || len(g.injected) > 0 {
		return
	}
	if s.waitCount > 0 {
		s.waitCount--
		return
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "screenshot":
		g.Screenshot(st.Label)
	case "click":
		g.InjectClick(st.X, st.Y)
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1
		}
	}

	if s.cursor >= len(s.steps) && s.waitCount == 0 && len(g.injected) == 0 {
		s.done = true
	}
}

// processInjected handles one queued click. It reports whether one was
// consumed, in which case real mouse input is skipped for the frame.
func (g *Game) processInjected() bool {
	if len(g.injected) == 0 {
		return false
	}
	p := g.injected[0]
	g.injected = g.injected[1:]
	g.click(p.X, p.Y)
	return true
}

// flushScreenshots writes the last rasterized frame once per queued label.
func (g *Game) flushScreenshots() {
	if len(g.screenshots) == 0 || g.pixels == nil {
		return
	}
	for _, label := range g.screenshots {
		if _, err := imagerender.SavePNG(g.ScreenshotDir, label, g.pixels); err != nil {
			chariot.Logger().Warn("ebitenrender: screenshot", "label", label, "err", err)
		}
	}
	g.screenshots = g.screenshots[:0]
}
