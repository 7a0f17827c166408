// Package gui is the windowed front-end: the engine's pixel buffer is
// uploaded to a texture once per frame, and one slice of iterations is
// pumped per update, keeping input responsive during long renders.
package gui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/supermattydomain/AttractorCanvas/internal/colormap"
	"github.com/supermattydomain/AttractorCanvas/internal/engine"
	"github.com/supermattydomain/AttractorCanvas/internal/raster"
)

const windowScale = 2

type Game struct {
	eng       *engine.Engine
	tex       *ebiten.Image
	colourIdx int
	dirty     bool
}

// Run opens the window and blocks until it is closed.
func Run(eng *engine.Engine) error {
	g := &Game{eng: eng, dirty: true}
	eng.SetSurface(g)

	view := eng.Viewport()
	ebiten.SetWindowSize(view.Width*windowScale, view.Height*windowScale)
	ebiten.SetWindowTitle("attractor canvas")

	if err := eng.StartRun(); err != nil {
		return err
	}
	return ebiten.RunGame(g)
}

// Flush implements raster.Surface: the next Draw re-uploads the buffer.
func (g *Game) Flush(*raster.Buffer) { g.dirty = true }

func (g *Game) Update() error {
	if err := g.handleInput(); err != nil {
		return err
	}
	if g.eng.Running() {
		g.eng.Advance()
	}
	return nil
}

func (g *Game) handleInput() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination

	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		if g.eng.Running() {
			g.eng.StopRun()
		} else {
			return g.eng.StartRun()
		}

	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		next := (g.eng.SystemIndex() + 1) % g.eng.Catalog().Len()
		if err := g.eng.SelectSystem(next); err != nil {
			return err
		}
		return g.eng.StartRun()

	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		sets, err := g.eng.Catalog().ParamSets(g.eng.SystemIndex())
		if err != nil {
			return err
		}
		if err := g.eng.SelectParamSet((g.eng.ParamSetIndex() + 1) % len(sets)); err != nil {
			return err
		}
		return g.eng.StartRun()

	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		names := colormap.Names()
		g.colourIdx = (g.colourIdx + 1) % len(names)
		cm, err := colormap.ByName(names[g.colourIdx])
		if err != nil {
			return err
		}
		g.eng.SetColorMapper(cm)
		return g.eng.StartRun()

	case inpututil.IsKeyJustPressed(ebiten.KeyEqual):
		g.eng.SetZoom(g.eng.Zoom() * 1.5)
		return g.eng.StartRun()

	case inpututil.IsKeyJustPressed(ebiten.KeyMinus):
		g.eng.SetZoom(g.eng.Zoom() / 1.5)
		return g.eng.StartRun()

	case g.panKey():
		return g.eng.StartRun()
	}
	return nil
}

// panKey shifts the centre by a tenth of the view span and reports
// whether a pan key fired.
func (g *Game) panKey() bool {
	span := float64(g.eng.Viewport().Width) / g.eng.Zoom() / 10
	c := g.eng.Centre()
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		c.X -= span
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		c.X += span
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		c.Y += span
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		c.Y -= span
	default:
		return false
	}
	g.eng.SetCentre(c)
	return true
}

func (g *Game) Draw(screen *ebiten.Image) {
	buf := g.eng.Buffer()
	if g.tex == nil || g.tex.Bounds().Dx() != buf.Width() || g.tex.Bounds().Dy() != buf.Height() {
		g.tex = ebiten.NewImage(buf.Width(), buf.Height())
		g.dirty = true
	}
	if g.dirty {
		g.tex.WritePixels(buf.Bytes())
		g.dirty = false
	}
	screen.DrawImage(g.tex, nil)

	ebitenutil.DebugPrint(screen, g.status())
}

func (g *Game) status() string {
	sys := g.eng.CurrentSystem()
	frac := float64(g.eng.IterationIndex()) / float64(g.eng.IterationBudget())
	s := fmt.Sprintf("%s  %3.0f%%", sys.Name, frac*100)
	if g.eng.Running() {
		s += "  running"
	} else {
		s += "  " + g.eng.Outcome().String()
	}
	if est, ok := g.eng.LyapunovEstimate(); ok {
		s += fmt.Sprintf("  lyapunov %.5f", est)
	}
	return s
}

func (g *Game) Layout(outW, outH int) (int, int) {
	buf := g.eng.Buffer()
	return buf.Width(), buf.Height()
}
