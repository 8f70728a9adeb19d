package emblem

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// WindowHost is the Host used under a live Ebitengine window. The viewport
// tracks the game layout; the reduced-motion preference has no portable
// query in this environment, so it is supplied up front (callers may wire it
// to an OS-specific probe or a flag).
type WindowHost struct {
	w, h    float64
	reduced bool
}

// NewWindowHost creates a window host with an initial size.
func NewWindowHost(w, h int, reducedMotion bool) *WindowHost {
	return &WindowHost{w: float64(w), h: float64(h), reduced: reducedMotion}
}

// ViewportSize returns the current window layout size.
func (h *WindowHost) ViewportSize() (float64, float64) { return h.w, h.h }

// PrefersReducedMotion returns the configured motion preference.
func (h *WindowHost) PrefersReducedMotion() bool { return h.reduced }

func (h *WindowHost) setSize(w, hgt int) {
	h.w = float64(w)
	h.h = float64(hgt)
}

// RunConfig configures the window for Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
}

// game adapts a Splash to ebiten.Game.
type game struct {
	splash   *Splash
	touchBuf []ebiten.TouchID
}

func (g *game) Update() error {
	var ev PointerEvent
	ev, g.touchBuf = pollPointer(g.touchBuf)
	g.splash.HandlePointer(ev)
	g.splash.Step(1.0 / float64(ebiten.TPS()))
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	drawStage(screen, g.splash.Stage())
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if wh, ok := g.splash.Stage().host.(*WindowHost); ok {
		wh.setSize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Run opens a window and drives the splash until the window closes. The
// splash must have been constructed over a WindowHost for live resizes to
// reach it.
func Run(s *Splash, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 800
	}
	if cfg.Height <= 0 {
		cfg.Height = 600
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(&game{splash: s})
}
