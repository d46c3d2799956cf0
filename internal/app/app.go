//go:build ebiten

package app

import (
	"time"

	"neural-bg/internal/backdrop"
	"neural-bg/internal/frame"
	"neural-bg/internal/render"
	"neural-bg/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the background scheduler to the ebiten.Game interface.
type Game struct {
	host    *Host
	frames  frame.Queue
	bg      *backdrop.Scheduler
	cfg     backdrop.Config
	hud     *ui.HUD
	overlay *ui.Overlay

	showHUD  bool
	paused   bool
	tickOnce bool
}

// New mounts the background on a window of the given size.
func New(cfg backdrop.Config, w, h int) *Game {
	g := &Game{host: NewHost(w, h), cfg: cfg}
	g.mount()
	return g
}

func (g *Game) mount() {
	g.bg = backdrop.Mount(g.host, &g.frames, g.cfg)
	g.hud = ui.NewHUD(g.bg)
	g.overlay = ui.NewOverlay(g.bg)
}

// Reset rebuilds the particles with the provided seed.
func (g *Game) Reset(seed int64) {
	g.cfg.Seed = seed
	g.bg.Reset(seed)
}

// Update polls input and runs the frames requested by the scheduler.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.bg.Unmount()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.bg.Seed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		// remount so the cursor layer is attached or detached cleanly
		g.bg.Unmount()
		g.cfg.Cursor = !g.cfg.Cursor
		g.cfg.Seed = g.bg.Seed()
		g.mount()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}

	g.host.Poll()
	g.overlay.Update()
	if !g.paused || g.tickOnce {
		g.frames.Flush()
		g.tickOnce = false
	}
	if g.showHUD {
		g.hud.Update()
	}
	return nil
}

// Draw composites the background over the page color.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.Background)
	if img := g.host.Image(); img != nil {
		screen.DrawImage(img, nil)
	}
	g.overlay.Draw(screen)
	if g.showHUD {
		g.hud.Draw(screen)
	}
}

// Layout tracks the window size so the surface always matches it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.host.SetViewport(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
