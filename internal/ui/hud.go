//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"neural-bg/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD renders a read-only parameter panel in the top-left corner.
type HUD struct {
	src      parameterProvider
	refresh  *core.FixedStep
	snapshot core.ParameterSnapshot
	face     text.Face
	lines    int
}

// NewHUD constructs a HUD that polls src about twice a second.
func NewHUD(src parameterProvider) *HUD {
	return &HUD{
		src:     src,
		refresh: core.NewFixedStep(hudRefreshRate, core.SystemClock{}),
		face:    text.NewGoXFace(basicfont.Face7x13),
	}
}

// Update refreshes the cached snapshot when due.
func (h *HUD) Update() {
	if h == nil || h.src == nil {
		return
	}
	if !h.refresh.ShouldStep() {
		return
	}
	h.snapshot = h.src.Parameters()
	h.lines = 0
	for _, g := range h.snapshot.Groups {
		h.lines += 1 + len(g.Params)
	}
}

// Draw paints the panel over screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil {
		return
	}
	height := panelPadding*2 + lineHeight*(h.lines+1)
	vector.DrawFilledRect(screen, 0, 0, panelWidth, float32(height), color.RGBA{R: 10, G: 12, B: 20, A: 200}, false)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS %.1f  TPS %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()), panelPadding, panelPadding)
	y := panelPadding + lineHeight
	for _, g := range h.snapshot.Groups {
		h.print(screen, g.Name, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
		y += lineHeight
		for _, p := range g.Params {
			h.print(screen, fmt.Sprintf("%-16s %s", p.Label, p.Value), panelPadding+8, y, color.RGBA{R: 150, G: 170, B: 200, A: 255})
			y += lineHeight
		}
	}
}

func (h *HUD) print(screen *ebiten.Image, s string, x, y int, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, h.face, op)
}

const (
	hudRefreshRate = 2
	panelWidth     = 240
	panelPadding   = 8
	lineHeight     = 16
)
