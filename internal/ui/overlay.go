//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"neural-bg/internal/core"
	"neural-bg/internal/field"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// FieldSource exposes the live simulation state the overlay inspects.
type FieldSource interface {
	Pointer() *field.Pointer
	Pool() *field.Pool
}

// Overlay draws optional debugging visuals of the force field on top of the
// background.
type Overlay struct {
	src        FieldSource
	showRadii  bool
	showTilt   bool
	showOffset bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(src FieldSource) *Overlay {
	return &Overlay{src: src}
}

// Update toggles the layers with the digit keys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showRadii = !o.showRadii
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showTilt = !o.showTilt
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showOffset = !o.showOffset
	}
}

// Draw renders the enabled layers onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	p := o.src.Pointer()
	b := screen.Bounds()
	size := core.Size{W: b.Dx(), H: b.Dy()}

	if o.showRadii && p.Engaged() {
		x, y := float32(p.Smoothed.X), float32(p.Smoothed.Y)
		vector.StrokeCircle(screen, x, y, field.MouseRadius, 1, color.RGBA{R: 0, G: 122, B: 244, A: 160}, true)
		vector.StrokeCircle(screen, x, y, field.MouseRadius*field.SymbolRadiusMul, 1, color.RGBA{R: 168, G: 85, B: 247, A: 160}, true)
		vector.StrokeCircle(screen, x, y, field.MouseRadius*field.SparkRadiusMul, 1, color.RGBA{R: 0, G: 198, B: 255, A: 120}, true)
	}

	if o.showTilt {
		c := size.Center()
		t := field.ParallaxTarget(p, size, 1)
		drawArrow(screen, c.X, c.Y, c.X+t.X*4, c.Y+t.Y*4, color.RGBA{R: 240, G: 200, B: 80, A: 220})
	}

	pool := o.src.Pool()
	if o.showOffset && pool != nil {
		for i := range pool.Glow {
			g := &pool.Glow[i]
			pos := g.Pos()
			drawArrow(screen, g.BaseX, g.BaseY, pos.X, pos.Y, color.RGBA{R: 90, G: 220, B: 140, A: 200})
		}
	}
}

func drawArrow(screen *ebiten.Image, x0, y0, x1, y1 float64, col color.RGBA) {
	const headAngle = math.Pi / 6
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		vector.DrawFilledCircle(screen, float32(x0), float32(y0), 1.5, col, true)
		return
	}
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, col, true)
	head := math.Min(length*0.3, 8)
	angle := math.Atan2(dy, dx)
	for _, a := range []float64{angle + headAngle, angle - headAngle} {
		hx := x1 - math.Cos(a)*head
		hy := y1 - math.Sin(a)*head
		vector.StrokeLine(screen, float32(x1), float32(y1), float32(hx), float32(hy), 1, col, true)
	}
}
