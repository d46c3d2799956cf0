// Package surface defines the drawing target the background renders into and
// a software raster implementation of it.
package surface

import (
	"image/color"

	"neural-bg/internal/core"
)

// Stop is one color stop of a radial gradient. Offset runs from 0 at the
// center to 1 at the rim.
type Stop struct {
	Offset float64
	Color  color.NRGBA
}

// Surface is a 2D raster the renderer draws into. Colors are non-premultiplied.
type Surface interface {
	Size() core.Size
	SetSize(w, h int)
	Clear()
	FillRadial(cx, cy, r float64, stops []Stop)
	FillCircle(cx, cy, r float64, c color.NRGBA)
	StrokeCircle(cx, cy, r, width float64, c color.NRGBA)
	StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA)
	DrawGlyph(glyph string, x, y, size, angle float64, c color.NRGBA)
}

// RGBA builds a non-premultiplied color with a fractional alpha.
func RGBA(r, g, b uint8, a float64) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: uint8(core.Clamp(a, 0, 1)*255 + 0.5)}
}

// Transparent returns c with zero alpha.
func Transparent(c color.NRGBA) color.NRGBA {
	c.A = 0
	return c
}

// Sample interpolates the gradient at t in [0,1]. Stops must be sorted by
// offset; t outside the stops takes the nearest end color.
func Sample(stops []Stop, t float64) color.NRGBA {
	if len(stops) == 0 {
		return color.NRGBA{}
	}
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	for i := 1; i < len(stops); i++ {
		a, b := stops[i-1], stops[i]
		if t > b.Offset {
			continue
		}
		span := b.Offset - a.Offset
		if span <= 0 {
			return b.Color
		}
		k := (t - a.Offset) / span
		return color.NRGBA{
			R: lerp8(a.Color.R, b.Color.R, k),
			G: lerp8(a.Color.G, b.Color.G, k),
			B: lerp8(a.Color.B, b.Color.B, k),
			A: lerp8(a.Color.A, b.Color.A, k),
		}
	}
	return stops[len(stops)-1].Color
}

func lerp8(a, b uint8, k float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*k + 0.5)
}
