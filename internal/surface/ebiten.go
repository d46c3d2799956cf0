//go:build ebiten

package surface

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"neural-bg/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gomono"
)

const gradientSize = 256

// Screen is a Surface backed by an offscreen ebiten image.
type Screen struct {
	img   *ebiten.Image
	w, h  int
	face  *text.GoTextFaceSource
	cache map[string]*ebiten.Image
}

// NewScreen allocates an offscreen target of the given size.
func NewScreen(w, h int) (*Screen, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("load mono font: %w", err)
	}
	s := &Screen{face: src, cache: map[string]*ebiten.Image{}}
	s.SetSize(w, h)
	return s, nil
}

// Image returns the offscreen image, or nil while the size is empty.
func (s *Screen) Image() *ebiten.Image { return s.img }

func (s *Screen) Size() core.Size { return core.Size{W: s.w, H: s.h} }

func (s *Screen) SetSize(w, h int) {
	w, h = max(w, 0), max(h, 0)
	if w == s.w && h == s.h && (s.img != nil || w == 0 || h == 0) {
		return
	}
	if s.img != nil {
		s.img.Deallocate()
		s.img = nil
	}
	s.w, s.h = w, h
	if w > 0 && h > 0 {
		s.img = ebiten.NewImage(w, h)
	}
}

func (s *Screen) Clear() {
	if s.img != nil {
		s.img.Clear()
	}
}

// FillRadial draws a cached gradient sprite scaled to the radius.
func (s *Screen) FillRadial(cx, cy, r float64, stops []Stop) {
	if s.img == nil || r <= 0 || len(stops) == 0 {
		return
	}
	peak := peakAlpha(stops)
	if peak == 0 {
		return
	}
	tex := s.gradient(normalize(stops, peak))
	k := 2 * r / gradientSize
	a := float32(peak) / 255
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(k, k)
	op.GeoM.Translate(cx-r, cy-r)
	op.ColorScale.Scale(a, a, a, a)
	op.Filter = ebiten.FilterLinear
	s.img.DrawImage(tex, op)
}

func (s *Screen) FillCircle(cx, cy, r float64, c color.NRGBA) {
	if s.img == nil || r <= 0 {
		return
	}
	vector.DrawFilledCircle(s.img, float32(cx), float32(cy), float32(r), c, true)
}

func (s *Screen) StrokeCircle(cx, cy, r, width float64, c color.NRGBA) {
	if s.img == nil || r <= 0 {
		return
	}
	vector.StrokeCircle(s.img, float32(cx), float32(cy), float32(r), float32(width), c, true)
}

func (s *Screen) StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA) {
	if s.img == nil {
		return
	}
	vector.StrokeLine(s.img, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c, true)
}

// DrawGlyph draws text centered on (x, y), rotated by angle radians.
func (s *Screen) DrawGlyph(glyph string, x, y, size, angle float64, c color.NRGBA) {
	if s.img == nil || glyph == "" || size <= 0 {
		return
	}
	face := &text.GoTextFace{Source: s.face, Size: size}
	w, h := text.Measure(glyph, face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Rotate(angle)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(s.img, glyph, face, op)
}

func peakAlpha(stops []Stop) uint8 {
	var m uint8
	for _, st := range stops {
		m = max(m, st.Color.A)
	}
	return m
}

// normalize rescales stop alphas so the peak is opaque. Gradients that differ
// only in overall opacity then share one sprite.
func normalize(stops []Stop, peak uint8) []Stop {
	out := make([]Stop, len(stops))
	for i, st := range stops {
		st.Color.A = uint8(uint32(st.Color.A) * 255 / uint32(peak))
		out[i] = st
	}
	return out
}

// gradient returns a premultiplied sprite of the stops, built once per
// distinct stop list.
func (s *Screen) gradient(stops []Stop) *ebiten.Image {
	key := fmt.Sprint(stops)
	if img, ok := s.cache[key]; ok {
		return img
	}
	const half = gradientSize / 2
	pix := make([]byte, gradientSize*gradientSize*4)
	for y := 0; y < gradientSize; y++ {
		for x := 0; x < gradientSize; x++ {
			dx := float64(x) + 0.5 - half
			dy := float64(y) + 0.5 - half
			t := math.Sqrt(dx*dx+dy*dy) / half
			if t >= 1 {
				continue
			}
			c := Sample(stops, t)
			a := uint32(c.A)
			off := (y*gradientSize + x) * 4
			pix[off] = uint8(uint32(c.R) * a / 255)
			pix[off+1] = uint8(uint32(c.G) * a / 255)
			pix[off+2] = uint8(uint32(c.B) * a / 255)
			pix[off+3] = c.A
		}
	}
	img := ebiten.NewImage(gradientSize, gradientSize)
	img.WritePixels(pix)
	s.cache[key] = img
	return img
}
