package surface

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"neural-bg/internal/core"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

const circleSegments = 24

// Raster is a Surface backed by an in-memory RGBA image.
type Raster struct {
	img   *image.RGBA
	z     *vector.Rasterizer
	font  *opentype.Font
	faces map[int]font.Face
}

// NewRaster allocates a raster surface of the given size.
func NewRaster(w, h int) (*Raster, error) {
	f, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse mono font: %w", err)
	}
	r := &Raster{font: f, faces: map[int]font.Face{}}
	r.SetSize(w, h)
	return r, nil
}

// Image exposes the backing image.
func (r *Raster) Image() *image.RGBA { return r.img }

// Size reports the pixel dimensions.
func (r *Raster) Size() core.Size {
	b := r.img.Bounds()
	return core.Size{W: b.Dx(), H: b.Dy()}
}

// SetSize reallocates the image when the dimensions change.
func (r *Raster) SetSize(w, h int) {
	w, h = max(w, 0), max(h, 0)
	if r.img != nil && r.img.Bounds().Dx() == w && r.img.Bounds().Dy() == h {
		return
	}
	r.img = image.NewRGBA(image.Rect(0, 0, w, h))
	if w > 0 && h > 0 {
		r.z = vector.NewRasterizer(w, h)
	} else {
		r.z = nil
	}
}

// Clear resets every pixel to transparent black.
func (r *Raster) Clear() {
	clear(r.img.Pix)
}

// FillRadial paints a disc whose color follows stops from center to rim.
func (r *Raster) FillRadial(cx, cy, radius float64, stops []Stop) {
	if radius <= 0 || len(stops) == 0 {
		return
	}
	box := image.Rect(
		int(math.Floor(cx-radius)), int(math.Floor(cy-radius)),
		int(math.Ceil(cx+radius)), int(math.Ceil(cy+radius)),
	).Intersect(r.img.Bounds())
	for y := box.Min.Y; y < box.Max.Y; y++ {
		for x := box.Min.X; x < box.Max.X; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			t := math.Sqrt(dx*dx+dy*dy) / radius
			if t >= 1 {
				continue
			}
			r.blend(x, y, Sample(stops, t))
		}
	}
}

// FillCircle paints an anti-aliased disc.
func (r *Raster) FillCircle(cx, cy, radius float64, c color.NRGBA) {
	if r.z == nil || radius <= 0 || c.A == 0 {
		return
	}
	r.z.Reset(r.img.Bounds().Dx(), r.img.Bounds().Dy())
	r.circlePath(cx, cy, radius, false)
	r.fill(c)
}

// StrokeCircle paints a ring of the given width centered on radius.
func (r *Raster) StrokeCircle(cx, cy, radius, width float64, c color.NRGBA) {
	if r.z == nil || radius <= 0 || width <= 0 || c.A == 0 {
		return
	}
	r.z.Reset(r.img.Bounds().Dx(), r.img.Bounds().Dy())
	r.circlePath(cx, cy, radius+width/2, false)
	if inner := radius - width/2; inner > 0 {
		r.circlePath(cx, cy, inner, true)
	}
	r.fill(c)
}

// StrokeLine paints a segment as a quad of the given width.
func (r *Raster) StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA) {
	if r.z == nil || width <= 0 || c.A == 0 {
		return
	}
	dx, dy := x1-x0, y1-y0
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	nx, ny := -dy/l*width/2, dx/l*width/2
	r.z.Reset(r.img.Bounds().Dx(), r.img.Bounds().Dy())
	r.z.MoveTo(float32(x0+nx), float32(y0+ny))
	r.z.LineTo(float32(x1+nx), float32(y1+ny))
	r.z.LineTo(float32(x1-nx), float32(y1-ny))
	r.z.LineTo(float32(x0-nx), float32(y0-ny))
	r.z.ClosePath()
	r.fill(c)
}

// DrawGlyph draws text centered on (x, y), rotated by angle radians.
func (r *Raster) DrawGlyph(glyph string, x, y, size, angle float64, c color.NRGBA) {
	if r.img.Bounds().Empty() || glyph == "" || size <= 0 || c.A == 0 {
		return
	}
	face, err := r.face(size)
	if err != nil {
		return
	}
	bounds, adv := font.BoundString(face, glyph)
	w := adv.Ceil() + 2
	h := (bounds.Max.Y - bounds.Min.Y).Ceil() + 2
	if w <= 2 || h <= 2 {
		return
	}
	tile := image.NewNRGBA(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  tile,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(1), Y: fixed.I(1) - bounds.Min.Y},
	}
	d.DrawString(glyph)

	cx, cy := float64(w)/2, float64(h)/2
	sin, cos := math.Sincos(angle)
	m := f64.Aff3{
		cos, -sin, x - (cos*cx - sin*cy),
		sin, cos, y - (sin*cx + cos*cy),
	}
	xdraw.ApproxBiLinear.Transform(r.img, m, tile, tile.Bounds(), xdraw.Over, nil)
}

func (r *Raster) face(size float64) (font.Face, error) {
	key := int(math.Round(size * 4))
	if f, ok := r.faces[key]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(r.font, &opentype.FaceOptions{
		Size:    float64(key) / 4,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	r.faces[key] = f
	return f, nil
}

func (r *Raster) circlePath(cx, cy, radius float64, reverse bool) {
	for i := 0; i <= circleSegments; i++ {
		k := i
		if reverse {
			k = circleSegments - i
		}
		a := 2 * math.Pi * float64(k) / circleSegments
		px := float32(cx + radius*math.Cos(a))
		py := float32(cy + radius*math.Sin(a))
		if i == 0 {
			r.z.MoveTo(px, py)
			continue
		}
		r.z.LineTo(px, py)
	}
	r.z.ClosePath()
}

func (r *Raster) fill(c color.NRGBA) {
	r.z.DrawOp = draw.Over
	r.z.Draw(r.img, r.img.Bounds(), image.NewUniform(c), image.Point{})
}

// blend composites a non-premultiplied color over the pixel at (x, y).
func (r *Raster) blend(x, y int, c color.NRGBA) {
	if c.A == 0 {
		return
	}
	i := r.img.PixOffset(x, y)
	p := r.img.Pix[i : i+4 : i+4]
	a := uint32(c.A)
	inv := 255 - a
	p[0] = uint8((uint32(c.R)*a + uint32(p[0])*inv) / 255)
	p[1] = uint8((uint32(c.G)*a + uint32(p[1])*inv) / 255)
	p[2] = uint8((uint32(c.B)*a + uint32(p[2])*inv) / 255)
	p[3] = uint8((a*255 + uint32(p[3])*inv) / 255)
}
