package field

import (
	"math"

	"neural-bg/internal/core"
)

// Glyphs is the alphabet symbol particles draw from.
var Glyphs = []string{
	"{", "}", "<", ">", "/", "=", ";", "(", ")", "[", "]",
	"0", "1", "AI", "< >", "/*", "*/", "=>", "++", "&&", "||",
	"fn", "let", "var", "if", "for", "{ }", "...", "01", "10",
}

// Symbol is a drifting code glyph with a fade-in/fade-out lifecycle.
type Symbol struct {
	BaseX, BaseY float64
	VX, VY       float64
	Depth        float64
	Glyph        string

	FontSize, BaseFontSize float64
	Opacity, MaxOpacity    float64
	FadeIn                 bool

	Angle float64
	Spin  float64

	Offset   core.Vec2
	Velocity core.Vec2
}

// Pos returns the rendered position.
func (s *Symbol) Pos() core.Vec2 {
	return core.Vec2{X: s.BaseX + s.Offset.X, Y: s.BaseY + s.Offset.Y}
}

// RespawnSymbol reinitializes s just below the bottom edge.
func RespawnSymbol(s *Symbol, size core.Size, rng *core.RNG) {
	depth := rng.Range(MinDepth, 1)
	*s = Symbol{
		BaseX:        rng.Float64() * float64(size.W),
		BaseY:        float64(size.H) + RespawnMargin,
		VX:           rng.Centered(SymbolDrift),
		VY:           -rng.Range(SymbolRiseMin, SymbolRiseMax),
		Depth:        depth,
		Glyph:        Glyphs[rng.IntN(len(Glyphs))],
		BaseFontSize: rng.Range(SymbolFontMin, SymbolFontMax) * (0.6 + 0.4*depth),
		MaxOpacity:   rng.Range(SymbolOpacityMin, SymbolOpacityMax),
		FadeIn:       true,
		Angle:        rng.Float64() * 2 * math.Pi,
		Spin:         rng.Centered(SymbolSpinMax),
	}
	s.FontSize = s.BaseFontSize
}

// UpdateSymbol advances s by one frame, respawning it once it leaves the top.
func UpdateSymbol(s *Symbol, p *Pointer, size core.Size, rng *core.RNG) {
	r := Apply(s.Pos(), s.Offset, s.Velocity, s.Depth, p, size, SymbolLayer)
	s.Offset = r.Offset
	s.Velocity = r.Velocity
	if r.Force > 0 {
		s.FontSize = s.BaseFontSize * (1 + r.Force*SymbolFontBoost)
		s.MaxOpacity = math.Min(SymbolOpacityCeil, s.MaxOpacity+r.Force*SymbolOpacityBoost)
		s.Angle += r.Force * SymbolPointerSpin
	} else {
		s.FontSize = s.BaseFontSize
	}

	s.BaseX = core.Wrap(s.BaseX+s.VX, float64(size.W))
	s.BaseY += s.VY
	s.Angle += s.Spin * SymbolSpinScale

	if s.FadeIn {
		s.Opacity += FadeInRate
		if s.Opacity >= s.MaxOpacity {
			s.Opacity = s.MaxOpacity
			s.FadeIn = false
		}
	}

	if s.BaseY < -RespawnMargin {
		RespawnSymbol(s, size, rng)
		return
	}

	if s.BaseY < float64(size.H)*FadeBand {
		s.Opacity = math.Max(0, s.Opacity-FadeOutRate)
	}
}
