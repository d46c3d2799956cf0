package field

import (
	"time"

	"neural-bg/internal/core"
)

// GlowCount returns the glow population for a surface area.
func GlowCount(area int) int {
	if area <= 0 {
		return 0
	}
	return min(GlowCap, area/GlowDensity)
}

// SymbolCount returns the symbol population for a surface area.
func SymbolCount(area int) int {
	if area <= 0 {
		return 0
	}
	return min(SymbolCap, area/SymbolDensity)
}

// Pool holds both particle populations in contiguous slices.
type Pool struct {
	Glow    []Glow
	Symbols []Symbol

	rng *core.RNG
}

// NewPool allocates and randomizes a pool sized for the surface.
func NewPool(size core.Size, rng *core.RNG) *Pool {
	if rng == nil {
		rng = core.NewRNG(0)
	}
	p := &Pool{rng: rng}
	p.Reset(size)
	return p
}

// Reset recomputes both populations for size and randomizes every particle.
// Counts are only recomputed here, never on resize.
func (p *Pool) Reset(size core.Size) {
	area := size.Area()
	p.Glow = resize(p.Glow, GlowCount(area))
	p.Symbols = resize(p.Symbols, SymbolCount(area))
	for i := range p.Glow {
		ResetGlow(&p.Glow[i], size, p.rng)
	}
	for i := range p.Symbols {
		s := &p.Symbols[i]
		RespawnSymbol(s, size, p.rng)
		// the first generation starts spread over the whole surface
		s.BaseY = p.rng.Float64() * float64(size.H)
	}
}

// Update advances every particle by one frame.
func (p *Pool) Update(ptr *Pointer, size core.Size, now time.Time) {
	if size.Empty() {
		return
	}
	ms := core.Millis(now)
	for i := range p.Glow {
		UpdateGlow(&p.Glow[i], ptr, size, ms)
	}
	for i := range p.Symbols {
		UpdateSymbol(&p.Symbols[i], ptr, size, p.rng)
	}
}

func resize[T any](s []T, n int) []T {
	if cap(s) >= n {
		return s[:n]
	}
	return make([]T, n)
}
