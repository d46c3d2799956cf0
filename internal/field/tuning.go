package field

import "math"

// Population sizing.
const (
	GlowCap       = 80
	GlowDensity   = 15000 // surface pixels per glow particle
	SymbolCap     = 30
	SymbolDensity = 40000 // surface pixels per symbol particle
)

// Pointer tracking.
const (
	SmoothingFactor = 0.12
)

// Force field.
const (
	MouseRadius      = 200.0
	SymbolRadiusMul  = 1.2
	ParallaxStrength = 30.0
	SpringRate       = 0.03
	MomentumFactor   = 0.05
	GlowDamping      = 0.92
	SymbolDamping    = 0.90
	RepelStrength    = 1.2
	SwirlStrength    = 0.8
	SwirlAngle       = math.Pi * 0.3
)

// Glow particles.
const (
	MinDepth         = 0.2
	GlowDrift        = 0.3 // full span of the per-axis drift velocity
	GlowRadiusMin    = 0.5
	GlowRadiusMax    = 1.5
	GlowOpacityMin   = 0.05
	GlowOpacityMax   = 0.25
	GlowPulseMin     = 0.01
	GlowPulseMax     = 0.03
	GlowRadiusBoost  = 0.5
	GlowOpacityBoost = 0.6
	MaxConnectDist   = 120.0
	LinkBaseOpacity  = 0.06
	LinkPointerBoost = 0.08
	LinkMaxOpacity   = 0.15
	SparkRadiusMul   = 0.8
	SparkMaxOpacity  = 0.3
)

// Symbol particles.
const (
	SymbolRiseMin      = 0.3
	SymbolRiseMax      = 1.1
	SymbolDrift        = 0.3
	SymbolFontMin      = 6.0
	SymbolFontMax      = 14.0
	SymbolOpacityMin   = 0.02
	SymbolOpacityMax   = 0.10
	SymbolOpacityCeil  = 0.3
	SymbolOpacityBoost = 0.02
	SymbolFontBoost    = 0.3
	SymbolSpinMax      = 0.5
	SymbolSpinScale    = 0.01
	SymbolPointerSpin  = 0.05
	FadeInRate         = 0.005
	FadeOutRate        = 0.002
	FadeBand           = 0.2 // fraction of the height where symbols fade out
	RespawnMargin      = 50.0
)

// Cursor follower.
const (
	FollowerInnerRate = 0.15
	FollowerOuterRate = 0.08
)
