package render

import (
	"image/color"

	"neural-bg/internal/surface"
)

var (
	Blue   = color.NRGBA{R: 0, G: 122, B: 244, A: 255}
	Purple = color.NRGBA{R: 168, G: 85, B: 247, A: 255}
	Cyan   = color.NRGBA{R: 0, G: 198, B: 255, A: 255}
	White  = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

	// Background is what hosts paint under the transparent surface.
	Background = color.NRGBA{R: 6, G: 9, B: 18, A: 255}
)

// Orb is one slowly orbiting ambient gradient. Its center is
// (FX·w + sin(SX·t)·AX, FY·h + cos(SY·t)·AY) or with sin/cos swapped when
// Swap is set, where t is the clock in milliseconds times OrbTimeScale.
type Orb struct {
	FX, FY float64
	SX, AX float64
	SY, AY float64
	Swap   bool
	Radius float64
	Stops  []surface.Stop
}

const (
	OrbTimeScale = 0.0005

	PointerGlowRadius = 200.0
	PointerCoreRadius = 30.0
	PointerFadeIn     = 0.4 // seconds

	HaloRadiusMul = 2.0
	HaloOpacity   = 0.15

	LinkWidth  = 0.3
	SparkWidth = 0.5

	FollowerDotRadius  = 4.0
	FollowerRingRadius = 18.0
	FollowerRingWidth  = 1.0
	FollowerDotAlpha   = 0.8
	FollowerRingAlpha  = 0.35
)

var Orbs = []Orb{
	{
		FX: 0.3, FY: 0.3, SX: 1, AX: 100, SY: 0.7, AY: 80, Radius: 300,
		Stops: []surface.Stop{
			{Offset: 0, Color: surface.RGBA(Blue.R, Blue.G, Blue.B, 0.1)},
			{Offset: 0.5, Color: surface.RGBA(Blue.R, Blue.G, Blue.B, 0.03)},
			{Offset: 1, Color: surface.Transparent(Blue)},
		},
	},
	{
		FX: 0.7, FY: 0.6, SX: 0.8, AX: 120, SY: 0.6, AY: 100, Swap: true, Radius: 350,
		Stops: []surface.Stop{
			{Offset: 0, Color: surface.RGBA(Purple.R, Purple.G, Purple.B, 0.08)},
			{Offset: 0.5, Color: surface.RGBA(Purple.R, Purple.G, Purple.B, 0.02)},
			{Offset: 1, Color: surface.Transparent(Purple)},
		},
	},
	{
		FX: 0.5, FY: 0.8, SX: 1.2, AX: 150, SY: 0.9, AY: 60, Radius: 250,
		Stops: []surface.Stop{
			{Offset: 0, Color: surface.RGBA(Cyan.R, Cyan.G, Cyan.B, 0.06)},
			{Offset: 1, Color: surface.Transparent(Cyan)},
		},
	},
}

// pointer glow stops at full strength, scaled by the fade level each frame
var (
	pointerGlowStops = []surface.Stop{
		{Offset: 0, Color: surface.RGBA(Blue.R, Blue.G, Blue.B, 0.1)},
		{Offset: 0.4, Color: surface.RGBA(Blue.R, Blue.G, Blue.B, 0.03)},
		{Offset: 1, Color: surface.Transparent(Blue)},
	}
	pointerCoreStops = []surface.Stop{
		{Offset: 0, Color: surface.RGBA(White.R, White.G, White.B, 0.15)},
		{Offset: 0.5, Color: surface.RGBA(Cyan.R, Cyan.G, Cyan.B, 0.1)},
		{Offset: 1, Color: surface.Transparent(Cyan)},
	}
)
