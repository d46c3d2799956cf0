package core

import "math"

// Size describes the pixel dimensions of a drawing surface.
type Size struct {
	W int
	H int
}

// Area returns W*H, or zero when either side is non-positive.
func (s Size) Area() int {
	if s.Empty() {
		return 0
	}
	return s.W * s.H
}

// Empty reports whether the size cannot hold a single pixel.
func (s Size) Empty() bool { return s.W <= 0 || s.H <= 0 }

// Center returns the midpoint of the surface.
func (s Size) Center() Vec2 { return Vec2{X: float64(s.W) / 2, Y: float64(s.H) / 2} }

// Vec2 is a 2D vector in surface pixels.
type Vec2 struct {
	X, Y float64
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

// Sub returns v-o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }

// Scale returns v*k.
func (v Vec2) Scale(k float64) Vec2 { return Vec2{X: v.X * k, Y: v.Y * k} }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Len2 returns the squared length of v.
func (v Vec2) Len2() float64 { return v.X*v.X + v.Y*v.Y }

// Wrap folds v into [0, max). A non-positive max returns zero.
func Wrap(v, max float64) float64 {
	if max <= 0 {
		return 0
	}
	if v >= 0 && v < max {
		return v
	}
	v = math.Mod(v, max)
	if v < 0 {
		v += max
	}
	if v >= max {
		v = 0
	}
	return v
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
