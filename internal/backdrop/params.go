package backdrop

import (
	"neural-bg/internal/core"
	"neural-bg/internal/field"
)

// Parameters reports the live counts and the tuning constants.
func (s *Scheduler) Parameters() core.ParameterSnapshot {
	var size core.Size
	if s.surf != nil {
		size = s.surf.Size()
	}
	var glow, symbols int
	if s.pool != nil {
		glow, symbols = len(s.pool.Glow), len(s.pool.Symbols)
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Scene", Params: []core.Parameter{
			core.IntParam("width", "Width", size.W),
			core.IntParam("height", "Height", size.H),
			core.IntParam("glow", "Glow particles", glow),
			core.IntParam("symbols", "Symbols", symbols),
			core.IntParam("links", "Links", len(s.graph.Links)),
			core.IntParam("sparks", "Sparks", len(s.graph.Sparks)),
		}},
		{Name: "Run", Params: []core.Parameter{
			core.Int64Param("seed", "Seed", s.Seed()),
			core.Int64Param("ticks", "Ticks", int64(s.ticks)),
			core.BoolParam("running", "Running", s.state == Running),
			core.BoolParam("pointer", "Pointer engaged", s.pointer.Engaged()),
			core.BoolParam("cursor", "Cursor layer", s.follower != nil),
		}},
		{Name: "Tuning", Params: []core.Parameter{
			core.FloatParam("smoothing", "Smoothing", field.SmoothingFactor),
			core.FloatParam("mouse_radius", "Mouse radius", field.MouseRadius),
			core.FloatParam("connect_dist", "Link distance", field.MaxConnectDist),
			core.FloatParam("parallax", "Parallax", field.ParallaxStrength),
		}},
	}}
}
