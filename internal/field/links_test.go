package field

import (
	"testing"

	"neural-bg/internal/core"
)

func glowAt(x, y float64) Glow {
	return Glow{BaseX: x, BaseY: y, Depth: 1, Radius: 1, BaseRadius: 1, Opacity: 0.1, BaseOpacity: 0.1}
}

func TestLinkThreshold(t *testing.T) {
	const eps = 1e-6
	var g Graph
	var p Pointer

	g.Build([]Glow{glowAt(100, 100), glowAt(100+MaxConnectDist-eps, 100)}, &p)
	if len(g.Links) != 1 {
		t.Fatalf("links = %d just inside the threshold, want 1", len(g.Links))
	}
	if g.Links[0].Opacity <= 0 {
		t.Fatalf("opacity = %v, want > 0", g.Links[0].Opacity)
	}

	g.Build([]Glow{glowAt(100, 100), glowAt(100+MaxConnectDist+eps, 100)}, &p)
	if len(g.Links) != 0 {
		t.Fatalf("links = %d just outside the threshold, want 0", len(g.Links))
	}
}

func TestLinkOpacityFallsWithDistance(t *testing.T) {
	var g Graph
	var p Pointer
	g.Build([]Glow{glowAt(0, 0), glowAt(10, 0), glowAt(0, 100)}, &p)
	var near, far float64
	for _, l := range g.Links {
		d := l.A.Sub(l.B).Len()
		switch {
		case d < 20:
			near = l.Opacity
		case d > 90 && d < 101:
			far = l.Opacity
		}
	}
	if near <= far || far <= 0 {
		t.Fatalf("near %v should be brighter than far %v", near, far)
	}
}

func TestLinkBrightensNearPointer(t *testing.T) {
	pair := []Glow{glowAt(500, 500), glowAt(560, 500)}
	var g Graph
	var idle Pointer
	g.Build(pair, &idle)
	base := g.Links[0].Opacity

	p := engagedAt(530, 500)
	g.Build(pair, p)
	lit := g.Links[0].Opacity
	if lit <= base {
		t.Fatalf("lit %v should exceed base %v", lit, base)
	}
	if lit > LinkMaxOpacity {
		t.Fatalf("lit %v above cap %v", lit, LinkMaxOpacity)
	}
}

func TestSparksOnlyWhileEngaged(t *testing.T) {
	glow := []Glow{glowAt(100, 100), glowAt(100+MouseRadius*SparkRadiusMul+1, 100)}
	p := engagedAt(100, 100)
	var g Graph
	g.Build(glow, p)
	if len(g.Sparks) != 1 {
		t.Fatalf("sparks = %d, want 1", len(g.Sparks))
	}
	if g.Sparks[0].Opacity != SparkMaxOpacity {
		t.Fatalf("spark at the pointer = %v, want %v", g.Sparks[0].Opacity, SparkMaxOpacity)
	}
	p.OnLeave()
	g.Build(glow, p)
	if len(g.Sparks) != 0 {
		t.Fatal("no sparks once the pointer leaves")
	}
}

func TestBuildDoesNotMutateGlow(t *testing.T) {
	glow := []Glow{glowAt(1, 1), glowAt(2, 2)}
	glow[0].Offset = core.Vec2{X: 3}
	snapshot := append([]Glow(nil), glow...)
	var g Graph
	g.Build(glow, engagedAt(1, 1))
	for i := range glow {
		if glow[i] != snapshot[i] {
			t.Fatalf("glow %d mutated by Build", i)
		}
	}
}
