package field

import (
	"math"

	"neural-bg/internal/core"
)

// Link is a line between two nearby glow particles.
type Link struct {
	A, B    core.Vec2
	Opacity float64
}

// Spark is a line from a glow particle to the pointer.
type Spark struct {
	From, To core.Vec2
	Opacity  float64
}

// Graph holds the lines for one frame. Its slices are reused by Build.
type Graph struct {
	Links  []Link
	Sparks []Spark
}

// Build recomputes the links and sparks for the glow population. It never
// mutates the particles.
func (g *Graph) Build(glow []Glow, p *Pointer) {
	g.Links = g.Links[:0]
	g.Sparks = g.Sparks[:0]

	const maxDist2 = MaxConnectDist * MaxConnectDist
	engaged := p.Engaged()

	for i := range glow {
		a := glow[i].Pos()
		for j := i + 1; j < len(glow); j++ {
			b := glow[j].Pos()
			dx := a.X - b.X
			dy := a.Y - b.Y
			d2 := dx*dx + dy*dy
			if d2 >= maxDist2 {
				continue
			}
			dist := math.Sqrt(d2)
			op := (1 - dist/MaxConnectDist) * LinkBaseOpacity
			if engaged {
				mid := core.Vec2{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
				if md := mid.Sub(p.Smoothed).Len(); md < MouseRadius {
					op = math.Min(LinkMaxOpacity, op+(1-md/MouseRadius)*LinkPointerBoost)
				}
			}
			g.Links = append(g.Links, Link{A: a, B: b, Opacity: op})
		}
	}

	if !engaged {
		return
	}
	const sparkRadius = MouseRadius * SparkRadiusMul
	for i := range glow {
		pos := glow[i].Pos()
		d2 := pos.Sub(p.Smoothed).Len2()
		if d2 >= sparkRadius*sparkRadius {
			continue
		}
		dist := math.Sqrt(d2)
		g.Sparks = append(g.Sparks, Spark{
			From:    pos,
			To:      p.Smoothed,
			Opacity: (1 - dist/sparkRadius) * SparkMaxOpacity,
		})
	}
}
