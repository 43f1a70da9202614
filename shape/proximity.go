package shape

import (
	"math"

	"gravityduel/vmath"
)

// Proximity qualifies how close two placed shapes are
type Proximity uint8

const (
	Disjoint Proximity = iota
	WithinMargin
	Intersecting
)

// ProximityTest reports whether the two placed shapes overlap, sit within
// margin of each other, or are disjoint
func ProximityTest(a *Shape, ta Iso2, b *Shape, tb Iso2, margin float64) Proximity {
	d := separation(a, ta, b, tb)
	switch {
	case d <= 0:
		return Intersecting
	case d <= margin:
		return WithinMargin
	default:
		return Disjoint
	}
}

// separation returns the gap between the two shapes (negative when
// overlapping). Polyline separation is exact between boundaries and
// treats containment as overlap.
func separation(a *Shape, ta Iso2, b *Shape, tb Iso2) float64 {
	switch {
	case a.kind == KindDisc && b.kind == KindDisc:
		return ta.Pos.Sub(tb.Pos).Mag() - a.radius - b.radius

	case a.kind == KindDisc && b.kind == KindPolyline:
		return discContourGap(ta.Pos, a.radius, b.points, tb)

	case a.kind == KindPolyline && b.kind == KindDisc:
		return discContourGap(tb.Pos, b.radius, a.points, ta)

	default:
		return contourContourGap(a.points, ta, b.points, tb)
	}
}

func discContourGap(center vmath.Vec2, radius float64, points []vmath.Vec2, tf Iso2) float64 {
	if len(points) == 0 {
		return math.Inf(1)
	}
	if pointInContour(center, points, tf) {
		return -radius
	}
	best := math.Inf(1)
	prev := tf.Apply(points[len(points)-1])
	for _, p := range points {
		cur := tf.Apply(p)
		if d := pointSegmentDistance(center, prev, cur); d < best {
			best = d
		}
		prev = cur
	}
	return best - radius
}

func contourContourGap(pa []vmath.Vec2, ta Iso2, pb []vmath.Vec2, tb Iso2) float64 {
	if len(pa) == 0 || len(pb) == 0 {
		return math.Inf(1)
	}
	// Containment of either contour counts as overlap
	if pointInContour(ta.Apply(pa[0]), pb, tb) || pointInContour(tb.Apply(pb[0]), pa, ta) {
		return -1
	}
	best := math.Inf(1)
	prevA := ta.Apply(pa[len(pa)-1])
	for _, qa := range pa {
		curA := ta.Apply(qa)
		prevB := tb.Apply(pb[len(pb)-1])
		for _, qb := range pb {
			curB := tb.Apply(qb)
			if segmentsIntersect(prevA, curA, prevB, curB) {
				return -1
			}
			if d := segmentSegmentDistance(prevA, curA, prevB, curB); d < best {
				best = d
			}
			prevB = curB
		}
		prevA = curA
	}
	return best
}

func pointSegmentDistance(p, a, b vmath.Vec2) float64 {
	ab := b.Sub(a)
	lenSq := ab.MagSq()
	if lenSq == 0 {
		return p.Sub(a).Mag()
	}
	t := p.Sub(a).Dot(ab) / lenSq
	t = math.Max(0, math.Min(1, t))
	return p.Sub(a.Add(ab.Scale(t))).Mag()
}

func segmentsIntersect(a1, a2, b1, b2 vmath.Vec2) bool {
	d1 := b2.Sub(b1).Cross(a1.Sub(b1))
	d2 := b2.Sub(b1).Cross(a2.Sub(b1))
	d3 := a2.Sub(a1).Cross(b1.Sub(a1))
	d4 := a2.Sub(a1).Cross(b2.Sub(a1))
	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	return false
}

func segmentSegmentDistance(a1, a2, b1, b2 vmath.Vec2) float64 {
	return math.Min(
		math.Min(pointSegmentDistance(a1, b1, b2), pointSegmentDistance(a2, b1, b2)),
		math.Min(pointSegmentDistance(b1, a1, a2), pointSegmentDistance(b2, a1, a2)),
	)
}
