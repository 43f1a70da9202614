// Package shape implements the collision geometry capability consumed by
// the simulation core: a closed set of shape variants with bounding
// radius, ray time-of-impact, and pairwise proximity predicates. All
// collision happens on the 2D plane; entities map their 3D transforms
// down to an Iso2 before calling in.
package shape

import (
	"math"

	"gravityduel/vmath"
)

// Kind discriminates the closed set of shape variants
type Kind uint8

const (
	KindDisc Kind = iota
	KindPolyline
)

// Shape is a tagged variant: a disc carries only its radius, a polyline
// only its contour points (local space, treated as a closed ring).
type Shape struct {
	kind   Kind
	radius float64
	points []vmath.Vec2
}

// Disc returns a disc shape of the given radius
func Disc(radius float64) *Shape {
	return &Shape{kind: KindDisc, radius: radius}
}

// Polyline returns a closed contour shape. The caller hands over the
// point slice; at least three points are expected.
func Polyline(points []vmath.Vec2) *Shape {
	return &Shape{kind: KindPolyline, points: points}
}

func (s *Shape) Kind() Kind { return s.kind }

// Radius returns the disc radius (zero for polylines)
func (s *Shape) Radius() float64 { return s.radius }

// Points returns the polyline contour (nil for discs)
func (s *Shape) Points() []vmath.Vec2 { return s.points }

// Iso2 is a 2D isometry placing a shape on the collision plane
type Iso2 struct {
	Pos vmath.Vec2
	Rot float64
}

// Apply maps a local-space point to the plane
func (t Iso2) Apply(p vmath.Vec2) vmath.Vec2 {
	return t.Pos.Add(p.Rotate(t.Rot))
}

// BoundingRadius returns the radius of the smallest origin-centered disc
// enclosing the shape in local space
func (s *Shape) BoundingRadius() float64 {
	switch s.kind {
	case KindDisc:
		return s.radius
	case KindPolyline:
		max := 0.0
		for _, p := range s.points {
			if m := p.Mag(); m > max {
				max = m
			}
		}
		return max
	}
	return 0
}

// Ray is a parametric ray on the collision plane. Dir is not normalized;
// impact times are in the same units the caller scaled Dir by (the
// integrator passes velocity, so times come back in seconds).
type Ray struct {
	Origin vmath.Vec2
	Dir    vmath.Vec2
}

// At returns the ray point at parameter t
func (r Ray) At(t float64) vmath.Vec2 {
	return r.Origin.Add(r.Dir.Scale(t))
}

// TimeOfImpact returns the earliest t in [0, maxTime] at which the ray
// strikes the shape placed by tf, or ok=false. With solid set, a ray
// originating inside the shape reports an impact at t=0.
func (s *Shape) TimeOfImpact(tf Iso2, ray Ray, maxTime float64, solid bool) (float64, bool) {
	switch s.kind {
	case KindDisc:
		return rayDisc(tf.Pos, s.radius, ray, maxTime, solid)
	case KindPolyline:
		return rayContour(s.points, tf, ray, maxTime, solid)
	}
	return 0, false
}

func rayDisc(center vmath.Vec2, radius float64, ray Ray, maxTime float64, solid bool) (float64, bool) {
	m := ray.Origin.Sub(center)
	c := m.MagSq() - radius*radius
	if solid && c <= 0 {
		return 0, true
	}
	a := ray.Dir.MagSq()
	if a == 0 {
		return 0, false
	}
	b := m.Dot(ray.Dir)
	disc := b*b - a*c
	if disc < 0 {
		return 0, false
	}
	t := (-b - math.Sqrt(disc)) / a
	if t < 0 {
		// Origin inside (or past the near face): the exit crossing is
		// still a boundary impact, matching the contour behavior
		t = (-b + math.Sqrt(disc)) / a
	}
	if t < 0 || t > maxTime {
		return 0, false
	}
	return t, true
}

func rayContour(points []vmath.Vec2, tf Iso2, ray Ray, maxTime float64, solid bool) (float64, bool) {
	if len(points) < 2 {
		return 0, false
	}
	if solid && pointInContour(ray.Origin, points, tf) {
		return 0, true
	}
	best := math.Inf(1)
	prev := tf.Apply(points[len(points)-1])
	for _, p := range points {
		cur := tf.Apply(p)
		if t, ok := raySegment(ray, prev, cur); ok && t < best {
			best = t
		}
		prev = cur
	}
	if best > maxTime || math.IsInf(best, 1) {
		return 0, false
	}
	return best, true
}

// raySegment solves origin + t*dir = a + u*(b-a) for t >= 0, u in [0,1]
func raySegment(ray Ray, a, b vmath.Vec2) (float64, bool) {
	seg := b.Sub(a)
	denom := ray.Dir.Cross(seg)
	if math.Abs(denom) < 1e-12 {
		return 0, false
	}
	ao := a.Sub(ray.Origin)
	t := ao.Cross(seg) / denom
	u := ao.Cross(ray.Dir) / denom
	if t < 0 || u < 0 || u > 1 {
		return 0, false
	}
	return t, true
}

// pointInContour tests containment in the closed ring by crossing count
func pointInContour(p vmath.Vec2, points []vmath.Vec2, tf Iso2) bool {
	inside := false
	prev := tf.Apply(points[len(points)-1])
	for _, lp := range points {
		cur := tf.Apply(lp)
		if (cur.Y > p.Y) != (prev.Y > p.Y) {
			x := cur.X + (p.Y-cur.Y)*(prev.X-cur.X)/(prev.Y-cur.Y)
			if p.X < x {
				inside = !inside
			}
		}
		prev = cur
	}
	return inside
}
