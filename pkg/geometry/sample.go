package geometry

import "math"

// tangentEpsilon is the half-width of the symmetric finite difference
// used to estimate tangents on curved paths.
const tangentEpsilon = 0.001

// PointAt returns the point at ratio t in [0,1] along p. t is clamped.
func PointAt(p Path, t float64) Point {
	t = clamp01(t)
	switch p.Kind {
	case PathBezier:
		return bezierPoint(p, t)
	case PathOrthogonal:
		return polylinePoint(p.points(), t)
	default:
		return Lerp(p.Start, p.End, t)
	}
}

// TangentAt returns the unit tangent at ratio t along p. Degenerate
// paths (coincident endpoints) yield (1, 0).
func TangentAt(p Path, t float64) Point {
	t = clamp01(t)
	switch p.Kind {
	case PathStraight:
		return p.End.Sub(p.Start).Norm()
	default:
		// Symmetric finite difference around t.
		lo := math.Max(0, t-tangentEpsilon)
		hi := math.Min(1, t+tangentEpsilon)
		d := PointAt(p, hi).Sub(PointAt(p, lo))
		return d.Norm()
	}
}

// Length estimates the length of p. Straight and orthogonal paths are
// exact; bezier uses 0.8x the control polygon length, a deliberately
// cheap approximation sufficient for sampling weights and hit-testing.
func Length(p Path) float64 {
	switch p.Kind {
	case PathBezier:
		poly := p.Start.Dist(p.CP1) + p.CP1.Dist(p.CP2) + p.CP2.Dist(p.End)
		return 0.8 * poly
	case PathOrthogonal:
		pts := p.points()
		var sum float64
		for i := 1; i < len(pts); i++ {
			sum += pts[i-1].Dist(pts[i])
		}
		return sum
	default:
		return p.Start.Dist(p.End)
	}
}

// NearestPoint returns the closest sampled point on p to target, along
// with its ratio and distance. Sampling density grows with path length
// (at least 20 samples). This is an approximation that only needs to be
// good enough for hit-testing.
func NearestPoint(p Path, target Point) (pt Point, ratio float64, dist float64) {
	samples := int(Length(p) / 10)
	if samples < 20 {
		samples = 20
	}

	best := math.Inf(1)
	for i := 0; i <= samples; i++ {
		t := float64(i) / float64(samples)
		c := PointAt(p, t)
		if d := c.Dist(target); d < best {
			best = d
			pt = c
			ratio = t
		}
	}
	return pt, ratio, best
}

// bezierPoint evaluates the cubic Bernstein form
// B(t) = (1-t)^3 P0 + 3(1-t)^2 t P1 + 3(1-t) t^2 P2 + t^3 P3.
func bezierPoint(p Path, t float64) Point {
	u := 1 - t
	b0 := u * u * u
	b1 := 3 * u * u * t
	b2 := 3 * u * t * t
	b3 := t * t * t
	return Point{
		X: b0*p.Start.X + b1*p.CP1.X + b2*p.CP2.X + b3*p.End.X,
		Y: b0*p.Start.Y + b1*p.CP1.Y + b2*p.CP2.Y + b3*p.End.Y,
	}
}

// polylinePoint walks the polyline, weighting each segment by its share
// of the total length, and interpolates within the segment that contains
// the target cumulative distance.
func polylinePoint(pts []Point, t float64) Point {
	var total float64
	for i := 1; i < len(pts); i++ {
		total += pts[i-1].Dist(pts[i])
	}
	if total == 0 {
		return pts[0]
	}

	want := t * total
	var walked float64
	for i := 1; i < len(pts); i++ {
		seg := pts[i-1].Dist(pts[i])
		if walked+seg >= want && seg > 0 {
			return Lerp(pts[i-1], pts[i], (want-walked)/seg)
		}
		walked += seg
	}
	return pts[len(pts)-1]
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
