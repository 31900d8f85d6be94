package geometry

import (
	"fmt"
	"math"
	"strings"
)

// PathKind identifies the routing style of an edge path.
type PathKind string

const (
	PathStraight   PathKind = "straight"
	PathBezier     PathKind = "bezier"
	PathOrthogonal PathKind = "orthogonal"
)

// Default construction parameters.
const (
	// DefaultCurvature controls how far bezier control points sit from
	// the endpoints, as a fraction of the endpoint distance.
	DefaultCurvature = 0.5

	// MaxControlOffset caps the horizontal control point offset so very
	// long edges do not balloon.
	MaxControlOffset = 200.0
)

// Path is a discriminated edge path. Exactly one representation is
// populated per kind: CP1/CP2 for bezier, Waypoints for orthogonal.
// A Path is always recomputable from (Start, End, Kind, PathOptions);
// it carries no independent truth about its endpoints.
type Path struct {
	Kind  PathKind
	Start Point
	End   Point

	// Bezier control points (Kind == PathBezier).
	CP1 Point
	CP2 Point

	// Intermediate routing points (Kind == PathOrthogonal).
	Waypoints []Point
}

// PathOptions tunes path construction and drawing.
type PathOptions struct {
	// Curvature scales the bezier control point offset. Zero means
	// DefaultCurvature.
	Curvature float64

	// CornerRadius rounds orthogonal corners when > 0.
	CornerRadius float64
}

func (o PathOptions) curvature() float64 {
	if o.Curvature == 0 {
		return DefaultCurvature
	}
	return o.Curvature
}

// NewPath builds a path of the given kind with generated parameters.
func NewPath(kind PathKind, start, end Point, opts PathOptions) Path {
	switch kind {
	case PathBezier:
		return NewBezierPath(start, end, opts)
	case PathOrthogonal:
		return NewOrthogonalPath(start, end, nil)
	default:
		return NewStraightPath(start, end)
	}
}

// NewStraightPath builds a single segment from start to end.
func NewStraightPath(start, end Point) Path {
	return Path{Kind: PathStraight, Start: start, End: end}
}

// NewBezierPath builds a cubic bezier with horizontally offset control
// points: cp1 = start + (offset, 0), cp2 = end - (offset, 0), where
// offset = min(dist * curvature, MaxControlOffset).
func NewBezierPath(start, end Point, opts PathOptions) Path {
	offset := math.Min(start.Dist(end)*opts.curvature(), MaxControlOffset)
	return Path{
		Kind:  PathBezier,
		Start: start,
		End:   end,
		CP1:   Point{X: start.X + offset, Y: start.Y},
		CP2:   Point{X: end.X - offset, Y: end.Y},
	}
}

// NewOrthogonalPath builds an axis-aligned path. If waypoints is nil,
// exactly two are generated at the horizontal midpoint so the path runs
// out of the source, across, and into the target.
func NewOrthogonalPath(start, end Point, waypoints []Point) Path {
	if waypoints == nil {
		midX := (start.X + end.X) / 2
		waypoints = []Point{
			{X: midX, Y: start.Y},
			{X: midX, Y: end.Y},
		}
	}
	return Path{
		Kind:      PathOrthogonal,
		Start:     start,
		End:       end,
		Waypoints: waypoints,
	}
}

// points returns the full polyline for orthogonal paths.
func (p Path) points() []Point {
	pts := make([]Point, 0, len(p.Waypoints)+2)
	pts = append(pts, p.Start)
	pts = append(pts, p.Waypoints...)
	pts = append(pts, p.End)
	return pts
}

// SVGPath renders p as an SVG path data string suitable for a renderer's
// "d" attribute.
func (p Path) SVGPath() string {
	return p.SVGPathWithOptions(PathOptions{})
}

// SVGPathWithOptions renders p, rounding orthogonal corners with
// quadratic blends when opts.CornerRadius > 0. The effective radius at
// each corner is clamped to half of each adjacent segment so arcs never
// overlap.
func (p Path) SVGPathWithOptions(opts PathOptions) string {
	var b strings.Builder
	fmt.Fprintf(&b, "M %s %s", fmtCoord(p.Start.X), fmtCoord(p.Start.Y))

	switch p.Kind {
	case PathBezier:
		fmt.Fprintf(&b, " C %s %s, %s %s, %s %s",
			fmtCoord(p.CP1.X), fmtCoord(p.CP1.Y),
			fmtCoord(p.CP2.X), fmtCoord(p.CP2.Y),
			fmtCoord(p.End.X), fmtCoord(p.End.Y))

	case PathOrthogonal:
		pts := p.points()
		if opts.CornerRadius > 0 && len(pts) > 2 {
			writeRoundedCorners(&b, pts, opts.CornerRadius)
		} else {
			for _, pt := range pts[1:] {
				fmt.Fprintf(&b, " L %s %s", fmtCoord(pt.X), fmtCoord(pt.Y))
			}
		}

	default:
		fmt.Fprintf(&b, " L %s %s", fmtCoord(p.End.X), fmtCoord(p.End.Y))
	}
	return b.String()
}

// writeRoundedCorners emits L/Q commands through the interior vertices of
// pts, blending each corner with a quadratic curve through the vertex.
func writeRoundedCorners(b *strings.Builder, pts []Point, radius float64) {
	for i := 1; i < len(pts)-1; i++ {
		prev, v, next := pts[i-1], pts[i], pts[i+1]

		inVec := v.Sub(prev)
		outVec := next.Sub(v)
		inLen := math.Hypot(inVec.X, inVec.Y)
		outLen := math.Hypot(outVec.X, outVec.Y)
		r := math.Min(radius, math.Min(inLen/2, outLen/2))
		if r <= 0 || inLen == 0 || outLen == 0 {
			fmt.Fprintf(b, " L %s %s", fmtCoord(v.X), fmtCoord(v.Y))
			continue
		}

		arcStart := v.Sub(inVec.Norm().Scale(r))
		arcEnd := v.Add(outVec.Norm().Scale(r))
		fmt.Fprintf(b, " L %s %s Q %s %s %s %s",
			fmtCoord(arcStart.X), fmtCoord(arcStart.Y),
			fmtCoord(v.X), fmtCoord(v.Y),
			fmtCoord(arcEnd.X), fmtCoord(arcEnd.Y))
	}
	last := pts[len(pts)-1]
	fmt.Fprintf(b, " L %s %s", fmtCoord(last.X), fmtCoord(last.Y))
}

// fmtCoord formats a coordinate without trailing zeros.
func fmtCoord(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
