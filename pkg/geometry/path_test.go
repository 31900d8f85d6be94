package geometry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBezierPathGeneratesControlPoints(t *testing.T) {
	start := Point{X: 0, Y: 0}
	end := Point{X: 100, Y: 0}

	p := NewBezierPath(start, end, PathOptions{})

	// offset = min(100 * 0.5, 200) = 50
	assert.Equal(t, Point{X: 50, Y: 0}, p.CP1)
	assert.Equal(t, Point{X: 50, Y: 0}, p.CP2)
	assert.Equal(t, start, p.Start)
	assert.Equal(t, end, p.End)
}

func TestNewBezierPathCapsControlOffset(t *testing.T) {
	p := NewBezierPath(Point{}, Point{X: 1000, Y: 0}, PathOptions{})

	// offset = min(1000 * 0.5, 200) = 200
	assert.Equal(t, Point{X: 200, Y: 0}, p.CP1)
	assert.Equal(t, Point{X: 800, Y: 0}, p.CP2)
}

func TestNewOrthogonalPathGeneratesMidpointWaypoints(t *testing.T) {
	p := NewOrthogonalPath(Point{X: 0, Y: 0}, Point{X: 200, Y: 100}, nil)

	require.Len(t, p.Waypoints, 2)
	assert.Equal(t, Point{X: 100, Y: 0}, p.Waypoints[0])
	assert.Equal(t, Point{X: 100, Y: 100}, p.Waypoints[1])
}

func TestNewOrthogonalPathKeepsExplicitWaypoints(t *testing.T) {
	wps := []Point{{X: 10, Y: 0}}
	p := NewOrthogonalPath(Point{}, Point{X: 10, Y: 10}, wps)
	assert.Equal(t, wps, p.Waypoints)
}

func TestSVGPathStraight(t *testing.T) {
	p := NewStraightPath(Point{X: 0, Y: 0}, Point{X: 300, Y: 0})
	assert.Equal(t, "M 0 0 L 300 0", p.SVGPath())
}

func TestSVGPathBezier(t *testing.T) {
	p := NewBezierPath(Point{X: 0, Y: 0}, Point{X: 100, Y: 0}, PathOptions{})
	got := p.SVGPath()
	assert.True(t, strings.HasPrefix(got, "M 0 0 C 50 0, 50 0, 100 0"), got)
}

func TestSVGPathOrthogonalSharpCorners(t *testing.T) {
	p := NewOrthogonalPath(Point{X: 0, Y: 0}, Point{X: 200, Y: 100}, nil)
	got := p.SVGPath()
	assert.Equal(t, "M 0 0 L 100 0 L 100 100 L 200 100", got)
}

func TestSVGPathOrthogonalRoundedCorners(t *testing.T) {
	p := NewOrthogonalPath(Point{X: 0, Y: 0}, Point{X: 200, Y: 100}, nil)
	got := p.SVGPathWithOptions(PathOptions{CornerRadius: 10})

	// Each interior vertex becomes "L <arc start> Q <vertex> <arc end>".
	assert.Equal(t, 2, strings.Count(got, "Q"), got)
	assert.Contains(t, got, "L 90 0 Q 100 0 100 10")
}

func TestSVGPathRoundedCornerRadiusClamped(t *testing.T) {
	// Segments of length 10; radius must clamp to 5.
	p := NewOrthogonalPath(Point{X: 0, Y: 0}, Point{X: 10, Y: 10}, []Point{{X: 10, Y: 0}})
	got := p.SVGPathWithOptions(PathOptions{CornerRadius: 50})
	assert.Contains(t, got, "L 5 0 Q 10 0 10 5")
}
