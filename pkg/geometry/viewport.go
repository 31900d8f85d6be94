package geometry

import "math"

// ViewBox is the visible world-space rectangle mapped onto the rendering
// surface.
type ViewBox struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Viewport limits.
const (
	MinScale = 0.1
	MaxScale = 4.0

	// MaxPanDistance bounds how far the view box may travel on each axis.
	MaxPanDistance = 5000.0

	// DefaultPanMargin lets the view box overshoot the origin slightly so
	// content at (0,0) is not pinned to the corner.
	DefaultPanMargin = 200.0
)

// ClampScale clamps s to [MinScale, MaxScale].
func ClampScale(s float64) float64 {
	return math.Max(MinScale, math.Min(MaxScale, s))
}

// ClampViewBox clamps the view box origin to
// [-margin, MaxPanDistance - size] per axis. A margin of 0 uses
// DefaultPanMargin.
func ClampViewBox(vb ViewBox, margin float64) ViewBox {
	if margin == 0 {
		margin = DefaultPanMargin
	}
	vb.X = math.Max(-margin, math.Min(MaxPanDistance-vb.Width, vb.X))
	vb.Y = math.Max(-margin, math.Min(MaxPanDistance-vb.Height, vb.Y))
	return vb
}

// ZoomAt computes the view box for zooming from scale to target around
// the world-space focal point p, so p stays fixed on screen. The target
// scale is clamped first; the resulting view box is clamped last.
func ZoomAt(vb ViewBox, scale, target float64, p Point) (ViewBox, float64) {
	target = ClampScale(target)
	if scale == 0 || target == scale {
		return ClampViewBox(vb, 0), target
	}

	factor := target / scale
	next := ViewBox{
		X:      p.X - (p.X-vb.X)/factor,
		Y:      p.Y - (p.Y-vb.Y)/factor,
		Width:  vb.Width / factor,
		Height: vb.Height / factor,
	}
	return ClampViewBox(next, 0), target
}

// ScreenToWorld converts a screen-space point to world coordinates given
// the current view box and the size of the rendering element.
func ScreenToWorld(screen Point, vb ViewBox, elemWidth, elemHeight float64) Point {
	if elemWidth == 0 || elemHeight == 0 {
		return Point{X: vb.X, Y: vb.Y}
	}
	return Point{
		X: vb.X + screen.X*(vb.Width/elemWidth),
		Y: vb.Y + screen.Y*(vb.Height/elemHeight),
	}
}

// WorldToScreen is the inverse of ScreenToWorld.
func WorldToScreen(world Point, vb ViewBox, elemWidth, elemHeight float64) Point {
	if vb.Width == 0 || vb.Height == 0 {
		return Point{}
	}
	return Point{
		X: (world.X - vb.X) * (elemWidth / vb.Width),
		Y: (world.Y - vb.Y) * (elemHeight / vb.Height),
	}
}
