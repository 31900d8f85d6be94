package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampScale(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"below minimum", 0.01, MinScale},
		{"at minimum", MinScale, MinScale},
		{"in range", 1.5, 1.5},
		{"at maximum", MaxScale, MaxScale},
		{"above maximum", 99, MaxScale},
		{"negative", -2, MinScale},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampScale(tt.in))
		})
	}
}

func TestClampViewBox(t *testing.T) {
	vb := ClampViewBox(ViewBox{X: -10000, Y: 10000, Width: 1200, Height: 800}, 0)

	assert.Equal(t, -DefaultPanMargin, vb.X)
	assert.Equal(t, MaxPanDistance-800, vb.Y)
}

func TestClampViewBoxLeavesInRangeValues(t *testing.T) {
	in := ViewBox{X: 100, Y: 200, Width: 1200, Height: 800}
	assert.Equal(t, in, ClampViewBox(in, 0))
}

func TestZoomAtKeepsFocalPointFixed(t *testing.T) {
	vb := ViewBox{X: 0, Y: 0, Width: 1200, Height: 800}
	focal := Point{X: 600, Y: 400}

	next, scale := ZoomAt(vb, 1.0, 2.0, focal)

	assert.Equal(t, 2.0, scale)
	assert.Equal(t, 600.0, next.Width)
	assert.Equal(t, 400.0, next.Height)
	// The focal point keeps the same relative position in the new box.
	assert.InDelta(t, 300, next.X, 1e-9)
	assert.InDelta(t, 200, next.Y, 1e-9)
}

func TestZoomAtClampsTargetScale(t *testing.T) {
	vb := ViewBox{Width: 1200, Height: 800}
	_, scale := ZoomAt(vb, 1.0, 100, Point{})
	assert.Equal(t, MaxScale, scale)

	_, scale = ZoomAt(vb, 1.0, 0.0001, Point{})
	assert.Equal(t, MinScale, scale)
}

func TestScreenToWorldRoundTrip(t *testing.T) {
	vb := ViewBox{X: 100, Y: 50, Width: 600, Height: 400}
	screen := Point{X: 250, Y: 125}

	world := ScreenToWorld(screen, vb, 1200, 800)
	back := WorldToScreen(world, vb, 1200, 800)

	assert.InDelta(t, screen.X, back.X, 1e-9)
	assert.InDelta(t, screen.Y, back.Y, 1e-9)
	assert.InDelta(t, 100+250*0.5, world.X, 1e-9)
	assert.InDelta(t, 50+125*0.5, world.Y, 1e-9)
}

func TestScreenToWorldZeroElementSize(t *testing.T) {
	vb := ViewBox{X: 7, Y: 9, Width: 100, Height: 100}
	assert.Equal(t, Point{X: 7, Y: 9}, ScreenToWorld(Point{X: 10, Y: 10}, vb, 0, 0))
}
