package geometry

// DefaultObstacleMargin pads obstacle bounds during midpoint checks.
const DefaultObstacleMargin = 50.0

// AvoidObstacles nudges a bezier path whose midpoint falls inside one of
// the given rectangles (padded by margin). Control points are shifted
// vertically by curvature*100 away from the obstacle row. This is a
// heuristic adjustment, not a path planner; non-bezier paths and paths
// whose midpoint is clear are returned unchanged.
func AvoidObstacles(p Path, obstacles []Rect, margin float64, opts PathOptions) Path {
	if p.Kind != PathBezier || len(obstacles) == 0 {
		return p
	}
	if margin <= 0 {
		margin = DefaultObstacleMargin
	}

	mid := PointAt(p, 0.5)
	for _, ob := range obstacles {
		if !ob.Contains(mid, margin) {
			continue
		}
		shift := opts.curvature() * 100
		if mid.Y >= ob.Center().Y {
			// Path crosses the lower half; push it further down.
			p.CP1.Y += shift
			p.CP2.Y += shift
		} else {
			p.CP1.Y -= shift
			p.CP2.Y -= shift
		}
		return p
	}
	return p
}
