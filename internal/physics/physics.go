// Package physics provides collision detection and distance utilities.
package physics

import "math"

// Point is an integer vertex in screen space.
type Point struct {
	X, Y int
}

// Polygon is a closed shape in screen space. The last vertex connects back to the first.
type Polygon []Point

// Bounds returns the axis-aligned bounding box of the polygon.
func (p Polygon) Bounds() (minX, minY, maxX, maxY int) {
	if len(p) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY = p[0].X, p[0].Y
	maxX, maxY = minX, minY
	for _, v := range p[1:] {
		minX = min(minX, v.X)
		minY = min(minY, v.Y)
		maxX = max(maxX, v.X)
		maxY = max(maxY, v.Y)
	}
	return minX, minY, maxX, maxY
}

// Contains reports whether (x, y) lies inside the polygon using the even-odd rule.
// Polygons with fewer than three vertices enclose nothing.
func (p Polygon) Contains(x, y int) bool {
	if len(p) < 3 {
		return false
	}
	minX, minY, maxX, maxY := p.Bounds()
	if x < minX || x >= maxX || y < minY || y >= maxY {
		return false
	}

	px, py := float64(x), float64(y)
	inside := false
	for i, j := 0, len(p)-1; i < len(p); j, i = i, i+1 {
		xi, yi := float64(p[i].X), float64(p[i].Y)
		xj, yj := float64(p[j].X), float64(p[j].Y)
		if (yi > py) == (yj > py) {
			continue
		}
		// X where the edge crosses the horizontal line through py
		cross := xi + (py-yi)*(xj-xi)/(yj-yi)
		if px < cross {
			inside = !inside
		}
	}
	return inside
}

// IsColliding reports whether any vertex of b lies inside a, or any vertex of a lies inside b.
// Overlaps where edges cross without either shape containing a vertex are not detected.
func IsColliding(a, b Polygon) bool {
	for _, v := range b {
		if a.Contains(v.X, v.Y) {
			return true
		}
	}
	for _, v := range a {
		if b.Contains(v.X, v.Y) {
			return true
		}
	}
	return false
}

// ChebyshevDistance returns the larger of the axis distances between two points.
func ChebyshevDistance(x1, y1, x2, y2 float64) float64 {
	return math.Max(math.Abs(x2-x1), math.Abs(y2-y1))
}
