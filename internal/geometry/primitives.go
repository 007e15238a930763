package geometry

import "math"

// epsilon absorbs floating-point noise in orientation and on-edge tests.
const epsilon = 1e-9

// PointInPolygon reports whether the point (x, y) lies inside the polygon.
//
// The test casts a horizontal ray and counts edge crossings. It is
// boundary-inclusive: a point exactly on an edge or vertex counts as inside.
// That choice matters for overlap detection, where two polygons that only
// touch must still register as overlapping.
//
// Returns false for polygons with fewer than 3 vertices.
func PointInPolygon(x, y float64, poly Polygon) bool {
	if !poly.Valid() {
		return false
	}

	inside := false
	n := len(poly)

	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := poly[i].X, poly[i].Y
		xj, yj := poly[j].X, poly[j].Y

		if onSegment(x, y, xi, yi, xj, yj) {
			return true
		}

		// Half-open span check avoids double counting at vertices.
		if (yi > y) != (yj > y) {
			crossX := xi + (y-yi)/(yj-yi)*(xj-xi)
			if x < crossX {
				inside = !inside
			}
		}
	}

	return inside
}

// onSegment reports whether (x, y) lies on the segment (x1,y1)-(x2,y2).
func onSegment(x, y, x1, y1, x2, y2 float64) bool {
	cross := (x2-x1)*(y-y1) - (y2-y1)*(x-x1)
	if math.Abs(cross) > epsilon*math.Max(1, math.Abs(x2-x1)+math.Abs(y2-y1)) {
		return false
	}

	return x >= math.Min(x1, x2)-epsilon && x <= math.Max(x1, x2)+epsilon &&
		y >= math.Min(y1, y2)-epsilon && y <= math.Max(y1, y2)+epsilon
}

// orientation returns the sign of the cross product (b-a) x (c-a):
// +1 for counter-clockwise, -1 for clockwise, 0 for colinear.
func orientation(a, b, c Point) int {
	cross := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
	switch {
	case cross > epsilon:
		return 1
	case cross < -epsilon:
		return -1
	default:
		return 0
	}
}

// SegmentsIntersect reports whether segments (a1-a2) and (b1-b2) properly
// cross each other.
//
// The test is strict: segments that merely touch at an endpoint or overlap
// colinearly are NOT reported as intersecting. Touching polygons are caught
// by the boundary-inclusive vertex-containment test instead, so the overlap
// detector needs only true crossings here.
func SegmentsIntersect(a1, a2, b1, b2 Point) bool {
	o1 := orientation(a1, a2, b1)
	o2 := orientation(a1, a2, b2)
	o3 := orientation(b1, b2, a1)
	o4 := orientation(b1, b2, a2)

	if o1 == 0 || o2 == 0 || o3 == 0 || o4 == 0 {
		return false
	}

	return o1 != o2 && o3 != o4
}
