package merge

import "github.com/masktools/mask-merge-mcp/internal/geometry"

// PolygonsOverlap reports whether two polygons geometrically overlap.
//
// After a bounding-box fast-reject the test succeeds if any of:
//
//	(a) a vertex of p1 lies inside p2
//	(b) a vertex of p2 lies inside p1
//	(c) an edge of p1 properly crosses an edge of p2
//
// (a) and (b) use the boundary-inclusive point test, so full containment
// (zero edge crossings) and polygons that only touch are both classified as
// overlapping. (c) catches partial overlaps whose vertices all lie outside
// the other polygon.
//
// Complexity is O(n·m) edge pairs — fine for annotation-sized polygons of
// tens to low hundreds of vertices.
func PolygonsOverlap(p1, p2 geometry.Polygon) bool {
	b1, ok1 := p1.Bounds()
	b2, ok2 := p2.Bounds()
	if !ok1 || !ok2 {
		return false
	}

	if b1.MaxX < b2.MinX || b2.MaxX < b1.MinX ||
		b1.MaxY < b2.MinY || b2.MaxY < b1.MinY {
		return false
	}

	for _, v := range p1 {
		if geometry.PointInPolygon(v.X, v.Y, p2) {
			return true
		}
	}
	for _, v := range p2 {
		if geometry.PointInPolygon(v.X, v.Y, p1) {
			return true
		}
	}

	for i, j := 0, len(p1)-1; i < len(p1); j, i = i, i+1 {
		for k, l := 0, len(p2)-1; k < len(p2); l, k = k, k+1 {
			if geometry.SegmentsIntersect(p1[j], p1[i], p2[l], p2[k]) {
				return true
			}
		}
	}

	return false
}
