package geometry

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Area returns the enclosed area of the polygon using the shoelace formula.
//
// The result is the absolute value of the signed shoelace sum divided by 2,
// so it is independent of winding order. Degenerate polygons (fewer than 3
// vertices) have area 0.
func (p Polygon) Area() float64 {
	if !p.Valid() {
		return 0
	}

	sum := 0.0
	for i, j := 0, len(p)-1; i < len(p); j, i = i, i+1 {
		sum += p[j].X*p[i].Y - p[i].X*p[j].Y
	}

	return math.Abs(sum) / 2
}

// Bounds returns the polygon's min/max extents.
// ok is false for polygons with fewer than 3 vertices.
func (p Polygon) Bounds() (bounds Bounds, ok bool) {
	return CombinedBounds([]Polygon{p})
}

// CombinedBounds returns the min/max extents over all valid polygons in the
// set. Polygons with fewer than 3 vertices are skipped; ok is false when no
// polygon is valid.
func CombinedBounds(polys []Polygon) (bounds Bounds, ok bool) {
	var xs, ys []float64

	for _, p := range polys {
		if !p.Valid() {
			continue
		}
		for _, pt := range p {
			xs = append(xs, pt.X)
			ys = append(ys, pt.Y)
		}
	}

	if len(xs) == 0 {
		return Bounds{}, false
	}

	return Bounds{
		MinX: floats.Min(xs),
		MinY: floats.Min(ys),
		MaxX: floats.Max(xs),
		MaxY: floats.Max(ys),
	}, true
}
