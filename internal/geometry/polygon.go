package geometry

// Point represents a 2D coordinate in image-pixel space.
type Point struct {
	X float64 `json:"x"` // Horizontal position (0 = leftmost)
	Y float64 `json:"y"` // Vertical position (0 = topmost)
}

// Polygon is a closed contour stored as an ordered vertex sequence.
// The last vertex implicitly connects back to the first.
type Polygon []Point

// FromFlat builds a Polygon from a COCO-style flat coordinate list
// [x0, y0, x1, y1, ...].
//
// It returns nil if the list cannot form a polygon: fewer than 6 values
// (3 points) or an odd value count. This is the single validation point for
// externally supplied coordinates; callers treat a nil return like any other
// invalid polygon and filter it silently.
func FromFlat(coords []float64) Polygon {
	if len(coords) < 6 || len(coords)%2 != 0 {
		return nil
	}

	poly := make(Polygon, 0, len(coords)/2)
	for i := 0; i < len(coords); i += 2 {
		poly = append(poly, Point{X: coords[i], Y: coords[i+1]})
	}

	return poly
}

// Flat converts the polygon back to a flat [x0, y0, x1, y1, ...] list.
func (p Polygon) Flat() []float64 {
	coords := make([]float64, 0, len(p)*2)
	for _, pt := range p {
		coords = append(coords, pt.X, pt.Y)
	}
	return coords
}

// Valid reports whether the polygon has enough vertices to enclose area.
func (p Polygon) Valid() bool {
	return len(p) >= 3
}

// Bounds represents raw min/max extents in image-pixel space.
type Bounds struct {
	MinX float64 `json:"min_x"`
	MinY float64 `json:"min_y"`
	MaxX float64 `json:"max_x"`
	MaxY float64 `json:"max_y"`
}

// Width returns the horizontal extent of the bounds.
func (b Bounds) Width() float64 {
	return b.MaxX - b.MinX
}

// Height returns the vertical extent of the bounds.
func (b Bounds) Height() float64 {
	return b.MaxY - b.MinY
}

// BBox is the external bounding-box shape [x, y, width, height], matching
// the COCO annotation format.
type BBox [4]float64

// BBox converts raw extents to the external [x, y, width, height] shape.
func (b Bounds) BBox() BBox {
	return BBox{b.MinX, b.MinY, b.Width(), b.Height()}
}
