package merge

import (
	"math"
	"testing"

	"github.com/masktools/mask-merge-mcp/internal/geometry"
)

func TestMergeMaskPolygons_Passthrough(t *testing.T) {
	// Overlapping inputs stay separate: this entry point never unions.
	polys := []geometry.Polygon{
		square(0, 0, 100),
		square(50, 50, 100),
		square(500, 500, 10),
	}

	result := MergeMaskPolygons(polys)
	if result == nil {
		t.Fatal("no result for valid polygons")
	}
	if len(result.Polygons) != len(polys) {
		t.Fatalf("got %d polygons, want %d (passthrough)", len(result.Polygons), len(polys))
	}
	for i := range polys {
		if len(result.Polygons[i]) != len(polys[i]) {
			t.Errorf("polygon %d was modified", i)
		}
	}
}

func TestMergeMaskPolygons_FiltersInvalid(t *testing.T) {
	result := MergeMaskPolygons([]geometry.Polygon{
		geometry.FromFlat([]float64{0, 0, 5, 0, 5, 5, 0, 5}),
		geometry.FromFlat([]float64{0, 0, 3, 0}), // too short, nil
	})

	if result == nil {
		t.Fatal("no result despite one valid polygon")
	}
	if len(result.Polygons) != 1 {
		t.Fatalf("got %d polygons, want 1", len(result.Polygons))
	}
	if result.Area != 25 {
		t.Errorf("area = %v, want 25", result.Area)
	}
}

func TestMergeMaskPolygons_Empty(t *testing.T) {
	if MergeMaskPolygons(nil) != nil {
		t.Error("empty input must yield no result")
	}
	if MergeMaskPolygons([]geometry.Polygon{nil, {{X: 0, Y: 0}, {X: 1, Y: 1}}}) != nil {
		t.Error("all-invalid input must yield no result")
	}
}

func TestMergeAnnotations_OverlappingSquares(t *testing.T) {
	anns := []Annotation{
		{ID: 1, CategoryID: 3, Segmentation: []geometry.Polygon{square(0, 0, 100)}},
		{ID: 2, CategoryID: 3, Segmentation: []geometry.Polygon{square(50, 50, 100)}},
	}

	result := MergeAnnotations(anns)
	if result == nil {
		t.Fatal("no result")
	}
	if len(result.Polygons) != 1 {
		t.Fatalf("got %d polygons, want 1 merged contour", len(result.Polygons))
	}

	// Exact union area is 17500; the raster approximation must stay
	// within its tolerance of that, not merely below the naive sum.
	if result.Area < 16000 || result.Area > 19000 {
		t.Errorf("area = %v, want ~17500 within raster tolerance", result.Area)
	}

	assertNear(t, "bbox x", result.BBox[0], 0, 2)
	assertNear(t, "bbox y", result.BBox[1], 0, 2)
	assertNear(t, "bbox width", result.BBox[2], 150, 2)
	assertNear(t, "bbox height", result.BBox[3], 150, 2)
}

func TestMergeAnnotations_DisjointPreserved(t *testing.T) {
	anns := []Annotation{
		{ID: 1, Segmentation: []geometry.Polygon{square(0, 0, 10)}},
		{ID: 2, Segmentation: []geometry.Polygon{square(300, 0, 10)}},
		{ID: 3, Segmentation: []geometry.Polygon{square(0, 300, 10)}},
	}

	result := MergeAnnotations(anns)
	if result == nil {
		t.Fatal("no result")
	}
	if len(result.Polygons) != 3 {
		t.Fatalf("got %d polygons, want 3 (disjoint inputs preserved)", len(result.Polygons))
	}

	// Disjoint singletons pass through untouched, so areas are exact.
	if result.Area != 300 {
		t.Errorf("total area = %v, want 300", result.Area)
	}

	want := geometry.BBox{0, 0, 310, 310}
	if result.BBox != want {
		t.Errorf("bbox = %v, want %v", result.BBox, want)
	}
}

func TestMergeAnnotations_Transitive(t *testing.T) {
	// A overlaps B, B overlaps C, A and C disjoint: one output contour.
	anns := []Annotation{
		{ID: 1, Segmentation: []geometry.Polygon{square(0, 0, 60)}},
		{ID: 2, Segmentation: []geometry.Polygon{square(40, 40, 60)}},
		{ID: 3, Segmentation: []geometry.Polygon{square(80, 80, 60)}},
	}

	result := MergeAnnotations(anns)
	if result == nil {
		t.Fatal("no result")
	}
	if len(result.Polygons) != 1 {
		t.Errorf("got %d polygons, want 1", len(result.Polygons))
	}
}

func TestMergeAnnotations_Nested(t *testing.T) {
	anns := []Annotation{
		{ID: 1, Segmentation: []geometry.Polygon{square(0, 0, 100)}},
		{ID: 2, Segmentation: []geometry.Polygon{square(25, 25, 50)}},
	}

	result := MergeAnnotations(anns)
	if result == nil {
		t.Fatal("no result")
	}
	if len(result.Polygons) != 1 {
		t.Fatalf("got %d polygons, want 1 (outer boundary only)", len(result.Polygons))
	}
	if math.Abs(result.Area-10000) > 1000 {
		t.Errorf("area = %v, want ~10000 (outer square)", result.Area)
	}
}

func TestMergeAnnotations_MultiPolygonSegmentation(t *testing.T) {
	// One annotation holding two disjoint regions, a second annotation
	// overlapping only the first region.
	anns := []Annotation{
		{ID: 1, Segmentation: []geometry.Polygon{square(0, 0, 50), square(400, 400, 50)}},
		{ID: 2, Segmentation: []geometry.Polygon{square(25, 25, 50)}},
	}

	result := MergeAnnotations(anns)
	if result == nil {
		t.Fatal("no result")
	}
	if len(result.Polygons) != 2 {
		t.Fatalf("got %d polygons, want 2 (one merged, one untouched)", len(result.Polygons))
	}
}

func TestMergeAnnotations_Empty(t *testing.T) {
	if MergeAnnotations(nil) != nil {
		t.Error("empty input must yield no result")
	}
	if MergeAnnotations([]Annotation{{ID: 1}, {ID: 2, Segmentation: []geometry.Polygon{nil}}}) != nil {
		t.Error("annotations without valid polygons must yield no result")
	}
}

func TestMergeAnnotations_Idempotent(t *testing.T) {
	anns := []Annotation{
		{ID: 1, Segmentation: []geometry.Polygon{square(0, 0, 100)}},
		{ID: 2, Segmentation: []geometry.Polygon{square(50, 50, 100)}},
		{ID: 3, Segmentation: []geometry.Polygon{square(400, 400, 30)}},
	}

	first := MergeAnnotations(anns)
	if first == nil {
		t.Fatal("no result from first merge")
	}

	second := MergeAnnotations([]Annotation{{ID: 99, Segmentation: first.Polygons}})
	if second == nil {
		t.Fatal("no result from re-merge")
	}

	if len(second.Polygons) != len(first.Polygons) {
		t.Errorf("re-merge changed polygon count: %d -> %d",
			len(first.Polygons), len(second.Polygons))
	}
	if math.Abs(second.Area-first.Area)/first.Area > 0.02 {
		t.Errorf("re-merge changed area beyond 2%%: %v -> %v", first.Area, second.Area)
	}
}
