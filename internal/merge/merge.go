package merge

import (
	"math"

	"github.com/masktools/mask-merge-mcp/internal/geometry"
)

// Annotation mirrors the COCO-shaped records the surrounding annotation
// tool stores: an identifier, a category, and a segmentation made of one or
// more polygons for disjoint regions (never interior holes).
type Annotation struct {
	ID           int
	CategoryID   int
	Segmentation []geometry.Polygon
}

// Result is the outcome of a merge: the final polygon set, the minimal
// axis-aligned bounding box enclosing it in [x, y, width, height] form, and
// the summed shoelace area. The area sum is valid because post-merge
// polygons are disjoint by construction.
//
// The caller owns the Result; nothing is retained across invocations.
type Result struct {
	Polygons []geometry.Polygon
	BBox     geometry.BBox
	Area     float64
}

// MergeMaskPolygons filters out invalid polygons and returns all remaining
// polygons unchanged — no geometric unioning and no rasterization. It is
// the entry point for callers that want several disjoint contours kept
// together as one logical annotation, such as freshly drawn non-overlapping
// masks.
//
// Returns nil when no valid polygon remains.
func MergeMaskPolygons(polys []geometry.Polygon) *Result {
	valid := filterValid(polys)
	if len(valid) == 0 {
		return nil
	}
	return summarize(valid)
}

// MergeAnnotations collects every valid polygon across the given
// annotations' segmentations, partitions them into connected
// overlap-groups, and raster-merges each multi-member group while passing
// singleton groups through unchanged. The output is the minimum polygon
// count where truly overlapping inputs collapse per connected group and
// disjoint inputs remain separate.
//
// Returns nil when no valid polygon is collected or merging yields zero
// output contours.
func MergeAnnotations(anns []Annotation) *Result {
	var collected []geometry.Polygon
	for _, ann := range anns {
		collected = append(collected, filterValid(ann.Segmentation)...)
	}
	if len(collected) == 0 {
		return nil
	}

	groups := GroupOverlapping(collected)

	out := make([]geometry.Polygon, 0, len(groups))
	for _, group := range groups {
		if len(group) == 1 {
			out = append(out, collected[group[0]])
			continue
		}

		members := make([]geometry.Polygon, len(group))
		for i, idx := range group {
			members[i] = collected[idx]
		}

		if merged := UnionGroup(members); merged.Valid() {
			out = append(out, merged)
		}
	}

	if len(out) == 0 {
		return nil
	}
	return summarize(out)
}

// filterValid drops polygons with fewer than 3 vertices.
func filterValid(polys []geometry.Polygon) []geometry.Polygon {
	valid := make([]geometry.Polygon, 0, len(polys))
	for _, p := range polys {
		if p.Valid() {
			valid = append(valid, p)
		}
	}
	return valid
}

// summarize builds a Result for a non-empty set of valid polygons.
func summarize(polys []geometry.Polygon) *Result {
	bounds, _ := geometry.CombinedBounds(polys)

	area := 0.0
	for _, p := range polys {
		area += p.Area()
	}

	return &Result{
		Polygons: polys,
		BBox:     bounds.BBox(),
		Area:     math.Round(area*100) / 100,
	}
}
