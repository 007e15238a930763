package merge

import "github.com/masktools/mask-merge-mcp/internal/geometry"

// LabeledGrid is a rasterization of a polygon set where every covered cell
// carries the 1-based index of the overlap group covering it. Cell value 0
// means empty. It exists for diagnostic mask previews; the merge pipeline
// itself works on plain binary grids.
type LabeledGrid struct {
	Cells  [][]uint8
	Width  int
	Height int

	// Bounds and Resolution describe the grid-to-image transform, the
	// same one UnionGroup uses to map traced boundaries back.
	Bounds     geometry.Bounds
	Resolution float64

	// Groups is the number of overlap groups rasterized.
	Groups int
}

// Rasterize builds a LabeledGrid for the polygon set partitioned by groups
// (as returned by GroupOverlapping). Invalid polygons are skipped; ok is
// false when nothing valid remains. Group labels wrap at 255, which only
// affects preview coloring for absurdly large batches.
func Rasterize(polys []geometry.Polygon, groups [][]int) (*LabeledGrid, bool) {
	bounds, ok := geometry.CombinedBounds(polys)
	if !ok {
		return nil, false
	}

	res, gw, gh := gridLayout(bounds)

	cells := make([][]uint8, gh)
	for y := range cells {
		cells[y] = make([]uint8, gw)
	}

	for gi, group := range groups {
		label := uint8(gi%255) + 1
		for _, idx := range group {
			poly := polys[idx]
			if !poly.Valid() {
				continue
			}
			rasterize(poly, bounds, res, gw, gh, func(x, y int) {
				cells[y][x] = label
			})
		}
	}

	return &LabeledGrid{
		Cells:      cells,
		Width:      gw,
		Height:     gh,
		Bounds:     bounds,
		Resolution: res,
		Groups:     len(groups),
	}, true
}
