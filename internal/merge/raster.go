package merge

import (
	"math"
	"sort"

	"github.com/masktools/mask-merge-mcp/internal/geometry"
)

const (
	// maxGridDim maps the longer bounding-box dimension to at most this
	// many cells, bounding both memory and positional error.
	maxGridDim = 256

	// gridPad is the margin of empty cells kept around the rasterized
	// region so boundary tracing never runs against the grid edge.
	gridPad = 2

	// simplifyTolerance is the perpendicular deviation, in grid units,
	// below which traced boundary points are dropped. Moore tracing steps
	// a diagonal across every corner, so the deviation of a genuine corner
	// cell can only be judged against a long chord, never against its
	// immediate neighbors.
	simplifyTolerance = 0.5
)

// cell is a grid coordinate produced by rasterization and tracing.
type cell struct {
	x, y int
}

// UnionGroup merges a group of overlapping polygons into one polygon
// approximating their exact geometric union.
//
// The group is rasterized onto a shared binary occupancy grid via scanline
// fill, the outer boundary of the filled region is traced with 8-connected
// boundary following, the trace is simplified, and the result is mapped
// back to image space. Grid resolution is chosen per call from the group's
// combined bounding box, so positional error scales with feature size.
//
// Returns nil when the group rasterizes to zero filled cells (degenerate or
// zero-area input); callers filter that exactly like any other invalid
// polygon.
func UnionGroup(group []geometry.Polygon) geometry.Polygon {
	bounds, ok := geometry.CombinedBounds(group)
	if !ok {
		return nil
	}

	res, gw, gh := gridLayout(bounds)

	grid := make([][]bool, gh)
	for y := range grid {
		grid[y] = make([]bool, gw)
	}

	for _, poly := range group {
		if !poly.Valid() {
			continue
		}
		rasterize(poly, bounds, res, gw, gh, func(x, y int) {
			grid[y][x] = true
		})
	}

	trace := traceBoundary(grid, gw, gh)
	if len(trace) < 3 {
		return nil
	}

	trace = simplifyTrace(trace)

	// Map grid coordinates back to image space.
	out := make(geometry.Polygon, len(trace))
	for i, c := range trace {
		out[i] = geometry.Point{
			X: (float64(c.x)-1)/res + bounds.MinX,
			Y: (float64(c.y)-1)/res + bounds.MinY,
		}
	}

	return out
}

// gridLayout picks the grid resolution and dimensions for a bounding box.
// Resolution is capped at 1 cell per pixel; larger features are scaled down
// so the longer dimension fits maxGridDim cells.
func gridLayout(bounds geometry.Bounds) (res float64, gw, gh int) {
	res = 1.0
	if maxDim := math.Max(bounds.Width(), bounds.Height()); maxDim > 0 {
		res = math.Min(1, maxGridDim/maxDim)
	}

	gw = int(math.Ceil(bounds.Width()*res)) + 2*gridPad
	gh = int(math.Ceil(bounds.Height()*res)) + 2*gridPad
	return res, gw, gh
}

// rasterize scanline-fills one polygon onto the grid, invoking mark for
// every covered cell. Per row it collects the x-coordinates where edges
// cross the scanline, sorts them, and fills the spans between consecutive
// pairs. Edge tests are half-open in y so shared vertices are not counted
// twice.
func rasterize(poly geometry.Polygon, bounds geometry.Bounds, res float64,
	gw, gh int, mark func(x, y int)) {

	// Transform vertices into grid space.
	gx := make([]float64, len(poly))
	gy := make([]float64, len(poly))
	for i, pt := range poly {
		gx[i] = (pt.X-bounds.MinX)*res + gridPad
		gy[i] = (pt.Y-bounds.MinY)*res + gridPad
	}

	xs := make([]float64, 0, len(poly))

	for y := 0; y < gh; y++ {
		fy := float64(y)
		xs = xs[:0]

		for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
			y1, y2 := gy[j], gy[i]
			if (y1 <= fy && y2 > fy) || (y2 <= fy && y1 > fy) {
				xs = append(xs, gx[j]+(fy-y1)/(y2-y1)*(gx[i]-gx[j]))
			}
		}

		sort.Float64s(xs)

		for k := 0; k+1 < len(xs); k += 2 {
			x0 := int(math.Ceil(xs[k]))
			x1 := int(math.Floor(xs[k+1]))
			if x0 < 0 {
				x0 = 0
			}
			if x1 > gw-1 {
				x1 = gw - 1
			}
			for x := x0; x <= x1; x++ {
				mark(x, y)
			}
		}
	}
}

// neighbors8 enumerates the 8-connected neighborhood in clockwise order
// starting east.
var neighbors8 = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

// traceBoundary walks the outer boundary of the filled region using
// 8-connected boundary following (Moore tracing) and returns the visited
// cells in order.
//
// The walk starts at the first filled cell in row-major order and accepts a
// candidate neighbor only if it is filled AND is itself a boundary cell
// (has at least one unfilled or out-of-bounds 8-neighbor). It stops when
// the start cell is revisited with at least 3 collected points, or after a
// hard cap of 2·gw·gh steps — a safety valve against non-termination on
// pathological grids, returning the partial boundary collected so far.
func traceBoundary(grid [][]bool, gw, gh int) []cell {
	start, found := firstFilled(grid, gw, gh)
	if !found {
		return nil
	}

	filled := func(x, y int) bool {
		return x >= 0 && x < gw && y >= 0 && y < gh && grid[y][x]
	}
	isBoundary := func(x, y int) bool {
		for _, d := range neighbors8 {
			if !filled(x+d[0], y+d[1]) {
				return true
			}
		}
		return false
	}

	points := []cell{start}
	cur := start
	dir := 0
	maxSteps := 2 * gw * gh

	for step := 0; step < maxSteps; step++ {
		advanced := false

		// Resume the clockwise scan just past the direction we came
		// from, keeping the unfilled region on the same side.
		for k := 0; k < 8; k++ {
			d := (dir + 5 + k) % 8
			nx, ny := cur.x+neighbors8[d][0], cur.y+neighbors8[d][1]
			if filled(nx, ny) && isBoundary(nx, ny) {
				cur = cell{x: nx, y: ny}
				dir = d
				advanced = true
				break
			}
		}

		if !advanced {
			// Isolated cell with no boundary neighbors.
			break
		}

		if cur == start && len(points) >= 3 {
			break
		}

		points = append(points, cur)
	}

	return points
}

// firstFilled returns the first filled cell in row-major order.
func firstFilled(grid [][]bool, gw, gh int) (cell, bool) {
	for y := 0; y < gh; y++ {
		for x := 0; x < gw; x++ {
			if grid[y][x] {
				return cell{x: x, y: y}, true
			}
		}
	}
	return cell{}, false
}

// simplifyTrace reduces the traced ring with Douglas-Peucker at
// simplifyTolerance. The ring is split at the vertex farthest from the
// start so both halves get stable chord anchors; convex and reflex corners
// alike deviate far from the long chords and survive, while straight and
// 45-degree staircase runs collapse. The result never shrinks below 3
// points; if simplification would, the raw trace is returned instead.
func simplifyTrace(trace []cell) []cell {
	if len(trace) <= 3 {
		return trace
	}

	far, maxDist := 0, 0.0
	for i, c := range trace {
		d := math.Hypot(float64(c.x-trace[0].x), float64(c.y-trace[0].y))
		if d > maxDist {
			maxDist, far = d, i
		}
	}
	if far == 0 {
		return trace
	}

	firstHalf := douglasPeucker(trace[:far+1])

	secondHalf := make([]cell, 0, len(trace)-far+1)
	secondHalf = append(secondHalf, trace[far:]...)
	secondHalf = append(secondHalf, trace[0])
	secondHalf = douglasPeucker(secondHalf)

	// Both halves share their endpoints; drop each half's last vertex to
	// close the ring without duplicates.
	kept := make([]cell, 0, len(firstHalf)+len(secondHalf)-2)
	kept = append(kept, firstHalf[:len(firstHalf)-1]...)
	kept = append(kept, secondHalf[:len(secondHalf)-1]...)

	if len(kept) < 3 {
		return trace
	}
	return kept
}

// douglasPeucker recursively simplifies an open polyline, always keeping
// both endpoints.
func douglasPeucker(pts []cell) []cell {
	if len(pts) < 3 {
		return pts
	}

	last := len(pts) - 1
	maxDist, split := 0.0, 0
	for i := 1; i < last; i++ {
		d := perpDistance(pts[i], pts[0], pts[last])
		if d > maxDist {
			maxDist, split = d, i
		}
	}

	if maxDist < simplifyTolerance {
		return []cell{pts[0], pts[last]}
	}

	left := douglasPeucker(pts[:split+1])
	right := douglasPeucker(pts[split:])

	out := make([]cell, 0, len(left)+len(right)-1)
	out = append(out, left...)
	out = append(out, right[1:]...)
	return out
}

// perpDistance returns the perpendicular distance from p to the line
// through a and b. When a and b coincide it degrades to point distance.
func perpDistance(p, a, b cell) float64 {
	dx := float64(b.x - a.x)
	dy := float64(b.y - a.y)

	length := math.Hypot(dx, dy)
	if length == 0 {
		return math.Hypot(float64(p.x-a.x), float64(p.y-a.y))
	}

	cross := dx*float64(p.y-a.y) - dy*float64(p.x-a.x)
	return math.Abs(cross) / length
}
