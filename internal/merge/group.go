package merge

import "github.com/masktools/mask-merge-mcp/internal/geometry"

// disjointSet is an array-backed union-find over polygon indices with path
// compression. Polygon slice indices double as the set elements, so no
// graph of objects is needed.
type disjointSet struct {
	parent []int
}

func newDisjointSet(n int) *disjointSet {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &disjointSet{parent: parent}
}

func (d *disjointSet) find(i int) int {
	for d.parent[i] != i {
		d.parent[i] = d.parent[d.parent[i]] // path compression
		i = d.parent[i]
	}
	return i
}

func (d *disjointSet) union(i, j int) {
	ri, rj := d.find(i), d.find(j)
	if ri != rj {
		d.parent[rj] = ri
	}
}

// GroupOverlapping partitions polygons into connected overlap-groups and
// returns each group as a slice of indices into the input.
//
// Every pair is tested with PolygonsOverlap and overlapping pairs are
// unioned, so groups are transitive: A overlapping B and B overlapping C
// puts all three in one group even if A and C are disjoint. The returned
// groups partition the full index range 0..len(polys)-1 with no overlaps
// and no omissions, ordered by each group's smallest member index.
//
// Complexity is O(n²) pair checks, with n bounded by typical UI batch sizes.
func GroupOverlapping(polys []geometry.Polygon) [][]int {
	if len(polys) == 0 {
		return nil
	}

	ds := newDisjointSet(len(polys))
	for i := 0; i < len(polys); i++ {
		for j := i + 1; j < len(polys); j++ {
			if PolygonsOverlap(polys[i], polys[j]) {
				ds.union(i, j)
			}
		}
	}

	groupIdx := make(map[int]int)
	groups := make([][]int, 0)

	for i := range polys {
		root := ds.find(i)
		gi, seen := groupIdx[root]
		if !seen {
			gi = len(groups)
			groupIdx[root] = gi
			groups = append(groups, nil)
		}
		groups[gi] = append(groups[gi], i)
	}

	return groups
}
