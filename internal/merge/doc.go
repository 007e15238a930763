// Package merge implements the polygon merge engine: combining a set of
// independently produced polygons into a minimal set of output polygons.
// Geometrically overlapping inputs collapse into a single contour per
// connected overlap-group; disjoint inputs remain separate.
//
// # Pipeline
//
//  1. Overlap detection: two polygons overlap when, after a bounding-box
//     fast-reject, a vertex of one lies inside the other or an edge of one
//     properly crosses an edge of the other. The vertex test is
//     boundary-inclusive, so full containment and mere touching both count.
//  2. Grouping: a union-find over polygon indices partitions the input into
//     connected overlap-groups. Grouping is transitive by design: if A
//     overlaps B and B overlaps C, all three land in one group even when A
//     and C are disjoint — rasterization computes the true combined
//     footprint regardless.
//  3. Raster union: each multi-member group is rasterized onto a shared
//     binary grid, OR-ed together, and the outer boundary of the filled
//     region is traced back into a polygon.
//
// # Why Rasterize
//
// Exact polygon boolean union is hard to get right for concave,
// self-touching, and degenerate contours. Rasterizing trades a bounded
// positional error (roughly one grid cell, a few pixels at the default
// 256-cell grid for large features) for robustness: the union of arbitrary
// valid polygons never fails, it only approximates. Annotation masks do not
// need sub-pixel precision, so this is the right trade.
//
// Only the outer boundary is traced; interior holes produced by a
// ring-shaped union are not represented. That is an accepted limitation for
// solid-mask annotation use.
//
// # Error Handling
//
// The engine never returns errors for malformed geometry. Polygons with
// fewer than 3 vertices are filtered silently at every boundary, a group
// that rasterizes to zero filled cells yields a nil polygon that is filtered
// the same way, and the only outward-visible outcomes are a valid *Result or
// a nil "no result".
//
// # Concurrency
//
// All state (grids, union-find arrays) is allocated fresh per call and
// discarded afterward, so concurrent invocations are safe without locking.
package merge
