// Package geometry provides the polygon primitives used by the merge engine.
//
// Polygons are closed contours stored as ordered vertex sequences in
// image-pixel ("natural") space: the last vertex implicitly connects back to
// the first. Winding order is unconstrained — every algorithm in this package
// is winding-agnostic. The minimum useful polygon has 3 vertices; anything
// smaller is degenerate and is filtered rather than rejected with an error.
//
// # Coordinate System
//
// All coordinates follow the standard image convention:
//   - Origin (0, 0) at top-left corner
//   - X increases rightward
//   - Y increases downward
//
// # External Contract
//
// Callers exchange polygons as COCO-style flat coordinate lists
// [x0, y0, x1, y1, ...]. FromFlat is the single validated entry point for
// that format: it returns nil for any list that cannot form a polygon
// (fewer than 6 values, or an odd count), so downstream code never repeats
// the length check. Flat converts back for serialization.
//
// # Bounding Boxes
//
// Extents come in two shapes depending on the consumer:
//   - Bounds {MinX, MinY, MaxX, MaxY} for internal geometry
//   - BBox [x, y, width, height] for the external COCO-shaped contract
//
// # Error Handling
//
// Functions in this package never return errors. Degenerate input yields a
// zero area, a false ok flag, or a nil polygon, and callers filter those the
// same way at every boundary.
package geometry
