// Package render produces diagnostic raster previews of the merge engine's
// occupancy grids.
//
// A preview paints every overlap group of a polygon set in a distinct color
// on the same grid the raster merger works on, which makes grouping and
// rasterization behavior directly inspectable: disjoint inputs show up as
// separately colored regions, transitively grouped inputs as one region.
//
// Previews are returned base64 PNG encoded, matching the result shape used
// for the other image-producing tools in this server.
package render
