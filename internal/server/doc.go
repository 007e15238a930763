// Package server implements the MCP (Model Context Protocol) server for the
// polygon merge tools.
//
// This package provides a JSON-RPC 2.0 server that exposes the mask merge
// engine through the MCP protocol. It's designed to work with Claude and
// other MCP-compatible clients, letting annotation tooling merge overlapping
// segmentation polygons without reimplementing the geometry.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// The server provides 6 tools organized into categories:
//
// Merge Operations:
//   - merge_mask_polygons: Filter invalid polygons, summarize the rest
//   - merge_annotations: Merge overlapping annotation segmentations
//
// Geometry Queries:
//   - polygon_area: Shoelace area of one polygon
//   - polygon_bbox: Combined bounding box of polygons
//   - polygons_overlap: Overlap test between two polygons
//
// Diagnostics:
//   - merge_preview: Render overlap groups as a colored PNG
//
// # Payload Format
//
// Polygons travel as flat coordinate lists [x0, y0, x1, y1, ...], the same
// shape COCO segmentations use. Lists with fewer than three vertices or an
// odd number of values are silently dropped by the merge tools; the query
// tools reject them with an error instead. A merge with no usable output
// returns JSON null rather than an error.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
