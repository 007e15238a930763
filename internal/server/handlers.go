package server

import (
	"encoding/json"
	"fmt"

	"github.com/masktools/mask-merge-mcp/internal/geometry"
	"github.com/masktools/mask-merge-mcp/internal/merge"
	"github.com/masktools/mask-merge-mcp/internal/render"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "merge_annotations", "polygon_area").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Converts flat coordinate lists into polygons
//  4. Calls the appropriate merge/geometry/render function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Merge Operations
	case "merge_mask_polygons":
		return s.handleMergeMaskPolygons(args)
	case "merge_annotations":
		return s.handleMergeAnnotations(args)

	// Geometry Queries
	case "polygon_area":
		return s.handlePolygonArea(args)
	case "polygon_bbox":
		return s.handlePolygonBBox(args)
	case "polygons_overlap":
		return s.handlePolygonsOverlap(args)

	// Diagnostics
	case "merge_preview":
		return s.handleMergePreview(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// toPolygons converts flat coordinate lists into polygons. Lists with fewer
// than 3 vertices or an odd number of values come through as nil polygons,
// which the merge pipeline silently drops.
func toPolygons(flat [][]float64) []geometry.Polygon {
	polys := make([]geometry.Polygon, len(flat))
	for i, f := range flat {
		polys[i] = geometry.FromFlat(f)
	}
	return polys
}

// MergeToolResult is the wire form of a merge outcome: polygons back in flat
// coordinate lists, the combined bounding box in [x, y, width, height] form,
// and the total area.
type MergeToolResult struct {
	Polygons     [][]float64   `json:"polygons"`
	PolygonCount int           `json:"polygon_count"`
	BBox         geometry.BBox `json:"bbox"`
	Area         float64       `json:"area"`
}

// toMergeToolResult flattens a merge result for JSON output. A nil result
// stays nil so it marshals to JSON null.
func toMergeToolResult(r *merge.Result) *MergeToolResult {
	if r == nil {
		return nil
	}
	flat := make([][]float64, len(r.Polygons))
	for i, p := range r.Polygons {
		flat[i] = p.Flat()
	}
	return &MergeToolResult{
		Polygons:     flat,
		PolygonCount: len(flat),
		BBox:         r.BBox,
		Area:         r.Area,
	}
}

// === Merge Operation Handlers ===

type mergeMaskPolygonsArgs struct {
	Polygons [][]float64 `json:"polygons"`
}

func (s *Server) handleMergeMaskPolygons(args json.RawMessage) (interface{}, error) {
	var a mergeMaskPolygonsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return toMergeToolResult(merge.MergeMaskPolygons(toPolygons(a.Polygons))), nil
}

type mergeAnnotationsArgs struct {
	Annotations []struct {
		ID           int         `json:"id"`
		CategoryID   int         `json:"category_id"`
		Segmentation [][]float64 `json:"segmentation"`
	} `json:"annotations"`
}

func (s *Server) handleMergeAnnotations(args json.RawMessage) (interface{}, error) {
	var a mergeAnnotationsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	anns := make([]merge.Annotation, len(a.Annotations))
	for i, in := range a.Annotations {
		anns[i] = merge.Annotation{
			ID:           in.ID,
			CategoryID:   in.CategoryID,
			Segmentation: toPolygons(in.Segmentation),
		}
	}
	return toMergeToolResult(merge.MergeAnnotations(anns)), nil
}

// === Geometry Query Handlers ===

type polygonAreaArgs struct {
	Polygon []float64 `json:"polygon"`
}

// PolygonAreaResult reports the shoelace area of a single polygon.
type PolygonAreaResult struct {
	Area float64 `json:"area"`
}

func (s *Server) handlePolygonArea(args json.RawMessage) (interface{}, error) {
	var a polygonAreaArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	poly := geometry.FromFlat(a.Polygon)
	if !poly.Valid() {
		return nil, fmt.Errorf("polygon needs at least 3 vertices, got %d coordinate values", len(a.Polygon))
	}
	return &PolygonAreaResult{Area: poly.Area()}, nil
}

type polygonBBoxArgs struct {
	Polygons [][]float64 `json:"polygons"`
}

// PolygonBBoxResult carries a bounding box in both corner form and COCO
// [x, y, width, height] form.
type PolygonBBoxResult struct {
	Bounds geometry.Bounds `json:"bounds"`
	BBox   geometry.BBox   `json:"bbox"`
}

func (s *Server) handlePolygonBBox(args json.RawMessage) (interface{}, error) {
	var a polygonBBoxArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	bounds, ok := geometry.CombinedBounds(toPolygons(a.Polygons))
	if !ok {
		return nil, fmt.Errorf("no valid polygon among %d inputs", len(a.Polygons))
	}
	return &PolygonBBoxResult{Bounds: bounds, BBox: bounds.BBox()}, nil
}

type polygonsOverlapArgs struct {
	PolygonA []float64 `json:"polygon_a"`
	PolygonB []float64 `json:"polygon_b"`
}

// PolygonsOverlapResult reports whether two polygons overlap.
type PolygonsOverlapResult struct {
	Overlap bool `json:"overlap"`
}

func (s *Server) handlePolygonsOverlap(args json.RawMessage) (interface{}, error) {
	var a polygonsOverlapArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	pa := geometry.FromFlat(a.PolygonA)
	pb := geometry.FromFlat(a.PolygonB)
	if !pa.Valid() || !pb.Valid() {
		return nil, fmt.Errorf("both polygons need at least 3 vertices")
	}
	return &PolygonsOverlapResult{Overlap: merge.PolygonsOverlap(pa, pb)}, nil
}

// === Diagnostics Handlers ===

type mergePreviewArgs struct {
	Polygons     [][]float64 `json:"polygons"`
	Scale        int         `json:"scale"`
	MaxDimension int         `json:"max_dimension"`
}

func (s *Server) handleMergePreview(args json.RawMessage) (interface{}, error) {
	var a mergePreviewArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1
	}
	return render.MaskPreview(toPolygons(a.Polygons), a.Scale, a.MaxDimension)
}
