package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// polygonSchema describes one polygon as a flat coordinate list
// [x0, y0, x1, y1, ...]. At least three vertices (six values).
func polygonSchema(desc string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "array",
		"items":       map[string]interface{}{"type": "number"},
		"description": desc,
	}
}

// polygonListSchema describes an array of flat-coordinate polygons.
func polygonListSchema(desc string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "array",
		"items":       polygonSchema("Flat coordinate list [x0, y0, x1, y1, ...]"),
		"description": desc,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Merge Operations
		{
			Name:        "merge_mask_polygons",
			Description: "Merge a batch of mask polygons into a single result: invalid polygons (fewer than 3 vertices) are dropped, the rest are returned with their combined bounding box and total area. Polygons are NOT geometrically unioned by this tool.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"polygons": polygonListSchema("Mask polygons to merge, each as a flat coordinate list"),
				},
				"required": []string{"polygons"},
			},
		},
		{
			Name:        "merge_annotations",
			Description: "Merge overlapping annotation segmentations. Polygons from all annotations are pooled, grouped by transitive overlap, and each overlapping group is replaced by a single merged outline. Non-overlapping polygons pass through unchanged.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"annotations": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"id":          map[string]interface{}{"type": "integer", "description": "Annotation identifier"},
								"category_id": map[string]interface{}{"type": "integer", "description": "Category identifier"},
								"segmentation": polygonListSchema("Segmentation polygons for this annotation"),
							},
							"required": []string{"segmentation"},
						},
						"description": "Annotations whose segmentations should be merged",
					},
				},
				"required": []string{"annotations"},
			},
		},

		// Geometry Queries
		{
			Name:        "polygon_area",
			Description: "Compute the area of a polygon using the shoelace formula. Winding order does not matter.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"polygon": polygonSchema("Polygon as a flat coordinate list [x0, y0, x1, y1, ...]"),
				},
				"required": []string{"polygon"},
			},
		},
		{
			Name:        "polygon_bbox",
			Description: "Compute the axis-aligned bounding box of one or more polygons. Returns both corner form (min_x, min_y, max_x, max_y) and COCO form [x, y, width, height].",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"polygons": polygonListSchema("Polygons to bound"),
				},
				"required": []string{"polygons"},
			},
		},
		{
			Name:        "polygons_overlap",
			Description: "Check whether two polygons overlap. Overlap means shared vertices, containment, or crossing edges; touching at a single point counts.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"polygon_a": polygonSchema("First polygon as a flat coordinate list"),
					"polygon_b": polygonSchema("Second polygon as a flat coordinate list"),
				},
				"required": []string{"polygon_a", "polygon_b"},
			},
		},

		// Diagnostics
		{
			Name:        "merge_preview",
			Description: "Render the merge grouping as a base64-encoded PNG, one color per overlap group. Useful for visually checking which polygons will be merged together.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"polygons": polygonListSchema("Polygons to preview"),
					"scale": map[string]interface{}{
						"type":        "integer",
						"description": "Integer upscale factor for the rendered grid (default 1)",
						"default":     1,
					},
					"max_dimension": map[string]interface{}{
						"type":        "integer",
						"description": "Optional maximum output dimension in pixels. The image is downscaled to fit if it exceeds this.",
					},
				},
				"required": []string{"polygons"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
