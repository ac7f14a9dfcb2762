package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": description,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty("Absolute path to the image file"),
				},
				"required": []string{"path"},
			},
		},
		{
			Name: "image_crop_box",
			Description: "Crop a bounding box from an image and save it next to the input with a '_cropped' suffix " +
				"(photo.png -> photo_cropped.png). The box is clamped to the image; a box entirely outside the image is an error.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty("Absolute path to the image file"),
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "Left edge X coordinate (0-based)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Top edge Y coordinate (0-based)",
					},
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Box width in pixels",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Box height in pixels",
					},
				},
				"required": []string{"path", "x", "y", "width", "height"},
			},
		},
		{
			Name:        "image_crop_quadrant",
			Description: "Crop a named region of an image and save it with a '_cropped' suffix.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty("Absolute path to the image file"),
					"region": map[string]interface{}{
						"type":        "string",
						"description": "Region to crop",
						"enum": []string{
							"top-left", "top-right", "bottom-left", "bottom-right",
							"top-half", "bottom-half", "left-half", "right-half", "center",
						},
					},
				},
				"required": []string{"path", "region"},
			},
		},
		{
			Name: "image_compose_grid",
			Description: "Arrange exactly four images in a 2x2 grid, each stretched to the cell size, with a caption " +
				"beneath each one, and save the composite. Cells fill top-left, top-right, bottom-left, bottom-right.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"paths": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"minItems":    4,
						"maxItems":    4,
						"description": "Four absolute image paths in cell order",
					},
					"captions": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"minItems":    4,
						"maxItems":    4,
						"description": "One caption per image, in the same order",
					},
					"output_path": pathProperty("Where to write the composite; the extension selects the format (.png, .jpg)"),
				},
				"required": []string{"paths", "captions", "output_path"},
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
