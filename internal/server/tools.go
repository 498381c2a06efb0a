package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathSchema(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": description,
	}
}

func nonNegativeInt(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"minimum":     0,
		"description": description,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format, alpha channel presence and file size.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathSchema("Absolute path to the image file"),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathSchema("Absolute path to the image file"),
				},
				"required": []string{"path"},
			},
		},
		{
			Name: "image_transform",
			Description: "Blur, crop and resize an image (always in that order) and write the result as JPEG or PNG. " +
				"Each operation is optional. Fails without writing anything if a parameter is invalid or the crop " +
				"does not fit inside the image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"input":  pathSchema("Absolute path to the source image"),
					"output": pathSchema("Absolute path of the file to write"),
					"resize": map[string]interface{}{
						"type":        "object",
						"description": "Exact output size in pixels; aspect ratio is not preserved",
						"properties": map[string]interface{}{
							"width":  nonNegativeInt("Target width"),
							"height": nonNegativeInt("Target height"),
						},
						"required": []string{"width", "height"},
					},
					"crop": map[string]interface{}{
						"type":        "object",
						"description": "Rectangle to keep, applied after blur and before resize",
						"properties": map[string]interface{}{
							"width":  nonNegativeInt("Region width"),
							"height": nonNegativeInt("Region height"),
							"x":      nonNegativeInt("Left edge X coordinate (0-based)"),
							"y":      nonNegativeInt("Top edge Y coordinate (0-based)"),
						},
						"required": []string{"width", "height", "x", "y"},
					},
					"blur": map[string]interface{}{
						"type":        "integer",
						"minimum":     0,
						"description": "Gaussian blur radius in pixels. Default 0 (no blur)",
						"default":     0,
					},
					"quality": map[string]interface{}{
						"type":        "integer",
						"minimum":     0,
						"maximum":     100,
						"description": "Encode quality (0-100). Default 100",
						"default":     100,
					},
					"format": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"JPEG", "PNG"},
						"description": "Output format, case-insensitive. Default JPEG",
						"default":     "JPEG",
					},
				},
				"required": []string{"input", "output"},
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
