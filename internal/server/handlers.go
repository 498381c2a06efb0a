package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ironsheep/image-resizer/internal/imaging"
	"github.com/ironsheep/image-resizer/internal/transform"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_transform").
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
// Rejected transform parameters return code -32602; any other tool failure
// returns -32000. The error data carries the full diagnostic.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.logger.Debug("tool failed", "tool", params.Name, "error", err)
		if errors.Is(err, transform.ErrInvalidParameters) {
			return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
		}
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
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "image_transform":
		return s.handleImageTransform(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	e := &MCPError{
		Code:    code,
		Message: message,
	}
	if data != "" {
		e.Data = data
	}
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error:   e,
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

type imageTransformArgs struct {
	Input   string            `json:"input"`
	Output  string            `json:"output"`
	Resize  *transform.Size   `json:"resize"`
	Crop    *transform.Region `json:"crop"`
	Blur    int               `json:"blur"`
	Quality *int              `json:"quality"`
	Format  string            `json:"format"`
}

// TransformResult describes the file written by image_transform.
type TransformResult struct {
	Output  string            `json:"output"`
	Width   int               `json:"width"`
	Height  int               `json:"height"`
	Format  string            `json:"format"`
	Quality int               `json:"quality"`
	Applied []transform.Stage `json:"applied"`
}

func (s *Server) handleImageTransform(args json.RawMessage) (interface{}, error) {
	var a imageTransformArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if strings.TrimSpace(a.Input) == "" || strings.TrimSpace(a.Output) == "" {
		return nil, errors.New("input and output paths are required")
	}

	params := transform.Params{
		Resize:  a.Resize,
		Crop:    a.Crop,
		Blur:    a.Blur,
		Quality: transform.MaxQuality,
		Format:  a.Format,
	}
	if a.Quality != nil {
		params.Quality = *a.Quality
	}
	if params.Format == "" {
		params.Format = string(transform.FormatJPEG)
	}

	req, err := transform.Validate(params)
	if err != nil {
		return nil, err
	}

	img, err := s.cache.Load(a.Input)
	if err != nil {
		return nil, err
	}

	res, err := s.pipeline.Apply(img, req)
	if err != nil {
		return nil, err
	}

	if err := imaging.WriteFile(a.Output, res.Image, string(res.Directive.Format), res.Directive.Quality); err != nil {
		return nil, err
	}
	s.cache.Evict(a.Output)

	bounds := res.Image.Bounds()
	return &TransformResult{
		Output:  a.Output,
		Width:   bounds.Dx(),
		Height:  bounds.Dy(),
		Format:  string(res.Directive.Format),
		Quality: req.Quality(),
		Applied: res.Applied,
	}, nil
}
