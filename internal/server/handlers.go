package server

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/ironsheep/figure-tools/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_crop_box").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// OutputResult describes an image a tool wrote to disk.
type OutputResult struct {
	OutputPath string `json:"output_path"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
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
		s.log.Warn("Tool failed", zap.String("tool", params.Name), zap.Error(err))
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
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "image_crop_box":
		return s.handleImageCropBox(args)
	case "image_crop_quadrant":
		return s.handleImageCropQuadrant(args)
	case "image_compose_grid":
		return s.handleImageComposeGrid(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message string, data interface{}) *MCPResponse {
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
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// describeOutput reports the dimensions of an image a tool just wrote.
func describeOutput(path string) (*OutputResult, error) {
	dims, err := imaging.GetDimensions(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read back %s: %w", path, err)
	}
	return &OutputResult{OutputPath: path, Width: dims.Width, Height: dims.Height}, nil
}

type imagePathArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}
	return imaging.GetDimensions(a.Path)
}

type imageCropBoxArgs struct {
	Path   string `json:"path"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

func (s *Server) handleImageCropBox(args json.RawMessage) (interface{}, error) {
	var a imageCropBoxArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}

	box := imaging.BoundingBox{X: a.X, Y: a.Y, Width: a.Width, Height: a.Height}
	out, err := imaging.CropFile(a.Path, box, s.save)
	if err != nil {
		return nil, err
	}
	s.log.Info("Cropped image", zap.String("input", a.Path), zap.String("output", out), zap.Stringer("box", box))
	return describeOutput(out)
}

type imageCropQuadrantArgs struct {
	Path   string `json:"path"`
	Region string `json:"region"`
}

func (s *Server) handleImageCropQuadrant(args json.RawMessage) (interface{}, error) {
	var a imageCropQuadrantArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}

	out, err := imaging.CropQuadrantFile(a.Path, a.Region, s.save)
	if err != nil {
		return nil, err
	}
	s.log.Info("Cropped image", zap.String("input", a.Path), zap.String("output", out), zap.String("region", a.Region))
	return describeOutput(out)
}

type imageComposeGridArgs struct {
	Paths      []string `json:"paths"`
	Captions   []string `json:"captions"`
	OutputPath string   `json:"output_path"`
}

func (s *Server) handleImageComposeGrid(args json.RawMessage) (interface{}, error) {
	var a imageComposeGridArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.OutputPath == "" {
		return nil, fmt.Errorf("output_path is required")
	}

	out, err := imaging.ComposeFiles(a.Paths, a.Captions, a.OutputPath, s.compose)
	if err != nil {
		return nil, err
	}
	s.log.Info("Composed grid", zap.Strings("inputs", a.Paths), zap.String("output", out))
	return describeOutput(out)
}
