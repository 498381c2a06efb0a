package server

import (
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ironsheep/image-resizer/internal/imaging"
)

// createTestImageFile writes a solid PNG into a temp dir and returns its path.
func createTestImageFile(t *testing.T, width, height int, c color.Color) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	path := filepath.Join(t.TempDir(), "input.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return path
}

func callTool(t *testing.T, s *Server, name string, args interface{}) *MCPResponse {
	t.Helper()

	paramsJSON, err := json.Marshal(map[string]interface{}{
		"name":      name,
		"arguments": args,
	})
	if err != nil {
		t.Fatalf("failed to marshal params: %v", err)
	}

	resp := s.handleRequest(&MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  paramsJSON,
	})
	if resp == nil {
		t.Fatal("handleRequest returned nil")
	}
	return resp
}

// toolText extracts the JSON text payload of a successful tool response.
func toolText(t *testing.T, resp *MCPResponse) string {
	t.Helper()

	if resp.Error != nil {
		t.Fatalf("Unexpected error: %+v", resp.Error)
	}
	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}
	content, ok := result["content"].([]map[string]interface{})
	if !ok || len(content) != 1 {
		t.Fatalf("unexpected content: %v", result["content"])
	}
	return content[0]["text"].(string)
}

func TestHandleToolsCall_ImageLoad(t *testing.T) {
	s := New(nil, nil, "test")
	imgPath := createTestImageFile(t, 100, 80, color.RGBA{255, 0, 0, 255})

	var info imaging.ImageInfo
	text := toolText(t, callTool(t, s, "image_load", map[string]interface{}{"path": imgPath}))
	if err := json.Unmarshal([]byte(text), &info); err != nil {
		t.Fatalf("Failed to parse result: %v", err)
	}

	if info.Width != 100 || info.Height != 80 {
		t.Errorf("dimensions: got %dx%d, want 100x80", info.Width, info.Height)
	}
	if info.Format != "png" {
		t.Errorf("Format: got %s, want png", info.Format)
	}
}

func TestHandleToolsCall_ImageDimensions(t *testing.T) {
	s := New(nil, nil, "test")
	imgPath := createTestImageFile(t, 64, 32, color.White)

	var dims imaging.DimensionsResult
	text := toolText(t, callTool(t, s, "image_dimensions", map[string]interface{}{"path": imgPath}))
	if err := json.Unmarshal([]byte(text), &dims); err != nil {
		t.Fatalf("Failed to parse result: %v", err)
	}
	if dims.Width != 64 || dims.Height != 32 {
		t.Errorf("dimensions: got %dx%d, want 64x32", dims.Width, dims.Height)
	}
}

func TestHandleToolsCall_ImageTransform(t *testing.T) {
	s := New(nil, nil, "test")
	imgPath := createTestImageFile(t, 80, 60, color.RGBA{0, 0, 255, 255})
	outPath := filepath.Join(t.TempDir(), "out.png")

	args := map[string]interface{}{
		"input":  imgPath,
		"output": outPath,
		"crop":   map[string]int{"width": 40, "height": 30, "x": 10, "y": 5},
		"resize": map[string]int{"width": 20, "height": 15},
		"blur":   2,
		"format": "png",
	}

	var result TransformResult
	text := toolText(t, callTool(t, s, "image_transform", args))
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		t.Fatalf("Failed to parse result: %v", err)
	}

	if result.Width != 20 || result.Height != 15 {
		t.Errorf("result size: got %dx%d, want 20x15", result.Width, result.Height)
	}
	if result.Format != "PNG" {
		t.Errorf("Format: got %s, want PNG", result.Format)
	}
	if result.Quality != 100 {
		t.Errorf("Quality: got %d, want default 100", result.Quality)
	}
	want := []string{"blur", "crop", "resize"}
	if len(result.Applied) != len(want) {
		t.Fatalf("Applied: got %v, want %v", result.Applied, want)
	}
	for i, stage := range result.Applied {
		if string(stage) != want[i] {
			t.Errorf("Applied[%d]: got %s, want %s", i, stage, want[i])
		}
	}

	written, err := imaging.Load(outPath)
	if err != nil {
		t.Fatalf("output not readable: %v", err)
	}
	if b := written.Bounds(); b.Dx() != 20 || b.Dy() != 15 {
		t.Errorf("written size: got %dx%d, want 20x15", b.Dx(), b.Dy())
	}
}

func TestHandleToolsCall_ImageTransformErrors(t *testing.T) {
	s := New(nil, nil, "test")
	imgPath := createTestImageFile(t, 50, 50, color.White)
	dir := t.TempDir()

	tests := []struct {
		name     string
		args     map[string]interface{}
		wantCode int
	}{
		{
			"invalid quality",
			map[string]interface{}{"input": imgPath, "output": filepath.Join(dir, "a.jpg"), "quality": 101},
			-32602,
		},
		{
			"unsupported format",
			map[string]interface{}{"input": imgPath, "output": filepath.Join(dir, "b.gif"), "format": "GIF"},
			-32602,
		},
		{
			"crop out of bounds",
			map[string]interface{}{
				"input":  imgPath,
				"output": filepath.Join(dir, "c.jpg"),
				"crop":   map[string]int{"width": 40, "height": 40, "x": 20, "y": 0},
			},
			-32000,
		},
		{
			"missing output",
			map[string]interface{}{"input": imgPath},
			-32000,
		},
		{
			"missing input file",
			map[string]interface{}{"input": filepath.Join(dir, "nope.png"), "output": filepath.Join(dir, "d.jpg")},
			-32000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := callTool(t, s, "image_transform", tt.args)
			if resp.Error == nil {
				t.Fatal("Expected error response")
			}
			if resp.Error.Code != tt.wantCode {
				t.Errorf("Error code: got %d, want %d", resp.Error.Code, tt.wantCode)
			}
		})
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("failed transforms left %d files behind", len(entries))
	}
}

func TestHandleToolsCall_UnknownTool(t *testing.T) {
	s := New(nil, nil, "test")
	resp := callTool(t, s, "image_ocr_full", map[string]interface{}{})

	if resp.Error == nil {
		t.Fatal("Expected error for unknown tool")
	}
	if resp.Error.Code != -32000 {
		t.Errorf("Error code: got %d, want -32000", resp.Error.Code)
	}
}

func TestHandleToolsCall_InvalidParams(t *testing.T) {
	s := New(nil, nil, "test")
	resp := s.handleRequest(&MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  json.RawMessage(`"not an object"`),
	})

	if resp.Error == nil || resp.Error.Code != -32602 {
		t.Errorf("expected -32602, got %+v", resp.Error)
	}
}

func TestHandleToolsCall_SeesRewrittenInput(t *testing.T) {
	s := New(nil, nil, "test")
	imgPath := createTestImageFile(t, 64, 32, color.White)

	var dims imaging.DimensionsResult
	text := toolText(t, callTool(t, s, "image_dimensions", map[string]interface{}{"path": imgPath}))
	if err := json.Unmarshal([]byte(text), &dims); err != nil {
		t.Fatalf("Failed to parse result: %v", err)
	}

	// Overwrite the input in place with a different size.
	img := image.NewRGBA(image.Rect(0, 0, 10, 20))
	f, err := os.Create(imgPath)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()
	later := time.Now().Add(time.Hour)
	if err := os.Chtimes(imgPath, later, later); err != nil {
		t.Fatal(err)
	}

	outPath := filepath.Join(t.TempDir(), "out.png")
	var result TransformResult
	text = toolText(t, callTool(t, s, "image_transform", map[string]interface{}{
		"input":  imgPath,
		"output": outPath,
		"format": "PNG",
	}))
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		t.Fatalf("Failed to parse result: %v", err)
	}
	if result.Width != 10 || result.Height != 20 {
		t.Errorf("transform used a stale input: got %dx%d, want 10x20", result.Width, result.Height)
	}
}
