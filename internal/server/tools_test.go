package server

import (
	"encoding/json"
	"testing"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	expectedTools := []string{
		"image_load",
		"image_dimensions",
		"image_transform",
	}

	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		toolMap[tool.Name] = tool
	}

	for _, name := range expectedTools {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}
	if len(tools) != len(expectedTools) {
		t.Errorf("got %d tools, want %d", len(tools), len(expectedTools))
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}
			if tool.InputSchema["type"] != "object" {
				t.Errorf("InputSchema.type: got %v, want object", tool.InputSchema["type"])
			}
			if _, ok := tool.InputSchema["properties"].(map[string]interface{}); !ok {
				t.Error("InputSchema.properties should be a map")
			}
			required, ok := tool.InputSchema["required"].([]string)
			if !ok || len(required) == 0 {
				t.Error("InputSchema.required should list at least one property")
			}
		})
	}
}

func TestToolDefinitions_TransformDefaults(t *testing.T) {
	var transformTool *Tool
	for _, tool := range GetToolDefinitions() {
		if tool.Name == "image_transform" {
			tool := tool
			transformTool = &tool
		}
	}
	if transformTool == nil {
		t.Fatal("image_transform not defined")
	}

	props := transformTool.InputSchema["properties"].(map[string]interface{})
	quality := props["quality"].(map[string]interface{})
	if quality["default"] != 100 || quality["maximum"] != 100 {
		t.Errorf("quality schema: got %v", quality)
	}
	format := props["format"].(map[string]interface{})
	if format["default"] != "JPEG" {
		t.Errorf("format default: got %v, want JPEG", format["default"])
	}
	if _, ok := props["crop"].(map[string]interface{})["properties"].(map[string]interface{})["x"]; !ok {
		t.Error("crop schema should define x")
	}
}

func TestToolDefinitions_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(GetToolDefinitions())
	if err != nil {
		t.Fatalf("Failed to marshal tool definitions: %v", err)
	}

	var decoded []map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal tool definitions: %v", err)
	}
	for _, tool := range decoded {
		if _, ok := tool["inputSchema"]; !ok {
			t.Errorf("tool %v missing inputSchema", tool["name"])
		}
	}
}
