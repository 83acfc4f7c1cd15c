package mcp

import (
	"encoding/json"
	"strings"
)

// StructuredResult pulls a JSON value out of a tool result. Servers
// that support structured output put it in structuredContent; older
// ones serialize JSON into a text block. Returns false when neither
// yields a parseable value.
func StructuredResult(result *ToolResult) (any, bool) {
	if result == nil {
		return nil, false
	}
	if len(result.StructuredContent) > 0 {
		var v any
		if err := json.Unmarshal(result.StructuredContent, &v); err == nil {
			return v, true
		}
	}
	for _, block := range result.Content {
		if block.Type != "text" {
			continue
		}
		text := strings.TrimSpace(block.Text)
		if !strings.HasPrefix(text, "{") && !strings.HasPrefix(text, "[") {
			continue
		}
		var v any
		if err := json.Unmarshal([]byte(text), &v); err == nil {
			return v, true
		}
	}
	return nil, false
}

// Text concatenates the text blocks of a tool result.
func Text(result *ToolResult) string {
	if result == nil {
		return ""
	}
	var parts []string
	for _, block := range result.Content {
		if block.Type == "text" && block.Text != "" {
			parts = append(parts, block.Text)
		}
	}
	return strings.Join(parts, "\n")
}
