package generate

import (
	"encoding/json"
	"strings"
)

// stripFences removes a markdown code fence wrapper if the model added one
// despite instructions not to.
func stripFences(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "```json") {
		trimmed = strings.TrimPrefix(trimmed, "```json")
	} else if strings.HasPrefix(trimmed, "```") {
		trimmed = strings.TrimPrefix(trimmed, "```")
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}

// extractObject returns the substring from the first '{' to the last '}'.
// Grounded responses surround their JSON with prose, so decoding the whole
// text would fail.
func extractObject(raw string) (string, bool) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end < start {
		return "", false
	}
	return raw[start : end+1], true
}

// decodeInto unmarshals a model response, stripping fence wrappers first.
func decodeInto(raw string, v any) error {
	cleaned := stripFences(raw)
	if err := json.Unmarshal([]byte(cleaned), v); err != nil {
		return &MalformedError{Raw: raw, Err: err}
	}
	return nil
}
