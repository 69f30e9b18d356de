package vision

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/parte-archiv/parte-tracker/internal/entity"
)

// StripFences removes a surrounding markdown code fence (``` or ```json) if
// present. Providers frequently wrap JSON output in one even when told not to.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 && !strings.ContainsAny(s[:i], "{[") {
		// language tag on the opening fence line
		s = s[i+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// DecodeText parses a provider response for the text task. A payload without
// the full_name key is a parse failure, not a success with nulls.
func DecodeText(content string) (entity.ExtractionResult, map[string]any, []byte, error) {
	raw := []byte(StripFences(content))

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		// fall back to the unstripped content
		raw = []byte(content)
		if err2 := json.Unmarshal(raw, &m); err2 != nil {
			return entity.ExtractionResult{}, nil, raw, fmt.Errorf("decode text response: %w", err)
		}
	}
	if _, ok := m["full_name"]; !ok {
		return entity.ExtractionResult{}, nil, raw, fmt.Errorf("response missing full_name")
	}

	var res entity.ExtractionResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return entity.ExtractionResult{}, nil, raw, fmt.Errorf("decode text response: %w", err)
	}
	// bounding boxes go through unit normalization before they become typed
	res.PhotoBBox = nil
	return res, rawBox(m), raw, nil
}

// DecodePhoto parses a provider response for the portrait task. A payload
// without the has_photo key is a parse failure.
func DecodePhoto(content string) (bool, map[string]any, []byte, error) {
	raw := []byte(StripFences(content))

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		raw = []byte(content)
		if err2 := json.Unmarshal(raw, &m); err2 != nil {
			return false, nil, raw, fmt.Errorf("decode photo response: %w", err)
		}
	}
	v, ok := m["has_photo"]
	if !ok {
		return false, nil, raw, fmt.Errorf("response missing has_photo")
	}
	hasPhoto, _ := v.(bool)
	return hasPhoto, rawBox(m), raw, nil
}

func rawBox(m map[string]any) map[string]any {
	if b, ok := m["photo_bbox"].(map[string]any); ok {
		return b
	}
	return nil
}
