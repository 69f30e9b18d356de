package vision

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildTextJSONSchema returns the JSON-Schema (draft 2020-12 subset) for the
// text extraction task as a generic map. It is embedded in the prompt and used
// locally to validate the response.
func BuildTextJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"full_name":         map[string]any{"type": []string{"string", "null"}},
			"opening_quote":     map[string]any{"type": []string{"string", "null"}},
			"death_date":        isoDateProp(),
			"funeral_date":      isoDateProp(),
			"announcement_text": map[string]any{"type": []string{"string", "null"}},
			"has_photo":         map[string]any{"type": "boolean"},
			"photo_bbox":        bboxProp(),
		},
		"required": []string{"full_name"},
	}
}

// BuildPhotoJSONSchema returns the schema for the portrait detection task.
func BuildPhotoJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"has_photo":  map[string]any{"type": "boolean"},
			"photo_bbox": bboxProp(),
		},
		"required": []string{"has_photo"},
	}
}

func isoDateProp() map[string]any {
	return map[string]any{
		"type":    []string{"string", "null"},
		"pattern": `^\d{4}-\d{2}-\d{2}$`,
	}
}

func bboxProp() map[string]any {
	return map[string]any{
		"type": []string{"object", "null"},
		"properties": map[string]any{
			"x_percent":      map[string]any{"type": "number"},
			"y_percent":      map[string]any{"type": "number"},
			"width_percent":  map[string]any{"type": "number"},
			"height_percent": map[string]any{"type": "number"},
		},
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
