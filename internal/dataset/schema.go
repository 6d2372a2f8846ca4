package dataset

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// itemSchemas define the per-category JSON shape of a dataset file's
// "data" entries. Files whose entries don't match are skipped at load.
var itemSchemas = map[Category]map[string]any{
	CategoryVocabulary: {
		"type": "object",
		"properties": map[string]any{
			"id":               map[string]any{"type": "string", "minLength": 1},
			"japanese":         map[string]any{"type": "string"},
			"hiragana":         map[string]any{"type": "string"},
			"simple_chinese":   map[string]any{"type": "string"},
			"full_explanation": map[string]any{"type": "string"},
		},
		"required": []any{"id", "japanese", "hiragana", "simple_chinese"},
	},
	CategoryGrammar: {
		"type": "object",
		"properties": map[string]any{
			"id":               map[string]any{"type": "string", "minLength": 1},
			"japanese":         map[string]any{"type": "string"},
			"simple_chinese":   map[string]any{"type": "string"},
			"full_explanation": map[string]any{"type": "string"},
			"examples": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"sentence": map[string]any{"type": "string"},
						"chinese":  map[string]any{"type": "string"},
					},
					"required": []any{"sentence", "chinese"},
				},
			},
		},
		"required": []any{"id", "japanese", "simple_chinese"},
	},
}

// fileSchema wraps an item schema into the full dataset file shape.
func fileSchema(cat Category) map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name":     map[string]any{"type": "string", "minLength": 1},
			"category": map[string]any{"const": string(cat)},
			"level":    map[string]any{"type": "string"},
			"data": map[string]any{
				"type":  "array",
				"items": itemSchemas[cat],
			},
		},
		"required": []any{"name", "category", "data"},
	}
}

var schemaCache sync.Map // map[Category]*jsonschema.Schema

// validateFile checks raw dataset file JSON against the schema for cat.
func validateFile(cat Category, raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := compiledSchema(cat)
	if err != nil {
		return err
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// compiledSchema returns the cached compiled schema for a category,
// compiling it on first use.
func compiledSchema(cat Category) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(cat); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The compiler wants a parsed JSON value; round-trip the map to get
	// a clean any representation.
	defBytes, err := json.Marshal(fileSchema(cat))
	if err != nil {
		return nil, fmt.Errorf("marshal %s schema: %w", cat, err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse %s schema: %w", cat, err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://dataset-%s.json", cat)
	if err := c.AddResource(url, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile %s schema: %w", cat, err)
	}

	schemaCache.Store(cat, compiled)
	return compiled, nil
}
