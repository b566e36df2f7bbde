package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"
)

// DialectURI is the schema dialect every generated document declares.
const DialectURI = "http://json-schema.org/draft-07/schema#"

// InternalKeyPrefix marks keys that carry toolkit-internal metadata. The
// normalizer removes them at every depth; they never reach an artifact.
const InternalKeyPrefix = "x-internal-"

// NormalizeOptions carries the identity fields stamped onto a document and
// the fallbacks used when the definition sets no title or description.
type NormalizeOptions struct {
	ID          string
	Title       string
	Description string
}

// DefinitionTree converts a schema definition into the generic tree form the
// normalizer and writer operate on.
func DefinitionTree(definition *jsonschema.Schema) (map[string]any, error) {
	if definition == nil {
		return nil, fmt.Errorf("schema definition is required")
	}
	data, err := json.Marshal(definition)
	if err != nil {
		return nil, fmt.Errorf("encode schema definition: %w", err)
	}
	var tree map[string]any
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("decode schema definition: %w", err)
	}
	return tree, nil
}

// Normalize returns a deep copy of tree with the dialect and $id stamped on,
// root title/description filled from opts when absent, and internal marker
// keys stripped at every depth. The input tree is never mutated.
func Normalize(tree any, opts NormalizeOptions) (map[string]any, error) {
	root, ok := tree.(map[string]any)
	if !ok || root == nil {
		return nil, fmt.Errorf("schema root must be an object, got %s", actualType(tree))
	}

	normalized, ok := sanitizeValue(root).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("schema root must be an object, got %s", actualType(tree))
	}

	normalized["$schema"] = DialectURI
	if opts.ID != "" {
		normalized["$id"] = opts.ID
	}
	if _, present := normalized["title"]; !present && opts.Title != "" {
		normalized["title"] = opts.Title
	}
	if _, present := normalized["description"]; !present && opts.Description != "" {
		normalized["description"] = opts.Description
	}
	return normalized, nil
}

// sanitizeValue copies the tree, dropping internal marker keys from objects
// wherever they appear, including inside arrays. Builder-stamped $schema and
// $id keys are dropped too: the dialect belongs at the root only, and both
// are re-stamped there from NormalizeOptions.
func sanitizeValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, item := range typed {
			if key == "$schema" || key == "$id" || strings.HasPrefix(key, InternalKeyPrefix) {
				continue
			}
			out[key] = sanitizeValue(item)
		}
		return out
	case []any:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = sanitizeValue(item)
		}
		return out
	default:
		return typed
	}
}
