package schemas

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	invopop "github.com/invopop/jsonschema"
	validator "github.com/santhosh-tekuri/jsonschema/v6"

	"loomschema/internal/schema"
)

// documentTree runs a document through the full generate pipeline short of
// the writer and returns the normalized tree.
func documentTree(t *testing.T, name string) map[string]any {
	t.Helper()
	document, err := DocumentFor(name)
	if err != nil {
		t.Fatalf("document for %q: %v", name, err)
	}
	definition, err := SchemaFor(name)
	if err != nil {
		t.Fatalf("schema for %q: %v", name, err)
	}
	tree, err := schema.DefinitionTree(definition)
	if err != nil {
		t.Fatalf("definition tree for %q: %v", name, err)
	}
	normalized, err := schema.Normalize(tree, schema.NormalizeOptions{
		ID:          document.ID,
		Title:       document.Title,
		Description: document.Description,
	})
	if err != nil {
		t.Fatalf("normalize %q: %v", name, err)
	}
	return normalized
}

// compileDocument compiles the normalized document with a draft-07 validator.
func compileDocument(t *testing.T, name string) *validator.Schema {
	t.Helper()
	document, err := DocumentFor(name)
	if err != nil {
		t.Fatalf("document for %q: %v", name, err)
	}
	data, err := json.Marshal(documentTree(t, name))
	if err != nil {
		t.Fatalf("marshal %q: %v", name, err)
	}
	doc, err := validator.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode %q: %v", name, err)
	}
	compiler := validator.NewCompiler()
	if err := compiler.AddResource(document.ID, doc); err != nil {
		t.Fatalf("add resource %q: %v", name, err)
	}
	compiled, err := compiler.Compile(document.ID)
	if err != nil {
		t.Fatalf("compile %q: %v", name, err)
	}
	return compiled
}

func validateAgainst(t *testing.T, compiled *validator.Schema, source string) error {
	t.Helper()
	instance, err := validator.UnmarshalJSON(strings.NewReader(source))
	if err != nil {
		t.Fatalf("decode instance: %v", err)
	}
	return compiled.Validate(instance)
}

func childObject(t *testing.T, tree map[string]any, keys ...string) map[string]any {
	t.Helper()
	current := tree
	for _, key := range keys {
		next, ok := current[key].(map[string]any)
		if !ok {
			t.Fatalf("expected object at %q, got %#v", key, current[key])
		}
		current = next
	}
	return current
}

func TestDocumentNamesOrder(t *testing.T) {
	names := DocumentNames()
	want := []string{"settings", "models", "auth"}
	if len(names) != len(want) {
		t.Fatalf("expected %d documents, got %d", len(want), len(names))
	}
	for i, name := range want {
		if names[i] != name {
			t.Fatalf("expected %q at position %d, got %q", name, i, names[i])
		}
	}
}

func TestDocumentForUnknownName(t *testing.T) {
	if _, err := DocumentFor("telemetry"); err == nil {
		t.Fatal("expected error for unknown document")
	}
	if _, err := DocumentFor(""); err == nil {
		t.Fatal("expected error for empty name")
	}
}

func TestSchemaForCachesProvider(t *testing.T) {
	calls := 0
	document := Document{
		Name:     "scratch",
		FileName: "scratch.schema.json",
		ID:       "https://example.invalid/scratch.schema.json",
		Provider: func() *invopop.Schema {
			calls++
			return &invopop.Schema{Type: "object"}
		},
	}
	if err := RegisterDocument(document); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := SchemaFor("scratch"); err != nil {
		t.Fatalf("first lookup: %v", err)
	}
	if _, err := SchemaFor("scratch"); err != nil {
		t.Fatalf("second lookup: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected cached provider call, got %d calls", calls)
	}

	// Re-registration must invalidate the cached schema.
	if err := RegisterDocument(document); err != nil {
		t.Fatalf("re-register: %v", err)
	}
	if _, err := SchemaFor("scratch"); err != nil {
		t.Fatalf("post-register lookup: %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected cache invalidation on re-register, got %d calls", calls)
	}

	ClearSchemaCache()
	if _, err := SchemaFor("scratch"); err != nil {
		t.Fatalf("post-clear lookup: %v", err)
	}
	if calls != 3 {
		t.Fatalf("expected cache cleared, got %d calls", calls)
	}
}

func TestRegisterDocumentValidation(t *testing.T) {
	provider := func() *invopop.Schema { return &invopop.Schema{Type: "object"} }

	if err := RegisterDocument(Document{FileName: "x.schema.json", Provider: provider}); err == nil {
		t.Fatal("expected error for missing name")
	}
	if err := RegisterDocument(Document{Name: "x", Provider: provider}); err == nil {
		t.Fatal("expected error for missing file name")
	}
	if err := RegisterDocument(Document{Name: "x", FileName: "x.schema.json"}); err == nil {
		t.Fatal("expected error for missing provider")
	}
}
