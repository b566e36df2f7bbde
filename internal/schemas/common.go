package schemas

import (
	"fmt"
	"strings"
	"sync"

	"github.com/invopop/jsonschema"
)

type schemaProvider func() *jsonschema.Schema

// Document describes one generated schema artifact: the definition provider
// plus the identity fields stamped onto the normalized output.
type Document struct {
	Name        string
	FileName    string
	Title       string
	Description string
	ID          string
	Provider    schemaProvider
}

var (
	registry = map[string]Document{
		"settings": {
			Name:        "settings",
			FileName:    "settings.schema.json",
			Title:       "Loom settings",
			Description: "User-level settings for the loom agent.",
			ID:          SettingsSchemaID,
			Provider:    SettingsSchema,
		},
		"models": {
			Name:        "models",
			FileName:    "models.schema.json",
			Title:       "Loom model registry",
			Description: "Custom providers and models for the loom agent.",
			ID:          ModelsSchemaID,
			Provider:    ModelsSchema,
		},
		"auth": {
			Name:        "auth",
			FileName:    "auth.schema.json",
			Title:       "Loom credentials",
			Description: "Stored credentials keyed by profile name.",
			ID:          AuthSchemaID,
			Provider:    AuthSchema,
		},
	}
	registryMu sync.RWMutex
	cache      = map[string]*jsonschema.Schema{}
	cacheMu    sync.RWMutex
)

// DocumentNames returns the generation order for the built-in documents.
func DocumentNames() []string {
	return []string{"settings", "models", "auth"}
}

func DocumentFor(name string) (Document, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Document{}, fmt.Errorf("document name is required for lookup")
	}

	registryMu.RLock()
	document, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return Document{}, fmt.Errorf("unknown schema document %q", name)
	}
	return document, nil
}

func SchemaFor(name string) (*jsonschema.Schema, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, fmt.Errorf("document name is required for schema lookup")
	}

	cacheMu.RLock()
	if schema, ok := cache[name]; ok {
		cacheMu.RUnlock()
		return schema, nil
	}
	cacheMu.RUnlock()

	registryMu.RLock()
	document, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown schema document %q", name)
	}

	schema := document.Provider()
	cacheMu.Lock()
	cache[name] = schema
	cacheMu.Unlock()
	return schema, nil
}

func RegisterDocument(document Document) error {
	name := strings.ToLower(strings.TrimSpace(document.Name))
	if name == "" {
		return fmt.Errorf("document name is required for registration")
	}
	if document.FileName == "" {
		return fmt.Errorf("document file name is required")
	}
	if document.Provider == nil {
		return fmt.Errorf("schema provider is required")
	}
	document.Name = name

	registryMu.Lock()
	registry[name] = document
	registryMu.Unlock()

	cacheMu.Lock()
	delete(cache, name)
	cacheMu.Unlock()
	return nil
}

func ClearSchemaCache() {
	cacheMu.Lock()
	cache = map[string]*jsonschema.Schema{}
	cacheMu.Unlock()
}
