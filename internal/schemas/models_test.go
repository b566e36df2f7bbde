package schemas

import "testing"

func TestModelsDocumentShape(t *testing.T) {
	tree := documentTree(t, "models")

	if tree["$id"] != ModelsSchemaID {
		t.Fatalf("expected models $id, got %#v", tree["$id"])
	}
	if additional, ok := tree["additionalProperties"].(bool); !ok || additional {
		t.Fatalf("expected additionalProperties false at root, got %#v", tree["additionalProperties"])
	}

	providers := childObject(t, tree, "properties", "providers")
	if providers["type"] != "object" {
		t.Fatalf("expected providers object, got %#v", providers["type"])
	}
	// Provider names are user-chosen; the value schema sits on additionalProperties.
	provider := childObject(t, providers, "additionalProperties")
	if additional, ok := provider["additionalProperties"].(bool); !ok || additional {
		t.Fatalf("expected closed provider records, got %#v", provider["additionalProperties"])
	}
	model := childObject(t, provider, "properties", "models", "items")
	required, ok := model["required"].([]any)
	if !ok || len(required) != 1 || required[0] != "id" {
		t.Fatalf("expected model id required, got %#v", model["required"])
	}
}

func TestModelsDocumentValidation(t *testing.T) {
	compiled := compileDocument(t, "models")

	valid := `{
		"providers": {
			"local": {
				"baseUrl": "http://localhost:11434/v1",
				"api": "openai-completions",
				"models": [
					{
						"id": "llama3",
						"name": "Llama 3",
						"input": ["text"],
						"cost": {"input": 0, "output": 0},
						"contextWindow": 8192,
						"maxTokens": 4096
					}
				]
			}
		}
	}`
	if err := validateAgainst(t, compiled, valid); err != nil {
		t.Fatalf("expected valid registry document: %v", err)
	}

	if err := validateAgainst(t, compiled, `{"providers": {"local": {"models": [{"name": "no id"}]}}}`); err == nil {
		t.Fatal("expected model without id to fail")
	}
	if err := validateAgainst(t, compiled, `{"providers": {"local": {"region": "eu"}}}`); err == nil {
		t.Fatal("expected unknown provider field to fail")
	}
	if err := validateAgainst(t, compiled, `{"providers": {"local": {"api": "soap"}}}`); err == nil {
		t.Fatal("expected out-of-vocabulary api to fail")
	}
	if err := validateAgainst(t, compiled, `{"registry": {}}`); err == nil {
		t.Fatal("expected unknown root field to fail")
	}
}
