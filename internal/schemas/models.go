package schemas

import "github.com/invopop/jsonschema"

const ModelsSchemaID = "https://raw.githubusercontent.com/loomagent/loomschema/main/schemas/models.schema.json"

// ModelInput identifies a modality a model accepts.
type ModelInput string

func (ModelInput) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "string",
		Enum: []any{"text", "image"},
	}
}

// ModelCost lists per-million-token prices in USD.
type ModelCost struct {
	Input      *float64 `json:"input,omitempty" jsonschema:"minimum=0"`
	Output     *float64 `json:"output,omitempty" jsonschema:"minimum=0"`
	CacheRead  *float64 `json:"cacheRead,omitempty" jsonschema:"minimum=0"`
	CacheWrite *float64 `json:"cacheWrite,omitempty" jsonschema:"minimum=0"`
}

type Model struct {
	ID        string       `json:"id" jsonschema:"required"`
	Name      *string      `json:"name,omitempty"`
	Reasoning *bool        `json:"reasoning,omitempty"`
	Input     []ModelInput `json:"input,omitempty"`
	Cost      *ModelCost   `json:"cost,omitempty"`
	// Total context window in tokens.
	ContextWindow *float64 `json:"contextWindow,omitempty" jsonschema:"minimum=0"`
	// Maximum output tokens per request.
	MaxTokens *float64 `json:"maxTokens,omitempty" jsonschema:"minimum=0"`
}

type Provider struct {
	Name    *string `json:"name,omitempty"`
	BaseURL *string `json:"baseUrl,omitempty"`
	API     *string `json:"api,omitempty" jsonschema:"enum=openai-completions,enum=openai-responses,enum=anthropic-messages,enum=google-generative-ai"`
	// Environment variable holding the key, or the literal key itself.
	APIKey *string `json:"apiKey,omitempty"`
	Models []Model `json:"models,omitempty"`
}

// ProviderMap keys providers by a user-chosen name, so the mapping itself
// stays open while each provider record is closed.
type ProviderMap map[string]Provider

func (ProviderMap) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:                 "object",
		AdditionalProperties: reflectNested(Provider{}),
	}
}

// ModelRegistry defines the shape of the model registry document.
type ModelRegistry struct {
	Providers ProviderMap `json:"providers,omitempty"`
}

func ModelsSchema() *jsonschema.Schema {
	return GenerateSchema(ModelRegistry{})
}
