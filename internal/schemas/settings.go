package schemas

import "github.com/invopop/jsonschema"

const SettingsSchemaID = "https://raw.githubusercontent.com/loomagent/loomschema/main/schemas/settings.schema.json"

// Settings defines the shape of the user settings document. Every field is
// optional; absent fields fall back to built-in defaults at load time.
type Settings struct {
	// Provider used when a session does not name one.
	DefaultProvider *string `json:"defaultProvider,omitempty"`
	// Model used when a session does not name one.
	DefaultModel *string `json:"defaultModel,omitempty"`
	// Restricts the model picker to the listed model IDs.
	EnabledModels []string            `json:"enabledModels,omitempty"`
	ThinkingLevel *string             `json:"thinkingLevel,omitempty" jsonschema:"enum=off,enum=minimal,enum=low,enum=medium,enum=high"`
	Theme         *string             `json:"theme,omitempty"`
	ShellPath     *string             `json:"shellPath,omitempty"`
	Compaction    *CompactionSettings `json:"compaction,omitempty"`
	Retry         *RetrySettings      `json:"retry,omitempty"`
	Images        *ImageSettings      `json:"images,omitempty"`
}

// CompactionSettings controls automatic context compaction.
type CompactionSettings struct {
	Enabled *bool `json:"enabled,omitempty"`
	// Tokens held back from the context window before compaction triggers.
	ReserveTokens *float64 `json:"reserveTokens,omitempty" jsonschema:"minimum=0"`
	// Tokens of recent conversation kept verbatim after compaction.
	KeepRecentTokens *float64 `json:"keepRecentTokens,omitempty" jsonschema:"minimum=0"`
}

// RetrySettings controls automatic retries of failed provider requests.
type RetrySettings struct {
	Enabled     *bool    `json:"enabled,omitempty"`
	MaxAttempts *float64 `json:"maxAttempts,omitempty" jsonschema:"minimum=0"`
	BaseDelayMs *float64 `json:"baseDelayMs,omitempty" jsonschema:"minimum=0"`
}

// ImageSettings controls attachment handling for image input.
type ImageSettings struct {
	Enabled *bool `json:"enabled,omitempty"`
	// Longest edge in pixels; larger images are scaled down before upload.
	MaxDimension *float64 `json:"maxDimension,omitempty" jsonschema:"minimum=0"`
}

func SettingsSchema() *jsonschema.Schema {
	return GenerateSchema(Settings{})
}
