package schemas

import "github.com/invopop/jsonschema"

const AuthSchemaID = "https://raw.githubusercontent.com/loomagent/loomschema/main/schemas/auth.schema.json"

func apiKeyCredentialSchema() *jsonschema.Schema {
	properties := jsonschema.NewProperties()
	properties.Set("type", &jsonschema.Schema{Type: "string", Enum: []any{"api_key"}})
	properties.Set("key", &jsonschema.Schema{Type: "string"})
	return &jsonschema.Schema{
		Type:                 "object",
		Properties:           properties,
		Required:             []string{"type", "key"},
		AdditionalProperties: jsonschema.FalseSchema,
	}
}

func oauthCredentialSchema() *jsonschema.Schema {
	properties := jsonschema.NewProperties()
	properties.Set("type", &jsonschema.Schema{Type: "string", Enum: []any{"oauth"}})
	properties.Set("access", &jsonschema.Schema{Type: "string"})
	properties.Set("refresh", &jsonschema.Schema{Type: "string"})
	properties.Set("expires", &jsonschema.Schema{Type: "number"})
	// OAuth entries carry provider-specific extras, so the record stays open.
	return &jsonschema.Schema{
		Type:       "object",
		Properties: properties,
		Required:   []string{"type", "access", "refresh", "expires"},
	}
}

// AuthSchema describes the credential store: an open mapping from profile
// name to either an API key record or an OAuth record. Profile names are
// user-chosen, so the root intentionally has no additionalProperties: false.
func AuthSchema() *jsonschema.Schema {
	entry := &jsonschema.Schema{
		OneOf: []*jsonschema.Schema{
			apiKeyCredentialSchema(),
			oauthCredentialSchema(),
		},
	}
	return &jsonschema.Schema{
		Type:                 "object",
		AdditionalProperties: entry,
	}
}
