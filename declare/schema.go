package declare

import "github.com/google/jsonschema-go/jsonschema"

// documentSchema validates the shape of a declarative option document
// before it is unmarshaled into [Document], catching authoring mistakes
// (missing owner, unknown kind) with a schema-shaped error instead of a
// confusing field-by-field JSON decode failure.
var documentSchema = &jsonschema.Schema{
	Type:     "object",
	Required: []string{"options"},
	Properties: map[string]*jsonschema.Schema{
		"appName": {Type: "string"},
		"options": {
			Type: "array",
			Items: &jsonschema.Schema{
				Type:     "object",
				Required: []string{"owner", "kind"},
				Properties: map[string]*jsonschema.Schema{
					"owner": {Type: "string", MinLength: jsonschema.Ptr(1)},
					"kind": {
						Type: "string",
						Enum: []any{
							"string", "int", "float", "bool", "enum",
							"stringList", "stringSet", "intList", "intGroup",
						},
					},
					"switches":   {Type: "array", Items: &jsonschema.Schema{Type: "string"}},
					"env":        {Type: "string"},
					"help":       {Type: "string"},
					"required":   {Type: "boolean"},
					"negatable":  {Type: "boolean"},
					"hidden":     {Type: "boolean"},
					"repeatable": {Type: "boolean"},
					"domains":    {Type: "array", Items: &jsonschema.Schema{Type: "string"}},
					"candidates": {Type: "array", Items: &jsonschema.Schema{Type: "string"}},
					"default":    {},
					"arity":      {Type: "integer", Minimum: jsonschema.Ptr(2.0)},
				},
			},
		},
	},
}

func resolveDocumentSchema() (*jsonschema.Resolved, error) {
	return documentSchema.Resolve(nil)
}
