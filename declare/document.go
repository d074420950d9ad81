package declare

import (
	"encoding/json"
	"fmt"
)

// Document is a declarative option set: an alternate, data-driven way to
// populate an [argos.Args] registry.
type Document struct {
	AppName string           `json:"appName,omitempty"`
	Options []DocumentOption `json:"options"`
}

// DocumentOption describes one option declaration. Kind
// selects which [argos.Args] builder method Apply calls; the remaining
// fields mirror the corresponding [argos.SpecOption]s.
type DocumentOption struct {
	Owner      string   `json:"owner"`
	Kind       string   `json:"kind"`
	Switches   []string `json:"switches,omitempty"`
	Env        string   `json:"env,omitempty"`
	Help       string   `json:"help,omitempty"`
	Required   bool     `json:"required,omitempty"`
	Negatable  bool     `json:"negatable,omitempty"`
	Hidden     bool     `json:"hidden,omitempty"`
	Repeatable bool     `json:"repeatable,omitempty"`
	Domains    []string `json:"domains,omitempty"`
	Candidates []string `json:"candidates,omitempty"`
	Default    any      `json:"default,omitempty"`
	Arity      int      `json:"arity,omitempty"`
}

// Load parses and schema-validates data, returning the decoded [Document].
func Load(data []byte) (*Document, error) {
	var instance any
	if err := json.Unmarshal(data, &instance); err != nil {
		return nil, fmt.Errorf("declare: %w", err)
	}

	resolved, err := resolveDocumentSchema()
	if err != nil {
		return nil, fmt.Errorf("declare: resolving schema: %w", err)
	}

	if err := resolved.Validate(instance); err != nil {
		return nil, fmt.Errorf("declare: document does not match schema: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("declare: %w", err)
	}

	return &doc, nil
}
