// Package form serializes a UI form description to JSON and validates it
// against a schema before a translator ever puts it on the wire
// (SPEC_FULL.md §4.5 "Forms", DOMAIN STACK: "Validates a form description
// against a JSON Schema before serializing").
package form

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// descriptionSchemaJSON bounds the shape of a form description: every form
// is either a "modal"/"menu"/"custom_form" with a title, or the schema
// rejects it before it is ever serialized.
const descriptionSchemaJSON = `{
	"type": "object",
	"required": ["type", "title"],
	"properties": {
		"type": {"enum": ["modal", "menu", "custom_form"]},
		"title": {"type": "string"}
	}
}`

var schema = mustCompile(descriptionSchemaJSON)

func mustCompile(raw string) *jsonschema.Schema {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(raw))
	if err != nil {
		panic(fmt.Sprintf("form: invalid embedded schema: %v", err))
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("form_description.json", doc); err != nil {
		panic(fmt.Sprintf("form: invalid embedded schema: %v", err))
	}
	s, err := c.Compile("form_description.json")
	if err != nil {
		panic(fmt.Sprintf("form: schema did not compile: %v", err))
	}
	return s
}

// Serialize marshals a form description to JSON and validates it against
// the description schema, catching malformed forms before a translator
// reaches the wire (SPEC_FULL.md §4.5 "serializes the form description as
// JSON").
func Serialize(description any) ([]byte, error) {
	data, err := json.Marshal(description)
	if err != nil {
		return nil, fmt.Errorf("form: marshal description: %w", err)
	}

	var instance any
	if err := json.Unmarshal(data, &instance); err != nil {
		return nil, fmt.Errorf("form: decode description for validation: %w", err)
	}
	if err := schema.Validate(instance); err != nil {
		return nil, fmt.Errorf("form: description failed validation: %w", err)
	}
	return data, nil
}
