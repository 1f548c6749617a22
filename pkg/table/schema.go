package table

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrMissingField is returned when a form payload lacks a required field.
var ErrMissingField = errors.New("missing required field")

// FormSchema returns a JSON Schema that only checks presence: every
// required field must be present and not null, "" or [].
func FormSchema(fields []FormField) map[string]any {
	required := make([]string, 0, len(fields))
	props := make(map[string]any, len(fields))
	for _, f := range fields {
		if !f.Required {
			continue
		}
		required = append(required, f.Field)
		props[f.Field] = map[string]any{
			"not": map[string]any{"enum": []any{nil, "", []any{}}},
		}
	}
	return map[string]any{
		"$schema":    "https://json-schema.org/draft/2020-12/schema",
		"type":       "object",
		"required":   required,
		"properties": props,
	}
}

// ValidateForm checks payload against the presence schema of fields.
func ValidateForm(fields []FormField, payload json.RawMessage) error {
	raw, err := json.Marshal(FormSchema(fields))
	if err != nil {
		return fmt.Errorf("failed to marshal form schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("form.json", bytes.NewReader(raw)); err != nil {
		return fmt.Errorf("failed to add form schema: %w", err)
	}
	schema, err := compiler.Compile("form.json")
	if err != nil {
		return fmt.Errorf("failed to compile form schema: %w", err)
	}

	var doc any
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	if err := json.Unmarshal(payload, &doc); err != nil {
		return fmt.Errorf("invalid form payload: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			if names := missingFields(verr, fields); len(names) > 0 {
				return fmt.Errorf("%w: %s", ErrMissingField, strings.Join(names, ", "))
			}
			return fmt.Errorf("invalid form payload: %w", err)
		}
		return err
	}
	return nil
}

// missingFields names the required fields a validation error points at.
func missingFields(verr *jsonschema.ValidationError, fields []FormField) []string {
	seen := map[string]bool{}
	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			if loc := strings.TrimPrefix(e.InstanceLocation, "/"); loc != "" {
				seen[loc] = true
				return
			}
			// "required" failures are reported at the object root and
			// quote the missing names in the message.
			for _, f := range fields {
				if f.Required && strings.Contains(e.Message, "'"+f.Field+"'") {
					seen[f.Field] = true
				}
			}
			return
		}
		for _, c := range e.Causes {
			walk(c)
		}
	}
	walk(verr)

	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
