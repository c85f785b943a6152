package blueprint

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/swaggyp/swag"
	kyaml "sigs.k8s.io/yaml"
)

// typeSchemas replaces the schema maps a blueprint decodes into free-form
// schema fields (items, properties, additionalProperties, allOf) with
// *swag.Schema values, so nested schemas are validated like top-level ones.
func typeSchemas(d *swag.Document) error {
	for i := range d.Definitions {
		if err := typeSchema(d.Definitions[i].Schema, fmt.Sprintf("definitions[%d].schema", i)); err != nil {
			return err
		}
	}
	for i := range d.Paths {
		for j := range d.Paths[i].Operations {
			op := &d.Paths[i].Operations[j]
			prefix := fmt.Sprintf("paths[%d].operations[%d]", i, j)
			for k := range op.Parameters {
				if err := typeSchema(op.Parameters[k].Schema, fmt.Sprintf("%s.parameters[%d].schema", prefix, k)); err != nil {
					return err
				}
			}
			for k := range op.Responses {
				if err := typeSchema(op.Responses[k].Schema, fmt.Sprintf("%s.responses[%d].schema", prefix, k)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func typeSchema(s *swag.Schema, field string) error {
	if s == nil {
		return nil
	}
	var err error
	if s.Items, err = toSchema(s.Items, field+".items"); err != nil {
		return err
	}
	if props, ok := s.Properties.(map[string]any); ok {
		typed := make(map[string]any, len(props))
		for name, v := range props {
			if typed[name], err = toSchema(v, field+".properties."+name); err != nil {
				return err
			}
		}
		s.Properties = typed
	}
	if s.AdditionalProperties, err = toSchema(s.AdditionalProperties, field+".additionalProperties"); err != nil {
		return err
	}
	for i, v := range s.AllOf {
		if s.AllOf[i], err = toSchema(v, fmt.Sprintf("%s.allOf[%d]", field, i)); err != nil {
			return err
		}
	}
	return nil
}

// toSchema strictly decodes a mapping into a schema. Other values, such as
// additionalProperties: true, are returned unchanged.
func toSchema(v any, field string) (any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return v, nil
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, &Error{Code: ParseError, Message: fmt.Sprintf("blueprint: %s: %v", field, err), Field: field, Cause: err}
	}
	var s swag.Schema
	if err := kyaml.UnmarshalStrict(raw, &s); err != nil {
		return nil, &Error{Code: ParseError, Message: fmt.Sprintf("blueprint: %s: %v", field, err), Field: field, Cause: err}
	}
	if err := typeSchema(&s, field); err != nil {
		return nil, err
	}
	return &s, nil
}
