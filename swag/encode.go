package swag

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Record is implemented by every Swagger object in this package.
type Record interface {
	// Validate checks the record and every record nested in it.
	Validate() error
	// ToDict returns the flattened Swagger form of the record.
	ToDict() *Map
}

// ToJSON encodes the flattened record as compact JSON.
func ToJSON(r Record) ([]byte, error) {
	p, err := Plain(r)
	if err != nil {
		return nil, err
	}
	return json.Marshal(p)
}

// ToYAML encodes the flattened record as block-style YAML with two-space
// indentation. Integer keys are written as strings, exactly as they would
// appear after a JSON round trip.
func ToYAML(r Record) ([]byte, error) {
	p, err := Plain(r)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// create validates r and returns it; shared by the New* constructors.
func create[R Record](r R) (R, error) {
	if err := r.Validate(); err != nil {
		var zero R
		return zero, err
	}
	return r, nil
}
