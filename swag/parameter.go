package swag

// Item describes the type of non-body parameters and of array elements.
// CollectionFormat defaults to "csv".
type Item struct {
	Type             string   `json:"type,omitempty"`
	Format           string   `json:"format,omitempty"`
	CollectionFormat string   `json:"collectionFormat,omitempty"`
	Default          any      `json:"default,omitempty"`
	Maximum          *float64 `json:"maximum,omitempty"`
	ExclusiveMaximum *bool    `json:"exclusiveMaximum,omitempty"`
	Minimum          *float64 `json:"minimum,omitempty"`
	ExclusiveMinimum *bool    `json:"exclusiveMinimum,omitempty"`
	MaxLength        *int64   `json:"maxLength,omitempty"`
	MinLength        *int64   `json:"minLength,omitempty"`
	Pattern          string   `json:"pattern,omitempty"`
	MaxItems         *int64   `json:"maxItems,omitempty"`
	MinItems         *int64   `json:"minItems,omitempty"`
	UniqueItems      *bool    `json:"uniqueItems,omitempty"`
	Enum             []any    `json:"enum,omitempty"`
	MultipleOf       *float64 `json:"multipleOf,omitempty"`
}

func NewItem(it Item) (*Item, error) { return create(&it) }

func (it Item) fields() []field {
	return []field{
		{name: "type", kind: KindString, choices: typeChoices, value: it.Type},
		{name: "format", kind: KindString, value: it.Format},
		{name: "collectionFormat", kind: KindString, choices: collectionFormats, def: "csv", value: it.CollectionFormat},
		{name: "default", kind: KindAny, value: it.Default},
		{name: "maximum", kind: KindFloat, value: it.Maximum},
		{name: "exclusiveMaximum", kind: KindBool, value: it.ExclusiveMaximum},
		{name: "minimum", kind: KindFloat, value: it.Minimum},
		{name: "exclusiveMinimum", kind: KindBool, value: it.ExclusiveMinimum},
		{name: "maxLength", kind: KindInt, value: it.MaxLength},
		{name: "minLength", kind: KindInt, value: it.MinLength},
		{name: "pattern", kind: KindString, value: it.Pattern},
		{name: "maxItems", kind: KindInt, value: it.MaxItems},
		{name: "minItems", kind: KindInt, value: it.MinItems},
		{name: "uniqueItems", kind: KindBool, value: it.UniqueItems},
		{name: "enum", kind: KindList, value: it.Enum},
		{name: "multipleOf", kind: KindFloat, value: it.MultipleOf},
	}
}

func (it Item) Validate() error { return validateFields("Item", it.fields()) }
func (it Item) ToDict() *Map    { return prune(it.fields()) }

// Parameter locations.
const (
	InQuery    = "query"
	InHeader   = "header"
	InPath     = "path"
	InFormData = "formData"
	InBody     = "body"
)

// Parameter is an operation parameter. Every location except "body" requires
// a Type; body parameters describe their payload with Schema.
type Parameter struct {
	Item
	Name            string  `json:"name,omitempty"`
	In              string  `json:"in,omitempty"`
	Description     string  `json:"description,omitempty"`
	Required        *bool   `json:"required,omitempty"`
	Items           *Item   `json:"items,omitempty"`
	AllowEmptyValue *bool   `json:"allowEmptyValue,omitempty"`
	Schema          *Schema `json:"schema,omitempty"`
}

func NewParameter(p Parameter) (*Parameter, error) { return create(&p) }

func (p Parameter) fields() []field {
	fs := []field{
		{name: "name", kind: KindString, value: p.Name},
		{name: "in", kind: KindString, required: true, choices: inChoices, value: p.In},
		{name: "description", kind: KindString, value: p.Description},
		{name: "required", kind: KindBool, value: p.Required},
		{name: "schema", kind: KindRecord, value: p.Schema},
	}
	fs = append(fs, p.Item.fields()...)
	return append(fs,
		field{name: "items", kind: KindRecord, value: p.Items},
		field{name: "allowEmptyValue", kind: KindBool, value: p.AllowEmptyValue},
	)
}

func (p Parameter) Validate() error {
	if err := validateFields("Parameter", p.fields()); err != nil {
		return err
	}
	if p.In != InBody && p.Type == "" {
		return newValidationError("Parameter", "type", TypeRequired, "type is required when in is %q", p.In)
	}
	return nil
}

// bodyOnlyOmitted lists keys Swagger does not allow next to a body schema.
var bodyOnlyOmitted = [...]string{"allowEmptyValue", "collectionFormat", "exclusiveMaximum", "exclusiveMinimum", "uniqueItems"}

func (p Parameter) ToDict() *Map {
	m := prune(p.fields())
	switch {
	case p.In == InPath:
		m.Delete("allowEmptyValue")
	case p.In == InBody && p.Schema != nil:
		for _, k := range bodyOnlyOmitted {
			m.Delete(k)
		}
	}
	return m
}
