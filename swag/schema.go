package swag

// XML tunes the XML representation of a schema property.
type XML struct {
	Name      string `json:"name,omitempty"`
	Namespace string `json:"namespace,omitempty"`
	Prefix    string `json:"prefix,omitempty"`
	Attribute *bool  `json:"attribute,omitempty"`
	Wrapped   *bool  `json:"wrapped,omitempty"`
}

func NewXML(x XML) (*XML, error) { return create(&x) }

func (x XML) fields() []field {
	return []field{
		{name: "name", kind: KindString, value: x.Name},
		{name: "namespace", kind: KindString, value: x.Namespace},
		{name: "prefix", kind: KindString, value: x.Prefix},
		{name: "attribute", kind: KindBool, value: x.Attribute},
		{name: "wrapped", kind: KindBool, value: x.Wrapped},
	}
}

func (x XML) Validate() error { return validateFields("XML", x.fields()) }
func (x XML) ToDict() *Map    { return prune(x.fields()) }

// Schema is a Swagger schema object. A schema carrying only Ref flattens to
// {"$ref": ...}.
//
// Default, Items, Properties and AdditionalProperties are free-form: they
// accept plain maps as well as nested *Schema values.
type Schema struct {
	Ref                  string        `json:"$ref,omitempty"`
	Type                 string        `json:"type,omitempty"`
	Format               string        `json:"format,omitempty"`
	Title                string        `json:"title,omitempty"`
	Description          string        `json:"description,omitempty"`
	Default              any           `json:"default,omitempty"`
	MultipleOf           *float64      `json:"multipleOf,omitempty"`
	Maximum              *float64      `json:"maximum,omitempty"`
	ExclusiveMaximum     *bool         `json:"exclusiveMaximum,omitempty"`
	Minimum              *float64      `json:"minimum,omitempty"`
	ExclusiveMinimum     *bool         `json:"exclusiveMinimum,omitempty"`
	MaxLength            *int64        `json:"maxLength,omitempty"`
	MinLength            *int64        `json:"minLength,omitempty"`
	Pattern              string        `json:"pattern,omitempty"`
	MaxItems             *int64        `json:"maxItems,omitempty"`
	MinItems             *int64        `json:"minItems,omitempty"`
	UniqueItems          *bool         `json:"uniqueItems,omitempty"`
	MaxProperties        *int64        `json:"maxProperties,omitempty"`
	MinProperties        *int64        `json:"minProperties,omitempty"`
	Required             []string      `json:"required,omitempty"`
	Enum                 []any         `json:"enum,omitempty"`
	Items                any           `json:"items,omitempty"`
	Properties           any           `json:"properties,omitempty"`
	AdditionalProperties any           `json:"additionalProperties,omitempty"`
	AllOf                []any         `json:"allOf,omitempty"`
	Discriminator        string        `json:"discriminator,omitempty"`
	ReadOnly             *bool         `json:"readOnly,omitempty"`
	XML                  *XML          `json:"xml,omitempty"`
	ExternalDocs         *ExternalDocs `json:"externalDocs,omitempty"`
	Example              any           `json:"example,omitempty"`
}

func NewSchema(s Schema) (*Schema, error) { return create(&s) }

// Ref returns a schema pointing at a named definition.
func Ref(definition string) *Schema {
	return &Schema{Ref: "#/definitions/" + definition}
}

func (s Schema) fields() []field {
	return []field{
		{name: "$ref", kind: KindString, value: s.Ref},
		{name: "type", kind: KindString, choices: schemaTypeChoices, value: s.Type},
		{name: "format", kind: KindString, value: s.Format},
		{name: "title", kind: KindString, value: s.Title},
		{name: "description", kind: KindString, value: s.Description},
		{name: "default", kind: KindAny, value: s.Default},
		{name: "multipleOf", kind: KindFloat, value: s.MultipleOf},
		{name: "maximum", kind: KindFloat, value: s.Maximum},
		{name: "exclusiveMaximum", kind: KindBool, value: s.ExclusiveMaximum},
		{name: "minimum", kind: KindFloat, value: s.Minimum},
		{name: "exclusiveMinimum", kind: KindBool, value: s.ExclusiveMinimum},
		{name: "maxLength", kind: KindInt, value: s.MaxLength},
		{name: "minLength", kind: KindInt, value: s.MinLength},
		{name: "pattern", kind: KindString, value: s.Pattern},
		{name: "maxItems", kind: KindInt, value: s.MaxItems},
		{name: "minItems", kind: KindInt, value: s.MinItems},
		{name: "uniqueItems", kind: KindBool, value: s.UniqueItems},
		{name: "maxProperties", kind: KindInt, value: s.MaxProperties},
		{name: "minProperties", kind: KindInt, value: s.MinProperties},
		{name: "required", kind: KindList, value: s.Required},
		{name: "enum", kind: KindList, value: s.Enum},
		{name: "items", kind: KindMap, value: s.Items},
		{name: "properties", kind: KindMap, value: s.Properties},
		{name: "additionalProperties", kind: KindBoolOrMap, value: s.AdditionalProperties},
		{name: "allOf", kind: KindList, value: s.AllOf},
		{name: "discriminator", kind: KindString, value: s.Discriminator},
		{name: "readOnly", kind: KindBool, value: s.ReadOnly},
		{name: "xml", kind: KindRecord, value: s.XML},
		{name: "externalDocs", kind: KindRecord, value: s.ExternalDocs},
		{name: "example", kind: KindAny, value: s.Example},
	}
}

func (s Schema) Validate() error { return validateFields("Schema", s.fields()) }
func (s Schema) ToDict() *Map    { return prune(s.fields()) }
