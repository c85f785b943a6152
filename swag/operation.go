package swag

import "strings"

// Response describes a single response of an operation, keyed by its
// numeric status code.
type Response struct {
	StatusCode  int     `json:"statusCode,omitempty"`
	Description string  `json:"description,omitempty"`
	Schema      *Schema `json:"schema,omitempty"`
}

func NewResponse(r Response) (*Response, error) { return create(&r) }

func (r Response) fields() []field {
	return []field{
		{name: "statusCode", kind: KindInt, required: true, value: r.StatusCode},
		{name: "description", kind: KindString, value: r.Description},
		{name: "schema", kind: KindRecord, value: r.Schema},
	}
}

func (r Response) Validate() error {
	if err := validateFields("Response", r.fields()); err != nil {
		return err
	}
	if r.StatusCode < 100 || r.StatusCode > 599 {
		return newValidationError("Response", "statusCode", InvalidValue, "%d is not an HTTP status code", r.StatusCode)
	}
	return nil
}

// ToDict returns {statusCode: {description, schema}}.
func (r Response) ToDict() *Map {
	rest := prune(r.fields())
	rest.Delete("statusCode")
	m := newMap()
	m.Set(r.StatusCode, rest)
	return m
}

// Operation is a single HTTP method on a path.
type Operation struct {
	HTTPMethod   string        `json:"httpMethod,omitempty"`
	Summary      string        `json:"summary,omitempty"`
	Description  string        `json:"description,omitempty"`
	ExternalDocs *ExternalDocs `json:"externalDocs,omitempty"`
	OperationID  string        `json:"operationId,omitempty"`
	Consumes     []string      `json:"consumes,omitempty"`
	Produces     []string      `json:"produces,omitempty"`
	Parameters   []Parameter   `json:"parameters,omitempty"`
	Responses    []Response    `json:"responses,omitempty"`
}

func NewOperation(o Operation) (*Operation, error) { return create(&o) }

func (o Operation) fields() []field {
	return []field{
		{name: "httpMethod", kind: KindString, required: true, choices: methodChoices, value: o.HTTPMethod},
		{name: "summary", kind: KindString, value: o.Summary},
		{name: "description", kind: KindString, value: o.Description},
		{name: "externalDocs", kind: KindRecord, value: o.ExternalDocs},
		{name: "operationId", kind: KindString, value: o.OperationID},
		{name: "consumes", kind: KindList, value: o.Consumes},
		{name: "produces", kind: KindList, value: o.Produces},
		{name: "parameters", kind: KindRecordList, value: o.Parameters},
		{name: "responses", kind: KindRecordList, value: o.Responses},
	}
}

func (o Operation) Validate() error { return validateFields("Operation", o.fields()) }

// ToDict returns {httpMethod: {...}} with the responses merged into a single
// map keyed by status code. The method key keeps the caller's spelling.
func (o Operation) ToDict() *Map {
	body := prune(o.fields())
	body.Delete("httpMethod")
	body.Delete("responses")
	if len(o.Responses) > 0 {
		responses := newMap()
		for _, r := range o.Responses {
			merge(responses, r.ToDict())
		}
		body.Set("responses", responses)
	}
	m := newMap()
	m.Set(o.HTTPMethod, body)
	return m
}

// Method returns the lower-cased HTTP method, the spelling Swagger requires
// for path item keys.
func (o Operation) Method() string { return strings.ToLower(o.HTTPMethod) }

// Path groups the operations served at one endpoint.
type Path struct {
	Endpoint   string      `json:"endpoint,omitempty"`
	Operations []Operation `json:"operations,omitempty"`
}

func NewPath(p Path) (*Path, error) { return create(&p) }

func (p Path) fields() []field {
	return []field{
		{name: "endpoint", kind: KindString, required: true, value: p.Endpoint},
		{name: "operations", kind: KindRecordList, value: p.Operations},
	}
}

func (p Path) Validate() error { return validateFields("Path", p.fields()) }

// ToDict returns {endpoint: {method: {...}}}. Methods collide regardless of
// case; the later operation wins and keeps its own spelling.
func (p Path) ToDict() *Map {
	ops := newMap()
	for _, o := range p.Operations {
		for pair := ops.Oldest(); pair != nil; pair = pair.Next() {
			if k, _ := pair.Key.(string); k != o.HTTPMethod && strings.EqualFold(k, o.HTTPMethod) {
				ops.Delete(k)
				break
			}
		}
		merge(ops, o.ToDict())
	}
	m := newMap()
	m.Set(p.Endpoint, ops)
	return m
}

// Definition is a named, reusable schema.
type Definition struct {
	Name   string  `json:"name,omitempty"`
	Schema *Schema `json:"schema,omitempty"`
}

func NewDefinition(d Definition) (*Definition, error) { return create(&d) }

func (d Definition) fields() []field {
	return []field{
		{name: "name", kind: KindString, required: true, value: d.Name},
		{name: "schema", kind: KindRecord, required: true, value: d.Schema},
	}
}

func (d Definition) Validate() error { return validateFields("Definition", d.fields()) }

// ToDict returns {name: schema}.
func (d Definition) ToDict() *Map {
	m := newMap()
	if d.Schema != nil {
		m.Set(d.Name, d.Schema.ToDict())
	}
	return m
}
