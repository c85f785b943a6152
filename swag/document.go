package swag

import (
	"k8s.io/klog/v2"
)

// Document is the top-level Swagger 2.0 object. Info, BasePath and Schemes
// are required; Swagger defaults to "2.0".
//
// Parameters, Responses and SecurityDefinitions are free-form mappings.
// Security and Tags accept a mapping or a list, ExternalDocs a mapping or
// an *ExternalDocs.
type Document struct {
	Swagger             string       `json:"swagger,omitempty"`
	Info                *Info        `json:"info,omitempty"`
	Host                string       `json:"host,omitempty"`
	BasePath            string       `json:"basePath,omitempty"`
	Schemes             []string     `json:"schemes,omitempty"`
	Consumes            []string     `json:"consumes,omitempty"`
	Produces            []string     `json:"produces,omitempty"`
	Paths               []Path       `json:"paths,omitempty"`
	Definitions         []Definition `json:"definitions,omitempty"`
	Parameters          any          `json:"parameters,omitempty"`
	Responses           any          `json:"responses,omitempty"`
	SecurityDefinitions any          `json:"securityDefinitions,omitempty"`
	Security            any          `json:"security,omitempty"`
	Tags                any          `json:"tags,omitempty"`
	ExternalDocs        any          `json:"externalDocs,omitempty"`
}

func NewDocument(d Document) (*Document, error) { return create(&d) }

func (d Document) fields() []field {
	return []field{
		{name: "swagger", kind: KindString, choices: swaggerVersions, def: "2.0", value: d.Swagger},
		{name: "info", kind: KindRecord, required: true, value: d.Info},
		{name: "host", kind: KindString, value: d.Host},
		{name: "basePath", kind: KindString, required: true, value: d.BasePath},
		{name: "schemes", kind: KindList, required: true, choices: schemeChoices, value: d.Schemes},
		{name: "consumes", kind: KindList, value: d.Consumes},
		{name: "produces", kind: KindList, value: d.Produces},
		{name: "paths", kind: KindRecordList, value: d.Paths},
		{name: "definitions", kind: KindRecordList, value: d.Definitions},
		{name: "parameters", kind: KindMap, value: d.Parameters},
		{name: "responses", kind: KindMap, value: d.Responses},
		{name: "securityDefinitions", kind: KindMap, value: d.SecurityDefinitions},
		{name: "security", kind: KindFreeform, value: d.Security},
		{name: "tags", kind: KindFreeform, value: d.Tags},
		{name: "externalDocs", kind: KindMap, value: d.ExternalDocs},
	}
}

func (d Document) Validate() error { return validateFields("Document", d.fields()) }

// ToDict flattens the document. Definitions become {name: schema} and paths
// become {endpoint: {method: operation}}; on a repeated endpoint the later
// path replaces the earlier one. The paths key is always present.
func (d Document) ToDict() *Map {
	m := prune(d.fields())
	m.Delete("paths")
	m.Delete("definitions")
	if len(d.Definitions) > 0 {
		defs := newMap()
		for _, def := range d.Definitions {
			merge(defs, def.ToDict())
		}
		m.Set("definitions", defs)
	}
	paths := newMap()
	for _, p := range d.Paths {
		merge(paths, p.ToDict())
	}
	m.Set("paths", paths)
	return m
}

// AddPath validates p and adds it to the document. A path whose endpoint is
// already present replaces the existing entry in place.
func (d *Document) AddPath(p Path) error {
	if err := validateFields("Document", []field{{name: "paths", kind: KindRecordList, value: []Path{p}}}); err != nil {
		return err
	}
	for i := range d.Paths {
		if d.Paths[i].Endpoint == p.Endpoint {
			klog.V(4).InfoS("Replacing path", "endpoint", p.Endpoint, "operations", len(p.Operations))
			d.Paths[i] = p
			return nil
		}
	}
	d.Paths = append(d.Paths, p)
	return nil
}

// Path returns the path registered for endpoint.
func (d Document) Path(endpoint string) (Path, bool) {
	for _, p := range d.Paths {
		if p.Endpoint == endpoint {
			return p, true
		}
	}
	return Path{}, false
}
