package swag

// Contact information for the exposed API.
type Contact struct {
	Name  string `json:"name,omitempty"`
	URL   string `json:"url,omitempty"`
	Email string `json:"email,omitempty"`
}

func NewContact(c Contact) (*Contact, error) { return create(&c) }

func (c Contact) fields() []field {
	return []field{
		{name: "name", kind: KindString, value: c.Name},
		{name: "url", kind: KindString, value: c.URL},
		{name: "email", kind: KindEmail, value: c.Email},
	}
}

func (c Contact) Validate() error { return validateFields("Contact", c.fields()) }
func (c Contact) ToDict() *Map    { return prune(c.fields()) }

// License information for the exposed API.
type License struct {
	Name string `json:"name,omitempty"`
	URL  string `json:"url,omitempty"`
}

func NewLicense(l License) (*License, error) { return create(&l) }

func (l License) fields() []field {
	return []field{
		{name: "name", kind: KindString, value: l.Name},
		{name: "url", kind: KindString, value: l.URL},
	}
}

func (l License) Validate() error { return validateFields("License", l.fields()) }
func (l License) ToDict() *Map    { return prune(l.fields()) }

// ExternalDocs points at additional documentation.
type ExternalDocs struct {
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
}

func NewExternalDocs(e ExternalDocs) (*ExternalDocs, error) { return create(&e) }

func (e ExternalDocs) fields() []field {
	return []field{
		{name: "description", kind: KindString, value: e.Description},
		{name: "url", kind: KindString, required: true, value: e.URL},
	}
}

func (e ExternalDocs) Validate() error { return validateFields("ExternalDocs", e.fields()) }
func (e ExternalDocs) ToDict() *Map    { return prune(e.fields()) }

// Info is the metadata block of a Document. Title and Version are required.
type Info struct {
	Title          string   `json:"title,omitempty"`
	Description    string   `json:"description,omitempty"`
	TermsOfService string   `json:"termsOfService,omitempty"`
	Contact        *Contact `json:"contact,omitempty"`
	License        *License `json:"license,omitempty"`
	Version        string   `json:"version,omitempty"`
}

func NewInfo(i Info) (*Info, error) { return create(&i) }

func (i Info) fields() []field {
	return []field{
		{name: "title", kind: KindString, required: true, value: i.Title},
		{name: "description", kind: KindString, value: i.Description},
		{name: "termsOfService", kind: KindString, value: i.TermsOfService},
		{name: "contact", kind: KindRecord, value: i.Contact},
		{name: "license", kind: KindRecord, value: i.License},
		{name: "version", kind: KindString, required: true, value: i.Version},
	}
}

func (i Info) Validate() error { return validateFields("Info", i.fields()) }
func (i Info) ToDict() *Map    { return prune(i.fields()) }
