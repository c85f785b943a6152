package swag

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func requireValidation(t *testing.T, err error, field string, code ErrorCode) {
	t.Helper()
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrValidation), "expected validation error, got %T: %v", err, err)
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	require.Equal(t, field, ve.Field)
	require.Equal(t, code, ve.Code)
}

func TestRequiredFields(t *testing.T) {
	tests := []struct {
		name  string
		build func() error
		field string
	}{
		{"external docs url", func() error { _, err := NewExternalDocs(ExternalDocs{Description: "d"}); return err }, "url"},
		{"info title", func() error { _, err := NewInfo(Info{Version: "v1"}); return err }, "title"},
		{"info version", func() error { _, err := NewInfo(Info{Title: "t"}); return err }, "version"},
		{"parameter in", func() error { _, err := NewParameter(Parameter{Name: "id", Item: Item{Type: "string"}}); return err }, "in"},
		{"response status", func() error { _, err := NewResponse(Response{Description: "ok"}); return err }, "statusCode"},
		{"operation method", func() error { _, err := NewOperation(Operation{Summary: "s"}); return err }, "httpMethod"},
		{"path endpoint", func() error { _, err := NewPath(Path{}); return err }, "endpoint"},
		{"definition name", func() error { _, err := NewDefinition(Definition{Schema: Ref("User")}); return err }, "name"},
		{"definition schema", func() error { _, err := NewDefinition(Definition{Name: "User"}); return err }, "schema"},
		{"document info", func() error {
			_, err := NewDocument(Document{BasePath: "/", Schemes: []string{"http"}})
			return err
		}, "info"},
		{"document basePath", func() error {
			_, err := NewDocument(Document{Info: &Info{Title: "t", Version: "1"}, Schemes: []string{"http"}})
			return err
		}, "basePath"},
		{"document schemes", func() error {
			_, err := NewDocument(Document{Info: &Info{Title: "t", Version: "1"}, BasePath: "/"})
			return err
		}, "schemes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireValidation(t, tt.build(), tt.field, MissingField)
		})
	}
}

func TestChoices(t *testing.T) {
	_, err := NewItem(Item{Type: "uuid"})
	requireValidation(t, err, "type", InvalidChoice)

	_, err = NewSchema(Schema{Type: "null"})
	requireValidation(t, err, "type", InvalidChoice)

	_, err = NewItem(Item{Type: "array", CollectionFormat: "comma"})
	requireValidation(t, err, "collectionFormat", InvalidChoice)

	_, err = NewParameter(Parameter{In: "cookie", Item: Item{Type: "string"}})
	requireValidation(t, err, "in", InvalidChoice)

	_, err = NewOperation(Operation{HTTPMethod: "FETCH"})
	requireValidation(t, err, "httpMethod", InvalidChoice)

	_, err = NewDocument(Document{Info: &Info{Title: "t", Version: "1"}, BasePath: "/", Schemes: []string{"http", "gopher"}})
	requireValidation(t, err, "schemes[1]", InvalidChoice)

	_, err = NewDocument(Document{Swagger: "3.0", Info: &Info{Title: "t", Version: "1"}, BasePath: "/", Schemes: []string{"http"}})
	requireValidation(t, err, "swagger", InvalidChoice)
}

func TestMethodChoiceIgnoresCase(t *testing.T) {
	for _, m := range []string{"get", "GET", "Post", "patch"} {
		_, err := NewOperation(Operation{HTTPMethod: m})
		require.NoError(t, err, m)
	}
}

func TestParameterTypeRequiredUnlessBody(t *testing.T) {
	_, err := NewParameter(Parameter{In: InQuery, Name: "q"})
	requireValidation(t, err, "type", TypeRequired)

	_, err = NewParameter(Parameter{In: InBody, Name: "body", Schema: Ref("User")})
	require.NoError(t, err)
}

func TestFreeformKinds(t *testing.T) {
	_, err := NewSchema(Schema{Properties: []string{"name"}})
	requireValidation(t, err, "properties", InvalidType)

	_, err = NewSchema(Schema{Items: "string"})
	requireValidation(t, err, "items", InvalidType)

	_, err = NewSchema(Schema{AdditionalProperties: false})
	require.NoError(t, err)

	_, err = NewSchema(Schema{Items: map[string]any{"type": "string"}})
	require.NoError(t, err)

	_, err = NewDocument(Document{
		Info:     &Info{Title: "t", Version: "1"},
		BasePath: "/",
		Schemes:  []string{"http"},
		Tags:     "users",
	})
	requireValidation(t, err, "tags", InvalidType)
}

func TestContactEmail(t *testing.T) {
	_, err := NewContact(Contact{Name: "n", Email: "not-an-email"})
	requireValidation(t, err, "email", InvalidValue)

	c, err := NewContact(Contact{Name: "contact_name", URL: "https://url.com", Email: "definitelynotanonymous@email.com"})
	require.NoError(t, err)
	require.Equal(t, "contact_name", c.Name)
}

func TestResponseStatusRange(t *testing.T) {
	_, err := NewResponse(Response{StatusCode: 42})
	requireValidation(t, err, "statusCode", InvalidValue)
}

func TestNestedErrorsNameTheFullPath(t *testing.T) {
	_, err := NewDocument(Document{
		Info:     &Info{Title: "t", Version: "1"},
		BasePath: "/",
		Schemes:  []string{"https"},
		Paths: []Path{{
			Endpoint: "/user",
			Operations: []Operation{{
				HTTPMethod: "post",
				Responses:  []Response{{Description: "missing code"}},
			}},
		}},
	})
	requireValidation(t, err, "paths[0].operations[0].responses[0].statusCode", MissingField)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	require.Equal(t, "Document", ve.Record)
	require.Contains(t, err.Error(), "required field is missing")
}

func TestNestedSchemaInProperties(t *testing.T) {
	_, err := NewSchema(Schema{
		Type: "object",
		Properties: map[string]any{
			"id": &Schema{Type: "uuid"},
		},
	})
	requireValidation(t, err, "properties.id.type", InvalidChoice)
}

func TestAddPath(t *testing.T) {
	doc, err := NewDocument(Document{Info: &Info{Title: "t", Version: "1"}, BasePath: "/", Schemes: []string{"http"}})
	require.NoError(t, err)

	require.NoError(t, doc.AddPath(Path{Endpoint: "/a", Operations: []Operation{{HTTPMethod: "get"}}}))
	require.NoError(t, doc.AddPath(Path{Endpoint: "/b"}))
	require.NoError(t, doc.AddPath(Path{Endpoint: "/a", Operations: []Operation{{HTTPMethod: "post"}}}))
	require.Len(t, doc.Paths, 2)
	require.Equal(t, "/a", doc.Paths[0].Endpoint)

	a, ok := doc.Path("/a")
	require.True(t, ok)
	require.Equal(t, "post", a.Operations[0].HTTPMethod)

	err = doc.AddPath(Path{})
	requireValidation(t, err, "paths[0].endpoint", MissingField)
	require.Len(t, doc.Paths, 2)
}
