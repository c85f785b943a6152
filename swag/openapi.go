package swag

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	openapi2 "github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi2conv"
	"github.com/getkin/kin-openapi/openapi3"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"k8s.io/klog/v2"
)

// ToOpenAPI2 decodes the flattened document into kin-openapi's Swagger 2.0
// model. Path item keys are lower-cased on the way, since kin-openapi only
// recognizes lower-case methods.
func ToOpenAPI2(d *Document) (*openapi2.T, error) {
	if d == nil {
		return nil, &ConversionError{Code: ConversionFault, Message: "swag: nil document"}
	}
	p, err := Plain(d)
	if err != nil {
		return nil, err
	}
	root, ok := p.(*plainMap)
	if !ok {
		return nil, &ConversionError{Code: ConversionFault, Message: fmt.Sprintf("swag: unexpected document shape %T", p)}
	}
	if paths, ok := root.Get("paths"); ok {
		root.Set("paths", lowerMethods(paths))
	}
	raw, err := json.Marshal(root)
	if err != nil {
		return nil, &ConversionError{Code: ConversionFault, Message: fmt.Sprintf("encode document: %v", err), Cause: err}
	}
	var v2 openapi2.T
	if err := json.Unmarshal(raw, &v2); err != nil {
		return nil, &ConversionError{Code: ConversionFault, Message: fmt.Sprintf("decode swagger 2.0: %v", err), Cause: err}
	}
	return &v2, nil
}

// ToOpenAPI3 converts the document to OpenAPI 3 with openapi2conv, resolves
// its internal references and validates the result. Unresolved references
// do not fail the conversion.
func ToOpenAPI3(ctx context.Context, d *Document) (*openapi3.T, error) {
	v2, err := ToOpenAPI2(d)
	if err != nil {
		return nil, err
	}
	v3, err := openapi2conv.ToV3(v2)
	if err != nil {
		return nil, &ConversionError{Code: ConversionFault, Message: fmt.Sprintf("convert v2→v3: %v", err), Cause: err}
	}
	loader := openapi3.NewLoader()
	if err := loader.ResolveRefsIn(v3, nil); err != nil {
		klog.Warningf("Failed to resolve refs after conversion: %v", err)
	}
	if err := v3.Validate(ctx); err != nil {
		if !canProceedDespiteValidation(err) {
			return nil, mapValidateErr(err)
		}
	}
	return v3, nil
}

func lowerMethods(paths any) any {
	pm, ok := paths.(*plainMap)
	if !ok {
		return paths
	}
	out := orderedmap.New[string, any]()
	for pair := pm.Oldest(); pair != nil; pair = pair.Next() {
		item, ok := pair.Value.(*plainMap)
		if !ok {
			out.Set(pair.Key, pair.Value)
			continue
		}
		lowered := orderedmap.New[string, any]()
		for op := item.Oldest(); op != nil; op = op.Next() {
			lowered.Set(strings.ToLower(op.Key), op.Value)
		}
		out.Set(pair.Key, lowered)
	}
	return out
}

func mapValidateErr(err error) error {
	return &ConversionError{Code: ValidationFault, Message: err.Error(), JSONPointer: extractJSONPointer(err), Cause: err}
}

var jsonPtrRe = regexp.MustCompile(`#/[^\s'\"]+`)

func extractJSONPointer(err error) string {
	if err == nil {
		return ""
	}
	if me, ok := err.(openapi3.MultiError); ok {
		if len(me) > 0 {
			return extractJSONPointer(me[0])
		}
	}
	var se *openapi3.SchemaError
	if errors.As(err, &se) {
		if parts := se.JSONPointer(); len(parts) > 0 {
			return "#/" + strings.Join(parts, "/")
		}
		if se.SchemaField != "" {
			return se.SchemaField
		}
	}
	if m := jsonPtrRe.FindString(err.Error()); m != "" {
		return m
	}
	return ""
}

// canProceedDespiteValidation tolerates unresolved $ref entries, which a
// fragment document may legitimately point outside of itself.
func canProceedDespiteValidation(err error) bool {
	if err == nil {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "unresolved ref")
}
