package swag

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/asaskevich/govalidator"
)

// Kind is the semantic type of a record field. Most fields are statically
// typed by their Go declaration; the free-form kinds are checked at runtime.
type Kind int

const (
	KindString Kind = iota
	KindEmail
	KindBool
	KindInt
	KindFloat
	KindList
	KindMap       // mapping or record
	KindBoolOrMap // bool, mapping or record
	KindFreeform  // mapping, list or record
	KindAny
	KindRecord
	KindRecordList
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindEmail:
		return "email"
	case KindBool:
		return "boolean"
	case KindInt:
		return "integer"
	case KindFloat:
		return "number"
	case KindList:
		return "list"
	case KindMap:
		return "mapping"
	case KindBoolOrMap:
		return "boolean or mapping"
	case KindFreeform:
		return "mapping or list"
	case KindRecord:
		return "record"
	case KindRecordList:
		return "list of records"
	default:
		return "any"
	}
}

// choiceSet is a closed set of allowed string values.
type choiceSet struct {
	values []string
	fold   bool // case-insensitive match
}

func (c choiceSet) empty() bool { return len(c.values) == 0 }

func (c choiceSet) contains(s string) bool {
	for _, v := range c.values {
		if v == s || (c.fold && strings.EqualFold(v, s)) {
			return true
		}
	}
	return false
}

func (c choiceSet) String() string { return strings.Join(c.values, ", ") }

var (
	typeChoices = choiceSet{values: []string{"string", "number", "integer", "boolean", "array", "file"}}

	schemaTypeChoices = choiceSet{values: []string{"string", "number", "integer", "boolean", "array", "object", "file"}}

	inChoices = choiceSet{values: []string{"query", "header", "path", "formData", "body"}}

	collectionFormats = choiceSet{values: []string{"csv", "ssv", "tsv", "pipes", "multi"}}

	methodChoices = choiceSet{values: []string{"get", "put", "post", "delete", "options", "head", "patch"}, fold: true}

	schemeChoices = choiceSet{values: []string{"http", "https", "ws", "wss"}}

	swaggerVersions = choiceSet{values: []string{"2.0"}}
)

// field describes one entry of a record's table: its public key, semantic
// kind, constraints and current value.
type field struct {
	name     string
	kind     Kind
	required bool
	choices  choiceSet
	def      any
	value    any
}

// effective returns the value with the default applied.
func (f field) effective() any {
	if isEmpty(f.value) && f.def != nil {
		return f.def
	}
	return f.value
}

// validateFields is the single validator shared by every record type.
func validateFields(record string, fields []field) error {
	for _, f := range fields {
		v := f.effective()
		if missing(f, v) {
			if f.required {
				return newValidationError(record, f.name, MissingField, "required field is missing")
			}
			continue
		}
		if !kindMatches(f.kind, v) {
			return newValidationError(record, f.name, InvalidType, "expected %s, got %T", f.kind, v)
		}
		if err := checkChoices(record, f, v); err != nil {
			return err
		}
		switch f.kind {
		case KindEmail:
			if s, _ := v.(string); !govalidator.IsEmail(s) {
				return newValidationError(record, f.name, InvalidValue, "%q is not a valid email address", s)
			}
		case KindRecord, KindMap, KindBoolOrMap, KindFreeform, KindAny, KindList:
			if err := validateNested(record, f.name, v); err != nil {
				return err
			}
		case KindRecordList:
			rv := reflect.ValueOf(v)
			for i := 0; i < rv.Len(); i++ {
				r, ok := rv.Index(i).Interface().(Record)
				if !ok {
					return newValidationError(record, fmt.Sprintf("%s[%d]", f.name, i), InvalidType, "expected record, got %s", rv.Index(i).Type())
				}
				if err := r.Validate(); err != nil {
					return nest(record, fmt.Sprintf("%s[%d]", f.name, i), err)
				}
			}
		}
	}
	return nil
}

// validateNested validates records found in a value, including records held
// as values of free-form maps and lists.
func validateNested(record, name string, v any) error {
	if isEmpty(v) {
		return nil
	}
	if r, ok := v.(Record); ok {
		if err := r.Validate(); err != nil {
			return nest(record, name, err)
		}
		return nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		for _, k := range rv.MapKeys() {
			if err := validateNested(record, fmt.Sprintf("%s.%v", name, k.Interface()), rv.MapIndex(k).Interface()); err != nil {
				return err
			}
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if err := validateNested(record, fmt.Sprintf("%s[%d]", name, i), rv.Index(i).Interface()); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkChoices(record string, f field, v any) error {
	if f.choices.empty() {
		return nil
	}
	switch val := v.(type) {
	case string:
		if !f.choices.contains(val) {
			return newValidationError(record, f.name, InvalidChoice, "%q is not one of [%s]", val, f.choices)
		}
	case []string:
		for i, s := range val {
			if !f.choices.contains(s) {
				return newValidationError(record, fmt.Sprintf("%s[%d]", f.name, i), InvalidChoice, "%q is not one of [%s]", s, f.choices)
			}
		}
	}
	return nil
}

// nest re-roots a child's validation error under the parent record.
func nest(record, prefix string, err error) error {
	ve, ok := err.(*ValidationError)
	if !ok {
		return err
	}
	return &ValidationError{
		Record:  record,
		Field:   prefix + "." + ve.Field,
		Code:    ve.Code,
		Message: ve.Message,
	}
}

func kindMatches(k Kind, v any) bool {
	switch k {
	case KindList:
		return isKind(v, reflect.Slice, reflect.Array)
	case KindMap:
		return isMapping(v)
	case KindBoolOrMap:
		return isKind(v, reflect.Bool) || isMapping(v)
	case KindFreeform:
		return isMapping(v) || isKind(v, reflect.Slice, reflect.Array)
	case KindRecordList:
		return isKind(v, reflect.Slice, reflect.Array)
	case KindString, KindEmail:
		return isKind(v, reflect.String)
	default:
		return true
	}
}

func isMapping(v any) bool {
	switch v.(type) {
	case Record, *Map:
		return true
	}
	return isKind(v, reflect.Map)
}

func isKind(v any, kinds ...reflect.Kind) bool {
	rv := reflect.Indirect(reflect.ValueOf(v))
	for _, k := range kinds {
		if rv.Kind() == k {
			return true
		}
	}
	return false
}

// isEmpty reports the values the flattener treats as null.
func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// missing reports whether a field carries no value. Zero is a real value
// everywhere except in a required plain integer such as a status code.
func missing(f field, v any) bool {
	if isEmpty(v) {
		return true
	}
	if !f.required || f.kind != KindInt {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	}
	return false
}
