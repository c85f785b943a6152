package swag

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Map is the flattened form of a record. Keys are strings, except for the
// integer status codes produced by Response; insertion order is output order.
type Map = orderedmap.OrderedMap[any, any]

// plainMap is a Map whose keys have been coerced to strings for encoding.
type plainMap = orderedmap.OrderedMap[string, any]

func newMap() *Map { return orderedmap.New[any, any]() }

var recordType = reflect.TypeOf((*Record)(nil)).Elem()

// prune builds the null-pruned flattening of a field table. Defaults fill
// empty values; nested records are flattened by their own ToDict.
func prune(fields []field) *Map {
	m := newMap()
	for _, f := range fields {
		v := f.effective()
		if isEmpty(v) {
			continue
		}
		m.Set(f.name, flatten(v))
	}
	return m
}

// flatten resolves a single field value one level: records become their
// ToDict form, lists of records become lists of maps and pointers to scalars
// are dereferenced. Free-form values are left for Plain.
func flatten(v any) any {
	if r, ok := v.(Record); ok {
		return r.ToDict()
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		switch rv.Elem().Kind() {
		case reflect.Bool, reflect.String,
			reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
			reflect.Float32, reflect.Float64:
			return rv.Elem().Interface()
		}
	case reflect.Slice:
		if rv.Type().Elem().Implements(recordType) {
			out := make([]any, 0, rv.Len())
			for i := 0; i < rv.Len(); i++ {
				out = append(out, rv.Index(i).Interface().(Record).ToDict())
			}
			return out
		}
	}
	return v
}

// merge copies every entry of src into dst; later keys overwrite earlier ones.
func merge(dst, src *Map) {
	for pair := src.Oldest(); pair != nil; pair = pair.Next() {
		dst.Set(pair.Key, pair.Value)
	}
}

// Plain normalizes a flattened value into a tree an encoder can consume
// directly: records still nested in free-form values are flattened, map keys
// become strings (status codes 200 -> "200"), Go maps are ordered by key and
// slices become []any. Values no encoder could represent are reported.
func Plain(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	rv := reflect.ValueOf(v)
	if (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) && rv.IsNil() {
		return nil, nil
	}
	switch t := v.(type) {
	case Record:
		return Plain(t.ToDict())
	case *Map:
		out := orderedmap.New[string, any]()
		for pair := t.Oldest(); pair != nil; pair = pair.Next() {
			key, err := keyString(pair.Key)
			if err != nil {
				return nil, err
			}
			val, err := Plain(pair.Value)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			out.Set(key, val)
		}
		return out, nil
	case *plainMap:
		out := orderedmap.New[string, any]()
		for pair := t.Oldest(); pair != nil; pair = pair.Next() {
			val, err := Plain(pair.Value)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", pair.Key, err)
			}
			out.Set(pair.Key, val)
		}
		return out, nil
	}

	switch rv.Kind() {
	case reflect.Pointer:
		return Plain(rv.Elem().Interface())
	case reflect.Map:
		keys := make([]string, 0, rv.Len())
		byKey := make(map[string]reflect.Value, rv.Len())
		for _, k := range rv.MapKeys() {
			ks, err := keyString(k.Interface())
			if err != nil {
				return nil, err
			}
			keys = append(keys, ks)
			byKey[ks] = rv.MapIndex(k)
		}
		sort.Strings(keys)
		out := orderedmap.New[string, any]()
		for _, k := range keys {
			val, err := Plain(byKey[k].Interface())
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			out.Set(k, val)
		}
		return out, nil
	case reflect.Slice, reflect.Array:
		out := make([]any, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			val, err := Plain(rv.Index(i).Interface())
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			out = append(out, val)
		}
		return out, nil
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return v, nil
	}
	return nil, &ConversionError{Code: EncodeError, Message: fmt.Sprintf("swag: cannot encode value of type %T", v)}
}

func keyString(k any) (string, error) {
	rv := reflect.ValueOf(k)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), nil
	}
	return "", &ConversionError{Code: EncodeError, Message: fmt.Sprintf("swag: unsupported map key type %T", k)}
}
