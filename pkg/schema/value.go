package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Kind is the type of a JSON value
type Kind int

// Value is any JSON value: null, a boolean, a number, a string, an array
// or an object. The zero value is null.
type Value struct {
	kind    Kind
	boolean bool
	number  float64
	str    string
	array  []Value
	object map[string]Value
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func NullValue() Value {
	return Value{}
}

func BoolValue(v bool) Value {
	return Value{kind: KindBool, boolean: v}
}

func NumberValue(v float64) Value {
	return Value{kind: KindNumber, number: v}
}

func StringValue(v string) Value {
	return Value{kind: KindString, str: v}
}

func ArrayValue(v ...Value) Value {
	if v == nil {
		v = []Value{}
	}
	return Value{kind: KindArray, array: v}
}

func ObjectValue(v map[string]Value) Value {
	if v == nil {
		v = map[string]Value{}
	}
	return Value{kind: KindObject, object: v}
}

// NewValue converts a decoded JSON value (as produced by encoding/json into
// an any) into a Value
func NewValue(v any) (Value, error) {
	switch v := v.(type) {
	case nil:
		return NullValue(), nil
	case bool:
		return BoolValue(v), nil
	case float64:
		return NumberValue(v), nil
	case int:
		return NumberValue(float64(v)), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return Value{}, err
		}
		return NumberValue(f), nil
	case string:
		return StringValue(v), nil
	case []any:
		array := make([]Value, 0, len(v))
		for _, elem := range v {
			value, err := NewValue(elem)
			if err != nil {
				return Value{}, err
			}
			array = append(array, value)
		}
		return ArrayValue(array...), nil
	case map[string]any:
		object := make(map[string]Value, len(v))
		for key, elem := range v {
			value, err := NewValue(elem)
			if err != nil {
				return Value{}, err
			}
			object[key] = value
		}
		return ObjectValue(object), nil
	}
	return Value{}, fmt.Errorf("unsupported type %T", v)
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return fmt.Sprint("kind(", int(k), ")")
}

func (v Value) String() string {
	data, err := json.Marshal(v)
	if err != nil {
		return err.Error()
	}
	return string(data)
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// IsZero reports whether the value is null, so that fields tagged omitzero
// are left out when unset
func (v Value) IsZero() bool {
	return v.kind == KindNull
}

func (v Value) AsBool() (bool, bool) {
	return v.boolean, v.kind == KindBool
}

func (v Value) AsNumber() (float64, bool) {
	return v.number, v.kind == KindNumber
}

func (v Value) AsString() (string, bool) {
	return v.str, v.kind == KindString
}

func (v Value) AsArray() ([]Value, bool) {
	return v.array, v.kind == KindArray
}

func (v Value) AsObject() (map[string]Value, bool) {
	return v.object, v.kind == KindObject
}

// Get returns a member of an object
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindObject {
		return Value{}, false
	}
	value, exists := v.object[key]
	return value, exists
}

// Index returns an element of an array
func (v Value) Index(i int) (Value, bool) {
	if v.kind != KindArray || i < 0 || i >= len(v.array) {
		return Value{}, false
	}
	return v.array[i], true
}

// Len returns the number of elements of an array or members of an object
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.array)
	case KindObject:
		return len(v.object)
	}
	return 0
}

// Keys returns the sorted member names of an object
func (v Value) Keys() []string {
	if v.kind != KindObject {
		return nil
	}
	keys := make([]string, 0, len(v.object))
	for key := range v.object {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Any returns the value as nil, bool, float64, string, []any or map[string]any
func (v Value) Any() any {
	switch v.kind {
	case KindBool:
		return v.boolean
	case KindNumber:
		return v.number
	case KindString:
		return v.str
	case KindArray:
		result := make([]any, len(v.array))
		for i, elem := range v.array {
			result[i] = elem.Any()
		}
		return result
	case KindObject:
		result := make(map[string]any, len(v.object))
		for key, elem := range v.object {
			result[key] = elem.Any()
		}
		return result
	}
	return nil
}

////////////////////////////////////////////////////////////////////////////////
// JSON

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNull:
		return []byte("null"), nil
	case KindBool:
		return json.Marshal(v.boolean)
	case KindNumber:
		return json.Marshal(v.number)
	case KindString:
		return json.Marshal(v.str)
	case KindArray:
		if v.array == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.array)
	case KindObject:
		if v.object == nil {
			return []byte("{}"), nil
		}
		return json.Marshal(v.object)
	}
	return nil, fmt.Errorf("invalid kind %d", int(v.kind))
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(&raw); err != nil {
		return err
	}
	value, err := NewValue(raw)
	if err != nil {
		return err
	}
	*v = value
	return nil
}
