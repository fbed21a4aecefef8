package schema_test

import (
	"encoding/json"
	"testing"

	// Packages
	schema "github.com/mutablelogic/go-openai/pkg/schema"
	assert "github.com/stretchr/testify/assert"
)

func Test_value_001(t *testing.T) {
	// Each kind decodes with its accessor
	assert := assert.New(t)

	var v schema.Value
	if assert.NoError(json.Unmarshal([]byte(`{"a":[1,"two",true,null],"b":{"c":2.5}}`), &v)) {
		assert.Equal(schema.KindObject, v.Kind())
		assert.Equal([]string{"a", "b"}, v.Keys())

		a, ok := v.Get("a")
		assert.True(ok)
		assert.Equal(schema.KindArray, a.Kind())
		assert.Equal(4, a.Len())

		n, _ := a.Index(0)
		number, ok := n.AsNumber()
		assert.True(ok)
		assert.Equal(1.0, number)

		s, _ := a.Index(1)
		str, ok := s.AsString()
		assert.True(ok)
		assert.Equal("two", str)

		b, _ := a.Index(2)
		boolean, ok := b.AsBool()
		assert.True(ok)
		assert.True(boolean)

		null, ok := a.Index(3)
		assert.True(ok)
		assert.True(null.IsNull())

		_, ok = a.Index(4)
		assert.False(ok)
		_, ok = v.Get("missing")
		assert.False(ok)
	}
}

func Test_value_002(t *testing.T) {
	// Accessors of the wrong kind report false
	assert := assert.New(t)

	v := schema.StringValue("x")
	_, ok := v.AsNumber()
	assert.False(ok)
	_, ok = v.AsArray()
	assert.False(ok)
	_, ok = v.AsObject()
	assert.False(ok)
	_, ok = v.Get("x")
	assert.False(ok)
	_, ok = v.Index(0)
	assert.False(ok)
	assert.Equal(0, v.Len())
	assert.Equal("string", v.Kind().String())
}

func Test_value_003(t *testing.T) {
	// Values encode back to equivalent JSON
	assert := assert.New(t)

	for _, doc := range []string{`null`, `true`, `-3.25`, `"text"`, `[]`, `{}`, `[1,[2,{"x":null}]]`, `{"tool":{"name":"get_weather","args":{"city":"Berlin"}}}`} {
		var v schema.Value
		if !assert.NoError(json.Unmarshal([]byte(doc), &v), doc) {
			continue
		}
		data, err := json.Marshal(v)
		if assert.NoError(err) {
			assert.JSONEq(doc, string(data))
		}
	}
}

func Test_value_004(t *testing.T) {
	// Constructed values, and omitted when null
	assert := assert.New(t)

	v := schema.ObjectValue(map[string]schema.Value{
		"type":     schema.StringValue("function"),
		"function": schema.ObjectValue(map[string]schema.Value{"name": schema.StringValue("f")}),
	})
	assert.Equal(`{"function":{"name":"f"},"type":"function"}`, v.String())
	assert.Equal(map[string]any{"type": "function", "function": map[string]any{"name": "f"}}, v.Any())
	assert.Equal(`[]`, schema.ArrayValue().String())

	type wrapper struct {
		Choice schema.Value `json:"choice,omitzero"`
	}
	data, err := json.Marshal(wrapper{})
	assert.NoError(err)
	assert.Equal(`{}`, string(data))
	data, err = json.Marshal(wrapper{Choice: schema.StringValue("auto")})
	assert.NoError(err)
	assert.Equal(`{"choice":"auto"}`, string(data))
}
