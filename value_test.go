package lumen

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueOfSupportedTypes(t *testing.T) {
	cases := []struct {
		in   interface{}
		want interface{}
	}{
		{"text", "text"},
		{true, true},
		{int(5), int64(5)},
		{int8(5), int64(5)},
		{int16(5), int64(5)},
		{int32(5), int64(5)},
		{int64(5), int64(5)},
		{uint(5), int64(5)},
		{uint8(5), int64(5)},
		{uint16(5), int64(5)},
		{uint32(5), int64(5)},
		{uint64(5), int64(5)},
		{float32(1.5), float64(1.5)},
		{float64(1.5), float64(1.5)},
		{StringValue("wrapped"), "wrapped"},
	}
	for _, c := range cases {
		v, err := valueOf(c.in)
		require.NoErrorf(t, err, "valueOf(%#v)", c.in)
		assert.Equal(t, c.want, v.Interface())
	}
}

func TestValueOfUnsupportedTypes(t *testing.T) {
	for _, in := range []interface{}{
		nil,
		[]string{"a"},
		map[string]string{"a": "b"},
		struct{}{},
		make(chan int),
	} {
		_, err := valueOf(in)
		require.Errorf(t, err, "valueOf(%#v)", in)
		assert.True(t, errors.Is(err, ErrUnsupportedValueType))
	}
}

func TestValueString(t *testing.T) {
	cases := []struct {
		value Value
		want  string
	}{
		{StringValue("plain"), "plain"},
		{StringValue("hello world"), `"hello world"`},
		{StringValue("tab\there"), `"tab\there"`},
		{StringValue(""), `""`},
		{StringValue(`say "hi"`), `"say \"hi\""`},
		{IntValue(42), "42"},
		{IntValue(-7), "-7"},
		{FloatValue(3.14), "3.14"},
		{FloatValue(2), "2"},
		{BoolValue(true), "true"},
		{BoolValue(false), "false"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.value.String())
	}
}
