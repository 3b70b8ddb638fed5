package lumen

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

type valueKind uint8

const (
	kindString valueKind = iota
	kindInt
	kindFloat
	kindBool
)

// Value is payload of single context entry. Set of supported kinds is
// closed (string, integer, float, bool) so that formatting switch stays
// exhaustive.
type Value struct {
	kind valueKind
	str  string
	num  int64
	fl   float64
	b    bool
}

// StringValue creates context value holding a string.
func StringValue(s string) Value { return Value{kind: kindString, str: s} }

// IntValue creates context value holding an integer.
func IntValue(i int64) Value { return Value{kind: kindInt, num: i} }

// FloatValue creates context value holding a floating point number.
func FloatValue(f float64) Value { return Value{kind: kindFloat, fl: f} }

// BoolValue creates context value holding a boolean.
func BoolValue(b bool) Value { return Value{kind: kindBool, b: b} }

// valueOf coerces arbitrary value to Value. All integer and float widths
// are accepted, everything outside of closed kind set is rejected with
// ErrUnsupportedValueType.
func valueOf(v interface{}) (Value, error) {
	switch vv := v.(type) {
	case Value:
		return vv, nil
	case string:
		return StringValue(vv), nil
	case bool:
		return BoolValue(vv), nil
	case int:
		return IntValue(int64(vv)), nil
	case int8:
		return IntValue(int64(vv)), nil
	case int16:
		return IntValue(int64(vv)), nil
	case int32:
		return IntValue(int64(vv)), nil
	case int64:
		return IntValue(vv), nil
	case uint:
		return IntValue(int64(vv)), nil
	case uint8:
		return IntValue(int64(vv)), nil
	case uint16:
		return IntValue(int64(vv)), nil
	case uint32:
		return IntValue(int64(vv)), nil
	case uint64:
		return IntValue(int64(vv)), nil
	case float32:
		return FloatValue(float64(vv)), nil
	case float64:
		return FloatValue(vv), nil
	default:
		return Value{}, errors.Wrapf(ErrUnsupportedValueType, "%T", v)
	}
}

// String returns text form of value as it appears in rendered log line.
// Strings are quoted only when they contain whitespace or non-printable
// characters, numbers use locale independent decimal form and booleans
// render as true/false.
func (v Value) String() string {
	switch v.kind {
	case kindString:
		if v.str == "" || strings.IndexFunc(v.str, needsQuote) >= 0 {
			return strconv.Quote(v.str)
		}
		return v.str
	case kindInt:
		return strconv.FormatInt(v.num, 10)
	case kindFloat:
		return strconv.FormatFloat(v.fl, 'g', -1, 64)
	case kindBool:
		return strconv.FormatBool(v.b)
	default:
		return strconv.Quote(v.str)
	}
}

// Interface returns value as plain Go value, for JSON serialization.
func (v Value) Interface() interface{} {
	switch v.kind {
	case kindInt:
		return v.num
	case kindFloat:
		return v.fl
	case kindBool:
		return v.b
	default:
		return v.str
	}
}

// needsQuote determines if provided rune is such that word that contains
// this rune needs to be quoted.
func needsQuote(r rune) bool {
	return unicode.IsSpace(r) || r == '"' || !unicode.IsPrint(r)
}
