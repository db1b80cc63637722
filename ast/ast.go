// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package ast defines JSON values as a closed set of Go types, and a parser
// that constructs them from JSON source.
//
// Every Value is exactly one of Object, Array, String, Number, Bool, or
// NullValue. Consumers dispatch with a type switch over these six types.
package ast

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/creachadair/schemascope"
)

// A Value is an arbitrary JSON value.
type Value interface {
	// JSON returns the compact JSON encoding of the value.
	JSON() string

	// String returns a short human-readable rendering of the value.
	String() string

	isValue()
}

// An Object is an ordered collection of key-value members. Members appear in
// the order they occurred in the source, including repeated keys.
type Object []*Member

func (Object) isValue() {}

// Len reports the number of members in o.
func (o Object) Len() int { return len(o) }

// Find returns the first member of o with the given key, or nil.
func (o Object) Find(key string) *Member {
	for _, m := range o {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// Keys returns the keys of o in order.
func (o Object) Keys() []string {
	keys := make([]string, len(o))
	for i, m := range o {
		keys[i] = m.Key
	}
	return keys
}

func (o Object) JSON() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(m.JSON())
	}
	sb.WriteByte('}')
	return sb.String()
}

func (o Object) String() string { return fmt.Sprintf("Object(len=%d)", len(o)) }

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

// JSON returns the compact encoding of m as it appears inside an object.
func (m Member) JSON() string { return schemascope.Quote(m.Key) + ":" + jsonOf(m.Value) }

func (m Member) String() string { return fmt.Sprintf("Member(key=%q)", m.Key) }

// Field constructs an object member with the given key and value.
// The value must be a string, int, float, bool, nil, or ast.Value.
func Field(key string, value any) *Member {
	return &Member{Key: key, Value: ToValue(value)}
}

// An Array is a sequence of values.
type Array []Value

func (Array) isValue() {}

// Len reports the number of elements in a.
func (a Array) Len() int { return len(a) }

func (a Array) JSON() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(jsonOf(v))
	}
	sb.WriteByte(']')
	return sb.String()
}

func (a Array) String() string { return fmt.Sprintf("Array(len=%d)", len(a)) }

// A String is a string value. Its contents are the decoded text, with all
// escapes resolved.
type String string

func (String) isValue() {}

// JSON returns the quoted and escaped encoding of s.
func (s String) JSON() string { return schemascope.Quote(string(s)) }

// String returns the decoded text of s.
func (s String) String() string { return string(s) }

// A Number is a numeric value. It retains the text of the number as written
// in the source, so no precision is lost before a consumer asks for it.
type Number struct{ text string }

func (Number) isValue() {}

// Int constructs a Number from an integer.
func Int(z int64) Number { return Number{text: strconv.FormatInt(z, 10)} }

// Float constructs a Number from a floating-point value. It panics if f is
// not finite, since JSON has no encoding for infinities or NaN.
func Float(f float64) Number {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		panic(fmt.Sprintf("ast: invalid number %v", f))
	}
	return Number{text: strconv.FormatFloat(f, 'g', -1, 64)}
}

// Text returns the source text of n.
func (n Number) Text() string { return n.text }

func (n Number) JSON() string   { return n.text }
func (n Number) String() string { return n.text }

// Float64 returns the value of n as a float64. Magnitudes too large to
// represent are returned as ±Inf.
func (n Number) Float64() float64 {
	v, _ := strconv.ParseFloat(n.text, 64)
	return v
}

// Int64 returns the value of n as an int64, and reports whether n is an
// integer that fits in an int64 without loss.
func (n Number) Int64() (int64, bool) {
	if v, err := strconv.ParseInt(n.text, 10, 64); err == nil {
		return v, true
	}
	f := n.Float64()
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

// IsInt reports whether n has no fractional component. Numbers too large to
// represent as a finite float64 are not integers.
func (n Number) IsInt() bool {
	f := n.Float64()
	return !math.IsInf(f, 0) && f == math.Trunc(f)
}

// A Bool is a Boolean constant, true or false.
type Bool bool

func (Bool) isValue() {}

func (b Bool) JSON() string   { return strconv.FormatBool(bool(b)) }
func (b Bool) String() string { return b.JSON() }

// NullValue is the type of the null constant. Its only value is Null.
type NullValue struct{}

// Null represents the null constant.
var Null NullValue

func (NullValue) isValue() {}

func (NullValue) JSON() string   { return "null" }
func (NullValue) String() string { return "null" }

// jsonOf returns the JSON encoding of v, treating a nil Value as null.
func jsonOf(v Value) string {
	if v == nil {
		return "null"
	}
	return v.JSON()
}

// ToValue converts a string, int, float, bool, nil, or ast.Value into an
// ast.Value. It panics if v does not have one of those types.
func ToValue(v any) Value {
	switch t := v.(type) {
	case Value:
		return t
	case nil:
		return Null
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case int:
		return Int(int64(t))
	case int64:
		return Int(t)
	case float64:
		return Float(t)
	default:
		panic(fmt.Sprintf("ast: unsupported value type %T", v))
	}
}
