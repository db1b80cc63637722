// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"strings"

	"github.com/creachadair/schemascope"
)

// Indent returns a multi-line JSON encoding of v in which each nested member
// or element begins on a new line, indented by one more copy of indent than
// its container. Object keys are separated from values by ": ".
//
// Empty objects and arrays are written as {} and []. If indent == "", the
// result is the same as v.JSON().
func Indent(v Value, indent string) string {
	if indent == "" {
		return jsonOf(v)
	}
	var sb strings.Builder
	writeIndented(&sb, v, indent, "")
	return sb.String()
}

func writeIndented(sb *strings.Builder, v Value, indent, prefix string) {
	inner := prefix + indent
	switch t := v.(type) {
	case Object:
		if len(t) == 0 {
			sb.WriteString("{}")
			return
		}
		sb.WriteString("{\n")
		for i, m := range t {
			if i > 0 {
				sb.WriteString(",\n")
			}
			sb.WriteString(inner)
			sb.WriteString(schemascope.Quote(m.Key))
			sb.WriteString(": ")
			writeIndented(sb, m.Value, indent, inner)
		}
		sb.WriteString("\n")
		sb.WriteString(prefix)
		sb.WriteByte('}')

	case Array:
		if len(t) == 0 {
			sb.WriteString("[]")
			return
		}
		sb.WriteString("[\n")
		for i, elt := range t {
			if i > 0 {
				sb.WriteString(",\n")
			}
			sb.WriteString(inner)
			writeIndented(sb, elt, indent, inner)
		}
		sb.WriteString("\n")
		sb.WriteString(prefix)
		sb.WriteByte(']')

	default:
		sb.WriteString(jsonOf(v))
	}
}
