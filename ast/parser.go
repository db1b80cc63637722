// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"errors"
	"fmt"
	"io"

	"github.com/creachadair/schemascope"
)

// ErrNoValue is reported by ParseSingle when the input contains no JSON value.
var ErrNoValue = errors.New("no JSON value in input")

// Options control the behaviour of the parser. A zero Options is ready for
// use and applies the default settings.
type Options struct {
	// MaxDepth is the maximum nesting depth of objects and arrays.
	// If zero, schemascope.DefaultMaxDepth is used.
	MaxDepth int
}

// Parse parses and returns the JSON values from r using default options.
// In case of error, any complete values already parsed are returned along
// with the error.
func Parse(r io.Reader) ([]Value, error) { return Options{}.Parse(r) }

// ParseSingle parses a single JSON value from r using default options.
func ParseSingle(r io.Reader) (Value, error) { return Options{}.ParseSingle(r) }

// Parse parses and returns the JSON values from r. In case of error, any
// complete values already parsed are returned along with the error.
func (o Options) Parse(r io.Reader) ([]Value, error) {
	st := o.newStream(r)
	h := new(parseHandler)
	var vs []Value
	for {
		if err := st.ParseOne(h); err == io.EOF {
			return vs, nil
		} else if err != nil {
			return vs, err
		}
		v, err := h.result()
		if err != nil {
			return vs, err
		}
		vs = append(vs, v)
	}
}

// ParseSingle parses a single JSON value from r. It reports ErrNoValue if r
// contains only whitespace, and an error if anything other than whitespace
// follows the value.
func (o Options) ParseSingle(r io.Reader) (Value, error) {
	st := o.newStream(r)
	h := new(parseHandler)
	if err := st.ParseOne(h); err == io.EOF {
		return nil, ErrNoValue
	} else if err != nil {
		return nil, err
	}
	v, err := h.result()
	if err != nil {
		return nil, err
	}

	if err := st.ParseOne(new(parseHandler)); err == nil {
		return nil, errors.New("unexpected data after value")
	} else if err != io.EOF {
		return nil, err
	}
	return v, nil
}

func (o Options) newStream(r io.Reader) *schemascope.Stream {
	st := schemascope.NewStream(r)
	st.SetMaxDepth(o.MaxDepth)
	return st
}

// A parseHandler implements the schemascope.Handler interface to construct
// values. Incomplete objects, arrays and members are held on a stack until
// their closing event arrives.
type parseHandler struct {
	stk []any // *objectStub, *arrayStub, *Member, or a complete Value
}

// objectStub and arrayStub are stack placeholders for incomplete containers.
// They do not appear in a completed value.
type objectStub struct{ members Object }
type arrayStub struct{ values Array }

func (h *parseHandler) push(v any) { h.stk = append(h.stk, v) }

func (h *parseHandler) pop() any {
	last := h.stk[len(h.stk)-1]
	h.stk = h.stk[:len(h.stk)-1]
	return last
}

// reduce attaches a completed value to the container atop the stack, or
// leaves it on the stack if it is a top-level value.
func (h *parseHandler) reduce(v Value) error {
	if len(h.stk) == 0 {
		h.push(v)
		return nil
	}
	switch top := h.stk[len(h.stk)-1].(type) {
	case *arrayStub:
		top.values = append(top.values, v)
	case *Member:
		top.Value = v
	default:
		return fmt.Errorf("unexpected value after %T", top)
	}
	return nil
}

// result returns the complete value from a single ParseOne and resets h.
func (h *parseHandler) result() (Value, error) {
	defer func() { h.stk = h.stk[:0] }()
	if len(h.stk) != 1 {
		return nil, errors.New("incomplete value")
	}
	v, ok := h.stk[0].(Value)
	if !ok {
		return nil, fmt.Errorf("incomplete value %T", h.stk[0])
	}
	return v, nil
}

func (h *parseHandler) BeginObject(schemascope.Anchor) error {
	h.push(&objectStub{members: Object{}})
	return nil
}

func (h *parseHandler) EndObject(schemascope.Anchor) error {
	return h.reduce(h.pop().(*objectStub).members)
}

func (h *parseHandler) BeginArray(schemascope.Anchor) error {
	h.push(&arrayStub{values: Array{}})
	return nil
}

func (h *parseHandler) EndArray(schemascope.Anchor) error {
	return h.reduce(h.pop().(*arrayStub).values)
}

func (h *parseHandler) BeginMember(loc schemascope.Anchor) error {
	key, err := schemascope.Unquote(loc.Text())
	if err != nil {
		return fmt.Errorf("invalid key: %w", err)
	}
	h.push(&Member{Key: string(key)})
	return nil
}

func (h *parseHandler) EndMember(schemascope.Anchor) error {
	m := h.pop().(*Member)
	obj := h.stk[len(h.stk)-1].(*objectStub)
	obj.members = append(obj.members, m)
	return nil
}

func (h *parseHandler) Value(loc schemascope.Anchor) error {
	switch tok := loc.Token(); tok {
	case schemascope.String:
		text, err := schemascope.Unquote(loc.Text())
		if err != nil {
			return fmt.Errorf("invalid string: %w", err)
		}
		return h.reduce(String(text))
	case schemascope.Integer, schemascope.Number:
		return h.reduce(Number{text: string(loc.Text())})
	case schemascope.True, schemascope.False:
		return h.reduce(Bool(tok == schemascope.True))
	case schemascope.Null:
		return h.reduce(Null)
	default:
		return fmt.Errorf("unknown value %v", tok)
	}
}

func (h *parseHandler) EndOfInput(schemascope.Anchor) {}
