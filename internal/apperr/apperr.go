// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package apperr categorises the errors reported by the command-line tool
// and renders them for the user.
package apperr

import (
	"errors"
	"fmt"

	"github.com/creachadair/schemascope/ast/cursor"
	"github.com/creachadair/schemascope/session"
)

// Standard errors.
var (
	ErrEmptyInput   = errors.New("input is empty or contains only whitespace")
	ErrNoInput      = errors.New("no input: name a file or pipe JSON to stdin")
	ErrPathNotFound = cursor.ErrNotFound
)

// Kind categorises an Error.
type Kind string

// The kinds of Error.
const (
	Input  Kind = "input"
	Parse  Kind = "parse"
	Config Kind = "config"
	Output Kind = "output"
)

// An Error is a categorised application error.
type Error struct {
	Kind    Kind
	Message string
	Err     error // may be nil
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// New returns an *Error of the given kind.
func New(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

// Inputf returns an input *Error wrapping err, with a formatted message.
func Inputf(err error, msg string, args ...any) *Error {
	return New(Input, fmt.Sprintf(msg, args...), err)
}

// Parsef returns a parse *Error wrapping err, with a formatted message.
func Parsef(err error, msg string, args ...any) *Error {
	return New(Parse, fmt.Sprintf(msg, args...), err)
}

// Configf returns a config *Error wrapping err, with a formatted message.
func Configf(err error, msg string, args ...any) *Error {
	return New(Config, fmt.Sprintf(msg, args...), err)
}

// Outputf returns an output *Error wrapping err, with a formatted message.
func Outputf(err error, msg string, args ...any) *Error {
	return New(Output, fmt.Sprintf(msg, args...), err)
}

// UserMessage returns a message describing err suitable for display on the
// command line.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyInput):
		return "Error: the input is empty. Provide a JSON document."
	case errors.Is(err, ErrNoInput):
		return "Error: no input. Name a file or pipe JSON to stdin."
	case errors.Is(err, ErrPathNotFound):
		return "Error: " + detail(err)
	}

	var perr *session.ParseError
	if errors.As(err, &perr) {
		return fmt.Sprintf("%s: %v", session.InvalidJSON, perr.Err)
	}

	var ae *Error
	if errors.As(err, &ae) {
		msg := ae.Message
		if ae.Err != nil {
			msg += ": " + ae.Err.Error()
		}
		switch ae.Kind {
		case Input:
			return "Input error: " + msg
		case Parse:
			return "Parse error: " + msg
		case Config:
			return "Configuration error: " + msg
		case Output:
			return "Output error: " + msg
		}
	}
	return "Error: " + err.Error()
}

// detail returns the message of the outermost error in the chain of err that
// is not an *Error.
func detail(err error) string {
	for e := err; e != nil; e = errors.Unwrap(e) {
		if _, ok := e.(*Error); !ok {
			return e.Error()
		}
	}
	return err.Error()
}
