package tools

import (
	"encoding/json"
	"fmt"
)

// ErrKind classifies a tool failure.
type ErrKind string

// Tool failure kinds.
const (
	ErrInvalidArgs ErrKind = "invalid_args"
	ErrNotFound    ErrKind = "not_found"
	ErrUpstream    ErrKind = "upstream"
	ErrInternal    ErrKind = "internal"
)

// Result is the discriminated outcome of a tool invocation: Ok with a value,
// or Err with a kind and message.
type Result struct {
	ok    bool
	value any
	kind  ErrKind
	msg   string
}

// Ok returns a successful result carrying value (which may be nil).
func Ok(value any) Result {
	return Result{ok: true, value: value}
}

// Errf returns a failed result with a formatted message.
func Errf(kind ErrKind, format string, args ...any) Result {
	return Result{kind: kind, msg: fmt.Sprintf(format, args...)}
}

// OK reports whether the invocation succeeded.
func (r Result) OK() bool { return r.ok }

// Value returns the success value; nil for failures.
func (r Result) Value() any { return r.value }

// Kind returns the failure kind; empty for successes.
func (r Result) Kind() ErrKind { return r.kind }

// Message returns the failure message; empty for successes.
func (r Result) Message() string { return r.msg }

type resultError struct {
	Kind    ErrKind `json:"kind"`
	Message string  `json:"message"`
}

type resultJSON struct {
	OK    bool         `json:"ok"`
	Value any          `json:"value,omitempty"`
	Error *resultError `json:"error,omitempty"`
}

// MarshalJSON renders the result for the surrounding dispatch layer.
func (r Result) MarshalJSON() ([]byte, error) {
	out := resultJSON{OK: r.ok}
	if r.ok {
		out.Value = r.value
	} else {
		out.Error = &resultError{Kind: r.kind, Message: r.msg}
	}
	return json.Marshal(out)
}
