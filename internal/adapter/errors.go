package adapter

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("access denied")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("already exists")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)

// ResponseError is a non-2xx answer of the server. It unwraps to one of the
// sentinel errors above when the status code is known.
type ResponseError struct {
	StatusCode int
	Message    string

	// Fields holds per-field validation messages, if the server sent any.
	Fields map[string]string

	kind error
}

func (e *ResponseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "http %d", e.StatusCode)
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}

	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, "; %s %s", k, e.Fields[k])
	}

	return b.String()
}

func (e *ResponseError) Unwrap() error {
	return e.kind
}
