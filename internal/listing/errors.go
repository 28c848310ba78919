package listing

import "strings"

// FieldError describes one invalid part of the request body.
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// ValidationError is returned when the request body is malformed or a field
// breaks its rule. It is a client error and never reaches a generator.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, strings.Join(f.Loc, ".")+": "+f.Msg)
	}
	return "invalid request: " + strings.Join(parts, "; ")
}
