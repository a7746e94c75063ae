package service

import (
	"sort"
	"strings"
)

// ValidationError carries the per-field messages for a rejected candidate
// contact. Handlers convert it into a 400 response with the field map in
// the body.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}
