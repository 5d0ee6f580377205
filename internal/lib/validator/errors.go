package validator

import "strings"

// FieldError is a single violated constraint. Field is the name used in
// request bodies, with an index for list entries, e.g. "genre[1]".
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// ValidationError carries every violated field constraint in the order
// they were found.
type ValidationError struct {
	Errors []FieldError
}

func NewValidationError() *ValidationError {
	return &ValidationError{Errors: []FieldError{}}
}

func (e *ValidationError) Add(field, msg string) {
	e.Errors = append(e.Errors, FieldError{Field: field, Error: msg})
}

// Merge appends the errors of other, skipping fields that already failed.
func (e *ValidationError) Merge(other *ValidationError) {
	if !other.HasErrors() {
		return
	}
	failed := make(map[string]bool)
	for _, fe := range e.Errors {
		failed[baseField(fe.Field)] = true
	}
	for _, fe := range other.Errors {
		if !failed[baseField(fe.Field)] {
			e.Errors = append(e.Errors, fe)
		}
	}
}

func (e *ValidationError) HasErrors() bool {
	return e != nil && len(e.Errors) > 0
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.Field+": "+fe.Error)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
