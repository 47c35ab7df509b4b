package script

import "fmt"

// ValidationError reports a statement field that cannot be rendered.
type ValidationError struct {
	Field, Msg string
	Underlying error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

func (e *ValidationError) Unwrap() error {
	return e.Underlying
}

func invalid(field, format string, a ...any) *ValidationError {
	return &ValidationError{Field: field, Msg: fmt.Sprintf(format, a...)}
}
