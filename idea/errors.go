package idea

import "fmt"

// ValidationError reports a field that failed validation during
// construction or deserialization.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func requiredErr(field string) error {
	return &ValidationError{Field: field, Message: "is required"}
}
