package skills

import "fmt"

// TaxonomyError represents a failure to load or compile a skill taxonomy.
type TaxonomyError struct {
	Source  string
	Message string
	Cause   error
}

func (e *TaxonomyError) Error() string {
	msg := e.Message
	if e.Source != "" {
		msg = fmt.Sprintf("%s (%s)", e.Message, e.Source)
	}
	if e.Cause != nil {
		return fmt.Sprintf("taxonomy error: %s: %v", msg, e.Cause)
	}
	return fmt.Sprintf("taxonomy error: %s", msg)
}

func (e *TaxonomyError) Unwrap() error {
	return e.Cause
}
