package ingestion

import "fmt"

// LoadError represents a failure to read or decode an input file.
type LoadError struct {
	Source  string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	msg := e.Message
	if e.Source != "" {
		msg = fmt.Sprintf("%s (%s)", e.Message, e.Source)
	}
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %v", msg, e.Cause)
	}
	return fmt.Sprintf("load error: %s", msg)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
