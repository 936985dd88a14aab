package ner

import "fmt"

// RecognizerError reports a failed recognizer call.
type RecognizerError struct {
	Recognizer string
	// StatusCode is the HTTP status for remote recognizers, 0 otherwise.
	StatusCode int
	Message    string
	Cause      error
}

func (e *RecognizerError) Error() string {
	msg := fmt.Sprintf("%s recognizer: %s", e.Recognizer, e.Message)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *RecognizerError) Unwrap() error {
	return e.Cause
}
