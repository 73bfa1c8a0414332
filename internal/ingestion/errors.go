package ingestion

import "fmt"

// HTMLParseError indicates the posting HTML could not be parsed.
type HTMLParseError struct {
	Cause error
}

func (e *HTMLParseError) Error() string {
	return fmt.Sprintf("failed to parse posting HTML: %v", e.Cause)
}

func (e *HTMLParseError) Unwrap() error {
	return e.Cause
}
