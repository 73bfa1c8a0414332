package extraction

import "fmt"

// MalformedPayloadError indicates the model payload as a whole does not
// match the expected shape. There is no well-defined partial interpretation
// of a malformed payload, so this is fatal to the batch.
type MalformedPayloadError struct {
	Detail string
	Cause  error
}

func (e *MalformedPayloadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed payload: %s: %v", e.Detail, e.Cause)
	}
	return fmt.Sprintf("malformed payload: %s", e.Detail)
}

func (e *MalformedPayloadError) Unwrap() error {
	return e.Cause
}

// AdapterError wraps a per-entry normalization or classification failure at
// the adapter boundary. Entries failing this way are skipped, not fatal.
type AdapterError struct {
	Mention string
	Cause   error
}

func (e *AdapterError) Error() string {
	return fmt.Sprintf("skipped mention %q: %v", e.Mention, e.Cause)
}

func (e *AdapterError) Unwrap() error {
	return e.Cause
}
