package ingestion

import "fmt"

// InvalidInputError is returned when a document is rejected before extraction,
// e.g. an unsupported file type.
type InvalidInputError struct {
	Name    string
	Message string
}

func (e *InvalidInputError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("invalid input %s: %s", e.Name, e.Message)
	}
	return fmt.Sprintf("invalid input: %s", e.Message)
}

// ExtractionError is returned when a document could not be parsed or yielded no text
type ExtractionError struct {
	Name    string
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	msg := "could not extract text"
	if e.Name != "" {
		msg += " from " + e.Name
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
