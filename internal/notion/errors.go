package notion

import "fmt"

// TransportError marks a network or API failure while talking to Notion.
// The importer treats it as fatal for the whole run.
type TransportError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("notion: %s: status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("notion: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func transportErr(op string, err error) *TransportError {
	return &TransportError{Op: op, Err: err}
}
