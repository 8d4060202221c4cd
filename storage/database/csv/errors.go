package csvdb

import "fmt"

// ReadError reports a table-level read or parse failure: I/O errors, a data
// row whose field count does not match the header, or a corrupt key cell.
type ReadError struct {
	Table string
	Err   error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading table %q: %v", e.Table, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError reports a table-level write failure. No partial state may be
// assumed persisted by the caller.
type WriteError struct {
	Table string
	Err   error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing table %q: %v", e.Table, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
