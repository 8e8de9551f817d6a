package run

import "strings"

// Errors aggregates multiple errors, preserving order. The session
// teardown path uses it so a failed cleanup is surfaced without hiding
// the task error that preceded it.
type Errors struct {
	List []error
}

// Error implements error.
func (e *Errors) Error() string {
	if len(e.List) == 0 {
		return ""
	}
	msg := make([]string, len(e.List)+1)
	msg[0] = "multiple errors:"
	for n, err := range e.List {
		msg[n+1] = err.Error()
	}
	return strings.Join(msg, "\n")
}

// Unwrap exposes the aggregated errors to errors.Is/As.
func (e *Errors) Unwrap() []error {
	return e.List
}

// Add appends errors. nil entries are skipped.
func (e *Errors) Add(errs ...error) *Errors {
	for _, err := range errs {
		if err != nil {
			e.List = append(e.List, err)
		}
	}
	return e
}

// Err returns nil when no error was collected, the single error when
// exactly one was, and the aggregate otherwise.
func (e *Errors) Err() error {
	switch len(e.List) {
	case 0:
		return nil
	case 1:
		return e.List[0]
	}
	return e
}
