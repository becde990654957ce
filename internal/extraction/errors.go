package extraction

import (
	"errors"
	"fmt"
)

// ErrorCode classifies document-level extraction failures. Per-candidate
// misses (a line or row without a usable date or amount) are never surfaced
// as errors; the candidate is skipped and extraction continues.
type ErrorCode string

const (
	// ErrNoContent: the document supplied neither text nor tables.
	ErrNoContent ErrorCode = "NO_CONTENT"
	// ErrNoTransactionsFound: extraction ran but produced zero records.
	// A warning-level outcome, distinct from a crash.
	ErrNoTransactionsFound ErrorCode = "NO_TRANSACTIONS_FOUND"
	// ErrInvalidDocument: the input could not be decoded at all.
	ErrInvalidDocument ErrorCode = "INVALID_DOCUMENT"
)

// Error is a structured extraction failure.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// CodeOf returns the extraction error code carried by err, or "" if err is
// not an extraction error.
func CodeOf(err error) ErrorCode {
	var ee *Error
	if errors.As(err, &ee) {
		return ee.Code
	}
	return ""
}
