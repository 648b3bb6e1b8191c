package gchist

import (
	"errors"
	"fmt"
)

var (
	ErrInputNotFound = errors.New("input not found or unreadable")
	ErrEmptyInput    = errors.New("no sequences found")
	ErrDegenerate    = errors.New("no complete windows")
	ErrWindowSize    = errors.New("window size must be at least 2")
	ErrFormat        = errors.New("bad GC content histogram")
)

// DegenerateError says we scanned everything, but there was not a
// single complete window, so there is nothing to normalize.
type DegenerateError struct {
	NRecord    int
	WindowSize int
}

func (e *DegenerateError) Error() string {
	return fmt.Sprintf("%v: %d sequence(s), none with %d symbols that are not N",
		ErrDegenerate, e.NRecord, e.WindowSize-1)
}

func (e *DegenerateError) Unwrap() error { return ErrDegenerate }
