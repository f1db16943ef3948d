package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceUnavailable marks a menu source that could not be opened or read.
	ErrSourceUnavailable = errors.New("menu source unavailable")

	// ErrMissingColumn is returned when the header lacks a required column.
	ErrMissingColumn = errors.New("menu header is missing a required column")

	ErrMalformedPrice = errors.New("malformed price")
	ErrNegativePrice  = errors.New("negative price")
	ErrMissingFields  = errors.New("row has too few fields")
)

// SourceError wraps the failure to open or read a menu source. It matches
// ErrSourceUnavailable with errors.Is.
type SourceError struct {
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("menu source %s unavailable: %v", e.Source, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

func (e *SourceError) Is(target error) bool {
	return target == ErrSourceUnavailable
}

// RowError describes a menu row that was skipped.
type RowError struct {
	Line     int
	Item     string
	RawPrice string
	Err      error
}

func (e RowError) Error() string {
	return fmt.Sprintf("line %d: invalid price %q for item %q: %v", e.Line, e.RawPrice, e.Item, e.Err)
}

func (e RowError) Unwrap() error {
	return e.Err
}
