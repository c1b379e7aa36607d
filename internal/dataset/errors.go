package dataset

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotLoaded is returned when a snapshot is requested before the first
// successful load.
var ErrNotLoaded = errors.New("dataset not loaded")

// UnavailableError reports a required data source that could not be
// located. Fatal to the load; recoverable only by fixing provisioning and
// retrying.
type UnavailableError struct {
	// Source is the logical source name, e.g. "orders".
	Source string
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("data source %q unavailable", e.Source)
}

// LoadError reports a source that was found but could not be read or
// parsed. Fatal to the load.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading data source %q: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// SchemaError reports a table missing columns a downstream stage requires.
// It carries the full expected and found column lists so the message names
// exactly what is wrong with the source.
type SchemaError struct {
	Table    string
	Expected []string
	Found    []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("table %q is missing required columns: expected [%s], found [%s]",
		e.Table, strings.Join(e.Expected, ", "), strings.Join(e.Found, ", "))
}

// DuplicateKeyError reports a secondary join source containing the same key
// more than once. Joining such a source would multiply primary rows, so the
// load is rejected instead.
type DuplicateKeyError struct {
	Source string
	Key    string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("data source %q has duplicate key %q", e.Source, e.Key)
}
