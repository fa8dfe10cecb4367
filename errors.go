package pie

import (
	"errors"
	"strconv"
)

// Sentinel errors for the pie package.
var (
	// ErrNoSurface is returned by Setup when no host surface is given.
	ErrNoSurface = errors.New("pie: no host surface")

	// ErrDestroyed is returned by any operation on a destroyed chart.
	ErrDestroyed = errors.New("pie: chart destroyed")

	// ErrAlreadySetUp is returned when Setup is called twice.
	ErrAlreadySetUp = errors.New("pie: chart already set up")

	// ErrInvalidValue is wrapped by ValueError.
	ErrInvalidValue = errors.New("pie: value must be finite and non-negative")

	// ErrInvalidOptions is returned for negative or non-finite dimensions.
	ErrInvalidOptions = errors.New("pie: width and height must be finite and non-negative")
)

// ValueError reports a data point whose value cannot be laid out.
type ValueError struct {
	Index int
	Key   string
	Value float64
}

func (e *ValueError) Error() string {
	return "pie: invalid value " + strconv.FormatFloat(e.Value, 'g', -1, 64) +
		" for key " + strconv.Quote(e.Key) + " at index " + strconv.Itoa(e.Index)
}

// Unwrap returns ErrInvalidValue.
func (e *ValueError) Unwrap() error { return ErrInvalidValue }
