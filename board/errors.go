package board

import (
	"errors"
	"fmt"
)

var (
	// ErrTooManyDimensions is returned when a key has more components than the board has dimensions.
	ErrTooManyDimensions = errors.New("beyond: key has more components than the board has dimensions")

	// ErrPartialAccessDisallowed is returned in strict mode when a key addresses a sub-board.
	ErrPartialAccessDisallowed = errors.New("beyond: partial key not allowed in strict mode")

	// ErrIndexOutOfBounds is returned when an index is outside [0, size) after negative wraparound.
	ErrIndexOutOfBounds = errors.New("beyond: index out of bounds")

	// ErrUnknownLabel is returned when a label has no entry in a dimension's label table.
	ErrUnknownLabel = errors.New("beyond: unknown axis label")

	// ErrBroadcastSizeMismatch is returned when an element-wise assignment does not match the axis size.
	ErrBroadcastSizeMismatch = errors.New("beyond: broadcast size mismatch")

	// ErrNotScalar is returned when element-wise values are assigned to a single cell.
	ErrNotScalar = errors.New("beyond: cell assignment requires a scalar value")

	// ErrReadOnlyInsight is returned when writing through a read-only insight.
	ErrReadOnlyInsight = errors.New("beyond: insight is read-only")

	// ErrUnknownInsightKey is returned when an insight has no location for a key.
	ErrUnknownInsightKey = errors.New("beyond: unknown insight key")

	// ErrCellNotFound is returned when a full key addresses a cell that has no value.
	ErrCellNotFound = errors.New("beyond: cell has no value")

	// ErrEmptyKey is returned for keys with no components.
	ErrEmptyKey = errors.New("beyond: empty key")

	// ErrKeyLength is returned when a key addresses a cell where a view was requested, or the reverse.
	ErrKeyLength = errors.New("beyond: key length does not match the requested entity")

	// ErrInvalidDimension is returned when a dimension spec has a negative size or an empty label.
	ErrInvalidDimension = errors.New("beyond: invalid dimension")

	// ErrDuplicateLabel is returned when two indices of one dimension share a label.
	ErrDuplicateLabel = errors.New("beyond: duplicate axis label")

	// ErrUnknownShape is returned when a registry has no factory for a name.
	ErrUnknownShape = errors.New("beyond: unknown shape")
)

// KeyError describes a failed board operation on a specific key.
// It unwraps to the cause, which in turn wraps one of the sentinel errors above.
type KeyError struct {
	Op    string
	Key   Key
	Shape Shape
	Err   error
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("%v (%s key %s on a %d-dimensional board; expected a key like %s)",
		e.Err, e.Op, e.Key, e.Shape.NDim(), e.Shape.Pattern())
}

func (e *KeyError) Unwrap() error {
	return e.Err
}

// SizeError describes an element-wise assignment whose length differs from the target axis.
type SizeError struct {
	Axis string
	Want int
	Got  int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("%v: axis %q has size %d, got %d values", ErrBroadcastSizeMismatch, e.Axis, e.Want, e.Got)
}

func (e *SizeError) Unwrap() error {
	return ErrBroadcastSizeMismatch
}
