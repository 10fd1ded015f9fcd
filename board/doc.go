// Package board provides an N-dimensional addressable grid with named axes.
//
// A board models positional game state: a tic-tac-toe grid, a chess board,
// or any rectangular grid of any rank. Cells are addressed by keys whose
// components are either indices or axis labels, and a key shorter than the
// board's rank addresses a sub-board view instead of a cell.
//
// # Key Features
//
//   - Label and index addressing per axis (chess file "e", rank "4")
//   - Negative index wraparound (-1 is the last position)
//   - Partial keys return lazy views that chain into further indexing
//   - Broadcast assignment of a scalar or an element-wise sequence
//   - Insights: named projections such as diagonals, without copying
//   - Strict mode rejecting partial keys
//
// # Axis Specs
//
// Every dimension is built from an [AxisSpec]:
//
//	type AxisSpec interface {
//	    Name() string
//	    Size() int
//	    Label(i int) string
//	}
//
// Specs whose labels match case-insensitively also implement [LabelFolder]:
//
//	type LabelFolder interface {
//	    FoldLabel(label string) string
//	}
//
// # Keys and Assignments
//
// Key components are built with [ByIndex] and [ByLabel], or whole keys with
// [Idx] and [Labels]. Writes take an [Assignment]: [Scalar] replicates one
// value over every addressed cell, [Elements] and [Values] distribute a
// sequence along the next axis:
//
//	b, _ := board.New[string](board.DefaultConfig())
//	b.Set(board.Idx(1, 1), board.Scalar("X"))
//	b.Set(board.Idx(0), board.Values("O", "X", "O"))
//
// # Configuration
//
// Use [DefaultConfig] for a permissive 3x3 default. Set Strict to require
// full keys everywhere:
//
//	cfg := board.DefaultConfig()
//	cfg.Strict = true
//
// # Errors
//
// Failed key operations return a [*KeyError] naming the key and the expected
// key shape. It unwraps to one of:
//
//   - [ErrTooManyDimensions] - key longer than the board's rank
//   - [ErrPartialAccessDisallowed] - partial key in strict mode
//   - [ErrIndexOutOfBounds] - index outside the axis after wraparound
//   - [ErrUnknownLabel] - label not defined by the axis
//   - [ErrBroadcastSizeMismatch] - sequence length differs from the axis size
//   - [ErrCellNotFound] - cell has no value
//
// Insights additionally return [ErrReadOnlyInsight] and [ErrUnknownInsightKey].
package board
