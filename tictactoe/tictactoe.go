// Package tictactoe provides the default shape and line projections of a tic-tac-toe board.
package tictactoe

import (
	"fmt"

	"github.com/jacentio/beyond/board"
)

// Size is the side length of a tic-tac-toe board.
const Size = 3

// Shape returns the 3x3 rows x columns shape.
func Shape() (board.Shape, error) {
	return board.SquareShape(Size)
}

// New creates an empty 3x3 board.
func New[V any](config board.Config) (*board.Board[V], error) {
	config.DefaultShape = Shape
	return board.New[V](config)
}

// Lines returns read-only insights over every row, every column and both
// diagonals of a square 2-D board, in that order.
func Lines[V any](b *board.Board[V]) ([]*board.Insight[int, V], error) {
	shape := b.Shape()
	if shape.NDim() != 2 || shape[0].Size() != shape[1].Size() {
		return nil, fmt.Errorf("%w: lines need a square 2-dimensional board, got %s", board.ErrInvalidDimension, shape)
	}

	n := shape[0].Size()
	s := b.Store()
	opts := board.InsightOptions{ReadOnly: true}
	lines := make([]*board.Insight[int, V], 0, 2*n+2)

	for r := 0; r < n; r++ {
		line, err := board.NewLine(s, board.Idx(r, 0), []int{0, 1}, opts)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", r, err)
		}
		lines = append(lines, line)
	}
	for c := 0; c < n; c++ {
		line, err := board.NewLine(s, board.Idx(0, c), []int{1, 0}, opts)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", c, err)
		}
		lines = append(lines, line)
	}

	diag, err := board.NewDiagonal(s, opts)
	if err != nil {
		return nil, fmt.Errorf("diagonal: %w", err)
	}
	anti, err := board.NewAntiDiagonal(s, opts)
	if err != nil {
		return nil, fmt.Errorf("anti-diagonal: %w", err)
	}
	return append(lines, diag, anti), nil
}
