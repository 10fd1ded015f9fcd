// Package chess provides the file and rank axes of a chess board.
package chess

import (
	"strconv"

	"golang.org/x/text/cases"

	"github.com/jacentio/beyond/board"
)

// Size is the side length of a standard chess board.
const Size = 8

const fileLetters = "abcdefgh"

// Files is the file axis, labelled "a" through "h". Labels match case-insensitively.
type Files struct {
	// N overrides the number of files. Zero means Size; at most 8 files have labels.
	N int
}

func (f Files) Name() string { return "files" }

func (f Files) Size() int {
	if f.N == 0 {
		return Size
	}
	return f.N
}

// Label returns the file letter for index i, or "" past "h".
func (f Files) Label(i int) string {
	if i < 0 || i >= len(fileLetters) {
		return ""
	}
	return fileLetters[i : i+1]
}

// FoldLabel case-folds a label so "E" and "e" name the same file.
func (f Files) FoldLabel(label string) string {
	return cases.Fold().String(label)
}

// Ranks is the rank axis, labelled with the decimal index ("0" through "7").
type Ranks struct {
	// N overrides the number of ranks. Zero means Size.
	N int
}

func (r Ranks) Name() string { return "ranks" }

func (r Ranks) Size() int {
	if r.N == 0 {
		return Size
	}
	return r.N
}

func (r Ranks) Label(i int) string { return strconv.Itoa(i) }

// Shape returns the files x ranks shape of a standard board.
func Shape() (board.Shape, error) {
	return board.NewShape(Files{}, Ranks{})
}

// New creates an empty chess board. Cells are addressed as (file, rank),
// e.g. board.Labels("e", "4").
func New[V any](config board.Config) (*board.Board[V], error) {
	config.DefaultShape = Shape
	return board.New[V](config)
}
