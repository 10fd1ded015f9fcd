package chess_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/jacentio/beyond/board"
	"github.com/jacentio/beyond/chess"
)

func newBoard(t *testing.T) *board.Board[string] {
	t.Helper()
	cfg := board.DefaultConfig()
	cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	b, err := chess.New[string](cfg)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	return b
}

func TestShape(t *testing.T) {
	shape, err := chess.Shape()
	if err != nil {
		t.Fatalf("shape: %v", err)
	}
	if shape.String() != "(files=8, ranks=8)" {
		t.Errorf("expected '(files=8, ranks=8)', got %q", shape.String())
	}

	files := shape[0].Labels()
	if files[0] != "a" || files[7] != "h" {
		t.Errorf("expected files a..h, got %v", files)
	}
	ranks := shape[1].Labels()
	if ranks[0] != "0" || ranks[7] != "7" {
		t.Errorf("expected ranks 0..7, got %v", ranks)
	}
}

func TestLabelsAndIndicesAddressSameCell(t *testing.T) {
	b := newBoard(t)

	if err := b.Set(board.Labels("e", "4"), board.Scalar("pawn")); err != nil {
		t.Fatalf("set: %v", err)
	}

	tests := []struct {
		name string
		key  board.Key
	}{
		{"labels", board.Labels("e", "4")},
		{"indices", board.Idx(4, 4)},
		{"mixed", board.Key{board.ByLabel("e"), board.ByIndex(4)}},
		{"upper case file", board.Labels("E", "4")},
		{"negative", board.Idx(-4, -4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := b.Cell(tt.key)
			if err != nil {
				t.Fatalf("cell: %v", err)
			}
			if got != "pawn" {
				t.Errorf("expected 'pawn', got %q", got)
			}
		})
	}
}

func TestUnknownFile(t *testing.T) {
	b := newBoard(t)

	_, err := b.Get(board.Labels("z"))
	if !errors.Is(err, board.ErrUnknownLabel) {
		t.Errorf("expected ErrUnknownLabel, got %v", err)
	}
	if _, err := b.Get(board.Labels("a", "8")); !errors.Is(err, board.ErrUnknownLabel) {
		t.Errorf("expected ErrUnknownLabel for rank 8, got %v", err)
	}
}

func TestOutOfBounds(t *testing.T) {
	b := newBoard(t)

	for _, i := range []int{8, -9} {
		if _, err := b.Get(board.Idx(i)); !errors.Is(err, board.ErrIndexOutOfBounds) {
			t.Errorf("get %d: expected ErrIndexOutOfBounds, got %v", i, err)
		}
	}
}

func TestFileView(t *testing.T) {
	b := newBoard(t)

	if err := b.Set(board.Labels("a"), board.Scalar("rook")); err != nil {
		t.Fatalf("set: %v", err)
	}

	file, err := b.View(board.Labels("A"))
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	for _, rank := range []string{"0", "3", "7"} {
		got, err := file.Cell(board.ByLabel(rank))
		if err != nil {
			t.Fatalf("cell %s: %v", rank, err)
		}
		if got != "rook" {
			t.Errorf("rank %s: expected 'rook', got %q", rank, got)
		}
	}
	if b.Len() != 8 {
		t.Errorf("expected 8 cells, got %d", b.Len())
	}
}

func TestFiles_FoldLabel(t *testing.T) {
	tests := []struct {
		label    string
		expected string
	}{
		{"e", "e"},
		{"E", "e"},
		{"H", "h"},
	}

	for _, tt := range tests {
		if result := (chess.Files{}).FoldLabel(tt.label); result != tt.expected {
			t.Errorf("FoldLabel(%q) = %q, want %q", tt.label, result, tt.expected)
		}
	}
}

func TestFiles_Sizes(t *testing.T) {
	small, err := board.NewDimension(chess.Files{N: 4})
	if err != nil {
		t.Fatalf("dimension: %v", err)
	}
	if small.Size() != 4 {
		t.Errorf("expected 4 files, got %d", small.Size())
	}

	// Only eight files have letters.
	if _, err := board.NewDimension(chess.Files{N: 9}); !errors.Is(err, board.ErrInvalidDimension) {
		t.Errorf("expected ErrInvalidDimension, got %v", err)
	}

	ranks, err := board.NewDimension(chess.Ranks{N: 10})
	if err != nil {
		t.Fatalf("dimension: %v", err)
	}
	if label, _ := ranks.Label(9); label != "9" {
		t.Errorf("expected label '9', got %q", label)
	}
}
