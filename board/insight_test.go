package board_test

import (
	"errors"
	"testing"

	"github.com/jacentio/beyond/board"
)

func TestInsight_ReadOnly(t *testing.T) {
	s := newStore(t, quietConfig(), 3, 3)
	_ = s.Set(board.Idx(1, 1), board.Scalar("X"))

	in := board.NewInsight(s, map[string]board.Key{
		"center": board.Idx(1, 1),
		"corner": board.Idx(0, 0),
	}, board.InsightOptions{ReadOnly: true})

	if !in.ReadOnly() {
		t.Error("expected ReadOnly true")
	}
	for _, k := range []string{"center", "corner", "missing"} {
		if err := in.Set(k, board.Scalar("O")); !errors.Is(err, board.ErrReadOnlyInsight) {
			t.Errorf("set %q: expected ErrReadOnlyInsight, got %v", k, err)
		}
	}

	got, err := in.Cell("center")
	if err != nil {
		t.Fatalf("cell: %v", err)
	}
	if got != "X" {
		t.Errorf("expected 'X', got %q", got)
	}
	if mustCell(t, s, board.Idx(1, 1)) != "X" {
		t.Error("expected board untouched by rejected writes")
	}
}

func TestInsight_WritesThrough(t *testing.T) {
	s := newStore(t, quietConfig(), 3, 3)

	in := board.NewInsight(s, map[int]board.Key{
		0: board.Idx(0, 2),
		1: board.Idx(2, 0),
	}, board.InsightOptions{})

	if err := in.Set(1, board.Scalar("O")); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got := mustCell(t, s, board.Idx(2, 0)); got != "O" {
		t.Errorf("expected 'O', got %q", got)
	}

	// Writes to the board are visible through the insight.
	_ = s.Set(board.Idx(0, 2), board.Scalar("X"))
	got, err := in.Cell(0)
	if err != nil {
		t.Fatalf("cell: %v", err)
	}
	if got != "X" {
		t.Errorf("expected 'X', got %q", got)
	}
	if in.Len() != 2 {
		t.Errorf("expected Len 2, got %d", in.Len())
	}
}

func TestInsight_UnknownKey(t *testing.T) {
	s := newStore(t, quietConfig(), 3, 3)
	in := board.NewInsight(s, map[string]board.Key{}, board.InsightOptions{})

	if _, err := in.Get("nowhere"); !errors.Is(err, board.ErrUnknownInsightKey) {
		t.Errorf("get: expected ErrUnknownInsightKey, got %v", err)
	}
	if _, err := in.Cell("nowhere"); !errors.Is(err, board.ErrUnknownInsightKey) {
		t.Errorf("cell: expected ErrUnknownInsightKey, got %v", err)
	}
	if err := in.Set("nowhere", board.Scalar("X")); !errors.Is(err, board.ErrUnknownInsightKey) {
		t.Errorf("set: expected ErrUnknownInsightKey, got %v", err)
	}
}

func TestInsight_PartialLocation(t *testing.T) {
	s := newStore(t, quietConfig(), 3, 3)
	in := board.NewInsight(s, map[string]board.Key{"top": board.Idx(0)}, board.InsightOptions{})

	if err := in.Set("top", board.Scalar("O")); err != nil {
		t.Fatalf("set: %v", err)
	}
	e, err := in.Get("top")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e.IsCell() {
		t.Fatal("expected a view for a partial location")
	}
	got, err := e.Axis().Cell(board.ByIndex(2))
	if err != nil {
		t.Fatalf("cell: %v", err)
	}
	if got != "O" {
		t.Errorf("expected 'O', got %q", got)
	}
}

func TestInsight_ResolverIsCopied(t *testing.T) {
	s := newStore(t, quietConfig(), 3, 3)
	resolver := map[int]board.Key{0: board.Idx(0, 0)}
	in := board.NewInsight(s, resolver, board.InsightOptions{})

	resolver[1] = board.Idx(1, 1)
	if _, ok := in.Location(1); ok {
		t.Error("expected later resolver changes to be ignored")
	}
	loc, ok := in.Location(0)
	if !ok || loc.String() != "(0, 0)" {
		t.Errorf("expected location (0, 0), got %v (%v)", loc, ok)
	}
}

func TestNewLine(t *testing.T) {
	s := newStore(t, quietConfig(), 4, 5)

	line, err := board.NewLine(s, board.Idx(0, 1), []int{1, 1}, board.InsightOptions{})
	if err != nil {
		t.Fatalf("new line: %v", err)
	}

	expected := []string{"(0, 1)", "(1, 2)", "(2, 3)", "(3, 4)"}
	if line.Len() != len(expected) {
		t.Fatalf("expected %d cells, got %d", len(expected), line.Len())
	}
	for i, want := range expected {
		loc, ok := line.Location(i)
		if !ok {
			t.Fatalf("missing location %d", i)
		}
		if loc.String() != want {
			t.Errorf("location %d: expected %s, got %s", i, want, loc)
		}
	}
}

func TestNewLine_ZeroStep(t *testing.T) {
	s := newStore(t, quietConfig(), 3, 3)

	line, err := board.NewLine(s, board.Idx(1, 1), []int{0, 0}, board.InsightOptions{})
	if err != nil {
		t.Fatalf("new line: %v", err)
	}
	if line.Len() != 1 {
		t.Errorf("expected a single cell, got %d", line.Len())
	}
}

func TestNewLine_Invalid(t *testing.T) {
	s := newStore(t, quietConfig(), 3, 3)

	tests := []struct {
		name     string
		start    board.Key
		step     []int
		expected error
	}{
		{"partial start", board.Idx(0), []int{1, 1}, board.ErrKeyLength},
		{"short step", board.Idx(0, 0), []int{1}, board.ErrKeyLength},
		{"start out of bounds", board.Idx(0, 3), []int{1, 0}, board.ErrIndexOutOfBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := board.NewLine(s, tt.start, tt.step, board.InsightOptions{})
			if !errors.Is(err, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, err)
			}
		})
	}
}

func TestNewDiagonals(t *testing.T) {
	s := newStore(t, quietConfig(), 3, 3)
	_ = s.Set(board.Idx(0), board.Values("a", "b", "c"))
	_ = s.Set(board.Idx(1), board.Values("d", "e", "f"))
	_ = s.Set(board.Idx(2), board.Values("g", "h", "i"))

	diag, err := board.NewDiagonal(s, board.InsightOptions{ReadOnly: true})
	if err != nil {
		t.Fatalf("diagonal: %v", err)
	}
	anti, err := board.NewAntiDiagonal(s, board.InsightOptions{ReadOnly: true})
	if err != nil {
		t.Fatalf("anti-diagonal: %v", err)
	}

	collect := func(in *board.Insight[int, string]) string {
		var out string
		for i := 0; i < in.Len(); i++ {
			v, err := in.Cell(i)
			if err != nil {
				t.Fatalf("cell %d: %v", i, err)
			}
			out += v
		}
		return out
	}

	if got := collect(diag); got != "aei" {
		t.Errorf("expected diagonal 'aei', got %q", got)
	}
	if got := collect(anti); got != "ceg" {
		t.Errorf("expected anti-diagonal 'ceg', got %q", got)
	}
}

func TestNewDiagonal_RequiresSquare(t *testing.T) {
	for _, sizes := range [][]int{{3, 4}, {3, 3, 3}, {3}} {
		s := newStore(t, quietConfig(), sizes...)
		if _, err := board.NewDiagonal(s, board.InsightOptions{}); !errors.Is(err, board.ErrInvalidDimension) {
			t.Errorf("sizes %v: expected ErrInvalidDimension, got %v", sizes, err)
		}
		if _, err := board.NewAntiDiagonal(s, board.InsightOptions{}); !errors.Is(err, board.ErrInvalidDimension) {
			t.Errorf("sizes %v: expected ErrInvalidDimension, got %v", sizes, err)
		}
	}
}
