package board

import "fmt"

// InsightOptions configures an Insight.
type InsightOptions struct {
	// ReadOnly rejects every write with ErrReadOnlyInsight.
	ReadOnly bool
}

// Insight exposes an arbitrary set of board locations under keys of its own,
// such as the cells of a diagonal, without copying any data.
type Insight[K comparable, V any] struct {
	store    *Store[V]
	resolver map[K]Key
	readOnly bool
}

// NewInsight creates an Insight mapping each resolver key to a board key.
// Locations may be full keys (cells) or partial keys (views).
func NewInsight[K comparable, V any](store *Store[V], resolver map[K]Key, opts InsightOptions) *Insight[K, V] {
	r := make(map[K]Key, len(resolver))
	for k, loc := range resolver {
		r[k] = loc
	}
	return &Insight[K, V]{
		store:    store,
		resolver: r,
		readOnly: opts.ReadOnly,
	}
}

// ReadOnly reports whether writes are rejected.
func (in *Insight[K, V]) ReadOnly() bool { return in.readOnly }

// Len returns the number of keys.
func (in *Insight[K, V]) Len() int { return len(in.resolver) }

// Location returns the board key k is mapped to.
func (in *Insight[K, V]) Location(k K) (Key, bool) {
	loc, ok := in.resolver[k]
	return loc, ok
}

// Get returns the entry at the location of k.
func (in *Insight[K, V]) Get(k K) (Entry[V], error) {
	loc, err := in.locate(k)
	if err != nil {
		return Entry[V]{}, err
	}
	return in.store.Lookup(loc)
}

// Cell returns the value at the location of k, which must be a full key.
func (in *Insight[K, V]) Cell(k K) (V, error) {
	loc, err := in.locate(k)
	if err != nil {
		var zero V
		return zero, err
	}
	return in.store.Cell(loc)
}

// Set writes v at the location of k.
func (in *Insight[K, V]) Set(k K, v Assignment[V]) error {
	if in.readOnly {
		return ErrReadOnlyInsight
	}
	loc, err := in.locate(k)
	if err != nil {
		return err
	}
	return in.store.Set(loc, v)
}

func (in *Insight[K, V]) locate(k K) (Key, error) {
	loc, ok := in.resolver[k]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownInsightKey, k)
	}
	return loc, nil
}

// NewLine creates an Insight over the cells reached from start by repeatedly
// adding step, keyed 0, 1, 2, ... in walking order. The walk stops at the
// first coordinate outside the board.
func NewLine[V any](store *Store[V], start Key, step []int, opts InsightOptions) (*Insight[int, V], error) {
	if len(start) != store.NDim() {
		return nil, store.keyError("line", start, ErrKeyLength)
	}
	if len(step) != store.NDim() {
		return nil, fmt.Errorf("%w: step %v has %d components, board has %d dimensions",
			ErrKeyLength, step, len(step), store.NDim())
	}
	coords, err := store.resolve("line", start)
	if err != nil {
		return nil, err
	}

	still := true
	for _, d := range step {
		if d != 0 {
			still = false
		}
	}

	resolver := make(map[int]Key)
	for n := 0; inBounds(store.shape, coords); n++ {
		resolver[n] = Idx(coords...)
		if still {
			break
		}
		next := make([]int, len(coords))
		for i := range coords {
			next[i] = coords[i] + step[i]
		}
		coords = next
	}
	return &Insight[int, V]{store: store, resolver: resolver, readOnly: opts.ReadOnly}, nil
}

// NewDiagonal creates a line Insight from (0, 0) to (n-1, n-1) on a square 2-D board.
func NewDiagonal[V any](store *Store[V], opts InsightOptions) (*Insight[int, V], error) {
	if err := requireSquare(store.shape); err != nil {
		return nil, err
	}
	return NewLine(store, Idx(0, 0), []int{1, 1}, opts)
}

// NewAntiDiagonal creates a line Insight from (0, n-1) to (n-1, 0) on a square 2-D board.
func NewAntiDiagonal[V any](store *Store[V], opts InsightOptions) (*Insight[int, V], error) {
	if err := requireSquare(store.shape); err != nil {
		return nil, err
	}
	return NewLine(store, Idx(0, -1), []int{1, -1}, opts)
}

func requireSquare(shape Shape) error {
	if shape.NDim() != 2 || shape[0].Size() != shape[1].Size() {
		return fmt.Errorf("%w: diagonals need a square 2-dimensional board, got %s", ErrInvalidDimension, shape)
	}
	return nil
}

func inBounds(shape Shape, coords []int) bool {
	for i, c := range coords {
		if c < 0 || c >= shape[i].Size() {
			return false
		}
	}
	return true
}
