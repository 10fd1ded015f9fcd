package board

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jacentio/beyond/internal/coord"
)

// Store holds the cells of a board keyed by normalized coordinate tuples and
// resolves full or partial keys against the board's shape.
type Store[V any] struct {
	shape  Shape
	cells  map[string]Item[V]
	config Config
}

// Item is a stored cell: its normalized coordinates and value.
type Item[V any] struct {
	// Coords holds one normalized index per dimension.
	Coords []int

	// Value is the leaf value stored at Coords.
	Value V
}

// Entry is the result of a lookup: either a cell value or a view over a sub-board.
type Entry[V any] struct {
	value V
	axis  *Axis[V]
}

// IsCell reports whether the entry holds a leaf value.
func (e Entry[V]) IsCell() bool { return e.axis == nil }

// Value returns the leaf value of a cell entry.
func (e Entry[V]) Value() V { return e.value }

// Axis returns the view of a sub-board entry, or nil for a cell entry.
func (e Entry[V]) Axis() *Axis[V] { return e.axis }

// NewStore creates an empty Store for shape.
func NewStore[V any](shape Shape, config Config) *Store[V] {
	config.validate()
	return &Store[V]{
		shape:  shape,
		cells:  make(map[string]Item[V]),
		config: config,
	}
}

// Shape returns the store's shape.
func (s *Store[V]) Shape() Shape { return s.shape }

// NDim returns the number of dimensions.
func (s *Store[V]) NDim() int { return len(s.shape) }

// ID returns the board identity used in log output.
func (s *Store[V]) ID() string { return s.config.ID }

// Len returns the number of cells holding a value.
func (s *Store[V]) Len() int { return len(s.cells) }

// Lookup resolves key to a cell value (full key) or a view (partial key).
func (s *Store[V]) Lookup(key Key) (Entry[V], error) {
	coords, err := s.resolve("get", key)
	if err != nil {
		return Entry[V]{}, err
	}
	return s.entryAt(key, coords)
}

// Cell returns the value at a full key.
func (s *Store[V]) Cell(key Key) (V, error) {
	var zero V
	coords, err := s.resolve("get", key)
	if err != nil {
		return zero, err
	}
	if len(coords) != s.NDim() {
		return zero, s.keyError("get", key, ErrKeyLength)
	}
	e, err := s.entryAt(key, coords)
	if err != nil {
		return zero, err
	}
	return e.Value(), nil
}

// View returns the sub-board addressed by a partial key.
func (s *Store[V]) View(key Key) (*Axis[V], error) {
	coords, err := s.resolve("get", key)
	if err != nil {
		return nil, err
	}
	if len(coords) == s.NDim() {
		return nil, s.keyError("get", key, ErrKeyLength)
	}
	return s.axisAt(coords), nil
}

// Has reports whether the cell at a full key holds a value.
func (s *Store[V]) Has(key Key) (bool, error) {
	coords, err := s.resolve("get", key)
	if err != nil {
		return false, err
	}
	if len(coords) != s.NDim() {
		return false, s.keyError("get", key, ErrKeyLength)
	}
	_, ok := s.cells[coord.Encode(coords)]
	return ok, nil
}

// Set writes a at key. A full key takes a scalar. A partial key broadcasts:
// a scalar is replicated over every cell below the key, an element-wise
// assignment must match the size of the next axis and is distributed along it.
// All sizes are checked before any cell is written.
func (s *Store[V]) Set(key Key, a Assignment[V]) error {
	coords, err := s.resolve("set", key)
	if err != nil {
		return err
	}
	return s.assignAt(key, coords, a)
}

// Delete clears the cell at a full key, or every cell below a partial key.
// It returns the number of cells cleared.
func (s *Store[V]) Delete(key Key) (int, error) {
	coords, err := s.resolve("delete", key)
	if err != nil {
		return 0, err
	}
	encoded := coord.Encode(coords)
	if len(coords) == s.NDim() {
		if _, ok := s.cells[encoded]; !ok {
			return 0, nil
		}
		delete(s.cells, encoded)
		return 1, nil
	}

	prefix := encoded + "#"
	removed := 0
	for k := range s.cells {
		if strings.HasPrefix(k, prefix) {
			delete(s.cells, k)
			removed++
		}
	}
	return removed, nil
}

// Items returns every stored cell ordered by coordinates.
func (s *Store[V]) Items() []Item[V] {
	items := make([]Item[V], 0, len(s.cells))
	for _, item := range s.cells {
		items = append(items, Item[V]{Coords: slices.Clone(item.Coords), Value: item.Value})
	}
	slices.SortFunc(items, func(a, b Item[V]) int {
		return coord.Compare(a.Coords, b.Coords)
	})
	return items
}

// resolve validates key against the shape and returns its normalized coordinates.
func (s *Store[V]) resolve(op string, key Key) ([]int, error) {
	if len(key) == 0 {
		return nil, s.keyError(op, key, ErrEmptyKey)
	}
	if len(key) > s.NDim() {
		return nil, s.keyError(op, key, ErrTooManyDimensions)
	}
	if s.config.Strict && len(key) < s.NDim() {
		return nil, s.keyError(op, key, ErrPartialAccessDisallowed)
	}

	coords := make([]int, len(key))
	for i, p := range key {
		n, err := s.shape[i].Index(p)
		if err != nil {
			return nil, s.keyError(op, key, err)
		}
		coords[i] = n
	}
	return coords, nil
}

// entryAt looks up already-normalized coordinates.
func (s *Store[V]) entryAt(key Key, coords []int) (Entry[V], error) {
	if len(coords) < s.NDim() {
		return Entry[V]{axis: s.axisAt(coords)}, nil
	}
	item, ok := s.cells[coord.Encode(coords)]
	if !ok && !s.config.MissingAsZero {
		return Entry[V]{}, s.keyError("get", key, ErrCellNotFound)
	}
	return Entry[V]{value: item.Value}, nil
}

func (s *Store[V]) axisAt(coords []int) *Axis[V] {
	return &Axis[V]{
		store: s,
		path:  coords,
		dim:   s.shape[len(coords)],
	}
}

// write is a single planned cell update.
type write[V any] struct {
	coords []int
	value  V
}

// assignAt applies a at already-normalized coordinates.
func (s *Store[V]) assignAt(key Key, coords []int, a Assignment[V]) error {
	var writes []write[V]
	if err := s.plan(coords, a, &writes); err != nil {
		return s.keyError("set", key, err)
	}

	for _, w := range writes {
		s.cells[coord.Encode(w.coords)] = Item[V]{Coords: w.coords, Value: w.value}
	}

	if len(coords) < s.NDim() {
		s.config.Logger.Debug("broadcast assignment",
			"board", s.config.ID,
			"key", key.String(),
			"cells", len(writes),
		)
	}
	return nil
}

// plan expands a into the cell writes it implies, failing on the first size mismatch.
func (s *Store[V]) plan(coords []int, a Assignment[V], writes *[]write[V]) error {
	depth := len(coords)
	if depth == s.NDim() {
		if !a.IsScalar() {
			return fmt.Errorf("%w: got %d values for cell %s", ErrNotScalar, a.Len(), coord.Format(coords))
		}
		*writes = append(*writes, write[V]{coords: coords, value: a.value})
		return nil
	}

	dim := s.shape[depth]
	if !a.IsScalar() && len(a.items) != dim.Size() {
		return &SizeError{Axis: dim.Name(), Want: dim.Size(), Got: len(a.items)}
	}
	for i := 0; i < dim.Size(); i++ {
		item := a
		if !a.IsScalar() {
			item = a.items[i]
		}
		if err := s.plan(coord.Extend(coords, i), item, writes); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store[V]) keyError(op string, key Key, err error) error {
	s.config.Logger.Debug("rejected key",
		"board", s.config.ID,
		"op", op,
		"key", key.String(),
		"error", err,
	)
	return &KeyError{Op: op, Key: key, Shape: s.shape, Err: err}
}
