package board

import (
	"fmt"
	"slices"
)

// Board is an N-dimensional grid of V values with named axes.
type Board[V any] struct {
	store *Store[V]
}

// New creates a Board over dims. With no dims, config.DefaultShape is used.
func New[V any](config Config, dims ...*Dimension) (*Board[V], error) {
	config.validate()

	shape := Shape(slices.Clone(dims))
	if len(shape) == 0 {
		s, err := config.DefaultShape()
		if err != nil {
			return nil, fmt.Errorf("default shape: %w", err)
		}
		shape = s
	}
	for i, d := range shape {
		if d == nil {
			return nil, fmt.Errorf("%w: dimension %d is nil", ErrInvalidDimension, i)
		}
	}

	config.Logger.Debug("board created",
		"board", config.ID,
		"shape", shape.String(),
	)
	return &Board[V]{store: NewStore[V](shape, config)}, nil
}

// NewSized creates a Board of generic dimensions from bare sizes.
// With no sizes, config.DefaultShape is used.
func NewSized[V any](config Config, sizes ...int) (*Board[V], error) {
	shape, err := ShapeOf(sizes...)
	if err != nil {
		return nil, err
	}
	return New[V](config, shape...)
}

// ID returns the board identity used in log output.
func (b *Board[V]) ID() string { return b.store.ID() }

// Shape returns the board's shape.
func (b *Board[V]) Shape() Shape { return b.store.Shape() }

// NDim returns the number of dimensions.
func (b *Board[V]) NDim() int { return b.store.NDim() }

// Store returns the backing store, for building insights.
func (b *Board[V]) Store() *Store[V] { return b.store }

// Len returns the number of cells holding a value.
func (b *Board[V]) Len() int { return b.store.Len() }

// Get resolves key to a cell value or a view.
func (b *Board[V]) Get(key Key) (Entry[V], error) { return b.store.Lookup(key) }

// Cell returns the value at a full key.
func (b *Board[V]) Cell(key Key) (V, error) { return b.store.Cell(key) }

// View returns the sub-board at a partial key.
func (b *Board[V]) View(key Key) (*Axis[V], error) { return b.store.View(key) }

// Set writes a at key; see Store.Set.
func (b *Board[V]) Set(key Key, a Assignment[V]) error { return b.store.Set(key, a) }

// Has reports whether the cell at a full key holds a value.
func (b *Board[V]) Has(key Key) (bool, error) { return b.store.Has(key) }

// Delete clears the cells at or below key.
func (b *Board[V]) Delete(key Key) (int, error) { return b.store.Delete(key) }

// Items returns every stored cell ordered by coordinates.
func (b *Board[V]) Items() []Item[V] { return b.store.Items() }
