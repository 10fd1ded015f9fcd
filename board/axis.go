package board

import (
	"fmt"
	"slices"

	"github.com/jacentio/beyond/internal/coord"
)

// Axis is a view of the sub-board below a resolved path. It stores nothing:
// every read and write goes back through the Store, so two views of the same
// path always agree.
type Axis[V any] struct {
	store *Store[V]
	path  []int
	dim   *Dimension
}

// Path returns the resolved coordinates the view is bound to.
func (a *Axis[V]) Path() []int { return slices.Clone(a.path) }

// Dimension returns the dimension indexed by the view.
func (a *Axis[V]) Dimension() *Dimension { return a.dim }

// Len returns the size of the indexed dimension.
func (a *Axis[V]) Len() int { return a.dim.Size() }

// Get returns the cell or nested view at p along the view's dimension.
func (a *Axis[V]) Get(p KeyPart) (Entry[V], error) {
	coords, key, err := a.resolve("get", p)
	if err != nil {
		return Entry[V]{}, err
	}
	return a.store.entryAt(key, coords)
}

// Cell returns the value at p; the view must be one dimension above the cells.
func (a *Axis[V]) Cell(p KeyPart) (V, error) {
	var zero V
	coords, key, err := a.resolve("get", p)
	if err != nil {
		return zero, err
	}
	if len(coords) != a.store.NDim() {
		return zero, a.store.keyError("get", key, ErrKeyLength)
	}
	e, err := a.store.entryAt(key, coords)
	if err != nil {
		return zero, err
	}
	return e.Value(), nil
}

// View returns the nested view at p.
func (a *Axis[V]) View(p KeyPart) (*Axis[V], error) {
	coords, key, err := a.resolve("get", p)
	if err != nil {
		return nil, err
	}
	if len(coords) == a.store.NDim() {
		return nil, a.store.keyError("get", key, ErrKeyLength)
	}
	return a.store.axisAt(coords), nil
}

// Set writes v at p along the view's dimension, broadcasting as Store.Set does.
func (a *Axis[V]) Set(p KeyPart, v Assignment[V]) error {
	coords, key, err := a.resolve("set", p)
	if err != nil {
		return err
	}
	return a.store.assignAt(key, coords, v)
}

// Assign broadcasts v over the whole view.
func (a *Axis[V]) Assign(v Assignment[V]) error {
	return a.store.assignAt(a.key(), slices.Clone(a.path), v)
}

func (a *Axis[V]) String() string {
	return fmt.Sprintf("Axis(path=%s, dimension=%q, size=%d)", coord.Format(a.path), a.dim.Name(), a.dim.Size())
}

// resolve extends the view's path by p.
func (a *Axis[V]) resolve(op string, p KeyPart) ([]int, Key, error) {
	key := a.key().With(p)
	i, err := a.dim.Index(p)
	if err != nil {
		return nil, key, a.store.keyError(op, key, err)
	}
	return coord.Extend(a.path, i), key, nil
}

func (a *Axis[V]) key() Key {
	return Idx(a.path...)
}
