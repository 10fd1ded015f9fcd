package board

import (
	"strconv"
	"strings"
)

// KeyPart is one component of a key: either an index or an axis label.
type KeyPart struct {
	index   int
	label   string
	byLabel bool
}

// ByIndex returns a key component addressing position i. Negative values wrap.
func ByIndex(i int) KeyPart {
	return KeyPart{index: i}
}

// ByLabel returns a key component addressing the position labelled l.
func ByLabel(l string) KeyPart {
	return KeyPart{label: l, byLabel: true}
}

// IsLabel reports whether the component is a label.
func (p KeyPart) IsLabel() bool { return p.byLabel }

// Index returns the raw index of an index component.
func (p KeyPart) Index() int { return p.index }

// Label returns the label of a label component.
func (p KeyPart) Label() string { return p.label }

func (p KeyPart) String() string {
	if p.byLabel {
		return strconv.Quote(p.label)
	}
	return strconv.Itoa(p.index)
}

// Key addresses a cell (full key) or a sub-board (partial key).
type Key []KeyPart

// Idx builds a key of indices.
func Idx(indices ...int) Key {
	k := make(Key, len(indices))
	for i, v := range indices {
		k[i] = ByIndex(v)
	}
	return k
}

// Labels builds a key of labels.
func Labels(labels ...string) Key {
	k := make(Key, len(labels))
	for i, l := range labels {
		k[i] = ByLabel(l)
	}
	return k
}

// With returns a copy of k extended by p.
func (k Key) With(p KeyPart) Key {
	out := make(Key, len(k)+1)
	copy(out, k)
	out[len(k)] = p
	return out
}

func (k Key) String() string {
	parts := make([]string, len(k))
	for i, p := range k {
		parts[i] = p.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Assignment is the right-hand side of a write: a single value, replicated
// across every addressed cell, or an ordered sequence distributed along the
// next axis. Sequences may nest to fill whole slabs in one call.
type Assignment[V any] struct {
	value V
	items []Assignment[V]
	seq   bool
}

// Scalar returns an assignment of a single value.
func Scalar[V any](v V) Assignment[V] {
	return Assignment[V]{value: v}
}

// Elements returns an element-wise assignment.
func Elements[V any](items ...Assignment[V]) Assignment[V] {
	return Assignment[V]{items: items, seq: true}
}

// Values returns an element-wise assignment of scalars.
func Values[V any](vs ...V) Assignment[V] {
	items := make([]Assignment[V], len(vs))
	for i, v := range vs {
		items[i] = Scalar(v)
	}
	return Elements(items...)
}

// IsScalar reports whether the assignment is a single value.
func (a Assignment[V]) IsScalar() bool { return !a.seq }

// Value returns the value of a scalar assignment.
func (a Assignment[V]) Value() V { return a.value }

// Len returns the number of elements of an element-wise assignment, or 1 for a scalar.
func (a Assignment[V]) Len() int {
	if !a.seq {
		return 1
	}
	return len(a.items)
}
