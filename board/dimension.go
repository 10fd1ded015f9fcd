package board

import (
	"fmt"
	"strings"
)

// AxisSpec is implemented by every axis definition a board can be built from.
type AxisSpec interface {
	// Name returns the axis name (e.g., "files").
	Name() string

	// Size returns the number of positions along the axis.
	Size() int

	// Label returns the canonical label of index i, for 0 <= i < Size().
	Label(i int) string
}

// LabelFolder is implemented by axis specs whose labels match case-insensitively.
type LabelFolder interface {
	// FoldLabel maps an incoming label to the form used in the label table.
	// It is applied to the canonical labels at construction and to every lookup.
	FoldLabel(label string) string
}

// Dimension is one resolved axis of a board: a name, a size and a bijection
// between labels and indices. It is immutable once built.
type Dimension struct {
	name   string
	size   int
	labels []string
	index  map[string]int
	fold   func(string) string
}

// NewDimension builds a Dimension by asking spec to label each index in [0, size).
func NewDimension(spec AxisSpec) (*Dimension, error) {
	name, size := spec.Name(), spec.Size()
	if size < 0 {
		return nil, fmt.Errorf("%w: axis %q has negative size %d", ErrInvalidDimension, name, size)
	}

	d := &Dimension{
		name:   name,
		size:   size,
		labels: make([]string, size),
		index:  make(map[string]int, size),
	}
	if folder, ok := spec.(LabelFolder); ok {
		d.fold = folder.FoldLabel
	}

	for i := 0; i < size; i++ {
		label := spec.Label(i)
		if label == "" {
			return nil, fmt.Errorf("%w: axis %q has no label for index %d", ErrInvalidDimension, name, i)
		}
		folded := d.foldLabel(label)
		if prev, ok := d.index[folded]; ok {
			return nil, fmt.Errorf("%w: axis %q labels indices %d and %d as %q", ErrDuplicateLabel, name, prev, i, label)
		}
		d.labels[i] = label
		d.index[folded] = i
	}
	return d, nil
}

// Name returns the axis name.
func (d *Dimension) Name() string { return d.name }

// Size returns the number of positions along the axis.
func (d *Dimension) Size() int { return d.size }

// Labels returns the canonical labels in index order.
func (d *Dimension) Labels() []string {
	out := make([]string, len(d.labels))
	copy(out, d.labels)
	return out
}

// Label returns the canonical label for index i. Negative indices wrap.
func (d *Dimension) Label(i int) (string, error) {
	n, err := d.Normalize(i)
	if err != nil {
		return "", err
	}
	return d.labels[n], nil
}

// Resolve turns a key component into a raw index.
// Indices pass through unchanged (not yet normalized); labels are looked up.
func (d *Dimension) Resolve(p KeyPart) (int, error) {
	if !p.IsLabel() {
		return p.Index(), nil
	}
	i, ok := d.index[d.foldLabel(p.Label())]
	if !ok {
		return 0, fmt.Errorf("%w: %q on axis %q", ErrUnknownLabel, p.Label(), d.name)
	}
	return i, nil
}

// Normalize wraps a negative index by the axis size and checks bounds.
func (d *Dimension) Normalize(i int) (int, error) {
	n := i
	if n < 0 {
		n += d.size
	}
	if n < 0 || n >= d.size {
		return 0, fmt.Errorf("%w: index %d on axis %q of size %d", ErrIndexOutOfBounds, i, d.name, d.size)
	}
	return n, nil
}

// Index resolves and normalizes a key component in one step.
func (d *Dimension) Index(p KeyPart) (int, error) {
	i, err := d.Resolve(p)
	if err != nil {
		return 0, err
	}
	return d.Normalize(i)
}

func (d *Dimension) String() string {
	return fmt.Sprintf("Dimension(name=%q, size=%d)", d.name, d.size)
}

func (d *Dimension) foldLabel(label string) string {
	if d.fold == nil {
		return label
	}
	return d.fold(label)
}

// genericAxis labels index i of axis "name" as "name_i".
type genericAxis struct {
	name string
	size int
}

func (g genericAxis) Name() string       { return g.name }
func (g genericAxis) Size() int          { return g.size }
func (g genericAxis) Label(i int) string { return fmt.Sprintf("%s_%d", g.name, i) }

// NamedAxis returns a spec with fallback labels "name_0", "name_1", ...
func NamedAxis(name string, size int) AxisSpec {
	return genericAxis{name: name, size: size}
}

// Sized returns a generic dimension named "dim".
func Sized(size int) (*Dimension, error) {
	return NewDimension(NamedAxis("dim", size))
}

// Rows returns a generic dimension named "rows".
func Rows(size int) (*Dimension, error) {
	return NewDimension(NamedAxis("rows", size))
}

// Columns returns a generic dimension named "columns".
func Columns(size int) (*Dimension, error) {
	return NewDimension(NamedAxis("columns", size))
}

// Shape is the ordered sequence of dimensions of a board.
// Position in the shape is position in a key.
type Shape []*Dimension

// ShapeFactory builds a fresh shape, typically the default shape of a game variant.
type ShapeFactory func() (Shape, error)

// NewShape builds a shape from axis specs.
func NewShape(specs ...AxisSpec) (Shape, error) {
	shape := make(Shape, 0, len(specs))
	for _, spec := range specs {
		d, err := NewDimension(spec)
		if err != nil {
			return nil, err
		}
		shape = append(shape, d)
	}
	return shape, nil
}

// ShapeOf builds a shape of generic dimensions from bare sizes.
func ShapeOf(sizes ...int) (Shape, error) {
	shape := make(Shape, 0, len(sizes))
	for _, size := range sizes {
		d, err := Sized(size)
		if err != nil {
			return nil, err
		}
		shape = append(shape, d)
	}
	return shape, nil
}

// SquareShape returns a rows x columns shape with both sides of length size.
func SquareShape(size int) (Shape, error) {
	rows, err := Rows(size)
	if err != nil {
		return nil, err
	}
	cols, err := Columns(size)
	if err != nil {
		return nil, err
	}
	return Shape{rows, cols}, nil
}

// NDim returns the number of dimensions.
func (s Shape) NDim() int { return len(s) }

// Sizes returns the size of each dimension in order.
func (s Shape) Sizes() []int {
	sizes := make([]int, len(s))
	for i, d := range s {
		sizes[i] = d.Size()
	}
	return sizes
}

// Cells returns the number of cells a fully populated board of this shape holds.
func (s Shape) Cells() int {
	n := 1
	for _, d := range s {
		n *= d.Size()
	}
	return n
}

// Pattern renders the expected key form, e.g. "(?, ?)".
func (s Shape) Pattern() string {
	return "(" + strings.Repeat("?, ", max(len(s)-1, 0)) + strings.Repeat("?", min(len(s), 1)) + ")"
}

func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, d := range s {
		parts[i] = fmt.Sprintf("%s=%d", d.Name(), d.Size())
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
