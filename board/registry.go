package board

import "fmt"

// Registry holds named shape factories, one per game variant.
type Registry struct {
	names     []string
	factories map[string]ShapeFactory
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		names:     []string{},
		factories: make(map[string]ShapeFactory),
	}
}

// Register adds a factory under name, replacing any previous factory of that name.
func (r *Registry) Register(name string, factory ShapeFactory) {
	if _, ok := r.factories[name]; !ok {
		r.names = append(r.names, name)
	}
	r.factories[name] = factory
}

// Has returns true if a factory is registered under name.
func (r *Registry) Has(name string) bool {
	_, ok := r.factories[name]
	return ok
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Factory returns the factory registered under name.
func (r *Registry) Factory(name string) (ShapeFactory, error) {
	f, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, name)
	}
	return f, nil
}

// Shape builds the shape registered under name.
func (r *Registry) Shape(name string) (Shape, error) {
	f, err := r.Factory(name)
	if err != nil {
		return nil, err
	}
	return f()
}
