package design

import (
	"fmt"
	"sort"
)

// Resolver looks up shared designs by class tag.
type Resolver interface {
	Resolve(class string) (*Node, bool)
}

// Registry owns the master copies of shared, named designs.
// It is read-only after construction and may be shared across scenes.
type Registry struct {
	designs map[string]*Node
}

var _ Resolver = (*Registry)(nil)

// NewRegistry copies nodes into a new registry. Every node needs a unique,
// non-empty class and must not itself be a Part.
func NewRegistry(nodes ...*Node) (*Registry, error) {
	r := &Registry{designs: make(map[string]*Node, len(nodes))}
	for _, n := range nodes {
		switch {
		case n == nil:
			return nil, fmt.Errorf("design: nil registry entry")
		case n.Class == "":
			return nil, &ValidationError{Path: "<registry>", Message: "registered design has no class"}
		case n.IsPart():
			return nil, &ValidationError{Path: n.Class, Message: "a part cannot be registered as a design"}
		}
		if _, dup := r.designs[n.Class]; dup {
			return nil, &ValidationError{Path: n.Class, Message: "duplicate design class"}
		}
		if err := Validate(n); err != nil {
			return nil, err
		}
		r.designs[n.Class] = n.Clone()
	}
	return r, nil
}

// Resolve returns the master design for class. Callers must not mutate it;
// [Link] clones it before splicing.
func (r *Registry) Resolve(class string) (*Node, bool) {
	n, ok := r.designs[class]
	return n, ok
}

// Classes returns the registered class tags in sorted order.
func (r *Registry) Classes() []string {
	classes := make([]string, 0, len(r.designs))
	for c := range r.designs {
		classes = append(classes, c)
	}
	sort.Strings(classes)
	return classes
}

// Len returns the number of registered designs.
func (r *Registry) Len() int {
	return len(r.designs)
}
