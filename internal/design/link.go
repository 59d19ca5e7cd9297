package design

import "slices"

// Link resolves every Part in the tree rooted at n, in place.
//
// Each Part child is replaced by a clone of the registry design for its
// class, and the clone is linked in turn so nested Parts resolve
// transitively. Link returns a [*ResolutionError] for an unknown class or
// when a class would be expanded inside itself. Linking a tree without
// Parts leaves it unchanged. A root that is itself a Part cannot be
// replaced in place; use [Resolve] for that.
func Link(n *Node, reg Resolver) error {
	if n.IsPart() {
		return &ResolutionError{Class: n.Class, Err: ErrInvalidRoot}
	}
	return link(n, reg, nil)
}

// Resolve returns a linked clone of the registry design named class.
func Resolve(class string, reg Resolver) (*Node, error) {
	master, ok := reg.Resolve(class)
	if !ok {
		return nil, &ResolutionError{Class: class, Err: ErrUnknownClass}
	}
	n := master.Clone()
	if err := link(n, reg, []string{class}); err != nil {
		return nil, err
	}
	return n, nil
}

// link resolves the children of n. expanding holds the classes whose
// registry designs enclose n, outermost first.
func link(n *Node, reg Resolver, expanding []string) error {
	if len(n.Children) == 0 {
		return nil
	}

	// Children are collected into a fresh slice and swapped in at the end,
	// so the list being walked is never modified.
	var resolved []*Node
	for i, child := range n.Children {
		trail := expanding
		if child.IsPart() {
			if slices.Contains(expanding, child.Class) {
				return &ResolutionError{Class: child.Class, Trail: slices.Clone(expanding), Err: ErrCycle}
			}
			master, ok := reg.Resolve(child.Class)
			if !ok {
				return &ResolutionError{Class: child.Class, Trail: slices.Clone(expanding), Err: ErrUnknownClass}
			}
			if resolved == nil {
				resolved = slices.Clone(n.Children)
			}
			child = master.Clone()
			resolved[i] = child
			trail = append(slices.Clip(expanding), child.Class)
		}
		if err := link(child, reg, trail); err != nil {
			return err
		}
	}
	if resolved != nil {
		n.Children = resolved
	}
	return nil
}
