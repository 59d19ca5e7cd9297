package design

import (
	"fmt"

	"github.com/grindlemire/go-flexui/internal/anim"
)

// Validate checks the structural rules of the subtree rooted at n: known
// kinds, valid orientations, transitions only on numeric properties with
// non-negative timings and known easings, and Parts carrying a class but
// nothing else.
func Validate(n *Node) error {
	return validate(n, label(n))
}

func label(n *Node) string {
	if n.Class != "" {
		return n.Class
	}
	return string(n.KindOrDefault())
}

func validate(n *Node, path string) error {
	fail := func(format string, args ...any) error {
		return &ValidationError{Path: path, Message: fmt.Sprintf(format, args...)}
	}

	if n.IsPart() {
		if n.Class == "" {
			return fail("part has no class")
		}
		if len(n.Children) > 0 {
			return fail("part %q cannot have children", n.Class)
		}
		return nil
	}
	if !kinds[n.KindOrDefault()] {
		return fail("unknown kind %q", n.Kind)
	}
	if !n.Orientation.Valid() {
		return fail("invalid orientation %s", n.Orientation)
	}
	if n.Kind == KindAccordion && n.Orientation.IsReverse() {
		return fail("accordion does not support orientation %s", n.Orientation)
	}

	seen := make(map[Property]bool, len(n.Transitions))
	for _, t := range n.Transitions {
		switch {
		case !t.Property.Numeric():
			return fail("transition on non-numeric property %q", t.Property)
		case seen[t.Property]:
			return fail("duplicate transition for %q", t.Property)
		case t.Duration < 0 || t.Delay < 0:
			return fail("transition for %q has negative timing", t.Property)
		}
		if _, ok := anim.Lookup(t.Easing); !ok {
			return fail("transition for %q uses unknown easing %q", t.Property, t.Easing)
		}
		seen[t.Property] = true
	}

	states := make(map[string]bool, len(n.Variants))
	for _, v := range n.Variants {
		if v.State == "" {
			return fail("variant has no state name")
		}
		if states[v.State] {
			return fail("duplicate variant %q", v.State)
		}
		states[v.State] = true
	}

	for i, child := range n.Children {
		if child == nil {
			return fail("contents[%d] is nil", i)
		}
		if err := validate(child, fmt.Sprintf("%s/%s[%d]", path, label(child), i)); err != nil {
			return err
		}
	}
	return nil
}
