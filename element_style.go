package flexui

import (
	"github.com/grindlemire/go-flexui/internal/anim"
	"github.com/grindlemire/go-flexui/internal/debug"
	"github.com/grindlemire/go-flexui/internal/design"
)

// SetValue changes numeric property p to v.
//
// With reset, any running transition on p is dropped and v is written
// immediately. Otherwise, if p declares a transition and the element is on
// a renderable surface, a transition from the current value toward v is
// started, replacing any earlier one. Without a transition or a surface the
// value is written immediately.
func (e *Element) SetValue(p design.Property, v float64, reset bool) {
	key := e.animKey(p)
	sched := e.scheduler()
	if reset {
		sched.Cancel(key)
		e.writeValue(p, v)
		return
	}

	if to, running := sched.Target(key); running && to == v {
		return
	}
	if e.style.Number(p) == v {
		sched.Cancel(key)
		return
	}

	tr, ok := e.design.FindTransition(p)
	if !ok || e.FindRenderableSurface() == nil {
		sched.Cancel(key)
		e.writeValue(p, v)
		return
	}

	easing, _ := anim.Lookup(tr.Easing)
	scene, id := e.scene, e.id
	sched.Start(key, anim.Spec{
		From:     e.style.Number(p),
		To:       v,
		Duration: tr.Duration,
		Delay:    tr.Delay,
		Easing:   easing,
		Apply: func(x float64) bool {
			el := scene.Element(id)
			if el == nil {
				return false
			}
			el.writeValue(p, x)
			return true
		},
	})
	debug.Log("flexui: animate %d.%s to %g over %s", id, p, v, tr.Duration)
}

// writeValue stores v and schedules layout and visual refresh.
func (e *Element) writeValue(p design.Property, v float64) {
	switch p {
	case design.Width:
		e.explicitWidth = true
	case design.Height:
		e.explicitHeight = true
	}
	e.style.setNumber(p, v)
	e.SetInvalidate(InvalidateLayout | InvalidateVisual)
}

// ApplyStyle applies every property present in s. Numeric values are
// evaluated against ctx and go through SetValue; the others are written
// immediately.
func (e *Element) ApplyStyle(ctx *Context, s design.Style, reset bool) {
	s.Each(func(p design.Property, n design.Number) {
		e.SetValue(p, n.Eval(ctx), reset)
	})

	changed := false
	if v, ok := s.Windowskin.Get(); ok && v != e.style.Windowskin {
		e.style.Windowskin = v
		changed = true
	}
	if v, ok := s.ColorTone.Get(); ok && v != e.style.ColorTone {
		e.style.ColorTone = v
		changed = true
	}
	if v, ok := s.FrameVisible.Get(); ok && v != e.style.FrameVisible {
		e.style.FrameVisible = v
		changed = true
	}
	if changed {
		e.SetInvalidate(InvalidateVisual)
	}
}

// ApplyStyleByName applies the variant for state. When there is no such
// variant the default one is applied instead and ApplyStyleByName returns
// false.
func (e *Element) ApplyStyleByName(ctx *Context, state string, reset bool) bool {
	v, ok := e.findVariant(state)
	if !ok {
		v = e.variants[0]
	}
	e.ApplyStyle(ctx, v.Style, reset)
	return ok
}

func (e *Element) findVariant(state string) (design.Variant, bool) {
	for _, v := range e.variants {
		if v.State == state {
			return v, true
		}
	}
	return design.Variant{}, false
}

// SetVisualState requests a new visual state. The variant is applied by the
// next style pass.
func (e *Element) SetVisualState(state string) {
	if e.state == state {
		return
	}
	e.state = state
	e.SetInvalidate(InvalidateStyle)
}

// UpdateStyle runs the style pass for e alone.
//
// The first pass after construction applies the default variant with reset.
// If an Opening variant exists it is then applied with reset too, and the
// element stays style-invalid so the following pass animates from the
// opening values to the requested state. Properties only the Opening
// variant sets animate back to the values they had before it was applied.
func (e *Element) UpdateStyle(ctx *Context) {
	if !e.IsInvalidate(InvalidateStyle) {
		return
	}
	e.UnsetInvalidate(InvalidateStyle)

	if e.IsInvalidate(InvalidateOpening) {
		e.UnsetInvalidate(InvalidateOpening)
		e.ApplyStyleByName(ctx, StateDefault, true)
		if v, ok := e.findVariant(StateOpening); ok && e.state != StateOpening {
			opened := e.capture(v.Style)
			e.opened = &opened
			e.ApplyStyle(ctx, v.Style, true)
			e.SetInvalidate(InvalidateStyle)
			return
		}
		if e.state != StateDefault {
			e.ApplyStyleByName(ctx, e.state, true)
		}
		return
	}

	if e.opened != nil {
		opened := *e.opened
		e.opened = nil
		v, ok := e.findVariant(e.state)
		if !ok {
			v = e.variants[0]
		}
		e.ApplyStyle(ctx, opened.Merge(v.Style), false)
		return
	}
	e.ApplyStyleByName(ctx, e.state, false)
}

// capture returns the current values of every property present in s.
// A width or height that is not explicitly styled is left out so that
// returning to it does not pin the axis.
func (e *Element) capture(s design.Style) design.Style {
	var out design.Style
	s.Each(func(p design.Property, _ design.Number) {
		if (p == design.Width && !e.explicitWidth) || (p == design.Height && !e.explicitHeight) {
			return
		}
		out.Set(p, design.Lit(e.style.Number(p)))
	})
	if s.Windowskin.IsSet() {
		out.Windowskin = design.Some(e.style.Windowskin)
	}
	if s.ColorTone.IsSet() {
		out.ColorTone = design.Some(e.style.ColorTone)
	}
	if s.FrameVisible.IsSet() {
		out.FrameVisible = design.Some(e.style.FrameVisible)
	}
	return out
}
