package flexui

import (
	"fmt"
	"log/slog"

	"github.com/grindlemire/go-flexui/internal/anim"
)

// SceneOption is a functional option for configuring a Scene.
type SceneOption func(*Scene) error

// WithScheduler drives the scene's transitions with s instead of the
// process-wide scheduler.
func WithScheduler(s *anim.Scheduler) SceneOption {
	return func(sc *Scene) error {
		if s == nil {
			return fmt.Errorf("scheduler cannot be nil")
		}
		sc.scheduler = s
		return nil
	}
}

// WithSurface attaches the renderable surface at construction.
func WithSurface(s Surface) SceneOption {
	return func(sc *Scene) error {
		sc.surface = s
		return nil
	}
}

// WithBounds sets the root layout area used while no surface is attached.
func WithBounds(r Rect) SceneOption {
	return func(sc *Scene) error {
		if r.Width < 0 || r.Height < 0 {
			return fmt.Errorf("bounds cannot have negative size: %v", r)
		}
		sc.bounds = r
		return nil
	}
}

// WithLayoutFilter excludes elements for which fn returns false from layout.
func WithLayoutFilter(fn func(*Element) bool) SceneOption {
	return func(sc *Scene) error {
		sc.ctx.SetLayoutFilter(fn)
		return nil
	}
}

// WithVars defines variables computed properties can reference, in addition
// to screenWidth and screenHeight.
func WithVars(vars map[string]float64) SceneOption {
	return func(sc *Scene) error {
		for name, v := range vars {
			if name == VarScreenWidth || name == VarScreenHeight {
				return fmt.Errorf("variable %q is defined by the surface", name)
			}
			sc.ctx.SetVar(name, v)
		}
		return nil
	}
}

// WithLogger sets the logger for scene lifecycle events.
// The default discards everything unless FLEXUI_DEBUG is set.
func WithLogger(l *slog.Logger) SceneOption {
	return func(sc *Scene) error {
		if l == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		sc.logger = l
		return nil
	}
}

// WithPolicy uses p to lay out every element whose design class is class.
func WithPolicy(class string, p Policy) SceneOption {
	return func(sc *Scene) error {
		if class == "" || p == nil {
			return fmt.Errorf("policy override needs a class and a policy")
		}
		sc.policies[class] = p
		return nil
	}
}
