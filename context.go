package flexui

import "maps"

// Variables every scene context defines from its surface bounds.
const (
	VarScreenWidth  = "screenWidth"
	VarScreenHeight = "screenHeight"
)

// Context carries per-pass state through measure, arrange and style
// application: the layout filter, the variables computed properties are
// evaluated against, and the host window currently being arranged.
type Context struct {
	filter  func(*Element) bool
	vars    map[string]float64
	windows []HostWindow
}

// NewContext returns a context with the given variables and no filter.
func NewContext(vars map[string]float64) *Context {
	c := &Context{vars: make(map[string]float64, len(vars)+2)}
	maps.Copy(c.vars, vars)
	return c
}

// SetLayoutFilter installs fn as an additional layout test. Elements for
// which fn returns false are treated as disabled.
func (c *Context) SetLayoutFilter(fn func(*Element) bool) {
	c.filter = fn
}

// TestLayoutEnabled reports whether e takes part in the current layout
// pass.
func (c *Context) TestLayoutEnabled(e *Element) bool {
	if !e.LayoutEnabled() {
		return false
	}
	return c.filter == nil || c.filter(e)
}

// CurrentWindow returns the innermost host window enclosing the element
// being arranged, or nil.
func (c *Context) CurrentWindow() HostWindow {
	if len(c.windows) == 0 {
		return nil
	}
	return c.windows[len(c.windows)-1]
}

func (c *Context) pushWindow(w HostWindow) {
	c.windows = append(c.windows, w)
}

func (c *Context) popWindow() {
	c.windows = c.windows[:len(c.windows)-1]
}

// Var returns the value of a named variable.
func (c *Context) Var(name string) (float64, bool) {
	v, ok := c.vars[name]
	return v, ok
}

// SetVar defines or replaces a variable.
func (c *Context) SetVar(name string, v float64) {
	c.vars[name] = v
}

// Vars returns a copy of the variables.
func (c *Context) Vars() map[string]float64 {
	return maps.Clone(c.vars)
}
