package design

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/grindlemire/go-flexui/internal/debug"
)

// Env supplies named values that computed properties are evaluated against.
type Env interface {
	Var(name string) (float64, bool)
}

// Number is a presence-tagged numeric property value. The zero Number is
// absent, which is distinct from an explicit 0.
//
// A Number is either a literal or a reference to an Env variable plus a
// constant offset.
type Number struct {
	set    bool
	ref    string
	offset float64
}

// Lit returns a literal Number.
func Lit(v float64) Number {
	return Number{set: true, offset: v}
}

// Ref returns a Number computed as env.Var(name) + offset.
func Ref(name string, offset float64) Number {
	return Number{set: true, ref: name, offset: offset}
}

// ParseNumber parses the string form of a Number: a plain numeric literal
// ("12.5"), a variable name ("screenWidth") or a variable with an offset
// ("screenWidth-40", "lineHeight+4").
func ParseNumber(s string) (Number, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Number{}, fmt.Errorf("empty number")
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		if !isFinite(v) {
			return Number{}, fmt.Errorf("number %q is not finite", s)
		}
		return Lit(v), nil
	}

	name, rest := s, ""
	if i := strings.IndexAny(s, "+-"); i > 0 {
		name, rest = strings.TrimSpace(s[:i]), strings.TrimSpace(s[i:])
	}
	if !validVarName(name) {
		return Number{}, fmt.Errorf("invalid number %q", s)
	}
	if rest == "" {
		return Ref(name, 0), nil
	}
	sign := 1.0
	if rest[0] == '-' {
		sign = -1
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(rest[1:]), 64)
	if err != nil || !isFinite(v) {
		return Number{}, fmt.Errorf("invalid offset in %q", s)
	}
	return Ref(name, sign*v), nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func validVarName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r == '.':
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// IsSet reports whether the value is present.
func (n Number) IsSet() bool { return n.set }

// IsComputed reports whether the value depends on an Env variable.
func (n Number) IsComputed() bool { return n.ref != "" }

// Eval resolves the value. An unknown variable evaluates as 0.
func (n Number) Eval(env Env) float64 {
	if n.ref == "" {
		return n.offset
	}
	if env == nil {
		debug.Log("design: no env to evaluate %q", n.ref)
		return n.offset
	}
	v, ok := env.Var(n.ref)
	if !ok {
		debug.Log("design: unknown variable %q", n.ref)
	}
	return v + n.offset
}

// String returns the parseable form of the value.
func (n Number) String() string {
	switch {
	case !n.set:
		return "<unset>"
	case n.ref == "":
		return strconv.FormatFloat(n.offset, 'g', -1, 64)
	case n.offset == 0:
		return n.ref
	case n.offset > 0:
		return n.ref + "+" + strconv.FormatFloat(n.offset, 'g', -1, 64)
	default:
		return n.ref + strconv.FormatFloat(n.offset, 'g', -1, 64)
	}
}
