package anim

import (
	"math"
	"sort"

	"github.com/charmbracelet/harmonica"
)

// Easing maps normalized time t in [0, 1] to normalized progress.
// Every easing returns 0 at t=0 and 1 at t=1.
type Easing func(t float64) float64

// Linear advances at constant speed.
func Linear(t float64) float64 { return t }

// InQuad starts slow and accelerates.
func InQuad(t float64) float64 { return t * t }

// OutQuad starts fast and decelerates.
func OutQuad(t float64) float64 { return t * (2 - t) }

// InOutQuad accelerates then decelerates.
func InOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// InCubic is a steeper InQuad.
func InCubic(t float64) float64 { return t * t * t }

// OutCubic is a steeper OutQuad.
func OutCubic(t float64) float64 {
	u := t - 1
	return u*u*u + 1
}

// InOutCubic is a steeper InOutQuad.
func InOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := 2*t - 2
	return 0.5*u*u*u + 1
}

// OutBack overshoots the target slightly before settling.
func OutBack(t float64) float64 {
	const c1 = 1.70158
	const c3 = c1 + 1
	u := t - 1
	return 1 + c3*u*u*u + c1*u*u
}

// springSteps is the number of samples taken from the simulated spring.
const springSteps = 120

// Spring returns an easing sampled from a damped harmonic spring that starts
// at 0 and is pulled toward 1 for one simulated second. Low damping ratios
// overshoot; the curve is pinned to exactly 1 at t=1.
func Spring(angularFrequency, dampingRatio float64) Easing {
	samples := make([]float64, springSteps+1)
	s := harmonica.NewSpring(harmonica.FPS(springSteps), angularFrequency, dampingRatio)
	var pos, vel float64
	for i := 1; i < springSteps; i++ {
		pos, vel = s.Update(pos, vel, 1)
		samples[i] = pos
	}
	samples[springSteps] = 1

	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		f := t * springSteps
		i := int(math.Floor(f))
		frac := f - float64(i)
		return samples[i] + (samples[i+1]-samples[i])*frac
	}
}

var easings = map[string]Easing{
	"linear":       Linear,
	"in-quad":      InQuad,
	"out-quad":     OutQuad,
	"in-out-quad":  InOutQuad,
	"in-cubic":     InCubic,
	"out-cubic":    OutCubic,
	"in-out-cubic": InOutCubic,
	"out-back":     OutBack,
	"spring":       Spring(12, 0.4),
}

// Lookup returns the easing registered under name. The empty name is linear.
func Lookup(name string) (Easing, bool) {
	if name == "" {
		return Linear, true
	}
	e, ok := easings[name]
	return e, ok
}

// Names returns the registered easing names in sorted order.
func Names() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
