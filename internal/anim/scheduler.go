package anim

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/grindlemire/go-flexui/internal/debug"
)

// Key identifies a run: the owning object's identity plus the property name.
// At most one run is active per key.
type Key struct {
	Owner    uint64
	Property string
}

// Spec describes one transition.
type Spec struct {
	From, To float64
	Duration time.Duration
	Delay    time.Duration
	Easing   Easing // nil means Linear

	// Apply receives every interpolated value. It returns false when the
	// owner no longer exists; the run is then dropped without completing.
	Apply func(v float64) bool
}

type run struct {
	key     Key
	spec    Spec
	elapsed time.Duration
	dead    bool
}

// Scheduler is a keyed registry of active transitions.
// It is not safe for concurrent use; a single frame loop drives it.
type Scheduler struct {
	runs    map[Key]*run
	order   []*run
	metrics *metrics
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithMetrics registers transition counters and an active-run gauge on reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(s *Scheduler) {
		s.metrics = newMetrics(reg)
	}
}

// New creates an empty Scheduler.
func New(opts ...Option) *Scheduler {
	s := &Scheduler{runs: make(map[Key]*run)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var defaultScheduler = New()

// Default returns the process-wide scheduler.
func Default() *Scheduler {
	return defaultScheduler
}

// Start registers a run for key. A run already registered on the same key
// is discarded and never called again.
func (s *Scheduler) Start(key Key, spec Spec) {
	if spec.Easing == nil {
		spec.Easing = Linear
	}
	if old, ok := s.runs[key]; ok {
		old.dead = true
		s.metrics.supersede()
		debug.Log("anim: superseded %d.%s", key.Owner, key.Property)
	}
	r := &run{key: key, spec: spec}
	s.runs[key] = r
	s.order = append(s.order, r)
	s.metrics.start(len(s.runs))
}

// Advance moves every run forward by dt, in the order the runs were started.
// Runs started by an Apply callback first advance on the next call.
func (s *Scheduler) Advance(dt time.Duration) {
	if len(s.order) == 0 {
		return
	}
	current := s.order
	s.order = nil

	survivors := current[:0]
	for _, r := range current {
		if r.dead {
			continue
		}
		if s.step(r, dt) {
			survivors = append(survivors, r)
		}
	}
	s.order = append(survivors, s.order...)
}

// step advances one run and reports whether it is still active.
func (s *Scheduler) step(r *run, dt time.Duration) bool {
	r.elapsed += dt
	if r.elapsed < r.spec.Delay {
		return true
	}

	t := 1.0
	if r.spec.Duration > 0 {
		t = min(1, float64(r.elapsed-r.spec.Delay)/float64(r.spec.Duration))
	}
	if t >= 1 {
		ok := r.spec.Apply(r.spec.To)
		s.remove(r)
		if ok {
			s.metrics.complete(len(s.runs))
		} else {
			s.metrics.cancel(len(s.runs))
		}
		return false
	}

	v := r.spec.From + (r.spec.To-r.spec.From)*r.spec.Easing(t)
	if !r.spec.Apply(v) {
		s.remove(r)
		s.metrics.cancel(len(s.runs))
		debug.Log("anim: owner of %d.%s is gone", r.key.Owner, r.key.Property)
		return false
	}
	// Apply may have superseded this run.
	return !r.dead
}

func (s *Scheduler) remove(r *run) {
	r.dead = true
	if s.runs[r.key] == r {
		delete(s.runs, r.key)
	}
}

// Cancel drops the run registered on key. It reports whether one existed.
func (s *Scheduler) Cancel(key Key) bool {
	r, ok := s.runs[key]
	if !ok {
		return false
	}
	s.remove(r)
	s.metrics.cancel(len(s.runs))
	return true
}

// CancelOwner drops every run belonging to owner and returns how many were dropped.
func (s *Scheduler) CancelOwner(owner uint64) int {
	var n int
	for key, r := range s.runs {
		if key.Owner == owner {
			s.remove(r)
			s.metrics.cancel(len(s.runs))
			n++
		}
	}
	return n
}

// Active reports whether a run is registered on key.
func (s *Scheduler) Active(key Key) bool {
	_, ok := s.runs[key]
	return ok
}

// Running returns how many runs belong to owner.
func (s *Scheduler) Running(owner uint64) int {
	var n int
	for key := range s.runs {
		if key.Owner == owner {
			n++
		}
	}
	return n
}

// Target returns the end value of the run registered on key.
func (s *Scheduler) Target(key Key) (float64, bool) {
	r, ok := s.runs[key]
	if !ok {
		return 0, false
	}
	return r.spec.To, true
}

// Len returns the number of registered runs.
func (s *Scheduler) Len() int {
	return len(s.runs)
}
