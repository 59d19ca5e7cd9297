// Package anim schedules animated property transitions.
//
// A [Scheduler] is a keyed registry of active runs, advanced once per frame.
// Each run interpolates one numeric value between two endpoints with an
// [Easing] curve and writes every intermediate value through its Apply
// callback. Runs are owned by the scheduler, never by the animated object:
// Apply reaches the owner by identity, and reports false once the owner is
// gone so the run is dropped without further callbacks.
package anim
