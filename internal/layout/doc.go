// Package layout implements the geometry and container policies behind the
// two-pass measure/arrange protocol.
//
// Coordinates are float64 so animated positions and sizes never get rounded
// mid-transition. Container policies ([MeasureStack], [ArrangeStack],
// [ArrangeAccordion], [ArrangeCanvas]) work entirely through the [Node]
// interface; the root flexui package binds its elements to it.
package layout
