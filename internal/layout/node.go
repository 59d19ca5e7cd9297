package layout

// Node is anything a container policy can measure and arrange.
// The policies work entirely with this interface, enabling custom implementations.
type Node interface {
	// Measure computes the node's desired size given the maximum space
	// offered by its parent.
	Measure(constraint Size)

	// DesiredSize returns the result of the last Measure call.
	DesiredSize() Size

	// Arrange positions the node inside area (in the parent's content-box
	// space) and returns the area actually consumed.
	Arrange(area Rect) Rect

	// LayoutEnabled reports whether the node takes part in layout.
	// Disabled nodes are neither measured nor arranged and reserve no space.
	LayoutEnabled() bool

	// Alignment returns how the node sits inside its layout slot.
	Alignment() Alignment
}
