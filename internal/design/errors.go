package design

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownClass reports a Part whose class is not in the registry.
	ErrUnknownClass = errors.New("unknown design class")
	// ErrCycle reports a Part that resolves, directly or transitively, to itself.
	ErrCycle = errors.New("design resolution cycle")
	// ErrInvalidRoot reports an attempt to link a tree whose root is a Part.
	ErrInvalidRoot = errors.New("a part cannot be linked in place")
	// ErrInvalid reports a structurally invalid design node.
	ErrInvalid = errors.New("invalid design")
)

// ResolutionError is returned by [Link] when a Part cannot be resolved.
type ResolutionError struct {
	Class string   // class tag of the offending Part
	Trail []string // classes expanded on the way to the Part, outermost first
	Err   error    // ErrUnknownClass or ErrCycle
}

// Error implements the error interface.
func (e *ResolutionError) Error() string {
	var sb strings.Builder
	sb.WriteString("design: resolve part ")
	sb.WriteString(fmt.Sprintf("%q", e.Class))
	if len(e.Trail) > 0 {
		sb.WriteString(" via ")
		sb.WriteString(strings.Join(e.Trail, " > "))
	}
	sb.WriteString(": ")
	sb.WriteString(e.Err.Error())
	return sb.String()
}

// Unwrap returns the sentinel cause for use with errors.Is.
func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// ValidationError reports a node that breaks a structural rule.
type ValidationError struct {
	Path    string // slash-separated node path, e.g. "Scene_Title/contents[1]"
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("design: %s: %s", e.Path, e.Message)
}

// Unwrap makes every ValidationError match ErrInvalid.
func (e *ValidationError) Unwrap() error {
	return ErrInvalid
}

// LoadError reports a problem decoding a design file.
type LoadError struct {
	File string
	Path string
	Err  error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("design: load %s: %v", e.File, e.Err)
	}
	return fmt.Sprintf("design: load %s: %s: %v", e.File, e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *LoadError) Unwrap() error {
	return e.Err
}
