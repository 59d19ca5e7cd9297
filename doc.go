// Package flexui is a retained-mode layout, style and animation engine for
// windows drawn by a fixed-function host.
//
// A design tree, loaded with internal/design and linked against a registry
// of shared parts, is turned into a live tree of Elements by NewScene. Each
// frame, Scene.Update applies pending visual states, measures and arranges
// the tree when its geometry is invalid, pushes changed rects and styles to
// the bound host windows, and advances running transitions.
package flexui
