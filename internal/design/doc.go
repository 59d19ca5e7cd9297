// Package design holds the static, declarative description of a UI.
//
// A design tree is made of [Node] values carrying a class tag, a sparse
// [Style], named [Variant] overrides and [Transition] declarations. Shared
// fragments live in a [Registry]; placeholder Part nodes refer to them by
// class and are replaced by private clones when the tree is passed to [Link].
// Design trees are immutable by convention once linked.
package design
