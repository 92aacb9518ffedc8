// Package fields defines the collection field taxonomy used across the
// toolkit: the descriptor type and its builders, the layout/data field
// partition, the recursive flattener that derives the canonical storage
// shape, and the field-name humanizer.
//
// Everything in this package is a pure function over immutable value types.
// Field trees are built once from static configuration and shared freely
// between goroutines; no function here mutates a Field after construction.
package fields
