// Package model defines the object contract of the store: every entity
// kept in the object database (blob, tree, commit, tag) maps between a
// typed in-memory representation and a canonical byte serialization.
//
// The canonical bytes are the input to content addressing, so the
// round-trip law holds for every kind: deserializing a well-formed
// payload and serializing it again yields the exact same bytes.
package model
