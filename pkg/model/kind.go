package model

import (
	"fmt"
)

// Kind is the tag identifying one of the four stored object kinds.
// The storage layer prefixes the canonical byte form with this tag
// before hashing.
type Kind string

const (
	// KindBlob tags opaque file content
	KindBlob Kind = "blob"

	// KindTree tags a directory listing
	KindTree Kind = "tree"

	// KindCommit tags a commit
	KindCommit Kind = "commit"

	// KindTag tags an annotated tag
	KindTag Kind = "tag"
)

// ParseKind maps a textual tag to a Kind, rejecting anything outside
// the closed set.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindBlob, KindTree, KindCommit, KindTag:
		return k, nil
	default:
		return "", &UnsupportedKind{Tag: s}
	}
}

func (k Kind) String() string {
	return string(k)
}

// UnsupportedKind is an error that's returned when an object tag does
// not belong to the closed set of kinds.
type UnsupportedKind struct {
	Tag string
}

func (e *UnsupportedKind) Error() string {
	return fmt.Sprintf("%q is not a valid object kind", e.Tag)
}
