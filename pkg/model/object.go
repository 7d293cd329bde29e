package model

// Object is the contract every stored entity kind satisfies.
//
// There is no valid zero object: instances come either from a fresh
// build (e.g. NewBlob) or from Deserialize on previously serialized
// bytes.
type Object interface {
	// Kind returns the fixed tag of the concrete kind
	Kind() Kind

	// Serialize produces the canonical byte form used for content
	// hashing and compression
	Serialize() []byte

	// Deserialize reconstructs the typed representation from a
	// canonical byte form
	Deserialize(data []byte) error
}

// NewObject returns an empty instance of the given kind, ready for
// Deserialize. The storage layer uses this to dispatch on the kind tag
// read from an object envelope.
func NewObject(kind Kind) (Object, error) {
	switch kind {
	case KindBlob:
		return &Blob{}, nil
	case KindTree:
		return &Tree{}, nil
	case KindCommit:
		return &Commit{}, nil
	case KindTag:
		return &Tag{}, nil
	default:
		return nil, &UnsupportedKind{Tag: string(kind)}
	}
}
