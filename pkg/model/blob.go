package model

// Blob holds opaque file content. Blobs have no internal structure, so
// the canonical byte form is the content itself.
type Blob struct {
	contents []byte
}

// NewBlob builds a blob over the given content
func NewBlob(contents []byte) *Blob {
	return &Blob{contents: contents}
}

// Kind returns the blob tag
func (b *Blob) Kind() Kind {
	return KindBlob
}

// Serialize yields the blob content verbatim
func (b *Blob) Serialize() []byte {
	return b.contents
}

// Deserialize adopts the payload verbatim. Every payload is a
// well-formed blob.
func (b *Blob) Deserialize(data []byte) error {
	b.contents = data
	return nil
}

// Contents returns the raw file content held by this blob
func (b *Blob) Contents() []byte {
	return b.contents
}
