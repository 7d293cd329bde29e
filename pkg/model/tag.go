package model

// Tag represents an annotated tag: a named, messaged pointer to
// another object. It shares the header-plus-message grammar with
// commits.
type Tag struct {
	headers headerList
	message string
}

// NewTag builds a tag from scratch
func NewTag() *Tag {
	return &Tag{}
}

// Kind returns the tag tag
func (t *Tag) Kind() Kind {
	return KindTag
}

// Serialize produces the canonical header-plus-message byte form
func (t *Tag) Serialize() []byte {
	return serializeHeadersAndMessage(t.headers, t.message)
}

// Deserialize parses the canonical byte form of a tag
func (t *Tag) Deserialize(data []byte) error {
	h, msg, err := parseHeadersAndMessage(data)
	if err != nil {
		return err
	}
	t.headers = h
	t.message = msg
	return nil
}

// Target returns the ID of the object this tag points to
func (t *Tag) Target() (ObjectID, error) {
	return ParseObjectID(t.headers.First("object"))
}

// TargetKind returns the kind of the object this tag points to
func (t *Tag) TargetKind() (Kind, error) {
	return ParseKind(t.headers.First("type"))
}

// Name returns the tag name header
func (t *Tag) Name() string {
	return t.headers.First("tag")
}

// Tagger returns the raw tagger header
func (t *Tag) Tagger() string {
	return t.headers.First("tagger")
}

// Message returns the tag message, trailing newline included
func (t *Tag) Message() string {
	return t.message
}

// SetHeader appends a header value
func (t *Tag) SetHeader(name, value string) {
	t.headers.Add(name, value)
}

// SetMessage sets the tag message
func (t *Tag) SetMessage(message string) {
	t.message = message
}
