package model

// Commit represents a snapshot of the tree together with its ancestry
// and authorship headers.
//
// Header order is preserved from the bytes the commit was parsed from,
// as the content address depends on it.
type Commit struct {
	headers headerList
	message string
}

// NewCommit builds a commit from scratch. Headers are emitted in the
// order they are added.
func NewCommit() *Commit {
	return &Commit{}
}

// Kind returns the commit tag
func (c *Commit) Kind() Kind {
	return KindCommit
}

// Serialize produces the canonical header-plus-message byte form
func (c *Commit) Serialize() []byte {
	return serializeHeadersAndMessage(c.headers, c.message)
}

// Deserialize parses the canonical byte form of a commit
func (c *Commit) Deserialize(data []byte) error {
	h, msg, err := parseHeadersAndMessage(data)
	if err != nil {
		return err
	}
	c.headers = h
	c.message = msg
	return nil
}

// Tree returns the ID of the tree snapshot this commit records
func (c *Commit) Tree() (ObjectID, error) {
	return ParseObjectID(c.headers.First("tree"))
}

// Parents returns the IDs of the parent commits, in header order.
// A root commit has none.
func (c *Commit) Parents() ([]ObjectID, error) {
	vs := c.headers.Get("parent")
	out := make([]ObjectID, 0, len(vs))
	for _, v := range vs {
		id, err := ParseObjectID(v)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

// Author returns the raw author header
func (c *Commit) Author() string {
	return c.headers.First("author")
}

// Committer returns the raw committer header
func (c *Commit) Committer() string {
	return c.headers.First("committer")
}

// Message returns the commit message, trailing newline included
func (c *Commit) Message() string {
	return c.message
}

// SetHeader appends a header value (multi-valued headers such as
// "parent" may be set repeatedly)
func (c *Commit) SetHeader(name, value string) {
	c.headers.Add(name, value)
}

// SetMessage sets the commit message
func (c *Commit) SetMessage(message string) {
	c.message = message
}
