package model

import (
	"bytes"
	"sort"

	"github.com/pkg/errors"

	"github.com/oneconcern/gitlite/pkg/model/status"
)

// TreeEntry is one record of a directory listing: a mode, a name and
// the ID of the blob or subtree it points to.
//
// The mode is kept as the raw text parsed from the payload (e.g.
// "100644", "40000"): the canonical byte form does not zero-pad and
// re-rendering must not alter it.
type TreeEntry struct {
	Mode string
	Name string
	ID   ObjectID
}

// Tree is an ordered directory listing. Entry order is preserved
// exactly as parsed; writers producing fresh trees call Sort to get
// the canonical ordering before serializing.
type Tree struct {
	entries []TreeEntry
}

// NewTree builds a tree over the given entries
func NewTree(entries []TreeEntry) *Tree {
	return &Tree{entries: entries}
}

// Kind returns the tree tag
func (t *Tree) Kind() Kind {
	return KindTree
}

// Entries returns the directory records in serialization order
func (t *Tree) Entries() []TreeEntry {
	out := make([]TreeEntry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Sort orders entries the way the canonical format expects:
// lexicographically by name, with subtree names compared as if they
// carried a trailing slash.
func (t *Tree) Sort() {
	sort.SliceStable(t.entries, func(i, j int) bool {
		return t.sortKey(i) < t.sortKey(j)
	})
}

func (t *Tree) sortKey(i int) string {
	e := t.entries[i]
	if isSubtreeMode(e.Mode) {
		return e.Name + "/"
	}
	return e.Name
}

func isSubtreeMode(mode string) bool {
	return mode == "40000" || mode == "040000"
}

// Serialize produces the canonical record stream:
// `<mode> <name>\x00<20-byte id>` per entry.
func (t *Tree) Serialize() []byte {
	var buf bytes.Buffer
	for _, e := range t.entries {
		buf.WriteString(e.Mode)
		buf.WriteByte(' ')
		buf.WriteString(e.Name)
		buf.WriteByte(0)
		buf.Write(e.ID[:])
	}
	return buf.Bytes()
}

// Deserialize parses the canonical record stream
func (t *Tree) Deserialize(data []byte) error {
	entries := []TreeEntry{}
	rest := data
	for len(rest) > 0 {
		sp := bytes.IndexByte(rest, ' ')
		if sp <= 0 {
			return errors.Wrap(status.ErrMalformedObject, "tree record has no mode")
		}
		mode := string(rest[:sp])
		rest = rest[sp+1:]

		nul := bytes.IndexByte(rest, 0)
		if nul <= 0 {
			return errors.Wrap(status.ErrMalformedObject, "tree record has no name")
		}
		name := string(rest[:nul])
		rest = rest[nul+1:]

		if len(rest) < IDSize {
			return errors.Wrapf(status.ErrMalformedObject,
				"tree record %q has a truncated object ID", name)
		}
		id := MustNewObjectID(rest[:IDSize])
		rest = rest[IDSize:]

		entries = append(entries, TreeEntry{Mode: mode, Name: name, ID: id})
	}
	t.entries = entries
	return nil
}
