package model

import (
	"bytes"

	"github.com/pkg/errors"

	"github.com/oneconcern/gitlite/pkg/model/status"
)

// headerField is one named header of a commit or tag. A name may occur
// several times (e.g. "parent"), so values are kept as an ordered list.
type headerField struct {
	name   string
	values []string
}

// headerList preserves header declaration order, which the canonical
// byte form depends on.
type headerList struct {
	fields []headerField
}

// Get returns all values recorded for a header name, in order
func (h *headerList) Get(name string) []string {
	for _, f := range h.fields {
		if f.name == name {
			out := make([]string, len(f.values))
			copy(out, f.values)
			return out
		}
	}
	return nil
}

// First returns the first value recorded for a header name, or ""
func (h *headerList) First(name string) string {
	vs := h.Get(name)
	if len(vs) == 0 {
		return ""
	}
	return vs[0]
}

// Add appends a value under a header name, creating the field on first use
func (h *headerList) Add(name, value string) {
	for i := range h.fields {
		if h.fields[i].name == name {
			h.fields[i].values = append(h.fields[i].values, value)
			return
		}
	}
	h.fields = append(h.fields, headerField{name: name, values: []string{value}})
}

// parseHeadersAndMessage parses the header-plus-message grammar shared
// by commits and tags: `name value` lines, where continuation lines
// start with a single space, and a blank line separates the free-form
// message trailing the headers.
func parseHeadersAndMessage(data []byte) (headerList, string, error) {
	var h headerList

	rest := data
	for {
		if len(rest) == 0 {
			return headerList{}, "", errors.Wrap(status.ErrMalformedObject,
				"missing blank line between headers and message")
		}
		if rest[0] == '\n' {
			// blank line: everything after it is the message
			return h, string(rest[1:]), nil
		}
		nl := nextHeaderEnd(rest)
		line := rest[:nl]
		rest = rest[nl:]
		if len(rest) > 0 {
			rest = rest[1:] // consume the newline
		}

		sp := bytes.IndexByte(line, ' ')
		if sp <= 0 {
			return headerList{}, "", errors.Wrapf(status.ErrMalformedObject,
				"header line %q has no name-value separator", string(line))
		}
		name := string(line[:sp])
		value := string(bytes.ReplaceAll(line[sp+1:], []byte("\n "), []byte("\n")))
		h.Add(name, value)
	}
}

// nextHeaderEnd finds the end of the current header, skipping newlines
// followed by a space (continuation lines).
func nextHeaderEnd(data []byte) int {
	off := 0
	for {
		nl := bytes.IndexByte(data[off:], '\n')
		if nl < 0 {
			return len(data)
		}
		end := off + nl
		if end+1 < len(data) && data[end+1] == ' ' {
			off = end + 1
			continue
		}
		return end
	}
}

// serializeHeadersAndMessage is the inverse of parseHeadersAndMessage:
// header values containing newlines are emitted as continuation lines.
func serializeHeadersAndMessage(h headerList, message string) []byte {
	var buf bytes.Buffer
	for _, f := range h.fields {
		for _, v := range f.values {
			buf.WriteString(f.name)
			buf.WriteByte(' ')
			buf.WriteString(escapeContinuation(v))
			buf.WriteByte('\n')
		}
	}
	buf.WriteByte('\n')
	buf.WriteString(message)
	return buf.Bytes()
}

func escapeContinuation(v string) string {
	return string(bytes.ReplaceAll([]byte(v), []byte("\n"), []byte("\n ")))
}
