// Copyright © 2018 One Concern

// Package storage declares the K/V store contract backing the object
// database. Keys are relative slash-separated paths under the store
// root; values are opaque byte streams.
package storage

import (
	"context"
	"io"
)

// Store implementations know how to read and write entries of a K/V
// store.
//
// Typically this is something file system-like: the object database
// under a repository's metadata directory is the canonical client.
type Store interface {
	String() string
	Has(context.Context, string) (bool, error)
	Get(context.Context, string) (io.ReadCloser, error)
	Put(context.Context, string, io.Reader) error
	Delete(context.Context, string) error
	Keys(context.Context) ([]string, error)
}
