// Copyright © 2018 One Concern

// Package status declares error constants returned by
// implementations of the Store interface.
//
// NOTE: such constants are located in a separate package to avoid
// creating undue cyclical dependencies between pkg/storage and one
// of its implementations.
package status

import "github.com/pkg/errors"

var (
	// ErrNotExists indicates that the fetched entry does not exist on
	// storage
	ErrNotExists = errors.New("entry doesn't exist")

	// ErrNotSupported indicates that the backend does not support
	// this call
	ErrNotSupported = errors.New("not supported")
)
