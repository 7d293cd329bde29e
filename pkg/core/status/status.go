// Package status exports errors produced by the core package.
package status

import (
	"github.com/pkg/errors"
)

var (
	// ErrObjectNotFound indicates that no object with the requested ID
	// exists in the object database
	ErrObjectNotFound = errors.New("object not found")

	// ErrCorruptedObject indicates stored bytes that do not inflate or
	// do not carry a well-formed object envelope
	ErrCorruptedObject = errors.New("corrupted object")
)
