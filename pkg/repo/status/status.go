// Package status exports errors produced by the repo package.
//
// NOTE: such constants are located in a separate package to avoid
// creating undue cyclical dependencies between pkg/repo and its
// consumers.
package status

import (
	"github.com/pkg/errors"
)

var (
	// ErrNotARepository indicates that a path does not hold a valid
	// metadata directory
	ErrNotARepository = errors.New("not a repository")

	// ErrNotADirectory indicates that a file occupies a path where a
	// directory is expected
	ErrNotADirectory = errors.New("not a directory")

	// ErrNoRepositoryFound indicates that the upward search exhausted
	// all ancestors without finding a repository
	ErrNoRepositoryFound = errors.New("no repository found")

	// ErrAlreadyExists indicates an attempt to initialize over a
	// non-empty metadata directory
	ErrAlreadyExists = errors.New("repository already exists")

	// ErrUnsupportedFormatVersion indicates a configuration declaring
	// a repository format version other than 0
	ErrUnsupportedFormatVersion = errors.New("unsupported repository format version")
)
