// Package status exports errors produced by the model package.
//
// NOTE: such constants are located in a separate package to avoid
// creating undue cyclical dependencies between pkg/model and its
// consumers.
package status

import (
	"github.com/pkg/errors"
)

var (
	// ErrMalformedObject indicates that an object payload does not
	// match the grammar expected by its kind
	ErrMalformedObject = errors.New("malformed object payload")
)
