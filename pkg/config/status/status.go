// Package status exports errors produced by the config package.
package status

import (
	"github.com/pkg/errors"
)

var (
	// ErrConfigMissing indicates that no configuration file exists at
	// the expected path
	ErrConfigMissing = errors.New("configuration file missing")

	// ErrConfigParse indicates that the configuration file does not
	// parse as sectioned key-value text
	ErrConfigParse = errors.New("configuration file does not parse")

	// ErrMalformedConfig indicates that a required configuration key
	// is absent or does not parse as its expected type
	ErrMalformedConfig = errors.New("malformed configuration")
)
