// Package config loads, synthesizes and persists the sectioned
// key-value configuration kept inside a repository's metadata
// directory.
//
// Values are plain strings: numeric or boolean keys are parsed on
// demand by callers, never coerced by the store itself.
package config

import (
	"bytes"
	"os"
	"strconv"

	"github.com/go-ini/ini"
	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/oneconcern/gitlite/pkg/config/status"
)

func init() {
	// align with the format written by the reference tooling: no
	// column alignment of '=' signs, but keep spaces around them
	ini.PrettyFormat = false
	ini.PrettyEqual = true
}

// Config wraps a parsed sectioned key-value file. Section declaration
// order and key insertion order are preserved through a load/write
// cycle.
type Config struct {
	file *ini.File
}

// Default returns the configuration written into a freshly created
// repository: a single core section declaring format version 0, no
// file mode tracking and a non-bare layout.
func Default() *Config {
	f := ini.Empty()
	sec, err := f.NewSection("core")
	if err != nil {
		panic(err)
	}
	for _, kv := range [][2]string{
		{"repositoryformatversion", "0"},
		{"filemode", "false"},
		{"bare", "false"},
	} {
		if _, err := sec.NewKey(kv[0], kv[1]); err != nil {
			panic(err)
		}
	}
	return &Config{file: f}
}

// Load reads and parses the configuration file at path
func Load(afs afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(afs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(status.ErrConfigMissing, "no configuration at %s", path)
		}
		return nil, errors.Wrapf(err, "reading configuration at %s", path)
	}
	f, err := ini.Load(data)
	if err != nil {
		return nil, errors.Wrapf(status.ErrConfigParse, "parsing %s: %v", path, err)
	}
	return &Config{file: f}, nil
}

// Write serializes the configuration to path, overwriting any previous
// content. Output order is deterministic: sections in declaration
// order, keys in insertion order.
func (c *Config) Write(afs afero.Fs, path string) error {
	var buf bytes.Buffer
	if _, err := c.file.WriteTo(&buf); err != nil {
		return errors.Wrapf(err, "serializing configuration for %s", path)
	}
	if err := afero.WriteFile(afs, path, buf.Bytes(), 0644); err != nil {
		return errors.Wrapf(err, "writing configuration to %s", path)
	}
	return nil
}

// Get returns the string value recorded under section/key, with a
// found indicator
func (c *Config) Get(section, key string) (string, bool) {
	sec, err := c.file.GetSection(section)
	if err != nil {
		return "", false
	}
	if !sec.HasKey(key) {
		return "", false
	}
	return sec.Key(key).String(), true
}

// Set records a string value under section/key, creating both as needed
func (c *Config) Set(section, key, value string) {
	c.file.Section(section).Key(key).SetValue(value)
}

// FormatVersion parses core.repositoryformatversion. The key being
// absent or non-numeric is a malformed configuration, not a version
// mismatch.
func (c *Config) FormatVersion() (int, error) {
	raw, ok := c.Get("core", "repositoryformatversion")
	if !ok {
		return 0, errors.Wrap(status.ErrMalformedConfig,
			"core.repositoryformatversion is not set")
	}
	vers, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Wrapf(status.ErrMalformedConfig,
			"core.repositoryformatversion %q is not numeric", raw)
	}
	return vers, nil
}
