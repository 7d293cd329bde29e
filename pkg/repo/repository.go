// Package repo locates, validates and creates repositories: a working
// tree with a metadata directory (".git") holding the object database,
// references and configuration.
package repo

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/oneconcern/gitlite/pkg/config"
	"github.com/oneconcern/gitlite/pkg/repo/status"
)

// MetadataDirName is the fixed name of the metadata directory under
// the working tree root.
const MetadataDirName = ".git"

// Repository aggregates a working tree root, its metadata directory
// and the loaded configuration.
//
// Once strictly constructed a Repository is read-only data, safe to
// share across readers. Only the configuration may be mutated, and
// persisting it (config.Write) is the caller's responsibility.
type Repository struct {
	workTree string
	gitDir   string
	conf     *config.Config

	fs afero.Fs
	l  *zap.Logger
}

// Option customizes repository construction
type Option func(*Repository)

// WithFS runs the repository against the given filesystem instead of
// the host filesystem
func WithFS(fs afero.Fs) Option {
	return func(r *Repository) {
		if fs != nil {
			r.fs = fs
		}
	}
}

// WithLogger sets a logger for repository operations (default: no logging)
func WithLogger(l *zap.Logger) Option {
	return func(r *Repository) {
		if l != nil {
			r.l = l
		}
	}
}

// newPermissive builds an unvalidated handle. It is the staging object
// used during creation and performs no filesystem access at all.
func newPermissive(path string, opts ...Option) *Repository {
	r := &Repository{
		workTree: path,
		gitDir:   filepath.Join(path, MetadataDirName),
		fs:       afero.NewOsFs(),
		l:        zap.NewNop(),
	}
	for _, apply := range opts {
		apply(r)
	}
	return r
}

// New strictly constructs a handle over an existing repository at
// path: the metadata directory must exist, hold a parseable
// configuration, and that configuration must declare format version 0.
func New(path string, opts ...Option) (*Repository, error) {
	r := newPermissive(path, opts...)

	fi, err := r.fs.Stat(r.gitDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(status.ErrNotARepository, "%s", path)
		}
		return nil, errors.Wrapf(err, "stat %s", r.gitDir)
	}
	if !fi.IsDir() {
		return nil, errors.Wrapf(status.ErrNotARepository, "%s", path)
	}

	conf, err := config.Load(r.fs, r.Path("config"))
	if err != nil {
		return nil, err
	}
	vers, err := conf.FormatVersion()
	if err != nil {
		return nil, err
	}
	if vers != 0 {
		return nil, errors.Wrapf(status.ErrUnsupportedFormatVersion, "version %d", vers)
	}
	r.conf = conf

	return r, nil
}

// WorkTree returns the absolute path of the working tree root
func (r *Repository) WorkTree() string {
	return r.workTree
}

// GitDir returns the absolute path of the metadata directory
func (r *Repository) GitDir() string {
	return r.gitDir
}

// Config returns the loaded repository configuration
func (r *Repository) Config() *config.Config {
	return r.conf
}

// FS returns the filesystem the repository operates against
func (r *Repository) FS() afero.Fs {
	return r.fs
}
