package repo

import (
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/oneconcern/gitlite/pkg/repo/status"
)

// Find walks upward from path looking for the nearest ancestor holding
// a metadata directory, and strictly constructs a handle over it.
//
// When no ancestor qualifies: with required set the search fails with
// NoRepositoryFound, otherwise it returns (nil, nil).
//
// The walk is an explicit loop over successive parents, bounded by the
// actual depth of the filesystem.
func Find(path string, required bool, opts ...Option) (*Repository, error) {
	probe := newPermissive(path, opts...)

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "resolving %s", path)
	}
	abs = resolveSymlinks(probe.fs, abs)

	for dir := abs; ; {
		fi, err := probe.fs.Stat(filepath.Join(dir, MetadataDirName))
		if err == nil && fi.IsDir() {
			probe.l.Debug("found repository", zap.String("worktree", dir))
			return New(dir, opts...)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// filesystem root reached
			if required {
				return nil, errors.Wrapf(status.ErrNoRepositoryFound, "starting from %s", path)
			}
			return nil, nil
		}
		dir = parent
	}
}

// resolveSymlinks normalizes the starting point of the search on the
// host filesystem. Backends without symlink support (e.g. the
// in-memory filesystem used in tests) get the path back unchanged.
func resolveSymlinks(fs afero.Fs, abs string) string {
	if _, ok := fs.(*afero.OsFs); !ok {
		return abs
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		// the starting directory may not exist yet; search from the
		// unresolved path in that case
		return abs
	}
	return resolved
}
