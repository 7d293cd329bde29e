package repo

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/oneconcern/gitlite/pkg/repo/status"
)

// Path joins elem under the metadata directory. Pure path composition:
// no filesystem access, no validation.
func (r *Repository) Path(elem ...string) string {
	return filepath.Join(append([]string{r.gitDir}, elem...)...)
}

// FilePath computes the path of a file under the metadata directory,
// first ensuring its parent directory exists. With mkdir set, a
// missing parent (and any missing ancestors) is created; otherwise a
// missing parent yields "" with a nil error.
func (r *Repository) FilePath(mkdir bool, elem ...string) (string, error) {
	if len(elem) > 0 {
		parent, err := r.DirPath(mkdir, elem[:len(elem)-1]...)
		if err != nil {
			return "", err
		}
		if parent == "" {
			return "", nil
		}
	}
	return r.Path(elem...), nil
}

// DirPath computes the path of a directory under the metadata
// directory. An existing directory is returned as is; a file occupying
// the path is a NotADirectory failure. With mkdir set, a missing
// directory (and any missing ancestors) is created; otherwise it
// yields "" with a nil error.
func (r *Repository) DirPath(mkdir bool, elem ...string) (string, error) {
	path := r.Path(elem...)

	fi, err := r.fs.Stat(path)
	switch {
	case err == nil && fi.IsDir():
		return path, nil
	case err == nil:
		return "", errors.Wrapf(status.ErrNotADirectory, "%s", path)
	case !os.IsNotExist(err):
		return "", errors.Wrapf(err, "stat %s", path)
	}

	if !mkdir {
		return "", nil
	}
	if err := r.fs.MkdirAll(path, 0755); err != nil {
		return "", errors.Wrapf(err, "creating %s", path)
	}
	return path, nil
}
