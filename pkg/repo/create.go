package repo

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/oneconcern/gitlite/pkg/config"
	"github.com/oneconcern/gitlite/pkg/repo/status"
)

// DefaultDescription is the placeholder content of a fresh
// repository's description file.
const DefaultDescription = "Unnamed repository; edit this file 'description' to name the repository.\n"

// defaultHead points the symbolic HEAD reference at the default branch
const defaultHead = "ref: refs/heads/master\n"

// Create lays out a brand-new repository at path: the metadata
// directory skeleton, placeholder description, symbolic HEAD and
// default configuration. It fails with AlreadyExists when the metadata
// directory is already populated, leaving the existing content
// untouched.
//
// Steps are not transactional: a failure partway leaves a partial
// skeleton behind, and re-running surfaces it through the non-empty
// check.
func Create(path string, opts ...Option) (*Repository, error) {
	r := newPermissive(path, opts...)

	fi, err := r.fs.Stat(r.workTree)
	switch {
	case err == nil && !fi.IsDir():
		return nil, errors.Wrapf(status.ErrNotADirectory, "%s", r.workTree)
	case err == nil:
		if err := r.ensureEmptyMetadataDir(); err != nil {
			return nil, err
		}
	case os.IsNotExist(err):
		if err := r.fs.MkdirAll(r.workTree, 0755); err != nil {
			return nil, errors.Wrapf(err, "creating working tree %s", r.workTree)
		}
	default:
		return nil, errors.Wrapf(err, "stat %s", r.workTree)
	}

	for _, dir := range [][]string{
		{"branches"},
		{"objects"},
		{"refs", "tags"},
		{"refs", "heads"},
	} {
		if _, err := r.DirPath(true, dir...); err != nil {
			return nil, err
		}
	}

	if err := r.writeMetadataFile("description", DefaultDescription); err != nil {
		return nil, err
	}
	if err := r.writeMetadataFile("HEAD", defaultHead); err != nil {
		return nil, err
	}

	cfgPath, err := r.FilePath(true, "config")
	if err != nil {
		return nil, err
	}
	if err := config.Default().Write(r.fs, cfgPath); err != nil {
		return nil, err
	}

	r.l.Info("created repository", zap.String("worktree", r.workTree))

	// hand back a strictly validated handle, not the staging object
	return New(path, opts...)
}

// ensureEmptyMetadataDir enforces the fail-fast reinitialization rule:
// an existing, non-empty metadata directory aborts creation before
// anything is written.
func (r *Repository) ensureEmptyMetadataDir() error {
	fi, err := r.fs.Stat(r.gitDir)
	switch {
	case os.IsNotExist(err):
		return nil
	case err != nil:
		return errors.Wrapf(err, "stat %s", r.gitDir)
	case !fi.IsDir():
		return errors.Wrapf(status.ErrNotADirectory, "%s", r.gitDir)
	}
	entries, err := afero.ReadDir(r.fs, r.gitDir)
	if err != nil {
		return errors.Wrapf(err, "listing %s", r.gitDir)
	}
	if len(entries) > 0 {
		return errors.Wrapf(status.ErrAlreadyExists, "%s", r.workTree)
	}
	return nil
}

func (r *Repository) writeMetadataFile(name, contents string) error {
	path, err := r.FilePath(true, name)
	if err != nil {
		return err
	}
	if err := afero.WriteFile(r.fs, path, []byte(contents), 0644); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}
