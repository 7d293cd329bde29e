// Copyright © 2018 One Concern

// Package localfs implements the storage contract on a local
// directory tree, with one file per entry.
package localfs

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/oneconcern/gitlite/pkg/storage"
	"github.com/oneconcern/gitlite/pkg/storage/status"
)

// New creates a local file system backed store rooted at dir inside
// the given filesystem
func New(fs afero.Fs, dir string) storage.Store {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &localFS{
		fs:   afero.NewBasePathFs(fs, dir),
		root: dir,
	}
}

type localFS struct {
	fs   afero.Fs
	root string
}

func (l *localFS) String() string {
	return "localfs@" + l.root
}

func (l *localFS) Has(ctx context.Context, key string) (bool, error) {
	fi, err := l.fs.Stat(key)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return !fi.IsDir(), nil
}

func (l *localFS) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	has, err := l.Has(ctx, key)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, errors.Wrapf(status.ErrNotExists, "%s", key)
	}
	return l.fs.Open(key)
}

func (l *localFS) Put(ctx context.Context, key string, source io.Reader) error {
	dir := filepath.Dir(key)
	if dir != "" && dir != "." {
		if err := l.fs.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("ensuring directories for %q: %v", key, err)
		}
	}
	target, err := l.fs.OpenFile(key, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("create record for %q: %v", key, err)
	}
	if _, err = io.Copy(target, source); err != nil {
		_ = target.Close()
		return fmt.Errorf("write record for %q: %v", key, err)
	}
	return target.Close()
}

func (l *localFS) Delete(ctx context.Context, key string) error {
	if err := l.fs.Remove(key); err != nil {
		if os.IsNotExist(err) {
			return errors.Wrapf(status.ErrNotExists, "%s", key)
		}
		return fmt.Errorf("removing record %q: %v", key, err)
	}
	return nil
}

func (l *localFS) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	err := afero.Walk(l.fs, ".", func(path string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() {
			return nil
		}
		keys = append(keys, filepath.ToSlash(path))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return keys, nil
}
