package repo

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oneconcern/gitlite/pkg/repo/status"
)

func TestFindFromDescendant(t *testing.T) {
	afs := afero.NewMemMapFs()
	created, err := Create("/tmp/proj", WithFS(afs))
	require.NoError(t, err)
	require.NoError(t, afs.MkdirAll("/tmp/proj/src/deep/dir", 0755))

	r, err := Find("/tmp/proj/src/deep/dir", true, WithFS(afs))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/proj", r.WorkTree())
	assert.Equal(t, created.GitDir(), r.GitDir())

	// idempotent across repeated calls with no filesystem change
	again, err := Find("/tmp/proj/src/deep/dir", true, WithFS(afs))
	require.NoError(t, err)
	assert.Equal(t, r.GitDir(), again.GitDir())
}

func TestFindFromRoot(t *testing.T) {
	afs := afero.NewMemMapFs()
	_, err := Create("/tmp/proj", WithFS(afs))
	require.NoError(t, err)

	r, err := Find("/tmp/proj", true, WithFS(afs))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/proj", r.WorkTree())
}

func TestFindNearestWins(t *testing.T) {
	afs := afero.NewMemMapFs()
	_, err := Create("/tmp/outer", WithFS(afs))
	require.NoError(t, err)
	_, err = Create("/tmp/outer/inner", WithFS(afs))
	require.NoError(t, err)

	r, err := Find("/tmp/outer/inner/src", true, WithFS(afs))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/outer/inner", r.WorkTree())
}

func TestFindNoneRequired(t *testing.T) {
	afs := afero.NewMemMapFs()
	require.NoError(t, afs.MkdirAll("/tmp/bare/tree", 0755))

	_, err := Find("/tmp/bare/tree", true, WithFS(afs))
	require.Error(t, err)
	require.True(t, errors.Is(err, status.ErrNoRepositoryFound))
}

func TestFindNoneOptional(t *testing.T) {
	afs := afero.NewMemMapFs()
	require.NoError(t, afs.MkdirAll("/tmp/bare/tree", 0755))

	r, err := Find("/tmp/bare/tree", false, WithFS(afs))
	require.NoError(t, err)
	require.Nil(t, r)
}
