package repo

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cfgstatus "github.com/oneconcern/gitlite/pkg/config/status"
	"github.com/oneconcern/gitlite/pkg/repo/status"
)

func TestNewOnFreshRepository(t *testing.T) {
	afs := afero.NewMemMapFs()

	created, err := Create("/tmp/proj", WithFS(afs))
	require.NoError(t, err)

	r, err := New("/tmp/proj", WithFS(afs))
	require.NoError(t, err)
	assert.Equal(t, created.WorkTree(), r.WorkTree())
	assert.Equal(t, "/tmp/proj", r.WorkTree())
	assert.Equal(t, "/tmp/proj/.git", r.GitDir())
	require.NotNil(t, r.Config())

	vers, err := r.Config().FormatVersion()
	require.NoError(t, err)
	assert.Equal(t, 0, vers)
}

func TestNewNotARepository(t *testing.T) {
	afs := afero.NewMemMapFs()
	require.NoError(t, afs.MkdirAll("/tmp/plain", 0755))

	_, err := New("/tmp/plain", WithFS(afs))
	require.Error(t, err)
	require.True(t, errors.Is(err, status.ErrNotARepository))
}

func TestNewGitDirIsAFile(t *testing.T) {
	afs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(afs, "/tmp/proj/.git", []byte("gitdir: elsewhere"), 0644))

	_, err := New("/tmp/proj", WithFS(afs))
	require.Error(t, err)
	require.True(t, errors.Is(err, status.ErrNotARepository))
}

func TestNewConfigMissing(t *testing.T) {
	afs := afero.NewMemMapFs()
	require.NoError(t, afs.MkdirAll("/tmp/proj/.git/objects", 0755))

	_, err := New("/tmp/proj", WithFS(afs))
	require.Error(t, err)
	require.True(t, errors.Is(err, cfgstatus.ErrConfigMissing))
}

func TestNewUnsupportedFormatVersion(t *testing.T) {
	afs := afero.NewMemMapFs()
	for _, vers := range []string{"1", "2", "42"} {
		require.NoError(t, afero.WriteFile(afs, "/tmp/proj/.git/config",
			[]byte("[core]\nrepositoryformatversion = "+vers+"\n"), 0644))

		_, err := New("/tmp/proj", WithFS(afs))
		require.Error(t, err)
		require.True(t, errors.Is(err, status.ErrUnsupportedFormatVersion))
	}
}

func TestNewMalformedConfig(t *testing.T) {
	afs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(afs, "/tmp/proj/.git/config",
		[]byte("[core]\nbare = false\n"), 0644))

	_, err := New("/tmp/proj", WithFS(afs))
	require.Error(t, err)
	require.True(t, errors.Is(err, cfgstatus.ErrMalformedConfig))
}
