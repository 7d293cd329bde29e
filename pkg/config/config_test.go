package config

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oneconcern/gitlite/pkg/config/status"
)

func TestDefault(t *testing.T) {
	c := Default()

	v, ok := c.Get("core", "repositoryformatversion")
	require.True(t, ok)
	assert.Equal(t, "0", v)

	v, ok = c.Get("core", "filemode")
	require.True(t, ok)
	assert.Equal(t, "false", v)

	v, ok = c.Get("core", "bare")
	require.True(t, ok)
	assert.Equal(t, "false", v)

	vers, err := c.FormatVersion()
	require.NoError(t, err)
	assert.Equal(t, 0, vers)
}

func TestWriteThenLoad(t *testing.T) {
	afs := afero.NewMemMapFs()

	require.NoError(t, Default().Write(afs, "/repo/.git/config"))

	data, err := afero.ReadFile(afs, "/repo/.git/config")
	require.NoError(t, err)
	assert.Contains(t, string(data), "[core]")
	assert.Contains(t, string(data), "repositoryformatversion = 0")
	assert.Contains(t, string(data), "filemode = false")
	assert.Contains(t, string(data), "bare = false")

	c, err := Load(afs, "/repo/.git/config")
	require.NoError(t, err)
	vers, err := c.FormatVersion()
	require.NoError(t, err)
	assert.Equal(t, 0, vers)
}

func TestLoadMissing(t *testing.T) {
	afs := afero.NewMemMapFs()

	_, err := Load(afs, "/nowhere/config")
	require.Error(t, err)
	require.True(t, errors.Is(err, status.ErrConfigMissing))
}

func TestLoadUnparseable(t *testing.T) {
	afs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(afs, "/repo/config",
		[]byte("[core\nrepositoryformatversion = 0\n"), 0644))

	_, err := Load(afs, "/repo/config")
	require.Error(t, err)
	require.True(t, errors.Is(err, status.ErrConfigParse))
}

func TestFormatVersionMalformed(t *testing.T) {
	afs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(afs, "/repo/config",
		[]byte("[core]\nbare = false\n"), 0644))

	c, err := Load(afs, "/repo/config")
	require.NoError(t, err)
	_, err = c.FormatVersion()
	require.Error(t, err)
	require.True(t, errors.Is(err, status.ErrMalformedConfig))

	c.Set("core", "repositoryformatversion", "one")
	_, err = c.FormatVersion()
	require.Error(t, err)
	require.True(t, errors.Is(err, status.ErrMalformedConfig))
}

func TestSetAndOrder(t *testing.T) {
	afs := afero.NewMemMapFs()

	c := Default()
	c.Set("remote \"origin\"", "url", "file:///srv/mirror.git")
	require.NoError(t, c.Write(afs, "/repo/config"))

	reloaded, err := Load(afs, "/repo/config")
	require.NoError(t, err)
	v, ok := reloaded.Get("remote \"origin\"", "url")
	require.True(t, ok)
	assert.Equal(t, "file:///srv/mirror.git", v)

	// writing twice yields identical bytes
	require.NoError(t, reloaded.Write(afs, "/repo/config2"))
	a, err := afero.ReadFile(afs, "/repo/config")
	require.NoError(t, err)
	b, err := afero.ReadFile(afs, "/repo/config2")
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}
