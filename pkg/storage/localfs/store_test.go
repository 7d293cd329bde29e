// Copyright © 2018 One Concern

package localfs

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oneconcern/gitlite/pkg/storage"
	"github.com/oneconcern/gitlite/pkg/storage/status"
)

func setupStore(t *testing.T) storage.Store {
	afs := afero.NewMemMapFs()
	require.NoError(t, afs.MkdirAll("/repo/.git/objects", 0755))
	bs := New(afs, "/repo/.git/objects")

	require.NoError(t, bs.Put(context.Background(),
		"aa/sixteentons", bytes.NewBufferString("this is the text")))
	require.NoError(t, bs.Put(context.Background(),
		"bb/seventeentons", bytes.NewBufferString("this is the text for another thing")))
	return bs
}

func TestHas(t *testing.T) {
	bs := setupStore(t)

	has, err := bs.Has(context.Background(), "aa/sixteentons")
	require.NoError(t, err)
	require.True(t, has)

	has, err = bs.Has(context.Background(), "bb/seventeentons")
	require.NoError(t, err)
	require.True(t, has)

	has, err = bs.Has(context.Background(), "cc/fifteentons")
	require.NoError(t, err)
	require.False(t, has)
}

func TestGet(t *testing.T) {
	bs := setupStore(t)

	rdr, err := bs.Get(context.Background(), "aa/sixteentons")
	require.NoError(t, err)
	b, err := io.ReadAll(rdr)
	require.NoError(t, err)
	require.NoError(t, rdr.Close())
	assert.Equal(t, "this is the text", string(b))

	_, err = bs.Get(context.Background(), "cc/fifteentons")
	require.Error(t, err)
	require.True(t, errors.Is(err, status.ErrNotExists))
}

func TestPutOverwrite(t *testing.T) {
	bs := setupStore(t)

	require.NoError(t, bs.Put(context.Background(),
		"aa/sixteentons", bytes.NewBufferString("rewritten")))
	rdr, err := bs.Get(context.Background(), "aa/sixteentons")
	require.NoError(t, err)
	b, err := io.ReadAll(rdr)
	require.NoError(t, err)
	assert.Equal(t, "rewritten", string(b))
}

func TestDelete(t *testing.T) {
	bs := setupStore(t)

	require.NoError(t, bs.Delete(context.Background(), "aa/sixteentons"))
	has, err := bs.Has(context.Background(), "aa/sixteentons")
	require.NoError(t, err)
	require.False(t, has)

	err = bs.Delete(context.Background(), "aa/sixteentons")
	require.Error(t, err)
	require.True(t, errors.Is(err, status.ErrNotExists))
}

func TestKeys(t *testing.T) {
	bs := setupStore(t)

	keys, err := bs.Keys(context.Background())
	require.NoError(t, err)
	require.Len(t, keys, 2)
	assert.Contains(t, keys, "aa/sixteentons")
	assert.Contains(t, keys, "bb/seventeentons")
}
