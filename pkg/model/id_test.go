package model

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewObjectID(t *testing.T) {
	raw := bytes.Repeat([]byte{0xab}, IDSize)
	id, err := NewObjectID(raw)
	require.NoError(t, err)
	require.Equal(t, "abababababababababababababababababababab", id.String())

	_, err = NewObjectID(raw[:IDSize-1])
	require.Error(t, err)
	require.IsType(t, &BadIDSize{}, err)

	_, err = NewObjectID(append(raw, 0xab))
	require.Error(t, err)
}

func TestParseObjectID(t *testing.T) {
	id, err := ParseObjectID("abababababababababababababababababababab")
	require.NoError(t, err)
	require.Equal(t, MustNewObjectID(bytes.Repeat([]byte{0xab}, IDSize)), id)

	_, err = ParseObjectID("abab")
	require.Error(t, err)

	_, err = ParseObjectID("zzababababababababababababababababababab")
	require.Error(t, err)
}

func TestParseKind(t *testing.T) {
	for _, tag := range []string{"blob", "tree", "commit", "tag"} {
		k, err := ParseKind(tag)
		require.NoError(t, err)
		require.Equal(t, tag, k.String())
	}

	_, err := ParseKind("blobby")
	require.Error(t, err)
	require.IsType(t, &UnsupportedKind{}, err)
}
