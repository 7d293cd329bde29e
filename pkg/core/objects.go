// Package core implements the object database: writing typed objects
// to content-derived addresses and reading them back.
//
// An object is stored as the zlib-compressed envelope
// `<kind> <size>\x00<payload>`, where payload is the object's
// canonical serialization. The object ID is the sha1 digest of the
// uncompressed envelope, and the entry lives under
// objects/<first 2 hex digits>/<remaining 38>.
package core

import (
	"bytes"
	"compress/zlib"
	"context"
	"crypto/sha1"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/oneconcern/gitlite/pkg/core/status"
	"github.com/oneconcern/gitlite/pkg/model"
	"github.com/oneconcern/gitlite/pkg/repo"
	"github.com/oneconcern/gitlite/pkg/storage"
	"github.com/oneconcern/gitlite/pkg/storage/localfs"
	storagestatus "github.com/oneconcern/gitlite/pkg/storage/status"
)

// ObjectStore returns the K/V store over the repository's object
// database directory
func ObjectStore(r *repo.Repository) storage.Store {
	return localfs.New(r.FS(), r.Path("objects"))
}

// envelope prefixes the canonical payload with the kind tag and
// payload length. This exact byte form feeds both the content hash and
// the compressed entry on disk.
func envelope(obj model.Object) []byte {
	payload := obj.Serialize()

	var buf bytes.Buffer
	buf.WriteString(obj.Kind().String())
	buf.WriteByte(' ')
	buf.WriteString(strconv.Itoa(len(payload)))
	buf.WriteByte(0)
	buf.Write(payload)
	return buf.Bytes()
}

// objectKey fans an ID out over 256 directories to keep listings short
func objectKey(id model.ObjectID) string {
	hex := id.String()
	return hex[:2] + "/" + hex[2:]
}

// WriteObject stores an object in the repository's object database and
// returns its content address. Writing an object that already exists
// is a no-op rewrite of identical bytes.
func WriteObject(ctx context.Context, r *repo.Repository, obj model.Object) (model.ObjectID, error) {
	env := envelope(obj)
	id := model.ObjectID(sha1.Sum(env))

	var compressed bytes.Buffer
	zw := zlib.NewWriter(&compressed)
	if _, err := zw.Write(env); err != nil {
		return model.ObjectID{}, errors.Wrapf(err, "compressing object %s", id)
	}
	if err := zw.Close(); err != nil {
		return model.ObjectID{}, errors.Wrapf(err, "compressing object %s", id)
	}

	if err := ObjectStore(r).Put(ctx, objectKey(id), &compressed); err != nil {
		return model.ObjectID{}, errors.Wrapf(err, "storing object %s", id)
	}
	return id, nil
}

// ReadObject fetches an object by ID, inflates it and reconstructs the
// typed representation dispatched on the envelope's kind tag.
func ReadObject(ctx context.Context, r *repo.Repository, id model.ObjectID) (model.Object, error) {
	rdr, err := ObjectStore(r).Get(ctx, objectKey(id))
	if err != nil {
		if errors.Is(err, storagestatus.ErrNotExists) {
			return nil, errors.Wrapf(status.ErrObjectNotFound, "%s", id)
		}
		return nil, errors.Wrapf(err, "fetching object %s", id)
	}
	defer func() {
		_ = rdr.Close()
	}()

	zr, err := zlib.NewReader(rdr)
	if err != nil {
		return nil, errors.Wrapf(status.ErrCorruptedObject, "object %s does not inflate: %v", id, err)
	}
	env, err := io.ReadAll(zr)
	if err != nil {
		return nil, errors.Wrapf(status.ErrCorruptedObject, "object %s does not inflate: %v", id, err)
	}
	if err := zr.Close(); err != nil {
		return nil, errors.Wrapf(status.ErrCorruptedObject, "object %s does not inflate: %v", id, err)
	}

	kind, payload, err := splitEnvelope(id, env)
	if err != nil {
		return nil, err
	}
	obj, err := model.NewObject(kind)
	if err != nil {
		return nil, errors.Wrapf(status.ErrCorruptedObject, "object %s: %v", id, err)
	}
	if err := obj.Deserialize(payload); err != nil {
		return nil, err
	}
	return obj, nil
}

func splitEnvelope(id model.ObjectID, env []byte) (model.Kind, []byte, error) {
	sp := bytes.IndexByte(env, ' ')
	if sp <= 0 {
		return "", nil, errors.Wrapf(status.ErrCorruptedObject, "object %s has no kind tag", id)
	}
	nul := bytes.IndexByte(env[sp+1:], 0)
	if nul < 0 {
		return "", nil, errors.Wrapf(status.ErrCorruptedObject, "object %s has no length header", id)
	}
	nul += sp + 1

	kind, err := model.ParseKind(string(env[:sp]))
	if err != nil {
		return "", nil, errors.Wrapf(status.ErrCorruptedObject, "object %s: %v", id, err)
	}
	size, err := strconv.Atoi(string(env[sp+1 : nul]))
	if err != nil || size != len(env)-nul-1 {
		return "", nil, errors.Wrapf(status.ErrCorruptedObject, "object %s has a bad length header", id)
	}
	return kind, env[nul+1:], nil
}

// HashObject computes the content address a payload of the given kind
// would be stored under, optionally writing the object. With write
// unset no repository access happens and r may be nil.
func HashObject(ctx context.Context, r *repo.Repository, kind model.Kind, data []byte, write bool) (model.ObjectID, error) {
	obj, err := model.NewObject(kind)
	if err != nil {
		return model.ObjectID{}, err
	}
	if err := obj.Deserialize(data); err != nil {
		return model.ObjectID{}, err
	}
	if write {
		return WriteObject(ctx, r, obj)
	}
	return model.ObjectID(sha1.Sum(envelope(obj))), nil
}
