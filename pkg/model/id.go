package model

import (
	"encoding/hex"
	"fmt"
)

const (
	// IDSize for the sha1 algo used by the object format
	IDSize = 20

	// IDSizeHex for the hex representation of an object ID
	IDSizeHex = 40
)

// NewObjectID creates a new object ID from raw digest bytes
func NewObjectID(data []byte) (ObjectID, error) {
	var id ObjectID
	n := copy(id[:], data)
	if n != IDSize || len(data) != IDSize {
		return ObjectID{}, &BadIDSize{ID: data}
	}
	return id, nil
}

// MustNewObjectID creates a new object ID from raw digest bytes but panics if there is an error
func MustNewObjectID(data []byte) ObjectID {
	id, e := NewObjectID(data)
	if e != nil {
		panic(e.Error())
	}
	return id
}

// ParseObjectID decodes the 40 character hex rendering of an object ID
func ParseObjectID(s string) (ObjectID, error) {
	if len(s) != IDSizeHex {
		return ObjectID{}, &BadIDSize{ID: []byte(s)}
	}
	data, err := hex.DecodeString(s)
	if err != nil {
		return ObjectID{}, &BadIDSize{ID: []byte(s)}
	}
	return NewObjectID(data)
}

// ObjectID type for content addresses in the object database
type ObjectID [IDSize]byte

func (id ObjectID) String() string {
	return hex.EncodeToString(id[:])
}

// BadIDSize is an error that's returned when the ID to create has an invalid size.
type BadIDSize struct {
	ID []byte
}

func (b *BadIDSize) Error() string {
	return fmt.Sprintf("%x has invalid size of %d, expected %d", b.ID, len(b.ID), IDSize)
}
