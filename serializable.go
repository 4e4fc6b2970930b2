package endio

import (
	"encoding/binary"
	"io"
)

// Serializable is implemented by types that define their own wire layout.
// Every write path checks for it before applying the built-in rules.
//
// The byte order in effect for the surrounding call is passed in. An
// implementation is free to use it, ignore it, or substitute a fixed order;
// this is how mixed-endianness layouts are expressed. It is also the place
// to encode a discriminated union: write the discriminant first, then the
// payload of the active variant.
type Serializable interface {
	SerializeTo(w io.Writer, order binary.ByteOrder) error
}

// Deserializable is the read-side counterpart of Serializable. It must be
// implemented on a pointer receiver so the decoded value can be stored.
type Deserializable interface {
	DeserializeFrom(r io.Reader, order binary.ByteOrder) error
}
