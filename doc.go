// Package endio reads and writes typed binary data over plain byte streams,
// with the byte order chosen at the call site as a type parameter instead of
// being repeated as a runtime argument.
//
// The wire format is the flat one: a fixed-width value occupies exactly its
// own width, most-significant byte first under BigEndian or least-significant
// first under LittleEndian. Booleans are one byte (zero is false, any nonzero
// byte is true). IPv4 addresses are four bytes forming one unsigned 32-bit
// value in the call's byte order. A struct is the concatenation of its
// exported fields in declaration order. No header, length prefix or padding
// is ever inserted.
//
// Reading and writing work on any io.Reader/io.Writer the caller owns; the
// package never buffers, retains or closes the stream:
//
//	var buf bytes.Buffer
//	_ = endio.WriteLE(&buf, uint8(42))
//	_ = endio.WriteLE(&buf, true)
//	_ = endio.WriteLE(&buf, uint32(754187983))
//	// buf now holds 2a 01 cf fe f3 2c
//
//	a, _ := endio.ReadLE[uint8](&buf)
//	b, _ := endio.ReadLE[bool](&buf)
//	c, _ := endio.ReadLE[uint32](&buf)
//
// Code that should work for either byte order binds the endianness once as a
// type parameter and lets it flow into every call:
//
//	func readHeader[E endio.Endianness](r io.Reader) (Header, error) {
//		return endio.Read[Header, E](r)
//	}
//
// ReadBE/ReadLE and WriteBE/WriteLE force one order for a single call
// without disturbing anything around them, which is how mixed-endianness
// payloads are handled inside one stream. Inside a struct the same override
// is spelled as a field tag:
//
//	type Sample struct {
//		Magic uint32 `endio:"be"`
//		Value uint16 // ambient order
//	}
//
// Composite types need no registration: structs, arrays, slices and pointers
// of supported types are serialized field by field via reflection, the
// ambient byte order propagating into every nested value. Types with a
// custom layout implement Serializable/Deserializable and take over their
// own bytes. Platform-width integers (int, uint, uintptr) are rejected
// because their wire width would not be portable.
//
// Errors are the underlying stream's errors: a short read surfaces as
// io.EOF or io.ErrUnexpectedEOF, a short write as io.ErrShortWrite. A
// failure partway through a composite leaves the stream cursor where the
// failing field left it; nothing is buffered or rolled back.
package endio
