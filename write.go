package endio

import (
	"encoding/binary"
	"io"
	"math"
	"net/netip"
)

// Write writes v to w, encoding multi-byte values in the byte order selected
// by E. Exactly as many bytes as v's wire width are produced: no header, no
// length prefix, no padding.
//
// v may also be a pointer to a supported value; it is dereferenced before
// encoding, so the same call site accepts owned and borrowed values alike.
func Write[T any, E Endianness](w io.Writer, v T) error {
	return writeAny(w, Order[E](), v)
}

// WriteBE writes a value in big endian, regardless of any byte order bound
// by the surrounding code. Subsequent writes on the stream are unaffected.
func WriteBE[T any](w io.Writer, v T) error { return Write[T, BigEndian](w, v) }

// WriteLE writes a value in little endian, regardless of any byte order
// bound by the surrounding code. Subsequent writes on the stream are
// unaffected.
func WriteLE[T any](w io.Writer, v T) error { return Write[T, LittleEndian](w, v) }

// WriteFrom is the untyped form of Write, used when the value's static type
// is not at hand. It accepts the same set of types.
func WriteFrom[E Endianness](w io.Writer, v any) error {
	return writeAny(w, Order[E](), v)
}

// WriteSlice writes the elements of s to w in their existing order, each in
// the byte order selected by E. The element count is not written; reading
// the sequence back is bounded by the caller (see ReadSlice).
func WriteSlice[T any, E Endianness](w io.Writer, s []T) error {
	return WriteFrom[E](w, s)
}

// WriteWith writes v to w, with the byte order held as a value. It exists
// for Serializable implementations, which receive the ambient order that way
// and need to pass it on to their fields; everywhere else, prefer Write and
// keep the order in the type system.
func WriteWith(w io.Writer, order binary.ByteOrder, v any) error {
	return writeAny(w, order, v)
}

// writeAny encodes a single value. Fixed-width primitives are handled here
// directly; everything else goes through reflection.
func writeAny(w io.Writer, order binary.ByteOrder, v any) error {
	var buf [8]byte
	switch s := v.(type) {
	case Serializable:
		return s.SerializeTo(w, order)
	case bool:
		if s {
			buf[0] = 1
		}
		return writeFull(w, buf[:1])
	case uint8:
		buf[0] = s
		return writeFull(w, buf[:1])
	case int8:
		buf[0] = uint8(s)
		return writeFull(w, buf[:1])
	case uint16:
		order.PutUint16(buf[:2], s)
		return writeFull(w, buf[:2])
	case int16:
		order.PutUint16(buf[:2], uint16(s))
		return writeFull(w, buf[:2])
	case uint32:
		order.PutUint32(buf[:4], s)
		return writeFull(w, buf[:4])
	case int32:
		order.PutUint32(buf[:4], uint32(s))
		return writeFull(w, buf[:4])
	case uint64:
		order.PutUint64(buf[:8], s)
		return writeFull(w, buf[:8])
	case int64:
		order.PutUint64(buf[:8], uint64(s))
		return writeFull(w, buf[:8])
	case float32:
		order.PutUint32(buf[:4], math.Float32bits(s))
		return writeFull(w, buf[:4])
	case float64:
		order.PutUint64(buf[:8], math.Float64bits(s))
		return writeFull(w, buf[:8])
	case netip.Addr:
		a := s.Unmap()
		if !a.Is4() {
			return ErrNotIPv4
		}
		b := a.As4()
		u := uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
		order.PutUint32(buf[:4], u)
		return writeFull(w, buf[:4])
	case []byte:
		return writeFull(w, s)
	default:
		return writeReflect(w, order, v)
	}
}

// writeFull writes p in its entirety, reporting a silent short write as
// io.ErrShortWrite.
func writeFull(w io.Writer, p []byte) error {
	n, err := w.Write(p)
	if err == nil && n < len(p) {
		return io.ErrShortWrite
	}
	return err
}
