package endio

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"net/netip"
)

// Read reads a single value of type T from r, decoding multi-byte values in
// the byte order selected by E.
//
// Exactly as many bytes as T's wire width are consumed. A short stream fails
// with the error reported by io.ReadFull (io.EOF or io.ErrUnexpectedEOF);
// bytes consumed before the failure stay consumed.
//
// Booleans decode from one byte: zero is false, any nonzero byte is true.
func Read[T any, E Endianness](r io.Reader) (T, error) {
	var v T
	err := ReadInto[E](r, &v)
	return v, err
}

// ReadBE reads a value in big endian, regardless of any byte order bound by
// the surrounding code. It does not affect subsequent reads on the stream.
func ReadBE[T any](r io.Reader) (T, error) { return Read[T, BigEndian](r) }

// ReadLE reads a value in little endian, regardless of any byte order bound
// by the surrounding code. It does not affect subsequent reads on the stream.
func ReadLE[T any](r io.Reader) (T, error) { return Read[T, LittleEndian](r) }

// ReadInto decodes from r into the value pointed to by v, in the byte order
// selected by E. v must be a non-nil pointer to a supported type.
//
// Unlike Read, the destination already exists, which matters for slices: a
// *[]T destination is filled to its current length, element by element, so
// the caller supplies the bound instead of a wire-level length prefix.
func ReadInto[E Endianness](r io.Reader, v any) error {
	return readAny(r, Order[E](), v)
}

// ReadSlice reads exactly n elements of type T from r, each in the byte order
// selected by E, in stream order.
func ReadSlice[T any, E Endianness](r io.Reader, n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("endio: negative element count %d", n)
	}
	s := make([]T, n)
	if err := ReadInto[E](r, &s); err != nil {
		return nil, err
	}
	return s, nil
}

// ReadWith decodes from r into the value pointed to by v, with the byte
// order held as a value. It exists for Deserializable implementations, which
// receive the ambient order that way and need to pass it on to their fields;
// everywhere else, prefer ReadInto and keep the order in the type system.
func ReadWith(r io.Reader, order binary.ByteOrder, v any) error {
	return readAny(r, order, v)
}

// readAny decodes a single value through a pointer. Fixed-width primitives
// are handled here directly; everything else goes through reflection.
func readAny(r io.Reader, order binary.ByteOrder, v any) error {
	var buf [8]byte
	switch p := v.(type) {
	case Deserializable:
		return p.DeserializeFrom(r, order)
	case *bool:
		if _, err := io.ReadFull(r, buf[:1]); err != nil {
			return err
		}
		*p = buf[0] != 0
	case *uint8:
		if _, err := io.ReadFull(r, buf[:1]); err != nil {
			return err
		}
		*p = buf[0]
	case *int8:
		if _, err := io.ReadFull(r, buf[:1]); err != nil {
			return err
		}
		*p = int8(buf[0])
	case *uint16:
		if _, err := io.ReadFull(r, buf[:2]); err != nil {
			return err
		}
		*p = order.Uint16(buf[:2])
	case *int16:
		if _, err := io.ReadFull(r, buf[:2]); err != nil {
			return err
		}
		*p = int16(order.Uint16(buf[:2]))
	case *uint32:
		if _, err := io.ReadFull(r, buf[:4]); err != nil {
			return err
		}
		*p = order.Uint32(buf[:4])
	case *int32:
		if _, err := io.ReadFull(r, buf[:4]); err != nil {
			return err
		}
		*p = int32(order.Uint32(buf[:4]))
	case *uint64:
		if _, err := io.ReadFull(r, buf[:8]); err != nil {
			return err
		}
		*p = order.Uint64(buf[:8])
	case *int64:
		if _, err := io.ReadFull(r, buf[:8]); err != nil {
			return err
		}
		*p = int64(order.Uint64(buf[:8]))
	case *float32:
		if _, err := io.ReadFull(r, buf[:4]); err != nil {
			return err
		}
		*p = math.Float32frombits(order.Uint32(buf[:4]))
	case *float64:
		if _, err := io.ReadFull(r, buf[:8]); err != nil {
			return err
		}
		*p = math.Float64frombits(order.Uint64(buf[:8]))
	case *netip.Addr:
		if _, err := io.ReadFull(r, buf[:4]); err != nil {
			return err
		}
		u := order.Uint32(buf[:4])
		*p = netip.AddrFrom4([4]byte{byte(u >> 24), byte(u >> 16), byte(u >> 8), byte(u)})
	case *[]byte:
		if _, err := io.ReadFull(r, *p); err != nil {
			return err
		}
	default:
		return readReflect(r, order, v)
	}
	return nil
}
