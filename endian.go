package endio

import "encoding/binary"

// BigEndian selects most-significant-byte-first encoding.
type BigEndian struct{}

// LittleEndian selects least-significant-byte-first encoding.
type LittleEndian struct{}

// ByteOrder returns binary.BigEndian.
func (BigEndian) ByteOrder() binary.ByteOrder { return binary.BigEndian }

// ByteOrder returns binary.LittleEndian.
func (LittleEndian) ByteOrder() binary.ByteOrder { return binary.LittleEndian }

// Endianness is the type parameter constraint for selecting a byte order at
// a call site. The type set is closed, so the two tags above are the only
// endiannesses; code generic over E can rely on that.
//
// The tags carry no state. A value of type E only exists so its ByteOrder
// method can be called; it is never stored alongside decoded data.
type Endianness interface {
	BigEndian | LittleEndian
	ByteOrder() binary.ByteOrder
}

// Order resolves the tag E to its encoding/binary byte order.
func Order[E Endianness]() binary.ByteOrder {
	var e E
	return e.ByteOrder()
}
