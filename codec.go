package endio

import "bytes"

// Marshal serializes v into a fresh byte slice, in the byte order selected
// by E.
func Marshal[T any, E Endianness](v T) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write[T, E](&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal deserializes a value of type T from data, in the byte order
// selected by E. Trailing bytes are not an error; framing is the caller's
// concern. Too few bytes fail the same way a short stream does.
func Unmarshal[T any, E Endianness](data []byte) (T, error) {
	return Read[T, E](bytes.NewReader(data))
}

// Serializer turns a value into bytes.
type Serializer[T any] func(T) ([]byte, error)

// Deserializer turns bytes back into a value.
type Deserializer[T any] func([]byte) (T, error)

// Serde pairs a Serializer with its Deserializer. The shape matches the
// serde convention used by streaming frameworks, so endio-encoded types can
// be dropped into such APIs unchanged.
type Serde[T any] struct {
	Serializer   Serializer[T]
	Deserializer Deserializer[T]
}

// SerdeOf builds a Serde for T in the byte order selected by E.
func SerdeOf[T any, E Endianness]() Serde[T] {
	return Serde[T]{
		Serializer:   Marshal[T, E],
		Deserializer: Unmarshal[T, E],
	}
}
