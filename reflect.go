package endio

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"net/netip"
	"reflect"
)

// The reflection walker below is the composite half of the codec: structs,
// arrays, slices and pointers are taken apart field by field, in declaration
// order, with the ambient byte order flowing unchanged into every nested
// value. A composite's wire layout is exactly the concatenation of its
// fields' layouts; nothing is reordered, padded or prefixed.
//
// Per-field overrides are declared with struct tags:
//
//	type Header struct {
//		Magic uint32 `endio:"be"` // always big endian
//		Count uint16              // ambient order
//		skip  uint32              // unexported: not serialized
//		Name  string `endio:"-"`  // explicitly not serialized
//	}
//
// A forced tag applies to that field's whole subtree and leaves the order of
// sibling fields untouched.

var (
	addrType         = reflect.TypeOf(netip.Addr{})
	serializableType = reflect.TypeOf((*Serializable)(nil)).Elem()
)

func readReflect(r io.Reader, order binary.ByteOrder, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("%w: %T (destination must be a non-nil pointer)", ErrUnsupportedType, v)
	}
	return readValue(r, order, rv.Elem())
}

//nolint:gocyclo // One arm per supported kind; splitting it up would not help.
func readValue(r io.Reader, order binary.ByteOrder, v reflect.Value) error {
	if v.CanAddr() {
		if d, ok := v.Addr().Interface().(Deserializable); ok {
			return d.DeserializeFrom(r, order)
		}
	}
	if v.Type() == addrType {
		var a netip.Addr
		if err := readAny(r, order, &a); err != nil {
			return err
		}
		v.Set(reflect.ValueOf(a))
		return nil
	}

	var buf [8]byte
	switch v.Kind() {
	case reflect.Bool:
		if _, err := io.ReadFull(r, buf[:1]); err != nil {
			return err
		}
		v.SetBool(buf[0] != 0)

	case reflect.Int8:
		if _, err := io.ReadFull(r, buf[:1]); err != nil {
			return err
		}
		v.SetInt(int64(int8(buf[0])))

	case reflect.Int16:
		if _, err := io.ReadFull(r, buf[:2]); err != nil {
			return err
		}
		v.SetInt(int64(int16(order.Uint16(buf[:2]))))

	case reflect.Int32:
		if _, err := io.ReadFull(r, buf[:4]); err != nil {
			return err
		}
		v.SetInt(int64(int32(order.Uint32(buf[:4]))))

	case reflect.Int64:
		if _, err := io.ReadFull(r, buf[:8]); err != nil {
			return err
		}
		v.SetInt(int64(order.Uint64(buf[:8])))

	case reflect.Uint8:
		if _, err := io.ReadFull(r, buf[:1]); err != nil {
			return err
		}
		v.SetUint(uint64(buf[0]))

	case reflect.Uint16:
		if _, err := io.ReadFull(r, buf[:2]); err != nil {
			return err
		}
		v.SetUint(uint64(order.Uint16(buf[:2])))

	case reflect.Uint32:
		if _, err := io.ReadFull(r, buf[:4]); err != nil {
			return err
		}
		v.SetUint(uint64(order.Uint32(buf[:4])))

	case reflect.Uint64:
		if _, err := io.ReadFull(r, buf[:8]); err != nil {
			return err
		}
		v.SetUint(order.Uint64(buf[:8]))

	case reflect.Float32:
		if _, err := io.ReadFull(r, buf[:4]); err != nil {
			return err
		}
		v.SetFloat(float64(math.Float32frombits(order.Uint32(buf[:4]))))

	case reflect.Float64:
		if _, err := io.ReadFull(r, buf[:8]); err != nil {
			return err
		}
		v.SetFloat(math.Float64frombits(order.Uint64(buf[:8])))

	case reflect.Pointer:
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}
		return readValue(r, order, v.Elem())

	case reflect.Array:
		if v.Type().Elem().Kind() == reflect.Uint8 && v.CanAddr() {
			_, err := io.ReadFull(r, v.Slice(0, v.Len()).Bytes())
			return err
		}
		for i := 0; i < v.Len(); i++ {
			if err := readValue(r, order, v.Index(i)); err != nil {
				return fmt.Errorf("index %d: %w", i, err)
			}
		}

	case reflect.Slice:
		// Single-byte elements are the bulk special case of the same rule:
		// elements in order, each at its own width.
		if v.Type().Elem().Kind() == reflect.Uint8 {
			_, err := io.ReadFull(r, v.Bytes())
			return err
		}
		for i := 0; i < v.Len(); i++ {
			if err := readValue(r, order, v.Index(i)); err != nil {
				return fmt.Errorf("index %d: %w", i, err)
			}
		}

	case reflect.Struct:
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			fieldOrder, skip, err := fieldByteOrder(f, order)
			if err != nil {
				return err
			}
			if skip {
				continue
			}
			if err := readValue(r, fieldOrder, v.Field(i)); err != nil {
				return fmt.Errorf("field %s.%s: %w", t.Name(), f.Name, err)
			}
		}

	case reflect.Int, reflect.Uint, reflect.Uintptr:
		return fmt.Errorf("%w: %s (platform-dependent width)", ErrUnsupportedType, v.Type())

	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedType, v.Type())
	}
	return nil
}

func writeReflect(w io.Writer, order binary.ByteOrder, v any) error {
	return writeValue(w, order, reflect.ValueOf(v))
}

//nolint:gocyclo // One arm per supported kind; splitting it up would not help.
func writeValue(w io.Writer, order binary.ByteOrder, v reflect.Value) error {
	if s, ok := asSerializable(v); ok {
		return s.SerializeTo(w, order)
	}
	if v.Type() == addrType {
		return writeAny(w, order, v.Interface().(netip.Addr))
	}

	var buf [8]byte
	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			buf[0] = 1
		}
		return writeFull(w, buf[:1])

	case reflect.Int8:
		buf[0] = uint8(v.Int())
		return writeFull(w, buf[:1])

	case reflect.Int16:
		order.PutUint16(buf[:2], uint16(v.Int()))
		return writeFull(w, buf[:2])

	case reflect.Int32:
		order.PutUint32(buf[:4], uint32(v.Int()))
		return writeFull(w, buf[:4])

	case reflect.Int64:
		order.PutUint64(buf[:8], uint64(v.Int()))
		return writeFull(w, buf[:8])

	case reflect.Uint8:
		buf[0] = uint8(v.Uint())
		return writeFull(w, buf[:1])

	case reflect.Uint16:
		order.PutUint16(buf[:2], uint16(v.Uint()))
		return writeFull(w, buf[:2])

	case reflect.Uint32:
		order.PutUint32(buf[:4], uint32(v.Uint()))
		return writeFull(w, buf[:4])

	case reflect.Uint64:
		order.PutUint64(buf[:8], v.Uint())
		return writeFull(w, buf[:8])

	case reflect.Float32:
		order.PutUint32(buf[:4], math.Float32bits(float32(v.Float())))
		return writeFull(w, buf[:4])

	case reflect.Float64:
		order.PutUint64(buf[:8], math.Float64bits(v.Float()))
		return writeFull(w, buf[:8])

	case reflect.Pointer:
		if v.IsNil() {
			return ErrNilPointer
		}
		return writeValue(w, order, v.Elem())

	case reflect.Array:
		if v.Type().Elem().Kind() == reflect.Uint8 && v.CanAddr() {
			return writeFull(w, v.Slice(0, v.Len()).Bytes())
		}
		for i := 0; i < v.Len(); i++ {
			if err := writeValue(w, order, v.Index(i)); err != nil {
				return fmt.Errorf("index %d: %w", i, err)
			}
		}

	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return writeFull(w, v.Bytes())
		}
		for i := 0; i < v.Len(); i++ {
			if err := writeValue(w, order, v.Index(i)); err != nil {
				return fmt.Errorf("index %d: %w", i, err)
			}
		}

	case reflect.Struct:
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			fieldOrder, skip, err := fieldByteOrder(f, order)
			if err != nil {
				return err
			}
			if skip {
				continue
			}
			if err := writeValue(w, fieldOrder, v.Field(i)); err != nil {
				return fmt.Errorf("field %s.%s: %w", t.Name(), f.Name, err)
			}
		}

	case reflect.Int, reflect.Uint, reflect.Uintptr:
		return fmt.Errorf("%w: %s (platform-dependent width)", ErrUnsupportedType, v.Type())

	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedType, v.Type())
	}
	return nil
}

// asSerializable reports whether v (or its address) implements Serializable.
// Non-addressable values with a pointer-receiver implementation are copied
// to a fresh addressable value first.
func asSerializable(v reflect.Value) (Serializable, bool) {
	if v.Type().Implements(serializableType) {
		return v.Interface().(Serializable), true
	}
	if reflect.PointerTo(v.Type()).Implements(serializableType) {
		if !v.CanAddr() {
			pv := reflect.New(v.Type())
			pv.Elem().Set(v)
			v = pv.Elem()
		}
		return v.Addr().Interface().(Serializable), true
	}
	return nil, false
}

// fieldByteOrder resolves a struct field's byte order from its endio tag.
// Untagged and unexported fields inherit the ambient order (unexported ones
// are skipped: reflection cannot set them, so they cannot round-trip).
func fieldByteOrder(f reflect.StructField, ambient binary.ByteOrder) (binary.ByteOrder, bool, error) {
	if !f.IsExported() {
		return nil, true, nil
	}
	switch tag := f.Tag.Get("endio"); tag {
	case "":
		return ambient, false, nil
	case "-":
		return nil, true, nil
	case "be":
		return binary.BigEndian, false, nil
	case "le":
		return binary.LittleEndian, false, nil
	default:
		return nil, false, fmt.Errorf("endio: unknown struct tag %q on field %s", tag, f.Name)
	}
}
