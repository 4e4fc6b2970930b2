package endio

import "errors"

// Common errors.
var (
	ErrUnsupportedType = errors.New("endio: unsupported type")
	ErrNotIPv4         = errors.New("endio: address is not an IPv4 address")
	ErrNilPointer      = errors.New("endio: cannot serialize nil pointer")
)
