package builder

import "fmt"

// DataType represents the precision of numerical data
type DataType int

const (
	Float32 DataType = iota + 1
	Float64
	INT32
	INT64
	Complex64
	Complex128
)

// Value is the set of element types a sparse value buffer may hold
type Value interface {
	float32 | float64 | complex64 | complex128
}

// Index is the set of supported index widths
type Index interface {
	int32 | int64
}

// Element is anything a memory container may hold
type Element interface {
	Value | Index
}

// DataTypeOf returns the DataType for a type parameter
func DataTypeOf[T Element]() DataType {
	var zero T
	switch any(zero).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	case int32:
		return INT32
	case int64:
		return INT64
	case complex64:
		return Complex64
	case complex128:
		return Complex128
	}
	return 0
}

// Size returns the size in bytes of one element
func (dt DataType) Size() int64 {
	switch dt {
	case Float32, INT32:
		return 4
	case Float64, INT64, Complex64:
		return 8
	case Complex128:
		return 16
	default:
		return 8
	}
}

// IsComplex reports whether values are stored as interleaved (re, im) pairs
func (dt DataType) IsComplex() bool {
	return dt == Complex64 || dt == Complex128
}

// Component returns the real type a value is built from on the device.
// Complex values are laid out as two consecutive components.
func (dt DataType) Component() DataType {
	switch dt {
	case Complex64:
		return Float32
	case Complex128:
		return Float64
	}
	return dt
}

// Letter returns the BLAS precision prefix (s, d, c, z) of a value type
func (dt DataType) Letter() string {
	switch dt {
	case Float32:
		return "s"
	case Float64:
		return "d"
	case Complex64:
		return "c"
	case Complex128:
		return "z"
	}
	return "x"
}

func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case INT32:
		return "int32"
	case INT64:
		return "int64"
	case Complex64:
		return "complex64"
	case Complex128:
		return "complex128"
	}
	return fmt.Sprintf("DataType(%d)", int(dt))
}

// IndexBase is the origin of stored indices
type IndexBase int

const (
	IndexBaseZero IndexBase = 0
	IndexBaseOne  IndexBase = 1
)

// Valid reports whether the base is one of the two supported origins
func (b IndexBase) Valid() bool {
	return b == IndexBaseZero || b == IndexBaseOne
}

func (b IndexBase) String() string {
	switch b {
	case IndexBaseZero:
		return "zero"
	case IndexBaseOne:
		return "one"
	}
	return fmt.Sprintf("IndexBase(%d)", int(b))
}
