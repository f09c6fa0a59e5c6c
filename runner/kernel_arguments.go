package runner

import (
	"fmt"

	"github.com/notargets/DGSparse/runner/builder"
)

// ScalarArgs splits a value into the (re, im) real_t kernel arguments that
// carry it by value. Real values get a zero imaginary part. The returned
// values have the Go type matching real_t (float32 or float64).
func ScalarArgs[T builder.Value](v T) (re, im interface{}) {
	switch x := any(v).(type) {
	case float32:
		return x, float32(0)
	case float64:
		return x, float64(0)
	case complex64:
		return real(x), imag(x)
	case complex128:
		return real(x), imag(x)
	}
	panic(fmt.Sprintf("unsupported scalar type %T", v))
}
