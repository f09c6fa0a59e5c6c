package builder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataTypeOf(t *testing.T) {
	assert.Equal(t, Float32, DataTypeOf[float32]())
	assert.Equal(t, Float64, DataTypeOf[float64]())
	assert.Equal(t, Complex64, DataTypeOf[complex64]())
	assert.Equal(t, Complex128, DataTypeOf[complex128]())
	assert.Equal(t, INT32, DataTypeOf[int32]())
	assert.Equal(t, INT64, DataTypeOf[int64]())
}

func TestDataTypeProperties(t *testing.T) {
	assert.Equal(t, int64(8), Complex64.Size())
	assert.Equal(t, int64(16), Complex128.Size())
	assert.Equal(t, Float32, Complex64.Component())
	assert.Equal(t, Float64, Float64.Component())
	assert.True(t, Complex128.IsComplex())
	assert.False(t, Float32.IsComplex())
	assert.Equal(t, "sdcz", Float32.Letter()+Float64.Letter()+Complex64.Letter()+Complex128.Letter())
}

func TestIndexBase(t *testing.T) {
	assert.True(t, IndexBaseZero.Valid())
	assert.True(t, IndexBaseOne.Valid())
	assert.False(t, IndexBase(2).Valid())
	assert.False(t, IndexBase(-1).Valid())
}

func TestPreambleReal(t *testing.T) {
	kb := NewBuilder(Config{FloatType: Float32, IntType: INT32})
	preamble := kb.GeneratePreamble()

	expected := []string{
		"typedef float real_t;",
		"typedef int int_t;",
		"#define REAL_ZERO 0.0f",
		"#define BLOCK_SIZE 256",
		"#define VALUE_STRIDE 1",
	}
	for _, s := range expected {
		assert.Contains(t, preamble, s)
	}
	assert.NotContains(t, preamble, "xi_")
}

func TestPreambleComplex(t *testing.T) {
	kb := NewBuilder(Config{FloatType: Complex128, IntType: INT64, BlockSize: 64})
	preamble := kb.GeneratePreamble()

	assert.Contains(t, preamble, "typedef double real_t;")
	assert.Contains(t, preamble, "typedef long int_t;")
	assert.Contains(t, preamble, "#define BLOCK_SIZE 64")
	assert.Contains(t, preamble, "#define VALUE_STRIDE 2")
	assert.Contains(t, preamble, "#define LOAD_IM(p) ((p)[1])")
}

func TestNewBuilderDefaults(t *testing.T) {
	kb := NewBuilder(Config{})
	assert.Equal(t, Float64, kb.FloatType)
	assert.Equal(t, INT64, kb.IntType)
	assert.Equal(t, DefaultBlockSize, kb.BlockSize)

	assert.Panics(t, func() { NewBuilder(Config{IntType: Float32}) })
	assert.Panics(t, func() { NewBuilder(Config{FloatType: INT32}) })
}

func TestKernelName(t *testing.T) {
	assert.Equal(t, "axpyi_z_i64_device", NewBuilderFor[int64, complex128](0).KernelName("axpyi", "device"))
	assert.Equal(t, "axpyi_s_i32", NewBuilderFor[int32, float32](0).KernelName("axpyi", ""))
}

func TestKernelSource(t *testing.T) {
	kb := NewBuilderFor[int32, float64](128)
	params := []Param{
		Scalar("n", "int_t"),
		In("x", "real_t"),
		InOut("y", "real_t"),
	}
	assert.Equal(t, "const int_t n,\n\tconst real_t* x,\n\treal_t* y", GenerateKernelSignature(params))

	src := kb.KernelSource("copy", params, "\t// body\n")
	assert.True(t, strings.HasPrefix(src, "typedef double real_t;"))
	assert.Contains(t, src, "@kernel void copy(\n\tconst int_t n,")
	assert.True(t, strings.HasSuffix(src, "\t// body\n}\n"))
}
