package builder

import (
	"fmt"
	"strings"
)

// DefaultBlockSize is the @inner width used when a Config does not set one
const DefaultBlockSize = 256

// Builder generates OKL source for one (index type, value type) instantiation
type Builder struct {
	// Type configuration
	FloatType DataType
	IntType   DataType

	// Workers per @outer iteration
	BlockSize int

	// Generated code
	KernelPreamble string
}

// Config holds configuration for creating a Builder
type Config struct {
	FloatType DataType
	IntType   DataType
	BlockSize int
}

// NewBuilder creates a new Builder instance
func NewBuilder(cfg Config) *Builder {
	// Set defaults
	floatType := cfg.FloatType
	if floatType == 0 {
		floatType = Float64
	}
	intType := cfg.IntType
	if intType == 0 {
		intType = INT64
	}
	if intType != INT32 && intType != INT64 {
		panic(fmt.Sprintf("index type must be INT32 or INT64, got %v", intType))
	}
	if floatType == INT32 || floatType == INT64 {
		panic(fmt.Sprintf("value type must be a real or complex float, got %v", floatType))
	}
	blockSize := cfg.BlockSize
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	return &Builder{
		FloatType: floatType,
		IntType:   intType,
		BlockSize: blockSize,
	}
}

// NewBuilderFor creates a Builder for the Go index and value types I and T
func NewBuilderFor[I Index, T Value](blockSize int) *Builder {
	return NewBuilder(Config{
		FloatType: DataTypeOf[T](),
		IntType:   DataTypeOf[I](),
		BlockSize: blockSize,
	})
}

// GeneratePreamble generates the kernel preamble with type definitions and
// value access macros
func (kb *Builder) GeneratePreamble() string {
	var sb strings.Builder

	// 1. Type definitions and constants
	sb.WriteString(kb.generateTypeDefinitions())

	// 2. Real / complex element macros
	sb.WriteString(kb.generateValueMacros())

	kb.KernelPreamble = sb.String()
	return kb.KernelPreamble
}

// generateTypeDefinitions creates type definitions based on precision settings
func (kb *Builder) generateTypeDefinitions() string {
	var sb strings.Builder

	// Complex values are handled as pairs of their component type
	floatTypeStr := "double"
	floatSuffix := ""
	if kb.FloatType.Component() == Float32 {
		floatTypeStr = "float"
		floatSuffix = "f"
	}

	intTypeStr := "long"
	if kb.IntType == INT32 {
		intTypeStr = "int"
	}

	sb.WriteString(fmt.Sprintf("typedef %s real_t;\n", floatTypeStr))
	sb.WriteString(fmt.Sprintf("typedef %s int_t;\n", intTypeStr))
	sb.WriteString(fmt.Sprintf("#define REAL_ZERO 0.0%s\n", floatSuffix))
	sb.WriteString(fmt.Sprintf("#define REAL_ONE 1.0%s\n", floatSuffix))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("#define BLOCK_SIZE %d\n", kb.BlockSize))
	sb.WriteString("\n")

	return sb.String()
}

// generateValueMacros emits the element arithmetic used by kernels. Kernels
// are written once against these macros and work for real and complex data.
func (kb *Builder) generateValueMacros() string {
	var sb strings.Builder

	sb.WriteString("// Value access macros\n")
	if kb.FloatType.IsComplex() {
		sb.WriteString("#define VALUE_STRIDE 2\n")
		sb.WriteString("#define LOAD_IM(p) ((p)[1])\n")
		sb.WriteString("#define IS_ZERO(re, im) ((re) == REAL_ZERO && (im) == REAL_ZERO)\n")
		sb.WriteString("#define AXPY_ELEM(y, j, ar, ai, x, k) { \\\n")
		sb.WriteString("    const real_t xr_ = (x)[2 * (k)]; \\\n")
		sb.WriteString("    const real_t xi_ = (x)[2 * (k) + 1]; \\\n")
		sb.WriteString("    (y)[2 * (j)] += (ar) * xr_ - (ai) * xi_; \\\n")
		sb.WriteString("    (y)[2 * (j) + 1] += (ar) * xi_ + (ai) * xr_; \\\n")
		sb.WriteString("}\n")
	} else {
		sb.WriteString("#define VALUE_STRIDE 1\n")
		sb.WriteString("#define LOAD_IM(p) REAL_ZERO\n")
		sb.WriteString("#define IS_ZERO(re, im) ((re) == REAL_ZERO)\n")
		sb.WriteString("#define AXPY_ELEM(y, j, ar, ai, x, k) { (y)[(j)] += (ar) * (x)[(k)]; }\n")
	}
	sb.WriteString("\n")

	return sb.String()
}

// KernelName returns the registered name of an operation's kernel for this
// instantiation, e.g. axpyi_z_i64_device
func (kb *Builder) KernelName(op, variant string) string {
	name := fmt.Sprintf("%s_%s_i%d", op, kb.FloatType.Letter(), kb.GetIntSize()*8)
	if variant != "" {
		name += "_" + variant
	}
	return name
}

// GetIntSize returns the size of the integer type in bytes
func (kb *Builder) GetIntSize() int {
	if kb.IntType == INT32 {
		return 4
	}
	return 8
}
