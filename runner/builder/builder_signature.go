package builder

import (
	"fmt"
	"strings"
)

// Param describes one kernel argument in declaration order
type Param struct {
	Name    string
	Type    string // real_t, int_t, int
	Pointer bool
	Const   bool
}

// Scalar declares a by-value argument
func Scalar(name, typ string) Param {
	return Param{Name: name, Type: typ, Const: true}
}

// In declares a read-only device array
func In(name, typ string) Param {
	return Param{Name: name, Type: typ, Pointer: true, Const: true}
}

// InOut declares a device array the kernel writes to
func InOut(name, typ string) Param {
	return Param{Name: name, Type: typ, Pointer: true}
}

func (p Param) declaration() string {
	var sb strings.Builder
	if p.Const {
		sb.WriteString("const ")
	}
	sb.WriteString(p.Type)
	if p.Pointer {
		sb.WriteString("*")
	}
	sb.WriteString(" ")
	sb.WriteString(p.Name)
	return sb.String()
}

// GenerateKernelSignature generates the parameter list for a kernel function
func GenerateKernelSignature(params []Param) string {
	decls := make([]string, len(params))
	for i, p := range params {
		decls[i] = p.declaration()
	}
	return strings.Join(decls, ",\n\t")
}

// KernelSource assembles preamble, signature and body into a complete OKL
// translation unit ready for BuildKernelFromString
func (kb *Builder) KernelSource(name string, params []Param, body string) string {
	if kb.KernelPreamble == "" {
		kb.GeneratePreamble()
	}
	var sb strings.Builder
	sb.WriteString(kb.KernelPreamble)
	sb.WriteString(fmt.Sprintf("@kernel void %s(\n\t%s\n) {\n", name, GenerateKernelSignature(params)))
	sb.WriteString(body)
	sb.WriteString("}\n")
	return sb.String()
}
