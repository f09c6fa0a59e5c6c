package level1

import (
	"fmt"

	"github.com/notargets/DGSparse/runner"
	"github.com/notargets/DGSparse/runner/builder"
	"github.com/notargets/DGSparse/status"
)

// AxpyiDim is the number of @inner workers per block
const AxpyiDim = 256

// axpyiBody is shared by both scalar variants; the alpha load is spliced in.
// A zero alpha skips the accumulate but the launch still happens.
const axpyiBody = `	for (int blk = 0; blk < nblocks; ++blk; @outer) {
		for (int tid = 0; tid < BLOCK_SIZE; ++tid; @inner) {
			const int_t k = (int_t) blk * BLOCK_SIZE + tid;
%s
			if (k < nnz && !IS_ZERO(ar, ai)) {
				const int_t j = x_ind[k] - base;
				AXPY_ELEM(y, j, ar, ai, x_val, k);
			}
		}
	}
`

const (
	hostAlphaLoad = `			const real_t ar = alpha_re;
			const real_t ai = alpha_im;`
	deviceAlphaLoad = `			const real_t ar = alpha[0];
			const real_t ai = LOAD_IM(alpha);`
)

// axpyiParams returns the kernel signature for the given pointer mode. Host
// mode takes alpha by value as (re, im), device mode takes its address.
func axpyiParams(mode runner.PointerMode) []builder.Param {
	params := []builder.Param{
		builder.Scalar("nnz", "int_t"),
		builder.Scalar("nblocks", "int"),
	}
	if mode == runner.PointerModeDevice {
		params = append(params, builder.In("alpha", "real_t"))
	} else {
		params = append(params,
			builder.Scalar("alpha_re", "real_t"),
			builder.Scalar("alpha_im", "real_t"),
		)
	}
	return append(params,
		builder.In("x_val", "real_t"),
		builder.In("x_ind", "int_t"),
		builder.InOut("y", "real_t"),
		builder.Scalar("base", "int_t"),
	)
}

// AxpyiSource returns the OKL source and kernel name of the AXPYI kernel for
// index type I, value type T and the given pointer mode
func AxpyiSource[I builder.Index, T builder.Value](mode runner.PointerMode) (source, name string) {
	bld := builder.NewBuilderFor[I, T](AxpyiDim)
	load := hostAlphaLoad
	if mode == runner.PointerModeDevice {
		load = deviceAlphaLoad
	}
	name = axpyiName[I, T](mode)
	source = bld.KernelSource(name, axpyiParams(mode), fmt.Sprintf(axpyiBody, load))
	return source, name
}

func axpyiName[I builder.Index, T builder.Value](mode runner.PointerMode) string {
	return builder.NewBuilderFor[I, T](AxpyiDim).KernelName("axpyi", mode.String())
}

// buildAxpyi compiles the kernel on first use and returns its name
func buildAxpyi[I builder.Index, T builder.Value](h *runner.Handle, mode runner.PointerMode) (string, error) {
	name := axpyiName[I, T](mode)
	if _, exists := h.Kernels[name]; exists {
		return name, nil
	}
	source, _ := AxpyiSource[I, T](mode)
	if _, err := h.BuildKernel(source, name); err != nil {
		return "", status.Wrap(status.InternalFault, name, err)
	}
	return name, nil
}
