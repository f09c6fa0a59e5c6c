package level1

import (
	"github.com/notargets/DGSparse/memory"
	"github.com/notargets/DGSparse/runner"
	"github.com/notargets/DGSparse/runner/builder"
	"github.com/notargets/DGSparse/status"
)

// Public AXPYI entry points, one per (precision, index width). The prefix
// letter selects the precision (s, d, c, z) and the 64 suffix selects 64-bit
// indices. They never panic: any fault is returned as StatusInternalError.

func Saxpyi(h *runner.Handle, nnz int32, alpha *memory.Container[float32],
	xVal *memory.Container[float32], xInd *memory.Container[int32], y *memory.Container[float32],
	base builder.IndexBase) (st status.Status) {
	defer status.Guard(&st)
	return status.FromError(Axpyi(h, nnz, alpha, xVal, xInd, y, base))
}

func Daxpyi(h *runner.Handle, nnz int32, alpha *memory.Container[float64],
	xVal *memory.Container[float64], xInd *memory.Container[int32], y *memory.Container[float64],
	base builder.IndexBase) (st status.Status) {
	defer status.Guard(&st)
	return status.FromError(Axpyi(h, nnz, alpha, xVal, xInd, y, base))
}

func Caxpyi(h *runner.Handle, nnz int32, alpha *memory.Container[complex64],
	xVal *memory.Container[complex64], xInd *memory.Container[int32], y *memory.Container[complex64],
	base builder.IndexBase) (st status.Status) {
	defer status.Guard(&st)
	return status.FromError(Axpyi(h, nnz, alpha, xVal, xInd, y, base))
}

func Zaxpyi(h *runner.Handle, nnz int32, alpha *memory.Container[complex128],
	xVal *memory.Container[complex128], xInd *memory.Container[int32], y *memory.Container[complex128],
	base builder.IndexBase) (st status.Status) {
	defer status.Guard(&st)
	return status.FromError(Axpyi(h, nnz, alpha, xVal, xInd, y, base))
}

func Saxpyi64(h *runner.Handle, nnz int64, alpha *memory.Container[float32],
	xVal *memory.Container[float32], xInd *memory.Container[int64], y *memory.Container[float32],
	base builder.IndexBase) (st status.Status) {
	defer status.Guard(&st)
	return status.FromError(Axpyi(h, nnz, alpha, xVal, xInd, y, base))
}

func Daxpyi64(h *runner.Handle, nnz int64, alpha *memory.Container[float64],
	xVal *memory.Container[float64], xInd *memory.Container[int64], y *memory.Container[float64],
	base builder.IndexBase) (st status.Status) {
	defer status.Guard(&st)
	return status.FromError(Axpyi(h, nnz, alpha, xVal, xInd, y, base))
}

func Caxpyi64(h *runner.Handle, nnz int64, alpha *memory.Container[complex64],
	xVal *memory.Container[complex64], xInd *memory.Container[int64], y *memory.Container[complex64],
	base builder.IndexBase) (st status.Status) {
	defer status.Guard(&st)
	return status.FromError(Axpyi(h, nnz, alpha, xVal, xInd, y, base))
}

func Zaxpyi64(h *runner.Handle, nnz int64, alpha *memory.Container[complex128],
	xVal *memory.Container[complex128], xInd *memory.Container[int64], y *memory.Container[complex128],
	base builder.IndexBase) (st status.Status) {
	defer status.Guard(&st)
	return status.FromError(Axpyi(h, nnz, alpha, xVal, xInd, y, base))
}
