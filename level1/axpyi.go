// Package level1 implements the sparse level 1 operations. Each operation
// runs the same pipeline: argument checks, scalar resolution according to
// the handle pointer mode, launch geometry, and an asynchronous kernel launch
// on the handle queue.
package level1

import (
	"context"
	"log/slog"

	"github.com/notargets/DGSparse/memory"
	"github.com/notargets/DGSparse/runner"
	"github.com/notargets/DGSparse/runner/builder"
	"github.com/notargets/DGSparse/status"
)

// Argument positions of the AXPYI entry points
const (
	argHandle = iota
	argNNZ
	argAlpha
	argXVal
	argXInd
	argY
	argBase
)

// Axpyi computes y[x_ind[k]-base] += alpha * x_val[k] for k in [0, nnz).
//
// x_val, x_ind and y must be device or managed containers. alpha is read on
// the host in PointerModeHost and by the kernel in PointerModeDevice. The
// kernel is only enqueued; call Synchronize on the handle before reading y.
//
// With nnz == 0 nothing is checked past the index base and size. With a host
// alpha exactly zero the call returns before x_val, x_ind and y are checked,
// so nil data containers go unnoticed on that path.
//
// Entries sharing a target index in x_ind are accumulated by concurrent
// workers without synchronization; the result at such a position is
// unspecified.
func Axpyi[I builder.Index, T builder.Value](h *runner.Handle, nnz I, alpha *memory.Container[T],
	xVal *memory.Container[T], xInd *memory.Container[I], y *memory.Container[T],
	base builder.IndexBase) error {
	op := builder.DataTypeOf[T]().Letter() + "axpyi"

	// Check for valid handle
	if !h.Valid() {
		return status.Arg(status.InvalidHandle, op, argHandle, "handle")
	}

	traceAxpyi(h, op, nnz, alpha, xVal, xInd, y, base)

	// Check index base
	if !base.Valid() {
		return status.Arg(status.InvalidEnum, op, argBase, "idx_base")
	}

	// Check size
	if nnz < 0 {
		return status.Arg(status.InvalidSize, op, argNNZ, "nnz")
	}

	// Quick return if possible
	if nnz == 0 {
		return nil
	}

	// Check scalar
	mode := h.GetPointerMode()
	if alpha == nil || alpha.Len() == 0 {
		return status.Arg(status.InvalidPointer, op, argAlpha, "alpha")
	}

	var hostAlpha, zero T
	if mode == runner.PointerModeHost {
		if alpha.Location() == memory.Device {
			return status.Arg(status.InvalidPointer, op, argAlpha, "alpha is device memory in host pointer mode")
		}
		hostAlpha = alpha.At(0)
		if hostAlpha == zero {
			return nil
		}
	} else if !alpha.Location().DeviceAddressable() {
		return status.Arg(status.InvalidPointer, op, argAlpha, "alpha is host memory in device pointer mode")
	}

	// Check data
	if xVal == nil {
		return status.Arg(status.InvalidPointer, op, argXVal, "x_val")
	}
	if xInd == nil {
		return status.Arg(status.InvalidPointer, op, argXInd, "x_ind")
	}
	if y == nil {
		return status.Arg(status.InvalidPointer, op, argY, "y")
	}
	if err := checkOperand(op, argXVal, "x_val", xVal, int(nnz)); err != nil {
		return err
	}
	if err := checkOperand(op, argXInd, "x_ind", xInd, int(nnz)); err != nil {
		return err
	}
	if err := checkOperand(op, argY, "y", y, 1); err != nil {
		return err
	}

	return dispatchAxpyi(h, mode, nnz, alpha, hostAlpha, xVal, xInd, y, base)
}

// checkOperand rejects containers kernels cannot reach and containers
// shorter than minLen
func checkOperand[E builder.Element](op string, pos int, name string, c *memory.Container[E], minLen int) error {
	if c.Len() == 0 || !c.Location().DeviceAddressable() {
		return status.Arg(status.InvalidPointer, op, pos, name+" is not device memory")
	}
	if c.Len() < minLen {
		return status.Arg(status.InvalidSize, op, pos, name+" shorter than nnz")
	}
	return nil
}

// dispatchAxpyi resolves the scalar and enqueues the kernel
func dispatchAxpyi[I builder.Index, T builder.Value](h *runner.Handle, mode runner.PointerMode,
	nnz I, alpha *memory.Container[T], hostAlpha T,
	xVal *memory.Container[T], xInd *memory.Container[I], y *memory.Container[T],
	base builder.IndexBase) error {
	geometry := runner.Geometry(int64(nnz), AxpyiDim)

	name, err := buildAxpyi[I, T](h, mode)
	if err != nil {
		return err
	}

	if mode == runner.PointerModeDevice {
		// The value is unknown without a blocking read; the kernel checks
		// for zero itself.
		return h.Launch(name, geometry,
			nnz, int32(geometry.Blocks),
			alpha.Memory(),
			xVal.Memory(), xInd.Memory(), y.Memory(),
			I(base))
	}

	var zero T
	if hostAlpha == zero {
		return nil
	}
	re, im := runner.ScalarArgs(hostAlpha)
	return h.Launch(name, geometry,
		nnz, int32(geometry.Blocks),
		re, im,
		xVal.Memory(), xInd.Memory(), y.Memory(),
		I(base))
}

func traceAxpyi[I builder.Index, T builder.Value](h *runner.Handle, op string, nnz I,
	alpha *memory.Container[T], xVal *memory.Container[T], xInd *memory.Container[I],
	y *memory.Container[T], base builder.IndexBase) {
	logger := h.Logger()
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	logger.Debug(op,
		"nnz", nnz,
		"alpha", scalarTrace(h, alpha),
		"x_val", xVal.Base(),
		"x_ind", xInd.Base(),
		"y", y.Base(),
		"idx_base", base,
	)
}

// scalarTrace logs a host scalar by value and a device scalar by address
func scalarTrace[T builder.Value](h *runner.Handle, alpha *memory.Container[T]) interface{} {
	if alpha == nil || alpha.Len() == 0 {
		return nil
	}
	if h.GetPointerMode() == runner.PointerModeHost && alpha.Location() != memory.Device {
		return alpha.At(0)
	}
	return alpha.Base()
}
