// Package coo implements the coordinate sparse format in array-of-structures
// layout: the row and column index of each nonzero are stored next to each
// other in one interleaved buffer.
//
// For nonzero k, Ind[2k] is its row index and Ind[2k+1] its column index,
// both stored with the matrix index base applied. This layout is part of the
// data format exchanged with callers.
package coo

import (
	"github.com/notargets/DGSparse/memory"
	"github.com/notargets/DGSparse/runner/builder"
	"github.com/notargets/DGSparse/status"
	"github.com/notargets/gocca"
)

// Matrix is a COO array-of-structures sparse matrix living at one memory
// location. Ind always holds 2*NNZ elements and Val NNZ elements.
type Matrix[I builder.Index, T builder.Value] struct {
	M, N, NNZ I
	Base      builder.IndexBase

	Ind *memory.Container[I]
	Val *memory.Container[T]
}

// New allocates an m x n matrix with room for nnz nonzeros at loc. Index and
// value contents are not initialized.
func New[I builder.Index, T builder.Value](device *gocca.OCCADevice, loc memory.Location,
	m, n, nnz I, base builder.IndexBase) (*Matrix[I, T], error) {
	if m < 0 || n < 0 || nnz < 0 {
		return nil, status.Errorf(status.InvalidSize, "coo.New", "m=%d n=%d nnz=%d", m, n, nnz)
	}
	ind, err := memory.NewContainer[I](device, loc, 2*int(nnz))
	if err != nil {
		return nil, err
	}
	val, err := memory.NewContainer[T](device, loc, int(nnz))
	if err != nil {
		ind.Free()
		return nil, err
	}
	return &Matrix[I, T]{
		M: m, N: n, NNZ: nnz, Base: base,
		Ind: ind,
		Val: val,
	}, nil
}

// NewFrom allocates a matrix at loc with the shape of that. With transfer set
// the contents of that are copied in before returning; otherwise the new
// matrix is left uninitialized for a later fill.
func NewFrom[I builder.Index, T builder.Value](device *gocca.OCCADevice, loc memory.Location,
	that *Matrix[I, T], transfer bool) (*Matrix[I, T], error) {
	if that == nil {
		return nil, status.Errorf(status.InvalidPointer, "coo.NewFrom", "nil source matrix")
	}
	A, err := New[I, T](device, loc, that.M, that.N, that.NNZ, that.Base)
	if err != nil {
		return nil, err
	}
	if transfer {
		if err = A.TransferFrom(that); err != nil {
			A.Free()
			return nil, err
		}
	}
	return A, nil
}

// Location returns where the matrix buffers live
func (A *Matrix[I, T]) Location() memory.Location {
	return A.Val.Location()
}

// SameShape reports whether A and that agree on m, n, nnz and base
func (A *Matrix[I, T]) SameShape(that *Matrix[I, T]) bool {
	return A.M == that.M && A.N == that.N && A.NNZ == that.NNZ && A.Base == that.Base
}

// TransferFrom copies that into A. The shapes must match exactly, otherwise
// nothing is copied. Ind is transferred before Val and the two transfers are
// independent: a failure in Val leaves Ind already transferred.
func (A *Matrix[I, T]) TransferFrom(that *Matrix[I, T]) error {
	if that == nil {
		return status.Errorf(status.InvalidPointer, "coo.TransferFrom", "nil source matrix")
	}
	if !A.SameShape(that) {
		return status.Errorf(status.TransferMismatch, "coo.TransferFrom",
			"(m=%d n=%d nnz=%d base=%d) != (m=%d n=%d nnz=%d base=%d)",
			A.M, A.N, A.NNZ, A.Base, that.M, that.N, that.NNZ, that.Base)
	}
	if err := A.Ind.TransferFrom(that.Ind); err != nil {
		return err
	}
	return A.Val.TransferFrom(that.Val)
}

// Define reshapes A in place. m, n and base are always overwritten; the
// buffers are reallocated only when nnz changes, so repeated use with a fixed
// nnz keeps the same allocations.
func (A *Matrix[I, T]) Define(m, n, nnz I, base builder.IndexBase) error {
	if m < 0 || n < 0 || nnz < 0 {
		return status.Errorf(status.InvalidSize, "coo.Define", "m=%d n=%d nnz=%d", m, n, nnz)
	}
	A.M = m
	A.N = n
	A.Base = base
	if nnz != A.NNZ {
		A.NNZ = nnz
		if err := A.Ind.Resize(2 * int(nnz)); err != nil {
			return err
		}
		if err := A.Val.Resize(int(nnz)); err != nil {
			return err
		}
	}
	return nil
}

// Free releases both buffers
func (A *Matrix[I, T]) Free() {
	A.Ind.Free()
	A.Val.Free()
}
