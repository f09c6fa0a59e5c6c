package coo

import (
	"github.com/notargets/DGSparse/memory"
	"github.com/notargets/DGSparse/runner/builder"
	"github.com/notargets/DGSparse/status"
)

// FromTriplets builds a host matrix from zero-origin (row, col, val) lists.
// Indices are stored with base added.
func FromTriplets[I builder.Index, T builder.Value](m, n I, rows, cols []I, vals []T,
	base builder.IndexBase) (*Matrix[I, T], error) {
	if len(rows) != len(cols) || len(rows) != len(vals) {
		return nil, status.Errorf(status.InvalidSize, "coo.FromTriplets",
			"rows=%d cols=%d vals=%d", len(rows), len(cols), len(vals))
	}
	if !base.Valid() {
		return nil, status.Errorf(status.InvalidEnum, "coo.FromTriplets", "index base %d", int(base))
	}
	nnz := I(len(vals))
	A, err := New[I, T](nil, memory.Host, m, n, nnz, base)
	if err != nil {
		return nil, err
	}

	ind := A.Ind.Host()
	offset := I(base)
	for k := range rows {
		if rows[k] < 0 || rows[k] >= m || cols[k] < 0 || cols[k] >= n {
			A.Free()
			return nil, status.Errorf(status.InvalidValue, "coo.FromTriplets",
				"entry %d at (%d, %d) outside %dx%d", k, rows[k], cols[k], m, n)
		}
		ind[2*k] = rows[k] + offset
		ind[2*k+1] = cols[k] + offset
	}
	copy(A.Val.Host(), vals)
	return A, nil
}

// Row returns the zero-origin row index of nonzero k
func (A *Matrix[I, T]) Row(k int) I {
	return A.Ind.At(2*k) - I(A.Base)
}

// Col returns the zero-origin column index of nonzero k
func (A *Matrix[I, T]) Col(k int) I {
	return A.Ind.At(2*k+1) - I(A.Base)
}

// Triplets returns zero-origin copies of the row, column and value lists,
// wherever the matrix lives
func (A *Matrix[I, T]) Triplets() (rows, cols []I, vals []T) {
	ind := A.Ind.ToHost()
	vals = A.Val.ToHost()
	rows = make([]I, len(vals))
	cols = make([]I, len(vals))
	offset := I(A.Base)
	for k := range vals {
		rows[k] = ind[2*k] - offset
		cols[k] = ind[2*k+1] - offset
	}
	return rows, cols, vals
}
