package coo

import (
	"github.com/james-bowman/sparse"
	"github.com/notargets/DGSparse/runner/builder"
	"gonum.org/v1/gonum/mat"
)

// ToDense expands a real double precision matrix into a gonum Dense.
// Duplicate entries are summed. An empty shape gives an empty Dense.
func ToDense[I builder.Index](A *Matrix[I, float64]) *mat.Dense {
	if A.M == 0 || A.N == 0 {
		return &mat.Dense{}
	}
	rows, cols, vals := A.Triplets()
	d := mat.NewDense(int(A.M), int(A.N), nil)
	for k, v := range vals {
		i, j := int(rows[k]), int(cols[k])
		d.Set(i, j, d.At(i, j)+v)
	}
	return d
}

// FromDense collects the nonzeros of src in row-major order into a host
// matrix
func FromDense[I builder.Index](src mat.Matrix, base builder.IndexBase) (*Matrix[I, float64], error) {
	r, c := src.Dims()
	var rows, cols []I
	var vals []float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v := src.At(i, j); v != 0 {
				rows = append(rows, I(i))
				cols = append(cols, I(j))
				vals = append(vals, v)
			}
		}
	}
	return FromTriplets(I(r), I(c), rows, cols, vals, base)
}

// ToSparse converts a real double precision matrix into a james-bowman/sparse
// COO, which plugs into the gonum mat interfaces and converts to CSR/CSC
func ToSparse[I builder.Index](A *Matrix[I, float64]) *sparse.COO {
	rows, cols, vals := A.Triplets()
	ia := make([]int, len(rows))
	ja := make([]int, len(cols))
	for k := range rows {
		ia[k] = int(rows[k])
		ja[k] = int(cols[k])
	}
	return sparse.NewCOO(int(A.M), int(A.N), ia, ja, vals)
}

// FromSparse copies the stored entries of a james-bowman/sparse COO into a
// host matrix, keeping their order
func FromSparse[I builder.Index](src *sparse.COO, base builder.IndexBase) (*Matrix[I, float64], error) {
	r, c := src.Dims()
	rows := make([]I, 0, src.NNZ())
	cols := make([]I, 0, src.NNZ())
	vals := make([]float64, 0, src.NNZ())
	src.DoNonZero(func(i, j int, v float64) {
		rows = append(rows, I(i))
		cols = append(cols, I(j))
		vals = append(vals, v)
	})
	return FromTriplets(I(r), I(c), rows, cols, vals, base)
}
