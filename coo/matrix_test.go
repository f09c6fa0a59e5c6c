package coo

import (
	"testing"

	"github.com/notargets/DGSparse/memory"
	"github.com/notargets/DGSparse/runner/builder"
	"github.com/notargets/DGSparse/status"
	"github.com/notargets/DGSparse/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromTripletsInterleavesIndices(t *testing.T) {
	A, err := FromTriplets[int32, float64](3, 3,
		[]int32{0, 1, 2}, []int32{1, 0, 2}, []float64{1, 2, 3}, builder.IndexBaseZero)
	require.NoError(t, err)

	assert.Equal(t, []int32{0, 1, 1, 0, 2, 2}, A.Ind.Host())
	assert.Equal(t, []float64{1, 2, 3}, A.Val.Host())
	assert.Equal(t, 2*int(A.NNZ), A.Ind.Len())
	assert.Equal(t, int(A.NNZ), A.Val.Len())
}

func TestFromTripletsOneBased(t *testing.T) {
	A, err := FromTriplets[int64, float32](3, 3,
		[]int64{0, 1, 2}, []int64{1, 0, 2}, []float32{1, 2, 3}, builder.IndexBaseOne)
	require.NoError(t, err)

	assert.Equal(t, []int64{1, 2, 2, 1, 3, 3}, A.Ind.Host())
	assert.Equal(t, int64(1), A.Row(1))
	assert.Equal(t, int64(0), A.Col(1))

	rows, cols, vals := A.Triplets()
	assert.Equal(t, []int64{0, 1, 2}, rows)
	assert.Equal(t, []int64{1, 0, 2}, cols)
	assert.Equal(t, []float32{1, 2, 3}, vals)
}

func TestFromTripletsErrors(t *testing.T) {
	_, err := FromTriplets[int32, float64](2, 2, []int32{0}, []int32{0, 1}, []float64{1}, builder.IndexBaseZero)
	assert.True(t, status.Is(err, status.InvalidSize))

	_, err = FromTriplets[int32, float64](2, 2, []int32{2}, []int32{0}, []float64{1}, builder.IndexBaseZero)
	assert.True(t, status.Is(err, status.InvalidValue))

	_, err = FromTriplets[int32, float64](2, 2, []int32{0}, []int32{0}, []float64{1}, builder.IndexBase(3))
	assert.True(t, status.Is(err, status.InvalidEnum))
}

func TestNewAllocatesShape(t *testing.T) {
	A, err := New[int32, complex64](nil, memory.Host, 4, 5, 7, builder.IndexBaseOne)
	require.NoError(t, err)
	assert.Equal(t, 14, A.Ind.Len())
	assert.Equal(t, 7, A.Val.Len())
	assert.Equal(t, memory.Host, A.Location())

	_, err = New[int32, complex64](nil, memory.Host, 4, 5, -1, builder.IndexBaseZero)
	assert.True(t, status.Is(err, status.InvalidSize))
}

func TestDefineSameNNZKeepsBuffers(t *testing.T) {
	A, err := New[int32, float64](nil, memory.Host, 10, 10, 4, builder.IndexBaseZero)
	require.NoError(t, err)
	ind, val := A.Ind.Base(), A.Val.Base()

	require.NoError(t, A.Define(20, 30, 4, builder.IndexBaseOne))
	require.NoError(t, A.Define(20, 30, 4, builder.IndexBaseOne))

	assert.Equal(t, ind, A.Ind.Base(), "ind must not be reallocated")
	assert.Equal(t, val, A.Val.Base(), "val must not be reallocated")
	assert.Equal(t, int32(20), A.M)
	assert.Equal(t, int32(30), A.N)
	assert.Equal(t, builder.IndexBaseOne, A.Base)
}

func TestDefineNewNNZReallocates(t *testing.T) {
	A, err := New[int64, float32](nil, memory.Host, 10, 10, 4, builder.IndexBaseZero)
	require.NoError(t, err)
	ind, val := A.Ind.Base(), A.Val.Base()

	require.NoError(t, A.Define(10, 10, 6, builder.IndexBaseZero))
	assert.Equal(t, int64(6), A.NNZ)
	assert.Equal(t, 12, A.Ind.Len())
	assert.Equal(t, 6, A.Val.Len())
	assert.NotEqual(t, ind, A.Ind.Base())
	assert.NotEqual(t, val, A.Val.Base())

	require.NoError(t, A.Define(10, 10, 0, builder.IndexBaseZero))
	assert.Equal(t, 0, A.Ind.Len())
	assert.Equal(t, 0, A.Val.Len())
}

func TestTransferFromShapeMismatch(t *testing.T) {
	src, err := FromTriplets[int32, float64](3, 3,
		[]int32{0, 1, 2}, []int32{1, 0, 2}, []float64{1, 2, 3}, builder.IndexBaseZero)
	require.NoError(t, err)

	dst, err := FromTriplets[int32, float64](3, 3,
		[]int32{0, 1}, []int32{0, 1}, []float64{7, 8}, builder.IndexBaseZero)
	require.NoError(t, err)

	err = dst.TransferFrom(src)
	assert.True(t, status.Is(err, status.TransferMismatch))
	assert.Equal(t, []int32{0, 0, 1, 1}, dst.Ind.Host(), "ind untouched")
	assert.Equal(t, []float64{7, 8}, dst.Val.Host(), "val untouched")
	assert.Equal(t, int32(2), dst.NNZ)

	// Same nnz, different base
	other, err := New[int32, float64](nil, memory.Host, 3, 3, 3, builder.IndexBaseOne)
	require.NoError(t, err)
	assert.True(t, status.Is(other.TransferFrom(src), status.TransferMismatch))
}

func TestNewFromHostCopy(t *testing.T) {
	src, err := FromTriplets[int32, complex128](2, 2,
		[]int32{0, 1}, []int32{1, 0}, []complex128{1i, 2}, builder.IndexBaseZero)
	require.NoError(t, err)

	cp, err := NewFrom(nil, memory.Host, src, true)
	require.NoError(t, err)
	assert.Equal(t, src.Ind.Host(), cp.Ind.Host())
	assert.Equal(t, src.Val.Host(), cp.Val.Host())

	staged, err := NewFrom(nil, memory.Host, src, false)
	require.NoError(t, err)
	assert.True(t, staged.SameShape(src))
	assert.Equal(t, []complex128{0, 0}, staged.Val.Host())
}

func TestDeviceRoundTrip(t *testing.T) {
	device := utils.CreateTestDevice()
	defer device.Free()

	hA, err := FromTriplets[int32, float64](4, 4,
		[]int32{0, 1, 3}, []int32{2, 0, 3}, []float64{1.5, -2, 4}, builder.IndexBaseOne)
	require.NoError(t, err)

	dA, err := NewFrom(device, memory.Device, hA, true)
	require.NoError(t, err)
	defer dA.Free()
	assert.Equal(t, memory.Device, dA.Location())
	assert.Equal(t, int32(2), dA.Col(0), "device reads are location aware")

	mA, err := NewFrom(device, memory.Managed, dA, true)
	require.NoError(t, err)
	defer mA.Free()

	back, err := NewFrom(nil, memory.Host, mA, true)
	require.NoError(t, err)
	assert.Equal(t, hA.Ind.Host(), back.Ind.Host())
	assert.Equal(t, hA.Val.Host(), back.Val.Host())

	// Define on a device matrix with unchanged nnz keeps its allocations
	ind := dA.Ind.Base()
	require.NoError(t, dA.Define(8, 8, 3, builder.IndexBaseZero))
	assert.Equal(t, ind, dA.Ind.Base())
}
