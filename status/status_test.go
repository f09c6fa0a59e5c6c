package status

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Status
	}{
		{"nil", nil, StatusSuccess},
		{"handle", Arg(InvalidHandle, "axpyi", 0, "handle"), StatusInvalidHandle},
		{"enum", Arg(InvalidEnum, "axpyi", 6, "idx_base"), StatusInvalidValue},
		{"size", Arg(InvalidSize, "axpyi", 1, "nnz"), StatusInvalidSize},
		{"pointer", Arg(InvalidPointer, "axpyi", 2, "alpha"), StatusInvalidPointer},
		{"transfer mismatch", Errorf(TransferMismatch, "TransferFrom", "nnz 3 != 4"), StatusInvalidValue},
		{"container transfer", Errorf(LocationTransferFault, "TransferFrom", "length 3 != 4"), StatusInvalidValue},
		{"wrapped", fmt.Errorf("outer: %w", Arg(InvalidSize, "axpyi", 1, "nnz")), StatusInvalidSize},
		{"unclassified", errors.New("boom"), StatusInternalError},
		{"internal", Wrap(InternalFault, "launch", errors.New("device lost")), StatusInternalError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FromError(tc.err))
		})
	}
}

func TestGuardRecoversPanic(t *testing.T) {
	entry := func() (st Status) {
		defer Guard(&st)
		var m map[string]int
		m["x"] = 1
		return StatusSuccess
	}
	assert.Equal(t, StatusInternalError, entry())
}

func TestGuardLeavesStatusAlone(t *testing.T) {
	entry := func() (st Status) {
		defer Guard(&st)
		return StatusInvalidSize
	}
	assert.Equal(t, StatusInvalidSize, entry())
}

func TestErrorMessage(t *testing.T) {
	err := Arg(InvalidPointer, "daxpyi", 3, "x_val")
	assert.Equal(t, "daxpyi: argument 3: invalid pointer: x_val", err.Error())

	inner := errors.New("device lost")
	wrapped := Wrap(InternalFault, "launch", inner)
	assert.True(t, errors.Is(wrapped, inner))
	assert.True(t, Is(wrapped, InternalFault))
	assert.False(t, Is(wrapped, InvalidSize))
}
