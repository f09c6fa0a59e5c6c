package level1

import (
	"fmt"

	"github.com/notargets/DGSparse/runner/builder"
)

// HostAxpyi is the sequential host reference of Axpyi on plain slices. It
// checks index ranges, which the device path does not, and returns an error
// for the first entry falling outside y.
func HostAxpyi[I builder.Index, T builder.Value](alpha T, xVal []T, xInd []I, y []T,
	base builder.IndexBase) error {
	if len(xVal) != len(xInd) {
		return fmt.Errorf("x_val has %d entries, x_ind %d", len(xVal), len(xInd))
	}
	if !base.Valid() {
		return fmt.Errorf("invalid index base %d", int(base))
	}
	var zero T
	if alpha == zero {
		return nil
	}
	for k, idx := range xInd {
		j := int(idx) - int(base)
		if j < 0 || j >= len(y) {
			return fmt.Errorf("x_ind[%d] = %d outside y of length %d (base %d)", k, idx, len(y), base)
		}
		y[j] += alpha * xVal[k]
	}
	return nil
}
