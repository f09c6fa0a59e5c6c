// Package memory provides length-tracked buffers whose bytes live on the
// host, on an OCCA device, or in unified (managed) memory.
package memory

import (
	"fmt"
	"unsafe"

	"github.com/notargets/DGSparse/runner/builder"
	"github.com/notargets/gocca"
)

// Location selects where a buffer's bytes live
type Location int

const (
	Host Location = iota
	Device
	Managed
)

// managedProps requests unified memory from backends that support it.
// Backends without unified memory fall back to a regular device allocation.
const managedProps = `{"unified": true}`

func (l Location) String() string {
	switch l {
	case Host:
		return "host"
	case Device:
		return "device"
	case Managed:
		return "managed"
	}
	return fmt.Sprintf("Location(%d)", int(l))
}

// Valid reports whether l is one of the three known locations
func (l Location) Valid() bool {
	return l == Host || l == Device || l == Managed
}

// DeviceAddressable reports whether kernels can dereference memory at l
func (l Location) DeviceAddressable() bool {
	return l == Device || l == Managed
}

// store is the allocation strategy behind a Container. Exactly one
// implementation exists per Location.
type store[T builder.Element] interface {
	allocate(n int) error
	release()
	// upload and download copy exactly len(buf) elements and block until done
	upload(src []T)
	download(dst []T)
	load(i int) T
	hostSlice() []T
	deviceMemory() *gocca.OCCAMemory
}

func newStore[T builder.Element](device *gocca.OCCADevice, loc Location) (store[T], error) {
	switch loc {
	case Host:
		return &hostStore[T]{}, nil
	case Device, Managed:
		if device == nil {
			return nil, fmt.Errorf("%s memory requires a device", loc)
		}
		return &deviceStore[T]{device: device, managed: loc == Managed}, nil
	}
	return nil, fmt.Errorf("unknown memory location %d", int(loc))
}

func elemSize[T builder.Element]() int64 {
	var zero T
	return int64(unsafe.Sizeof(zero))
}

// hostStore keeps elements in a Go slice
type hostStore[T builder.Element] struct {
	data []T
}

func (h *hostStore[T]) allocate(n int) error {
	h.data = make([]T, n)
	return nil
}

func (h *hostStore[T]) release()                        { h.data = nil }
func (h *hostStore[T]) upload(src []T)                  { copy(h.data, src) }
func (h *hostStore[T]) download(dst []T)                { copy(dst, h.data) }
func (h *hostStore[T]) load(i int) T                    { return h.data[i] }
func (h *hostStore[T]) hostSlice() []T                  { return h.data }
func (h *hostStore[T]) deviceMemory() *gocca.OCCAMemory { return nil }

// deviceStore keeps elements in OCCA device memory. With managed set the
// allocation is requested as unified memory.
type deviceStore[T builder.Element] struct {
	device  *gocca.OCCADevice
	mem     *gocca.OCCAMemory
	managed bool
	n       int
}

func (d *deviceStore[T]) allocate(n int) error {
	d.n = n
	if n == 0 {
		// OCCA does not hand out zero-byte allocations
		d.mem = nil
		return nil
	}
	bytes := int64(n) * elemSize[T]()
	if d.managed {
		props := gocca.JsonParse(managedProps)
		defer props.Free()
		d.mem = d.device.Malloc(bytes, nil, props)
	} else {
		d.mem = d.device.Malloc(bytes, nil, nil)
	}
	if d.mem == nil {
		d.n = 0
		return fmt.Errorf("failed to allocate %d bytes on %s device", bytes, d.device.Mode())
	}
	return nil
}

func (d *deviceStore[T]) release() {
	if d.mem != nil {
		d.mem.Free()
		d.mem = nil
	}
	d.n = 0
}

func (d *deviceStore[T]) upload(src []T) {
	if len(src) == 0 {
		return
	}
	d.mem.CopyFrom(unsafe.Pointer(&src[0]), int64(len(src))*elemSize[T]())
}

func (d *deviceStore[T]) download(dst []T) {
	if len(dst) == 0 {
		return
	}
	d.mem.CopyTo(unsafe.Pointer(&dst[0]), int64(len(dst))*elemSize[T]())
}

func (d *deviceStore[T]) load(i int) T {
	var v T
	size := elemSize[T]()
	d.mem.CopyToWithOffset(unsafe.Pointer(&v), size, int64(i)*size)
	return v
}

func (d *deviceStore[T]) hostSlice() []T                  { return nil }
func (d *deviceStore[T]) deviceMemory() *gocca.OCCAMemory { return d.mem }
