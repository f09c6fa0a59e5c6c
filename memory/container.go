package memory

import (
	"fmt"
	"unsafe"

	"github.com/notargets/DGSparse/runner/builder"
	"github.com/notargets/DGSparse/status"
	"github.com/notargets/gocca"
)

// Container owns a buffer of exactly Len() elements at a fixed Location.
// A Container has a single owner and does no internal locking.
type Container[T builder.Element] struct {
	location Location
	device   *gocca.OCCADevice
	length   int
	store    store[T]
}

// NewContainer allocates n elements at loc. The device is only consulted for
// Device and Managed locations and may be nil for Host.
func NewContainer[T builder.Element](device *gocca.OCCADevice, loc Location, n int) (*Container[T], error) {
	if n < 0 {
		return nil, status.Errorf(status.InvalidSize, "NewContainer", "negative length %d", n)
	}
	st, err := newStore[T](device, loc)
	if err != nil {
		return nil, status.Wrap(status.InvalidValue, "NewContainer", err)
	}
	if err := st.allocate(n); err != nil {
		return nil, status.Wrap(status.InternalFault, "NewContainer", err)
	}
	return &Container[T]{
		location: loc,
		device:   device,
		length:   n,
		store:    st,
	}, nil
}

// NewHostContainer is NewContainer at the Host location
func NewHostContainer[T builder.Element](n int) *Container[T] {
	c, err := NewContainer[T](nil, Host, n)
	if err != nil {
		panic(err)
	}
	return c
}

// FromSlice returns a host container holding a copy of data
func FromSlice[T builder.Element](data []T) *Container[T] {
	c := NewHostContainer[T](len(data))
	copy(c.Host(), data)
	return c
}

// HostScalar returns a length-1 host container holding v
func HostScalar[T builder.Element](v T) *Container[T] {
	return FromSlice([]T{v})
}

// Len returns the number of elements
func (c *Container[T]) Len() int { return c.length }

// Location returns where the buffer lives
func (c *Container[T]) Location() Location { return c.location }

// Device returns the OCCA device backing Device/Managed containers
func (c *Container[T]) Device() *gocca.OCCADevice { return c.device }

// Bytes returns the size of the buffer in bytes
func (c *Container[T]) Bytes() int64 { return int64(c.length) * elemSize[T]() }

// DataType returns the element type tag
func (c *Container[T]) DataType() builder.DataType { return builder.DataTypeOf[T]() }

// Host returns the backing slice of a host container, nil otherwise
func (c *Container[T]) Host() []T { return c.store.hostSlice() }

// Memory returns the OCCA memory of a device or managed container, nil for
// host containers and zero-length buffers
func (c *Container[T]) Memory() *gocca.OCCAMemory { return c.store.deviceMemory() }

// Base returns the address of the first element for host containers and the
// OCCA memory handle otherwise. It identifies an allocation: it changes when,
// and only when, the buffer is reallocated.
func (c *Container[T]) Base() unsafe.Pointer {
	if c == nil || c.store == nil {
		return nil
	}
	if h := c.store.hostSlice(); len(h) > 0 {
		return unsafe.Pointer(&h[0])
	}
	if m := c.store.deviceMemory(); m != nil {
		return unsafe.Pointer(m)
	}
	return nil
}

// Resize reallocates the buffer to exactly n elements. Contents are not
// preserved.
func (c *Container[T]) Resize(n int) error {
	if n < 0 {
		return status.Errorf(status.InvalidSize, "Resize", "negative length %d", n)
	}
	c.store.release()
	c.length = 0
	if err := c.store.allocate(n); err != nil {
		return status.Wrap(status.InternalFault, "Resize", err)
	}
	c.length = n
	return nil
}

// TransferFrom copies all elements of other into c, whatever the two
// locations are. Lengths must match. The call returns once the copy is
// complete.
func (c *Container[T]) TransferFrom(other *Container[T]) error {
	if other == nil {
		return status.Errorf(status.InvalidPointer, "TransferFrom", "nil source")
	}
	if c.length != other.length {
		return status.Errorf(status.LocationTransferFault, "TransferFrom",
			"length %d != %d", c.length, other.length)
	}
	if c.length == 0 {
		return nil
	}

	switch {
	case other.location == Host:
		// host→host and host→device
		c.store.upload(other.store.hostSlice())
	case c.location == Host:
		// device→host
		other.store.download(c.store.hostSlice())
	default:
		// device→device, staged through the host
		staging := make([]T, c.length)
		other.store.download(staging)
		c.store.upload(staging)
	}
	return nil
}

// Upload fills the container from a host slice of the same length
func (c *Container[T]) Upload(src []T) error {
	if len(src) != c.length {
		return status.Errorf(status.LocationTransferFault, "Upload",
			"length %d != %d", len(src), c.length)
	}
	c.store.upload(src)
	return nil
}

// Download copies the container into a host slice of the same length
func (c *Container[T]) Download(dst []T) error {
	if len(dst) != c.length {
		return status.Errorf(status.LocationTransferFault, "Download",
			"length %d != %d", len(dst), c.length)
	}
	c.store.download(dst)
	return nil
}

// ToHost returns a copy of the contents as a new slice
func (c *Container[T]) ToHost() []T {
	out := make([]T, c.length)
	c.store.download(out)
	return out
}

// At reads element i wherever it lives
func (c *Container[T]) At(i int) T {
	if i < 0 || i >= c.length {
		panic(fmt.Sprintf("index %d out of range [0, %d)", i, c.length))
	}
	return c.store.load(i)
}

// Free releases the buffer. The container is left with length zero.
func (c *Container[T]) Free() {
	if c == nil || c.store == nil {
		return
	}
	c.store.release()
	c.length = 0
}
