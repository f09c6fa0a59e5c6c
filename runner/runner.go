package runner

import (
	"fmt"
	"log/slog"

	"github.com/eapache/queue"
	"github.com/notargets/DGSparse/status"
	"github.com/notargets/DGSparse/utils"
	"github.com/notargets/gocca"
)

// PointerMode declares how scalar operands are passed to an operation
type PointerMode int

const (
	// PointerModeHost scalars are host-resident and read before launch
	PointerModeHost PointerMode = iota
	// PointerModeDevice scalars are device-resident and read by the kernel
	PointerModeDevice
)

func (m PointerMode) String() string {
	switch m {
	case PointerModeHost:
		return "host"
	case PointerModeDevice:
		return "device"
	}
	return fmt.Sprintf("PointerMode(%d)", int(m))
}

// launchRecord keeps the arguments of an enqueued kernel referenced until the
// next synchronization
type launchRecord struct {
	name     string
	geometry LaunchGeometry
	args     []interface{}
}

// Handle is the execution context every sparse operation runs against. All
// kernels launched through one Handle execute in launch order on the device
// queue. A Handle must not be used from several goroutines at once.
type Handle struct {
	Device  *gocca.OCCADevice
	Kernels map[string]*gocca.OCCAKernel

	pointerMode PointerMode
	inflight    *queue.Queue
	logger      *slog.Logger
	launches    uint64
	ownsDevice  bool
}

// NewHandle creates a Handle bound to device. The device stays owned by the
// caller.
func NewHandle(device *gocca.OCCADevice, cfg Config) (*Handle, error) {
	if device == nil {
		return nil, status.Errorf(status.InvalidHandle, "NewHandle", "nil device")
	}
	h := &Handle{
		Device:   device,
		Kernels:  make(map[string]*gocca.OCCAKernel),
		inflight: queue.New(),
		logger:   cfg.logger(),
	}
	if err := h.SetPointerMode(cfg.PointerMode); err != nil {
		return nil, err
	}
	h.logger.Debug("handle created", "mode", device.Mode(), "pointer_mode", h.pointerMode)
	return h, nil
}

// NewHandleFromConfig creates the device described by cfg.DeviceProps
// (falling back to the default backends) and a Handle owning it
func NewHandleFromConfig(cfg Config) (*Handle, error) {
	device, err := utils.CreateDevice(cfg.DeviceProps)
	if err != nil {
		return nil, status.Wrap(status.InvalidHandle, "NewHandleFromConfig", err)
	}
	h, err := NewHandle(device, cfg)
	if err != nil {
		device.Free()
		return nil, err
	}
	h.ownsDevice = true
	return h, nil
}

// Valid reports whether h can accept work
func (h *Handle) Valid() bool {
	return h != nil && h.Device != nil
}

// SetPointerMode changes how subsequent operations interpret scalars
func (h *Handle) SetPointerMode(mode PointerMode) error {
	if !h.Valid() {
		return status.Errorf(status.InvalidHandle, "SetPointerMode", "invalid handle")
	}
	if mode != PointerModeHost && mode != PointerModeDevice {
		return status.Errorf(status.InvalidValue, "SetPointerMode", "unknown pointer mode %d", int(mode))
	}
	h.pointerMode = mode
	return nil
}

// GetPointerMode returns the current pointer mode
func (h *Handle) GetPointerMode() PointerMode {
	return h.pointerMode
}

// Logger returns the trace logger. It discards output unless tracing is on.
func (h *Handle) Logger() *slog.Logger {
	return h.logger
}

// BuildKernel compiles a kernel once and caches it under kernelName
func (h *Handle) BuildKernel(kernelSource, kernelName string) (*gocca.OCCAKernel, error) {
	if kernel, exists := h.Kernels[kernelName]; exists {
		return kernel, nil
	}

	var kernel *gocca.OCCAKernel
	var err error

	if h.Device.Mode() == "OpenMP" {
		// Workaround for OCCA bug: OpenMP doesn't get default -O3 flag
		props := gocca.JsonParse(`{"compiler_flags": "-O3"}`)
		defer props.Free()
		kernel, err = h.Device.BuildKernelFromString(kernelSource, kernelName, props)
	} else {
		kernel, err = h.Device.BuildKernelFromString(kernelSource, kernelName, nil)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to build kernel %s: %w", kernelName, err)
	}
	if kernel == nil {
		return nil, fmt.Errorf("kernel build returned nil for %s", kernelName)
	}

	h.Kernels[kernelName] = kernel
	h.logger.Debug("kernel built", "kernel", kernelName)
	return kernel, nil
}

// Launch enqueues a built kernel and returns without waiting for it to
// finish. Faults raised while the kernel runs surface at Synchronize.
func (h *Handle) Launch(kernelName string, geometry LaunchGeometry, args ...interface{}) error {
	kernel, exists := h.Kernels[kernelName]
	if !exists {
		return status.Errorf(status.InternalFault, "Launch", "kernel %s not built", kernelName)
	}

	if err := kernel.RunWithArgs(args...); err != nil {
		return status.Wrap(status.InternalFault, "Launch "+kernelName, err)
	}

	h.inflight.Add(launchRecord{name: kernelName, geometry: geometry, args: args})
	h.launches++
	h.logger.Debug("kernel launched", "kernel", kernelName,
		"blocks", geometry.Blocks, "threads", geometry.Threads)
	return nil
}

// Pending returns the number of launches since the last Synchronize
func (h *Handle) Pending() int {
	return h.inflight.Length()
}

// Launches returns the total number of kernels launched through h
func (h *Handle) Launches() uint64 {
	return h.launches
}

// Synchronize blocks until every launch on h has completed. A device fault
// raised while waiting is returned as an InternalFault.
func (h *Handle) Synchronize() (err error) {
	if !h.Valid() {
		return status.Errorf(status.InvalidHandle, "Synchronize", "invalid handle")
	}
	defer func() {
		if r := recover(); r != nil {
			err = status.Errorf(status.InternalFault, "Synchronize", "device fault: %v", r)
		}
		for h.inflight.Length() > 0 {
			h.inflight.Remove()
		}
	}()

	h.Device.Finish()
	return nil
}

// Free releases the kernels owned by h, and the device when h created it
func (h *Handle) Free() {
	if !h.Valid() {
		return
	}
	_ = h.Synchronize()
	for _, kernel := range h.Kernels {
		kernel.Free()
	}
	h.Kernels = make(map[string]*gocca.OCCAKernel)
	if h.ownsDevice {
		h.Device.Free()
	}
	h.Device = nil
}
