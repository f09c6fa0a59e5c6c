package utils

import (
	"fmt"
	"os"

	"github.com/notargets/gocca"
)

// EnvDevice names the environment variable holding OCCA device properties
const EnvDevice = "DGSPARSE_DEVICE"

// Backends tried, in order, when no device properties are configured
var fallbackBackends = []string{
	`{"mode": "OpenMP"}`,
	`{"mode": "CUDA", "device_id": 0}`,
	`{"mode": "Serial"}`,
}

// CreateDevice creates an OCCA device from the first usable properties in
// props, then DGSPARSE_DEVICE, then the OpenMP, CUDA and Serial backends
func CreateDevice(props ...string) (*gocca.OCCADevice, error) {
	candidates := make([]string, 0, len(props)+len(fallbackBackends)+1)
	for _, p := range props {
		if p != "" {
			candidates = append(candidates, p)
		}
	}
	if env := os.Getenv(EnvDevice); env != "" {
		candidates = append(candidates, env)
	}
	candidates = append(candidates, fallbackBackends...)

	var lastErr error
	for _, p := range candidates {
		device, err := gocca.NewDevice(p)
		if err == nil {
			return device, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("failed to create any device: %w", lastErr)
}

// CreateTestDevice creates a Device for testing, preferring parallel backends
func CreateTestDevice() *gocca.OCCADevice {
	device, err := CreateDevice()
	if err != nil {
		// Should not reach here, Serial is always built
		panic(err)
	}
	fmt.Printf("Created %s Device\n", device.Mode())
	return device
}
