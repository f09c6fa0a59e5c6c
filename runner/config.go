package runner

import (
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/notargets/DGSparse/utils"
)

// EnvTrace enables trace logging when set to a true value
const EnvTrace = "DGSPARSE_TRACE"

// Config holds configuration for creating a Handle
type Config struct {
	// DeviceProps are OCCA device properties, e.g. {"mode": "CUDA", "device_id": 0}.
	// Used by NewHandleFromConfig to create the device.
	DeviceProps string
	// PointerMode is the initial scalar pointer mode
	PointerMode PointerMode
	// Trace enables per-call trace logging
	Trace bool
	// LogOutput receives trace output; os.Stderr when nil
	LogOutput io.Writer
}

// ConfigFromEnv returns a Config populated from DGSPARSE_DEVICE and
// DGSPARSE_TRACE. Unset or unparsable values keep their defaults.
func ConfigFromEnv() Config {
	cfg := Config{
		DeviceProps: os.Getenv(utils.EnvDevice),
		PointerMode: PointerModeHost,
	}
	if v, ok := os.LookupEnv(EnvTrace); ok {
		if trace, err := strconv.ParseBool(v); err == nil {
			cfg.Trace = trace
		}
	}
	return cfg
}

func (cfg Config) logger() *slog.Logger {
	if !cfg.Trace {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	out := cfg.LogOutput
	if out == nil {
		out = os.Stderr
	}
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
