// Package probe implements the platform-specific probe collaborators
// consumed by the detection policy. Probes are thin I/O glue around
// OS commands and gopsutil; all classification happens in detect.
package probe

import (
	"context"
	"runtime"
)

// RuntimeOSProbe reports the OS family derived from runtime.GOOS.
type RuntimeOSProbe struct{}

// NewRuntimeOSProbe creates a new runtime-based OS probe.
func NewRuntimeOSProbe() RuntimeOSProbe {
	return RuntimeOSProbe{}
}

// OS returns the capitalized OS family name ("Linux", "Darwin",
// "Windows"). Other GOOS values are passed through verbatim so the
// detection policy rejects them with its own error.
func (RuntimeOSProbe) OS(_ context.Context) (string, error) {
	switch runtime.GOOS {
	case "linux":
		return "Linux", nil
	case "darwin":
		return "Darwin", nil
	case "windows":
		return "Windows", nil
	default:
		return runtime.GOOS, nil
	}
}
