// Package display renders an ExecutionPlatform for human or machine
// consumption. Pure formatting — every decision was already made by
// the detection policy.
package display

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/vkscout/agent/internal/hardware"
	"github.com/vkscout/agent/internal/probe"
)

// Summary writes the human-readable detection report: OS, GPU list,
// CPU model, chosen backend, and which device will execute shaders.
// details may be nil.
func Summary(w io.Writer, p *hardware.ExecutionPlatform, details *probe.HostDetails) {
	fmt.Fprintf(w, "Detected OS     -> %s\n", p.OS)
	gpus := p.AvailableHardware[hardware.GPU]
	fmt.Fprintf(w, "Detected GPUs   -> %s\n", formatGPUs(gpus))
	if cpus := p.AvailableHardware[hardware.CPU]; len(cpus) > 0 {
		fmt.Fprintf(w, "Detected CPU    -> %s\n", cpus[0].Model)
	}
	fmt.Fprintf(w, "Vulkan backend  -> %s\n", p.Backend)
	if len(gpus) > 0 {
		fmt.Fprintf(w, "Shaders will most likely be executed on %s\n", gpus[0].Model)
	} else {
		fmt.Fprintln(w, "No GPU detected, shaders will be executed on CPU")
	}
	if details != nil && details.Hostname != "" {
		fmt.Fprintf(w, "Host            -> %s (%s, kernel %s)\n",
			details.Hostname, details.Platform, details.KernelVersion)
	}
}

// JSON writes the platform record as indented JSON.
func JSON(w io.Writer, p *hardware.ExecutionPlatform) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

// formatGPUs renders the GPU list as "model (driver x.y)" entries, or
// "none" when the list is empty.
func formatGPUs(gpus []hardware.HardwareInformation) string {
	if len(gpus) == 0 {
		return "none"
	}
	parts := make([]string, len(gpus))
	for i, g := range gpus {
		parts[i] = fmt.Sprintf("%s (driver %s)", g.Model, g.DriverVersion)
	}
	return strings.Join(parts, ", ")
}
