// NVIDIA GPU probe — enumerates discrete GPUs via nvidia-smi.
// A missing binary or a failing query means "no GPU visible", which is
// reported as an empty list rather than an error.
package probe

import (
	"context"
	"os/exec"
	"strings"

	"github.com/vkscout/agent/internal/detect"
)

// NvidiaGPUProbe enumerates discrete NVIDIA GPUs by querying
// nvidia-smi. The driver reports devices in a stable order, so the
// first line corresponds to GPU index 0.
type NvidiaGPUProbe struct {
	// SMIPath overrides the nvidia-smi binary path.
	// Empty means a $PATH lookup of "nvidia-smi".
	SMIPath string
}

// NewNvidiaGPUProbe creates a GPU probe using the given nvidia-smi
// path ("" for the default $PATH lookup).
func NewNvidiaGPUProbe(smiPath string) NvidiaGPUProbe {
	return NvidiaGPUProbe{SMIPath: smiPath}
}

// GPUs queries nvidia-smi for the name and driver version of every
// visible GPU. Hosts without the NVIDIA driver return an empty list.
func (p NvidiaGPUProbe) GPUs(ctx context.Context) ([]detect.GPUFact, error) {
	bin := p.SMIPath
	if bin == "" {
		bin = "nvidia-smi"
	}
	if _, err := exec.LookPath(bin); err != nil {
		return nil, nil
	}
	out, err := exec.CommandContext(ctx, bin,
		"--query-gpu=name,driver_version", "--format=csv,noheader").Output()
	if err != nil {
		// nvidia-smi present but not talking to a device
		return nil, nil
	}
	return parseSMIOutput(string(out)), nil
}

// parseSMIOutput parses "name, driver_version" lines as produced by
// nvidia-smi --format=csv,noheader. The driver version never contains
// a comma, so the split is on the last one.
func parseSMIOutput(out string) []detect.GPUFact {
	var gpus []detect.GPUFact
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		name, driver := line, "N/A"
		if i := strings.LastIndex(line, ","); i >= 0 {
			name = strings.TrimSpace(line[:i])
			driver = strings.TrimSpace(line[i+1:])
		}
		gpus = append(gpus, detect.GPUFact{Name: name, DriverVersion: driver})
	}
	return gpus
}
