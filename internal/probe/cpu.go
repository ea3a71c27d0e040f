// CPU identity probe — reads the vendor ID and brand string of the
// primary CPU. Uses gopsutil for cross-platform CPU information.
package probe

import (
	"context"
	"errors"
	"fmt"

	"github.com/shirou/gopsutil/v3/cpu"

	"github.com/vkscout/agent/internal/detect"
)

// GopsutilCPUProbe reads CPU identity via gopsutil.
type GopsutilCPUProbe struct{}

// NewGopsutilCPUProbe creates a new gopsutil-backed CPU probe.
func NewGopsutilCPUProbe() GopsutilCPUProbe {
	return GopsutilCPUProbe{}
}

// CPU returns the vendor ID and brand of the first CPU the system
// reports. Multi-socket hosts report per-socket entries; the first one
// stands in for the primary CPU.
func (GopsutilCPUProbe) CPU(ctx context.Context) (detect.CPUFact, error) {
	infos, err := cpu.InfoWithContext(ctx)
	if err != nil {
		return detect.CPUFact{}, fmt.Errorf("reading CPU info: %w", err)
	}
	if len(infos) == 0 {
		return detect.CPUFact{}, errors.New("system reported no CPU")
	}
	return detect.CPUFact{
		VendorID: infos[0].VendorID,
		Brand:    infos[0].ModelName,
	}, nil
}
