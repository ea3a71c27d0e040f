// Host identity details — hostname, distribution, and kernel version
// shown alongside the detection summary. Informational only; none of
// this feeds into backend or device selection.
package probe

import (
	"context"
	"strings"

	"github.com/shirou/gopsutil/v3/host"
)

// HostDetails carries extra host identity for display purposes.
type HostDetails struct {
	Hostname      string `json:"hostname"`
	Platform      string `json:"platform"`
	KernelVersion string `json:"kernel_version"`
}

// CollectHostDetails gathers host identity via gopsutil. Fields that
// cannot be determined are left empty; on Linux the kernel version
// falls back to uname(2) when gopsutil reports none.
func CollectHostDetails(ctx context.Context) HostDetails {
	var d HostDetails
	if info, err := host.InfoWithContext(ctx); err == nil {
		d.Hostname = info.Hostname
		d.Platform = strings.TrimSpace(info.Platform + " " + info.PlatformVersion)
		d.KernelVersion = info.KernelVersion
	}
	if d.KernelVersion == "" {
		d.KernelVersion = unameKernelVersion()
	}
	return d
}
