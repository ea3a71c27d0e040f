//go:build !linux

package probe

// unameKernelVersion has no non-Linux fallback; gopsutil's host info
// already covers macOS and Windows kernel versions.
func unameKernelVersion() string { return "" }
