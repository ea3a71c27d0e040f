// Package hardware defines the execution-platform data model: closed
// enumerations for operating system, device type, vendor, and Vulkan
// backend, plus the records describing which devices can run shader
// workloads on this host.
package hardware

import (
	"errors"
	"fmt"
)

// Sentinel errors for classification failures. Unknown vendor and OS
// strings fail fast rather than silently defaulting.
var (
	ErrUnrecognizedOperatingSystem = errors.New("unrecognized operating system")
	ErrUnrecognizedVendor          = errors.New("unrecognized hardware vendor")
	ErrNoHardwareDetected          = errors.New("no hardware detected")
)

// OperatingSystem identifies the host OS family.
type OperatingSystem string

const (
	Linux   OperatingSystem = "Linux"
	Darwin  OperatingSystem = "Darwin"
	Windows OperatingSystem = "Windows"
)

// ParseOperatingSystem maps a raw OS family string to an
// OperatingSystem value. Exact match only.
func ParseOperatingSystem(s string) (OperatingSystem, error) {
	switch os := OperatingSystem(s); os {
	case Linux, Darwin, Windows:
		return os, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnrecognizedOperatingSystem, s)
	}
}

// HardwareType distinguishes the device classes that can execute
// compute work.
type HardwareType string

const (
	CPU HardwareType = "CPU"
	GPU HardwareType = "GPU"
)

// HardwareVendor identifies a device manufacturer. The set is closed:
// vendors not listed here are rejected at classification time.
type HardwareVendor string

const (
	VendorIntel  HardwareVendor = "GenuineIntel"
	VendorNvidia HardwareVendor = "Nvidia"
)

// ParseVendor maps a raw vendor identifier (e.g. the CPUID vendor
// string) to a HardwareVendor value.
func ParseVendor(s string) (HardwareVendor, error) {
	switch v := HardwareVendor(s); v {
	case VendorIntel, VendorNvidia:
		return v, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnrecognizedVendor, s)
	}
}

// VulkanBackend names the Vulkan implementation that will service API
// calls on this platform.
type VulkanBackend string

const (
	MoltenVK    VulkanBackend = "MoltenVK"
	SwiftShader VulkanBackend = "SwiftShader"
	Vulkan      VulkanBackend = "Vulkan"
)

// HardwareInformation describes one physical or logical compute
// device. Values are immutable once constructed.
type HardwareInformation struct {
	Type          HardwareType   `json:"hardware_type"`
	Vendor        HardwareVendor `json:"hardware_vendor"`
	Model         string         `json:"hardware_model"`
	DriverVersion string         `json:"driver_version"`
}

// ExecutionPlatform aggregates everything detected about the host:
// the OS, the inferred Vulkan backend, and the available devices per
// type in probe discovery order (index 0 is the primary device).
//
// After a successful detection pass the CPU list is never empty; the
// GPU list may be. The value is never mutated after construction and
// is therefore safe to read from multiple goroutines.
type ExecutionPlatform struct {
	Backend           VulkanBackend                          `json:"vulkan_backend"`
	OS                OperatingSystem                        `json:"operating_system"`
	AvailableHardware map[HardwareType][]HardwareInformation `json:"available_hardware"`
}

// ActiveHardware returns the device shaders will execute on: the
// primary GPU when one was detected, otherwise the CPU. An empty
// platform yields ErrNoHardwareDetected; well-formed detection never
// produces that state, the guard is defensive.
func (p *ExecutionPlatform) ActiveHardware() (HardwareInformation, error) {
	if gpus := p.AvailableHardware[GPU]; len(gpus) > 0 {
		return gpus[0], nil
	}
	if cpus := p.AvailableHardware[CPU]; len(cpus) > 0 {
		return cpus[0], nil
	}
	return HardwareInformation{}, ErrNoHardwareDetected
}

// String renders the canonical "os/vendor/backend" identifier used in
// logs, where vendor is the active device's vendor. A platform with no
// hardware renders the vendor as "unknown".
func (p *ExecutionPlatform) String() string {
	vendor := "unknown"
	if hw, err := p.ActiveHardware(); err == nil {
		vendor = string(hw.Vendor)
	}
	return fmt.Sprintf("%s/%s/%s", p.OS, vendor, p.Backend)
}
