// Package detect turns raw hardware facts into an ExecutionPlatform.
// The facts come from three injectable probe collaborators, so the
// detection policy itself stays a pure, deterministic function that
// can be tested without any real hardware present.
package detect

import (
	"context"
	"fmt"

	"github.com/vkscout/agent/internal/hardware"
)

// GPUFact is one discrete GPU as reported by a probe, in discovery
// order.
type GPUFact struct {
	Name          string
	DriverVersion string
}

// CPUFact describes the primary CPU as reported by a probe.
type CPUFact struct {
	VendorID string
	Brand    string
}

// OSProbe reports the running operating system family. The value is
// matched exactly against "Linux", "Darwin", and "Windows".
type OSProbe interface {
	OS(ctx context.Context) (string, error)
}

// GPUProbe reports the discrete GPUs visible to the system. An empty
// slice means no GPU was found, which is not an error.
type GPUProbe interface {
	GPUs(ctx context.Context) ([]GPUFact, error)
}

// CPUProbe reports the primary CPU.
type CPUProbe interface {
	CPU(ctx context.Context) (CPUFact, error)
}

// AutoDetect classifies the probes' output into an ExecutionPlatform.
// Any probe failure or unrecognized OS/vendor string aborts the whole
// pass; there is no partial result. GPU entries keep the probe's
// discovery order, so the first entry is the primary GPU. Exactly one
// CPU entry is recorded, with DriverVersion fixed to "N/A".
func AutoDetect(ctx context.Context, osp OSProbe, gpup GPUProbe, cpup CPUProbe) (*hardware.ExecutionPlatform, error) {
	rawOS, err := osp.OS(ctx)
	if err != nil {
		return nil, fmt.Errorf("probing operating system: %w", err)
	}
	os, err := hardware.ParseOperatingSystem(rawOS)
	if err != nil {
		return nil, err
	}

	platform := &hardware.ExecutionPlatform{
		Backend:           hardware.Vulkan,
		OS:                os,
		AvailableHardware: make(map[hardware.HardwareType][]hardware.HardwareInformation),
	}

	gpus, err := gpup.GPUs(ctx)
	if err != nil {
		return nil, fmt.Errorf("probing GPUs: %w", err)
	}
	for _, g := range gpus {
		// Only discrete NVIDIA GPUs are modeled for now.
		platform.AvailableHardware[hardware.GPU] = append(
			platform.AvailableHardware[hardware.GPU],
			hardware.HardwareInformation{
				Type:          hardware.GPU,
				Vendor:        hardware.VendorNvidia,
				Model:         g.Name,
				DriverVersion: g.DriverVersion,
			})
	}

	cpu, err := cpup.CPU(ctx)
	if err != nil {
		return nil, fmt.Errorf("probing CPU: %w", err)
	}
	vendor, err := hardware.ParseVendor(cpu.VendorID)
	if err != nil {
		return nil, err
	}
	platform.AvailableHardware[hardware.CPU] = []hardware.HardwareInformation{{
		Type:          hardware.CPU,
		Vendor:        vendor,
		Model:         cpu.Brand,
		DriverVersion: "N/A", // CPUs have no driver concept
	}}

	// The backend starts at Vulkan and only a matching OS case
	// re-assigns it. There is intentionally no Windows case, so
	// Windows keeps the default.
	// TODO: SwiftShader is a possibility, lavapipe, llvmpipe etc.
	switch platform.OS {
	case hardware.Darwin:
		platform.Backend = hardware.MoltenVK
	case hardware.Linux:
		platform.Backend = hardware.Vulkan
	}

	return platform, nil
}
