package display

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/vkscout/agent/internal/hardware"
	"github.com/vkscout/agent/internal/probe"
)

func linuxPlatform(withGPU bool) *hardware.ExecutionPlatform {
	p := &hardware.ExecutionPlatform{
		Backend: hardware.Vulkan,
		OS:      hardware.Linux,
		AvailableHardware: map[hardware.HardwareType][]hardware.HardwareInformation{
			hardware.CPU: {{
				Type:          hardware.CPU,
				Vendor:        hardware.VendorIntel,
				Model:         "Intel Xeon",
				DriverVersion: "N/A",
			}},
		},
	}
	if withGPU {
		p.AvailableHardware[hardware.GPU] = []hardware.HardwareInformation{{
			Type:          hardware.GPU,
			Vendor:        hardware.VendorNvidia,
			Model:         "NVIDIA T4",
			DriverVersion: "535.161.08",
		}}
	}
	return p
}

func TestSummary_WithGPU(t *testing.T) {
	var buf bytes.Buffer
	Summary(&buf, linuxPlatform(true), nil)
	out := buf.String()

	for _, want := range []string{
		"Detected OS     -> Linux",
		"NVIDIA T4 (driver 535.161.08)",
		"Detected CPU    -> Intel Xeon",
		"Vulkan backend  -> Vulkan",
		"Shaders will most likely be executed on NVIDIA T4",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Summary output missing %q\ngot:\n%s", want, out)
		}
	}
}

func TestSummary_WithoutGPU(t *testing.T) {
	var buf bytes.Buffer
	Summary(&buf, linuxPlatform(false), nil)
	out := buf.String()

	if !strings.Contains(out, "Detected GPUs   -> none") {
		t.Errorf("Summary output missing empty GPU line\ngot:\n%s", out)
	}
	if !strings.Contains(out, "No GPU detected, shaders will be executed on CPU") {
		t.Errorf("Summary output missing CPU fallback line\ngot:\n%s", out)
	}
}

func TestSummary_HostDetails(t *testing.T) {
	var buf bytes.Buffer
	details := &probe.HostDetails{
		Hostname:      "builder-01",
		Platform:      "ubuntu 22.04",
		KernelVersion: "6.5.0",
	}
	Summary(&buf, linuxPlatform(false), details)

	if !strings.Contains(buf.String(), "builder-01 (ubuntu 22.04, kernel 6.5.0)") {
		t.Errorf("Summary output missing host details\ngot:\n%s", buf.String())
	}
}

func TestJSON_RoundTrips(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, linuxPlatform(true)); err != nil {
		t.Fatal(err)
	}

	var decoded hardware.ExecutionPlatform
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.Backend != hardware.Vulkan {
		t.Errorf("decoded backend = %v, want Vulkan", decoded.Backend)
	}
	if decoded.OS != hardware.Linux {
		t.Errorf("decoded OS = %v, want Linux", decoded.OS)
	}
	gpus := decoded.AvailableHardware[hardware.GPU]
	if len(gpus) != 1 || gpus[0].Model != "NVIDIA T4" {
		t.Errorf("decoded GPUs = %+v, want the NVIDIA T4 entry", gpus)
	}
}
