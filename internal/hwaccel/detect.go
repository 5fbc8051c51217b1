// Package hwaccel probes the transcoder and the host GPU for a usable
// hardware acceleration backend.
package hwaccel

import (
	"context"
	"os/exec"
	"runtime"
	"strings"

	"grabarr/internal/domain/command"
	"grabarr/internal/domain/consts"
	"grabarr/internal/utils/logging"
)

// Capabilities holds what probing learned. One Select decision is made
// from it per session and the result is read-only afterwards.
type Capabilities struct {
	Supported map[consts.Backend]bool
	GPUVendor string
}

// Detect probes the host and selects a backend in one step. It never
// fails: every probing error degrades toward the software path.
func Detect(ctx context.Context, prefer string) consts.Backend {
	caps := Probe(ctx)
	backend := caps.Select(prefer)

	if backend == consts.BackendNone {
		logging.I("No hardware acceleration available, encoding in software")
	} else {
		logging.I("Hardware acceleration backend: %s", backend)
	}
	return backend
}

// Probe queries the transcoder for its acceleration methods and
// compiled-in encoders, and the OS for a GPU identity string.
func Probe(ctx context.Context) Capabilities {
	ctx, cancel := context.WithTimeout(ctx, consts.HWProbeTimeout)
	defer cancel()

	caps := Capabilities{Supported: make(map[consts.Backend]bool)}

	out, err := exec.CommandContext(ctx, consts.BinTranscoder, command.HideBanner, command.ListAccels).Output()
	if err != nil {
		logging.D(1, "Acceleration list probe failed: %v", err)
	} else {
		for b := range ParseAccelList(string(out)) {
			caps.Supported[b] = true
		}
	}

	// The acceleration list never names nvenc or amf; those surface as
	// encoders instead.
	out, err = exec.CommandContext(ctx, consts.BinTranscoder, command.HideBanner, command.ListEncoders).Output()
	if err != nil {
		logging.D(1, "Encoder list probe failed: %v", err)
	} else {
		for b := range ParseEncoderList(string(out)) {
			caps.Supported[b] = true
		}
	}

	caps.GPUVendor = gpuVendor(ctx)

	logging.D(1, "Transcoder backends: %v, GPU vendor: %q", caps.Supported, caps.GPUVendor)
	return caps
}

// ParseAccelList reads the transcoder's "-hwaccels" output: a header
// line followed by one method name per line. Exported for testing
// without a transcoder binary.
func ParseAccelList(out string) map[consts.Backend]bool {
	supported := make(map[consts.Backend]bool)

	for _, line := range strings.Split(out, "\n") {
		name := strings.ToLower(strings.TrimSpace(line))
		if name == "" || strings.Contains(name, " ") {
			continue
		}
		if b := consts.Backend(name); consts.ValidBackends[name] && b != consts.BackendNone {
			supported[b] = true
		}
	}
	return supported
}

// encoderBackends maps H.264 encoder names to the backend they prove.
var encoderBackends = map[string]consts.Backend{
	"h264_nvenc": consts.BackendNVENC,
	"h264_amf":   consts.BackendAMF,
	"h264_qsv":   consts.BackendQSV,
	"h264_vaapi": consts.BackendVAAPI,
}

// ParseEncoderList reads the transcoder's "-encoders" output and marks
// backends whose H.264 encoder is compiled in.
func ParseEncoderList(out string) map[consts.Backend]bool {
	supported := make(map[consts.Backend]bool)

	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		if b, ok := encoderBackends[fields[1]]; ok {
			supported[b] = true
		}
	}
	return supported
}

// Select picks the backend for this session. An explicit preference wins
// when its support was confirmed. An NVIDIA GPU pairs with cuda or nvenc
// ahead of the general priority walk.
func (c Capabilities) Select(prefer string) consts.Backend {
	switch prefer {
	case "", consts.BackendAuto:
	case string(consts.BackendNone):
		return consts.BackendNone
	default:
		if b := consts.Backend(prefer); c.Supported[b] {
			return b
		}
		logging.W("Preferred backend %q is not supported by the transcoder, probing instead", prefer)
	}

	if strings.Contains(c.GPUVendor, "nvidia") {
		switch {
		case c.Supported[consts.BackendCUDA]:
			return consts.BackendCUDA
		case c.Supported[consts.BackendNVENC]:
			return consts.BackendNVENC
		}
	}

	for _, b := range consts.BackendPriority {
		if c.Supported[b] {
			return b
		}
	}
	return consts.BackendNone
}

// gpuVendor asks the OS device list for a GPU identity string, reduced
// to a vendor keyword.
func gpuVendor(ctx context.Context) string {
	var argv []string
	switch runtime.GOOS {
	case "windows":
		argv = command.GPUProbeWindows
	case "darwin":
		argv = command.GPUProbeDarwin
	default:
		argv = command.GPUProbeLinux
	}

	out, err := exec.CommandContext(ctx, argv[0], argv[1:]...).Output()
	if err != nil {
		logging.D(1, "GPU identity probe failed: %v", err)
		return ""
	}

	s := strings.ToLower(string(out))
	switch {
	case strings.Contains(s, "nvidia"):
		return "nvidia"
	case strings.Contains(s, "amd"), strings.Contains(s, "radeon"):
		return "amd"
	case strings.Contains(s, "intel"):
		return "intel"
	}
	return ""
}
