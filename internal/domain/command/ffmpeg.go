package command

// Transcoder probe flags
const (
	HideBanner   = "-hide_banner"
	ListAccels   = "-hwaccels"
	ListEncoders = "-encoders"
)

// GPU vendor probes per OS.
var (
	GPUProbeLinux   = []string{"lspci", "-nn"}
	GPUProbeWindows = []string{"wmic", "path", "win32_VideoController", "get", "name"}
	GPUProbeDarwin  = []string{"system_profiler", "SPDisplaysDataType"}
)
