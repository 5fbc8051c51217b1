package consts

// Program identity.
const (
	ProgramName = "grabarr"
	Version     = "0.3.1"
)

// External binaries Grabarr orchestrates. Both must be on PATH before any
// session work begins.
const (
	BinFetcher    = "yt-dlp"
	BinTranscoder = "ffmpeg"
)

// Settings file and log naming.
const (
	SettingsFileName = "settings.json"
	LogFilePrefix    = "grabarr-"
	LogFileExt       = ".log"
	LogTimeFormat    = "20060102-150405"
)
