package models

import "grabarr/internal/domain/consts"

// SubtitleOptions controls subtitle capture for a download.
type SubtitleOptions struct {
	Skip     bool
	Language string
	Embed    bool
	AutoOK   bool // accept auto-generated captions
}

// InvocationSpec is a complete description of one fetcher invocation.
// The downloads package renders it to argv; retry patches flip fields
// here rather than splicing raw argument strings.
type InvocationSpec struct {
	URL      string
	Kind     consts.MediaKind
	Playlist bool

	// Video selection.
	Selector     string
	MergeFormat  string
	EncodeArgs   []string // transcoder args passed through --postprocessor-args
	OutputDir    string
	OutputName   string
	RestrictName bool

	// Audio extraction.
	ExtractAudio bool
	AudioFormat  string
	AudioQuality string

	// Network shape.
	Tier                consts.NetTier
	ConcurrentFragments int
	BufferSize          string
	Retries             int
	FragmentRetries     int
	SocketTimeoutSecs   int

	Subtitles SubtitleOptions

	CookiesFromBrowser string

	// Retry patches. Each is set by at most one classification fix.
	ForceIPv4           bool
	NoPart              bool
	NativeDownloader    bool
	GenericExtractor    bool
	NoCheckCertificates bool

	// SkipDownload runs the fetcher in probe-only mode.
	SkipDownload bool

	// CapturePath asks the fetcher to print the final file path.
	CapturePath bool
}
