// Package command holds argument string constants for the external fetcher and transcoder binaries.
package command

// General
const (
	AfterMove          = "after_move:%(filepath)s"
	BufferSize         = "--buffer-size"
	CookiesFromBrowser = "--cookies-from-browser"
	Format             = "-f"
	MergeOutputFormat  = "--merge-output-format"
	Newline            = "--newline"
	NoWarnings         = "--no-warnings"
	Output             = "-o"
	Print              = "--print"
	RestrictFilenames  = "--restrict-filenames"
)

// Playlist handling
const (
	NoPlaylist  = "--no-playlist"
	YesPlaylist = "--yes-playlist"
)

// Network reliability
const (
	ConcurrentFragments = "--concurrent-fragments"
	ForceIPv4           = "--force-ipv4"
	FragmentRetries     = "--fragment-retries"
	Retries             = "--retries"
	SocketTimeout       = "--socket-timeout"
)

// Fallback-tier switches
const (
	DownloaderNative    = "--downloader"
	DownloaderNativeArg = "native"
	ForceGenericExtract = "--force-generic-extractor"
	NoCheckCertificates = "--no-check-certificates"
	NoPart              = "--no-part"
)

// Subtitles
const (
	ConvertSubs   = "--convert-subs"
	EmbedSubs     = "--embed-subs"
	ListSubs      = "--list-subs"
	SubFormatSRT  = "srt"
	SubLangs      = "--sub-langs"
	WriteAutoSubs = "--write-auto-subs"
	WriteSubs     = "--write-subs"
)

// Audio extraction
const (
	AudioFormat  = "--audio-format"
	AudioQuality = "--audio-quality"
	ExtractAudio = "--extract-audio"
)

// Post-processing passthrough
const (
	PostprocessorArgs = "--postprocessor-args"
	PPFFmpegPrefix    = "ffmpeg:"
)

// Metadata only
const (
	OutputJSON = "-J"
	SkipVideo  = "--skip-download"
)
