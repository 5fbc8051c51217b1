package consts

// Backend identifies a hardware acceleration backend reported by the
// transcoder's "-hwaccels" listing, or BackendNone for pure software.
type Backend string

const (
	BackendNone    Backend = "none"
	BackendCUDA    Backend = "cuda"
	BackendNVENC   Backend = "nvenc"
	BackendAMF     Backend = "amf"
	BackendQSV     Backend = "qsv"
	BackendD3D11VA Backend = "d3d11va"
	BackendDXVA2   Backend = "dxva2"
	BackendVAAPI   Backend = "vaapi"
)

// BackendPriority is the selection walk when no vendor pairing overrides it.
// First supported entry wins.
var BackendPriority = [...]Backend{
	BackendCUDA,
	BackendNVENC,
	BackendAMF,
	BackendQSV,
	BackendD3D11VA,
	BackendDXVA2,
	BackendVAAPI,
}

// ValidBackends maps user-configurable backend names, "auto" meaning probe.
var ValidBackends = map[string]bool{
	"auto":                 true,
	string(BackendNone):    true,
	string(BackendCUDA):    true,
	string(BackendNVENC):   true,
	string(BackendAMF):     true,
	string(BackendQSV):     true,
	string(BackendD3D11VA): true,
	string(BackendDXVA2):   true,
	string(BackendVAAPI):   true,
}

const BackendAuto = "auto"

// MediaKind selects what a session action downloads.
type MediaKind string

const (
	KindCombined  MediaKind = "combined"
	KindVideoOnly MediaKind = "video"
	KindAudioOnly MediaKind = "audio"
	KindSubsOnly  MediaKind = "subtitles"
)

// NetTier selects the fetcher's network aggressiveness.
type NetTier string

const (
	TierReliable     NetTier = "reliable"
	TierConservative NetTier = "conservative"
)

// HeightLadder is the fixed video resolution menu, highest first.
var HeightLadder = [...]int{2160, 1440, 1080, 720, 480, 360, 240, 144}

// AudioTiers is the fixed audio bitrate menu in kbps, highest first.
var AudioTiers = [...]int{320, 256, 192, 128}

// FallbackHeight is assumed when a catalog reports no video renditions at
// all, typical of short-form uploads.
const FallbackHeight = 720

// AudioTierTolerance is the +/- kbps window for matching a declared audio
// bitrate to a tier.
const AudioTierTolerance = 10

// Video codecs
const (
	VCodecH264 = "h264"
	VCodecHEVC = "hevc"
	VCodecVP9  = "vp9"
	VCodecAV1  = "av1"
)

// Audio codecs
const (
	ACodecAAC  = "aac"
	ACodecMP3  = "mp3"
	ACodecOpus = "opus"
)

// Containers
const (
	ContainerMP4  = "mp4"
	ContainerMKV  = "mkv"
	ContainerWebM = "webm"
)

// AllVidExtensions is a list of video file extensions.
var AllVidExtensions = [...]string{".3gp", ".avi", ".f4v", ".flv", ".m4v", ".mkv",
	".mov", ".mp4", ".mpeg", ".mpg", ".ogm", ".ogv",
	".ts", ".vob", ".webm", ".wmv"}

// AllAudioExtensions is a list of audio file extensions.
var AllAudioExtensions = [...]string{".aac", ".flac", ".m4a", ".mp3", ".oga",
	".ogg", ".opus", ".wav"}

// ValidCookieSources are the browsers the fetcher can lift cookies from.
var ValidCookieSources = map[string]bool{
	"brave":    true,
	"chrome":   true,
	"chromium": true,
	"edge":     true,
	"firefox":  true,
	"opera":    true,
	"safari":   true,
	"vivaldi":  true,
	"whale":    true,
}
