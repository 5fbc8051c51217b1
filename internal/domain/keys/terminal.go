// Package keys holds various keys for software operations, such as terminal input keys and internal Viper keys.
package keys

// Program flags.
const (
	ConfigFile  string = "config-file"
	DebugLevel  string = "debug"
	DownloadDir string = "download-dir"
)

// Internal Viper keys.
const (
	Execute string = "execute"
)

// Settings file keys. These mirror the JSON field names in the settings
// file so Viper lookups and the written defaults stay in sync.
const (
	AudioBufferSize     string = "audio_buffer_size"
	AudioFragments      string = "max_audio_fragments"
	CatalogTimeout      string = "catalog_timeout_seconds"
	CookiesFromBrowser  string = "cookies_from_browser"
	DefaultAudioQuality string = "default_audio_quality"
	DefaultResolution   string = "default_resolution"
	HWAccel             string = "hw_accel"
	MobileCompat        string = "mobile_compat"
	PreferredBackend    string = "preferred_backend"
	SubtitleLanguage    string = "subtitle_language"
	VideoBufferSize     string = "video_buffer_size"
	VideoFragments      string = "max_video_fragments"
)
