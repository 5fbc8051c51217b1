package models

// Settings holds Grabarr's persisted defaults, loaded once at session start.
// User prompts may override values transiently for one run; the file itself
// is never rewritten by a session.
type Settings struct {
	DefaultResolution   int    `json:"default_resolution"`
	DefaultAudioQuality int    `json:"default_audio_quality"`
	VideoFragments      int    `json:"max_video_fragments"`
	AudioFragments      int    `json:"max_audio_fragments"`
	SubtitleLanguage    string `json:"subtitle_language"`
	VideoBufferSize     string `json:"video_buffer_size"`
	AudioBufferSize     string `json:"audio_buffer_size"`
	HWAccel             bool   `json:"hw_accel"`
	PreferredBackend    string `json:"preferred_backend"`
	MobileCompat        bool   `json:"mobile_compat"`
	CookiesFromBrowser  string `json:"cookies_from_browser"`
	CatalogTimeoutSecs  int    `json:"catalog_timeout_seconds"`
}

// DefaultSettings returns the values written to a fresh settings file.
func DefaultSettings() Settings {
	return Settings{
		DefaultResolution:   1080,
		DefaultAudioQuality: 192,
		VideoFragments:      8,
		AudioFragments:      4,
		SubtitleLanguage:    "en",
		VideoBufferSize:     "16K",
		AudioBufferSize:     "8K",
		HWAccel:             true,
		PreferredBackend:    "auto",
		MobileCompat:        true,
		CookiesFromBrowser:  "",
		CatalogTimeoutSecs:  30,
	}
}
