package consts

import "time"

// Probe timeouts
const (
	// CatalogProbeTimeout bounds the metadata dump used to build the format
	// catalog. Overridable through settings; expiry falls back to the
	// standard quality ladder rather than failing the session.
	CatalogProbeTimeout = 30 * time.Second

	// SubtitleProbeTimeout is a hard wall clock on the subtitle listing
	// probe. Not user configurable.
	SubtitleProbeTimeout = 15 * time.Second

	// HWProbeTimeout bounds the transcoder capability and GPU vendor probes.
	HWProbeTimeout = 10 * time.Second
)

// File operations
const (
	FileCheckInterval = 100 * time.Millisecond
	FileWaitTimeout   = 10 * time.Second
)
