// Package builder composes complete fetcher invocations from one
// session decision: what to download, at what quality, over which
// network shape, with which hardware backend.
package builder

import (
	"fmt"

	"grabarr/internal/domain/consts"
	"grabarr/internal/models"
)

// Request carries one download decision into Build.
type Request struct {
	URL       string
	Kind      consts.MediaKind
	Playlist  bool
	Backend   consts.Backend
	Rendition *models.Rendition
	Height    int
	AudioRate int
	Tier      consts.NetTier
	Subtitles models.SubtitleOptions
	Settings  models.Settings
	OutputDir string
}

// Build produces the invocation spec for a request. Building never
// fails: unknown backends fall through to the software encode entry and
// missing renditions fall back to height-expression selectors. Identical
// requests build identical specs.
func Build(req Request) models.InvocationSpec {
	spec := models.InvocationSpec{
		URL:                req.URL,
		Kind:               req.Kind,
		Playlist:           req.Playlist,
		Selector:           Selector(req.Kind, req.Rendition, req.Height),
		OutputDir:          req.OutputDir,
		OutputName:         OutputTemplate(req.Kind, req.AudioRate),
		RestrictName:       true,
		Subtitles:          req.Subtitles,
		CookiesFromBrowser: req.Settings.CookiesFromBrowser,
	}

	switch req.Kind {
	case consts.KindCombined:
		spec.MergeFormat = consts.ContainerMP4
		spec.EncodeArgs = EncodeArgs(req.Backend, req.Kind, req.Settings.MobileCompat)

	case consts.KindVideoOnly:
		spec.EncodeArgs = EncodeArgs(req.Backend, req.Kind, req.Settings.MobileCompat)

	case consts.KindAudioOnly:
		spec.ExtractAudio = true
		spec.AudioFormat = consts.ACodecMP3
		spec.AudioQuality = fmt.Sprintf("%dK", req.AudioRate)
		spec.Subtitles.Skip = true

	case consts.KindSubsOnly:
		spec.SkipDownload = true
	}

	// The landed path is printed and captured whenever a file is moved
	// into place, which subtitle-only runs never do.
	spec.CapturePath = req.Kind != consts.KindSubsOnly

	ApplyTier(&spec, req.Tier, req.Settings)
	return spec
}

// OutputTemplate yields the filename template for a media kind. Audio
// templates embed the chosen tier literally since the extraction
// bitrate is fixed by the invocation, not reported by the source.
func OutputTemplate(kind consts.MediaKind, audioRate int) string {
	switch kind {
	case consts.KindAudioOnly:
		return fmt.Sprintf("%%(title)s_%dkbps_%%(upload_date)s.%%(ext)s", audioRate)
	case consts.KindSubsOnly:
		return "%(title)s_%(upload_date)s.%(ext)s"
	default:
		return "%(title)s_%(height)sp_%(upload_date)s.%(ext)s"
	}
}
