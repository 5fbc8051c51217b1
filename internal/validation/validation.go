// Package validation handles validation of user input and the host
// environment before any download work begins.
package validation

import (
	"fmt"
	"net/url"
	"os/exec"
	"strings"

	"grabarr/internal/domain/consts"
	"grabarr/internal/utils/logging"

	"github.com/fatih/color"
)

// CheckDependencies verifies the external binaries Grabarr drives are on
// PATH. Missing binaries are reported together so the user fixes them in
// one pass.
func CheckDependencies() error {
	var missing []string

	if _, err := exec.LookPath(consts.BinFetcher); err != nil {
		color.Red("%s is not installed.\nInstall it from https://github.com/yt-dlp/yt-dlp and ensure it is on your PATH.", consts.BinFetcher)
		missing = append(missing, consts.BinFetcher)
	}

	if _, err := exec.LookPath(consts.BinTranscoder); err != nil {
		color.Red("%s is not installed.\nInstall it from https://ffmpeg.org/ and ensure it is on your PATH.", consts.BinTranscoder)
		missing = append(missing, consts.BinTranscoder)
	}

	if len(missing) != 0 {
		return fmt.Errorf("missing required binaries: %s", strings.Join(missing, ", "))
	}

	logging.D(1, "Found %s and %s on PATH", consts.BinFetcher, consts.BinTranscoder)
	return nil
}

// ValidateURL checks that the string parses as an absolute http(s) URL.
func ValidateURL(raw string) error {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("URL %q must use http or https", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("URL %q has no host", raw)
	}
	return nil
}

// IsPlaylistURL reports whether the URL addresses a playlist rather than
// a single video.
func IsPlaylistURL(raw string) bool {
	return strings.Contains(raw, "list=") || strings.Contains(raw, "/playlist")
}

// IsShortFormURL reports whether the URL addresses a short-form video,
// whose advertised catalogs are unreliable.
func IsShortFormURL(raw string) bool {
	return strings.Contains(raw, "/shorts/")
}

// ValidateDebugLevel clamps the debug verbosity flag into range.
func ValidateDebugLevel(l int) int {
	return min(max(l, 0), 5)
}

// ValidateBackend checks a preferred hardware backend name from settings.
// "auto" and the empty string defer to detection.
func ValidateBackend(name string) error {
	if name == "" {
		return nil
	}
	if !consts.ValidBackends[name] {
		return fmt.Errorf("unknown hardware backend %q", name)
	}
	return nil
}

// ValidateCookieSource checks a cookies-from-browser settings value.
func ValidateCookieSource(src string) error {
	if src == "" {
		return nil
	}
	if !consts.ValidCookieSources[src] {
		return fmt.Errorf("unknown cookie source %q", src)
	}
	return nil
}
