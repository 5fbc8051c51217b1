// Package subtitles probes a URL for caption availability before a
// download commits to subtitle flags.
package subtitles

import (
	"context"
	"os/exec"
	"strings"

	"grabarr/internal/domain/command"
	"grabarr/internal/domain/consts"
	"grabarr/internal/utils/logging"
)

// Availability is the probe's answer for one language. Assumed is set
// when the probe could not finish, so the download proceeds with
// subtitle flags and relies on failure classification instead.
type Availability struct {
	Manual  bool
	Auto    bool
	Assumed bool
}

// Available reports whether subtitle flags are worth sending.
func (a Availability) Available() bool {
	return a.Manual || a.Auto || a.Assumed
}

// Check lists the URL's subtitles under a hard wall clock and looks for
// the requested language. Timeouts and errors come back optimistic.
func Check(ctx context.Context, rawURL, lang string) Availability {
	ctx, cancel := context.WithTimeout(ctx, consts.SubtitleProbeTimeout)
	defer cancel()

	args := make([]string, 0, 8)
	args = append(args,
		command.ListSubs,
		command.SkipVideo,
		command.NoWarnings,
		command.NoPlaylist)

	// Add target URL [ MUST GO LAST !! ]
	args = append(args, rawURL)

	cmd := exec.CommandContext(ctx, consts.BinFetcher, args...)

	type probeOut struct {
		data []byte
		err  error
	}

	outCh := make(chan probeOut, 1)
	go func() {
		data, err := cmd.Output()
		outCh <- probeOut{data: data, err: err}
	}()

	select {
	case <-ctx.Done():
		logging.W("Subtitle probe for %q hit the %v limit, assuming %q captions exist", rawURL, consts.SubtitleProbeTimeout, lang)
		return Availability{Assumed: true}

	case res := <-outCh:
		if res.err != nil {
			logging.D(1, "Subtitle probe failed for %q: %v", rawURL, res.err)
			return Availability{Assumed: true}
		}

		av := ParseListing(string(res.data), lang)
		logging.D(1, "Subtitle availability for %q lang %q: manual=%v auto=%v", rawURL, lang, av.Manual, av.Auto)
		return av
	}
}

// ParseListing scans a subtitle listing for the requested language.
// Exported for testing without a fetcher binary.
func ParseListing(out, lang string) Availability {
	const (
		sectionNone = iota
		sectionAuto
		sectionManual
	)

	var av Availability
	section := sectionNone

	for _, line := range strings.Split(out, "\n") {
		switch {
		case strings.Contains(line, "Available automatic captions"):
			section = sectionAuto
			continue
		case strings.Contains(line, "Available subtitles"):
			section = sectionManual
			continue
		case strings.Contains(line, "has no subtitles"):
			section = sectionNone
			continue
		}

		if section == sectionNone {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) == 0 || fields[0] == "Language" {
			continue
		}

		if matchLang(fields[0], lang) {
			if section == sectionAuto {
				av.Auto = true
			} else {
				av.Manual = true
			}
		}
	}
	return av
}

// matchLang accepts an exact language code or a regional variant of it.
func matchLang(code, want string) bool {
	code = strings.ToLower(code)
	want = strings.ToLower(want)
	return code == want || strings.HasPrefix(code, want+"-")
}
