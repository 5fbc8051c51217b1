package downloads

import "strings"

// Category names a recognized failure family. The zero value means the
// fetcher output matched no known pattern.
type Category int

const (
	CategoryNone Category = iota
	CategorySubtitles
	CategoryUnsupportedFormat
	CategoryPostProcess
	CategoryNetwork
	CategoryRange
	CategorySSL
)

// String returns the short name used in logs and session reports.
func (c Category) String() string {
	switch c {
	case CategorySubtitles:
		return "subtitle rejection"
	case CategoryUnsupportedFormat:
		return "unsupported format"
	case CategoryPostProcess:
		return "post-processing"
	case CategoryNetwork:
		return "network"
	case CategoryRange:
		return "range error"
	case CategorySSL:
		return "ssl verification"
	default:
		return "unclassified"
	}
}

// classifyRules is checked top to bottom against lowercased output and the
// first hit wins, so earlier families outrank later ones. Patterns are
// chosen so the fetcher's real error lines for one family never contain a
// higher family's pattern.
var classifyRules = []struct {
	pattern  string
	category Category
}{
	{"unable to download video subtitles", CategorySubtitles},
	{"no subtitles are available", CategorySubtitles},
	{"--write-sub", CategorySubtitles},
	{"subtitle", CategorySubtitles},

	{"requested format is not available", CategoryUnsupportedFormat},
	{"format is not available", CategoryUnsupportedFormat},
	{"no video formats found", CategoryUnsupportedFormat},

	{"postprocessing", CategoryPostProcess},
	{"error opening output files", CategoryPostProcess},
	{"unable to rename file", CategoryPostProcess},
	{"ffmpeg exited with code", CategoryPostProcess},

	{"connection reset", CategoryNetwork},
	{"connection refused", CategoryNetwork},
	{"timed out", CategoryNetwork},
	{"temporary failure in name resolution", CategoryNetwork},
	{"network is unreachable", CategoryNetwork},
	{"getaddrinfo failed", CategoryNetwork},

	{"http error 416", CategoryRange},
	{"requested range not satisfiable", CategoryRange},

	{"certificate verify failed", CategorySSL},
	{"certificate_verify_failed", CategorySSL},
	{"sslerror", CategorySSL},
	{"ssl error", CategorySSL},
}

// Classify maps fetcher output to the failure family owning its first
// matching pattern. Matching is case-insensitive substring search.
func Classify(text string) Category {
	lower := strings.ToLower(text)
	for _, rule := range classifyRules {
		if strings.Contains(lower, rule.pattern) {
			return rule.category
		}
	}
	return CategoryNone
}
