package downloads

import (
	"grabarr/internal/command/builder"
	"grabarr/internal/models"
)

// Patch derives the retry spec for a classified failure. Each category
// maps to one fixed parameter change; the input spec is never mutated.
func Patch(c Category, spec models.InvocationSpec) models.InvocationSpec {
	out := spec
	switch c {
	case CategorySubtitles:
		out.Subtitles.Skip = true
	case CategoryUnsupportedFormat:
		out.Selector = "best"
		out.MergeFormat = ""
	case CategoryPostProcess:
		out.EncodeArgs = nil
	case CategoryNetwork:
		builder.Conservative(&out)
		out.ForceIPv4 = true
	case CategoryRange:
		out.ConcurrentFragments = 1
		out.NoPart = true
		out.NativeDownloader = true
		out.GenericExtractor = true
	case CategorySSL:
		out.NoCheckCertificates = true
	}
	return out
}

// Bare is the final post-processing escalation: minimal format selector,
// no merge container, no encode arguments.
func Bare(spec models.InvocationSpec) models.InvocationSpec {
	out := spec
	out.Selector = "best"
	out.MergeFormat = ""
	out.EncodeArgs = nil
	return out
}
