package downloads_test

import (
	"testing"

	"grabarr/internal/domain/consts"
	"grabarr/internal/downloads"
	"grabarr/internal/models"
)

func sampleSpec() models.InvocationSpec {
	return models.InvocationSpec{
		URL:                 "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		Kind:                consts.KindCombined,
		Selector:            "bestvideo[height<=1080]+bestaudio/best[height<=1080]",
		MergeFormat:         consts.ContainerMP4,
		EncodeArgs:          []string{"-c:v", "libx264", "-crf", "19"},
		OutputDir:           "/downloads/combined",
		OutputName:          "%(title)s_%(height)sp_%(upload_date)s.%(ext)s",
		RestrictName:        true,
		Tier:                consts.TierReliable,
		ConcurrentFragments: 8,
		BufferSize:          "16K",
		Retries:             10,
		FragmentRetries:     10,
		Subtitles: models.SubtitleOptions{
			Language: "en",
			Embed:    true,
			AutoOK:   true,
		},
		CapturePath: true,
	}
}

func TestPatch_Subtitles(t *testing.T) {
	t.Parallel()

	got := downloads.Patch(downloads.CategorySubtitles, sampleSpec())
	if !got.Subtitles.Skip {
		t.Fatal("subtitle patch did not set Subtitles.Skip")
	}
	if got.Selector != sampleSpec().Selector {
		t.Fatalf("subtitle patch changed selector to %q", got.Selector)
	}
}

func TestPatch_UnsupportedFormat(t *testing.T) {
	t.Parallel()

	got := downloads.Patch(downloads.CategoryUnsupportedFormat, sampleSpec())
	if got.Selector != "best" {
		t.Fatalf("selector = %q, want %q", got.Selector, "best")
	}
	if got.MergeFormat != "" {
		t.Fatalf("merge format = %q, want empty", got.MergeFormat)
	}
}

func TestPatch_PostProcess(t *testing.T) {
	t.Parallel()

	got := downloads.Patch(downloads.CategoryPostProcess, sampleSpec())
	if got.EncodeArgs != nil {
		t.Fatalf("encode args = %v, want nil", got.EncodeArgs)
	}
	if got.Selector != sampleSpec().Selector {
		t.Fatalf("post-process patch changed selector to %q", got.Selector)
	}
}

func TestPatch_Network(t *testing.T) {
	t.Parallel()

	got := downloads.Patch(downloads.CategoryNetwork, sampleSpec())
	if got.Tier != consts.TierConservative {
		t.Fatalf("tier = %v, want %v", got.Tier, consts.TierConservative)
	}
	if got.ConcurrentFragments != 4 {
		t.Fatalf("fragments = %d, want 4", got.ConcurrentFragments)
	}
	if got.Retries != 25 || got.FragmentRetries != 25 {
		t.Fatalf("retries = %d/%d, want 25/25", got.Retries, got.FragmentRetries)
	}
	if got.SocketTimeoutSecs != 30 {
		t.Fatalf("socket timeout = %d, want 30", got.SocketTimeoutSecs)
	}
	if !got.ForceIPv4 {
		t.Fatal("network patch did not set ForceIPv4")
	}
}

func TestPatch_Range(t *testing.T) {
	t.Parallel()

	got := downloads.Patch(downloads.CategoryRange, sampleSpec())
	if got.ConcurrentFragments != 1 {
		t.Fatalf("fragments = %d, want 1", got.ConcurrentFragments)
	}
	if !got.NoPart || !got.NativeDownloader || !got.GenericExtractor {
		t.Fatalf("range patch flags = %v/%v/%v, want all true",
			got.NoPart, got.NativeDownloader, got.GenericExtractor)
	}
	if got.ForceIPv4 {
		t.Fatal("range patch set ForceIPv4")
	}
}

func TestPatch_SSL(t *testing.T) {
	t.Parallel()

	got := downloads.Patch(downloads.CategorySSL, sampleSpec())
	if !got.NoCheckCertificates {
		t.Fatal("ssl patch did not set NoCheckCertificates")
	}
	if got.Selector != sampleSpec().Selector {
		t.Fatalf("ssl patch changed selector to %q", got.Selector)
	}
}

func TestPatch_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	spec := sampleSpec()
	for _, cat := range []downloads.Category{
		downloads.CategorySubtitles,
		downloads.CategoryUnsupportedFormat,
		downloads.CategoryPostProcess,
		downloads.CategoryNetwork,
		downloads.CategoryRange,
		downloads.CategorySSL,
	} {
		downloads.Patch(cat, spec)
	}

	if spec.Selector != sampleSpec().Selector || spec.ConcurrentFragments != 8 ||
		spec.ForceIPv4 || spec.Subtitles.Skip || spec.NoCheckCertificates {
		t.Fatalf("input spec mutated by patching: %+v", spec)
	}
}

func TestBare(t *testing.T) {
	t.Parallel()

	got := downloads.Bare(sampleSpec())
	if got.Selector != "best" {
		t.Fatalf("selector = %q, want %q", got.Selector, "best")
	}
	if got.MergeFormat != "" || got.EncodeArgs != nil {
		t.Fatalf("bare spec kept merge %q / encode %v", got.MergeFormat, got.EncodeArgs)
	}
	if got.OutputDir != sampleSpec().OutputDir {
		t.Fatalf("bare spec changed output dir to %q", got.OutputDir)
	}
}
