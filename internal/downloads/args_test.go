package downloads_test

import (
	"reflect"
	"slices"
	"testing"

	"grabarr/internal/domain/consts"
	"grabarr/internal/downloads"
	"grabarr/internal/models"
)

// flagValue returns the argument following flag, or "" when absent.
func flagValue(args []string, flag string) string {
	i := slices.Index(args, flag)
	if i < 0 || i+1 >= len(args) {
		return ""
	}
	return args[i+1]
}

func TestFetcherArgs_URLLast(t *testing.T) {
	t.Parallel()

	specs := []models.InvocationSpec{
		sampleSpec(),
		{URL: "https://youtu.be/abc123", Kind: consts.KindAudioOnly, ExtractAudio: true, AudioFormat: "mp3"},
		{URL: "https://www.youtube.com/watch?v=xyz", Kind: consts.KindSubsOnly, SkipDownload: true},
	}

	for _, spec := range specs {
		args := downloads.FetcherArgs(spec)
		if len(args) == 0 || args[len(args)-1] != spec.URL {
			t.Fatalf("URL not last in argv: %v", args)
		}
	}
}

func TestFetcherArgs_Deterministic(t *testing.T) {
	t.Parallel()

	a := downloads.FetcherArgs(sampleSpec())
	b := downloads.FetcherArgs(sampleSpec())
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("identical specs rendered differently:\n%v\n%v", a, b)
	}
}

func TestFetcherArgs_CoreFlags(t *testing.T) {
	t.Parallel()

	args := downloads.FetcherArgs(sampleSpec())

	for _, want := range []string{"--newline", "--no-warnings", "--restrict-filenames", "--no-playlist"} {
		if !slices.Contains(args, want) {
			t.Fatalf("missing %q in %v", want, args)
		}
	}
	if got := flagValue(args, "-f"); got != sampleSpec().Selector {
		t.Fatalf("-f = %q, want %q", got, sampleSpec().Selector)
	}
	if got := flagValue(args, "--merge-output-format"); got != "mp4" {
		t.Fatalf("--merge-output-format = %q, want mp4", got)
	}
	if got := flagValue(args, "-o"); got != "/downloads/combined/%(title)s_%(height)sp_%(upload_date)s.%(ext)s" {
		t.Fatalf("-o = %q", got)
	}
	if got := flagValue(args, "--print"); got != "after_move:%(filepath)s" {
		t.Fatalf("--print = %q", got)
	}
	if got := flagValue(args, "--concurrent-fragments"); got != "8" {
		t.Fatalf("--concurrent-fragments = %q, want 8", got)
	}
	if got := flagValue(args, "--buffer-size"); got != "16K" {
		t.Fatalf("--buffer-size = %q, want 16K", got)
	}
	if got := flagValue(args, "--retries"); got != "10" {
		t.Fatalf("--retries = %q, want 10", got)
	}
}

func TestFetcherArgs_RangeRetryFlags(t *testing.T) {
	t.Parallel()

	base := downloads.FetcherArgs(sampleSpec())
	for _, flag := range []string{"--no-part", "--downloader", "--force-generic-extractor"} {
		if slices.Contains(base, flag) {
			t.Fatalf("base argv already carries %q: %v", flag, base)
		}
	}

	patched := downloads.FetcherArgs(downloads.Patch(downloads.CategoryRange, sampleSpec()))
	if got := flagValue(patched, "--concurrent-fragments"); got != "1" {
		t.Fatalf("--concurrent-fragments = %q, want 1", got)
	}
	if !slices.Contains(patched, "--no-part") || !slices.Contains(patched, "--force-generic-extractor") {
		t.Fatalf("range retry flags missing: %v", patched)
	}
	if got := flagValue(patched, "--downloader"); got != "native" {
		t.Fatalf("--downloader = %q, want native", got)
	}
}

func TestFetcherArgs_SubtitleFlags(t *testing.T) {
	t.Parallel()

	args := downloads.FetcherArgs(sampleSpec())
	if !slices.Contains(args, "--write-subs") || !slices.Contains(args, "--write-auto-subs") {
		t.Fatalf("subtitle write flags missing: %v", args)
	}
	if got := flagValue(args, "--sub-langs"); got != "en" {
		t.Fatalf("--sub-langs = %q, want en", got)
	}
	if got := flagValue(args, "--convert-subs"); got != "srt" {
		t.Fatalf("--convert-subs = %q, want srt", got)
	}
	if !slices.Contains(args, "--embed-subs") {
		t.Fatalf("--embed-subs missing for combined download: %v", args)
	}

	skipped := sampleSpec()
	skipped.Subtitles.Skip = true
	args = downloads.FetcherArgs(skipped)
	for _, flag := range []string{"--write-subs", "--write-auto-subs", "--sub-langs", "--embed-subs"} {
		if slices.Contains(args, flag) {
			t.Fatalf("skip still rendered %q: %v", flag, args)
		}
	}
}

func TestFetcherArgs_EmbedOnlyForCombined(t *testing.T) {
	t.Parallel()

	spec := sampleSpec()
	spec.Kind = consts.KindVideoOnly
	args := downloads.FetcherArgs(spec)
	if slices.Contains(args, "--embed-subs") {
		t.Fatalf("video-only argv carries --embed-subs: %v", args)
	}
	if !slices.Contains(args, "--write-subs") {
		t.Fatalf("video-only argv lost --write-subs: %v", args)
	}
}

func TestFetcherArgs_AudioExtraction(t *testing.T) {
	t.Parallel()

	spec := models.InvocationSpec{
		URL:          "https://youtu.be/abc123",
		Kind:         consts.KindAudioOnly,
		Selector:     "bestaudio[ext=m4a]/bestaudio/best",
		ExtractAudio: true,
		AudioFormat:  "mp3",
		AudioQuality: "192K",
		Subtitles:    models.SubtitleOptions{Skip: true, Language: "en"},
	}
	args := downloads.FetcherArgs(spec)

	if !slices.Contains(args, "--extract-audio") {
		t.Fatalf("--extract-audio missing: %v", args)
	}
	if got := flagValue(args, "--audio-format"); got != "mp3" {
		t.Fatalf("--audio-format = %q, want mp3", got)
	}
	if got := flagValue(args, "--audio-quality"); got != "192K" {
		t.Fatalf("--audio-quality = %q, want 192K", got)
	}
	if slices.Contains(args, "--write-subs") {
		t.Fatalf("audio argv carries subtitle flags: %v", args)
	}
}

func TestFetcherArgs_SubsOnly(t *testing.T) {
	t.Parallel()

	spec := models.InvocationSpec{
		URL:          "https://www.youtube.com/watch?v=xyz",
		Kind:         consts.KindSubsOnly,
		SkipDownload: true,
		Subtitles:    models.SubtitleOptions{Language: "en", AutoOK: true},
	}
	args := downloads.FetcherArgs(spec)

	if !slices.Contains(args, "--skip-download") {
		t.Fatalf("--skip-download missing: %v", args)
	}
	if slices.Contains(args, "-f") {
		t.Fatalf("subs-only argv carries a format selector: %v", args)
	}
	if !slices.Contains(args, "--write-subs") {
		t.Fatalf("--write-subs missing: %v", args)
	}
	if slices.Contains(args, "--embed-subs") {
		t.Fatalf("subs-only argv carries --embed-subs: %v", args)
	}
}

func TestFetcherArgs_EncodePassThrough(t *testing.T) {
	t.Parallel()

	args := downloads.FetcherArgs(sampleSpec())
	if got := flagValue(args, "--postprocessor-args"); got != "ffmpeg:-c:v libx264 -crf 19" {
		t.Fatalf("--postprocessor-args = %q", got)
	}

	bare := downloads.Bare(sampleSpec())
	args = downloads.FetcherArgs(bare)
	if slices.Contains(args, "--postprocessor-args") {
		t.Fatalf("bare argv still carries encode args: %v", args)
	}
}

func TestFetcherArgs_Playlist(t *testing.T) {
	t.Parallel()

	spec := sampleSpec()
	spec.Playlist = true
	args := downloads.FetcherArgs(spec)
	if !slices.Contains(args, "--yes-playlist") || slices.Contains(args, "--no-playlist") {
		t.Fatalf("playlist flags wrong: %v", args)
	}
}

func TestFetcherArgs_CookiesFromBrowser(t *testing.T) {
	t.Parallel()

	spec := sampleSpec()
	spec.CookiesFromBrowser = "firefox"
	args := downloads.FetcherArgs(spec)
	if got := flagValue(args, "--cookies-from-browser"); got != "firefox" {
		t.Fatalf("--cookies-from-browser = %q, want firefox", got)
	}
}
