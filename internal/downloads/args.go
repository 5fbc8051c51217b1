package downloads

import (
	"path/filepath"
	"strconv"
	"strings"

	"grabarr/internal/domain/command"
	"grabarr/internal/domain/consts"
	"grabarr/internal/models"
)

// FetcherArgs renders a spec into fetcher arguments. Rendering is
// deterministic: identical specs always produce identical argv, so retry
// patches only ever flip spec fields.
func FetcherArgs(spec models.InvocationSpec) []string {
	args := make([]string, 0, 48)

	args = append(args, command.Newline, command.NoWarnings)
	if spec.RestrictName {
		args = append(args, command.RestrictFilenames)
	}

	// Format selection
	if spec.Selector != "" {
		args = append(args, command.Format, spec.Selector)
	}
	if spec.MergeFormat != "" {
		args = append(args, command.MergeOutputFormat, spec.MergeFormat)
	}

	// Output location
	if spec.OutputDir != "" || spec.OutputName != "" {
		args = append(args, command.Output, filepath.Join(spec.OutputDir, spec.OutputName))
	}
	if spec.CapturePath {
		args = append(args, command.Print, command.AfterMove)
	}

	// Playlist handling
	if spec.Playlist {
		args = append(args, command.YesPlaylist)
	} else {
		args = append(args, command.NoPlaylist)
	}

	// Network shape
	if spec.ConcurrentFragments > 0 {
		args = append(args, command.ConcurrentFragments, strconv.Itoa(spec.ConcurrentFragments))
	}
	if spec.BufferSize != "" {
		args = append(args, command.BufferSize, spec.BufferSize)
	}
	if spec.Retries > 0 {
		args = append(args, command.Retries, strconv.Itoa(spec.Retries))
	}
	if spec.FragmentRetries > 0 {
		args = append(args, command.FragmentRetries, strconv.Itoa(spec.FragmentRetries))
	}
	if spec.SocketTimeoutSecs > 0 {
		args = append(args, command.SocketTimeout, strconv.Itoa(spec.SocketTimeoutSecs))
	}

	// Retry patches
	if spec.ForceIPv4 {
		args = append(args, command.ForceIPv4)
	}
	if spec.NoPart {
		args = append(args, command.NoPart)
	}
	if spec.NativeDownloader {
		args = append(args, command.DownloaderNative, command.DownloaderNativeArg)
	}
	if spec.GenericExtractor {
		args = append(args, command.ForceGenericExtract)
	}
	if spec.NoCheckCertificates {
		args = append(args, command.NoCheckCertificates)
	}

	// Audio extraction
	if spec.ExtractAudio {
		args = append(args, command.ExtractAudio, command.AudioFormat, spec.AudioFormat)
		if spec.AudioQuality != "" {
			args = append(args, command.AudioQuality, spec.AudioQuality)
		}
	}

	// Subtitles
	if spec.SkipDownload {
		args = append(args, command.SkipVideo)
	}
	if !spec.Subtitles.Skip && spec.Subtitles.Language != "" {
		args = append(args, command.WriteSubs,
			command.SubLangs, spec.Subtitles.Language,
			command.ConvertSubs, command.SubFormatSRT)
		if spec.Subtitles.AutoOK {
			args = append(args, command.WriteAutoSubs)
		}
		if spec.Subtitles.Embed && spec.Kind == consts.KindCombined {
			args = append(args, command.EmbedSubs)
		}
	}

	// Encode pass-through
	if len(spec.EncodeArgs) > 0 {
		args = append(args, command.PostprocessorArgs, command.PPFFmpegPrefix+strings.Join(spec.EncodeArgs, " "))
	}

	// Cookies
	if spec.CookiesFromBrowser != "" {
		args = append(args, command.CookiesFromBrowser, spec.CookiesFromBrowser)
	}

	// Add target URL [ MUST GO LAST !! ]
	args = append(args, spec.URL)
	return args
}
