// Package app runs Grabarr's interactive download session.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"grabarr/internal/catalog"
	"grabarr/internal/command/builder"
	"grabarr/internal/domain/consts"
	"grabarr/internal/domain/paths"
	"grabarr/internal/downloads"
	"grabarr/internal/hwaccel"
	"grabarr/internal/interactive"
	"grabarr/internal/models"
	"grabarr/internal/subtitles"
	"grabarr/internal/utils/logging"
	"grabarr/internal/validation"

	"github.com/fatih/color"
)

// Session threads one interactive run's fixed state through the loop.
type Session struct {
	prompter *interactive.Prompter
	settings models.Settings
	backend  consts.Backend
}

// Run validates external dependencies, probes hardware once, then drives
// the prompt loop until the user finishes.
func Run(ctx context.Context, settings models.Settings) error {
	if err := validation.CheckDependencies(); err != nil {
		return err
	}

	backend := consts.BackendNone
	if settings.HWAccel {
		backend = hwaccel.Detect(ctx, settings.PreferredBackend)
	} else {
		logging.I("Hardware acceleration disabled in settings")
	}

	p, err := interactive.NewPrompter()
	if err != nil {
		return err
	}
	defer func() {
		if err := p.Close(); err != nil {
			logging.E("Failed to close input: %v", err)
		}
	}()

	s := &Session{prompter: p, settings: settings, backend: backend}
	s.loop(ctx)
	return nil
}

// loop asks for URLs until a blank answer, closed input, or cancellation.
func (s *Session) loop(ctx context.Context) {
	var done, failed, skipped int

	for ctx.Err() == nil {
		url, err := s.prompter.AskURL()
		if err != nil {
			if !errors.Is(err, interactive.ErrEndSession) {
				logging.E("Input error: %v", err)
			}
			break
		}
		if url == "" {
			break
		}
		if err := validation.ValidateURL(url); err != nil {
			color.Yellow("Not a usable URL: %v", err)
			continue
		}

		res, err := s.handleURL(ctx, url)
		if err != nil {
			if !errors.Is(err, interactive.ErrEndSession) {
				logging.E("Input error: %v", err)
			}
			break
		}

		switch {
		case res.Skipped:
			skipped++
			color.Yellow("Skipped: %v", res.Err)
			logging.W("Skipped %q: %v", url, res.Err)
		case res.Succeeded():
			done++
			if res.OutputPath != "" {
				color.Green("Done: %s", res.OutputPath)
			} else {
				color.Green("Done.")
			}
			logging.S("Completed %q after %d attempt(s)", url, res.Attempts)
		default:
			failed++
			color.Red("Failed: %v", res.Err)
			logging.E("Download failed for %q: %v", url, res.Err)
		}
	}

	color.Cyan("\nSession complete: %d downloaded, %d failed, %d skipped.", done, failed, skipped)
	logging.I("Session complete: %d downloaded, %d failed, %d skipped", done, failed, skipped)
}

// handleURL walks one URL through the prompt flow and runs the download.
// The returned error is only ever a prompt-level failure; download
// failures travel inside the Result.
func (s *Session) handleURL(ctx context.Context, url string) (downloads.Result, error) {
	playlist := false
	if validation.IsPlaylistURL(url) {
		var err error
		if playlist, err = s.prompter.ConfirmPlaylist(); err != nil {
			return downloads.Result{}, err
		}
	}
	if validation.IsShortFormURL(url) {
		logging.D(1, "Short-form link %q, format listings are often incomplete", url)
	}

	color.Cyan("Reading available formats...")
	cat := catalog.Build(ctx, url, time.Duration(s.settings.CatalogTimeoutSecs)*time.Second)
	interactive.ShowTarget(cat)

	kind, err := s.prompter.ChooseAction()
	if err != nil {
		return downloads.Result{}, err
	}

	req := builder.Request{
		URL:       url,
		Kind:      kind,
		Playlist:  playlist,
		Backend:   s.backend,
		Tier:      consts.TierReliable,
		Settings:  s.settings,
		OutputDir: paths.DirFor(kind),
	}

	switch kind {
	case consts.KindAudioOnly:
		if err := s.fillAudioChoice(cat, &req); err != nil {
			return downloads.Result{}, err
		}
	case consts.KindSubsOnly:
		// No quality menu
	default:
		if err := s.fillVideoChoice(cat, &req); err != nil {
			return downloads.Result{}, err
		}
	}

	if kind != consts.KindAudioOnly {
		skip, err := s.fillSubtitles(ctx, url, kind, &req)
		if err != nil {
			return downloads.Result{}, err
		}
		if skip {
			return downloads.Result{
				URL:     url,
				Skipped: true,
				Err:     fmt.Errorf("no %s subtitles available", req.Subtitles.Language),
			}, nil
		}
	}

	spec := builder.Build(req)
	color.Cyan("Starting download...")
	return downloads.Run(ctx, spec), nil
}

// fillVideoChoice runs the resolution menu and resolves the pick against
// what the catalog actually lists.
func (s *Session) fillVideoChoice(cat *models.Catalog, req *builder.Request) error {
	defHeight, _ := catalog.ResolveHeight(s.settings.DefaultResolution, consts.HeightLadder[:])

	height, err := s.prompter.ChooseResolution(catalog.VideoMenu(cat), defHeight)
	if err != nil {
		return err
	}

	actual, assumed := catalog.ResolveHeight(height, cat.Heights())
	switch {
	case assumed:
		color.Yellow("No resolutions listed, assuming %dp.", actual)
	case actual != height:
		color.Yellow("%dp not listed, closest available is %dp.", height, actual)
	}

	req.Height = actual
	if r := cat.BestVideoAt(actual); r != nil {
		req.Rendition = r
	}
	return nil
}

// fillAudioChoice runs the audio tier menu. Tiers without a matching
// rendition stay downloadable through the best-audio selector.
func (s *Session) fillAudioChoice(cat *models.Catalog, req *builder.Request) error {
	defRate := catalog.ResolveAudioRate(s.settings.DefaultAudioQuality, consts.AudioTiers[:])

	entries := catalog.AudioMenu(cat)
	tier, err := s.prompter.ChooseAudioRate(entries, defRate)
	if err != nil {
		return err
	}

	req.AudioRate = tier
	entry := entries[interactive.DefaultRateIndex(tier)-1]
	if !entry.Synthetic {
		req.Rendition = &entry
	}
	return nil
}

// fillSubtitles prompts for the language and probes availability. The
// skip return means a subtitles-only action has nothing to fetch.
func (s *Session) fillSubtitles(ctx context.Context, url string, kind consts.MediaKind, req *builder.Request) (skip bool, err error) {
	lang, err := s.prompter.AskSubtitleLanguage(s.settings.SubtitleLanguage)
	if err != nil {
		return false, err
	}

	avail := subtitles.Check(ctx, url, lang)
	switch {
	case avail.Manual || avail.Auto:
		req.Subtitles = models.SubtitleOptions{
			Language: lang,
			Embed:    kind == consts.KindCombined,
			AutoOK:   avail.Auto && !avail.Manual,
		}
	case avail.Assumed:
		logging.D(1, "Subtitle probe for %q was inconclusive, sending subtitle flags anyway", url)
		req.Subtitles = models.SubtitleOptions{
			Language: lang,
			Embed:    kind == consts.KindCombined,
			AutoOK:   true,
		}
	case kind == consts.KindSubsOnly:
		req.Subtitles = models.SubtitleOptions{Language: lang}
		return true, nil
	default:
		color.Yellow("No %s subtitles found, continuing without.", lang)
		req.Subtitles = models.SubtitleOptions{Skip: true, Language: lang}
	}
	return false, nil
}
