// Package catalog probes a URL for its available renditions and picks
// download targets from them.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"sort"
	"time"

	"grabarr/internal/domain/command"
	"grabarr/internal/domain/consts"
	"grabarr/internal/models"
	"grabarr/internal/utils/logging"

	"github.com/alessio/shellescape"
	"github.com/araddon/dateparse"
)

// Build probes the URL with the fetcher's metadata-dump mode and returns
// a Catalog. It never returns an error: a timeout or unparseable dump
// yields the fixed standard-ladder fallback, and a parseable dump with no
// usable renditions yields an empty short-form Catalog.
func Build(ctx context.Context, rawURL string, timeout time.Duration) *models.Catalog {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	args := make([]string, 0, 8)
	args = append(args,
		command.OutputJSON,
		command.NoWarnings,
		command.SkipVideo,
		command.NoPlaylist)

	// Add target URL [ MUST GO LAST !! ]
	args = append(args, rawURL)

	cmd := exec.CommandContext(ctx, consts.BinFetcher, args...)
	logging.D(1, "Running catalog probe: %s %s", consts.BinFetcher, shellescape.QuoteCommand(args))

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
		logging.W("Catalog probe for %q hit the %v limit, using the standard ladder", rawURL, timeout)
		return Fallback(rawURL)

	case res := <-outCh:
		if res.err != nil {
			logging.D(1, "Catalog probe failed for %q: %v", rawURL, res.err)
			return Fallback(rawURL)
		}

		cat, err := Parse(res.data)
		if err != nil {
			logging.D(1, "Catalog dump unparseable for %q: %v", rawURL, err)
			return Fallback(rawURL)
		}

		cat.URL = rawURL
		if cat.Empty() {
			logging.I("No renditions advertised for %q, treating as short-form content", rawURL)
			cat.ShortForm = true
		}
		return cat
	}
}

// Parse converts a raw metadata dump into a Catalog. Exported for
// testing without a fetcher binary on PATH.
func Parse(data []byte) (*models.Catalog, error) {
	var doc dumpDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse metadata dump: %w", err)
	}

	// Playlist dumps nest per-video documents; probe the first.
	if len(doc.Entries) != 0 {
		entry := doc.Entries[0]
		if entry.Title == "" {
			entry.Title = doc.Title
		}
		doc = entry
	}

	cat := &models.Catalog{
		ID:       doc.ID,
		Title:    doc.Title,
		Channel:  doc.Channel,
		Duration: doc.Duration,
	}
	if cat.Channel == "" {
		cat.Channel = doc.Uploader
	}
	if doc.UploadDate != "" {
		if t, err := dateparse.ParseAny(doc.UploadDate); err == nil {
			cat.UploadDate = t
		} else {
			logging.D(2, "Could not parse upload date %q: %v", doc.UploadDate, err)
		}
	}

	for i := range doc.Formats {
		f := &doc.Formats[i]

		hasVideo := f.VCodec != "" && f.VCodec != "none"
		hasAudio := f.ACodec != "" && f.ACodec != "none"
		if !hasVideo && !hasAudio {
			// Storyboards and other non-media tracks.
			continue
		}

		r := models.Rendition{
			ID:           f.FormatID,
			Ext:          f.Ext,
			VCodec:       f.VCodec,
			ACodec:       f.ACodec,
			Height:       f.Height,
			BitrateKbps:  f.ABR,
			TotalBitrate: f.TBR,
		}
		r.Size, r.SizeSource = sizeFor(f, doc.Duration)

		switch {
		case hasVideo && hasAudio:
			r.Kind = consts.KindCombined
			cat.Combined = append(cat.Combined, r)
		case hasVideo:
			r.Kind = consts.KindVideoOnly
			cat.Video = append(cat.Video, r)
		default:
			r.Kind = consts.KindAudioOnly
			cat.Audio = append(cat.Audio, r)
		}
	}

	sortByQuality(cat.Video)
	sortByQuality(cat.Combined)
	sort.SliceStable(cat.Audio, func(i, j int) bool {
		return cat.Audio[i].BitrateKbps > cat.Audio[j].BitrateKbps
	})

	return cat, nil
}

// sortByQuality orders video renditions by height then total bitrate,
// both descending.
func sortByQuality(renditions []models.Rendition) {
	sort.SliceStable(renditions, func(i, j int) bool {
		if renditions[i].Height != renditions[j].Height {
			return renditions[i].Height > renditions[j].Height
		}
		return renditions[i].TotalBitrate > renditions[j].TotalBitrate
	})
}

// Fallback returns the fixed standard ladder used when the real catalog
// cannot be learned. Entries carry no IDs or sizes, so selectors built
// from them use height expressions instead of exact format IDs.
func Fallback(rawURL string) *models.Catalog {
	cat := &models.Catalog{
		URL:      rawURL,
		Fallback: true,
	}

	for _, h := range consts.HeightLadder {
		cat.Video = append(cat.Video, models.Rendition{
			Kind:   consts.KindVideoOnly,
			Height: h,
		})
	}
	for _, tier := range consts.AudioTiers {
		cat.Audio = append(cat.Audio, models.Rendition{
			Kind:        consts.KindAudioOnly,
			BitrateKbps: float64(tier),
		})
	}
	return cat
}
