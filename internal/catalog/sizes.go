package catalog

import (
	"grabarr/internal/domain/consts"
	"grabarr/internal/models"
)

// sizeFor resolves a rendition's byte size through the fallback chain:
// declared exact size, declared approximate size, bitrate estimate,
// unknown.
func sizeFor(f *dumpFormat, duration float64) (int64, models.SizeSource) {
	if f.Filesize > 0 {
		return f.Filesize, models.SizeExact
	}
	if f.FilesizeApprox > 0 {
		return f.FilesizeApprox, models.SizeApprox
	}

	kbps := f.TBR
	if kbps <= 0 {
		kbps = f.ABR
	}
	if kbps > 0 && duration > 0 {
		return EstimateBytes(kbps, duration), models.SizeEstimated
	}
	return 0, models.SizeUnknown
}

// EstimateBytes converts a bitrate in kbps over a duration in seconds to
// a byte count.
func EstimateBytes(kbps, seconds float64) int64 {
	return int64(kbps * 1000 * seconds / 8)
}

// VideoMenu derives one entry per ladder height, best rendition first
// where the height is on offer. Video-only entries have the best audio
// rendition's size folded in so the figure reflects the merged file.
// Heights the catalog does not carry come back synthetic with no size.
func VideoMenu(cat *models.Catalog) []models.Rendition {
	menu := make([]models.Rendition, 0, len(consts.HeightLadder))
	bestAudio := cat.BestAudio()

	for _, h := range consts.HeightLadder {
		best := cat.BestVideoAt(h)
		if best == nil {
			menu = append(menu, models.Rendition{
				Kind:      consts.KindVideoOnly,
				Height:    h,
				Synthetic: true,
			})
			continue
		}

		entry := *best
		if entry.Kind == consts.KindVideoOnly && entry.SizeKnown() &&
			bestAudio != nil && bestAudio.SizeKnown() {
			entry.Size += bestAudio.Size
			entry.SizeSource = worseSource(entry.SizeSource, bestAudio.SizeSource)
		}
		menu = append(menu, entry)
	}
	return menu
}

// AudioMenu derives one entry per standard tier. A tier with no
// advertised rendition within the tolerance window still appears,
// synthetic, with a size estimated from the tier's nominal bitrate.
func AudioMenu(cat *models.Catalog) []models.Rendition {
	menu := make([]models.Rendition, 0, len(consts.AudioTiers))

	for _, tier := range consts.AudioTiers {
		matches := cat.AudioNear(tier, consts.AudioTierTolerance)
		if len(matches) == 0 {
			entry := models.Rendition{
				Kind:        consts.KindAudioOnly,
				BitrateKbps: float64(tier),
				Synthetic:   true,
			}
			if cat.Duration > 0 {
				entry.Size = EstimateBytes(float64(tier), cat.Duration)
				entry.SizeSource = models.SizeEstimated
			}
			menu = append(menu, entry)
			continue
		}

		best := matches[0]
		for _, m := range matches[1:] {
			if m.BitrateKbps > best.BitrateKbps {
				best = m
			}
		}
		menu = append(menu, best)
	}
	return menu
}

// worseSource returns the less trustworthy of two size sources.
func worseSource(a, b models.SizeSource) models.SizeSource {
	if b > a {
		return b
	}
	return a
}
