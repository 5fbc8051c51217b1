package models

import (
	"sort"
	"time"

	"grabarr/internal/domain/consts"
)

// SizeSource records how a rendition's byte size was obtained.
type SizeSource int

const (
	SizeUnknown SizeSource = iota
	SizeExact              // reported filesize
	SizeApprox             // reported filesize_approx
	SizeEstimated          // derived from bitrate and duration
)

// Approximate returns true when the size is not an exact byte count.
func (s SizeSource) Approximate() bool {
	return s == SizeApprox || s == SizeEstimated
}

// Rendition is a single downloadable stream as advertised by the fetcher.
type Rendition struct {
	ID           string
	Kind         consts.MediaKind
	Ext          string
	VCodec       string
	ACodec       string
	Height       int
	BitrateKbps  float64 // audio bitrate (abr)
	TotalBitrate float64 // total bitrate (tbr)
	Size         int64
	SizeSource   SizeSource

	// Synthetic marks menu entries fabricated for a ladder height or audio
	// tier no advertised rendition matched.
	Synthetic bool
}

// SizeKnown reports whether any size figure, exact or otherwise, exists.
func (r Rendition) SizeKnown() bool {
	return r.SizeSource != SizeUnknown && r.Size > 0
}

// Catalog holds everything learned about a URL before downloading.
type Catalog struct {
	URL        string
	ID         string
	Title      string
	Channel    string
	Duration   float64 // seconds
	UploadDate time.Time

	Video    []Rendition
	Audio    []Rendition
	Combined []Rendition

	// Fallback is set when the catalog probe timed out or failed and the
	// fixed resolution ladder was substituted for advertised renditions.
	Fallback bool

	// ShortForm is set for short-form URLs whose catalogs are unreliable.
	ShortForm bool
}

// Empty reports whether no renditions of any kind were found.
func (c *Catalog) Empty() bool {
	return len(c.Video) == 0 && len(c.Audio) == 0 && len(c.Combined) == 0
}

// Heights returns the distinct video heights on offer, descending.
// Combined renditions count; audio-only ones do not.
func (c *Catalog) Heights() []int {
	seen := make(map[int]bool, len(c.Video)+len(c.Combined))
	for _, r := range c.Video {
		if r.Height > 0 {
			seen[r.Height] = true
		}
	}
	for _, r := range c.Combined {
		if r.Height > 0 {
			seen[r.Height] = true
		}
	}

	heights := make([]int, 0, len(seen))
	for h := range seen {
		heights = append(heights, h)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(heights)))
	return heights
}

// BestVideoAt returns the largest video rendition at exactly the given
// height, preferring video-only streams over combined ones. Returns nil
// when the height is not on offer.
func (c *Catalog) BestVideoAt(height int) *Rendition {
	if r := bestAt(c.Video, height); r != nil {
		return r
	}
	return bestAt(c.Combined, height)
}

func bestAt(renditions []Rendition, height int) *Rendition {
	var best *Rendition
	for i := range renditions {
		r := &renditions[i]
		if r.Height != height {
			continue
		}
		if best == nil || r.TotalBitrate > best.TotalBitrate {
			best = r
		}
	}
	return best
}

// BestAudio returns the highest-bitrate audio rendition, or nil.
func (c *Catalog) BestAudio() *Rendition {
	var best *Rendition
	for i := range c.Audio {
		r := &c.Audio[i]
		if best == nil || r.BitrateKbps > best.BitrateKbps {
			best = r
		}
	}
	return best
}

// AudioNear returns audio renditions whose bitrate falls within tol kbps
// of the requested rate.
func (c *Catalog) AudioNear(rateKbps, tol int) []Rendition {
	var out []Rendition
	for _, r := range c.Audio {
		d := r.BitrateKbps - float64(rateKbps)
		if d >= -float64(tol) && d <= float64(tol) {
			out = append(out, r)
		}
	}
	return out
}
