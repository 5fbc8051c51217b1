package catalog

import (
	"sort"

	"grabarr/internal/domain/consts"
)

// ResolveHeight picks the height to actually download. Empty catalogs
// resolve to the fixed short-form default. Otherwise the greatest
// available height not exceeding the request wins; when every height
// exceeds the request, the smallest available is taken. Never fails.
func ResolveHeight(requested int, available []int) (actual int, shortForm bool) {
	if len(available) == 0 {
		return consts.FallbackHeight, true
	}

	sorted := append([]int(nil), available...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	for _, h := range sorted {
		if h <= requested {
			return h, false
		}
	}
	return sorted[len(sorted)-1], false
}

// ResolveAudioRate applies the same rule to audio tiers. An empty list
// keeps the requested tier, which stays downloadable through the
// nominal-bitrate estimate path.
func ResolveAudioRate(requested int, available []int) int {
	if len(available) == 0 {
		return requested
	}

	sorted := append([]int(nil), available...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	for _, r := range sorted {
		if r <= requested {
			return r
		}
	}
	return sorted[len(sorted)-1]
}
