package interactive

import (
	"fmt"
	"strconv"
	"strings"

	"grabarr/internal/domain/consts"
	"grabarr/internal/models"

	"github.com/dustin/go-humanize"
)

// ParseChoice reads a 1-based menu position. Blank input takes the
// default.
func ParseChoice(input string, max, def int) (int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return def, nil
	}
	n, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", input)
	}
	if n < 1 || n > max {
		return 0, fmt.Errorf("choice %d out of range 1-%d", n, max)
	}
	return n, nil
}

// ParseYesNo reads a y/n answer. Blank input takes the default.
func ParseYesNo(input string, def bool) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	}
	return false, fmt.Errorf("expected y or n, got %q", input)
}

// FormatSize renders a rendition's size for menu display. Approximate and
// estimated figures carry a ~ prefix.
func FormatSize(r models.Rendition) string {
	if !r.SizeKnown() {
		return "size unknown"
	}
	size := humanize.Bytes(uint64(r.Size))
	if r.SizeSource.Approximate() {
		return "~" + size
	}
	return size
}

// DefaultHeightIndex is the 1-based menu position of the preferred
// height, or the first entry when it is off the ladder.
func DefaultHeightIndex(height int) int {
	for i, h := range consts.HeightLadder {
		if h == height {
			return i + 1
		}
	}
	return 1
}

// DefaultRateIndex is the 1-based menu position of the preferred audio
// tier, or the first entry when it is off the list.
func DefaultRateIndex(rate int) int {
	for i, r := range consts.AudioTiers {
		if r == rate {
			return i + 1
		}
	}
	return 1
}
