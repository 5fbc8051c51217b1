package catalog_test

import (
	"testing"

	"grabarr/internal/catalog"
)

// TestResolveHeight covers the deterministic fallback rule ----------------------------------------------------
func TestResolveHeight(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		available []int
		want      int
		shortForm bool
	}{
		{"exact match", 1080, []int{2160, 1080, 720}, 1080, false},
		{"next below when missing", 1080, []int{2160, 720, 480}, 720, false},
		{"lowest when all exceed", 144, []int{720, 480}, 480, false},
		{"highest when request above all", 4320, []int{2160, 1080}, 2160, false},
		{"unsorted input", 700, []int{480, 2160, 720, 360}, 480, false},
		{"single entry below", 1080, []int{360}, 360, false},
		{"single entry above", 360, []int{720}, 720, false},
		{"empty is short-form default", 1080, nil, 720, true},
	}

	for _, tc := range tests {
		got, shortForm := catalog.ResolveHeight(tc.requested, tc.available)
		if got != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.want, got)
		}
		if shortForm != tc.shortForm {
			t.Fatalf("%s: expected shortForm=%v, got %v", tc.name, tc.shortForm, shortForm)
		}
	}
}

// The result is always a member of the available set (or the fixed
// default for an empty set), and never exceeds the request when any
// value at or below it exists.
func TestResolveHeight_MemberProperty(t *testing.T) {
	sets := [][]int{
		{2160, 1440, 1080, 720, 480, 360, 240, 144},
		{720},
		{144, 2160},
		{480, 360, 240},
	}
	requests := []int{144, 240, 360, 480, 720, 1080, 1440, 2160, 99, 5000}

	for _, available := range sets {
		members := make(map[int]bool, len(available))
		var lowest int
		for i, h := range available {
			members[h] = true
			if i == 0 || h < lowest {
				lowest = h
			}
		}

		for _, req := range requests {
			got, shortForm := catalog.ResolveHeight(req, available)
			if shortForm {
				t.Fatalf("non-empty set %v flagged short-form", available)
			}
			if !members[got] {
				t.Fatalf("resolve(%d, %v) = %d, not a member", req, available, got)
			}
			if got > req && req >= lowest {
				t.Fatalf("resolve(%d, %v) = %d exceeds request despite lower members", req, available, got)
			}
		}
	}
}

func TestResolveAudioRate(t *testing.T) {
	tests := []struct {
		requested int
		available []int
		want      int
	}{
		{192, []int{320, 256, 192, 128}, 192},
		{192, []int{320, 256}, 256},
		{128, []int{320, 256}, 256},
		{320, []int{128}, 128},
		{192, nil, 192},
	}

	for _, tc := range tests {
		if got := catalog.ResolveAudioRate(tc.requested, tc.available); got != tc.want {
			t.Fatalf("resolve(%d, %v): expected %d, got %d", tc.requested, tc.available, got)
		}
	}
}
