package subtitles_test

import (
	"testing"

	"grabarr/internal/subtitles"
)

const fullListing = `[youtube] Extracting URL: https://www.youtube.com/watch?v=dQw4w9WgXcQ
[youtube] dQw4w9WgXcQ: Downloading webpage
[info] Available automatic captions for dQw4w9WgXcQ:
Language Name                  Formats
af       Afrikaans             vtt, ttml, srv3, srv2, srv1, json3
de       German                vtt, ttml, srv3, srv2, srv1, json3
en-orig  English (Original)    vtt, ttml, srv3, srv2, srv1, json3
es       Spanish               vtt, ttml, srv3, srv2, srv1, json3
[info] Available subtitles for dQw4w9WgXcQ:
Language Name                  Formats
en       English               vtt, ttml, srv3, srv2, srv1, json3
fr       French                vtt, ttml, srv3, srv2, srv1, json3
`

const autoOnlyListing = `[info] Available automatic captions for abc123:
Language Name                  Formats
en       English               vtt, ttml, srv3
[info] Available subtitles for abc123:
Language Name                  Formats
`

const noSubsListing = `[youtube] abc123: Downloading webpage
abc123 has no subtitles
`

// TestParseListing checks section and language extraction -----------------------------------------------------
func TestParseListing_ManualAndAuto(t *testing.T) {
	av := subtitles.ParseListing(fullListing, "en")

	if !av.Manual {
		t.Fatalf("expected manual subtitles for en")
	}
	if !av.Auto {
		t.Fatalf("expected auto captions for en via en-orig")
	}
	if av.Assumed {
		t.Fatalf("parsed listings must not be assumed")
	}
	if !av.Available() {
		t.Fatalf("expected available")
	}
}

func TestParseListing_AutoOnly(t *testing.T) {
	av := subtitles.ParseListing(autoOnlyListing, "en")

	if av.Manual {
		t.Fatalf("no manual subtitles present, got manual=true")
	}
	if !av.Auto {
		t.Fatalf("expected auto captions")
	}
}

func TestParseListing_LanguageMiss(t *testing.T) {
	av := subtitles.ParseListing(fullListing, "ja")

	if av.Available() {
		t.Fatalf("expected no availability for ja, got %+v", av)
	}
}

func TestParseListing_NoSubtitles(t *testing.T) {
	av := subtitles.ParseListing(noSubsListing, "en")

	if av.Available() {
		t.Fatalf("expected nothing available, got %+v", av)
	}
}

func TestParseListing_RegionalVariant(t *testing.T) {
	listing := `[info] Available subtitles for xyz:
Language Name    Formats
pt-BR    Portuguese (Brazil)  vtt
`
	if av := subtitles.ParseListing(listing, "pt"); !av.Manual {
		t.Fatalf("expected pt to match pt-BR")
	}
	if av := subtitles.ParseListing(listing, "p"); av.Manual {
		t.Fatalf("bare prefix p must not match pt-BR")
	}
}

func TestParseListing_Empty(t *testing.T) {
	if av := subtitles.ParseListing("", "en"); av.Available() {
		t.Fatalf("expected nothing available from empty output")
	}
}
