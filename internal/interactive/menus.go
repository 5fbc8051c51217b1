package interactive

import (
	"fmt"
	"time"

	"grabarr/internal/domain/consts"
	"grabarr/internal/models"
	"grabarr/internal/utils/logging"

	"github.com/fatih/color"
)

// actionKinds is indexed by menu position.
var actionKinds = [...]consts.MediaKind{
	consts.KindCombined,
	consts.KindVideoOnly,
	consts.KindAudioOnly,
	consts.KindSubsOnly,
}

// AskURL prompts for the next target. A blank answer ends the session.
func (p *Prompter) AskURL() (string, error) {
	return p.Ask("\nVideo URL (blank to finish): ")
}

// ConfirmPlaylist asks whether a playlist-shaped URL should be fetched
// whole.
func (p *Prompter) ConfirmPlaylist() (bool, error) {
	return p.askYesNo("Playlist link detected. Download the whole playlist? [y/N]: ", false)
}

// ChooseAction picks the media kind for this URL.
func (p *Prompter) ChooseAction() (consts.MediaKind, error) {
	color.Cyan("\nDownload type:")
	logging.P("  1) Video with audio")
	logging.P("  2) Video only")
	logging.P("  3) Audio only (MP3)")
	logging.P("  4) Subtitles only")

	choice, err := p.askChoice("Choose type [1]: ", len(actionKinds), 1)
	if err != nil {
		return "", err
	}
	return actionKinds[choice-1], nil
}

// ChooseResolution renders the resolution ladder with size figures and
// returns the chosen height. Entries are ladder-aligned, one per height.
func (p *Prompter) ChooseResolution(entries []models.Rendition, defHeight int) (int, error) {
	color.Cyan("\nResolution:")
	for i, r := range entries {
		logging.P("  %d) %4dp  [%s]", i+1, r.Height, FormatSize(r))
	}

	def := DefaultHeightIndex(defHeight)
	choice, err := p.askChoice(fmt.Sprintf("Choose resolution [%d]: ", def), len(entries), def)
	if err != nil {
		return 0, err
	}
	return entries[choice-1].Height, nil
}

// ChooseAudioRate renders the audio tiers with size figures and returns
// the chosen tier in kbps. Entries are tier-aligned, one per tier.
func (p *Prompter) ChooseAudioRate(entries []models.Rendition, defRate int) (int, error) {
	color.Cyan("\nAudio quality:")
	for i, r := range entries {
		logging.P("  %d) %3d kbps  [%s]", i+1, consts.AudioTiers[i], FormatSize(r))
	}

	def := DefaultRateIndex(defRate)
	choice, err := p.askChoice(fmt.Sprintf("Choose quality [%d]: ", def), len(entries), def)
	if err != nil {
		return 0, err
	}
	return consts.AudioTiers[choice-1], nil
}

// AskSubtitleLanguage prompts for a language code, blank keeping the
// configured default.
func (p *Prompter) AskSubtitleLanguage(def string) (string, error) {
	lang, err := p.Ask(fmt.Sprintf("Subtitle language [%s]: ", def))
	if err != nil {
		return "", err
	}
	if lang == "" {
		return def, nil
	}
	return lang, nil
}

// ShowTarget prints what the catalog probe found for the URL.
func ShowTarget(cat *models.Catalog) {
	if cat.Fallback {
		color.Yellow("Could not read formats for this link, offering the standard ladder.")
		return
	}

	color.Green("\n%s", cat.Title)
	if cat.Channel != "" {
		logging.P("  %s", cat.Channel)
	}
	if cat.Duration > 0 {
		d := time.Duration(cat.Duration * float64(time.Second))
		logging.P("  %s", d.Round(time.Second))
	}
}
