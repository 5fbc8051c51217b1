package builder

import (
	"fmt"

	"grabarr/internal/domain/consts"
	"grabarr/internal/models"
)

// Selector composes the fetcher's format-selection expression. Exact
// format IDs are used when the catalog supplied one; fallback-ladder and
// short-form entries carry no ID, so a height-bounded expression
// substitutes. Every branch ends in a selector the fetcher can satisfy.
func Selector(kind consts.MediaKind, r *models.Rendition, height int) string {
	switch kind {
	case consts.KindCombined:
		if r != nil && r.ID != "" {
			if r.Kind == consts.KindCombined {
				return fmt.Sprintf("%s/best[height<=%d]", r.ID, height)
			}
			return fmt.Sprintf("%s+bestaudio/best[height<=%d]", r.ID, height)
		}
		return fmt.Sprintf("bestvideo[height<=%d]+bestaudio/best[height<=%d]", height, height)

	case consts.KindVideoOnly:
		if r != nil && r.ID != "" {
			return r.ID
		}
		return fmt.Sprintf("bestvideo[height<=%d]", height)

	case consts.KindAudioOnly:
		if r != nil && r.ID != "" && !r.Synthetic {
			return fmt.Sprintf("%s/bestaudio[ext=m4a]/bestaudio/best", r.ID)
		}
		return "bestaudio[ext=m4a]/bestaudio[ext=webm]/bestaudio/best"

	default:
		return ""
	}
}
