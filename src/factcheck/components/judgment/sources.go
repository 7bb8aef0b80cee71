package judgment

import (
	"strings"

	"github.com/factlens/factscore/src/factcheck/types"
)

// backfillOrder is the category order used when resolving a cited source that
// lacks a usable URL.
var backfillOrder = []types.Category{
	types.CategoryNews,
	types.CategoryEncyclopedia,
	types.CategoryVideo,
}

// ReconcileSources backfills URL, outlet and type for cited sources that the
// provider returned without a resolvable absolute URL, by best-effort title
// overlap against the evidence set. Unmatched sources are left as-is.
func ReconcileSources(j *types.Judgment, set types.EvidenceSet) {
	for i := range j.Sources {
		src := &j.Sources[i]
		if hasAbsoluteURL(src.URL) {
			continue
		}
		title := strings.TrimSpace(src.Title)
		if title == "" {
			continue
		}
		for _, cat := range backfillOrder {
			match := matchByTitle(title, set[cat])
			if match == nil {
				continue
			}
			src.URL = match.URL
			if src.Outlet == "" {
				src.Outlet = match.Outlet
			}
			if src.Type == "" {
				src.Type = string(cat)
			}
			break
		}
	}
}

func hasAbsoluteURL(url string) bool {
	return url != "" && url != "#" && strings.HasPrefix(url, "http")
}

// matchByTitle returns the first item whose title contains, or is contained
// by, the cited title.
func matchByTitle(title string, items []types.EvidenceItem) *types.EvidenceItem {
	for i := range items {
		it := &items[i]
		if it.Title == "" {
			continue
		}
		if strings.Contains(it.Title, title) || strings.Contains(title, it.Title) {
			return it
		}
	}
	return nil
}
