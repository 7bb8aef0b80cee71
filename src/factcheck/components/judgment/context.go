package judgment

import (
	"fmt"
	"strings"

	"github.com/factlens/factscore/src/factcheck/types"
)

// maxRegistryEntries caps how many fact-check records are rendered into the
// judgment context; the registry can return long tails of loosely related
// claims.
const maxRegistryEntries = 5

// BuildContext renders the evidence set into one labeled text block, in fixed
// priority order: encyclopedia, news, video, fact-check. The judgment
// providers are told encyclopedia outranks news for base facts and that video
// content may be low-trust.
func BuildContext(set types.EvidenceSet) string {
	var b strings.Builder

	if items := set[types.CategoryEncyclopedia]; len(items) > 0 {
		b.WriteString("\n\n========== Encyclopedia results (high reliability) ==========\n\n")
		for i, it := range items {
			fmt.Fprintf(&b, "[Encyclopedia %d]\nTitle: %s\nDescription: %s\nURL: %s\n---\n\n",
				i+1, it.Title, it.Description, it.URL)
		}
		b.WriteString("Encyclopedia entries are more reliable than news for locations, dates and base facts. Prefer them.\n")
	}

	if items := set[types.CategoryNews]; len(items) > 0 {
		b.WriteString("\n\n========== News search results ==========\n\n")
		for i, it := range items {
			fmt.Fprintf(&b, "[News %d]\nTitle: %s\nDescription: %s\nURL: %s\nPublished: %s\n---\n\n",
				i+1, it.Title, it.Description, it.URL, it.PublishedAt)
		}
	}

	if items := set[types.CategoryVideo]; len(items) > 0 {
		b.WriteString("\n\n========== Video search results (caution: may be low reliability) ==========\n\n")
		for i, it := range items {
			fmt.Fprintf(&b, "[Video %d]\nTitle: %s\nChannel: %s\nDescription: %s\nURL: %s\nPublished: %s\n---\n\n",
				i+1, it.Title, it.Outlet, it.Description, it.URL, it.PublishedAt)
		}
		b.WriteString("Video content is often personal opinion. Prefer encyclopedia and news sources.\n")
	}

	if items := set[types.CategoryFactCheck]; len(items) > 0 {
		b.WriteString("\n\n========== Fact-check registry results (high reliability) ==========\n\n")
		for i, it := range items {
			if i == maxRegistryEntries {
				break
			}
			publisher := it.Publisher
			if publisher == "" {
				publisher = "unknown reviewer"
			}
			claimant := it.Claimant
			if claimant == "" {
				claimant = "unknown claimant"
			}
			rating := it.Rating
			if rating == "" {
				rating = "no rating"
			}
			fmt.Fprintf(&b, "[Fact-check %d]\nClaim: %s\nClaimant: %s\nReviewer: %s\nRating: %s\nURL: %s\nReviewed: %s\n---\n\n",
				i+1, it.Title, claimant, publisher, rating, it.URL, it.PublishedAt)
		}
		b.WriteString("Registry entries aggregate verdicts from fact-checking organizations worldwide and are highly reliable.\n")
	}

	return b.String()
}
