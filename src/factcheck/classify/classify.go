// Package classify holds the enumerated token tables used to normalize
// free-text labels coming back from the fact-check registry and the judgment
// providers. Matching is case-insensitive substring containment; tables carry
// both English and Korean tokens because the registry mixes review languages.
package classify

import (
	"strings"

	"github.com/factlens/factscore/src/factcheck/types"
)

var (
	trueTokens    = []string{"true", "correct", "사실"}
	falseTokens   = []string{"false", "incorrect", "거짓"}
	partialTokens = []string{"mixture", "부분"}
)

// Rating normalizes a registry textual rating into one of the four rating
// classes. Positive tokens win over negative ones only by table order, which
// matches how reviews are worded in practice ("half true" is not in any table
// and falls through to unknown).
func Rating(textual string) types.RatingClass {
	r := strings.ToLower(textual)
	for _, tok := range trueTokens {
		if strings.Contains(r, tok) {
			return types.RatingTrue
		}
	}
	for _, tok := range falseTokens {
		if strings.Contains(r, tok) {
			return types.RatingFalse
		}
	}
	for _, tok := range partialTokens {
		if strings.Contains(r, tok) {
			return types.RatingPartial
		}
	}
	return types.RatingUnknown
}

// Leaning is the political leaning of a cited source.
type Leaning string

const (
	LeaningProgressive  Leaning = "progressive"
	LeaningConservative Leaning = "conservative"
	LeaningNeutral      Leaning = "neutral"
	LeaningUnknown      Leaning = "unknown"
)

// SourceLeaning classifies the free-text bias label a judgment attaches to a
// cited source. An empty label counts as neutral, mirroring how the scorer
// treats uncommitted sources.
func SourceLeaning(bias string) Leaning {
	b := strings.TrimSpace(bias)
	if b == "" || b == "중립" || strings.EqualFold(b, "neutral") {
		return LeaningNeutral
	}
	if strings.Contains(b, "진보") || strings.Contains(strings.ToLower(b), "progressive") {
		return LeaningProgressive
	}
	if strings.Contains(b, "보수") || strings.Contains(strings.ToLower(b), "conservative") {
		return LeaningConservative
	}
	return LeaningUnknown
}

// majorOutlets is the fixed list of major national outlets used by the news
// quality component.
var majorOutlets = []string{"연합뉴스", "KBS", "MBC", "SBS", "JTBC"}

// IsMajorOutlet reports whether an outlet name references one of the major
// national outlets.
func IsMajorOutlet(outlet string) bool {
	for _, m := range majorOutlets {
		if strings.Contains(outlet, m) {
			return true
		}
	}
	return false
}
