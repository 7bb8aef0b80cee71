// Package score computes the hierarchical trust score: four 0-100 category
// sub-scores combined through a fixed two-tier weighted formula. Scoring is a
// pure function of the evidence set and the judgments; identical inputs always
// yield the identical breakdown.
package score

import (
	"math"

	"github.com/factlens/factscore/src/factcheck/classify"
	"github.com/factlens/factscore/src/factcheck/types"
)

// Tier and component weights. Objective evidence (public data + registry)
// carries 70% of the total so AI opinion alone can never dominate the score.
const (
	objectiveTierWeight  = 0.7
	subjectiveTierWeight = 0.3

	publicDataWeight = 0.4
	factCheckWeight  = 0.3
	newsWeight       = 0.5
	aiWeight         = 0.5
)

// News scores cross-coverage of the claim in the news: a volume component
// saturating at 30 (10+ items), a quality component up to 40 for the share of
// cited sources from major outlets, and a balance component of 30 when the
// cited sources span both political leanings or include a neutral one, else 15.
func News(newsCount int, sources []types.Source) int {
	if newsCount == 0 {
		return 0
	}

	volume := math.Min(30, float64(newsCount)/10*30)

	quality := 0.0
	if len(sources) > 0 {
		major := 0
		for _, s := range sources {
			if classify.IsMajorOutlet(s.Outlet) {
				major++
			}
		}
		quality = float64(major) / float64(len(sources)) * 40
	}

	var hasProgressive, hasConservative, hasNeutral bool
	for _, s := range sources {
		switch classify.SourceLeaning(s.Bias) {
		case classify.LeaningProgressive:
			hasProgressive = true
		case classify.LeaningConservative:
			hasConservative = true
		case classify.LeaningNeutral:
			hasNeutral = true
		}
	}
	balance := 15.0
	if (hasProgressive && hasConservative) || hasNeutral {
		balance = 30.0
	}

	return round(volume + quality + balance)
}

// PublicData scores public-data confirmation, currently backed by
// encyclopedia evidence: an existence component saturating at 50 (5+ items)
// plus a verdict bonus.
func PublicData(encycCount int, verdict types.Verdict) int {
	if encycCount == 0 {
		return 0
	}

	existence := math.Min(50, float64(encycCount)/5*50)

	bonus := 0.0
	switch verdict {
	case types.VerdictFact:
		bonus = 50
	case types.VerdictPartialFact:
		bonus = 25
	}

	return round(existence + bonus)
}

// FactCheck scores registry alignment: base 50 for registry presence, plus an
// alignment bonus comparing the rated-claim counts with the judgment verdict.
func FactCheck(items []types.EvidenceItem, verdict types.Verdict) int {
	if len(items) == 0 {
		return 0
	}

	var trueCount, falseCount, partialCount int
	for _, it := range items {
		switch it.RatingClass {
		case types.RatingTrue:
			trueCount++
		case types.RatingFalse:
			falseCount++
		case types.RatingPartial:
			partialCount++
		}
	}

	score := 50.0
	switch {
	case verdict == types.VerdictFact && trueCount > falseCount:
		score += 50
	case verdict == types.VerdictFalse && falseCount > trueCount:
		score += 50
	case verdict == types.VerdictPartialFact && partialCount > 0:
		score += 40
	default:
		score += 20
	}

	return round(score)
}

// AI scores the providers' combined confidence: the mean of the two
// confidences (the primary's alone when the cross-check did not run),
// discounted to 70% on disagreement.
func AI(primaryConfidence int, crossConfidence *int, agreement bool) int {
	cross := primaryConfidence
	if crossConfidence != nil {
		cross = *crossConfidence
	}
	mean := float64(primaryConfidence+cross) / 2

	factor := 1.0
	if !agreement {
		factor = 0.7
	}
	return round(mean * factor)
}

// Compute combines the four sub-scores through the fixed two-tier formula.
// The judgment argument is the primary provider's raw judgment; scoring never
// uses the overridden disagreement verdict.
func Compute(set types.EvidenceSet, primary *types.Judgment, crossConfidence *int, agreement bool) types.FactScore {
	newsScore := News(set.Count(types.CategoryNews), primary.Sources)
	publicDataScore := PublicData(set.Count(types.CategoryEncyclopedia), primary.Verdict)
	factCheckScore := FactCheck(set[types.CategoryFactCheck], primary.Verdict)
	aiScore := AI(primary.Confidence, crossConfidence, agreement)

	objective := (float64(publicDataScore)*publicDataWeight + float64(factCheckScore)*factCheckWeight) * objectiveTierWeight
	subjective := (float64(newsScore)*newsWeight + float64(aiScore)*aiWeight) * subjectiveTierWeight

	var fs types.FactScore
	fs.Total = round(objective + subjective)
	fs.Breakdown.Objective = types.TierScore{
		Score:  round(objective),
		Weight: 70,
		Components: map[string]types.ComponentScore{
			"publicData": {Score: publicDataScore, Weight: 40},
			"factCheck":  {Score: factCheckScore, Weight: 30},
		},
	}
	fs.Breakdown.Subjective = types.TierScore{
		Score:  round(subjective),
		Weight: 30,
		Components: map[string]types.ComponentScore{
			"news": {Score: newsScore, Weight: 50},
			"ai":   {Score: aiScore, Weight: 50},
		},
	}
	return fs
}

func round(f float64) int {
	return int(math.Round(f))
}
