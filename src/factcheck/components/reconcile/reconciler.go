// Package reconcile adjudicates between the primary and cross-verification
// judgments.
package reconcile

import (
	"fmt"
	"math"

	"github.com/factlens/factscore/src/factcheck/components/judgment"
	"github.com/factlens/factscore/src/factcheck/types"
)

// disagreementPenalty is subtracted from the lower confidence when the two
// providers disagree. The result is intentionally not clamped at zero; the
// API boundary flags negative values instead of emitting them silently.
const disagreementPenalty = 20

// Outcome is the adjudicated verdict plus the transparency record of how it
// was reached. On disagreement Verdict/Confidence/Summary/Details fully
// override the primary judgment's fields.
type Outcome struct {
	CrossVerification types.CrossVerification
	Verdict           types.Verdict
	Confidence        int
	Summary           string
	Details           string
}

// Reconcile adjudicates judgment a (required) against b (optional). When b is
// missing, failure carries the distinct reason.
func Reconcile(a *types.Judgment, b *types.Judgment, failure *judgment.Failure) Outcome {
	if b == nil {
		return Outcome{
			CrossVerification: types.CrossVerification{
				Used:            false,
				Reason:          failureReason(failure),
				FinalVerdict:    a.Verdict,
				FinalConfidence: a.Confidence,
			},
			Verdict:    a.Verdict,
			Confidence: a.Confidence,
			Summary:    a.Summary,
			Details:    a.Details,
		}
	}

	agreement := a.Verdict == b.Verdict
	cv := types.CrossVerification{
		Used:       true,
		Primary:    &types.ProviderVerdict{Verdict: a.Verdict, Confidence: a.Confidence},
		CrossCheck: &types.ProviderVerdict{Verdict: b.Verdict, Confidence: b.Confidence},
		Agreement:  agreement,
	}

	if agreement {
		cv.FinalVerdict = a.Verdict
		cv.FinalConfidence = roundMean(a.Confidence, b.Confidence)
		cv.Analysis = "Both AI providers reached the same verdict."
		return Outcome{
			CrossVerification: cv,
			Verdict:           a.Verdict,
			Confidence:        cv.FinalConfidence,
			Summary:           a.Summary,
			Details:           a.Details,
		}
	}

	cv.FinalVerdict = types.VerdictNeedsVerification
	cv.FinalConfidence = min(a.Confidence, b.Confidence) - disagreementPenalty
	cv.Analysis = fmt.Sprintf(
		"The primary provider ruled %q while the cross-check provider ruled %q. Additional verification is needed.",
		a.Verdict, b.Verdict,
	)

	return Outcome{
		CrossVerification: cv,
		Verdict:           types.VerdictNeedsVerification,
		Confidence:        cv.FinalConfidence,
		Summary:           fmt.Sprintf("[cross-verification mismatch] %s", a.Summary),
		Details: fmt.Sprintf(
			"AI providers disagree.\n\nPrimary verdict: %s (confidence %d%%)\n%s\n\n---\n\nCross-check verdict: %s (confidence %d%%)\n%s",
			a.Verdict, a.Confidence, a.Details,
			b.Verdict, b.Confidence, detailsOrPlaceholder(b.Details),
		),
	}
}

func failureReason(f *judgment.Failure) string {
	if f == nil {
		return "cross-verification unavailable"
	}
	switch f.Kind {
	case judgment.FailureDisabled:
		return "cross-verification provider disabled"
	case judgment.FailureTransport:
		return "cross-verification provider call failed"
	case judgment.FailureParse:
		return "cross-verification response could not be parsed"
	default:
		return "cross-verification unavailable"
	}
}

func detailsOrPlaceholder(details string) string {
	if details == "" {
		return "no details provided"
	}
	return details
}

func roundMean(a, b int) int {
	return int(math.Round(float64(a+b) / 2))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
