// Package pipeline orchestrates one fact-check request: evidence collection,
// two structured judgments, reconciliation and trust scoring. Every entity it
// produces is request-scoped; nothing outlives the response.
package pipeline

import (
	"context"

	"go.uber.org/zap"

	"github.com/factlens/factscore/src/factcheck/components/evidence"
	"github.com/factlens/factscore/src/factcheck/components/judgment"
	"github.com/factlens/factscore/src/factcheck/components/reconcile"
	"github.com/factlens/factscore/src/factcheck/components/score"
	"github.com/factlens/factscore/src/factcheck/types"
)

type Pipeline struct {
	collector *evidence.Collector
	requester *judgment.Requester
	log       *zap.SugaredLogger
}

func New(collector *evidence.Collector, requester *judgment.Requester, log *zap.SugaredLogger) *Pipeline {
	return &Pipeline{collector: collector, requester: requester, log: log}
}

// Run executes the full pipeline for one claim. The returned error is fatal
// (primary evidence provider or primary judgment provider failed); every
// other degradation is folded into the result.
func (p *Pipeline) Run(ctx context.Context, claim string, includeVideo bool) (*types.Result, error) {
	set, degraded, err := p.collector.Collect(ctx, claim, includeVideo)
	if err != nil {
		return nil, err
	}

	// Registry records alone cannot anchor a judgment; only searchable
	// evidence (news, encyclopedia, video) counts toward the short-circuit.
	if set.Count(types.CategoryNews)+set.Count(types.CategoryEncyclopedia)+set.Count(types.CategoryVideo) == 0 {
		p.log.Infow("no evidence found, short-circuiting", "claim", claim)
		return unverifiableResult(degraded), nil
	}

	primary, crossCheck, failure, err := p.requester.Request(ctx, claim, set)
	if err != nil {
		return nil, err
	}

	outcome := reconcile.Reconcile(primary, crossCheck, failure)

	// With the cross-check absent the AI sub-score treats the missing
	// confidence as equal to the primary's, with no disagreement discount.
	var crossConfidence *int
	agreementForScore := true
	if crossCheck != nil {
		crossConfidence = &crossCheck.Confidence
		agreementForScore = outcome.CrossVerification.Agreement
	}
	factScore := score.Compute(set, primary, crossConfidence, agreementForScore)

	res := &types.Result{
		Verdict:               outcome.Verdict,
		Confidence:            outcome.Confidence,
		Summary:               outcome.Summary,
		Details:               outcome.Details,
		PoliticalBias:         primary.PoliticalBias,
		BiasExplanation:       primary.BiasExplanation,
		CredibilityScore:      primary.CredibilityScore,
		Sources:               primary.Sources,
		Timeline:              primary.Timeline,
		MisinformationSources: primary.MisinformationSources,
		VideoAnalysis:         primary.VideoAnalysis,
		Reasoning:             primary.Reasoning,
		CrossVerification:     outcome.CrossVerification,
		FactScore:             factScore,
		Degradations:          degraded,
	}
	if res.Sources == nil {
		res.Sources = []types.Source{}
	}

	// The disagreement penalty can push confidence below zero. The raw value
	// stays visible in crossVerification; the top-level confidence is floored
	// and flagged at the boundary.
	if res.Confidence < 0 {
		res.Confidence = 0
		res.ConfidenceFloored = true
	}

	return res, nil
}

// unverifiableResult is the fixed short-circuit payload for a fully empty
// evidence set. Judgment providers are never called in this case.
func unverifiableResult(degraded []types.Degradation) *types.Result {
	res := &types.Result{
		Verdict:         types.VerdictUnverifiable,
		Confidence:      0,
		Summary:         "No related coverage could be found.",
		Details:         "There are no search results, so the claim cannot be fact-checked.",
		PoliticalBias:   5,
		BiasExplanation: "Not analyzable: insufficient data.",
		CredibilityScore: types.CredibilityScore{
			Unverified: 100,
		},
		Sources:   []types.Source{},
		Reasoning: "no search results",
		CrossVerification: types.CrossVerification{
			Used:         false,
			Reason:       "no search results",
			FinalVerdict: types.VerdictUnverifiable,
		},
		Degradations: degraded,
	}
	res.FactScore.Breakdown.Objective = types.TierScore{
		Weight: 70,
		Components: map[string]types.ComponentScore{
			"publicData": {Weight: 40},
			"factCheck":  {Weight: 30},
		},
	}
	res.FactScore.Breakdown.Subjective = types.TierScore{
		Weight: 30,
		Components: map[string]types.ComponentScore{
			"news": {Weight: 50},
			"ai":   {Weight: 50},
		},
	}
	return res
}
