package reconcile

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/factlens/factscore/src/factcheck/components/judgment"
	"github.com/factlens/factscore/src/factcheck/types"
)

func TestReconcileAgreement(t *testing.T) {
	a := &types.Judgment{Verdict: types.VerdictFact, Confidence: 80, Summary: "s", Details: "d"}
	b := &types.Judgment{Verdict: types.VerdictFact, Confidence: 90}

	out := Reconcile(a, b, nil)

	assert.True(t, out.CrossVerification.Used)
	assert.True(t, out.CrossVerification.Agreement)
	assert.Equal(t, types.VerdictFact, out.Verdict)
	assert.Equal(t, 85, out.Confidence)
	assert.Equal(t, types.VerdictFact, out.CrossVerification.FinalVerdict)
	assert.Equal(t, 85, out.CrossVerification.FinalConfidence)
	// primary's narrative is kept untouched
	assert.Equal(t, "s", out.Summary)
	assert.Equal(t, "d", out.Details)

	require.NotNil(t, out.CrossVerification.Primary)
	require.NotNil(t, out.CrossVerification.CrossCheck)
	assert.Equal(t, 80, out.CrossVerification.Primary.Confidence)
	assert.Equal(t, 90, out.CrossVerification.CrossCheck.Confidence)
}

func TestReconcileDisagreement(t *testing.T) {
	a := &types.Judgment{Verdict: types.VerdictFact, Confidence: 80, Summary: "s", Details: "da"}
	b := &types.Judgment{Verdict: types.VerdictFalse, Confidence: 60, Details: "db"}

	out := Reconcile(a, b, nil)

	assert.False(t, out.CrossVerification.Agreement)
	assert.Equal(t, types.VerdictNeedsVerification, out.Verdict)
	assert.Equal(t, 40, out.Confidence) // min(80,60) - 20
	assert.Equal(t, types.VerdictNeedsVerification, out.CrossVerification.FinalVerdict)
	// summary and details are fully overridden
	assert.Contains(t, out.Summary, "cross-verification mismatch")
	assert.Contains(t, out.Details, "da")
	assert.Contains(t, out.Details, "db")
	assert.Contains(t, out.Details, "confidence 80")
	assert.Contains(t, out.Details, "confidence 60")
}

func TestReconcileDisagreementCanGoNegative(t *testing.T) {
	a := &types.Judgment{Verdict: types.VerdictFact, Confidence: 10}
	b := &types.Judgment{Verdict: types.VerdictFalse, Confidence: 5}

	out := Reconcile(a, b, nil)
	assert.Equal(t, -15, out.Confidence)
	assert.Equal(t, -15, out.CrossVerification.FinalConfidence)
}

func TestReconcileWithoutCrossCheck(t *testing.T) {
	a := &types.Judgment{Verdict: types.VerdictPartialFact, Confidence: 65, Summary: "s", Details: "d"}

	tests := []struct {
		failure *judgment.Failure
		reason  string
	}{
		{&judgment.Failure{Kind: judgment.FailureDisabled}, "disabled"},
		{&judgment.Failure{Kind: judgment.FailureTransport, Err: fmt.Errorf("boom")}, "call failed"},
		{&judgment.Failure{Kind: judgment.FailureParse, Err: fmt.Errorf("bad json")}, "parsed"},
	}
	for _, tt := range tests {
		out := Reconcile(a, nil, tt.failure)
		assert.False(t, out.CrossVerification.Used)
		assert.Contains(t, out.CrossVerification.Reason, tt.reason)
		assert.Equal(t, types.VerdictPartialFact, out.Verdict)
		assert.Equal(t, 65, out.Confidence)
		assert.Nil(t, out.CrossVerification.Primary)
	}
}
