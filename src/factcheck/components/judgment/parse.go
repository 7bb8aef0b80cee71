package judgment

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/factlens/factscore/src/factcheck/types"
)

// Parse decodes a provider's raw text into a Judgment. Responses are often
// wrapped in markdown code fences or surrounded by prose; both are stripped
// before decoding. An unparsable response is an error: the provider counts as
// unavailable, never as a zero-confidence opinion.
func Parse(raw string) (*types.Judgment, error) {
	clean := stripFences(raw)

	var j types.Judgment
	if err := json.Unmarshal([]byte(clean), &j); err != nil {
		start := strings.Index(clean, "{")
		end := strings.LastIndex(clean, "}")
		if start < 0 || end <= start {
			return nil, fmt.Errorf("parse judgment: %w", err)
		}
		if err2 := json.Unmarshal([]byte(clean[start:end+1]), &j); err2 != nil {
			return nil, fmt.Errorf("parse judgment: %w", err2)
		}
	}

	if j.Verdict == "" {
		j.Verdict = types.VerdictUnverifiable
	}
	if j.Confidence < 0 {
		j.Confidence = 0
	}
	if j.Confidence > 100 {
		j.Confidence = 100
	}
	return &j, nil
}

func stripFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
