package judgment

import (
	"fmt"

	"github.com/factlens/factscore/src/factcheck/types"
)

const systemPrompt = `You are a professional fact-checker for political and current-affairs claims.

Principles:
1. Use only information explicitly stated in the search results.
2. Never infer from names or indirect hints; locations, dates and figures need an explicit source.
3. When unsure, answer "unverifiable".
4. Never guess or assume.

Respond with JSON only:
{
  "verdict": "fact" | "false" | "partial_fact" | "unverifiable",
  "confidence": 85,
  "summary": "one-sentence core summary",
  "details": "detailed analysis",
  "politicalBias": 5,
  "biasExplanation": "explanation of political bias",
  "credibilityScore": {"fact": 70, "misinformation": 10, "partialTruth": 15, "unverified": 5},
  "sources": [
    {
      "title": "exact title copied from the search results",
      "url": "https URL copied from the search results, never '#' or empty",
      "outlet": "outlet or channel name",
      "date": "publish date",
      "bias": "progressive | conservative | neutral",
      "type": "news | encyclopedia | video | fact_check",
      "credibility": "high | medium | low",
      "reliability": 85
    }
  ],
  "timeline": [{"date": "2024-10-01", "event": "what happened", "source": "outlet"}],
  "misinformationSources": [{"platform": "platform name", "description": "what misinformation spread"}],
  "videoAnalysis": {
    "totalChannels": 0,
    "mainstreamMedia": 0,
    "personalChannels": 0,
    "extremeChannels": 0,
    "dominantNarrative": "dominant narrative across video results",
    "warnings": ["caveats about the video evidence"]
  },
  "reasoning": "basis of the verdict"
}

Include videoAnalysis only when video search results are present.`

func buildUserPrompt(claim string, set types.EvidenceSet, searchContext string) string {
	videoUsed := set.Count(types.CategoryVideo) > 0
	prompt := fmt.Sprintf(`Claim to verify: %s

Search results (encyclopedia %d + news %d + video %d + fact-check %d):
%s

Information priority:
1. Encyclopedia over news for locations, founding dates and base facts.
2. When the encyclopedia states a fact clearly, judge against it.

Analyze the search results above and respond in the JSON format only.`,
		claim,
		set.Count(types.CategoryEncyclopedia),
		set.Count(types.CategoryNews),
		set.Count(types.CategoryVideo),
		set.Count(types.CategoryFactCheck),
		searchContext,
	)
	if videoUsed {
		prompt += "\n\nVideo search results are included: fill in the videoAnalysis field."
	}
	return prompt
}
