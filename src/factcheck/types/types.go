package types

// Evidence categories
type Category string

const (
	CategoryNews         Category = "news"
	CategoryEncyclopedia Category = "encyclopedia"
	CategoryFactCheck    Category = "fact_check"
	CategoryVideo        Category = "video"
)

// Verdicts
type Verdict string

const (
	VerdictFact              Verdict = "fact"
	VerdictFalse             Verdict = "false"
	VerdictPartialFact       Verdict = "partial_fact"
	VerdictUnverifiable      Verdict = "unverifiable"
	VerdictNeedsVerification Verdict = "needs_verification"
)

// Normalized fact-check registry ratings
type RatingClass string

const (
	RatingTrue    RatingClass = "true"
	RatingFalse   RatingClass = "false"
	RatingPartial RatingClass = "partial"
	RatingUnknown RatingClass = "unknown"
)

// EvidenceItem is one normalized unit of evidence from a provider. Titles and
// descriptions are markup-free by the time an item is constructed.
type EvidenceItem struct {
	Category    Category    `json:"category"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	URL         string      `json:"url"`
	PublishedAt string      `json:"publishedAt,omitempty"`
	Outlet      string      `json:"outlet,omitempty"`
	ChannelID   string      `json:"channelId,omitempty"`
	Claimant    string      `json:"claimant,omitempty"`
	Publisher   string      `json:"publisher,omitempty"`
	Rating      string      `json:"rating,omitempty"`
	RatingClass RatingClass `json:"ratingClass,omitempty"`
}

// EvidenceSet maps a category to its ordered evidence items for one request.
// A missing or empty category means no evidence of that kind, not an error.
type EvidenceSet map[Category][]EvidenceItem

func (s EvidenceSet) Count(c Category) int { return len(s[c]) }

// Degradation records why an optional provider contributed no evidence.
type Degradation struct {
	Category Category `json:"category"`
	Reason   string   `json:"reason"`
}

// Source is a judgment-cited source record.
type Source struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Outlet      string `json:"outlet,omitempty"`
	Date        string `json:"date,omitempty"`
	Type        string `json:"type,omitempty"`
	Bias        string `json:"bias,omitempty"`
	Credibility string `json:"credibility,omitempty"`
	Reliability int    `json:"reliability,omitempty"`
}

type TimelineEntry struct {
	Date   string `json:"date"`
	Event  string `json:"event"`
	Source string `json:"source,omitempty"`
}

type MisinformationSource struct {
	Platform    string `json:"platform"`
	Description string `json:"description"`
}

type CredibilityScore struct {
	Fact           int `json:"fact"`
	Misinformation int `json:"misinformation"`
	PartialTruth   int `json:"partialTruth"`
	Unverified     int `json:"unverified"`
}

// VideoAnalysis is the judgment's channel-landscape breakdown, present only
// when video evidence was part of the context. Passed through unscored.
type VideoAnalysis struct {
	TotalChannels     int      `json:"totalChannels"`
	MainstreamMedia   int      `json:"mainstreamMedia"`
	PersonalChannels  int      `json:"personalChannels"`
	ExtremeChannels   int      `json:"extremeChannels"`
	DominantNarrative string   `json:"dominantNarrative,omitempty"`
	Warnings          []string `json:"warnings,omitempty"`
}

// Judgment is one AI provider's structured opinion over the claim + evidence.
type Judgment struct {
	Verdict               Verdict                `json:"verdict"`
	Confidence            int                    `json:"confidence"`
	Summary               string                 `json:"summary"`
	Details               string                 `json:"details"`
	PoliticalBias         int                    `json:"politicalBias,omitempty"`
	BiasExplanation       string                 `json:"biasExplanation,omitempty"`
	CredibilityScore      CredibilityScore       `json:"credibilityScore"`
	Sources               []Source               `json:"sources"`
	Timeline              []TimelineEntry        `json:"timeline,omitempty"`
	MisinformationSources []MisinformationSource `json:"misinformationSources,omitempty"`
	VideoAnalysis         *VideoAnalysis         `json:"videoAnalysis,omitempty"`
	Reasoning             string                 `json:"reasoning,omitempty"`
}

// ProviderVerdict is the raw verdict/confidence pair of one judgment provider,
// echoed for transparency when cross-verification ran.
type ProviderVerdict struct {
	Verdict    Verdict `json:"verdict"`
	Confidence int     `json:"confidence"`
}

// CrossVerification describes how the two judgments were reconciled. When the
// secondary provider did not run, Used is false and Reason says why.
type CrossVerification struct {
	Used            bool             `json:"used"`
	Reason          string           `json:"reason,omitempty"`
	Primary         *ProviderVerdict `json:"primary,omitempty"`
	CrossCheck      *ProviderVerdict `json:"crossCheck,omitempty"`
	Agreement       bool             `json:"agreement"`
	FinalVerdict    Verdict          `json:"finalVerdict,omitempty"`
	FinalConfidence int              `json:"finalConfidence"`
	Analysis        string           `json:"analysis,omitempty"`
}

type ComponentScore struct {
	Score  int `json:"score"`
	Weight int `json:"weight"`
}

type TierScore struct {
	Score      int                       `json:"score"`
	Weight     int                       `json:"weight"`
	Components map[string]ComponentScore `json:"components"`
}

// FactScore is the hierarchical trust score: four 0-100 component scores
// combined through the fixed two-tier weighted formula.
type FactScore struct {
	Total     int `json:"total"`
	Breakdown struct {
		Objective  TierScore `json:"objective"`
		Subjective TierScore `json:"subjective"`
	} `json:"breakdown"`
}

// Result is the full adjudicated response for one claim.
type Result struct {
	Verdict               Verdict                `json:"verdict"`
	Confidence            int                    `json:"confidence"`
	ConfidenceFloored     bool                   `json:"confidenceFloored,omitempty"`
	Summary               string                 `json:"summary"`
	Details               string                 `json:"details"`
	PoliticalBias         int                    `json:"politicalBias,omitempty"`
	BiasExplanation       string                 `json:"biasExplanation,omitempty"`
	CredibilityScore      CredibilityScore       `json:"credibilityScore"`
	Sources               []Source               `json:"sources"`
	Timeline              []TimelineEntry        `json:"timeline,omitempty"`
	MisinformationSources []MisinformationSource `json:"misinformationSources,omitempty"`
	VideoAnalysis         *VideoAnalysis         `json:"videoAnalysis,omitempty"`
	Reasoning             string                 `json:"reasoning,omitempty"`
	CrossVerification     CrossVerification      `json:"crossVerification"`
	FactScore             FactScore              `json:"factScore"`
	Degradations          []Degradation          `json:"degradations,omitempty"`
}
