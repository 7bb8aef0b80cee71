package evidence

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/factlens/factscore/src/factcheck/classify"
	"github.com/factlens/factscore/src/factcheck/types"
)

// RegistryClient queries the fact-check registry. Only the first review per
// claim record is used; its textual rating is normalized through the
// classifier token table at collection time.
type RegistryClient struct {
	rc           *resty.Client
	baseURL      string
	apiKey       string
	languageCode string
}

func NewRegistryClient(rc *resty.Client, baseURL, apiKey string) *RegistryClient {
	return &RegistryClient{rc: rc, baseURL: baseURL, apiKey: apiKey, languageCode: "ko"}
}

type registryReview struct {
	Publisher struct {
		Name string `json:"name"`
	} `json:"publisher"`
	URL           string `json:"url"`
	TextualRating string `json:"textualRating"`
	ReviewDate    string `json:"reviewDate"`
}

type registryClaim struct {
	Text        string           `json:"text"`
	Claimant    string           `json:"claimant"`
	ClaimDate   string           `json:"claimDate"`
	ClaimReview []registryReview `json:"claimReview"`
}

type registryResponse struct {
	Claims []registryClaim `json:"claims"`
}

func (c *RegistryClient) Search(ctx context.Context, claim string) ([]types.EvidenceItem, error) {
	var body registryResponse
	resp, err := c.rc.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"query":        claim,
			"languageCode": c.languageCode,
			"key":          c.apiKey,
		}).
		SetResult(&body).
		Get(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("fact-check registry: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fact-check registry: status %d", resp.StatusCode())
	}

	items := make([]types.EvidenceItem, 0, len(body.Claims))
	for _, cl := range body.Claims {
		item := types.EvidenceItem{
			Category:    types.CategoryFactCheck,
			Title:       StripMarkup(cl.Text),
			Claimant:    cl.Claimant,
			PublishedAt: cl.ClaimDate,
			RatingClass: types.RatingUnknown,
		}
		if len(cl.ClaimReview) > 0 {
			review := cl.ClaimReview[0]
			item.Publisher = review.Publisher.Name
			item.Rating = review.TextualRating
			item.RatingClass = classify.Rating(review.TextualRating)
			item.URL = review.URL
			if review.ReviewDate != "" {
				item.PublishedAt = review.ReviewDate
			}
		}
		items = append(items, item)
	}
	return items, nil
}
