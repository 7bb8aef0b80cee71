package evidence

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/factlens/factscore/src/factcheck/types"
)

// EncyclopediaClient queries the encyclopedia search provider. Encyclopedia
// evidence outranks news for base facts (locations, founding dates) but the
// provider is optional: a failure means zero items, never an aborted request.
type EncyclopediaClient struct {
	rc           *resty.Client
	baseURL      string
	clientID     string
	clientSecret string
	display      int
}

func NewEncyclopediaClient(rc *resty.Client, baseURL, clientID, clientSecret string) *EncyclopediaClient {
	return &EncyclopediaClient{
		rc:           rc,
		baseURL:      baseURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		display:      10,
	}
}

func (c *EncyclopediaClient) Search(ctx context.Context, claim string) ([]types.EvidenceItem, error) {
	var body searchResponse
	resp, err := c.rc.R().
		SetContext(ctx).
		SetHeader("X-Naver-Client-Id", c.clientID).
		SetHeader("X-Naver-Client-Secret", c.clientSecret).
		SetQueryParams(map[string]string{
			"query":   claim,
			"display": fmt.Sprintf("%d", c.display),
		}).
		SetResult(&body).
		Get(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("encyclopedia search: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("encyclopedia search: status %d", resp.StatusCode())
	}

	items := make([]types.EvidenceItem, 0, len(body.Items))
	for _, it := range body.Items {
		items = append(items, types.EvidenceItem{
			Category:    types.CategoryEncyclopedia,
			Title:       StripMarkup(it.Title),
			Description: StripMarkup(it.Description),
			URL:         it.Link,
		})
	}
	return items, nil
}
