package evidence

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/factlens/factscore/src/factcheck/types"
)

// NewsClient queries the news search provider. News is the primary evidence
// provider: callers must treat its failure as fatal to the request.
type NewsClient struct {
	rc           *resty.Client
	baseURL      string
	clientID     string
	clientSecret string
	display      int
}

func NewNewsClient(rc *resty.Client, baseURL, clientID, clientSecret string) *NewsClient {
	return &NewsClient{
		rc:           rc,
		baseURL:      baseURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		display:      20,
	}
}

type searchItem struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Link         string `json:"link"`
	OriginalLink string `json:"originallink"`
	PubDate      string `json:"pubDate"`
}

type searchResponse struct {
	Total int          `json:"total"`
	Items []searchItem `json:"items"`
}

func (c *NewsClient) Search(ctx context.Context, claim string) ([]types.EvidenceItem, error) {
	var body searchResponse
	resp, err := c.rc.R().
		SetContext(ctx).
		SetHeader("X-Naver-Client-Id", c.clientID).
		SetHeader("X-Naver-Client-Secret", c.clientSecret).
		SetQueryParams(map[string]string{
			"query":   claim,
			"display": fmt.Sprintf("%d", c.display),
			"sort":    "date",
		}).
		SetResult(&body).
		Get(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("news search: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("news search: status %d", resp.StatusCode())
	}

	items := make([]types.EvidenceItem, 0, len(body.Items))
	for _, it := range body.Items {
		url := it.OriginalLink
		if url == "" {
			url = it.Link
		}
		items = append(items, types.EvidenceItem{
			Category:    types.CategoryNews,
			Title:       StripMarkup(it.Title),
			Description: StripMarkup(it.Description),
			URL:         url,
			PublishedAt: it.PubDate,
		})
	}
	return items, nil
}
