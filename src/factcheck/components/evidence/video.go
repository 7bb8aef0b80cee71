package evidence

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/factlens/factscore/src/factcheck/types"
)

// VideoClient queries the video search provider and, when a minimum audience
// threshold is configured, filters results by channel audience size through a
// secondary channel-detail lookup. Channel IDs are deduplicated before the
// lookup to keep the call count down.
type VideoClient struct {
	rc          *resty.Client
	searchURL   string
	channelsURL string
	apiKey      string
	minAudience int64
	maxResults  int
}

func NewVideoClient(rc *resty.Client, searchURL, channelsURL, apiKey string, minAudience int64) *VideoClient {
	return &VideoClient{
		rc:          rc,
		searchURL:   searchURL,
		channelsURL: channelsURL,
		apiKey:      apiKey,
		minAudience: minAudience,
		maxResults:  10,
	}
}

type videoSearchItem struct {
	ID struct {
		VideoID   string `json:"videoId"`
		ChannelID string `json:"channelId"`
	} `json:"id"`
	Snippet struct {
		Title        string `json:"title"`
		Description  string `json:"description"`
		ChannelID    string `json:"channelId"`
		ChannelTitle string `json:"channelTitle"`
		PublishedAt  string `json:"publishedAt"`
	} `json:"snippet"`
}

type videoSearchResponse struct {
	Items []videoSearchItem `json:"items"`
}

type channelListResponse struct {
	Items []struct {
		ID         string `json:"id"`
		Statistics struct {
			SubscriberCount string `json:"subscriberCount"`
		} `json:"statistics"`
	} `json:"items"`
}

func (c *VideoClient) Search(ctx context.Context, claim string) ([]types.EvidenceItem, error) {
	var body videoSearchResponse
	resp, err := c.rc.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"part":       "snippet",
			"q":          claim,
			"type":       "video,channel",
			"maxResults": fmt.Sprintf("%d", c.maxResults),
			"key":        c.apiKey,
		}).
		SetResult(&body).
		Get(c.searchURL)
	if err != nil {
		return nil, fmt.Errorf("video search: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("video search: status %d", resp.StatusCode())
	}

	items := make([]types.EvidenceItem, 0, len(body.Items))
	for _, it := range body.Items {
		channelID := it.Snippet.ChannelID
		if channelID == "" {
			channelID = it.ID.ChannelID
		}
		items = append(items, types.EvidenceItem{
			Category:    types.CategoryVideo,
			Title:       StripMarkup(it.Snippet.Title),
			Description: StripMarkup(it.Snippet.Description),
			URL:         watchURL(it.ID.VideoID, it.ID.ChannelID),
			PublishedAt: it.Snippet.PublishedAt,
			Outlet:      it.Snippet.ChannelTitle,
			ChannelID:   channelID,
		})
	}

	if c.minAudience > 0 {
		return c.filterByAudience(ctx, items)
	}
	return items, nil
}

func watchURL(videoID, channelID string) string {
	switch {
	case videoID != "":
		return "https://www.youtube.com/watch?v=" + videoID
	case channelID != "":
		return "https://www.youtube.com/channel/" + channelID
	default:
		return ""
	}
}

// filterByAudience drops items whose channel audience is below the configured
// threshold. Channels that cannot be resolved are kept rather than dropped so
// a lookup outage never silently erases the whole category.
func (c *VideoClient) filterByAudience(ctx context.Context, items []types.EvidenceItem) ([]types.EvidenceItem, error) {
	seen := make(map[string]bool)
	ids := make([]string, 0, len(items))
	for _, it := range items {
		if it.ChannelID == "" || seen[it.ChannelID] {
			continue
		}
		seen[it.ChannelID] = true
		ids = append(ids, it.ChannelID)
	}
	if len(ids) == 0 {
		return items, nil
	}

	audience, err := c.channelAudience(ctx, ids)
	if err != nil {
		return items, nil
	}

	kept := items[:0]
	for _, it := range items {
		size, ok := audience[it.ChannelID]
		if ok && size < c.minAudience {
			continue
		}
		kept = append(kept, it)
	}
	return kept, nil
}

func (c *VideoClient) channelAudience(ctx context.Context, ids []string) (map[string]int64, error) {
	var body channelListResponse
	resp, err := c.rc.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"part": "statistics",
			"id":   strings.Join(ids, ","),
			"key":  c.apiKey,
		}).
		SetResult(&body).
		Get(c.channelsURL)
	if err != nil {
		return nil, fmt.Errorf("channel lookup: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("channel lookup: status %d", resp.StatusCode())
	}

	out := make(map[string]int64, len(body.Items))
	for _, it := range body.Items {
		count, err := strconv.ParseInt(it.Statistics.SubscriberCount, 10, 64)
		if err != nil {
			continue
		}
		out[it.ID] = count
	}
	return out, nil
}
