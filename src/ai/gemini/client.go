package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/factlens/factscore/src/ai/core"
	"github.com/factlens/factscore/src/webclient"
)

func init() {
	core.RegisterProvider("gemini", newClient)
}

type client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	defaults   core.Options
}

func newClient(cfg core.FactoryConfig) (core.Client, error) {
	if cfg.GeminiKey == "" {
		return nil, fmt.Errorf("gemini: API key not configured")
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com/v1beta"
	}
	return &client{
		apiKey:     cfg.GeminiKey,
		baseURL:    baseURL,
		httpClient: webclient.NewDefault(120 * time.Second),
		defaults: core.Options{
			Model:           valueOrDefault(cfg.Model, "gemini-2.5-flash"),
			Temperature:     orFloat(cfg.Temperature, 0.5),
			MaxOutputTokens: orInt(cfg.MaxOutputTokens, 8192),
		},
	}, nil
}

// Complete folds the system instruction into the single user part; the
// generateContent endpoint has no separate system role on this API surface.
func (c *client) Complete(ctx context.Context, system, user string, opts core.Options) (string, error) {
	merged := c.merge(opts)
	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]string{
					{"text": system + "\n\n" + user},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature":     merged.Temperature,
			"maxOutputTokens": merged.MaxOutputTokens,
		},
	}
	b, _ := json.Marshal(reqBody)
	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, merged.Model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini API error: %s", string(body))
	}
	var result struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from Gemini")
	}
	return result.Candidates[0].Content.Parts[0].Text, nil
}

func (c *client) merge(opts core.Options) core.Options {
	out := c.defaults
	if opts.Model != "" {
		out.Model = opts.Model
	}
	if opts.Temperature != 0 {
		out.Temperature = opts.Temperature
	}
	if opts.MaxOutputTokens != 0 {
		out.MaxOutputTokens = opts.MaxOutputTokens
	}
	return out
}

func valueOrDefault(val, def string) string {
	if val != "" {
		return val
	}
	return def
}

func orInt(v, d int) int {
	if v != 0 {
		return v
	}
	return d
}

func orFloat(v, d float64) float64 {
	if v != 0 {
		return v
	}
	return d
}
