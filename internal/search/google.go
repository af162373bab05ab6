package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// maxStartIndex is the last offset the provider will service.
const maxStartIndex = 100

// GoogleClient queries the Google Custom Search API one page at a time.
type GoogleClient struct {
	APIKey     string
	CX         string
	BaseURL    string
	HTTPClient *http.Client
}

func NewGoogleClient(apiKey, cx, baseURL string, timeout time.Duration) *GoogleClient {
	return &GoogleClient{
		APIKey:  apiKey,
		CX:      cx,
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type googleResponse struct {
	Items []struct {
		Title   string `json:"title"`
		Link    string `json:"link"`
		Snippet string `json:"snippet"`
		Pagemap struct {
			CseThumbnail []struct {
				Src string `json:"src"`
			} `json:"cse_thumbnail"`
		} `json:"pagemap"`
	} `json:"items"`
	Queries struct {
		NextPage []struct {
			StartIndex int `json:"startIndex"`
		} `json:"nextPage"`
	} `json:"queries"`
}

// FetchPage retrieves one page of results at the given start offset.
// A missing continuation cursor forces HasMore=false so the caller
// always terminates instead of looping back to offset 1.
func (c *GoogleClient) FetchPage(ctx context.Context, query string, start int) (*Page, error) {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	q := u.Query()
	q.Set("key", c.APIKey)
	q.Set("cx", c.CX)
	q.Set("q", query)
	q.Set("start", strconv.Itoa(start))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, "GET", u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d: %s", ErrUpstream, resp.StatusCode, string(body))
	}

	var payload googleResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	page := &Page{}
	if len(payload.Queries.NextPage) > 0 {
		page.NextStart = payload.Queries.NextPage[0].StartIndex
		page.HasMore = page.NextStart <= maxStartIndex
	}

	for _, item := range payload.Items {
		name, title := splitTitle(item.Title)
		r := Result{
			Name:    name,
			Title:   title,
			Link:    nullable(item.Link),
			Snippet: nullable(item.Snippet),
		}
		if len(item.Pagemap.CseThumbnail) > 0 {
			r.Image = nullable(item.Pagemap.CseThumbnail[0].Src)
		}
		page.Results = append(page.Results, r)
	}
	return page, nil
}
