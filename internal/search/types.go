package search

import (
	"context"
	"errors"
	"strings"
)

// ErrUpstream marks a non-success response from the search provider.
var ErrUpstream = errors.New("search provider error")

// Result is one normalized search hit. Every field is optional and
// serialized as an explicit null when absent.
type Result struct {
	Name    *string `json:"name"`
	Title   *string `json:"title"`
	Link    *string `json:"link"`
	Snippet *string `json:"snippet"`
	Image   *string `json:"image"`
}

// Page is one provider page plus its continuation cursor. NextStart is
// the offset reported by the provider for the next call; HasMore is
// false whenever no cursor was reported or the cursor is past the
// provider's pagination ceiling.
type Page struct {
	Results   []Result `json:"results"`
	NextStart int      `json:"nextStart"`
	HasMore   bool     `json:"hasMore"`
}

// Provider fetches a single page of results for a query at a 1-based
// start offset.
type Provider interface {
	FetchPage(ctx context.Context, query string, start int) (*Page, error)
}

// PageCache is an optional read-through cache for provider pages.
// Implementations must treat all failures as misses.
type PageCache interface {
	Get(ctx context.Context, query string, start int) (*Page, bool)
	Set(ctx context.Context, query string, start int, page *Page)
}

// splitTitle derives the name/title pair from a provider title by
// splitting on " - ": first segment becomes the name, the remaining
// segments rejoined become the title.
func splitTitle(raw string) (name, title *string) {
	parts := strings.Split(raw, " - ")
	name = nullable(parts[0])
	if len(parts) > 1 {
		title = nullable(strings.Join(parts[1:], " - "))
	}
	return name, title
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
