package search

import (
	"context"

	"github.com/sirupsen/logrus"
)

const maxPagesCap = 10

// Aggregator drives the sequential page-fetch loop against the
// provider and concatenates the normalized results. Page fetches are
// never issued in parallel: each offset depends on the cursor reported
// by the previous page.
type Aggregator struct {
	provider Provider
	cache    PageCache
	log      *logrus.Logger
}

// NewAggregator builds an aggregator. cache may be nil to disable the
// read-through page cache.
func NewAggregator(provider Provider, cache PageCache, log *logrus.Logger) *Aggregator {
	return &Aggregator{provider: provider, cache: cache, log: log}
}

// ClampPages normalizes the caller-supplied page count to [1,10].
func ClampPages(pages int) int {
	if pages < 1 {
		return 1
	}
	if pages > maxPagesCap {
		return maxPagesCap
	}
	return pages
}

// Run fetches up to maxPages pages starting at offset 1 and returns
// the concatenation of their results in provider order. Any provider
// error aborts the whole run; no partial result is returned even when
// earlier pages succeeded.
func (a *Aggregator) Run(ctx context.Context, query string, maxPages int) ([]Result, error) {
	maxPages = ClampPages(maxPages)
	start := 1
	var results []Result

	for i := 0; i < maxPages; i++ {
		page, err := a.fetchPage(ctx, query, start)
		if err != nil {
			return nil, err
		}
		if len(page.Results) == 0 {
			break
		}
		results = append(results, page.Results...)
		if !page.HasMore {
			break
		}
		start = page.NextStart
	}

	a.log.WithFields(logrus.Fields{
		"query":   query,
		"pages":   maxPages,
		"results": len(results),
	}).Debug("aggregation complete")
	return results, nil
}

func (a *Aggregator) fetchPage(ctx context.Context, query string, start int) (*Page, error) {
	if a.cache != nil {
		if page, ok := a.cache.Get(ctx, query, start); ok {
			return page, nil
		}
	}
	page, err := a.provider.FetchPage(ctx, query, start)
	if err != nil {
		return nil, err
	}
	if a.cache != nil {
		a.cache.Set(ctx, query, start, page)
	}
	return page, nil
}
