package query

import "context"

// DefaultMaxArticles is the article cap when the caller passes none.
const DefaultMaxArticles = 6

// Runner executes the degradation strategy: each level is tried at
// most once, strictly in order, and the first level whose search
// yields at least one article wins. Later levels are strictly broader
// and more expensive, so they must never run once an earlier level
// succeeds.
type Runner struct {
	searcher Searcher
}

// NewRunner creates a runner over the given searcher.
func NewRunner(s Searcher) *Runner {
	return &Runner{searcher: s}
}

// Search runs levels 1–4 for the extracted entities and returns the
// first non-empty result set together with the literal query that
// produced it. A searcher error at any level is treated exactly like
// an empty result: advance to the next level. Exhausting all levels
// returns (nil, TerminalQuery) — a valid, empty outcome, not an
// error.
func (r *Runner) Search(ctx context.Context, crop string, symptoms, causes []string, rawText string, maxResults int) ([]Article, string) {
	if maxResults <= 0 {
		maxResults = DefaultMaxArticles
	}

	symptomsEN := TranslateSymptoms(symptoms)
	for _, level := range Plan(crop, symptomsEN, causes, rawText, maxResults) {
		articles, err := r.searcher.Search(ctx, level.Query, level.MaxResults)
		if err != nil || len(articles) == 0 {
			continue
		}
		return articles, level.Query
	}

	return nil, TerminalQuery
}
