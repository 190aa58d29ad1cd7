package pubmed

import (
	"context"
	"log"

	"github.com/agrovista/agridiag/pkg/agridiag/query"
)

// Disabled is the searcher installed when the literature backend is
// switched off at startup. Every search reports zero matches; the
// diagnosis core does not distinguish this from an empty result.
type Disabled struct{}

// NewDisabled logs one diagnostic notice and returns the no-op
// searcher.
func NewDisabled() *Disabled {
	log.Printf("pubmed: backend disabled; literature searches will return no results")
	return &Disabled{}
}

// Search always reports zero matches.
func (*Disabled) Search(context.Context, string, int) ([]query.Article, error) {
	return nil, nil
}
