package retriever

import (
	"context"
)

// Passage is a retrieved knowledge-base text unit, ranked by relevance.
// Rank is implicit in slice order.
type Passage struct {
	Text  string
	Score float64
}

// Retriever is the knowledge-base search capability: given a query and
// a count k, it returns up to k passages in relevance order.
type Retriever interface {
	Search(ctx context.Context, query string, k int) ([]Passage, error)
}
