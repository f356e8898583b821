package rank

import (
	"context"

	"github.com/kailas-cloud/newsrank/internal/domain/article"
)

// Scorer orders articles for one strategy. Implementations return new
// article values and never modify the input slice.
type Scorer interface {
	Score(ctx context.Context, articles []article.Article, interests string) ([]article.Article, error)
}

// SimilarityBackend scores documents against a query.
type SimilarityBackend interface {
	Scores(query string, docs []string) ([]float64, error)
}
