package rank

import (
	"context"
	"slices"
	"strings"

	"github.com/kailas-cloud/newsrank/internal/domain/article"
)

// RecencyScorer orders by publishedAt text, greatest first. Interests are ignored.
type RecencyScorer struct{}

// NewRecencyScorer creates the fallback scorer.
func NewRecencyScorer() *RecencyScorer { return &RecencyScorer{} }

// Score sorts a copy of articles. Missing publishedAt sorts last,
// equal timestamps keep input order.
func (s *RecencyScorer) Score(
	_ context.Context, articles []article.Article, _ string,
) ([]article.Article, error) {
	ranked := slices.Clone(articles)
	slices.SortStableFunc(ranked, func(a, b article.Article) int {
		return strings.Compare(b.PublishedAt(), a.PublishedAt())
	})
	return ranked, nil
}
