package rank

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/kailas-cloud/newsrank/internal/domain/article"
)

// DefaultFallbackQuery replaces blank interests.
const DefaultFallbackQuery = "news"

// StatisticalScorer ranks by TF-IDF cosine similarity between the
// interests and each article's title and description.
type StatisticalScorer struct {
	backend       SimilarityBackend
	fallbackQuery string
}

// NewStatisticalScorer creates a scorer. An empty fallbackQuery means DefaultFallbackQuery.
func NewStatisticalScorer(backend SimilarityBackend, fallbackQuery string) *StatisticalScorer {
	if strings.TrimSpace(fallbackQuery) == "" {
		fallbackQuery = DefaultFallbackQuery
	}
	return &StatisticalScorer{backend: backend, fallbackQuery: fallbackQuery}
}

// Score attaches _score to every article and sorts best-first.
// Equal scores keep input order.
func (s *StatisticalScorer) Score(
	_ context.Context, articles []article.Article, interests string,
) ([]article.Article, error) {
	docs := make([]string, len(articles))
	for i, a := range articles {
		docs[i] = a.Title() + " " + a.Description()
	}

	scores, err := s.backend.Scores(s.query(interests), docs)
	if err != nil {
		return nil, fmt.Errorf("similarity: %w", err)
	}
	if len(scores) != len(articles) {
		return nil, fmt.Errorf("similarity: got %d scores for %d articles", len(scores), len(articles))
	}

	type scored struct {
		art   article.Article
		score float64
	}
	items := make([]scored, len(articles))
	for i, a := range articles {
		items[i] = scored{art: a, score: scores[i]}
	}

	slices.SortStableFunc(items, func(a, b scored) int {
		switch {
		case a.score > b.score:
			return -1
		case a.score < b.score:
			return 1
		default:
			return 0
		}
	})

	ranked := make([]article.Article, len(items))
	for i, it := range items {
		annotated, err := it.art.With(article.FieldScore, it.score)
		if err != nil {
			return nil, err
		}
		ranked[i] = annotated
	}
	return ranked, nil
}

func (s *StatisticalScorer) query(interests string) string {
	if strings.TrimSpace(interests) == "" {
		return s.fallbackQuery
	}
	return interests
}
