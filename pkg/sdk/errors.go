package newsrank

import "github.com/kailas-cloud/newsrank/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrNoArticles      = domain.ErrNoArticles
	ErrScoring         = domain.ErrScoring
	ErrEmptyVocabulary = domain.ErrEmptyVocabulary
	ErrInvalidArticle  = domain.ErrInvalidArticle
)
