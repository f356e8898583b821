package capability

import "context"

// ModelRegistry resolves model identifiers on the model backend.
type ModelRegistry interface {
	GetModel(ctx context.Context, id string) (string, error)
}

// SimilarityProbe is the statistical backend checked at startup.
type SimilarityProbe interface {
	Scores(query string, docs []string) ([]float64, error)
}
