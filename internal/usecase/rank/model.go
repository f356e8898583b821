package rank

import (
	"context"

	"go.uber.org/zap"

	"github.com/kailas-cloud/newsrank/internal/domain/article"
	"github.com/kailas-cloud/newsrank/internal/domain/capability"
	"github.com/kailas-cloud/newsrank/internal/domain/strategy"
	"github.com/kailas-cloud/newsrank/internal/logger"
)

// ModelScorer is the placeholder for model inference. It keeps input order
// and tags every article with the backend name; no relevance score is computed.
type ModelScorer struct {
	model *capability.Model
}

// NewModelScorer creates the placeholder scorer for a loaded model.
func NewModelScorer(model *capability.Model) *ModelScorer {
	return &ModelScorer{model: model}
}

// Score tags every article with _model.
func (s *ModelScorer) Score(
	ctx context.Context, articles []article.Article, _ string,
) ([]article.Article, error) {
	fields := []zap.Field{zap.Int("articles", len(articles))}
	if s.model != nil {
		fields = append(fields, zap.String("model", s.model.Name))
	}
	logger.FromContext(ctx).Info("Running model inference", fields...)

	ranked := make([]article.Article, len(articles))
	for i, a := range articles {
		tagged, err := a.With(article.FieldModel, strategy.Model.String())
		if err != nil {
			return nil, err
		}
		ranked[i] = tagged
	}
	return ranked, nil
}
