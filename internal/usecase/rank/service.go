package rank

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/newsrank/internal/domain"
	"github.com/kailas-cloud/newsrank/internal/domain/article"
	"github.com/kailas-cloud/newsrank/internal/domain/capability"
	"github.com/kailas-cloud/newsrank/internal/domain/strategy"
	"github.com/kailas-cloud/newsrank/internal/logger"
	"github.com/kailas-cloud/newsrank/internal/metrics"
)

// Result is a ranked article list and the strategy that produced it.
type Result struct {
	Articles []article.Article
	Method   strategy.Strategy
}

// Scorers holds one scorer per strategy.
type Scorers struct {
	Model       Scorer
	Statistical Scorer
	Recency     Scorer
}

// DefaultScorers builds the scorer for each strategy the capability set can select.
// similarity may be nil when the statistical backend is unavailable.
func DefaultScorers(caps capability.Set, similarity SimilarityBackend, fallbackQuery string) Scorers {
	s := Scorers{Recency: NewRecencyScorer()}
	if caps.ModelLoaded() {
		s.Model = NewModelScorer(caps.Model)
	}
	if caps.StatisticalAvailable && similarity != nil {
		s.Statistical = NewStatisticalScorer(similarity, fallbackQuery)
	}
	return s
}

// Service ranks articles with the strategy chosen by the capability set.
type Service struct {
	caps    capability.Set
	scorers Scorers
}

// New creates a ranking service. caps is fixed for the lifetime of the service.
func New(caps capability.Set, scorers Scorers) *Service {
	return &Service{caps: caps, scorers: scorers}
}

// Method reports the strategy every Rank call uses, without ranking.
func (s *Service) Method() strategy.Strategy {
	return s.caps.Select()
}

// Capabilities returns the capability set the service was built with.
func (s *Service) Capabilities() capability.Set {
	return s.caps
}

// Rank orders articles by relevance to interests.
// Scorer failures are wrapped with domain.ErrScoring and never retried with another strategy.
func (s *Service) Rank(ctx context.Context, articles []article.Article, interests string) (Result, error) {
	if len(articles) == 0 {
		return Result{}, domain.ErrNoArticles
	}

	method := s.Method()
	ctx = logger.WithFields(ctx, zap.String("method", method.String()))
	log := logger.FromContext(ctx)

	scorer, err := s.scorerFor(method)
	if err != nil {
		metrics.RankRequestsTotal.WithLabelValues(method.String(), "error").Inc()
		log.Error("Ranking failed", zap.Error(err))
		return Result{}, fmt.Errorf("%w: %w", domain.ErrScoring, err)
	}
	if method == strategy.Recency {
		log.Warn("No ML backend available, sorting by date")
	}

	start := time.Now()
	ranked, err := scorer.Score(ctx, articles, interests)
	duration := time.Since(start)

	metrics.RankArticles.Observe(float64(len(articles)))
	metrics.RankDuration.WithLabelValues(method.String()).Observe(duration.Seconds())

	if err != nil {
		metrics.RankRequestsTotal.WithLabelValues(method.String(), "error").Inc()
		log.Error("Ranking failed", zap.Int("articles", len(articles)), zap.Error(err))
		return Result{}, fmt.Errorf("%w: %w", domain.ErrScoring, err)
	}
	if len(ranked) != len(articles) {
		metrics.RankRequestsTotal.WithLabelValues(method.String(), "error").Inc()
		return Result{}, fmt.Errorf("%w: scorer returned %d of %d articles",
			domain.ErrScoring, len(ranked), len(articles))
	}

	metrics.RankRequestsTotal.WithLabelValues(method.String(), "success").Inc()
	log.Debug("Ranking completed",
		zap.Int("articles", len(articles)),
		zap.Duration("duration", duration),
	)

	return Result{Articles: ranked, Method: method}, nil
}

func (s *Service) scorerFor(method strategy.Strategy) (Scorer, error) {
	var sc Scorer
	switch method {
	case strategy.Model:
		sc = s.scorers.Model
	case strategy.Statistical:
		sc = s.scorers.Statistical
	case strategy.Recency:
		sc = s.scorers.Recency
	}
	if sc == nil {
		return nil, fmt.Errorf("%w: no scorer for %q", domain.ErrUnknownStrategy, method)
	}
	return sc, nil
}
