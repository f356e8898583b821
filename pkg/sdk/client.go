package newsrank

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/kailas-cloud/newsrank/internal/domain/article"
	"github.com/kailas-cloud/newsrank/internal/domain/capability"
	"github.com/kailas-cloud/newsrank/internal/textsim"
	openaiModel "github.com/kailas-cloud/newsrank/internal/transport/openai"
	capabilityuc "github.com/kailas-cloud/newsrank/internal/usecase/capability"
	healthuc "github.com/kailas-cloud/newsrank/internal/usecase/health"
	rankuc "github.com/kailas-cloud/newsrank/internal/usecase/rank"
)

// Internal interfaces, replaced in tests.
type rankUseCase interface {
	Rank(ctx context.Context, articles []article.Article, interests string) (rankuc.Result, error)
}

type healthUseCase interface {
	Check(ctx context.Context) healthuc.Report
}

// Client is the newsrank SDK entry point. It is safe for concurrent use.
type Client struct {
	caps      capability.Set
	rankSvc   rankUseCase
	healthSvc healthUseCase
	obs       *observer
}

// New detects capabilities and creates a Client.
// The provided context bounds the startup model lookup.
// Backend failures never fail New; they select a lesser strategy.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		statistical:   true,
		fallbackQuery: rankuc.DefaultFallbackQuery,
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	var (
		registry capabilityuc.ModelRegistry
		checker  healthuc.BackendChecker
	)
	logger := zapLogger(cfg.logger)
	if cfg.baseURL != "" || cfg.apiKey != "" {
		reg := openaiModel.NewRegistry(&openaiModel.Config{APIKey: cfg.apiKey, BaseURL: cfg.baseURL, Logger: logger})
		registry = reg
		checker = reg
	}

	vectorizer := textsim.NewEnglishVectorizer()
	start := time.Now()
	caps := capabilityuc.NewDetector(capabilityuc.Config{
		StatisticalEnabled: cfg.statistical,
		ManifestPath:       capabilityuc.ResolveManifestPath(cfg.manifestPath),
		LoadTimeout:        cfg.loadTimeout,
	}, vectorizer, registry, logger).Detect(ctx)
	obs.observe("detect", caps.Select().String(), start, nil,
		"statistical", caps.StatisticalAvailable,
		"model_backend", caps.ModelBackendAvailable,
		"model_loaded", caps.ModelLoaded(),
	)

	return &Client{
		caps:      caps,
		rankSvc:   rankuc.New(caps, rankuc.DefaultScorers(caps, vectorizer, cfg.fallbackQuery)),
		healthSvc: healthuc.New(caps, checker),
		obs:       obs,
	}, nil
}

// Method returns the strategy every Rank call uses.
func (c *Client) Method() string {
	return c.caps.Select().String()
}

// Capabilities reports the backends detected by New.
func (c *Client) Capabilities() Capabilities {
	out := Capabilities{
		Statistical:  c.caps.StatisticalAvailable,
		ModelBackend: c.caps.ModelBackendAvailable,
		ModelLoaded:  c.caps.ModelLoaded(),
	}
	if c.caps.Model != nil {
		out.Model = c.caps.Model.Name
	}
	return out
}

// Rank returns articles ordered best-first with one annotation per strategy:
// _score for tfidf, _model for pytorch, none for date_sort.
// Input articles are not modified.
func (c *Client) Rank(ctx context.Context, articles []Article, interests string) (res Ranking, err error) {
	start := time.Now()
	defer func() { c.obs.observe("rank", c.Method(), start, err, "articles", len(articles)) }()

	in := make([]article.Article, len(articles))
	for i, a := range articles {
		in[i], err = article.FromValues(a)
		if err != nil {
			return Ranking{}, fmt.Errorf("article %d: %w", i, err)
		}
	}

	ranked, err := c.rankSvc.Rank(ctx, in, interests)
	if err != nil {
		return Ranking{}, fmt.Errorf("rank: %w", err)
	}

	out := make([]Article, len(ranked.Articles))
	for i, a := range ranked.Articles {
		if out[i], err = toArticle(a); err != nil {
			return Ranking{}, err
		}
	}
	return Ranking{Articles: out, Method: ranked.Method.String()}, nil
}

func toArticle(a article.Article) (Article, error) {
	raw, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("encode ranked article: %w", err)
	}
	var out Article
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode ranked article: %w", err)
	}
	return out, nil
}
