package newsrank

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	manifestPath string
	baseURL      string
	apiKey       string
	loadTimeout  time.Duration

	statistical   bool
	fallbackQuery string

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithModelManifest sets the model manifest path.
// Relative paths resolve against the executable's directory. Default: model.yaml.
func WithModelManifest(path string) Option {
	return optionFunc(func(c *clientConfig) {
		c.manifestPath = path
	})
}

// WithModelBackend enables the OpenAI-compatible model backend.
// Without it the model strategy is never selected.
func WithModelBackend(baseURL, apiKey string) Option {
	return optionFunc(func(c *clientConfig) {
		c.baseURL = baseURL
		c.apiKey = apiKey
	})
}

// WithLoadTimeout bounds the startup model lookup. Default: 5s.
func WithLoadTimeout(d time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.loadTimeout = d
	})
}

// WithoutStatistical disables TF-IDF ranking.
func WithoutStatistical() Option {
	return optionFunc(func(c *clientConfig) {
		c.statistical = false
	})
}

// WithFallbackQuery sets the query used when interests are blank. Default: "news".
func WithFallbackQuery(q string) Option {
	return optionFunc(func(c *clientConfig) {
		c.fallbackQuery = q
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
