package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/kailas-cloud/newsrank/internal/domain"
)

// Registry looks up models on an OpenAI-compatible model backend.
type Registry struct {
	client *openai.Client
	logger *zap.Logger
}

// Config holds the model backend settings.
type Config struct {
	APIKey  string
	BaseURL string // empty means the OpenAI default
	Logger  *zap.Logger
}

// NewRegistry creates a model backend client.
func NewRegistry(cfg *Config) *Registry {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Registry{
		client: openai.NewClientWithConfig(clientCfg),
		logger: logger,
	}
}

// GetModel confirms the backend serves the model and returns its canonical id.
func (r *Registry) GetModel(ctx context.Context, id string) (string, error) {
	m, err := r.client.GetModel(ctx, id)
	if err != nil {
		return "", parseAPIError(err)
	}
	if m.ID == "" {
		return id, nil
	}
	r.logger.Debug("Model resolved", zap.String("model", m.ID), zap.String("owned_by", m.OwnedBy))
	return m.ID, nil
}

// HealthCheck verifies API availability via ListModels (free endpoint).
func (r *Registry) HealthCheck(ctx context.Context) error {
	if _, err := r.client.ListModels(ctx); err != nil {
		return fmt.Errorf("list models: %w", err)
	}
	return nil
}

// parseAPIError extracts a human-readable error from the API response.
// All errors are wrapped with domain.ErrModelBackend.
func parseAPIError(err error) error {
	wrap := domain.ErrModelBackend

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		detail := extractDetail(reqErr.Body)
		if detail != "" {
			return fmt.Errorf("model API error %d: %s: %w",
				reqErr.HTTPStatusCode, detail, wrap)
		}
		return fmt.Errorf("model API error %d: %s: %w",
			reqErr.HTTPStatusCode, string(reqErr.Body), wrap)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("model API error %d: %s: %w",
			apiErr.HTTPStatusCode, apiErr.Message, wrap)
	}

	return fmt.Errorf("model request failed: %v: %w", err, wrap)
}

// extractDetail extracts the "detail" field from a JSON error body.
func extractDetail(body []byte) string {
	var parsed struct {
		Detail string `json:"detail"`
	}
	if json.Unmarshal(body, &parsed) == nil && parsed.Detail != "" {
		return parsed.Detail
	}
	return ""
}
