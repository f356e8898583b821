package chi

import "github.com/kailas-cloud/newsrank/internal/domain/article"

// Error codes returned in ErrorResponse.Code.
const (
	codeBadRequest    = "bad_request"
	codeNoArticles    = "no_articles"
	codeRankingFailed = "ranking_failed"
	codeInternalError = "internal_error"
)

// RankRequest is the POST /rank body.
type RankRequest struct {
	Articles  []article.Article `json:"articles"`
	Interests string            `json:"interests"`
}

// RankResponse is the POST /rank success body.
type RankResponse struct {
	Ranked []article.Article `json:"ranked"`
	Method string            `json:"method"`
}

// HealthResponse is the GET /health body.
type HealthResponse struct {
	Status                string            `json:"status"`
	Method                string            `json:"method"`
	StatisticalAvailable  bool              `json:"statistical_available"`
	ModelBackendAvailable bool              `json:"model_backend_available"`
	ModelLoaded           bool              `json:"model_loaded"`
	Model                 string            `json:"model,omitempty"`
	Checks                map[string]string `json:"checks"`
	Version               string            `json:"version"`
}

// ErrorResponse is returned for every failed request.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
