package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/kailas-cloud/newsrank/internal/domain"
)

func newTestRegistry(t *testing.T, h http.HandlerFunc) *Registry {
	t.Helper()
	server := httptest.NewServer(h)
	t.Cleanup(server.Close)
	return NewRegistry(&Config{APIKey: "test-key", BaseURL: server.URL, Logger: zap.NewNop()})
}

func TestRegistry_GetModel(t *testing.T) {
	reg := newTestRegistry(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/models/news-ranker-v1" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("unexpected auth header: %s", r.Header.Get("Authorization"))
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":       "news-ranker-v1",
			"object":   "model",
			"owned_by": "newsroom",
		})
	})

	id, err := reg.GetModel(context.Background(), "news-ranker-v1")
	if err != nil {
		t.Fatalf("GetModel failed: %v", err)
	}
	if id != "news-ranker-v1" {
		t.Errorf("id = %q", id)
	}
}

func TestRegistry_GetModel_NotFound(t *testing.T) {
	reg := newTestRegistry(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"message":"model not found","type":"invalid_request_error"}}`))
	})

	_, err := reg.GetModel(context.Background(), "missing")
	if !errors.Is(err, domain.ErrModelBackend) {
		t.Fatalf("expected ErrModelBackend, got %v", err)
	}
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("error should mention status: %v", err)
	}
}

func TestRegistry_GetModel_DetailBody(t *testing.T) {
	reg := newTestRegistry(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"detail":"upstream unavailable"}`))
	})

	_, err := reg.GetModel(context.Background(), "x")
	if !errors.Is(err, domain.ErrModelBackend) {
		t.Fatalf("expected ErrModelBackend, got %v", err)
	}
}

func TestRegistry_HealthCheck(t *testing.T) {
	reg := newTestRegistry(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/models" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"object":"list","data":[]}`))
	})

	if err := reg.HealthCheck(context.Background()); err != nil {
		t.Fatalf("HealthCheck failed: %v", err)
	}
}

func TestRegistry_HealthCheck_Error(t *testing.T) {
	reg := newTestRegistry(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	if err := reg.HealthCheck(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

func TestExtractDetail(t *testing.T) {
	if got := extractDetail([]byte(`{"detail":"boom"}`)); got != "boom" {
		t.Errorf("extractDetail = %q", got)
	}
	if got := extractDetail([]byte(`not json`)); got != "" {
		t.Errorf("extractDetail = %q, want empty", got)
	}
}
