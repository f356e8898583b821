package capability

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/kailas-cloud/newsrank/internal/domain"
	"github.com/kailas-cloud/newsrank/internal/domain/strategy"
	"github.com/kailas-cloud/newsrank/internal/textsim"
)

// --- Mocks ---

type mockRegistry struct {
	calls int
	id    string
	err   error
	wait  bool
}

func (m *mockRegistry) GetModel(ctx context.Context, id string) (string, error) {
	m.calls++
	if m.wait {
		<-ctx.Done()
		return "", ctx.Err()
	}
	if m.err != nil {
		return "", m.err
	}
	if m.id != "" {
		return m.id, nil
	}
	return id, nil
}

type brokenProbe struct{}

func (brokenProbe) Scores(string, []string) ([]float64, error) { return nil, errors.New("no vocabulary") }

func writeManifest(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

const validManifest = "name: news-ranker\nmodel: news-ranker-v1\n"

// --- Tests ---

func TestDetect_Nothing(t *testing.T) {
	set := NewDetector(Config{}, nil, nil, nil).Detect(context.Background())

	if set.StatisticalAvailable || set.ModelBackendAvailable || set.ModelLoaded() {
		t.Errorf("expected empty set, got %+v", set)
	}
	if set.Select() != strategy.Recency {
		t.Errorf("Select() = %q", set.Select())
	}
}

func TestDetect_StatisticalOnly(t *testing.T) {
	d := NewDetector(Config{StatisticalEnabled: true}, textsim.NewEnglishVectorizer(), nil, zap.NewNop())
	set := d.Detect(context.Background())

	if !set.StatisticalAvailable {
		t.Error("expected statistical backend")
	}
	if set.Select() != strategy.Statistical {
		t.Errorf("Select() = %q", set.Select())
	}
}

func TestDetect_StatisticalDisabled(t *testing.T) {
	d := NewDetector(Config{StatisticalEnabled: false}, textsim.NewEnglishVectorizer(), nil, zap.NewNop())
	if d.Detect(context.Background()).StatisticalAvailable {
		t.Error("disabled statistical backend reported available")
	}
}

func TestDetect_StatisticalProbeFails(t *testing.T) {
	d := NewDetector(Config{StatisticalEnabled: true}, brokenProbe{}, nil, zap.NewNop())
	if d.Detect(context.Background()).StatisticalAvailable {
		t.Error("failing probe reported available")
	}
}

func TestDetect_ModelLoaded(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	reg := &mockRegistry{}
	d := NewDetector(Config{
		StatisticalEnabled: true,
		ManifestPath:       writeManifest(t, validManifest),
	}, textsim.NewEnglishVectorizer(), reg, zap.New(core))

	set := d.Detect(context.Background())

	if !set.ModelLoaded() {
		t.Fatal("expected loaded model")
	}
	if set.Model.Name != "news-ranker" || set.Model.ID != "news-ranker-v1" {
		t.Errorf("model = %+v", set.Model)
	}
	if set.Select() != strategy.Model {
		t.Errorf("Select() = %q", set.Select())
	}
	if logs.FilterMessage("Model loaded").Len() != 1 {
		t.Error("expected a model loaded log line")
	}
}

func TestDetect_MissingManifest(t *testing.T) {
	reg := &mockRegistry{}
	d := NewDetector(Config{
		ManifestPath: filepath.Join(t.TempDir(), "absent.yaml"),
	}, nil, reg, zap.NewNop())

	set := d.Detect(context.Background())
	if !set.ModelBackendAvailable {
		t.Error("backend must stay available without a manifest")
	}
	if set.ModelLoaded() {
		t.Error("no model expected")
	}
	if reg.calls != 0 {
		t.Error("registry must not be queried without a manifest")
	}
}

func TestDetect_InvalidManifest(t *testing.T) {
	bodies := map[string]string{
		"malformed":  "name: [unterminated",
		"no model":   "name: ranker\n",
		"no name":    "model: ranker-v1\n",
		"empty file": "",
	}
	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			core, logs := observer.New(zap.WarnLevel)
			d := NewDetector(Config{ManifestPath: writeManifest(t, body)}, nil, &mockRegistry{}, zap.New(core))

			if d.Detect(context.Background()).ModelLoaded() {
				t.Error("invalid manifest must not load a model")
			}
			if logs.FilterMessage("Could not load model, falling back").Len() != 1 {
				t.Error("expected a fallback warning")
			}
		})
	}
}

func TestDetect_RegistryError(t *testing.T) {
	reg := &mockRegistry{err: domain.ErrModelBackend}
	d := NewDetector(Config{
		StatisticalEnabled: true,
		ManifestPath:       writeManifest(t, validManifest),
	}, textsim.NewEnglishVectorizer(), reg, zap.NewNop())

	set := d.Detect(context.Background())
	if set.ModelLoaded() {
		t.Error("registry failure must not load a model")
	}
	if set.Select() != strategy.Statistical {
		t.Errorf("Select() = %q, want fallback to statistical", set.Select())
	}
}

func TestDetect_LoadTimeout(t *testing.T) {
	reg := &mockRegistry{wait: true}
	d := NewDetector(Config{
		ManifestPath: writeManifest(t, validManifest),
		LoadTimeout:  10 * time.Millisecond,
	}, nil, reg, zap.NewNop())

	if d.Detect(context.Background()).ModelLoaded() {
		t.Error("timed out load must not report a model")
	}
}

func TestLoadManifest(t *testing.T) {
	m, err := LoadManifest(writeManifest(t, validManifest+"description: ranks news\n"))
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if m.Name != "news-ranker" || m.Model != "news-ranker-v1" || m.Description != "ranks news" {
		t.Errorf("manifest = %+v", m)
	}

	_, err = LoadManifest(writeManifest(t, "name: x\n"))
	if !errors.Is(err, domain.ErrModelManifest) {
		t.Errorf("expected ErrModelManifest, got %v", err)
	}

	_, err = LoadManifest(filepath.Join(t.TempDir(), "none.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}

func TestResolveManifestPath(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "m.yaml")
	if got := ResolveManifestPath(abs); got != abs {
		t.Errorf("absolute path changed: %q", got)
	}

	got := ResolveManifestPath("")
	if !filepath.IsAbs(got) || filepath.Base(got) != DefaultManifestPath {
		t.Errorf("ResolveManifestPath(\"\") = %q", got)
	}
}
