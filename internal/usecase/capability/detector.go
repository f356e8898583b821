package capability

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	domcap "github.com/kailas-cloud/newsrank/internal/domain/capability"
	"github.com/kailas-cloud/newsrank/internal/metrics"
)

const defaultLoadTimeout = 5 * time.Second

// Config controls capability detection.
type Config struct {
	StatisticalEnabled bool
	ManifestPath       string // absolute, or relative to the working directory
	LoadTimeout        time.Duration
}

// Detector decides once which optional scoring backends the process can use.
type Detector struct {
	cfg        Config
	similarity SimilarityProbe
	registry   ModelRegistry
	logger     *zap.Logger
}

// NewDetector creates a detector. similarity and registry may be nil
// when the corresponding backend is not configured.
func NewDetector(cfg Config, similarity SimilarityProbe, registry ModelRegistry, logger *zap.Logger) *Detector {
	if cfg.LoadTimeout <= 0 {
		cfg.LoadTimeout = defaultLoadTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Detector{cfg: cfg, similarity: similarity, registry: registry, logger: logger}
}

// Detect probes every backend independently. Failures only downgrade
// the returned set; they are logged and never returned.
func (d *Detector) Detect(ctx context.Context) domcap.Set {
	set := domcap.Set{
		StatisticalAvailable:  d.detectStatistical(),
		ModelBackendAvailable: d.registry != nil,
	}
	if set.ModelBackendAvailable {
		set.Model = d.loadModel(ctx)
	}

	metrics.SetCapability("statistical", set.StatisticalAvailable)
	metrics.SetCapability("model_backend", set.ModelBackendAvailable)
	metrics.SetCapability("model", set.ModelLoaded())

	d.logger.Info("Capabilities detected",
		zap.Bool("statistical_available", set.StatisticalAvailable),
		zap.Bool("model_backend_available", set.ModelBackendAvailable),
		zap.Bool("model_loaded", set.ModelLoaded()),
		zap.String("method", set.Select().String()),
	)
	return set
}

func (d *Detector) detectStatistical() bool {
	if !d.cfg.StatisticalEnabled || d.similarity == nil {
		return false
	}
	if _, err := d.similarity.Scores("news", []string{"news"}); err != nil {
		d.logger.Warn("Statistical backend unusable", zap.Error(err))
		return false
	}
	return true
}

func (d *Detector) loadModel(ctx context.Context) *domcap.Model {
	manifest, err := LoadManifest(d.cfg.ManifestPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			d.logger.Debug("No model manifest", zap.String("path", d.cfg.ManifestPath))
			return nil
		}
		d.logger.Warn("Could not load model, falling back", zap.Error(err))
		return nil
	}

	model, err := d.resolve(ctx, manifest)
	if err != nil {
		d.logger.Warn("Could not load model, falling back",
			zap.String("name", manifest.Name),
			zap.String("model", manifest.Model),
			zap.Error(err),
		)
		return nil
	}

	d.logger.Info("Model loaded",
		zap.String("name", model.Name),
		zap.String("model", model.ID),
		zap.String("path", d.cfg.ManifestPath),
	)
	return model
}

func (d *Detector) resolve(ctx context.Context, m Manifest) (*domcap.Model, error) {
	ctx, cancel := context.WithTimeout(ctx, d.cfg.LoadTimeout)
	defer cancel()

	id, err := d.registry.GetModel(ctx, m.Model)
	if err != nil {
		return nil, fmt.Errorf("get model: %w", err)
	}
	return &domcap.Model{Name: m.Name, ID: id}, nil
}
