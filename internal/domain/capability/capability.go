// Package capability describes which optional scoring backends a process can use.
package capability

import "github.com/kailas-cloud/newsrank/internal/domain/strategy"

// Model is a model loaded from the persisted manifest.
type Model struct {
	Name string // manifest name, used for logging and health
	ID   string // identifier on the model backend
}

// Set is the capability triple decided once at startup. It is never mutated.
type Set struct {
	StatisticalAvailable  bool
	ModelBackendAvailable bool
	Model                 *Model
}

// ModelLoaded reports whether a model instance was loaded.
func (s Set) ModelLoaded() bool { return s.Model != nil }

// Select picks the ranking strategy. First match wins:
// loaded model, then statistical backend, then recency.
func (s Set) Select() strategy.Strategy {
	switch {
	case s.ModelLoaded():
		return strategy.Model
	case s.StatisticalAvailable:
		return strategy.Statistical
	default:
		return strategy.Recency
	}
}
