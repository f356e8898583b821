package health

import (
	"context"

	"github.com/kailas-cloud/newsrank/internal/domain/capability"
	"github.com/kailas-cloud/newsrank/internal/domain/strategy"
)

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates the capability set and live health check results.
type Report struct {
	Status       Status
	Method       strategy.Strategy
	Capabilities capability.Set
	Checks       map[string]CheckResult
}

// Service reports capabilities and backend reachability.
type Service struct {
	caps    capability.Set
	backend BackendChecker
}

// New creates a Service. backend can be nil.
func New(caps capability.Set, backend BackendChecker) *Service {
	return &Service{caps: caps, backend: backend}
}

// Capabilities returns the capability set decided at startup.
func (s *Service) Capabilities() capability.Set {
	return s.caps
}

// Check reports capabilities and probes the model backend.
// Missing backends never degrade the status; only failing probes do.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)

	if s.backend != nil {
		if err := s.backend.HealthCheck(ctx); err != nil {
			checks["model_backend"] = CheckError
		} else {
			checks["model_backend"] = CheckOK
		}
	}

	status := Healthy
	for _, v := range checks {
		if v == CheckError {
			status = Degraded
			break
		}
	}

	return Report{
		Status:       status,
		Method:       s.caps.Select(),
		Capabilities: s.caps,
		Checks:       checks,
	}
}
