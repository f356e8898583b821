package health

import "context"

// BackendChecker checks model backend availability.
type BackendChecker interface {
	HealthCheck(ctx context.Context) error
}
