package newsrank

import "context"

// HealthStatus represents capabilities plus live backend checks.
type HealthStatus struct {
	Status string            // "ok", "degraded"
	Method string            // strategy used by Rank
	Checks map[string]string // component → "ok"/"error"
}

// Health probes the model backend, when configured.
func (c *Client) Health(ctx context.Context) HealthStatus {
	report := c.healthSvc.Check(ctx)
	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}
	return HealthStatus{
		Status: string(report.Status),
		Method: report.Method.String(),
		Checks: checks,
	}
}
