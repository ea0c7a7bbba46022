package infrastructure

import (
	"context"

	"weatherdesk.app/internal/ports"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
)

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	checkers []ports.HealthChecker
}

// NewSystemHealthChecker creates a new system health checker; nil checkers are skipped
func NewSystemHealthChecker(checkers ...ports.HealthChecker) *SystemHealthChecker {
	s := &SystemHealthChecker{}
	for _, checker := range checkers {
		if checker != nil {
			s.checkers = append(s.checkers, checker)
		}
	}
	return s
}

// CheckAll performs health checks on all components, keyed by component name
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus, len(s.checkers))
	for _, checker := range s.checkers {
		status := checker.Check(ctx)
		results[status.Component] = status
	}
	return results
}

// IsHealthy reports whether every status in results is healthy
func IsHealthy(results map[string]ports.HealthStatus) bool {
	for _, status := range results {
		if status.Status != statusHealthy {
			return false
		}
	}
	return true
}
