package database

import (
	"context"
	"database/sql"
	"time"
)

// HealthStatus reports database health, pool statistics, and the current
// integration queue backlog.
type HealthStatus struct {
	Status              string `json:"status"`
	ResponseTime        int64  `json:"response_time_ms"`
	OpenConnections     int    `json:"open_connections"`
	InUse               int    `json:"in_use"`
	Idle                int    `json:"idle"`
	WaitCount           int64  `json:"wait_count"`
	MaxOpenConns        int    `json:"max_open_conns"`
	PendingIntegrations int    `json:"pending_integrations"`
}

// Health pings the database and collects pool stats plus the number of
// integration requests waiting for dispatch.
func Health(ctx context.Context, db *sql.DB) (*HealthStatus, error) {
	start := time.Now()

	if err := db.PingContext(ctx); err != nil {
		return &HealthStatus{
			Status:       "unhealthy",
			ResponseTime: time.Since(start).Milliseconds(),
		}, err
	}

	stats := db.Stats()
	status := &HealthStatus{
		Status:          "healthy",
		ResponseTime:    time.Since(start).Milliseconds(),
		OpenConnections: stats.OpenConnections,
		InUse:           stats.InUse,
		Idle:            stats.Idle,
		WaitCount:       stats.WaitCount,
		MaxOpenConns:    stats.MaxOpenConnections,
	}

	row := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM integration_requests WHERE status IN ('pending', 'scheduled')`)
	if err := row.Scan(&status.PendingIntegrations); err != nil {
		// Pool is reachable; backlog stat is best effort.
		status.PendingIntegrations = -1
	}

	return status, nil
}
