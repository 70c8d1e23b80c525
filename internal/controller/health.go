package controller

import (
	"context"
	"log/slog"

	"github.com/ytget/multi-converter/internal/api"
	"github.com/ytget/multi-converter/internal/logging"
	"github.com/ytget/multi-converter/internal/model"
)

// CheckHealth calls the service health endpoint once and logs the outcome. It never retries
// and never touches the UI; the returned values are for headless callers.
func CheckHealth(ctx context.Context, backend api.Backend, logger *slog.Logger) (*model.HealthStatus, error) {
	if logger == nil {
		logger = slog.Default()
	}

	status, err := backend.Health(ctx)
	if err != nil {
		logging.LogError(logger, "health check failed", err,
			slog.String("component", "health"))
		return nil, err
	}

	if status.IsHealthy() {
		logging.LogOperation(logger, "application is healthy",
			slog.String("component", "health"))
	} else {
		logger.Warn("unexpected health status",
			slog.String("component", "health"),
			slog.String("status", status.Status),
			slog.String("message", status.Message))
	}

	return status, nil
}
