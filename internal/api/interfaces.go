package api

import (
	"context"

	"github.com/ytget/multi-converter/internal/model"
)

// Backend defines the interface for the conversion service.
type Backend interface {
	// Health calls GET /health
	Health(ctx context.Context) (*model.HealthStatus, error)

	// Convert posts a conversion request to endpoint and decodes the reply
	Convert(ctx context.Context, endpoint string, req model.ConversionRequest) (*model.ConversionResponse, error)

	// Units fetches the selector options for every category
	Units(ctx context.Context) (model.UnitCatalog, error)

	// Info fetches the service description
	Info(ctx context.Context) (*model.AppInfo, error)
}
