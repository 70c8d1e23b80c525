package ui

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/ytget/multi-converter/internal/api"
	"github.com/ytget/multi-converter/internal/model"
)

// stubBackend answers every call from its fields and records conversions
type stubBackend struct {
	mu        sync.Mutex
	requests  []model.ConversionRequest
	unitCalls int

	response *model.ConversionResponse
	units    model.UnitCatalog
	info     *model.AppInfo
	err      error
}

var _ api.Backend = (*stubBackend)(nil)

func (b *stubBackend) Health(context.Context) (*model.HealthStatus, error) {
	if b.err != nil {
		return nil, b.err
	}
	return &model.HealthStatus{Status: model.HealthyStatus}, nil
}

func (b *stubBackend) Convert(_ context.Context, _ string, req model.ConversionRequest) (*model.ConversionResponse, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.requests = append(b.requests, req)
	if b.err != nil {
		return nil, b.err
	}
	return b.response, nil
}

func (b *stubBackend) Units(context.Context) (model.UnitCatalog, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.unitCalls++
	if b.err != nil {
		return nil, b.err
	}
	return b.units, nil
}

func (b *stubBackend) Info(context.Context) (*model.AppInfo, error) {
	if b.info == nil {
		return nil, errors.New("no info")
	}
	return b.info, nil
}

func (b *stubBackend) requestCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.requests)
}

func (b *stubBackend) unitCallCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.unitCalls
}

func (b *stubBackend) lastRequest() model.ConversionRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.requests[len(b.requests)-1]
}

// factory returns a BackendFactory handing out b and recording the URLs asked for
func (b *stubBackend) factory(urls *[]string) BackendFactory {
	return func(serverURL string, _ time.Duration) api.Backend {
		if urls != nil {
			*urls = append(*urls, serverURL)
		}
		return b
	}
}

func successResponse(result, from, to string) *model.ConversionResponse {
	return &model.ConversionResponse{
		Success: true,
		Result:  json.RawMessage(result),
		From:    from,
		To:      to,
	}
}
