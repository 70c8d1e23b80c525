package model

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// FallbackConversionError is shown when the service reports failure without a reason
const FallbackConversionError = "Conversion failed"

// ConversionRequest is the body posted to a conversion endpoint.
// Value is a float64 (or nil) for numeric categories and a string for number-base.
type ConversionRequest struct {
	Category Category
	Value    any
	From     string
	To       string
}

// MarshalJSON encodes the request with the selector keys of its category
func (r ConversionRequest) MarshalJSON() ([]byte, error) {
	fromKey, toKey := r.Category.SelectorKeys()

	value := r.Value
	if f, ok := value.(float64); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
		// JSON has no NaN/Infinity; the service receives null and rejects it itself
		value = nil
	}

	return json.Marshal(map[string]any{
		"value": value,
		fromKey: r.From,
		toKey:   r.To,
	})
}

// ConversionResponse is the body returned by every conversion endpoint
type ConversionResponse struct {
	Success bool            `json:"success"`
	Result  json.RawMessage `json:"result,omitempty"`
	From    string          `json:"from,omitempty"`
	To      string          `json:"to,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// ResultText renders the result for display: strings verbatim, numbers in shortest form
func (r *ConversionResponse) ResultText() string {
	raw := bytes.TrimSpace(r.Result)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
		return string(raw)
	}

	if f, err := strconv.ParseFloat(string(raw), 64); err == nil {
		return FormatNumber(f)
	}

	return string(raw)
}

// Summary returns the success line "{from} = {to}"
func (r *ConversionResponse) Summary() string {
	return r.From + " = " + r.To
}

// ErrorText returns the server-supplied error or the generic fallback
func (r *ConversionResponse) ErrorText() string {
	if r.Error == "" {
		return FallbackConversionError
	}
	return r.Error
}

// FormatNumber formats a float the way the page displayed numbers:
// integers without a fraction, exponent form for very large or very small magnitudes.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		// Go pads the exponent to two digits
		s = strings.Replace(s, "e-0", "e-", 1)
		s = strings.Replace(s, "e+0", "e+", 1)
		return s
	}

	return strconv.FormatFloat(f, 'f', -1, 64)
}

// HealthStatus is the body returned by GET /health
type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthyStatus is the status value reported by a working service
const HealthyStatus = "healthy"

// IsHealthy returns true if the service reported itself healthy
func (h *HealthStatus) IsHealthy() bool {
	return h.Status == HealthyStatus
}

// AppInfo is the body returned by GET /api/info
type AppInfo struct {
	Name        string   `json:"name"`
	Version     string   `json:"version"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
}
