package api

// Package api is the HTTP client for the conversion service. It posts
// conversion requests, checks /health, and reads the unit catalog and service
// info. Response bodies are decoded whatever the status code; the caller
// decides what a body means.
