package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Default values
const (
	DefaultServerURL      = "http://127.0.0.1:5000"
	DefaultLanguage       = "system"
	DefaultRequestTimeout = 30 * time.Second
	DefaultMessageReset   = 5 * time.Second
	DefaultLogLevel       = "info"
)

// Options is the resolved runtime configuration
type Options struct {
	ServerURL      string
	Language       string
	RequestTimeout time.Duration
	MessageReset   time.Duration
	LogLevel       string
	HealthCheck    bool
}

// File mirrors the YAML config file. Pointer fields distinguish "unset" from zero.
type File struct {
	ServerURL      string         `yaml:"server_url"`
	Language       string         `yaml:"language"`
	RequestTimeout *time.Duration `yaml:"request_timeout"`
	MessageReset   *time.Duration `yaml:"message_reset"`
	LogLevel       string         `yaml:"log_level"`
	HealthCheck    *bool          `yaml:"health_check"`
}

// Defaults returns the built-in configuration
func Defaults() Options {
	return Options{
		ServerURL:      DefaultServerURL,
		Language:       DefaultLanguage,
		RequestTimeout: DefaultRequestTimeout,
		MessageReset:   DefaultMessageReset,
		LogLevel:       DefaultLogLevel,
		HealthCheck:    true,
	}
}

// LoadFile reads a YAML config file. Unknown keys are rejected.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return ParseFile(data)
}

// ParseFile decodes YAML config content
func ParseFile(data []byte) (*File, error) {
	var f File
	if len(bytes.TrimSpace(data)) == 0 {
		return &f, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		// A file holding only comments has no document
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &f, nil
}

// Apply overlays the values set in f onto o
func (o *Options) Apply(f *File) {
	if f == nil {
		return
	}
	if f.ServerURL != "" {
		o.ServerURL = f.ServerURL
	}
	if f.Language != "" {
		o.Language = f.Language
	}
	if f.RequestTimeout != nil {
		o.RequestTimeout = *f.RequestTimeout
	}
	if f.MessageReset != nil {
		o.MessageReset = *f.MessageReset
	}
	if f.LogLevel != "" {
		o.LogLevel = f.LogLevel
	}
	if f.HealthCheck != nil {
		o.HealthCheck = *f.HealthCheck
	}
}

// Validate checks the server URL and durations
func (o *Options) Validate() error {
	if err := ValidateServerURL(o.ServerURL); err != nil {
		return err
	}
	if o.RequestTimeout <= 0 {
		return errors.New("request timeout must be positive")
	}
	if o.MessageReset <= 0 {
		return errors.New("message reset delay must be positive")
	}
	return nil
}

// ValidateServerURL accepts absolute http and https URLs with a host
func ValidateServerURL(raw string) error {
	if raw == "" {
		return errors.New("server URL is required")
	}

	parsedURL, err := url.Parse(raw)
	if err != nil {
		return err
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("URL must start with http:// or https://")
	}
	if parsedURL.Host == "" {
		return fmt.Errorf("URL must include a host")
	}

	return nil
}
