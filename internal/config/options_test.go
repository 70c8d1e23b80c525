package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	opts := Defaults()

	assert.Equal(t, DefaultServerURL, opts.ServerURL)
	assert.Equal(t, "system", opts.Language)
	assert.Equal(t, 30*time.Second, opts.RequestTimeout)
	assert.Equal(t, 5*time.Second, opts.MessageReset)
	assert.True(t, opts.HealthCheck)
	assert.NoError(t, opts.Validate())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "converter.yaml")
	content := `server_url: https://convert.example.com
language: ru
request_timeout: 10s
message_reset: 2500ms
log_level: debug
health_check: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	f, err := LoadFile(path)
	require.NoError(t, err)

	opts := Defaults()
	opts.Apply(f)

	assert.Equal(t, "https://convert.example.com", opts.ServerURL)
	assert.Equal(t, "ru", opts.Language)
	assert.Equal(t, 10*time.Second, opts.RequestTimeout)
	assert.Equal(t, 2500*time.Millisecond, opts.MessageReset)
	assert.Equal(t, "debug", opts.LogLevel)
	assert.False(t, opts.HealthCheck)
}

func TestApply_PartialFileKeepsDefaults(t *testing.T) {
	f, err := ParseFile([]byte("language: pt\n"))
	require.NoError(t, err)

	opts := Defaults()
	opts.Apply(f)

	assert.Equal(t, "pt", opts.Language)
	assert.Equal(t, DefaultServerURL, opts.ServerURL)
	assert.Equal(t, DefaultRequestTimeout, opts.RequestTimeout)
	assert.True(t, opts.HealthCheck)
}

func TestParseFile_Errors(t *testing.T) {
	_, err := ParseFile([]byte("server: http://x\n"))
	assert.Error(t, err, "unknown keys are rejected")

	_, err = ParseFile([]byte("request_timeout: soon\n"))
	assert.Error(t, err)

	f, err := ParseFile([]byte("  \n"))
	require.NoError(t, err)
	assert.Equal(t, File{}, *f)
}

func TestParseFile_CommentsOnly(t *testing.T) {
	f, err := ParseFile([]byte("# server_url: http://x\n# language: de\n"))
	require.NoError(t, err)
	assert.Equal(t, File{}, *f)

	path := filepath.Join(t.TempDir(), "converter.yaml")
	require.NoError(t, os.WriteFile(path, []byte("---\n# nothing set yet\n"), 0o600))
	f, err = LoadFile(path)
	require.NoError(t, err)

	opts := Defaults()
	opts.Apply(f)
	assert.Equal(t, Defaults(), opts)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Options)
		wantErr bool
	}{
		{"defaults", func(*Options) {}, false},
		{"https", func(o *Options) { o.ServerURL = "https://example.com/base" }, false},
		{"empty url", func(o *Options) { o.ServerURL = "" }, true},
		{"ftp scheme", func(o *Options) { o.ServerURL = "ftp://example.com" }, true},
		{"no host", func(o *Options) { o.ServerURL = "http://" }, true},
		{"zero timeout", func(o *Options) { o.RequestTimeout = 0 }, true},
		{"negative reset", func(o *Options) { o.MessageReset = -time.Second }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Defaults()
			tt.mutate(&opts)
			err := opts.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
