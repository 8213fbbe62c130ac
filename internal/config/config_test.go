package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{
		"job_url": "https://example.com/jobs/123",
		"api_key": "test-key",
		"port": 9090,
		"use_browser": true
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/jobs/123", cfg.JobURL)
	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.UseBrowser)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o644))
	_, err = LoadConfig(bad)
	assert.Error(t, err)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("DATABASE_URL", "postgres://localhost/scans")
	t.Setenv("PORT", "3001")
	t.Setenv("USE_BROWSER", "true")
	t.Setenv("MAX_UPLOAD_BYTES", "1048576")

	cfg := FromEnv()
	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, "postgres://localhost/scans", cfg.DatabaseURL)
	assert.Equal(t, 3001, cfg.Port)
	assert.True(t, cfg.UseBrowser)
	assert.Equal(t, int64(1048576), cfg.MaxUploadBytes)
}

func TestFromEnvMissing(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("USE_BROWSER", "")

	cfg := FromEnv()
	assert.Equal(t, 0, cfg.Port)
	assert.False(t, cfg.UseBrowser)
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	jobPath := filepath.Join(dir, "job.txt")
	require.NoError(t, os.WriteFile(jobPath, []byte("job posting"), 0o644))

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"empty config", Config{}, false},
		{"valid job file", Config{Job: jobPath}, false},
		{"job and job_url exclusive", Config{Job: jobPath, JobURL: "https://example.com"}, true},
		{"missing resume file", Config{Resume: filepath.Join(dir, "nope.pdf")}, true},
		{"missing job file", Config{Job: filepath.Join(dir, "nope.txt")}, true},
		{"port out of range", Config{Port: 70000}, true},
		{"negative upload limit", Config{MaxUploadBytes: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{JobURL: "https://example.com/jobs/1"}
	defaults := Config{
		JobURL:      "https://fallback.example.com",
		APIKey:      "default-key",
		DatabaseURL: "postgres://localhost/scans",
	}

	merged := cfg.MergeWithDefaults(defaults)
	assert.Equal(t, "https://example.com/jobs/1", merged.JobURL)
	assert.Equal(t, "default-key", merged.APIKey)
	assert.Equal(t, "postgres://localhost/scans", merged.DatabaseURL)
	assert.Equal(t, DefaultPort, merged.Port)
	assert.Equal(t, int64(DefaultMaxUploadBytes), merged.MaxUploadBytes)
}
