package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Veraticus/careersync/internal/common"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	v.Set("api.url", "http://localhost:5000/api/v1")

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:5000/api/v1", cfg.API.URL)
	assert.Equal(t, time.Duration(0), cfg.API.Timeout)
	assert.Equal(t, []string{".pdf"}, cfg.Upload.Accept)
	assert.Equal(t, ".", cfg.Export.Dir)
	assert.Equal(t, "default", cfg.TUI.Theme)
	assert.Equal(t, ":3000", cfg.Web.Addr)
	assert.Equal(t, DefaultMaxUploadBytes, cfg.Web.MaxUploadBytes)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	require.NoError(t, cfg.Validate())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("CAREERSYNC_API_URL", "https://analysis.example.com")
	t.Setenv("CAREERSYNC_API_TIMEOUT", "45s")
	t.Setenv("CAREERSYNC_UPLOAD_ACCEPT", "pdf, .DOCX")

	v := viper.New()
	BindEnv(v)

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "https://analysis.example.com", cfg.API.URL)
	assert.Equal(t, 45*time.Second, cfg.API.Timeout)
	assert.Equal(t, []string{".pdf", ".docx"}, cfg.Upload.Accept)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`api:
  url: http://127.0.0.1:5000
export:
  dir: ` + dir + `
tui:
  theme: catppuccin-mocha
`)
	require.NoError(t, os.WriteFile(path, content, 0600))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:5000", cfg.API.URL)
	assert.Equal(t, dir, cfg.Export.Dir)
	assert.Equal(t, "catppuccin-mocha", cfg.TUI.Theme)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			API: APIConfig{URL: "http://localhost:5000"},
			Web: WebConfig{MaxUploadBytes: DefaultMaxUploadBytes},
		}
	}

	tests := []struct {
		mutate  func(*Config)
		wantErr error
		name    string
	}{
		{
			name:   "valid",
			mutate: func(*Config) {},
		},
		{
			name:    "missing url",
			mutate:  func(c *Config) { c.API.URL = "" },
			wantErr: common.ErrMissingConfig,
		},
		{
			name:    "relative url",
			mutate:  func(c *Config) { c.API.URL = "/analyze" },
			wantErr: common.ErrInvalidConfig,
		},
		{
			name:    "negative timeout",
			mutate:  func(c *Config) { c.API.Timeout = -time.Second },
			wantErr: common.ErrInvalidConfig,
		},
		{
			name:    "zero upload limit",
			mutate:  func(c *Config) { c.Web.MaxUploadBytes = 0 },
			wantErr: common.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("CAREERSYNC_TEST_DIR", "/tmp/exports")

	assert.Equal(t, "", ExpandPath(""))
	assert.Equal(t, home, ExpandPath("~"))
	assert.Equal(t, filepath.Join(home, "reports"), ExpandPath("~/reports"))
	assert.Equal(t, "/tmp/exports/out", ExpandPath("$CAREERSYNC_TEST_DIR/out"))
}
