package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/Veraticus/careersync/internal/common"
	"github.com/spf13/viper"
)

// DefaultMaxUploadBytes matches the upload limit of the analysis service.
const DefaultMaxUploadBytes = 16 * 1024 * 1024

// Config holds the resolved application configuration.
type Config struct {
	API     APIConfig
	Upload  UploadConfig
	Export  ExportConfig
	TUI     TUIConfig
	Web     WebConfig
	Logging LoggingConfig
}

// APIConfig describes the remote analysis service.
type APIConfig struct {
	URL string
	// Timeout bounds a single request. Zero leaves it to the caller's context.
	Timeout time.Duration
}

// UploadConfig holds file selection hints.
type UploadConfig struct {
	// Accept lists the file extensions offered by file pickers.
	Accept []string
}

// ExportConfig controls where downloaded analyses are written.
type ExportConfig struct {
	Dir string
}

// TUIConfig holds terminal UI settings.
type TUIConfig struct {
	Theme   string
	LogFile string
}

// WebConfig holds browser front-end settings.
type WebConfig struct {
	Addr           string
	MaxUploadBytes int
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string
	Format string
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("api.timeout", time.Duration(0))
	v.SetDefault("upload.accept", []string{".pdf"})
	v.SetDefault("export.dir", ".")
	v.SetDefault("tui.theme", "default")
	v.SetDefault("web.addr", ":3000")
	v.SetDefault("web.max_upload_bytes", DefaultMaxUploadBytes)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// Load resolves the configuration from v.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	cfg := &Config{
		API: APIConfig{
			URL:     strings.TrimSpace(v.GetString("api.url")),
			Timeout: v.GetDuration("api.timeout"),
		},
		Upload: UploadConfig{
			Accept: normalizeExtensions(v.GetStringSlice("upload.accept")),
		},
		Export: ExportConfig{
			Dir: ExpandPath(v.GetString("export.dir")),
		},
		TUI: TUIConfig{
			Theme:   v.GetString("tui.theme"),
			LogFile: ExpandPath(v.GetString("tui.log_file")),
		},
		Web: WebConfig{
			Addr:           v.GetString("web.addr"),
			MaxUploadBytes: v.GetInt("web.max_upload_bytes"),
		},
		Logging: LoggingConfig{
			Level:  v.GetString("logging.level"),
			Format: v.GetString("logging.format"),
		},
	}

	return cfg, nil
}

// Validate checks the values every front-end needs.
func (c *Config) Validate() error {
	if c.API.URL == "" {
		return fmt.Errorf("%w: api.url (set CAREERSYNC_API_URL or api.url in the config file)", common.ErrMissingConfig)
	}

	parsed, err := url.Parse(c.API.URL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("%w: api.url %q is not an absolute URL", common.ErrInvalidConfig, c.API.URL)
	}

	if c.API.Timeout < 0 {
		return fmt.Errorf("%w: api.timeout must not be negative", common.ErrInvalidConfig)
	}

	if c.Web.MaxUploadBytes <= 0 {
		return fmt.Errorf("%w: web.max_upload_bytes must be positive", common.ErrInvalidConfig)
	}

	return nil
}

// normalizeExtensions lowercases extensions and ensures a leading dot.
// Viper may hand back a single comma separated value from the environment.
func normalizeExtensions(raw []string) []string {
	var out []string
	for _, item := range raw {
		for _, ext := range strings.Split(item, ",") {
			ext = strings.ToLower(strings.TrimSpace(ext))
			if ext == "" {
				continue
			}
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			out = append(out, ext)
		}
	}
	return out
}
