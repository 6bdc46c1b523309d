// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Defaults applied by MergeWithDefaults.
const (
	DefaultPort           = 8080
	DefaultMaxUploadBytes = 10 << 20
	DefaultLogLevel       = "info"
	DefaultOutputFormat   = "text"
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Analysis
	Taxonomy string `json:"taxonomy,omitempty"`                                    // Path to a replacement taxonomy JSON file
	Format   string `json:"format,omitempty" validate:"omitempty,oneof=text json"` // CLI report format
	Verbose  bool   `json:"verbose,omitempty"`                                     // Print document and top-skill summaries

	// Logging
	LogLevel  string `json:"log_level,omitempty" validate:"omitempty,oneof=trace debug info warn warning error"`
	LogFormat string `json:"log_format,omitempty" validate:"omitempty,oneof=text json"`

	// Server
	Port           int      `json:"port,omitempty" validate:"omitempty,min=1,max=65535"`
	MaxUploadBytes int64    `json:"max_upload_bytes,omitempty" validate:"omitempty,min=1"`
	AllowedFormats []string `json:"allowed_formats,omitempty" validate:"omitempty,dive,oneof=pdf docx html text"` // Upload formats accepted by POST /analyze

	// S3-compatible document storage
	S3Endpoint  string `json:"s3_endpoint,omitempty" validate:"omitempty,url"`
	S3Region    string `json:"s3_region,omitempty"`
	S3AccessKey string `json:"-"` // Environment only
	S3SecretKey string `json:"-"` // Environment only
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Format:         DefaultOutputFormat,
		LogLevel:       DefaultLogLevel,
		LogFormat:      "text",
		Port:           DefaultPort,
		MaxUploadBytes: DefaultMaxUploadBytes,
		AllowedFormats: []string{"pdf"},
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("config error: '%s' failed '%s' (value %v)", jsonName(fe.StructField()), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("config error: %w", err)
	}

	if c.Taxonomy != "" {
		if _, err := os.Stat(c.Taxonomy); os.IsNotExist(err) {
			return fmt.Errorf("config error: taxonomy file not found: %s", c.Taxonomy)
		}
	}

	return nil
}

var jsonNames = map[string]string{
	"Format":         "format",
	"LogLevel":       "log_level",
	"LogFormat":      "log_format",
	"Port":           "port",
	"MaxUploadBytes": "max_upload_bytes",
	"AllowedFormats": "allowed_formats",
	"S3Endpoint":     "s3_endpoint",
}

// jsonName maps a struct field such as "AllowedFormats[1]" to its JSON key.
func jsonName(field string) string {
	base, index, hasIndex := strings.Cut(field, "[")
	name, ok := jsonNames[base]
	if !ok {
		return field
	}
	if hasIndex {
		return name + "[" + index
	}
	return name
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Taxonomy == "" {
		result.Taxonomy = defaults.Taxonomy
	}
	if result.Format == "" {
		result.Format = defaults.Format
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}
	if result.S3Endpoint == "" {
		result.S3Endpoint = defaults.S3Endpoint
	}
	if result.S3Region == "" {
		result.S3Region = defaults.S3Region
	}
	if result.S3AccessKey == "" {
		result.S3AccessKey = defaults.S3AccessKey
	}
	if result.S3SecretKey == "" {
		result.S3SecretKey = defaults.S3SecretKey
	}

	// Numeric fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.MaxUploadBytes == 0 {
		result.MaxUploadBytes = defaults.MaxUploadBytes
	}

	if len(result.AllowedFormats) == 0 {
		result.AllowedFormats = append([]string(nil), defaults.AllowedFormats...)
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// ApplyEnv overrides fields from environment variables:
// PORT, LOG_LEVEL, LOG_FORMAT, RESUME_ANALYZER_TAXONOMY, MAX_UPLOAD_BYTES,
// ALLOWED_FORMATS (comma separated), S3_ENDPOINT, AWS_REGION,
// AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		c.Port = port
	}
	if v := os.Getenv("MAX_UPLOAD_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid MAX_UPLOAD_BYTES %q: %w", v, err)
		}
		c.MaxUploadBytes = n
	}
	if v := os.Getenv("ALLOWED_FORMATS"); v != "" {
		c.AllowedFormats = splitList(v)
	}

	setFromEnv(&c.LogLevel, "LOG_LEVEL")
	setFromEnv(&c.LogFormat, "LOG_FORMAT")
	setFromEnv(&c.Taxonomy, "RESUME_ANALYZER_TAXONOMY")
	setFromEnv(&c.S3Endpoint, "S3_ENDPOINT")
	setFromEnv(&c.S3Region, "AWS_REGION")
	setFromEnv(&c.S3AccessKey, "AWS_ACCESS_KEY_ID")
	setFromEnv(&c.S3SecretKey, "AWS_SECRET_ACCESS_KEY")
	return nil
}

// Resolve builds the effective configuration: the file at path (if any),
// then environment overrides, then defaults for anything still unset.
func Resolve(path string) (Config, error) {
	cfg := &Config{}
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(); err != nil {
		return Config{}, err
	}

	merged := cfg.MergeWithDefaults(Default())
	if err := merged.Validate(); err != nil {
		return Config{}, err
	}
	return merged, nil
}

func setFromEnv(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.ToLower(strings.TrimSpace(part)); part != "" {
			out = append(out, part)
		}
	}
	return out
}
