package app

import (
	"os"
	"path/filepath"
	"time"

	"github.com/haierkeys/simple-notes-service/pkg/util"

	"github.com/creasty/defaults"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// AppConfig application configuration
type AppConfig struct {
	File     string         `yaml:"-"` // config file path, not serialized
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	App      AppSettings    `yaml:"app"`
	Security SecurityConfig `yaml:"security"`
	Tracer   TracerConfig   `yaml:"tracer"`
}

// LogConfig logging configuration
type LogConfig struct {
	// Level log level, see zapcore.ParseLevel
	Level string `yaml:"level" default:"info"`
	// File log file path, empty logs to stderr only
	File string `yaml:"file" default:"storage/logs/log.log"`
	// Production enables JSON output
	Production bool `yaml:"production" default:"true"`
}

// ServerConfig HTTP server configuration
type ServerConfig struct {
	// RunMode gin run mode
	RunMode string `yaml:"run-mode" default:"release"`
	// HttpPort listen address
	HttpPort string `yaml:"http-port" default:":9000"`
	// ReadTimeout read timeout in seconds
	ReadTimeout int `yaml:"read-timeout" default:"60"`
	// WriteTimeout write timeout in seconds
	WriteTimeout int `yaml:"write-timeout" default:"60"`
}

// SecurityConfig auth configuration
type SecurityConfig struct {
	// AuthTokenKey key used to sign issued tokens
	AuthTokenKey string `yaml:"auth-token-key" default:"simple-notes-Auth-Token"`
	// TokenExpiry token lifetime, formats: 7d, 24h, 30m
	TokenExpiry string `yaml:"token-expiry" default:"7d"`
}

// AppSettings application settings
type AppSettings struct {
	// DefaultContextTimeout request context timeout in seconds
	DefaultContextTimeout int `yaml:"default-context-timeout" default:"60"`
	// Lang client-facing message language, de or en
	Lang string `yaml:"lang" default:"de"`
}

// TracerConfig request tracing configuration
type TracerConfig struct {
	// Enabled toggles the trace id middleware
	Enabled bool `yaml:"enabled" default:"true"`
	// Header trace id header name
	Header string `yaml:"header" default:"X-Trace-ID"`
}

// LoadConfig loads the configuration from a file.
// Returns the config and the resolved absolute file path.
func LoadConfig(f string) (*AppConfig, string, error) {
	realpath, err := filepath.Abs(f)
	if err != nil {
		return nil, "", err
	}
	realpath = filepath.Clean(realpath)

	c := new(AppConfig)
	c.File = realpath

	if err := defaults.Set(c); err != nil {
		return nil, realpath, errors.Wrap(err, "set default config failed")
	}

	file, err := os.ReadFile(realpath)
	if err != nil {
		return nil, realpath, errors.Wrap(err, "read config file failed")
	}

	err = yaml.Unmarshal(file, c)
	if err != nil {
		return nil, realpath, errors.Wrap(err, "parse config file failed")
	}

	// Run defaults again to fill fields present in the YAML but left empty;
	// defaults.Set only fills zero values.
	if err := defaults.Set(c); err != nil {
		return nil, realpath, errors.Wrap(err, "re-set default config failed")
	}

	return c, realpath, nil
}

// Save writes the configuration back to its file.
func (c *AppConfig) Save() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "marshal config failed")
	}

	err = os.WriteFile(c.File, data, 0644)
	if err != nil {
		return errors.Wrap(err, "write config file failed")
	}

	return nil
}

// GetTokenExpiry returns the configured token lifetime.
func (c *AppConfig) GetTokenExpiry() time.Duration {
	if expiry, err := util.ParseDuration(c.Security.TokenExpiry); err == nil {
		return expiry
	}
	return 7 * 24 * time.Hour
}
