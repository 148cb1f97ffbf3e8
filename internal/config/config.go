// Package config loads service configuration from defaults, an optional YAML
// file, a .env file and the process environment, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Environment variable names.
const (
	EnvConfigFile     = "CONFIG_FILE"
	EnvHost           = "HOST"
	EnvPort           = "PORT"
	EnvAllowedOrigins = "CORS_ALLOWED_ORIGINS"
	EnvCORSDebug      = "CORS_DEBUG"
	EnvLogLevel       = "LOG_LEVEL"
)

// Config holds the service configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	CORS    CORSConfig    `yaml:"cors"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig controls where the HTTP server listens.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, s.Port)
}

// CORSConfig holds the cross-origin allow-list.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
	Debug          bool     `yaml:"debug"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when nothing else is provided.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: "8000",
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost:5173",
			},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadDotEnv loads variables from the given files (".env" when none are given)
// into the process environment. Variables that are already set win. Missing
// files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("config: load %s: %w", f, err)
		}
	}
	return nil
}

// Load builds the configuration from defaults, the YAML file at path (skipped
// when path is empty or the file does not exist) and environment overrides,
// then validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := readFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func readFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvHost); ok && v != "" {
		cfg.Server.Host = v
	}
	if v, ok := lookup(EnvPort); ok && v != "" {
		cfg.Server.Port = v
	}
	if v, ok := lookup(EnvAllowedOrigins); ok && v != "" {
		cfg.CORS.AllowedOrigins = splitList(v)
	}
	if v, ok := lookup(EnvCORSDebug); ok && v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvCORSDebug, err)
		}
		cfg.CORS.Debug = debug
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.Logging.Level = v
	}
	return nil
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	port, err := strconv.Atoi(c.Server.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("config: invalid port %q", c.Server.Port)
	}
	if len(c.CORS.AllowedOrigins) == 0 {
		return errors.New("config: at least one allowed origin is required")
	}
	for _, origin := range c.CORS.AllowedOrigins {
		if err := validateOrigin(origin); err != nil {
			return err
		}
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("config: log level: %w", err)
	}
	return nil
}

// validateOrigin accepts serialized origins only: scheme://host[:port].
// Wildcards are refused since responses allow credentials.
func validateOrigin(origin string) error {
	if strings.Contains(origin, "*") {
		return fmt.Errorf("config: wildcard origin %q not allowed with credentials", origin)
	}
	u, err := url.Parse(origin)
	if err != nil {
		return fmt.Errorf("config: origin %q: %w", origin, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("config: origin %q must use http or https", origin)
	}
	if u.Host == "" || u.Path != "" || u.RawQuery != "" || u.Fragment != "" || u.User != nil {
		return fmt.Errorf("config: origin %q must be scheme://host[:port]", origin)
	}
	return nil
}
