package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPort           = "8080"
	DefaultMaxSourceBytes = 1 << 20
	DefaultLogLevel       = "info"
	DefaultEnvPath        = ".env"
)

type Config struct {
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
	Check  CheckConfig  `yaml:"check"`
}

type ServerConfig struct {
	Port           string   `yaml:"port"`
	UseHTTP2       bool     `yaml:"use_http2"`
	CorsOrigins    []string `yaml:"cors_origins"`
	MaxSourceBytes int64    `yaml:"max_source_bytes"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
	File  string `yaml:"file"`
}

type CheckConfig struct {
	Extensions []string `yaml:"extensions"`
}

// Load reads the YAML file at path (skipped when path is empty), overlays the
// environment and validates the result. A .env file is loaded first from
// ENV_PATH or DefaultEnvPath; a missing .env file is not an error.
func Load(path string) (*Config, error) {
	loadDotEnv()

	cfg := &Config{}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open config file: %w", err)
		}
		defer f.Close()
		if cfg, err = Decode(f); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(os.Getenv); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode parses a YAML config without applying environment or defaults.
func Decode(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config YAML: %w", err)
	}
	return &cfg, nil
}

func loadDotEnv() {
	envPath := os.Getenv("ENV_PATH")
	if envPath == "" {
		envPath = DefaultEnvPath
	}
	if err := godotenv.Load(envPath); err != nil {
		slog.Debug("Skipping .env ...", "path", envPath, "error", err)
	}
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if v := getenv("C1_PORT"); v != "" {
		c.Server.Port = v
	}
	if v := getenv("C1_CORS_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		c.Server.CorsOrigins = origins
	}
	if v := getenv("C1_MAX_SOURCE_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("C1_MAX_SOURCE_BYTES: %w", err)
		}
		c.Server.MaxSourceBytes = n
	}
	if v := getenv("C1_USE_HTTP2"); v != "" {
		c.Server.UseHTTP2 = v == "true"
	}
	if v := getenv("C1_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := getenv("C1_LOG_JSON"); v != "" {
		c.Log.JSON = v == "true"
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = DefaultPort
	}
	if len(c.Server.CorsOrigins) == 0 {
		c.Server.CorsOrigins = []string{"*"}
	}
	if c.Server.MaxSourceBytes == 0 {
		c.Server.MaxSourceBytes = DefaultMaxSourceBytes
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if len(c.Check.Extensions) == 0 {
		c.Check.Extensions = []string{".c1"}
	}
}

func (c *Config) Validate() error {
	if err := validatePort(c.Server.Port); err != nil {
		return fmt.Errorf("invalid port: %w", err)
	}
	if c.Server.MaxSourceBytes <= 0 {
		return fmt.Errorf("max_source_bytes must be positive, got %d", c.Server.MaxSourceBytes)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	for _, ext := range c.Check.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("extension %q must start with '.'", ext)
		}
	}
	return nil
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)
	if err != nil {
		return errors.New("port must be a number")
	}
	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}
	return nil
}
