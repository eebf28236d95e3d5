package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"inputguard/pkg/check"
	"inputguard/pkg/logger"
	"inputguard/pkg/objectid"
)

type Config struct {
	Port      string
	LogLevel  string
	LogFormat string

	RequestTimeout time.Duration
	MaxRequestSize int

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	IDCodec         string
	ImageExtensions []string
	MinURLLength    int

	Log *logger.Logger
}

// Load reads the configuration from the environment and exits the process
// when it does not validate.
func Load(serviceName string) *Config {
	cfg := FromEnv()
	cfg.Log = logger.New(logger.Config{
		Level:     cfg.LogLevel,
		Format:    cfg.LogFormat,
		AddSource: true,
		Service:   serviceName,
	})

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal(err.Error())
	}
	cfg.LogConfiguration()
	return cfg
}

// FromEnv reads the configuration without validating it or building a logger.
func FromEnv() *Config {
	return &Config{
		Port:      getEnvStr(EnvPort, DefaultPort),
		LogLevel:  getEnvStr(EnvLogLevel, DefaultLogLevel),
		LogFormat: getEnvStr(EnvLogFormat, DefaultLogFormat),

		RequestTimeout: getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),
		MaxRequestSize: getEnvNum(EnvMaxRequestSize, DefaultMaxRequestSize),

		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),

		IDCodec:         getEnvStr(EnvIDCodec, DefaultIDCodec),
		ImageExtensions: getEnvList(EnvImageExtensions, DefaultImageExtensions),
		MinURLLength:    getEnvNum(EnvMinURLLength, DefaultMinURLLength),
	}
}

func (cfg *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}

	if cfg.RequestTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("RequestTimeout must be positive, got: %s", cfg.RequestTimeout))
	}
	if cfg.ReadTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("ReadTimeout must be positive, got: %s", cfg.ReadTimeout))
	}
	if cfg.WriteTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("WriteTimeout must be positive, got: %s", cfg.WriteTimeout))
	}
	if cfg.IdleTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("IdleTimeout must be positive, got: %s", cfg.IdleTimeout))
	}
	if cfg.ShutdownTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("ShutdownTimeout must be positive, got: %s", cfg.ShutdownTimeout))
	}
	if cfg.MaxRequestSize <= 0 {
		errors = append(errors, fmt.Sprintf("MaxRequestSize must be positive, got: %d", cfg.MaxRequestSize))
	}

	if _, err := objectid.ByName(cfg.IDCodec); err != nil {
		errors = append(errors, fmt.Sprintf("IDCodec is invalid: %v", err))
	}
	if len(cfg.ImageExtensions) == 0 {
		errors = append(errors, "ImageExtensions cannot be empty")
	}
	for _, ext := range cfg.ImageExtensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			errors = append(errors, fmt.Sprintf("ImageExtensions entries must look like '.png', got: %q", ext))
		}
	}
	if cfg.MinURLLength < 0 {
		errors = append(errors, fmt.Sprintf("MinURLLength cannot be negative, got: %d", cfg.MinURLLength))
	}

	if len(errors) > 0 {
		errMsg := "Configuration validation failed:\n"
		for i, err := range errors {
			errMsg += fmt.Sprintf("  %d. %s\n", i+1, err)
		}
		return fmt.Errorf("%s", errMsg)
	}

	return nil
}

// Checker builds the input checker described by the configuration.
func (cfg *Config) Checker() (*check.Checker, error) {
	codec, err := objectid.ByName(cfg.IDCodec)
	if err != nil {
		return nil, err
	}
	return check.New(
		check.WithCodec(codec),
		check.WithImageExtensions(cfg.ImageExtensions...),
		check.WithMinURLLength(cfg.MinURLLength),
	), nil
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded successfully",
		"port", cfg.Port,
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
		"request_timeout", cfg.RequestTimeout,
		"max_request_size", cfg.MaxRequestSize,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"idle_timeout", cfg.IdleTimeout,
		"shutdown_timeout", cfg.ShutdownTimeout,
		"id_codec", cfg.IDCodec,
		"image_extensions", cfg.ImageExtensions,
		"min_url_length", cfg.MinURLLength,
	)
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return append([]string(nil), fallback...)
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
