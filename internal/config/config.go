// Copyright (c) 2026 WSO2 LLC. (https://www.wso2.com).
//
// WSO2 LLC. licenses this file to you under the Apache License,
// Version 2.0 (the "License"); you may not use this file except
// in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

// Package config provides configuration management for the QR composer.
// Values come from defaults, an optional YAML file, an optional .env file and
// environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds application configuration.
type Config struct {
	OutputDir string `yaml:"output_dir"`
	Filename  string `yaml:"filename"`

	Port            string   `yaml:"port"`
	ReadTimeout     Duration `yaml:"read_timeout"`
	WriteTimeout    Duration `yaml:"write_timeout"`
	ShutdownTimeout Duration `yaml:"shutdown_timeout"`
	MaxBodySize     int64    `yaml:"max_body_size"`
	MaxLogoSize     int64    `yaml:"max_logo_size"`

	LogEnv   string `yaml:"log_env"`
	LogLevel string `yaml:"log_level"`
}

// Duration wraps time.Duration so YAML files can use strings like "5s".
type Duration struct {
	time.Duration
}

// UnmarshalYAML implements the yaml.Unmarshaler interface for Duration.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	d.Duration = parsed
	return nil
}

// MarshalYAML implements the yaml.Marshaler interface for Duration.
func (d Duration) MarshalYAML() (interface{}, error) {
	return d.Duration.String(), nil
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		OutputDir:       "output",
		Filename:        "qrcode.png",
		Port:            "8080",
		ReadTimeout:     Duration{5 * time.Second},
		WriteTimeout:    Duration{10 * time.Second},
		ShutdownTimeout: Duration{5 * time.Second},
		MaxBodySize:     4 << 20,
		MaxLogoSize:     2 << 20,
		LogEnv:          "dev",
		LogLevel:        "info",
	}
}

// LoadConfig builds the configuration. path names an optional YAML file; an
// empty path or a file that does not exist leaves the defaults in place.
// A .env file in the working directory is loaded into the environment when
// present, without overriding variables that are already set.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("reading config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config file: %w", err)
			}
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env file: %w", err)
	}

	applyEnv(cfg)
	return cfg, nil
}

// applyEnv overrides cfg with environment variables.
func applyEnv(cfg *Config) {
	cfg.OutputDir = getEnv("QR_OUTPUT_DIR", cfg.OutputDir)
	cfg.Filename = getEnv("QR_FILENAME", cfg.Filename)
	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.ReadTimeout.Duration = getEnvDuration("READ_TIMEOUT", cfg.ReadTimeout.Duration)
	cfg.WriteTimeout.Duration = getEnvDuration("WRITE_TIMEOUT", cfg.WriteTimeout.Duration)
	cfg.ShutdownTimeout.Duration = getEnvDuration("SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout.Duration)
	cfg.MaxBodySize = getEnvInt64("MAX_BODY_SIZE", cfg.MaxBodySize)
	cfg.MaxLogoSize = getEnvInt64("MAX_LOGO_SIZE", cfg.MaxLogoSize)
	cfg.LogEnv = getEnv("LOG_ENV", cfg.LogEnv)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
}

// getEnv retrieves a string environment variable or returns fallback if not set.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvDuration retrieves a duration environment variable or returns fallback.
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

// getEnvInt64 retrieves an int64 environment variable or returns fallback (only accepts positive values).
func getEnvInt64(key string, fallback int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		if i, err := strconv.ParseInt(value, 10, 64); err == nil && i > 0 {
			return i
		}
	}
	return fallback
}
