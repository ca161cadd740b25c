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

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// isolate runs the test in an empty directory with the config variables unset.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	chdir(t, dir)
	for _, key := range []string{
		"QR_OUTPUT_DIR", "QR_FILENAME", "PORT", "READ_TIMEOUT", "WRITE_TIMEOUT",
		"SHUTDOWN_TIMEOUT", "MAX_BODY_SIZE", "MAX_LOGO_SIZE", "LOG_ENV", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	return dir
}

func TestLoadConfigDefaults(t *testing.T) {
	isolate(t)

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.OutputDir != "output" || cfg.Filename != "qrcode.png" {
		t.Errorf("output = %q/%q, want output/qrcode.png", cfg.OutputDir, cfg.Filename)
	}
	if cfg.Port != "8080" || cfg.ShutdownTimeout.Duration != 5*time.Second {
		t.Errorf("server defaults = %+v", cfg)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	dir := isolate(t)

	if _, err := LoadConfig(filepath.Join(dir, "absent.yaml")); err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
}

func TestLoadConfigPrecedence(t *testing.T) {
	dir := isolate(t)

	yamlPath := filepath.Join(dir, "qr.yaml")
	yamlData := "output_dir: from-yaml\nfilename: yaml.png\nread_timeout: 7s\nlog_level: debug\n"
	if err := os.WriteFile(yamlPath, []byte(yamlData), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_ENV=prod\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("QR_FILENAME", "env.png")
	t.Setenv("MAX_BODY_SIZE", "-1")

	cfg, err := LoadConfig(yamlPath)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.OutputDir != "from-yaml" {
		t.Errorf("OutputDir = %q, want from-yaml", cfg.OutputDir)
	}
	if cfg.Filename != "env.png" {
		t.Errorf("Filename = %q, want env.png", cfg.Filename)
	}
	if cfg.ReadTimeout.Duration != 7*time.Second {
		t.Errorf("ReadTimeout = %v, want 7s", cfg.ReadTimeout)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.LogEnv != "prod" {
		t.Errorf("LogEnv = %q, want prod from .env", cfg.LogEnv)
	}
	if cfg.MaxBodySize != Default().MaxBodySize {
		t.Errorf("MaxBodySize = %d, negative value should be ignored", cfg.MaxBodySize)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	dir := isolate(t)

	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("read_timeout: soon\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() accepted an invalid duration")
	}
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() error = %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir(%q) error = %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Errorf("restore Chdir(%q) error = %v", old, err)
		}
	})
}
