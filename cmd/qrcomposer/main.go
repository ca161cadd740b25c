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

// Package main is the entry point for the QR composer.
// It renders text as a QR code PNG with an optional centered logo, either once
// from the command line or as an HTTP service.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/wso2-open-operations/common-tools/operations/qr-composer/internal/config"
	"github.com/wso2-open-operations/common-tools/operations/qr-composer/internal/logger"
)

// Version information (set via ldflags during build)
var Version = "dev"

// app carries what every command needs after the config is loaded.
type app struct {
	configPath string
	cfg        *config.Config
	log        *slog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	var opts createOptions
	root := &cobra.Command{
		Use:   "qrcomposer",
		Short: "Generate a QR code image with an optional centered logo",
		Long: "Encodes text into a QR code and saves it as an image. Without --data the\n" +
			"text and the logo path are read interactively.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCreate(cmd, opts)
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to a YAML config file")
	opts.bind(root)

	root.AddCommand(newServeCmd(a))
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "qrcomposer %s\n", Version)
		},
	})

	return root
}

// load reads the configuration and builds the logger. Logs go to stderr so
// stdout only carries prompts and results.
func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig(a.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a.cfg = cfg
	a.log = logger.New(cmd.ErrOrStderr(), cfg.LogEnv, cfg.LogLevel)
	a.log.Debug("Configuration loaded",
		"config_file", a.configPath,
		"output_dir", cfg.OutputDir,
		"filename", cfg.Filename,
	)
	return nil
}
