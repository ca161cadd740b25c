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

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wso2-open-operations/common-tools/operations/qr-composer/internal/prompt"
	"github.com/wso2-open-operations/common-tools/operations/qr-composer/internal/qr"
)

type createOptions struct {
	data      string
	logoPath  string
	outputDir string
	filename  string
	verify    bool
}

func (o *createOptions) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&o.data, "data", "d", "", "Text to encode (prompted for when omitted)")
	f.StringVarP(&o.logoPath, "logo", "l", "", "Logo image to place at the center")
	f.StringVarP(&o.outputDir, "output-dir", "o", "", "Directory to save the image in")
	f.StringVarP(&o.filename, "filename", "f", "", "Output file name; the extension selects the format")
	f.BoolVar(&o.verify, "verify", false, "Decode the saved image and check it holds the data")
}

// runCreate builds the request from flags, config and prompts, then writes the image.
func (a *app) runCreate(cmd *cobra.Command, opts createOptions) error {
	req := qr.Request{
		Data:      opts.data,
		LogoPath:  opts.logoPath,
		OutputDir: a.cfg.OutputDir,
		Filename:  a.cfg.Filename,
	}
	if opts.outputDir != "" {
		req.OutputDir = opts.outputDir
	}
	if opts.filename != "" {
		req.Filename = opts.filename
	}

	if !cmd.Flags().Changed("data") {
		answers, err := prompt.Collect(cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return err
		}
		req.Data = answers.Data
		if !cmd.Flags().Changed("logo") {
			req.LogoPath = answers.LogoPath
		}
	}

	path, err := qr.NewService(a.log).Create(req)
	if err != nil {
		return err
	}

	if opts.verify {
		if err := qr.Verify(path, req.Data); err != nil {
			return err
		}
		a.log.Debug("Saved QR code verified", "path", path)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "QR Code saved at: %s\n", path)
	return nil
}
