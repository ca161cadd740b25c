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

package qr

import (
	"fmt"
	"image"
	"log/slog"
	"path/filepath"
	"unicode/utf8"
)

// Request describes one QR code file to produce.
type Request struct {
	Data      string
	OutputDir string
	Filename  string
	// LogoPath is optional. A path that does not exist renders without a logo.
	LogoPath string
}

// withDefaults fills empty output fields with DefaultOutputDir and DefaultFilename.
func (r Request) withDefaults() Request {
	if r.OutputDir == "" {
		r.OutputDir = DefaultOutputDir
	}
	if r.Filename == "" {
		r.Filename = DefaultFilename
	}
	return r
}

// Path returns the file the request is saved to.
func (r Request) Path() string {
	r = r.withDefaults()
	return filepath.Join(r.OutputDir, r.Filename)
}

// Service composes QR code images.
type Service interface {
	// Render encodes data and draws it, placing logo at the center when it is non-nil.
	Render(data string, logo image.Image) (*image.NRGBA, error)
	// Create renders the request and saves it, returning the written path.
	Create(req Request) (string, error)
}

type service struct {
	logger *slog.Logger
}

// NewService creates a new QR composer.
func NewService(logger *slog.Logger) Service {
	return &service{logger: logger}
}

func (s *service) Render(data string, logo image.Image) (*image.NRGBA, error) {
	s.logger.Debug("Encoding QR code",
		"data", truncateString(data, 32),
		"data_length", len(data),
		"min_version", Version,
	)

	q, err := Encode(data)
	if err != nil {
		s.logger.Warn("QR code encoding failed", "error", err, "data_length", len(data))
		return nil, err
	}

	img := Rasterize(q)
	s.logger.Debug("QR code rasterized",
		"version", q.VersionNumber,
		"image_dimensions", fmt.Sprintf("%dx%d", img.Bounds().Dx(), img.Bounds().Dy()),
	)

	if logo != nil {
		img = PlaceLogo(img, logo)
		area := LogoBounds(img.Bounds())
		s.logger.Debug("Logo placed", "x", area.Min.X, "y", area.Min.Y, "side", area.Dx())
	}

	return img, nil
}

func (s *service) Create(req Request) (string, error) {
	req = req.withDefaults()
	path := req.Path()

	if err := EnsureDir(req.OutputDir); err != nil {
		s.logger.Error("Failed to create output directory", "error", err, "dir", req.OutputDir)
		return "", err
	}

	var logo image.Image
	if req.LogoPath != "" {
		l, found, err := OpenLogo(req.LogoPath)
		if err != nil {
			s.logger.Error("Failed to read logo", "error", err, "logo", req.LogoPath)
			return "", err
		}
		if !found {
			s.logger.Warn("Logo not found, rendering without it", "logo", req.LogoPath)
		}
		logo = l
	}

	img, err := s.Render(req.Data, logo)
	if err != nil {
		return "", err
	}

	if err := Save(img, path); err != nil {
		s.logger.Error("Failed to save QR code", "error", err, "path", path)
		return "", err
	}

	s.logger.Info("QR code saved", "path", path, "logo", logo != nil)
	return path, nil
}

// truncateString truncates a string to maxLen runes for safe logging.
func truncateString(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLen]) + "..."
}
