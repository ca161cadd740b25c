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

// Package http provides the HTTP transport layer for the QR composer.
package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"image"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"

	"github.com/wso2-open-operations/common-tools/operations/qr-composer/internal/qr"
)

type Handler struct {
	svc         qr.Service
	logger      *slog.Logger
	maxBodySize int64
	maxLogoSize int64
}

// NewHandler creates a new HTTP handler for QR code generation.
func NewHandler(svc qr.Service, logger *slog.Logger, maxBodySize, maxLogoSize int64) *Handler {
	return &Handler{
		svc:         svc,
		logger:      logger,
		maxBodySize: maxBodySize,
		maxLogoSize: maxLogoSize,
	}
}

// Generate handles POST /generate requests. The body is either the raw text to
// encode, or a multipart form with a "data" field and an optional "logo" file.
// The response is a PNG image.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	if r.ContentLength > h.maxBodySize {
		h.logger.Warn("Request body too large (ContentLength check)",
			"content_length", r.ContentLength,
			"max_allowed", h.maxBodySize,
			"remote_addr", r.RemoteAddr,
		)
		http.Error(w, "Request body too large", http.StatusRequestEntityTooLarge)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)

	data, logo, status, msg := h.readRequest(r)
	if status != http.StatusOK {
		http.Error(w, msg, status)
		return
	}

	if data == "" {
		h.logger.Warn("Empty data received", "remote_addr", r.RemoteAddr)
		http.Error(w, "Request body is empty", http.StatusBadRequest)
		return
	}

	img, err := h.svc.Render(data, logo)
	if err != nil {
		h.logger.Error("failed to generate QR code",
			"error", err,
			"data_length", len(data),
			"remote_addr", r.RemoteAddr,
		)
		if errors.Is(err, qr.ErrEncoding) {
			http.Error(w, "Data too long to encode", http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := qr.WritePNG(&buf, img); err != nil {
		h.logger.Error("failed to encode PNG", "error", err, "remote_addr", r.RemoteAddr)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.Error("failed to write response",
			"error", err,
			"png_size", buf.Len(),
			"remote_addr", r.RemoteAddr,
		)
		return
	}

	h.logger.Info("QR code request completed successfully",
		"data_length", len(data),
		"logo", logo != nil,
		"output_size", buf.Len(),
		"remote_addr", r.RemoteAddr,
	)
}

// readRequest extracts the text and optional logo. status is http.StatusOK on
// success; otherwise msg describes the failure for the client.
func (h *Handler) readRequest(r *http.Request) (data string, logo image.Image, status int, msg string) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			return "", nil, h.bodyErrorStatus(r, err), "Failed to read request body"
		}
		h.logger.Debug("Request body read successfully", "body_size", len(body))
		return string(body), nil, http.StatusOK, ""
	}

	if err := r.ParseMultipartForm(h.maxBodySize); err != nil {
		return "", nil, h.bodyErrorStatus(r, err), "Failed to parse multipart form"
	}
	data = r.FormValue("data")

	file, header, err := r.FormFile("logo")
	if errors.Is(err, http.ErrMissingFile) {
		return data, nil, http.StatusOK, ""
	}
	if err != nil {
		h.logger.Warn("Invalid logo part", "error", err, "remote_addr", r.RemoteAddr)
		return "", nil, http.StatusBadRequest, "Invalid logo"
	}
	defer file.Close()

	if header.Size > h.maxLogoSize {
		h.logger.Warn("Logo too large",
			"logo_size", header.Size,
			"max_allowed", h.maxLogoSize,
			"remote_addr", r.RemoteAddr,
		)
		return "", nil, http.StatusRequestEntityTooLarge, "Logo too large"
	}

	logo, err = qr.DecodeLogo(file)
	if err != nil {
		h.logger.Warn("Logo could not be decoded", "error", err, "remote_addr", r.RemoteAddr)
		return "", nil, http.StatusBadRequest, "Logo is not a supported image"
	}
	return data, logo, http.StatusOK, ""
}

func (h *Handler) bodyErrorStatus(r *http.Request, err error) int {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		h.logger.Warn("Request body too large",
			"max_allowed", h.maxBodySize,
			"remote_addr", r.RemoteAddr,
		)
		return http.StatusRequestEntityTooLarge
	}
	h.logger.Error("failed to read request body", "error", err, "remote_addr", r.RemoteAddr)
	return http.StatusBadRequest
}

// HealthCheck handles GET /health requests for liveness/readiness probes.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(map[string]string{"status": "ok"}); err != nil {
		h.logger.Error("failed to encode health check response",
			"error", err,
			"remote_addr", r.RemoteAddr,
		)
	}
}
