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

// Package qr encodes text into QR code images and optionally composites a logo
// at the center of the symbol.
package qr

import "github.com/skip2/go-qrcode"

// Fixed rendering parameters. Every image produced by this package uses them.
const (
	// Version is the smallest symbol version used. Content that does not fit
	// moves up to the next version that holds it.
	Version = 5

	// Level is the recovery level, restoring up to 30% of the codewords.
	// A logo covering the center consumes part of that budget.
	Level = qrcode.Highest

	// BoxSize is the width in pixels of a single module.
	BoxSize = 10

	// Border is the quiet zone width in modules.
	Border = 4

	// LogoRatio is the ratio of the image width to the logo side.
	LogoRatio = 4
)

// Default request values.
const (
	DefaultOutputDir = "output"
	DefaultFilename  = "qrcode.png"
)
