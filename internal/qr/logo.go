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
	"errors"
	"fmt"
	"image"
	"io"
	"io/fs"
	"os"

	"github.com/disintegration/imaging"

	// WebP logos are decoded in addition to the formats imaging registers.
	_ "golang.org/x/image/webp"
)

// OpenLogo reads the logo at path. A path that does not exist is not an error:
// found is false and the caller renders without a logo.
func OpenLogo(path string) (logo image.Image, found bool, err error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%w: stat logo %s: %v", ErrIO, path, err)
	}

	logo, err = imaging.Open(path)
	if err != nil {
		return nil, true, fmt.Errorf("%w: open logo %s: %v", ErrIO, path, err)
	}
	return logo, true, nil
}

// DecodeLogo reads a logo from r.
func DecodeLogo(r io.Reader) (image.Image, error) {
	logo, err := imaging.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: decode logo: %v", ErrIO, err)
	}
	return logo, nil
}

// LogoBounds returns the square covered by the logo on an image of the given
// bounds: side width/LogoRatio, centered.
func LogoBounds(bounds image.Rectangle) image.Rectangle {
	w, h := bounds.Dx(), bounds.Dy()
	side := w / LogoRatio
	origin := image.Pt(bounds.Min.X+(w-side)/2, bounds.Min.Y+(h-side)/2)
	return image.Rectangle{Min: origin, Max: origin.Add(image.Pt(side, side))}
}

// PlaceLogo resizes logo to a square and pastes it at the center of img,
// using the logo's alpha channel as the mask. The aspect ratio of the logo is
// not kept.
func PlaceLogo(img *image.NRGBA, logo image.Image) *image.NRGBA {
	area := LogoBounds(img.Bounds())
	if area.Empty() {
		return img
	}
	resized := imaging.Resize(logo, area.Dx(), area.Dy(), imaging.Lanczos)
	return imaging.Overlay(img, resized, area.Min, 1.0)
}
