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
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/skip2/go-qrcode"
)

// Encode builds the QR matrix for data. The symbol version starts at Version and
// grows when the content needs more capacity.
func Encode(data string) (*qrcode.QRCode, error) {
	q, err := qrcode.New(data, Level)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
	}

	if q.VersionNumber < Version {
		q, err = qrcode.NewWithForcedVersion(data, Version, Level)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
		}
	}

	// The quiet zone is drawn by Rasterize so its width follows Border.
	q.DisableBorder = true
	return q, nil
}

// Rasterize draws the matrix black on white, BoxSize pixels per module with a
// Border module quiet zone on every side.
func Rasterize(q *qrcode.QRCode) *image.NRGBA {
	bitmap := q.Bitmap()
	side := (len(bitmap) + 2*Border) * BoxSize

	img := imaging.New(side, side, color.White)
	black := color.NRGBA{A: 0xff}

	for row, modules := range bitmap {
		for col, dark := range modules {
			if !dark {
				continue
			}
			x0 := (col + Border) * BoxSize
			y0 := (row + Border) * BoxSize
			for y := y0; y < y0+BoxSize; y++ {
				for x := x0; x < x0+BoxSize; x++ {
					img.SetNRGBA(x, y, black)
				}
			}
		}
	}

	return img
}
