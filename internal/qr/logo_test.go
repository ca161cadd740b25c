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
	"bytes"
	"errors"
	"image"
	"image/color"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
)

func TestOpenLogo(t *testing.T) {
	dir := t.TempDir()
	path := writeLogo(t, dir, 20, color.White)

	logo, found, err := OpenLogo(path)
	if err != nil || !found {
		t.Fatalf("OpenLogo() = found %v, error %v", found, err)
	}
	if logo.Bounds().Dx() != 20 {
		t.Errorf("width = %d, want 20", logo.Bounds().Dx())
	}

	logo, found, err = OpenLogo(filepath.Join(dir, "nope.png"))
	if err != nil || found || logo != nil {
		t.Errorf("OpenLogo(missing) = %v, %v, %v", logo, found, err)
	}
}

func TestDecodeLogo(t *testing.T) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, imaging.New(8, 8, color.Black), imaging.JPEG); err != nil {
		t.Fatal(err)
	}
	if _, err := DecodeLogo(&buf); err != nil {
		t.Errorf("DecodeLogo() error = %v", err)
	}
	if _, err := DecodeLogo(strings.NewReader("garbage")); !errors.Is(err, ErrIO) {
		t.Errorf("DecodeLogo(garbage) error = %v, want ErrIO", err)
	}
}

func TestLogoBounds(t *testing.T) {
	tests := []struct {
		bounds image.Rectangle
		want   image.Rectangle
	}{
		{image.Rect(0, 0, 450, 450), image.Rect(169, 169, 281, 281)},
		{image.Rect(0, 0, 400, 400), image.Rect(150, 150, 250, 250)},
		{image.Rect(0, 0, 3, 3), image.Rect(1, 1, 1, 1)},
	}
	for _, tt := range tests {
		if got := LogoBounds(tt.bounds); got != tt.want {
			t.Errorf("LogoBounds(%v) = %v, want %v", tt.bounds, got, tt.want)
		}
	}
}

func TestPlaceLogoAlpha(t *testing.T) {
	base := imaging.New(400, 400, color.White)

	transparent := imaging.New(50, 50, color.NRGBA{R: 0xff})
	out := PlaceLogo(base, transparent)
	if !samePixels(out, base, image.Rectangle{}) {
		t.Error("fully transparent logo changed the image")
	}

	opaque := imaging.New(30, 70, color.NRGBA{G: 0xff, A: 0xff})
	out = PlaceLogo(base, opaque)
	area := LogoBounds(base.Bounds())
	for _, p := range []image.Point{area.Min, area.Max.Sub(image.Pt(1, 1))} {
		if c := out.NRGBAAt(p.X, p.Y); c.G < 0xf0 || c.R > 0x10 {
			t.Errorf("pixel %v = %v, want green", p, c)
		}
	}
	outside := area.Min.Sub(image.Pt(1, 1))
	if c := out.NRGBAAt(outside.X, outside.Y); c != (color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}) {
		t.Errorf("pixel %v = %v, want white", outside, c)
	}
}
