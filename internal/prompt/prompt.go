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

// Package prompt collects QR code input interactively.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	dataPrompt = "Enter the data to encode in the QR code: "
	logoPrompt = "Enter the path to the logo image (or press Enter to skip): "
)

// ErrNoInput is returned when the input ends before the data line is read.
var ErrNoInput = errors.New("prompt: no input")

// Answers holds the values entered by the user.
type Answers struct {
	Data     string
	LogoPath string
}

// Collect asks for the data to encode and an optional logo path. The data line
// is kept as typed apart from its line ending; the logo path is trimmed and an
// empty answer means no logo.
func Collect(in io.Reader, out io.Writer) (Answers, error) {
	r := bufio.NewReader(in)

	data, err := ask(r, out, dataPrompt)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Answers{}, ErrNoInput
		}
		return Answers{}, err
	}

	logo, err := ask(r, out, logoPrompt)
	if err != nil && !errors.Is(err, io.EOF) {
		return Answers{}, err
	}

	return Answers{Data: data, LogoPath: strings.TrimSpace(logo)}, nil
}

// ask writes the prompt and reads one line. io.EOF is returned only when
// nothing was read.
func ask(r *bufio.Reader, out io.Writer, prompt string) (string, error) {
	if _, err := fmt.Fprint(out, prompt); err != nil {
		return "", fmt.Errorf("writing prompt: %w", err)
	}

	line, err := r.ReadString('\n')
	switch {
	case err == nil:
	case errors.Is(err, io.EOF):
		if line == "" {
			return "", io.EOF
		}
	default:
		return "", fmt.Errorf("reading input: %w", err)
	}

	return strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"), nil
}
