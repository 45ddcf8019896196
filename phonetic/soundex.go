// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package phonetic provides sound-alike encodings for English names.
package phonetic

import (
	"fmt"
	"strings"

	"github.com/xrash/smetrics"

	"github.com/poiesic/strsim/core"
)

// Encode returns the four-character Soundex code of s. Characters other
// than ASCII letters are ignored; a string with no letters is rejected.
func Encode(s string) (string, error) {
	letters := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return r
		}
		return -1
	}, s)
	if letters == "" {
		return "", fmt.Errorf("%w: soundex requires at least one ASCII letter, got %q", core.ErrInvalidValue, s)
	}
	return smetrics.Soundex(letters), nil
}

// Soundex returns 1 when a and b share a Soundex code and 0 otherwise.
// Identical strings score 1 without being encoded.
func Soundex(a, b string) (float64, error) {
	if a == b && a != "" {
		return 1, nil
	}
	ca, err := Encode(a)
	if err != nil {
		return 0, err
	}
	cb, err := Encode(b)
	if err != nil {
		return 0, err
	}
	if ca == cb {
		return 1, nil
	}
	return 0, nil
}
