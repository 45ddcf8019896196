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

package sequence

import (
	"fmt"

	"github.com/poiesic/strsim/core"
)

// DefaultPrefixWeight is the Winkler prefix scaling factor.
const DefaultPrefixWeight = 0.1

// maxPrefix is the longest common prefix Winkler's boost considers.
const maxPrefix = 4

// Jaro returns the Jaro similarity of a and b. Identical strings score 1
// and a string compared with an empty string scores 0.
func Jaro(a, b string) float64 {
	if a == b {
		return 1
	}
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)
	if la == 0 || lb == 0 {
		return 0
	}

	window := max(max(la, lb)/2-1, 0)
	matchedA := make([]bool, la)
	matchedB := make([]bool, lb)
	common := 0
	for i, ch := range ra {
		lo := max(i-window, 0)
		hi := min(i+window, lb-1)
		for j := lo; j <= hi; j++ {
			if !matchedB[j] && rb[j] == ch {
				matchedA[i], matchedB[j] = true, true
				common++
				break
			}
		}
	}
	if common == 0 {
		return 0
	}

	// Count matched characters that appear in a different order.
	k, outOfOrder := 0, 0
	for i, matched := range matchedA {
		if !matched {
			continue
		}
		j := k
		for ; j < lb; j++ {
			if matchedB[j] {
				k = j + 1
				break
			}
		}
		if ra[i] != rb[j] {
			outOfOrder++
		}
	}

	m := float64(common)
	t := float64(outOfOrder) / 2
	return (m/float64(la) + m/float64(lb) + (m-t)/m) / 3
}

// JaroWinkler returns the Jaro-Winkler similarity with the default prefix weight.
func JaroWinkler(a, b string) float64 {
	return jaroWinkler(a, b, DefaultPrefixWeight)
}

// NewJaroWinkler returns a Jaro-Winkler measure with a custom prefix weight.
// Weights above 0.25 could push scores past 1 and are rejected.
func NewJaroWinkler(prefixWeight float64) (core.SimFunc, error) {
	if err := core.ValidateNonNegative("prefix weight", prefixWeight); err != nil {
		return nil, err
	}
	if prefixWeight > 1.0/maxPrefix {
		return nil, fmt.Errorf("%w: prefix weight must be at most %v, got %v", core.ErrInvalidValue, 1.0/maxPrefix, prefixWeight)
	}
	return func(a, b string) float64 {
		return jaroWinkler(a, b, prefixWeight)
	}, nil
}

func jaroWinkler(a, b string, prefixWeight float64) float64 {
	score := Jaro(a, b)
	ra, rb := []rune(a), []rune(b)
	limit := min(len(ra), len(rb), maxPrefix)
	prefix := 0
	for prefix < limit && ra[prefix] == rb[prefix] {
		prefix++
	}
	if prefix > 0 {
		score += float64(prefix) * prefixWeight * (1 - score)
	}
	return score
}
