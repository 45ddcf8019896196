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

package core

import (
	"fmt"
	"math"
)

// ValidateTokens checks that both token sequences are present.
// An empty, non-nil slice is a valid empty document.
func ValidateTokens(a, b []string) error {
	if a == nil {
		return fmt.Errorf("%w: %w: first sequence", ErrInvalidType, ErrNilInput)
	}
	if b == nil {
		return fmt.Errorf("%w: %w: second sequence", ErrInvalidType, ErrNilInput)
	}
	return nil
}

// ValidateEqualLength checks that two strings contain the same number of runes.
func ValidateEqualLength(a, b string) error {
	la, lb := len([]rune(a)), len([]rune(b))
	if la != lb {
		return fmt.Errorf("%w: %w: %d != %d", ErrInvalidValue, ErrLengthMismatch, la, lb)
	}
	return nil
}

// ValidateNonNegative checks a cost or weight parameter.
func ValidateNonNegative(name string, v float64) error {
	if math.IsNaN(v) || v < 0 {
		return fmt.Errorf("%w: %s must be non-negative, got %v", ErrInvalidValue, name, v)
	}
	return nil
}

// ValidateUnitInterval checks that a parameter such as a threshold lies in [0, 1].
func ValidateUnitInterval(name string, v float64) error {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return fmt.Errorf("%w: %s must be in [0, 1], got %v", ErrInvalidValue, name, v)
	}
	return nil
}

// ValidateSimilarity checks a score returned by an injected similarity function.
func ValidateSimilarity(v float64) error {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return fmt.Errorf("%w: %w: got %v", ErrDomain, ErrSimilarityOutOfRange, v)
	}
	return nil
}
