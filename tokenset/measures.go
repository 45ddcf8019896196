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

// Package tokenset scores token sequences by set overlap.
//
// Duplicate tokens are ignored. Identical sequences score 1, including two
// empty sequences; otherwise a sequence compared with an empty one scores 0.
package tokenset

import (
	"math"

	"github.com/poiesic/strsim/core"
)

// counts holds the set sizes every overlap measure is built from.
type counts struct {
	a, b, common int
}

// overlap validates a and b and reports whether the caller can return early.
func overlap(a, b []string) (c counts, score float64, done bool, err error) {
	if err := core.ValidateTokens(a, b); err != nil {
		return counts{}, 0, true, err
	}
	if core.TokensEqual(a, b) {
		return counts{}, 1, true, nil
	}
	if len(a) == 0 || len(b) == 0 {
		return counts{}, 0, true, nil
	}

	setA := toSet(a)
	setB := toSet(b)
	common := 0
	for tok := range setA {
		if _, ok := setB[tok]; ok {
			common++
		}
	}
	return counts{a: len(setA), b: len(setB), common: common}, 0, false, nil
}

func toSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		set[tok] = struct{}{}
	}
	return set
}

// Jaccard returns |A ∩ B| / |A ∪ B|.
func Jaccard(a, b []string) (float64, error) {
	c, score, done, err := overlap(a, b)
	if done {
		return score, err
	}
	return float64(c.common) / float64(c.a+c.b-c.common), nil
}

// Dice returns 2|A ∩ B| / (|A| + |B|).
func Dice(a, b []string) (float64, error) {
	c, score, done, err := overlap(a, b)
	if done {
		return score, err
	}
	return 2 * float64(c.common) / float64(c.a+c.b), nil
}

// OverlapCoefficient returns |A ∩ B| / min(|A|, |B|).
func OverlapCoefficient(a, b []string) (float64, error) {
	c, score, done, err := overlap(a, b)
	if done {
		return score, err
	}
	return float64(c.common) / float64(min(c.a, c.b)), nil
}

// Cosine returns the Ochiai coefficient |A ∩ B| / sqrt(|A| * |B|).
func Cosine(a, b []string) (float64, error) {
	c, score, done, err := overlap(a, b)
	if done {
		return score, err
	}
	return float64(c.common) / (math.Sqrt(float64(c.a)) * math.Sqrt(float64(c.b))), nil
}

// Tversky is an asymmetric set similarity. Alpha weights tokens only in the
// first sequence and Beta tokens only in the second; alpha = beta = 1 is
// Jaccard and alpha = beta = 0.5 is Dice.
type Tversky struct {
	alpha float64
	beta  float64
}

// NewTversky creates a Tversky index. Both weights must be non-negative.
func NewTversky(alpha, beta float64) (*Tversky, error) {
	if err := core.ValidateNonNegative("alpha", alpha); err != nil {
		return nil, err
	}
	if err := core.ValidateNonNegative("beta", beta); err != nil {
		return nil, err
	}
	return &Tversky{alpha: alpha, beta: beta}, nil
}

// Score returns |A ∩ B| / (|A ∩ B| + alpha|A - B| + beta|B - A|).
func (t *Tversky) Score(a, b []string) (float64, error) {
	c, score, done, err := overlap(a, b)
	if done {
		return score, err
	}
	common := float64(c.common)
	denom := common + t.alpha*float64(c.a-c.common) + t.beta*float64(c.b-c.common)
	if denom == 0 {
		return 0, nil
	}
	return common / denom, nil
}
