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

// Package simfunc adapts core.SimFunc values for composition.
package simfunc

import (
	"fmt"
	"math"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/poiesic/strsim/core"
)

// Exact scores 1 for identical strings and 0 otherwise.
var Exact core.SimFunc = core.IdentitySim

type pairKey struct {
	a, b string
}

// Memoize wraps fn with a bounded, concurrency-safe LRU cache keyed by the
// ordered pair. fn must be pure. Useful when an expensive inner measure,
// such as an alignment score, is called repeatedly with the same tokens.
func Memoize(fn core.SimFunc, size int) (core.SimFunc, error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: %w", core.ErrInvalidValue, core.ErrNilSimFunc)
	}
	cache, err := lru.New[pairKey, float64](size)
	if err != nil {
		return nil, fmt.Errorf("%w: cache size %d: %w", core.ErrInvalidValue, size, err)
	}
	return func(a, b string) float64 {
		key := pairKey{a: a, b: b}
		if v, ok := cache.Get(key); ok {
			return v
		}
		v := fn(a, b)
		cache.Add(key, v)
		return v
	}, nil
}

// Scale maps the output of fn linearly from [lo, hi] onto [0, 1], clamping
// values outside the interval. It lets an unbounded score such as
// Needleman-Wunsch feed a measure that requires similarities in [0, 1].
func Scale(fn core.SimFunc, lo, hi float64) (core.SimFunc, error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: %w", core.ErrInvalidValue, core.ErrNilSimFunc)
	}
	if math.IsNaN(lo) || math.IsNaN(hi) || hi <= lo {
		return nil, fmt.Errorf("%w: scale bounds must satisfy lo < hi, got [%v, %v]", core.ErrInvalidValue, lo, hi)
	}
	return func(a, b string) float64 {
		v := (fn(a, b) - lo) / (hi - lo)
		return min(max(v, 0), 1)
	}, nil
}
