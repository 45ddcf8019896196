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

package hybrid

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/poiesic/strsim/core"
)

// GeneralizedJaccard is a Jaccard index in which tokens need only be similar,
// not identical, to count as shared. The inner similarity must stay in [0, 1].
type GeneralizedJaccard struct {
	sim       core.SimFunc
	threshold float64
}

// NewGeneralizedJaccard creates the measure. It reads WithSimFunc
// (default Jaro) and WithThreshold (default 0.5).
func NewGeneralizedJaccard(opts ...Option) (*GeneralizedJaccard, error) {
	c, err := newConfig(fuzzyDefaults(), opts)
	if err != nil {
		return nil, err
	}
	return &GeneralizedJaccard{sim: c.sim, threshold: c.threshold}, nil
}

type candidate struct {
	a, b  string
	score float64
}

// Score returns sum(matched similarities) / (|A| + |B| - matches) over the
// distinct tokens of a and b. Candidate pairs above the threshold are taken
// greedily from highest similarity down, each token used at most once.
// A similarity outside [0, 1] fails with core.ErrDomain.
func (g *GeneralizedJaccard) Score(a, b []string) (float64, error) {
	if score, done, err := screen(a, b); done {
		return score, err
	}

	setA, setB := countTerms(a).order, countTerms(b).order
	var candidates []candidate
	for _, x := range setA {
		for _, y := range setB {
			score := g.sim(x, y)
			if err := core.ValidateSimilarity(score); err != nil {
				return 0, fmt.Errorf("%w: scoring %q against %q", err, x, y)
			}
			if score > g.threshold {
				candidates = append(candidates, candidate{a: x, b: y, score: score})
			}
		}
	}
	slices.SortStableFunc(candidates, func(p, q candidate) int {
		return cmp.Compare(q.score, p.score)
	})

	usedA := make(map[string]struct{}, len(setA))
	usedB := make(map[string]struct{}, len(setB))
	total, matches := 0.0, 0
	for _, c := range candidates {
		if _, ok := usedA[c.a]; ok {
			continue
		}
		if _, ok := usedB[c.b]; ok {
			continue
		}
		usedA[c.a] = struct{}{}
		usedB[c.b] = struct{}{}
		total += c.score
		matches++
	}
	return total / float64(len(setA)+len(setB)-matches), nil
}
