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
	"math"

	"github.com/poiesic/strsim/core"
	"github.com/poiesic/strsim/corpus"
)

// SoftTfIdf extends TF-IDF cosine so that a token of the first sequence also
// matches its most similar token in the second, weighted by that similarity.
type SoftTfIdf struct {
	table     *corpus.Table
	sim       core.SimFunc
	threshold float64
}

// NewSoftTfIdf creates a soft TF-IDF measure. It reads WithCorpus,
// WithSimFunc (default Jaro) and WithThreshold (default 0.5).
func NewSoftTfIdf(opts ...Option) (*SoftTfIdf, error) {
	c, err := newConfig(fuzzyDefaults(), opts)
	if err != nil {
		return nil, err
	}
	return &SoftTfIdf{table: c.table, sim: c.sim, threshold: c.threshold}, nil
}

type partner struct {
	token string
	score float64
}

// Score returns the soft TF-IDF similarity. Each distinct token of a is
// paired with the first token of b that scores strictly above the threshold
// and higher than any earlier candidate; partners may be shared, so the
// measure is not symmetric. The result is clamped to 1.
func (s *SoftTfIdf) Score(a, b []string) (float64, error) {
	if score, done, err := screen(a, b); done {
		return score, err
	}
	table, err := frequencies(s.table, a, b)
	if err != nil {
		return 0, err
	}

	tfA, tfB := countTerms(a), countTerms(b)
	partners := make(map[string]partner, len(tfA.order))
	for _, x := range tfA.order {
		best := 0.0
		for _, y := range tfB.order {
			score := s.sim(x, y)
			if score > s.threshold && score > best {
				partners[x] = partner{token: y, score: score}
				best = score
			}
		}
	}

	var dot, normA, normB float64
	for _, tok := range union(tfA, tfB) {
		ratio, ok := table.InverseRatio(tok)
		if !ok {
			continue
		}
		if p, ok := partners[tok]; ok {
			// an unseen partner counts as appearing in one document
			partnerRatio, seen := table.InverseRatio(p.token)
			if !seen {
				partnerRatio = float64(table.Size())
			}
			dot += ratio * float64(tfA.counts[tok]) * partnerRatio * float64(tfB.counts[p.token]) * p.score
		}
		va := ratio * float64(tfA.counts[tok])
		vb := ratio * float64(tfB.counts[tok])
		normA += va * va
		normB += vb * vb
	}
	if normA == 0 || normB == 0 {
		return 0, nil
	}
	// shared partners and unseen partners can push the ratio past 1
	return min(1, dot/(math.Sqrt(normA)*math.Sqrt(normB))), nil
}
